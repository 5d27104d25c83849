package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewortman/pqueue/internal/config"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := rootCommand()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRootCommand_RunsScript(t *testing.T) {
	stdout, _, err := execute(t, "i 2 5\ni 2 9\ni 2 3\nd 2\nd 2\nd 2\nx\n")
	require.NoError(t, err)
	assert.Equal(t, "9 2\n5 1\n3 3\n", stdout)
}

func TestRootCommand_LogsToStderr(t *testing.T) {
	stdout, stderr, err := execute(t, "i 3 -1\n", "--log-level", "warn", "--log-format", "json")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, `"msg":"insert rejected"`)
}

func TestRootCommand_BadFormat(t *testing.T) {
	_, _, err := execute(t, "", "--log-format", "xml")
	assert.ErrorIs(t, err, config.ErrInvalidFormat)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "debug")
	t.Setenv(config.EnvLogFormat, "json")

	cmd := rootCommand()
	require.NoError(t, cmd.ParseFlags([]string{"--log-level", "error"}))

	cfg, err := loadConfig(cmd, "error", "")
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel.String())
	assert.Equal(t, config.JSONFormat, cfg.LogFormat)
}
