package config

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name       string
		level      string
		format     string
		wantLevel  logrus.Level
		wantFormat string
		wantErr    error
	}{
		{name: "defaults", wantLevel: logrus.WarnLevel, wantFormat: TextFormat},
		{name: "debug json", level: "debug", format: "json", wantLevel: logrus.DebugLevel, wantFormat: JSONFormat},
		{name: "bad format", format: "xml", wantErr: ErrInvalidFormat},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Parse(tc.level, tc.format)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.Equal(t, tc.wantErr, errors.Cause(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantLevel, cfg.LogLevel)
			assert.Equal(t, tc.wantFormat, cfg.LogFormat)
		})
	}
}

func TestParse_BadLevel(t *testing.T) {
	_, err := Parse("loud", "")
	require.Error(t, err)
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&Config{LogLevel: logrus.InfoLevel, LogFormat: JSONFormat}, &buf)

	logger.Debug("hidden")
	logger.WithField("engine", "heap").Info("visible")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "visible", line["msg"])
	assert.Equal(t, "heap", line["engine"])
}
