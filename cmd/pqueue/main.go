package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/andrewortman/pqueue/internal/config"
	"github.com/andrewortman/pqueue/internal/dispatch"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCommand().ExecuteContext(ctx); err != nil {
		log.WithContext(ctx).Fatal(err)
	}
}

func rootCommand() *cobra.Command {
	var level, format string

	root := &cobra.Command{
		Use:   "pqueue",
		Short: "Drive the list, heap and bucket priority queues from line commands on stdin",
		Long: `Reads one command per line from stdin:

  r                  reset every engine
  i <id> <priority>  insert into engine id (1 list, 2 heap, 3 bucket)
  d <id>             delete and print the maximum
  l <id>             print the maximum
  x                  reset every engine and exit`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, level, format)
			if err != nil {
				return err
			}
			logger := config.NewLogger(cfg, cmd.ErrOrStderr())

			d := dispatch.New(cmd.OutOrStdout(), logger)
			if err := d.Run(cmd.Context(), cmd.InOrStdin()); err != nil {
				return errors.Wrap(err, "pqueue")
			}
			logger.WithField("stamp", d.Stamp()).Debug("done")
			return nil
		},
	}

	root.Flags().StringVar(&level, "log-level", "", "log level (env "+config.EnvLogLevel+", default warn)")
	root.Flags().StringVar(&format, "log-format", "", "log format: text or json (env "+config.EnvLogFormat+")")
	return root
}

// loadConfig prefers flags over environment values.
func loadConfig(cmd *cobra.Command, level, format string) (*config.Config, error) {
	if !cmd.Flags().Changed("log-level") {
		level = os.Getenv(config.EnvLogLevel)
	}
	if !cmd.Flags().Changed("log-format") {
		format = os.Getenv(config.EnvLogFormat)
	}
	return config.Parse(level, format)
}
