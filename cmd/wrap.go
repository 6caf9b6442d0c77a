package cmd

import (
	"time"

	"github.com/rnwolfe/habit/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type runE func(cmd *cobra.Command, args []string) error

// logged wraps a RunE so each invocation is recorded in the debug log with
// its explicitly set flags, duration and outcome.
func logged(command string, fn runE) runE {
	return func(cmd *cobra.Command, args []string) error {
		start := time.Now()
		logger.Debug("running command", "command", command, "args", args, "flags", changedFlags(cmd))

		err := fn(cmd, args)
		if err != nil {
			logger.Debug("command failed", "command", command, "err", err, "took", time.Since(start))
			return err
		}
		logger.Debug("command done", "command", command, "took", time.Since(start))
		return nil
	}
}

// changedFlags returns the flags the user set on the command line.
func changedFlags(cmd *cobra.Command) map[string]string {
	flags := make(map[string]string)
	if cmd == nil {
		return flags
	}
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			flags[f.Name] = f.Value.String()
		}
	})
	return flags
}
