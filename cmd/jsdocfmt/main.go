// Package main is the entry point for the jsdocfmt CLI.
package main

import (
	"errors"
	"os"

	"github.com/turadg/jsdocfmt/internal/cli"
	"github.com/turadg/jsdocfmt/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// ErrCheckFailed is just a signal for the exit code.
		if errors.Is(err, cli.ErrCheckFailed) {
			return cli.ExitCheckFailed
		}
		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
		return cli.ExitInternalError
	}

	return cli.ExitSuccess
}
