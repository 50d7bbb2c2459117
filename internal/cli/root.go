// Package cli provides the Cobra command structure for jsdocfmt.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/turadg/jsdocfmt/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root jsdocfmt command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "jsdocfmt",
		Short: "Normalize and re-render documentation tag blocks",
		Long: `jsdocfmt normalizes structured documentation comments (a free-text
description plus @tag {type} name records) and re-renders them into a
canonical, width-constrained form.

Tag titles are resolved against a canonical synonym table, misparsed
tag/type/name boundaries are repaired, and descriptions are reflowed as a
restricted markdown dialect: code blocks and tables are preserved and
delegated to a native formatter, prose is wrapped at the configured width.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newFmtCommand(&configPath, &color))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
