// Package cli is the out-of-core command-line driver spec §1 excludes
// from the engine proper but which every template-engine repo in the
// retrieval pack still ships as ambient plumbing: a `render` command
// that reads a template and a JSON context file from disk and writes
// rendered output to stdout, plus a `version` command (grounded on the teacher's
// cmd/compozy.go root-command composition and cli/main.go bootstrap).
package cli

import (
	"fmt"

	"github.com/compozy/liquid/pkg/logger"
	"github.com/spf13/cobra"
)

// RootCmd builds the `liquid` root command with its subcommands
// attached.
func RootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:   "liquid",
		Short: "Liquid is a command-line driver for the liquid template engine",
		Long: `liquid renders a Liquid template against a JSON context file.
It is a thin wrapper around the engine for quick manual checks and
scripting; template loading, caching, and hosting are left to the
embedding application.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg := logger.DefaultConfig()
			cfg.Output = cmd.OutOrStderr()
			if verbose {
				cfg.Level = logger.DebugLevel
			}
			log := logger.NewLogger(cfg)
			cmd.SetContext(logger.ContextWithLogger(cmd.Context(), log))
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newRenderCommand())
	root.AddCommand(newVersionCommand())
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "liquid (development build)")
		},
	}
}
