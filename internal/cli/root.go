// Package cli provides the Cobra command structure for doxymd.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/doxymd/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root doxymd command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "doxymd",
		Short: "Convert Doxygen documentation comments to Markdown",
		Long: `doxymd converts Doxygen documentation comments and Doxygen-generated XML
into Markdown suitable for static-site generation.

It recognizes the common tags (@brief, @param, @return, @code/@endcode) in
raw comment text and the compound/member structure of Doxygen XML output.
Malformed comment input never fails a conversion: doxymd always produces
best-effort Markdown.`,
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

	rootCmd.AddCommand(newConvertCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
