// Package main provides the CLI entry point for mapjson.
package main

import (
	"os"

	"github.com/mapjson/mapjson-go/pkg/mapjson"
	"github.com/spf13/cobra"
)

// Version is reported by --version.
var Version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "mapjson FILE",
		Short: "Converts XLSX sheets to JSON for Map RCA animations",
		Long: `mapjson converts every sheet of an XLSX workbook into a JSON file
named <FILE>-<sheet>.json holding the sheet's rows as "Markers".`,
		Version: Version,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], verbose)
		},
	}

	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enables verbose output")

	return rootCmd
}

func run(cmd *cobra.Command, inputPath string, verbose bool) error {
	cmd.SilenceUsage = true

	logger := mapjson.NewConsoleLogger(cmd.ErrOrStderr())
	converter := mapjson.New(mapjson.Options{
		Verbose: verbose,
		Stdout:  cmd.OutOrStdout(),
		Logger:  &logger,
	})

	_, err := converter.Run(inputPath)
	return err
}
