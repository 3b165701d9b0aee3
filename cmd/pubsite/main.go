// Package main provides the pubsite CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// jsonOutput controls whether to use machine-readable JSON output
var jsonOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pubsite",
	Short: "Static CV and publications site toolkit",
	Long: `pubsite builds a static personal CV website whose publications list is
generated from citation data.

Records live in a git-versionable JSONL file with an ephemeral SQLite
cache for queries. The fetch command refreshes records from the ORCID
public API, export regenerates data/publications.json, and build renders
the static site.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Use JSON output instead of human-readable text")
	rootCmd.Version = Version
}

// getStartDir returns the directory site discovery starts from, or exits
// with an error. The PUBSITE_ROOT environment variable overrides the
// working directory.
func getStartDir() (string, int) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", outputError(ExitError, "getting current directory: %v", err)
	}

	if root := os.Getenv("PUBSITE_ROOT"); root != "" {
		cwd = root
	}

	return cwd, 0
}
