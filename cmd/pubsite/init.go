package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"pubsite/internal/config"
	"pubsite/internal/publication"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new site directory",
	Long: `Initialize a new pubsite site in the current directory.

Creates:
  .pubsite/
  ├── records.jsonl   # Empty record store
  └── cache/          # Empty directory (gitignored)
  site.yml            # Default config
  data/
  └── publications.json  # Empty publications document`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	root, exitCode := getStartDir()
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	if config.IsSite(root) {
		exitWithError(ExitError, "directory already contains a pubsite site")
	}

	if err := os.MkdirAll(config.PubsitePath(root), 0755); err != nil {
		exitWithError(ExitError, "creating .pubsite directory: %v", err)
	}
	if err := os.MkdirAll(config.CachePath(root), 0755); err != nil {
		exitWithError(ExitError, "creating cache directory: %v", err)
	}

	recordsFile, err := os.Create(config.RecordsPath(root))
	if err != nil {
		exitWithError(ExitError, "creating records.jsonl: %v", err)
	}
	recordsFile.Close()

	cfg := &config.Config{}
	if err := cfg.Save(root); err != nil {
		exitWithError(ExitError, "creating site.yml: %v", err)
	}

	doc := publication.BuildDocument(nil, documentSource(cfg), time.Now())
	if err := publication.WriteDocument(cfg.ResolveDataPath(root), doc); err != nil {
		exitWithError(ExitError, "creating publications document: %v", err)
	}

	if jsonOutput {
		outputJSON(StatusResponse{Status: "initialized", Path: root})
	} else {
		fmt.Printf("Initialized pubsite site in %s\n", root)
		fmt.Println("Next: set your details with `pubsite config name \"Your Name\"` and `pubsite config orcid-id <iD>`")
	}

	return nil
}
