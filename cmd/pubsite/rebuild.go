package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"pubsite/internal/config"
)

func init() {
	rootCmd.AddCommand(rebuildCmd)
}

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the SQLite cache from records.jsonl",
	Long: `Drop and rebuild the SQLite record cache from the canonical JSONL file.

The cache is ephemeral; this is only needed after it has been corrupted
or deleted out from under a running command.`,
	RunE: runRebuild,
}

// RebuildResponse is the JSON response for the rebuild command.
type RebuildResponse struct {
	Status  string `json:"status"`
	Records int    `json:"records"`
}

func runRebuild(cmd *cobra.Command, args []string) error {
	root := mustFindSite()

	// Remove any existing cache so schema changes are picked up too.
	if err := os.Remove(config.DBPath(root)); err != nil && !os.IsNotExist(err) {
		exitWithError(ExitError, "removing cache: %v", err)
	}

	db := mustOpenStore(root)
	defer db.Close()

	n, err := db.Count()
	if err != nil {
		exitWithError(ExitError, "counting records: %v", err)
	}

	if jsonOutput {
		outputJSON(RebuildResponse{Status: "rebuilt", Records: n})
	} else {
		fmt.Printf("Rebuilt cache with %d records\n", n)
	}

	return nil
}
