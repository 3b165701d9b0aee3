package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"pubsite/internal/config"
	"pubsite/internal/store"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Regenerate the publications artifact from the store",
	Long: `Rebuild data/publications.json from the record store without fetching.

Labels are reassigned chronologically per group (j1..jN, c1..cN, b1..bN,
newest displayed first) and the freshness timestamp is updated. Use this
after hand-editing records.jsonl or after pubsite add.`,
	RunE: runExport,
}

// ExportResponse is the JSON response for the export command.
type ExportResponse struct {
	Status   string `json:"status"`
	Records  int    `json:"records"`
	Artifact string `json:"artifact"`
}

func runExport(cmd *cobra.Command, args []string) error {
	root := mustFindSite()
	cfg := mustLoadConfig(root)

	records, err := store.ReadAll(config.RecordsPath(root))
	if err != nil {
		exitWithError(ExitError, "reading record store: %v", err)
	}

	if _, err := writeArtifact(root, cfg, records); err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if jsonOutput {
		outputJSON(ExportResponse{
			Status:   "exported",
			Records:  len(records),
			Artifact: cfg.ResolveDataPath(root),
		})
	} else {
		fmt.Printf("Exported %d records to %s\n", len(records), cfg.ResolveDataPath(root))
	}

	return nil
}
