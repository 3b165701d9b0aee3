package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"pubsite/internal/config"
	"pubsite/internal/orcid"
	"pubsite/internal/store"
)

var (
	fetchORCID  string
	fetchDryRun bool
)

func init() {
	// Load .env if present (for ORCID_TOKEN)
	_ = godotenv.Load()

	fetchCmd.Flags().StringVar(&fetchORCID, "orcid", "", "ORCID iD to fetch (default: orcid_id from site.yml)")
	fetchCmd.Flags().BoolVar(&fetchDryRun, "dry-run", false, "Show what would change without writing")
	rootCmd.AddCommand(fetchCmd)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Refresh records from the ORCID public API",
	Long: `Fetch all works for the configured ORCID iD, merge them into the record
store (deduplicating by DOI), and regenerate data/publications.json.

Works without credentials for public records. If ORCID returns 401, set
ORCID_TOKEN in the environment or a .env file to enable authenticated
reads.

Examples:
  pubsite fetch
  pubsite fetch --orcid 0000-0002-1825-0097 --dry-run`,
	RunE: runFetch,
}

// FetchResponse is the JSON response for the fetch command.
type FetchResponse struct {
	Status   string `json:"status"`
	ORCIDID  string `json:"orcid_id"`
	Fetched  int    `json:"fetched"`
	Added    int    `json:"added"`
	Updated  int    `json:"updated"`
	Artifact string `json:"artifact,omitempty"`
}

func runFetch(cmd *cobra.Command, args []string) error {
	root := mustFindSite()
	cfg := mustLoadConfig(root)

	id := fetchORCID
	if id == "" {
		id = cfg.ORCIDID
	}
	if id == "" {
		exitWithError(ExitConfigError, "no ORCID iD configured (set orcid_id in site.yml or pass --orcid)")
	}

	client := orcid.NewClient()
	incoming, err := client.Fetch(cmd.Context(), id)
	if err != nil {
		switch {
		case orcid.IsNotFound(err):
			exitWithError(ExitDataError, "ORCID iD %s not found", id)
		case orcid.IsAuthError(err):
			exitWithError(ExitError, "%v", err)
		default:
			exitWithError(ExitError, "fetching works: %v", err)
		}
	}

	recordsPath := config.RecordsPath(root)
	existing, err := store.ReadAll(recordsPath)
	if err != nil {
		exitWithError(ExitError, "reading record store: %v", err)
	}

	merged, added, updated := store.Upsert(existing, incoming)

	if fetchDryRun {
		if jsonOutput {
			outputJSON(FetchResponse{Status: "dry-run", ORCIDID: id, Fetched: len(incoming), Added: added, Updated: updated})
		} else {
			fmt.Printf("Would merge %d works from ORCID (%d new, %d updated); store left unchanged\n", len(incoming), added, updated)
		}
		return nil
	}

	if err := store.WriteAll(recordsPath, merged); err != nil {
		exitWithError(ExitError, "writing record store: %v", err)
	}

	if _, err := writeArtifact(root, cfg, merged); err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if jsonOutput {
		outputJSON(FetchResponse{
			Status:   "fetched",
			ORCIDID:  id,
			Fetched:  len(incoming),
			Added:    added,
			Updated:  updated,
			Artifact: cfg.ResolveDataPath(root),
		})
	} else {
		fmt.Printf("Fetched %d works from ORCID (%d new, %d updated)\n", len(incoming), added, updated)
		fmt.Printf("Wrote %s\n", cfg.ResolveDataPath(root))
	}

	return nil
}
