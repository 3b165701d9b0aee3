package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"pubsite/internal/publication"
)

var listGroup string

func init() {
	listCmd.Flags().StringVar(&listGroup, "group", "", "Only list one group (journals, conferences, book_chapters)")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored records",
	Long: `List the records in the store, grouped and in chronological order.

Examples:
  pubsite list
  pubsite list --group journals --json`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	root := mustFindSite()
	db := mustOpenStore(root)
	defer db.Close()

	keys := publication.GroupKeys
	if listGroup != "" {
		if !publication.ValidGroup(listGroup) {
			exitWithError(ExitError, "unknown group %q (valid: journals, conferences, book_chapters)", listGroup)
		}
		keys = []string{listGroup}
	}

	grouped := make(map[string][]publication.Record, len(keys))
	for _, key := range keys {
		records, err := db.ListGroup(key)
		if err != nil {
			exitWithError(ExitError, "listing %s: %v", key, err)
		}
		if records == nil {
			records = []publication.Record{}
		}
		grouped[key] = records
	}

	if jsonOutput {
		outputJSON(grouped)
		return nil
	}

	total := 0
	for _, key := range keys {
		records := grouped[key]
		total += len(records)
		fmt.Printf("%s (%d):\n", publication.GroupTitle(key), len(records))
		for _, rec := range records {
			fmt.Println(formatRecordLine(rec))
		}
		fmt.Println()
	}
	if total == 0 {
		fmt.Println("No records in store. Run `pubsite fetch` or `pubsite add` to add some.")
	}

	return nil
}
