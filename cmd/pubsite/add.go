package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"pubsite/internal/config"
	"pubsite/internal/pdf"
	"pubsite/internal/publication"
	"pubsite/internal/store"
)

var (
	addGroup    string
	addCitation string
	addDOI      string
	addURL      string
	addPDF      string
	addYear     int
	addMonth    int
	addDay      int
)

func init() {
	addCmd.Flags().StringVar(&addGroup, "group", publication.GroupJournals, "Publication group (journals, conferences, book_chapters)")
	addCmd.Flags().StringVar(&addCitation, "citation", "", "Citation text")
	addCmd.Flags().StringVar(&addDOI, "doi", "", "DOI (also the deduplication key)")
	addCmd.Flags().StringVar(&addURL, "url", "", "Link target (default: https://doi.org/<doi>)")
	addCmd.Flags().StringVar(&addPDF, "pdf", "", "Publication PDF to extract DOI and title from")
	addCmd.Flags().IntVar(&addYear, "year", 0, "Publication year")
	addCmd.Flags().IntVar(&addMonth, "month", 0, "Publication month (1-12)")
	addCmd.Flags().IntVar(&addDay, "day", 0, "Publication day (1-31)")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a record manually",
	Long: `Add one publication record to the store and regenerate the artifact.

With --pdf, the DOI is extracted from the PDF's first pages, and when no
--citation is given the first-page title seeds the citation text.

Examples:
  pubsite add --group journals --year 2024 --citation 'Doe J., "A Paper", J. Things, 2024.'
  pubsite add --group conferences --year 2023 --pdf talk.pdf`,
	RunE: runAdd,
}

// AddResponse is the JSON response for the add command.
type AddResponse struct {
	Status string             `json:"status"`
	Record publication.Record `json:"record"`
}

func runAdd(cmd *cobra.Command, args []string) error {
	root := mustFindSite()
	cfg := mustLoadConfig(root)

	if !publication.ValidGroup(addGroup) {
		exitWithError(ExitError, "unknown group %q (valid: journals, conferences, book_chapters)", addGroup)
	}

	citation := addCitation
	doi := addDOI

	if addPDF != "" {
		if doi == "" {
			extracted, err := pdf.ExtractDOI(addPDF)
			if err != nil {
				exitWithError(ExitError, "extracting DOI from %s: %v", addPDF, err)
			}
			doi = extracted
		}
		if citation == "" {
			title, err := pdf.ExtractTitle(addPDF)
			if err == nil && title != "" {
				citation = title
			}
		}
	}

	if citation == "" {
		exitWithError(ExitError, "no citation text (pass --citation, or --pdf with a readable title)")
	}

	url := addURL
	if url == "" && doi != "" {
		url = "https://doi.org/" + doi
	}

	rec := publication.Record{
		Group:    addGroup,
		Citation: citation,
		DOI:      doi,
		URL:      url,
		Date:     publication.Date{Year: addYear, Month: addMonth, Day: addDay},
	}

	recordsPath := config.RecordsPath(root)
	existing, err := store.ReadAll(recordsPath)
	if err != nil {
		exitWithError(ExitError, "reading record store: %v", err)
	}

	merged, added, updated := store.Upsert(existing, []publication.Record{rec})
	if err := store.WriteAll(recordsPath, merged); err != nil {
		exitWithError(ExitError, "writing record store: %v", err)
	}

	if _, err := writeArtifact(root, cfg, merged); err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if jsonOutput {
		status := "added"
		if updated > 0 {
			status = "updated"
		}
		outputJSON(AddResponse{Status: status, Record: rec})
	} else {
		if added > 0 {
			fmt.Printf("Added record to %s\n", addGroup)
		} else {
			fmt.Printf("Updated existing record (DOI %s)\n", doi)
		}
		fmt.Printf("Wrote %s\n", cfg.ResolveDataPath(root))
	}

	return nil
}
