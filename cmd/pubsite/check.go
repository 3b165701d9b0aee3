package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"pubsite/internal/publication"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the publications artifact",
	Long: `Validate data/publications.json: the document must decode (groups must
be arrays or null), and labels must follow the producer convention
(group prefix + number, numbers 1..N, newest displayed first).

Exit codes: 0 valid, 3 data error.`,
	RunE: runCheck,
}

// CheckResponse is the JSON response for the check command.
type CheckResponse struct {
	Status   string   `json:"status"`
	Problems []string `json:"problems,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	root := mustFindSite()
	cfg := mustLoadConfig(root)

	doc, err := publication.LoadDocument(cfg.ResolveDataPath(root))
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	problems := publication.Audit(doc)
	if len(problems) > 0 {
		if jsonOutput {
			outputJSON(CheckResponse{Status: "invalid", Problems: problems})
		} else {
			for _, p := range problems {
				fmt.Println(p)
			}
			fmt.Printf("\n%d problem(s) found\n", len(problems))
		}
		os.Exit(ExitDataError)
	}

	if jsonOutput {
		outputJSON(CheckResponse{Status: "valid"})
	} else {
		fmt.Println("publications document is valid")
	}

	return nil
}
