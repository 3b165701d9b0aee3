package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"pubsite/internal/publication"
	"pubsite/internal/site"
)

func init() {
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the static site",
	Long: `Render the CV page from the publications document into the output
directory (default: public/), alongside a copy of the document itself.

A missing or malformed publications document does not fail the build: the
page is rendered with a single "could not load" notice instead.`,
	RunE: runBuild,
}

// BuildResponse is the JSON response for the build command.
type BuildResponse struct {
	Status   string `json:"status"`
	Output   string `json:"output"`
	Document string `json:"document,omitempty"`
	Warning  string `json:"warning,omitempty"`
}

func runBuild(cmd *cobra.Command, args []string) error {
	root := mustFindSite()
	cfg := mustLoadConfig(root)

	dataPath := cfg.ResolveDataPath(root)
	outDir := cfg.ResolveOutputDir(root)

	warning := ""
	var html string
	doc, err := publication.LoadDocument(dataPath)
	if err != nil {
		warning = fmt.Sprintf("could not load publications document: %v", err)
		html, err = site.RenderUnavailable(cfg)
	} else {
		html, err = site.Render(doc, cfg)
	}
	if err != nil {
		exitWithError(ExitError, "rendering page: %v", err)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		exitWithError(ExitError, "creating output directory: %v", err)
	}
	indexPath := filepath.Join(outDir, "index.html")
	if err := os.WriteFile(indexPath, []byte(html), 0644); err != nil {
		exitWithError(ExitError, "writing index.html: %v", err)
	}

	// Publish the artifact next to the page so the deployed site carries the
	// same document contract as the source tree.
	published := ""
	if warning == "" {
		published = filepath.Join(outDir, "data", "publications.json")
		if err := copyFile(dataPath, published); err != nil {
			exitWithError(ExitError, "copying publications document: %v", err)
		}
	}

	if jsonOutput {
		outputJSON(BuildResponse{Status: "built", Output: outDir, Document: published, Warning: warning})
	} else {
		if warning != "" {
			fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
		}
		fmt.Printf("Built site in %s\n", outDir)
	}

	return nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0644)
}
