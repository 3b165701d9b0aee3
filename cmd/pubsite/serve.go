package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"
	"pubsite/internal/config"
	"pubsite/internal/publication"
	"pubsite/internal/site"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Preview the site locally",
	Long: `Serve the CV page on a local address for previewing.

The page and the publications document are re-read on every request and
served with caching disabled, so edits to site.yml, records.jsonl, or
data/publications.json show up on reload.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	root := mustFindSite()
	// Config is validated up front so a broken site.yml fails at startup,
	// then re-read per request to pick up edits.
	mustLoadConfig(root)

	mux := http.NewServeMux()
	mux.HandleFunc("/{$}", func(w http.ResponseWriter, r *http.Request) {
		servePage(w, root)
	})
	mux.HandleFunc("/index.html", func(w http.ResponseWriter, r *http.Request) {
		servePage(w, root)
	})
	mux.HandleFunc("/data/publications.json", func(w http.ResponseWriter, r *http.Request) {
		cfg, err := config.Load(root)
		if err != nil {
			http.Error(w, "loading config: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Cache-Control", "no-store")
		http.ServeFile(w, r, cfg.ResolveDataPath(root))
	})

	if !jsonOutput {
		fmt.Printf("Serving %s on %s\n", root, serveAddr)
	}
	if err := http.ListenAndServe(serveAddr, mux); err != nil {
		exitWithError(ExitError, "serving: %v", err)
	}
	return nil
}

// servePage renders the page fresh from the current document, falling back
// to the load-failure page exactly as build does.
func servePage(w http.ResponseWriter, root string) {
	cfg, err := config.Load(root)
	if err != nil {
		http.Error(w, "loading config: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var html string
	doc, err := publication.LoadDocument(cfg.ResolveDataPath(root))
	if err != nil {
		log.Printf("could not load publications document: %v", err)
		html, err = site.RenderUnavailable(cfg)
	} else {
		html, err = site.Render(doc, cfg)
	}
	if err != nil {
		http.Error(w, "rendering page: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	fmt.Fprint(w, html)
}
