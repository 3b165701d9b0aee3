package main

import (
	"os"
	"time"

	"pubsite/internal/config"
	"pubsite/internal/publication"
	"pubsite/internal/store"
)

// mustFindSite locates the site root or exits with a configuration error.
func mustFindSite() string {
	start, exitCode := getStartDir()
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	root, err := config.FindSite(start)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	return root
}

// mustLoadConfig loads site.yml or exits with a configuration error.
func mustLoadConfig(root string) *config.Config {
	cfg, err := config.Load(root)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}

// mustOpenStore opens the record cache (rebuilt from records.jsonl) or exits.
func mustOpenStore(root string) *store.DB {
	db, err := store.Open(root)
	if err != nil {
		exitWithError(ExitError, "opening record store: %v", err)
	}
	return db
}

// documentSource derives the producer stamp written into the artifact.
func documentSource(cfg *config.Config) string {
	if cfg.ORCIDID != "" {
		return "orcid:" + cfg.ORCIDID
	}
	return "manual"
}

// writeArtifact assembles the publications document from records and writes
// it to the configured data path. Returns the document for reporting.
func writeArtifact(root string, cfg *config.Config, records []publication.Record) (*publication.Document, error) {
	doc := publication.BuildDocument(records, documentSource(cfg), time.Now())
	if err := publication.WriteDocument(cfg.ResolveDataPath(root), doc); err != nil {
		return nil, err
	}
	return doc, nil
}
