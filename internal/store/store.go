package store

import (
	"fmt"
	"os"

	"pubsite/internal/config"
	"pubsite/internal/publication"
)

// Upsert merges incoming records into existing ones. Records sharing a DOI
// replace the stored version in place; records without a DOI are always
// appended, since there is nothing to deduplicate on.
func Upsert(existing, incoming []publication.Record) (merged []publication.Record, added, updated int) {
	merged = make([]publication.Record, len(existing))
	copy(merged, existing)

	for _, rec := range incoming {
		if idx, found := FindByDOI(merged, rec.DOI); found {
			merged[idx] = rec
			updated++
			continue
		}
		merged = append(merged, rec)
		added++
	}
	return merged, added, updated
}

// Open opens the site's record cache, freshly rebuilt from the canonical
// JSONL file so queries always reflect the latest edits.
func Open(root string) (*DB, error) {
	records, err := ReadAll(config.RecordsPath(root))
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(config.CachePath(root), 0755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	db, err := OpenDB(config.DBPath(root))
	if err != nil {
		return nil, err
	}

	if err := db.RebuildFrom(records); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
