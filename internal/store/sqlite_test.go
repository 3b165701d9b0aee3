package store

import (
	"os"
	"path/filepath"
	"testing"

	"pubsite/internal/config"
	"pubsite/internal/publication"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "pubs.db"))
	if err != nil {
		t.Fatalf("OpenDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRebuildFromAndListGroup(t *testing.T) {
	db := openTestDB(t)

	records := []publication.Record{
		{Group: publication.GroupJournals, Citation: "newest", Date: publication.Date{Year: 2025}},
		{Group: publication.GroupJournals, Citation: "oldest", Date: publication.Date{Year: 2019, Month: 2}},
		{Group: publication.GroupConferences, Citation: "talk", Date: publication.Date{Year: 2022}},
	}
	if err := db.RebuildFrom(records); err != nil {
		t.Fatalf("RebuildFrom: %v", err)
	}

	journals, err := db.ListGroup(publication.GroupJournals)
	if err != nil {
		t.Fatalf("ListGroup: %v", err)
	}
	if len(journals) != 2 {
		t.Fatalf("journals = %d, want 2", len(journals))
	}
	// Chronological order.
	if journals[0].Citation != "oldest" || journals[1].Citation != "newest" {
		t.Errorf("wrong order: %q, %q", journals[0].Citation, journals[1].Citation)
	}
	if journals[0].Date.Month != 2 {
		t.Errorf("month not round-tripped: %+v", journals[0].Date)
	}

	empty, err := db.ListGroup(publication.GroupBookChapters)
	if err != nil {
		t.Fatalf("ListGroup (empty): %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("book_chapters = %d, want 0", len(empty))
	}
}

func TestRebuildFromReplaces(t *testing.T) {
	db := openTestDB(t)

	if err := db.RebuildFrom([]publication.Record{
		{Group: publication.GroupJournals, Citation: "a", Date: publication.Date{Year: 2020}},
		{Group: publication.GroupJournals, Citation: "b", Date: publication.Date{Year: 2021}},
	}); err != nil {
		t.Fatalf("RebuildFrom: %v", err)
	}

	if err := db.RebuildFrom([]publication.Record{
		{Group: publication.GroupJournals, Citation: "only", Date: publication.Date{Year: 2022}},
	}); err != nil {
		t.Fatalf("RebuildFrom (second): %v", err)
	}

	n, err := db.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Errorf("Count = %d, want 1 after rebuild", n)
	}
}

func TestCountByGroup(t *testing.T) {
	db := openTestDB(t)

	if err := db.RebuildFrom([]publication.Record{
		{Group: publication.GroupJournals, Citation: "a", Date: publication.Date{Year: 2020}},
		{Group: publication.GroupJournals, Citation: "b", Date: publication.Date{Year: 2021}},
		{Group: publication.GroupBookChapters, Citation: "c", Date: publication.Date{Year: 2022}},
		{Group: "bogus", Citation: "d", Date: publication.Date{Year: 2022}},
	}); err != nil {
		t.Fatalf("RebuildFrom: %v", err)
	}

	counts, err := db.CountByGroup()
	if err != nil {
		t.Fatalf("CountByGroup: %v", err)
	}
	// Unrecognized groups are bucketed into journals on insert.
	if counts[publication.GroupJournals] != 3 {
		t.Errorf("journals = %d, want 3", counts[publication.GroupJournals])
	}
	if counts[publication.GroupBookChapters] != 1 {
		t.Errorf("book_chapters = %d, want 1", counts[publication.GroupBookChapters])
	}
}

func TestOpenRebuildsFromJSONL(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(config.PubsitePath(root), 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := WriteAll(config.RecordsPath(root), []publication.Record{
		{Group: publication.GroupJournals, Citation: "a", Date: publication.Date{Year: 2020}},
	}); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}

	db, err := Open(root)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	n, err := db.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}
