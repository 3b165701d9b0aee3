package publication

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// groupField decodes one group slot of the document. A JSON null decodes as
// an empty group, matching what half-initialized producers emit; any other
// non-array value is a decode error, so a broken producer fails the load
// instead of silently rendering an empty CV.
type groupField []Record

func (g *groupField) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*g = nil
		return nil
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("group must be a JSON array or null: %w", err)
	}
	*g = records
	return nil
}

// UnmarshalJSON decodes a document, tolerating null and absent groups.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw struct {
		GeneratedUTC string     `json:"generated_utc"`
		Source       string     `json:"source"`
		Journals     groupField `json:"journals"`
		Conferences  groupField `json:"conferences"`
		BookChapters groupField `json:"book_chapters"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.GeneratedUTC = raw.GeneratedUTC
	d.Source = raw.Source
	d.Journals = raw.Journals
	d.Conferences = raw.Conferences
	d.BookChapters = raw.BookChapters
	return nil
}

// ParseDocument parses a publications document from JSON.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing publications document: %w", err)
	}
	return &doc, nil
}

// LoadDocument reads and parses the publications document at path. A missing
// file and a malformed file are the same failure kind: the document could
// not be loaded.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading publications document: %w", err)
	}
	return ParseDocument(data)
}

// WriteDocument writes the document to path as indented JSON, creating
// parent directories as needed.
func WriteDocument(path string, doc *Document) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding publications document: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing publications document: %w", err)
	}
	return nil
}

// Stamp sets the document freshness timestamp to t in UTC at seconds
// precision, e.g. "2026-08-29T10:30:00Z".
func (d *Document) Stamp(t time.Time) {
	d.GeneratedUTC = t.UTC().Truncate(time.Second).Format(time.RFC3339)
}
