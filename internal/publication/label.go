package publication

import (
	"fmt"
	"sort"
	"time"
)

// BuildDocument assembles the publications artifact from a flat record set.
// Records are bucketed by their Group field (unrecognized groups fall into
// journals, matching the conservative fallback the import path uses), each
// group is relabeled, and the document is stamped with now and source.
func BuildDocument(records []Record, source string, now time.Time) *Document {
	doc := &Document{Source: source}
	for _, rec := range records {
		key := rec.Group
		if !ValidGroup(key) {
			key = GroupJournals
		}
		doc.SetGroup(key, append(doc.Group(key), rec))
	}
	// Empty groups marshal as [] rather than null.
	for _, key := range GroupKeys {
		if doc.Group(key) == nil {
			doc.SetGroup(key, []Record{})
		}
	}
	Relabel(doc)
	doc.Stamp(now)
	return doc
}

// Relabel assigns labels to every group of the document: records are ordered
// chronologically, numbered 1..N so the newest record carries the highest
// number, labeled with the group prefix ("j", "c", "b"), and then reversed so
// the newest record displays first.
func Relabel(doc *Document) {
	for _, key := range GroupKeys {
		records := doc.Group(key)
		if len(records) == 0 {
			continue
		}

		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Date.Before(records[j].Date)
		})

		prefix := GroupPrefix(key)
		for i := range records {
			records[i].Number = i + 1
			records[i].Label = fmt.Sprintf("%s%d", prefix, i+1)
			records[i].ID = records[i].Label
		}

		// Newest first for display.
		for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
			records[i], records[j] = records[j], records[i]
		}

		doc.SetGroup(key, records)
	}
}

// Audit checks the producer-side labeling convention of a document and
// returns a description of every violation found. The renderer never calls
// this; labels are opaque display strings at render time.
func Audit(doc *Document) []string {
	var problems []string
	for _, key := range GroupKeys {
		records := doc.Group(key)
		prefix := GroupPrefix(key)

		seen := make(map[int]bool, len(records))
		for i, rec := range records {
			want := ""
			if rec.Number > 0 {
				want = fmt.Sprintf("%s%d", prefix, rec.Number)
			}
			if rec.Label == "" {
				problems = append(problems, fmt.Sprintf("%s[%d]: missing label", key, i))
				continue
			}
			if want != "" && rec.Label != want {
				problems = append(problems, fmt.Sprintf("%s[%d]: label %q does not match number %d (want %q)", key, i, rec.Label, rec.Number, want))
			}
			if rec.Number > 0 {
				if rec.Number > len(records) {
					problems = append(problems, fmt.Sprintf("%s[%d]: number %d exceeds group size %d", key, i, rec.Number, len(records)))
				}
				if seen[rec.Number] {
					problems = append(problems, fmt.Sprintf("%s[%d]: duplicate number %d", key, i, rec.Number))
				}
				seen[rec.Number] = true
			}
			if i > 0 && records[i-1].Number > 0 && rec.Number > 0 && records[i-1].Number < rec.Number {
				problems = append(problems, fmt.Sprintf("%s[%d]: numbers not in newest-first order", key, i))
			}
		}
	}
	return problems
}
