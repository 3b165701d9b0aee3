// Package publication defines the publications document model shared by the
// site renderer and the data producers.
package publication

// Group keys recognized in a publications document.
const (
	GroupJournals     = "journals"
	GroupConferences  = "conferences"
	GroupBookChapters = "book_chapters"
)

// GroupKeys lists the recognized group keys in display order.
var GroupKeys = []string{GroupJournals, GroupConferences, GroupBookChapters}

// groupTitles maps group keys to their on-page headings.
var groupTitles = map[string]string{
	GroupJournals:     "Journals",
	GroupConferences:  "Conferences",
	GroupBookChapters: "Book Chapters",
}

// groupPrefixes maps group keys to their label prefixes.
var groupPrefixes = map[string]string{
	GroupJournals:     "j",
	GroupConferences:  "c",
	GroupBookChapters: "b",
}

// ValidGroup reports whether key names a recognized group.
func ValidGroup(key string) bool {
	_, ok := groupTitles[key]
	return ok
}

// GroupTitle returns the display heading for a group key, or "" if the key
// is not recognized.
func GroupTitle(key string) string {
	return groupTitles[key]
}

// GroupPrefix returns the label prefix for a group key ("j", "c", "b"), or
// "" if the key is not recognized.
func GroupPrefix(key string) string {
	return groupPrefixes[key]
}

// Date is a publication date with optional month and day.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month,omitempty"` // 1-12, 0 if unknown
	Day   int `json:"day,omitempty"`   // 1-31, 0 if unknown
}

// Before reports whether d is chronologically before o. Unknown components
// compare as zero, so partially dated records sort before fully dated ones
// in the same year.
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// IsZero reports whether the date is entirely unknown.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Record is one citation entry.
//
// The renderer consumes Label, Citation and URL. The remaining fields belong
// to the producer side: Group and Date place a record for labeling, DOI is
// the deduplication key, and ID/Number are assigned together with Label when
// the document is built.
type Record struct {
	ID       string `json:"id,omitempty"`
	Label    string `json:"label,omitempty"`
	Number   int    `json:"number,omitempty"`
	Citation string `json:"citation"`
	DOI      string `json:"doi,omitempty"`
	URL      string `json:"url,omitempty"`
	Group    string `json:"group,omitempty"`
	Date     Date   `json:"date,omitzero"`
}

// Document is the full publications artifact: three record groups plus
// freshness metadata.
type Document struct {
	GeneratedUTC string   `json:"generated_utc,omitempty"`
	Source       string   `json:"source,omitempty"`
	Journals     []Record `json:"journals"`
	Conferences  []Record `json:"conferences"`
	BookChapters []Record `json:"book_chapters"`
}

// Group returns the record sequence for a group key. Unrecognized keys yield
// nil, which renders as an empty group rather than an error.
func (d *Document) Group(key string) []Record {
	switch key {
	case GroupJournals:
		return d.Journals
	case GroupConferences:
		return d.Conferences
	case GroupBookChapters:
		return d.BookChapters
	default:
		return nil
	}
}

// SetGroup replaces the record sequence for a recognized group key.
func (d *Document) SetGroup(key string, records []Record) {
	switch key {
	case GroupJournals:
		d.Journals = records
	case GroupConferences:
		d.Conferences = records
	case GroupBookChapters:
		d.BookChapters = records
	}
}
