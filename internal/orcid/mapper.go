package orcid

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"pubsite/internal/publication"
)

var spaceRe = regexp.MustCompile(`\s+`)

// MapWork converts an ORCID work to a publication record. detail may be nil,
// in which case every field comes from the summary; when both are present,
// detail fields win and the summary fills the gaps.
func MapWork(detail, summary *Work) publication.Record {
	title := collapseSpace(firstNonEmpty(workTitle(detail), workTitle(summary)))
	venue := collapseSpace(firstNonEmpty(workVenue(detail), workVenue(summary)))
	typ := firstNonEmpty(workType(detail), workType(summary))
	doi := firstNonEmpty(extractDOI(detail), extractDOI(summary))

	date := workDate(detail)
	if date.IsZero() {
		date = workDate(summary)
	}

	year := ""
	if date.Year > 0 {
		year = strconv.Itoa(date.Year)
	}

	url := ""
	if doi != "" {
		url = "https://doi.org/" + doi
	}

	return publication.Record{
		Group:    bucketForType(typ),
		Citation: formatCitation(contributorNames(detail), title, venue, year, doi),
		DOI:      doi,
		URL:      url,
		Date:     date,
	}
}

// bucketForType maps an ORCID work type to a publication group. Unknown
// types fall back to journals, the conservative choice for an academic CV.
func bucketForType(t string) string {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case "journal-article", "journal article", "journal_article":
		return publication.GroupJournals
	case "conference-paper", "conference paper", "conference_paper":
		return publication.GroupConferences
	case "book-chapter", "book chapter", "book_chapter":
		return publication.GroupBookChapters
	default:
		return publication.GroupJournals
	}
}

// extractDOI returns the first DOI-typed external identifier of a work, with
// trailing punctuation trimmed.
func extractDOI(w *Work) string {
	if w == nil || w.ExternalIDs == nil {
		return ""
	}
	for _, eid := range w.ExternalIDs.ExternalID {
		if strings.ToLower(eid.Type) != "doi" {
			continue
		}
		doi := strings.TrimRight(strings.TrimSpace(eid.Value), ".,;)")
		if doi != "" {
			return doi
		}
	}
	return ""
}

// contributorNames returns the credit names of a work's contributors,
// whitespace-normalized, skipping entries without a name.
func contributorNames(w *Work) []string {
	if w == nil || w.Contributors == nil {
		return nil
	}
	var names []string
	for _, c := range w.Contributors.Contributor {
		if c.CreditName == nil {
			continue
		}
		name := collapseSpace(c.CreditName.Value)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// formatCitation builds an IEEE-like citation string. Absent parts are
// skipped; the format stays simple and stable so regenerated documents diff
// cleanly.
func formatCitation(authors []string, title, venue, year, doi string) string {
	a := "Unknown authors"
	if len(authors) > 0 {
		a = strings.Join(authors, ", ")
	}

	parts := []string{fmt.Sprintf("%s, %q", a, title)}
	if venue != "" {
		parts = append(parts, venue)
	}
	if year != "" {
		parts = append(parts, year)
	}
	if doi != "" {
		parts = append(parts, "doi "+doi)
	}
	return strings.Join(parts, ", ") + "."
}

func workTitle(w *Work) string {
	if w == nil || w.Title == nil {
		return ""
	}
	return w.Title.Title.Value
}

func workVenue(w *Work) string {
	if w == nil || w.JournalTitle == nil {
		return ""
	}
	return w.JournalTitle.Value
}

func workType(w *Work) string {
	if w == nil {
		return ""
	}
	return w.Type
}

// workDate extracts the publication date, with 0 for unknown components.
// Unparseable values yield a zero date rather than an error.
func workDate(w *Work) publication.Date {
	if w == nil || w.PublicationDate == nil {
		return publication.Date{}
	}
	return publication.Date{
		Year:  dateComponent(w.PublicationDate.Year),
		Month: dateComponent(w.PublicationDate.Month),
		Day:   dateComponent(w.PublicationDate.Day),
	}
}

func dateComponent(v *valueField) int {
	if v == nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(v.Value))
	if err != nil {
		return 0
	}
	return n
}

func collapseSpace(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
