package orcid

import (
	"testing"

	"pubsite/internal/publication"
)

func TestBucketForType(t *testing.T) {
	tests := []struct {
		workType string
		want     string
	}{
		{"journal-article", publication.GroupJournals},
		{"JOURNAL-ARTICLE", publication.GroupJournals},
		{"journal article", publication.GroupJournals},
		{"conference-paper", publication.GroupConferences},
		{"conference_paper", publication.GroupConferences},
		{"book-chapter", publication.GroupBookChapters},
		{"book chapter", publication.GroupBookChapters},
		{"preprint", publication.GroupJournals}, // conservative fallback
		{"", publication.GroupJournals},
	}
	for _, tt := range tests {
		if got := bucketForType(tt.workType); got != tt.want {
			t.Errorf("bucketForType(%q) = %q, want %q", tt.workType, got, tt.want)
		}
	}
}

func TestExtractDOI(t *testing.T) {
	work := &Work{ExternalIDs: &externalIDs{ExternalID: []externalID{
		{Type: "issn", Value: "1234-5678"},
		{Type: "DOI", Value: " 10.1000/abc.123;) "},
	}}}
	if got := extractDOI(work); got != "10.1000/abc.123" {
		t.Errorf("extractDOI = %q", got)
	}

	if got := extractDOI(&Work{}); got != "" {
		t.Errorf("extractDOI (no ids) = %q", got)
	}
	if got := extractDOI(nil); got != "" {
		t.Errorf("extractDOI(nil) = %q", got)
	}
}

func TestFormatCitation(t *testing.T) {
	tests := []struct {
		name    string
		authors []string
		title   string
		venue   string
		year    string
		doi     string
		want    string
	}{
		{
			name:    "full",
			authors: []string{"J. Doe", "A. Roe"},
			title:   "Great Results",
			venue:   "Journal of Things",
			year:    "2024",
			doi:     "10.1/x",
			want:    `J. Doe, A. Roe, "Great Results", Journal of Things, 2024, doi 10.1/x.`,
		},
		{
			name:  "no authors",
			title: "Orphan Paper",
			year:  "2020",
			want:  `Unknown authors, "Orphan Paper", 2020.`,
		},
		{
			name:    "no venue no doi",
			authors: []string{"J. Doe"},
			title:   "Minimal",
			want:    `J. Doe, "Minimal".`,
		},
	}
	for _, tt := range tests {
		if got := formatCitation(tt.authors, tt.title, tt.venue, tt.year, tt.doi); got != tt.want {
			t.Errorf("%s: formatCitation = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestMapWorkPrefersDetail(t *testing.T) {
	summary := &Work{
		Type:  "conference-paper",
		Title: &titleField{Title: valueField{Value: "Summary Title"}},
		PublicationDate: &publicationDate{
			Year: &valueField{Value: "2021"},
		},
	}
	detail := &Work{
		Type:         "conference-paper",
		Title:        &titleField{Title: valueField{Value: "  Detail   Title "}},
		JournalTitle: &valueField{Value: "Proc. of Stuff"},
		PublicationDate: &publicationDate{
			Year:  &valueField{Value: "2021"},
			Month: &valueField{Value: "06"},
		},
		ExternalIDs: &externalIDs{ExternalID: []externalID{{Type: "doi", Value: "10.2/conf"}}},
		Contributors: &contributors{Contributor: []contributor{
			{CreditName: &valueField{Value: "Jane  Doe"}},
			{CreditName: nil},
			{CreditName: &valueField{Value: "Alex Roe"}},
		}},
	}

	rec := MapWork(detail, summary)

	if rec.Group != publication.GroupConferences {
		t.Errorf("Group = %q", rec.Group)
	}
	if rec.DOI != "10.2/conf" || rec.URL != "https://doi.org/10.2/conf" {
		t.Errorf("DOI/URL = %q / %q", rec.DOI, rec.URL)
	}
	if rec.Date != (publication.Date{Year: 2021, Month: 6}) {
		t.Errorf("Date = %+v", rec.Date)
	}
	want := `Jane Doe, Alex Roe, "Detail Title", Proc. of Stuff, 2021, doi 10.2/conf.`
	if rec.Citation != want {
		t.Errorf("Citation = %q, want %q", rec.Citation, want)
	}
}

func TestMapWorkSummaryOnly(t *testing.T) {
	summary := &Work{
		Type:  "journal-article",
		Title: &titleField{Title: valueField{Value: "Solo Summary"}},
		PublicationDate: &publicationDate{
			Year: &valueField{Value: "2019"},
		},
	}

	rec := MapWork(nil, summary)

	if rec.Group != publication.GroupJournals {
		t.Errorf("Group = %q", rec.Group)
	}
	if rec.URL != "" {
		t.Errorf("URL should be empty without a DOI, got %q", rec.URL)
	}
	want := `Unknown authors, "Solo Summary", 2019.`
	if rec.Citation != want {
		t.Errorf("Citation = %q, want %q", rec.Citation, want)
	}
}

func TestWorkDateBadValues(t *testing.T) {
	w := &Work{PublicationDate: &publicationDate{
		Year:  &valueField{Value: "not a year"},
		Month: &valueField{Value: "3"},
	}}
	got := workDate(w)
	if got.Year != 0 || got.Month != 3 {
		t.Errorf("workDate = %+v", got)
	}
}
