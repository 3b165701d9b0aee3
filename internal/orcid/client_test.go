package orcid

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pubsite/internal/publication"
)

const testORCID = "0000-0002-1825-0097"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc(fmt.Sprintf("/%s/works", testORCID), func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("missing Accept header")
		}
		fmt.Fprint(w, `{
			"group": [
				{"work-summary": [
					{"put-code": 1, "type": "journal-article",
					 "title": {"title": {"value": "Paper One"}},
					 "publication-date": {"year": {"value": "2020"}}},
					{"put-code": 1, "type": "journal-article",
					 "title": {"title": {"value": "Paper One Duplicate"}}}
				]},
				{"work-summary": [
					{"put-code": 2, "type": "conference-paper",
					 "title": {"title": {"value": "Talk Two"}},
					 "publication-date": {"year": {"value": "2023"}}}
				]}
			]
		}`)
	})
	mux.HandleFunc(fmt.Sprintf("/%s/work/1", testORCID), func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"put-code": 1, "type": "journal-article",
			"title": {"title": {"value": "Paper One"}},
			"journal-title": {"value": "Journal of Tests"},
			"publication-date": {"year": {"value": "2020"}, "month": {"value": "5"}},
			"external-ids": {"external-id": [
				{"external-id-type": "doi", "external-id-value": "10.9/one"}
			]},
			"contributors": {"contributor": [
				{"credit-name": {"value": "Jane Doe"}}
			]}
		}`)
	})
	mux.HandleFunc(fmt.Sprintf("/%s/work/2", testORCID), func(w http.ResponseWriter, r *http.Request) {
		// Detail lookup fails; Fetch should fall back to the summary.
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestWorksDeduplicatesByPutCode(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(WithBaseURL(srv.URL))

	works, err := client.Works(context.Background(), testORCID)
	if err != nil {
		t.Fatalf("Works: %v", err)
	}
	if len(works) != 2 {
		t.Fatalf("works = %d, want 2 (put-code dedup)", len(works))
	}
	// First occurrence wins.
	if got := works[0].Title.Title.Value; got != "Paper One" {
		t.Errorf("works[0] title = %q", got)
	}
}

func TestFetch(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(WithBaseURL(srv.URL))

	records, err := client.Fetch(context.Background(), testORCID)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}

	// First record is built from the detail.
	want := publication.Record{
		Group:    publication.GroupJournals,
		Citation: `Jane Doe, "Paper One", Journal of Tests, 2020, doi 10.9/one.`,
		DOI:      "10.9/one",
		URL:      "https://doi.org/10.9/one",
		Date:     publication.Date{Year: 2020, Month: 5},
	}
	if records[0] != want {
		t.Errorf("records[0] =\n%+v\nwant\n%+v", records[0], want)
	}

	// Second record falls back to the summary after the detail 500s.
	if records[1].Group != publication.GroupConferences {
		t.Errorf("records[1].Group = %q", records[1].Group)
	}
	if records[1].Citation != `Unknown authors, "Talk Two", 2023.` {
		t.Errorf("records[1].Citation = %q", records[1].Citation)
	}
}

func TestWorksNotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	client := NewClient(WithBaseURL(srv.URL))

	_, err := client.Works(context.Background(), testORCID)
	if !IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestWorksUnauthorizedWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()
	client := NewClient(WithBaseURL(srv.URL), WithToken(""))

	_, err := client.Works(context.Background(), testORCID)
	if !IsAuthError(err) {
		t.Fatalf("expected auth error, got %v", err)
	}
	// The error tells the operator how to fix it.
	if got := err.Error(); !strings.Contains(got, "ORCID_TOKEN") {
		t.Errorf("auth error should mention ORCID_TOKEN, got %q", got)
	}
}

func TestWorksSendsToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{"group": []}`)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL), WithToken("secret"))
	if _, err := client.Works(context.Background(), testORCID); err != nil {
		t.Fatalf("Works: %v", err)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("Authorization = %q", gotAuth)
	}
}
