package orcid

// The ORCID v3.0 public API nests most scalar values one level deep inside
// {"value": ...} objects; the types here mirror that wire shape.

// valueField is a {"value": "..."} wrapper.
type valueField struct {
	Value string `json:"value"`
}

// titleField wraps a work title: {"title": {"value": "..."}}.
type titleField struct {
	Title valueField `json:"title"`
}

// publicationDate carries year/month/day as string-valued fields, any of
// which may be absent.
type publicationDate struct {
	Year  *valueField `json:"year"`
	Month *valueField `json:"month"`
	Day   *valueField `json:"day"`
}

// externalID is one entry of a work's external-ids list.
type externalID struct {
	Type  string `json:"external-id-type"`
	Value string `json:"external-id-value"`
}

type externalIDs struct {
	ExternalID []externalID `json:"external-id"`
}

// contributor is one author entry on a work detail.
type contributor struct {
	CreditName *valueField `json:"credit-name"`
}

type contributors struct {
	Contributor []contributor `json:"contributor"`
}

// Work is an ORCID work summary or detail. Summaries (from the works
// listing) omit contributors; details carry them.
type Work struct {
	PutCode         int64            `json:"put-code"`
	Type            string           `json:"type"`
	Title           *titleField      `json:"title"`
	JournalTitle    *valueField      `json:"journal-title"`
	PublicationDate *publicationDate `json:"publication-date"`
	ExternalIDs     *externalIDs     `json:"external-ids"`
	Contributors    *contributors    `json:"contributors"`
}

// worksResponse is the shape of GET /{id}/works: summaries grouped by
// preferred version.
type worksResponse struct {
	Group []workGroup `json:"group"`
}

type workGroup struct {
	WorkSummary []Work `json:"work-summary"`
}
