package site

import "pubsite/internal/config"

// ProfileLink is the view model of one external profile link. A link with no
// configured identifier is not an error: it renders disabled with a prompt
// telling the operator what to configure.
type ProfileLink struct {
	Text     string // visible link text
	URL      string // href target
	Disabled bool
}

// orcidURLPrefix is prepended to a bare ORCID iD to form the profile URL.
const orcidURLPrefix = "https://orcid.org/"

// Placeholder texts for unconfigured profile links.
const (
	scholarPrompt = "Add Scholar profile URL"
	orcidPrompt   = "Add ORCID iD"
)

// ProfileLinks builds the Scholar and ORCID link models from the site
// configuration. The two settings are independent: either may be absent
// while the other is set.
func ProfileLinks(cfg *config.Config) (scholar, orcid ProfileLink) {
	if cfg.ScholarProfileURL != "" {
		scholar = ProfileLink{Text: "Open profile", URL: cfg.ScholarProfileURL}
	} else {
		scholar = ProfileLink{Text: scholarPrompt, URL: "#", Disabled: true}
	}

	if cfg.ORCIDID != "" {
		orcid = ProfileLink{Text: cfg.ORCIDID, URL: orcidURLPrefix + cfg.ORCIDID}
	} else {
		orcid = ProfileLink{Text: orcidPrompt, URL: "#", Disabled: true}
	}

	return scholar, orcid
}
