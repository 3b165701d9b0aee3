// Package site renders the CV page from a publications document. Rendering
// is a pure function from (document, configuration) to HTML; citation text
// passes through html/template's contextual escaping, so markup in an
// externally produced citation displays as text instead of being interpreted.
package site

import (
	"bytes"
	"html/template"
	"time"

	"pubsite/internal/config"
	"pubsite/internal/publication"
)

// compiledTemplate is parsed at init time to fail fast on template errors.
var compiledTemplate *template.Template

func init() {
	compiledTemplate = template.Must(template.New("page").Parse(pageTemplate))
}

// LoadFailureNotice is the single informational item shown when the
// publications document cannot be loaded.
const LoadFailureNotice = "Could not load publications."

// pageData is the immutable view state the page template renders from.
type pageData struct {
	Name      string
	Title     string
	Year      int
	Scholar   ProfileLink
	ORCID     ProfileLink
	Tabs      []tabData
	Generated string
	Notice    string // when set, replaces the publication lists
}

// tabData is one group tab plus its pre-rendered record list.
type tabData struct {
	Key     string
	Title   string
	Active  bool
	Records []publication.Record
}

// Render produces the complete CV page for a loaded publications document.
func Render(doc *publication.Document, cfg *config.Config) (string, error) {
	scholar, orcid := ProfileLinks(cfg)
	return render(pageData{
		Name:      cfg.Name,
		Title:     cfg.Title,
		Year:      time.Now().Year(),
		Scholar:   scholar,
		ORCID:     orcid,
		Tabs:      buildTabs(doc),
		Generated: doc.GeneratedUTC,
	})
}

// RenderUnavailable produces the page shown when the publications document
// failed to load: the same chrome with a single informational list item in
// place of the publication lists.
func RenderUnavailable(cfg *config.Config) (string, error) {
	scholar, orcid := ProfileLinks(cfg)
	return render(pageData{
		Name:    cfg.Name,
		Title:   cfg.Title,
		Year:    time.Now().Year(),
		Scholar: scholar,
		ORCID:   orcid,
		Notice:  LoadFailureNotice,
	})
}

// RenderGroup renders the list items of one group as an HTML fragment, in
// document order. Unrecognized group keys yield an empty fragment, not an
// error.
func RenderGroup(doc *publication.Document, key string) (string, error) {
	var buf bytes.Buffer
	if err := compiledTemplate.ExecuteTemplate(&buf, "publist", doc.Group(key)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// buildTabs assembles one tab per recognized group, journals active by
// default.
func buildTabs(doc *publication.Document) []tabData {
	tabs := make([]tabData, 0, len(publication.GroupKeys))
	for _, key := range publication.GroupKeys {
		tabs = append(tabs, tabData{
			Key:     key,
			Title:   publication.GroupTitle(key),
			Active:  key == publication.GroupJournals,
			Records: doc.Group(key),
		})
	}
	return tabs
}

func render(data pageData) (string, error) {
	var buf bytes.Buffer
	if err := compiledTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{if .Name}}{{.Name}} | CV{{else}}CV{{end}}</title>
  <style>
    * { box-sizing: border-box; }
    body {
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
      margin: 0 auto;
      max-width: 760px;
      padding: 2rem 1rem 4rem;
      color: #222;
      background: #fafafa;
      line-height: 1.5;
    }
    header h1 { margin-bottom: 0.1em; }
    .subtitle { color: #666; margin-top: 0; }
    .profiles { display: flex; gap: 2rem; margin: 1.5rem 0; flex-wrap: wrap; }
    .profile-name { display: block; font-size: 0.8rem; text-transform: uppercase; color: #888; }
    a.link { color: #0b5fa5; }
    a.link.disabled { color: #999; pointer-events: none; text-decoration: none; font-style: italic; }
    .tabs { display: flex; gap: 0.5rem; margin-bottom: 1rem; }
    .tab {
      border: 1px solid #ccc;
      background: white;
      border-radius: 4px;
      padding: 0.4rem 0.9rem;
      cursor: pointer;
      font: inherit;
    }
    .tab.active { background: #0b5fa5; border-color: #0b5fa5; color: white; }
    .publist { list-style: none; padding: 0; margin: 0; }
    .publist.hidden { display: none; }
    .publist li { padding: 0.5rem 0; border-bottom: 1px solid #eee; }
    .tag {
      display: inline-block;
      min-width: 2.2em;
      text-align: center;
      background: #e8eef4;
      border-radius: 3px;
      font-size: 0.8rem;
      margin-right: 0.4em;
      padding: 0.1em 0.3em;
      color: #345;
    }
    .notice { color: #888; font-style: italic; }
    a.doi { font-size: 0.85rem; margin-left: 0.4em; }
    .generated { color: #999; font-size: 0.8rem; min-height: 1em; }
    footer { margin-top: 3rem; color: #999; font-size: 0.85rem; }
  </style>
</head>
<body>
  <header>
    <h1>{{.Name}}</h1>
    {{if .Title}}<p class="subtitle">{{.Title}}</p>{{end}}
  </header>
  <section class="profiles">
    <div class="profile">
      <span class="profile-name">Google Scholar</span>
      {{template "profilelink" .Scholar}}
    </div>
    <div class="profile">
      <span class="profile-name">ORCID</span>
      {{template "profilelink" .ORCID}}
    </div>
  </section>
  <section class="publications">
    <h2>Publications</h2>
{{if .Notice}}    <ol class="publist">
      <li class="notice">{{.Notice}}</li>
    </ol>
{{else}}    <nav class="tabs">
      {{range .Tabs}}<button class="tab{{if .Active}} active{{end}}" data-group="{{.Key}}">{{.Title}}</button>
      {{end}}</nav>
    {{range .Tabs}}<ol class="publist{{if not .Active}} hidden{{end}}" id="group-{{.Key}}">{{template "publist" .Records}}</ol>
    {{end}}<p class="generated">{{if .Generated}}Last updated {{.Generated}}{{end}}</p>
{{end}}  </section>
  <footer>&copy; <span id="year">{{.Year}}</span> {{.Name}}</footer>
  <script>
    document.querySelectorAll(".tab").forEach(function (tab) {
      tab.addEventListener("click", function () {
        document.querySelectorAll(".tab").forEach(function (t) {
          t.classList.remove("active");
        });
        tab.classList.add("active");
        document.querySelectorAll(".publist[id]").forEach(function (list) {
          list.classList.add("hidden");
        });
        var selected = document.getElementById("group-" + tab.dataset.group);
        if (selected) {
          selected.classList.remove("hidden");
        }
      });
    });
  </script>
</body>
</html>

{{define "publist"}}{{range .}}<li><span class="tag">{{.Label}}</span><span class="citation">{{.Citation}}</span>{{if .URL}} <a class="doi" href="{{.URL}}" target="_blank" rel="noopener">DOI</a>{{end}}</li>
{{end}}{{end}}

{{define "profilelink"}}{{if .Disabled}}<a class="link disabled" href="#">{{.Text}}</a>{{else}}<a class="link" href="{{.URL}}" target="_blank" rel="noopener">{{.Text}}</a>{{end}}{{end}}`
