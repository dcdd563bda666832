// Package render provides the HTML and terminal views for card searches.
package render

import (
	"embed"
	"html/template"
	"io"

	"github.com/arcanaland/cardsearch/internal/card"
	"github.com/arcanaland/cardsearch/internal/search"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageTemplateName names the results page template
const PageTemplateName = "page.html"

var pageTemplate = template.Must(
	template.New(PageTemplateName).Funcs(template.FuncMap{
		"fallback": fallback,
	}).ParseFS(templateFS, "templates/page.html"),
)

// Page is an in-memory results page. It implements search.View and is
// written out as a complete HTML document.
type Page struct {
	Query         string
	StatusMessage string
	StatusKind    search.StatusKind
	Cards         []card.Card
}

// NewPage returns an idle page for query
func NewPage(query string) *Page {
	return &Page{Query: query, StatusKind: search.StatusInfo}
}

func (p *Page) SetStatus(message string, kind search.StatusKind) {
	p.StatusMessage = message
	p.StatusKind = kind
}

func (p *Page) ClearResults() {
	p.Cards = nil
}

func (p *Page) AppendResults(cards []card.Card) {
	p.Cards = append(p.Cards, cards...)
}

// WriteHTML renders the page
func (p *Page) WriteHTML(w io.Writer) error {
	return pageTemplate.Execute(w, p)
}

// Template returns the parsed page template, executed with a *Page
func Template() *template.Template {
	return pageTemplate
}

// fallback returns value, or def when value is empty
func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
