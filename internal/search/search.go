// Package search runs a card query against a client and drives a View
// through the searching, results, no-results and error states.
package search

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/arcanaland/cardsearch/internal/card"
)

// StatusKind selects how a status message is styled
type StatusKind string

const (
	StatusInfo    StatusKind = "info"
	StatusWarning StatusKind = "warning"
	StatusSuccess StatusKind = "success"
	StatusError   StatusKind = "error"
)

// Status messages shown to the user
const (
	MsgSearching  = "Searching cards…"
	MsgEmptyQuery = "Enter a card name or search query."
	MsgNoResults  = "No cards found for this query."
)

// Client fetches normalized cards for a query
type Client interface {
	Search(ctx context.Context, query string) ([]card.Card, error)
}

// View is the status indicator and results container a search updates
type View interface {
	SetStatus(message string, kind StatusKind)
	ClearResults()
	AppendResults(cards []card.Card)
}

// Render replaces the view's results with cards and reports the count
func Render(v View, cards []card.Card) {
	v.ClearResults()

	if len(cards) == 0 {
		v.SetStatus(MsgNoResults, StatusWarning)
		return
	}

	v.AppendResults(cards)
	v.SetStatus(fmt.Sprintf("Found %d cards.", len(cards)), StatusSuccess)
}

// Searcher runs queries against Client and renders into View. Only the
// most recently started run may render; older runs finishing late are
// dropped.
type Searcher struct {
	Client Client
	View   View

	generation atomic.Uint64
}

// NewSearcher returns a Searcher bound to a client and view
func NewSearcher(client Client, view View) *Searcher {
	return &Searcher{Client: client, View: view}
}

// Run searches for query, dedupes the results and renders them. Client
// errors are returned as-is.
func (s *Searcher) Run(ctx context.Context, query string) error {
	gen := s.generation.Add(1)

	s.View.SetStatus(MsgSearching, StatusInfo)
	s.View.ClearResults()

	cards, err := s.Client.Search(ctx, query)
	if s.generation.Load() != gen {
		return nil
	}
	if err != nil {
		return err
	}

	Render(s.View, card.Dedupe(cards))
	return nil
}

// Form handles query submissions
type Form struct {
	Searcher *Searcher
}

// NewForm returns a Form that searches with client and renders into view
func NewForm(client Client, view View) *Form {
	return &Form{Searcher: NewSearcher(client, view)}
}

// Submit validates the raw query and runs it. Failures end up in the
// view's status rather than being returned.
func (f *Form) Submit(ctx context.Context, rawQuery string) {
	query := strings.TrimSpace(rawQuery)
	if query == "" {
		f.Searcher.View.SetStatus(MsgEmptyQuery, StatusWarning)
		return
	}

	if err := f.Searcher.Run(ctx, query); err != nil {
		f.Searcher.View.SetStatus("Search failed: "+err.Error(), StatusError)
	}
}
