package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/cardsearch/internal/card"
	"github.com/arcanaland/cardsearch/internal/render"
	"github.com/arcanaland/cardsearch/internal/search"
)

func renderPage(t *testing.T, p *render.Page) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, p.WriteHTML(&buf))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestPageWriteHTML(t *testing.T) {
	t.Run("idle page has the form and an empty grid", func(t *testing.T) {
		doc := renderPage(t, render.NewPage(""))

		assert.Equal(t, 1, doc.Find("form#search-form input#card-query[name=q]").Length())
		status := doc.Find("#status-message")
		assert.Equal(t, "info", status.AttrOr("data-type", ""))
		assert.Empty(t, strings.TrimSpace(status.Text()))
		assert.Equal(t, 0, doc.Find("#results-grid .card-item").Length())
	})

	t.Run("renders a full card entry", func(t *testing.T) {
		p := render.NewPage("bolt")
		search.Render(p, []card.Card{{
			ID:       "scryfall-1",
			Source:   "Scryfall",
			Name:     "Lightning Bolt",
			Type:     "Instant",
			ManaCost: "{R}",
			SetName:  "Magic 2010",
			Rarity:   "common",
			URL:      "https://scryfall.com/card/m10/146",
			Image:    "https://cards.scryfall.io/normal/bolt.jpg",
		}})
		doc := renderPage(t, p)

		assert.Equal(t, "bolt", doc.Find("#card-query").AttrOr("value", ""))
		assert.Equal(t, "success", doc.Find("#status-message").AttrOr("data-type", ""))
		assert.Equal(t, "Found 1 cards.", strings.TrimSpace(doc.Find("#status-message").Text()))

		item := doc.Find("#results-grid article.card-item")
		require.Equal(t, 1, item.Length())

		img := item.Find(".card-image-wrap img")
		assert.Equal(t, "https://cards.scryfall.io/normal/bolt.jpg", img.AttrOr("src", ""))
		assert.Equal(t, "Lightning Bolt", img.AttrOr("alt", ""))
		assert.Equal(t, "lazy", img.AttrOr("loading", ""))
		assert.Equal(t, 0, item.Find(".card-image-placeholder").Length())

		assert.Equal(t, "Lightning Bolt", item.Find("h3").Text())
		meta := item.Find(".card-meta")
		require.Equal(t, 3, meta.Length())
		assert.Equal(t, "Instant", meta.Eq(0).Text())
		assert.Equal(t, "Mana: {R} | Set: Magic 2010", meta.Eq(1).Text())
		assert.Equal(t, "Rarity: common", meta.Eq(2).Text())

		link := item.Find("a.card-link")
		assert.Equal(t, "https://scryfall.com/card/m10/146", link.AttrOr("href", ""))
		assert.Equal(t, "_blank", link.AttrOr("target", ""))
		assert.Equal(t, "noopener noreferrer", link.AttrOr("rel", ""))
		assert.Equal(t, "Scryfall", item.Find(".source-badge").Text())
	})

	t.Run("card without image gets a placeholder and fallbacks", func(t *testing.T) {
		p := render.NewPage("x")
		search.Render(p, []card.Card{{Source: "Scryfall"}})
		doc := renderPage(t, p)

		item := doc.Find("article.card-item")
		require.Equal(t, 1, item.Length())
		assert.Equal(t, 0, item.Find("img").Length())
		assert.Equal(t, "No image", item.Find(".card-image-placeholder").Text())
		assert.Equal(t, "Unknown card", item.Find("h3").Text())
		meta := item.Find(".card-meta")
		assert.Equal(t, "Type unavailable", meta.Eq(0).Text())
		assert.Equal(t, "Mana: N/A | Set: N/A", meta.Eq(1).Text())
		assert.Equal(t, "Rarity: N/A", meta.Eq(2).Text())
		assert.Equal(t, "Found 1 cards.", strings.TrimSpace(doc.Find("#status-message").Text()))
	})

	t.Run("no results warns and renders no cards", func(t *testing.T) {
		p := render.NewPage("nothing")
		p.AppendResults([]card.Card{{Name: "stale"}})
		search.Render(p, nil)
		doc := renderPage(t, p)

		assert.Equal(t, 0, doc.Find("article.card-item").Length())
		assert.Equal(t, "warning", doc.Find("#status-message").AttrOr("data-type", ""))
		assert.Equal(t, "No cards found for this query.", strings.TrimSpace(doc.Find("#status-message").Text()))
	})

	t.Run("cards keep their order", func(t *testing.T) {
		p := render.NewPage("q")
		search.Render(p, []card.Card{{Name: "First"}, {Name: "Second"}, {Name: "Third"}})
		doc := renderPage(t, p)

		var names []string
		doc.Find("article.card-item h3").Each(func(_ int, s *goquery.Selection) {
			names = append(names, s.Text())
		})
		assert.Equal(t, []string{"First", "Second", "Third"}, names)
	})

	t.Run("card data is escaped", func(t *testing.T) {
		p := render.NewPage(`"><script>alert(1)</script>`)
		search.Render(p, []card.Card{{Name: `<b>Bold</b>`, Type: `<script>x()</script>`}})

		var buf bytes.Buffer
		require.NoError(t, p.WriteHTML(&buf))
		assert.NotContains(t, buf.String(), "<b>Bold</b>")
		assert.NotContains(t, buf.String(), "<script>x()</script>")
		assert.NotContains(t, buf.String(), "<script>alert(1)</script>")

		doc, err := goquery.NewDocumentFromReader(&buf)
		require.NoError(t, err)
		assert.Equal(t, "<b>Bold</b>", doc.Find("article.card-item h3").Text())
	})

	t.Run("every in-page anchor has a target", func(t *testing.T) {
		doc := renderPage(t, render.NewPage(""))

		anchors := doc.Find(`a[href^="#"]`)
		require.Positive(t, anchors.Length())
		anchors.Each(func(_ int, a *goquery.Selection) {
			id := strings.TrimPrefix(a.AttrOr("href", ""), "#")
			assert.Equal(t, 1, doc.Find("#"+id).Length(), id)
		})
	})

	t.Run("error status is rendered with its kind", func(t *testing.T) {
		p := render.NewPage("bolt")
		p.SetStatus("Search failed: Scryfall error (503)", search.StatusError)
		doc := renderPage(t, p)

		assert.Equal(t, "error", doc.Find("#status-message").AttrOr("data-type", ""))
		assert.Contains(t, doc.Find("#status-message").Text(), "Search failed: Scryfall error (503)")
	})
}
