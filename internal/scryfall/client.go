// Package scryfall is a minimal client for the Scryfall card search API.
package scryfall

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/arcanaland/cardsearch/internal/card"
)

// DefaultBaseURL is the public card search endpoint
const DefaultBaseURL = "https://api.scryfall.com/cards/search"

// DefaultUserAgent identifies the client to Scryfall
const DefaultUserAgent = "cardsearch/1.0"

// StatusError is returned when Scryfall answers with a non-2xx status
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Scryfall error (%d)", e.StatusCode)
}

// Client searches Scryfall for cards
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
	Logger     *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL points the client at another endpoint
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.BaseURL = baseURL }
}

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTPClient = hc }
}

// WithUserAgent sets the User-Agent header
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.UserAgent = ua }
}

// WithLogger sets the logger for request tracing
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.Logger = logger }
}

// NewClient returns a Client with defaults applied
func NewClient(opts ...Option) *Client {
	c := &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{},
		UserAgent:  DefaultUserAgent,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// searchResponse is a Scryfall list object. Data stays raw so that a
// payload whose data field is not an array degrades to no results.
type searchResponse struct {
	Data json.RawMessage `json:"data"`
}

// Search runs one query and returns normalized cards in response order
func (c *Client) Search(ctx context.Context, query string) ([]card.Card, error) {
	reqURL := c.BaseURL + "?q=" + escapeQuery(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("scryfall: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	c.Logger.Debug("searching scryfall", "url", reqURL)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scryfall: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.Logger.Debug("scryfall returned an error status", "status", resp.StatusCode)
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("scryfall: read body: %w", err)
	}

	raws, err := decodeCards(body)
	if err != nil {
		return nil, err
	}

	cards := make([]card.Card, 0, len(raws))
	for _, raw := range raws {
		cards = append(cards, card.Normalize(raw))
	}

	c.Logger.Debug("scryfall search finished", "cards", len(cards))
	return cards, nil
}

// decodeCards extracts the card list from a search response body. Only a
// body that is not JSON at all is an error.
func decodeCards(body []byte) ([]card.RawCard, error) {
	if !json.Valid(body) {
		return nil, fmt.Errorf("scryfall: decode: invalid JSON response")
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, nil
	}

	var sr searchResponse
	if err := json.Unmarshal(trimmed, &sr); err != nil {
		return nil, fmt.Errorf("scryfall: decode: %w", err)
	}

	data := bytes.TrimSpace(sr.Data)
	if len(data) == 0 || data[0] != '[' {
		return nil, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, nil
	}

	raws := make([]card.RawCard, len(items))
	for i, item := range items {
		// Records that are not card objects normalize from the zero value
		_ = json.Unmarshal(item, &raws[i])
	}
	return raws, nil
}

// escapeQuery percent-encodes every reserved character, spaces as %20
func escapeQuery(query string) string {
	return strings.ReplaceAll(url.QueryEscape(query), "+", "%20")
}
