package card

import "strings"

// Card represents one search result, normalized for display
type Card struct {
	ID       string // Source-prefixed ID (e.g., scryfall-0000579f-7b35-4ed3-b44c-db2a538066fe)
	Source   string // Source label shown on the badge
	Name     string
	Type     string // Type line
	ManaCost string
	SetName  string
	Rarity   string
	URL      string // Detail page
	Image    string // Empty when there is no usable image
}

// Key returns the composite key used to collapse duplicates
func (c Card) Key() string {
	return c.Name + "|" + c.SetName + "|" + c.Source
}

// placeholderPatterns match generic card back images
var placeholderPatterns = []string{
	"multiverseid=0",
	"cardback",
	"card_back",
	"/backs/",
	"default-card-back",
}

// IsPlaceholderImage reports whether imageURL is missing or points at a
// generic card back instead of real artwork
func IsPlaceholderImage(imageURL string) bool {
	if imageURL == "" {
		return true
	}

	normalized := strings.ToLower(imageURL)
	for _, pattern := range placeholderPatterns {
		if strings.Contains(normalized, pattern) {
			return true
		}
	}
	return false
}

// Dedupe keeps the first card for each name, set and source, in order
func Dedupe(cards []Card) []Card {
	seen := make(map[string]struct{}, len(cards))
	unique := make([]Card, 0, len(cards))

	for _, c := range cards {
		key := c.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, c)
	}

	return unique
}
