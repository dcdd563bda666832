package card

// SourceScryfall labels cards that came from the Scryfall API
const SourceScryfall = "Scryfall"

// RawCard is the subset of a Scryfall card object that we read
type RawCard struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	TypeLine    string     `json:"type_line"`
	ManaCost    string     `json:"mana_cost"`
	SetName     string     `json:"set_name"`
	Rarity      string     `json:"rarity"`
	ScryfallURI string     `json:"scryfall_uri"`
	ImageURIs   *ImageURIs `json:"image_uris,omitempty"`
	CardFaces   []RawFace  `json:"card_faces,omitempty"`
}

// RawFace is one face of a multi-faced card
type RawFace struct {
	Name      string     `json:"name"`
	ImageURIs *ImageURIs `json:"image_uris,omitempty"`
}

// ImageURIs holds the image sizes Scryfall publishes for a card or face
type ImageURIs struct {
	Small  string `json:"small,omitempty"`
	Normal string `json:"normal,omitempty"`
	Large  string `json:"large,omitempty"`
}

// Normalize converts a raw record into a display card. Fields are copied
// as-is; fallback text for missing values is left to the renderer.
func Normalize(raw RawCard) Card {
	image := raw.normalImage()
	if IsPlaceholderImage(image) {
		image = ""
	}

	return Card{
		ID:       "scryfall-" + raw.ID,
		Source:   SourceScryfall,
		Name:     raw.Name,
		Type:     raw.TypeLine,
		ManaCost: raw.ManaCost,
		SetName:  raw.SetName,
		Rarity:   raw.Rarity,
		URL:      raw.ScryfallURI,
		Image:    image,
	}
}

// normalImage prefers the card's own normal image, then the first face's
func (r RawCard) normalImage() string {
	if r.ImageURIs != nil && r.ImageURIs.Normal != "" {
		return r.ImageURIs.Normal
	}
	if len(r.CardFaces) > 0 && r.CardFaces[0].ImageURIs != nil {
		return r.CardFaces[0].ImageURIs.Normal
	}
	return ""
}
