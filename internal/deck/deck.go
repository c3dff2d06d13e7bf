// Package deck loads the cards shown by the carousel from TOML files.
package deck

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Card is one carousel item.
type Card struct {
	Title    string `toml:"title"`
	Subtitle string `toml:"subtitle"`
	Body     string `toml:"body"`
	Accent   string `toml:"accent"` // "#rrggbb"; empty uses the theme accent
}

// Deck is a titled, ordered set of cards.
type Deck struct {
	Title string `toml:"title"`
	Cards []Card `toml:"card"`
	// Path is where the deck was loaded from; empty for the sample deck.
	Path string `toml:"-"`
}

// ErrNoTitle is returned when a card has no title.
var ErrNoTitle = errors.New("card has no title")

// Load reads and parses the deck file at path.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	d.Path = path
	return d, nil
}

// Parse decodes a deck. Unknown keys are rejected so typos surface early.
// A deck without cards is valid.
func Parse(data []byte) (*Deck, error) {
	var d Deck
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("parse deck: %s", strings.TrimSpace(strict.String()))
		}
		return nil, fmt.Errorf("parse deck: %w", err)
	}
	for i, c := range d.Cards {
		if strings.TrimSpace(c.Title) == "" {
			return nil, fmt.Errorf("card %d: %w", i+1, ErrNoTitle)
		}
	}
	if d.Title == "" {
		d.Title = "Untitled deck"
	}
	return &d, nil
}

// Key identifies the deck for position bookkeeping.
func (d *Deck) Key() string {
	if d.Path != "" {
		return d.Path
	}
	return "sample:" + d.Title
}

// Sample returns the built-in deck shown when no deck is configured.
func Sample() *Deck {
	return &Deck{
		Title: "Northern Lights",
		Cards: []Card{
			{Title: "Tromsø", Subtitle: "Norway", Body: "Aurora oval overhead from September to March.", Accent: "#a78bfa"},
			{Title: "Abisko", Subtitle: "Sweden", Body: "A rain shadow keeps the sky clear over the lake.", Accent: "#42b883"},
			{Title: "Rovaniemi", Subtitle: "Finland", Body: "Forest cabins right on the Arctic Circle.", Accent: "#f1a208"},
			{Title: "Reykjavík", Subtitle: "Iceland", Body: "Drive twenty minutes out of town for dark skies.", Accent: "#5fafff"},
			{Title: "Yellowknife", Subtitle: "Canada", Body: "Flat tundra and long cold nights.", Accent: "#ff5555"},
		},
	}
}
