package leitner

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// Deck identifies one of the three top-level card buckets of a box.
type Deck int

const (
	DeckUnknown Deck = iota + 1 // Cards not yet scheduled.
	DeckLearned                 // Cards retired from review.
	DeckLessons                 // Cards parked in a lesson slot.
)

var (
	deckNames  = [...]string{DeckUnknown: "unknown", DeckLearned: "learned", DeckLessons: "lessons"}
	deckByName = map[string]Deck{
		"unknown": DeckUnknown,
		"learned": DeckLearned,
		"lessons": DeckLessons,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Deck(0)
	_ json.Marshaler           = Deck(0)
	_ json.Unmarshaler         = (*Deck)(nil)
	_ encoding.TextMarshaler   = Deck(0)
	_ encoding.TextUnmarshaler = (*Deck)(nil)
)

// ParseDeck returns the deck with the given name ("unknown", "learned",
// "lessons").
func ParseDeck(name string) (Deck, error) {
	d, ok := deckByName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDeck, name)
	}
	return d, nil
}

// IsValid reports whether d is one of DeckUnknown, DeckLearned, DeckLessons.
func (d Deck) IsValid() bool {
	return d >= DeckUnknown && d <= DeckLessons
}

// String returns the deck name. For invalid values it returns "Deck(n)".
func (d Deck) String() string {
	if d.IsValid() {
		return deckNames[d]
	}
	return fmt.Sprintf("Deck(%d)", int(d))
}

// MarshalText implements encoding.TextMarshaler.
func (d Deck) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDeck, int(d))
	}
	return []byte(deckNames[d]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Deck) UnmarshalText(text []byte) error {
	v, err := ParseDeck(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalJSON implements json.Marshaler. Deck serializes as a JSON string.
func (d Deck) MarshalJSON() ([]byte, error) {
	text, err := d.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (d *Deck) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDeck, data)
	}
	return d.UnmarshalText([]byte(s))
}
