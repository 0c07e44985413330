package leitner

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Compile-time interface checks.
var (
	_ json.Marshaler   = (*Box[string])(nil)
	_ json.Unmarshaler = (*Box[string])(nil)
	_ yaml.Marshaler   = (*Box[string])(nil)
	_ yaml.Unmarshaler = (*Box[string])(nil)
)

// A box serializes as its BoxConfig: repetitions, current_lesson and the
// decks in InitialDecks layout. Count and lesson schedules are derived.

// restore rebuilds b through NewBox, so a corrupt snapshot reports the same
// errors as an invalid config.
func (b *Box[C]) restore(cfg BoxConfig[C]) error {
	rebuilt, err := NewBox(cfg)
	if err != nil {
		return err
	}
	*b = *rebuilt
	return nil
}

// MarshalJSON implements json.Marshaler.
func (b *Box[C]) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Config())
}

// UnmarshalJSON implements json.Unmarshaler.
// It overwrites b, so decode only into a fresh Box.
func (b *Box[C]) UnmarshalJSON(data []byte) error {
	var cfg BoxConfig[C]
	if err := json.Unmarshal(data, &cfg); err != nil {
		return err
	}
	return b.restore(cfg)
}

// MarshalYAML implements yaml.Marshaler.
func (b *Box[C]) MarshalYAML() (any, error) {
	return b.Config(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
// It overwrites b, so decode only into a fresh Box.
func (b *Box[C]) UnmarshalYAML(value *yaml.Node) error {
	var cfg BoxConfig[C]
	if err := value.Decode(&cfg); err != nil {
		return err
	}
	return b.restore(cfg)
}
