package main

import (
	leitner "github.com/dra1n/leitner-box"
)

// Card is a two-sided flashcard.
type Card struct {
	ID    string `json:"id" yaml:"id"`
	Front string `json:"front" yaml:"front"`
	Back  string `json:"back,omitempty" yaml:"back,omitempty"`
}

// matchCard selects the card whose ID or front text equals key.
func matchCard(key string) leitner.Identity[Card] {
	return leitner.MatchFunc[Card](func(c Card) bool {
		return c.ID == key || c.Front == key
	})
}

// byID selects exactly the card with the given ID.
func byID(id string) leitner.Identity[Card] {
	return leitner.MatchFunc[Card](func(c Card) bool { return c.ID == id })
}
