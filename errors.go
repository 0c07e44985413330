package leitner

import "errors"

// Sentinel errors for the leitner package.
// Use errors.Is to check: errors.Is(err, leitner.ErrInvalidDecks)
var (
	ErrInvalidDecks       = errors.New("leitner: initial decks do not match lesson count")
	ErrInvalidRepetitions = errors.New("leitner: repetitions out of range")
	ErrInvalidLesson      = errors.New("leitner: current lesson out of range")
	ErrInvalidDeck        = errors.New("leitner: invalid deck")
)
