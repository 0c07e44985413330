package leitner

import "slices"

// Lesson is one slot of the lesson ring.
type Lesson[C any] struct {
	RepeatOn []int `json:"repeat_on" yaml:"repeat_on"` // lessons on which Cards come due, in review order.
	Cards    []C   `json:"cards" yaml:"cards"`
}

// IsDueOn reports whether the cards of this slot are due on the given lesson.
func (l Lesson[C]) IsDueOn(lesson int) bool {
	return slices.Contains(l.RepeatOn, lesson)
}

// LastLesson returns the lesson of the final scheduled review, or -1 when
// the slot has no schedule (zero repetitions).
func (l Lesson[C]) LastLesson() int {
	if len(l.RepeatOn) == 0 {
		return -1
	}
	return l.RepeatOn[len(l.RepeatOn)-1]
}

// clone returns a deep copy of the lesson. Cards are copied by value.
func (l Lesson[C]) clone() Lesson[C] {
	return Lesson[C]{
		RepeatOn: slices.Clone(l.RepeatOn),
		Cards:    cloneCards(l.Cards),
	}
}

// withCards returns l with its card list replaced. RepeatOn is shared.
func (l Lesson[C]) withCards(cards []C) Lesson[C] {
	l.Cards = cards
	return l
}

// cloneCards returns a fresh, non-nil copy of cards.
func cloneCards[C any](cards []C) []C {
	out := make([]C, len(cards))
	copy(out, cards)
	return out
}

// appendCard returns a new slice holding cards followed by card.
// The input's backing array is never written.
func appendCard[C any](cards []C, card C) []C {
	out := make([]C, len(cards), len(cards)+1)
	copy(out, cards)
	return append(out, card)
}

// removeCard returns a new slice holding cards without the element at i.
func removeCard[C any](cards []C, i int) []C {
	out := make([]C, 0, len(cards)-1)
	out = append(out, cards[:i]...)
	return append(out, cards[i+1:]...)
}
