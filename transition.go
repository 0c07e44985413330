package leitner

import "reflect"

// AddToUnknown returns a box with card appended to the unknown deck.
// An absent card (the zero value of C) is ignored and b itself is returned.
// For struct cards this means a card with every field zero is dropped.
func (b *Box[C]) AddToUnknown(card C) *Box[C] {
	if isAbsent(card) {
		return b
	}
	out, _ := b.put(DeckUnknown, card)
	return out
}

// AddToLearned returns a box with card appended to the learned deck.
// An absent card (the zero value of C) is ignored and b itself is returned.
func (b *Box[C]) AddToLearned(card C) *Box[C] {
	if isAbsent(card) {
		return b
	}
	out, _ := b.put(DeckLearned, card)
	return out
}

// AddToLessons returns a box with card appended to the slot of the current
// lesson. An absent card is ignored and b itself is returned, as it is when
// the current lesson lies outside the ring.
func (b *Box[C]) AddToLessons(card C) *Box[C] {
	if isAbsent(card) {
		return b
	}
	out, _ := b.put(DeckLessons, card)
	return out
}

// MoveToUnknown moves the first card matching id to the end of the unknown
// deck. If no card matches, b itself is returned.
func (b *Box[C]) MoveToUnknown(id Identity[C]) *Box[C] {
	return b.MoveTo(DeckUnknown, id)
}

// MoveToLearned moves the first card matching id to the end of the learned
// deck. If no card matches, b itself is returned.
func (b *Box[C]) MoveToLearned(id Identity[C]) *Box[C] {
	return b.MoveTo(DeckLearned, id)
}

// MoveToLessons moves the first card matching id to the end of the current
// lesson's slot. If no card matches, or the current lesson lies outside the
// ring, b itself is returned.
func (b *Box[C]) MoveToLessons(id Identity[C]) *Box[C] {
	return b.MoveTo(DeckLessons, id)
}

// MoveTo moves the first card matching id to the end of deck. A card
// already in deck is moved to its end. If no card matches, or deck cannot
// take a card, b itself is returned.
func (b *Box[C]) MoveTo(deck Deck, id Identity[C]) *Box[C] {
	if !b.accepts(deck) {
		return b
	}
	removed, card, ok := b.take(id)
	if !ok {
		return b
	}
	out, _ := removed.put(deck, card)
	return out
}

// accepts reports whether put(deck, ...) would succeed.
func (b *Box[C]) accepts(deck Deck) bool {
	switch deck {
	case DeckUnknown, DeckLearned:
		return true
	case DeckLessons:
		return b.currentLesson >= 0 && b.currentLesson < len(b.lessons)
	default:
		return false
	}
}

// put appends card to deck; lessons means the current lesson's slot.
// Unlike the AddTo methods it keeps zero-valued cards, so a card taken out
// of the box by a move always lands somewhere.
func (b *Box[C]) put(deck Deck, card C) (*Box[C], bool) {
	if !b.accepts(deck) {
		return b, false
	}
	switch deck {
	case DeckUnknown:
		out := b.with()
		out.unknown = appendCard(b.unknown, card)
		return out, true
	case DeckLearned:
		out := b.with()
		out.learned = appendCard(b.learned, card)
		return out, true
	default:
		n := b.currentLesson
		return b.withLesson(n, appendCard(b.lessons[n].Cards, card)), true
	}
}

// isAbsent reports whether card is the zero value of its type: a nil
// pointer, interface, slice or map, an empty string, 0, or a zero struct.
func isAbsent[C any](card C) bool {
	return reflect.ValueOf(&card).Elem().IsZero()
}
