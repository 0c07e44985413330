package leitner

// location records where a card was found: its deck, the lesson slot when
// the deck is DeckLessons, and its index within that container.
type location struct {
	deck   Deck
	lesson int
	index  int
}

// locate finds the first card matching id. The search order is unknown,
// then learned, then lesson slots in ascending index order; within each
// container the first matching card wins.
func (b *Box[C]) locate(id Identity[C]) (location, bool) {
	if i := indexOf(b.unknown, id); i >= 0 {
		return location{deck: DeckUnknown, index: i}, true
	}
	if i := indexOf(b.learned, id); i >= 0 {
		return location{deck: DeckLearned, index: i}, true
	}
	for n, l := range b.lessons {
		if i := indexOf(l.Cards, id); i >= 0 {
			return location{deck: DeckLessons, lesson: n, index: i}, true
		}
	}
	return location{}, false
}

// take removes the first card matching id and returns the updated box along
// with the removed card. It reports false, and returns b itself, when no
// card matches.
func (b *Box[C]) take(id Identity[C]) (*Box[C], C, bool) {
	loc, ok := b.locate(id)
	if !ok {
		var zero C
		return b, zero, false
	}

	// Removal reuses the index found above; the container is not scanned twice.
	switch loc.deck {
	case DeckUnknown:
		card := b.unknown[loc.index]
		out := b.with()
		out.unknown = removeCard(b.unknown, loc.index)
		return out, card, true
	case DeckLearned:
		card := b.learned[loc.index]
		out := b.with()
		out.learned = removeCard(b.learned, loc.index)
		return out, card, true
	default:
		cards := b.lessons[loc.lesson].Cards
		card := cards[loc.index]
		return b.withLesson(loc.lesson, removeCard(cards, loc.index)), card, true
	}
}

func indexOf[C any](cards []C, id Identity[C]) int {
	for i, c := range cards {
		if id.Matches(c) {
			return i
		}
	}
	return -1
}
