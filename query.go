package leitner

// CardInfo describes where a card currently sits.
type CardInfo struct {
	Deck Deck `json:"deck" yaml:"deck"`
	// RepetitionsLeft counts the scheduled reviews still ahead of the card,
	// the one due on the current lesson included. Set only for DeckLessons.
	RepetitionsLeft *int `json:"repetitions_left,omitempty" yaml:"repetitions_left,omitempty"`
}

// CurrentLesson returns the current lesson pointer.
func (b *Box[C]) CurrentLesson() int {
	return b.currentLesson
}

// WithCurrentLesson returns a new box whose current lesson is n.
// n is not range-checked; lesson queries outside [0, Count()) match nothing.
func (b *Box[C]) WithCurrentLesson(n int) *Box[C] {
	out := b.with()
	out.currentLesson = n
	return out
}

// CardsForLesson returns the cards due on the given lesson: the cards of
// every slot whose schedule contains lesson, in slot order.
// The result is never nil.
func (b *Box[C]) CardsForLesson(lesson int) []C {
	cards := make([]C, 0)
	for _, l := range b.lessons {
		if l.IsDueOn(lesson) {
			cards = append(cards, l.Cards...)
		}
	}
	return cards
}

// CardsForCurrentLesson returns CardsForLesson(CurrentLesson()).
func (b *Box[C]) CardsForCurrentLesson() []C {
	return b.CardsForLesson(b.currentLesson)
}

// IsLastLessonForCard reports whether the current lesson is the final
// scheduled review of the card matching id: that is, whether the card sits
// in the slot whose last repeat lesson is the current lesson.
//
// It returns false when no slot ends on the current lesson, which happens
// only for a current lesson outside the ring or a box with zero repetitions.
func (b *Box[C]) IsLastLessonForCard(id Identity[C]) bool {
	for _, l := range b.lessons {
		if l.LastLesson() == b.currentLesson {
			return indexOf(l.Cards, id) >= 0
		}
	}
	return false
}

// CardInfo reports the deck holding the first card matching id, searched
// in the same order moves use. It reports false if no card matches.
//
// For a card in lesson slot i, RepetitionsLeft counts the reviews j whose
// offset Fib(j) is at least the distance walked forward around the ring
// from slot i to the current lesson. With one or more repetitions a card
// always has at least one review left: the ring is sized so the final
// review lands on the slot just before i. When the current lesson lies
// outside the ring nothing is due on it and RepetitionsLeft is 0.
func (b *Box[C]) CardInfo(id Identity[C]) (CardInfo, bool) {
	loc, ok := b.locate(id)
	if !ok {
		return CardInfo{}, false
	}
	if loc.deck != DeckLessons {
		return CardInfo{Deck: loc.deck}, true
	}

	left := 0
	if b.currentLesson < 0 || b.currentLesson >= b.count {
		return CardInfo{Deck: DeckLessons, RepetitionsLeft: &left}, true
	}
	d := ringDistance(loc.lesson, b.currentLesson, b.count)
	for _, due := range b.lessons[loc.lesson].RepeatOn {
		if ringDistance(loc.lesson, due, b.count) >= d {
			left++
		}
	}
	return CardInfo{Deck: DeckLessons, RepetitionsLeft: &left}, true
}
