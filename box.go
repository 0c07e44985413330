package leitner

// Box is an immutable Leitner box holding cards of type C.
//
// A Box is never modified after construction. Operations that change it
// return a new *Box; slices untouched by an edit are shared with the
// original, which is safe because no box ever writes to a slice it holds.
type Box[C any] struct {
	count         int
	repetitions   int
	currentLesson int
	unknown       []C
	learned       []C
	lessons       []Lesson[C]
}

// NewBox creates a Box from the given config.
// Zero-value fields are filled with defaults; invalid values return an error.
func NewBox[C any](cfg BoxConfig[C]) (*Box[C], error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	r := cfg.repetitions()
	count := LessonCount(r)
	schedule := BuildSchedule(count, r)

	// InitialDecks: nil → count+2 empty decks.
	decks := cfg.InitialDecks
	if decks == nil {
		decks = make([][]C, count+2)
	}

	lessons := make([]Lesson[C], count)
	for i := range lessons {
		lessons[i] = Lesson[C]{
			RepeatOn: schedule[i],
			Cards:    cloneCards(decks[i+1]),
		}
	}

	return &Box[C]{
		count:         count,
		repetitions:   r,
		currentLesson: cfg.CurrentLesson,
		unknown:       cloneCards(decks[0]),
		learned:       cloneCards(decks[len(decks)-1]),
		lessons:       lessons,
	}, nil
}

// MustNewBox is like NewBox but panics if the config is invalid.
func MustNewBox[C any](cfg BoxConfig[C]) *Box[C] {
	b, err := NewBox(cfg)
	if err != nil {
		panic(err)
	}
	return b
}

// Count returns the number of lesson slots: Fib(Repetitions()) + 1.
func (b *Box[C]) Count() int { return b.count }

// Repetitions returns the number of scheduled reviews per lesson slot.
func (b *Box[C]) Repetitions() int { return b.repetitions }

// Unknown returns a copy of the unknown deck, in review priority order.
func (b *Box[C]) Unknown() []C { return cloneCards(b.unknown) }

// Learned returns a copy of the learned deck.
func (b *Box[C]) Learned() []C { return cloneCards(b.learned) }

// Lessons returns a deep copy of every lesson slot, in ring order.
func (b *Box[C]) Lessons() []Lesson[C] {
	out := make([]Lesson[C], len(b.lessons))
	for i, l := range b.lessons {
		out[i] = l.clone()
	}
	return out
}

// Lesson returns a deep copy of lesson slot i.
// It reports false if i is outside [0, Count()).
func (b *Box[C]) Lesson(i int) (Lesson[C], bool) {
	if i < 0 || i >= len(b.lessons) {
		return Lesson[C]{}, false
	}
	return b.lessons[i].clone(), true
}

// Decks returns every deck in the layout BoxConfig.InitialDecks takes:
// unknown first, one deck per lesson slot, learned last.
func (b *Box[C]) Decks() [][]C {
	decks := make([][]C, 0, len(b.lessons)+2)
	decks = append(decks, cloneCards(b.unknown))
	for _, l := range b.lessons {
		decks = append(decks, cloneCards(l.Cards))
	}
	return append(decks, cloneCards(b.learned))
}

// Config returns a config that rebuilds an equal box through NewBox.
func (b *Box[C]) Config() BoxConfig[C] {
	return BoxConfig[C]{
		Repetitions:   Repetitions(b.repetitions),
		CurrentLesson: b.currentLesson,
		InitialDecks:  b.Decks(),
	}
}

// Len returns the total number of cards in the box.
func (b *Box[C]) Len() int {
	n := len(b.unknown) + len(b.learned)
	for _, l := range b.lessons {
		n += len(l.Cards)
	}
	return n
}

// with returns a shallow copy of the box for copy-on-write edits.
func (b *Box[C]) with() *Box[C] {
	out := *b
	return &out
}

// withLesson returns a copy of the box whose slot i holds cards.
// Only the slot array is copied; every other slot keeps its slices.
func (b *Box[C]) withLesson(i int, cards []C) *Box[C] {
	out := b.with()
	out.lessons = make([]Lesson[C], len(b.lessons))
	copy(out.lessons, b.lessons)
	out.lessons[i] = b.lessons[i].withCards(cards)
	return out
}
