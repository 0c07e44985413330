package leitner

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// smallBox builds a one-repetition box (three lesson slots) from
// the unknown deck, the three lesson decks and the learned deck.
func smallBox(t *testing.T, current int, unknown []string, l0, l1, l2 []string, learned []string) *Box[string] {
	t.Helper()
	return mustBox(t, BoxConfig[string]{
		Repetitions:   Repetitions(1),
		CurrentLesson: current,
		InitialDecks:  [][]string{unknown, l0, l1, l2, learned},
	})
}

func lessonCards(t *testing.T, b *Box[string], i int) []string {
	t.Helper()
	l, ok := b.Lesson(i)
	if !ok {
		t.Fatalf("Lesson(%d) not found", i)
	}
	return l.Cards
}

// --- AddTo ---

func TestAddToUnknown(t *testing.T) {
	initial := mustBox(t, BoxConfig[string]{})
	b := initial.AddToUnknown("a")

	assertCards(t, "unknown", []string{"a"}, b.Unknown())
	if b == initial {
		t.Error("AddToUnknown should return a new box")
	}
	assertCards(t, "initial unknown", nil, initial.Unknown())
}

func TestAddToUnknownAppends(t *testing.T) {
	b := smallBox(t, 0, []string{"a"}, nil, nil, nil, nil).AddToUnknown("b")
	assertCards(t, "unknown", []string{"a", "b"}, b.Unknown())
}

func TestAddToLearned(t *testing.T) {
	initial := mustBox(t, BoxConfig[string]{})
	b := initial.AddToLearned("a")

	assertCards(t, "learned", []string{"a"}, b.Learned())
	if b == initial {
		t.Error("AddToLearned should return a new box")
	}
}

func TestAddToLearnedAppends(t *testing.T) {
	b := smallBox(t, 0, nil, nil, nil, nil, []string{"a"}).AddToLearned("b")
	assertCards(t, "learned", []string{"a", "b"}, b.Learned())
}

func TestAddToLessons(t *testing.T) {
	initial := mustBox(t, BoxConfig[string]{CurrentLesson: 1})
	b := initial.AddToLessons("a")

	assertCards(t, "current lesson", []string{"a"}, lessonCards(t, b, b.CurrentLesson()))
	if b == initial {
		t.Error("AddToLessons should return a new box")
	}
}

func TestAddToLessonsAppends(t *testing.T) {
	b := smallBox(t, 1, nil, nil, []string{"a"}, nil, nil).AddToLessons("b")
	assertCards(t, "current lesson", []string{"a", "b"}, lessonCards(t, b, 1))
}

func TestAddAbsentCardIsNoop(t *testing.T) {
	initial := mustBox(t, BoxConfig[string]{})
	adds := map[string]func(string) *Box[string]{
		"AddToUnknown": initial.AddToUnknown,
		"AddToLearned": initial.AddToLearned,
		"AddToLessons": initial.AddToLessons,
	}
	for name, add := range adds {
		if got := add(""); got != initial {
			t.Errorf("%s(\"\") returned a new box, want the same pointer", name)
		}
	}
}

func TestAddZeroStructCard(t *testing.T) {
	type card struct {
		ID    int
		Front string
	}
	initial := MustNewBox(BoxConfig[card]{})
	if got := initial.AddToUnknown(card{}); got != initial {
		t.Error("AddToUnknown(card{}) returned a new box, want the same pointer")
	}

	b := initial.AddToUnknown(card{Front: "der Hund"})
	if diff := cmp.Diff([]card{{Front: "der Hund"}}, b.Unknown()); diff != "" {
		t.Errorf("unknown mismatch (-want +got):\n%s", diff)
	}
}

func TestAddNilPointerIsNoop(t *testing.T) {
	type card struct{ front string }
	initial := MustNewBox(BoxConfig[*card]{})
	if got := initial.AddToUnknown(nil); got != initial {
		t.Error("AddToUnknown(nil) returned a new box, want the same pointer")
	}
	if got := initial.AddToUnknown(&card{}); got == initial {
		t.Error("AddToUnknown(&card{}) returned the same box, want a new one")
	}
}

func TestAddToLessonsOutsideRing(t *testing.T) {
	initial := mustBox(t, BoxConfig[string]{}).WithCurrentLesson(42)
	if got := initial.AddToLessons("a"); got != initial {
		t.Error("AddToLessons outside the ring should return the same box")
	}
}

func TestAddDoesNotAlias(t *testing.T) {
	base := mustBox(t, BoxConfig[string]{}).AddToUnknown("a")
	x := base.AddToUnknown("x")
	y := base.AddToUnknown("y")

	assertCards(t, "base", []string{"a"}, base.Unknown())
	assertCards(t, "x", []string{"a", "x"}, x.Unknown())
	assertCards(t, "y", []string{"a", "y"}, y.Unknown())
}

func TestAddSharesUntouchedDecks(t *testing.T) {
	base := mustBox(t, BoxConfig[string]{
		Repetitions:  Repetitions(2),
		InitialDecks: fixtureDecks(),
	})
	b := base.AddToLessons("z")

	if &b.learned[0] != &base.learned[0] {
		t.Error("learned deck should be shared between boxes")
	}
	if &b.lessons[1].Cards[0] != &base.lessons[1].Cards[0] {
		t.Error("untouched lesson slot should be shared between boxes")
	}
	if &b.lessons[0].RepeatOn[0] != &base.lessons[0].RepeatOn[0] {
		t.Error("schedules should be shared between boxes")
	}
	assertCards(t, "base slot 0", []string{"a", "b"}, lessonCards(t, base, 0))
	assertCards(t, "new slot 0", []string{"a", "b", "z"}, lessonCards(t, b, 0))
}

// --- MoveTo ---

func TestMoveToUnknown(t *testing.T) {
	id := Equal("a")
	tests := []struct {
		name    string
		initial *Box[string]
	}{
		{"from unknown", smallBox(t, 0, []string{"a"}, nil, nil, nil, nil)},
		{"from learned", smallBox(t, 0, nil, nil, nil, nil, []string{"a"})},
		{"from lessons", smallBox(t, 0, nil, nil, []string{"a"}, nil, nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.initial.MoveToUnknown(id)
			assertCards(t, "unknown", []string{"a"}, b.Unknown())
			assertCards(t, "learned", nil, b.Learned())
			for i, l := range b.Lessons() {
				if len(l.Cards) != 0 {
					t.Errorf("lesson %d cards = %v, want empty", i, l.Cards)
				}
			}
		})
	}
}

func TestMoveToLearned(t *testing.T) {
	id := Equal("a")
	tests := []struct {
		name    string
		initial *Box[string]
	}{
		{"from unknown", smallBox(t, 0, []string{"a"}, nil, nil, nil, nil)},
		{"from learned", smallBox(t, 0, nil, nil, nil, nil, []string{"a"})},
		{"from lessons", smallBox(t, 0, nil, nil, []string{"a"}, nil, nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.initial.MoveToLearned(id)
			assertCards(t, "learned", []string{"a"}, b.Learned())
			assertCards(t, "unknown", nil, b.Unknown())
			for i, l := range b.Lessons() {
				if len(l.Cards) != 0 {
					t.Errorf("lesson %d cards = %v, want empty", i, l.Cards)
				}
			}
		})
	}
}

func TestMoveToLessons(t *testing.T) {
	id := Equal("a")
	tests := []struct {
		name    string
		initial *Box[string]
	}{
		{"from unknown", smallBox(t, 0, []string{"a"}, nil, nil, nil, nil)},
		{"from learned", smallBox(t, 0, nil, nil, nil, nil, []string{"a"})},
		{"from another lesson", smallBox(t, 0, nil, nil, []string{"a"}, nil, nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.initial.MoveToLessons(id)
			assertCards(t, "unknown", nil, b.Unknown())
			assertCards(t, "learned", nil, b.Learned())
			assertCards(t, "lesson 1", nil, lessonCards(t, b, 1))
			assertCards(t, "current lesson", []string{"a"}, lessonCards(t, b, b.CurrentLesson()))
		})
	}
}

func TestMoveNotFoundReturnsSameBox(t *testing.T) {
	initial := smallBox(t, 0, nil, nil, []string{"a"}, nil, nil)
	want := smallBox(t, 0, nil, nil, []string{"a"}, nil, nil)
	id := Equal("b")

	for _, deck := range []Deck{DeckUnknown, DeckLearned, DeckLessons} {
		got := initial.MoveTo(deck, id)
		if got != initial {
			t.Errorf("MoveTo(%v) returned a new box, want the same pointer", deck)
		}
		if diff := cmp.Diff(want, got, boxOpts...); diff != "" {
			t.Errorf("MoveTo(%v) changed the box (-want +got):\n%s", deck, diff)
		}
	}
}

func TestMoveWithinDeckReappends(t *testing.T) {
	b := smallBox(t, 0, []string{"a", "b", "c"}, nil, nil, nil, []string{"x", "y"})

	b = b.MoveToUnknown(Equal("a"))
	assertCards(t, "unknown", []string{"b", "c", "a"}, b.Unknown())

	b = b.MoveToLearned(Equal("x"))
	assertCards(t, "learned", []string{"y", "x"}, b.Learned())
}

func TestMoveTakesFirstMatchOnly(t *testing.T) {
	b := smallBox(t, 0, []string{"a1", "a2"}, nil, nil, nil, nil)
	startsWithA := MatchFunc[string](func(c string) bool { return strings.HasPrefix(c, "a") })

	b = b.MoveToLearned(startsWithA)
	assertCards(t, "unknown", []string{"a2"}, b.Unknown())
	assertCards(t, "learned", []string{"a1"}, b.Learned())
}

func TestMoveSearchOrder(t *testing.T) {
	tests := []struct {
		name        string
		initial     *Box[string]
		wantUnknown []string
		wantLessons [3][]string
		wantLearned []string
	}{
		{
			name:        "unknown before learned",
			initial:     smallBox(t, 0, []string{"k"}, nil, []string{"k"}, nil, []string{"k"}),
			wantUnknown: nil,
			wantLessons: [3][]string{{"k"}, {"k"}, nil},
			wantLearned: []string{"k"},
		},
		{
			name:        "learned before lessons",
			initial:     smallBox(t, 0, nil, nil, []string{"k"}, nil, []string{"k"}),
			wantLessons: [3][]string{{"k"}, {"k"}, nil},
		},
		{
			name:        "lower slot first",
			initial:     smallBox(t, 0, nil, nil, []string{"k"}, []string{"k"}, nil),
			wantLessons: [3][]string{{"k"}, nil, {"k"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.initial.MoveToLessons(Equal("k"))
			assertCards(t, "unknown", tt.wantUnknown, b.Unknown())
			assertCards(t, "learned", tt.wantLearned, b.Learned())
			for i, want := range tt.wantLessons {
				assertCards(t, "lesson", want, lessonCards(t, b, i))
			}
		})
	}
}

func TestMoveToLessonsOutsideRingKeepsCard(t *testing.T) {
	initial := smallBox(t, 0, []string{"a"}, nil, nil, nil, nil).WithCurrentLesson(7)
	if got := initial.MoveToLessons(Equal("a")); got != initial {
		t.Error("MoveToLessons outside the ring should return the same box")
	}
}

func TestMoveKeepsZeroValueCard(t *testing.T) {
	b := smallBox(t, 0, []string{""}, nil, nil, nil, nil).MoveToLearned(Equal(""))
	assertCards(t, "unknown", nil, b.Unknown())
	if diff := cmp.Diff([]string{""}, b.Learned()); diff != "" {
		t.Errorf("learned mismatch (-want +got):\n%s", diff)
	}
}

func TestMoveToInvalidDeck(t *testing.T) {
	initial := smallBox(t, 0, []string{"a"}, nil, nil, nil, nil)
	if got := initial.MoveTo(Deck(0), Equal("a")); got != initial {
		t.Error("MoveTo(Deck(0)) should return the same box")
	}
}

func TestMoveLeavesOriginalUntouched(t *testing.T) {
	initial := smallBox(t, 0, []string{"a"}, nil, []string{"b"}, nil, nil)
	want := smallBox(t, 0, []string{"a"}, nil, []string{"b"}, nil, nil)

	_ = initial.MoveToLearned(Equal("a"))
	_ = initial.MoveToUnknown(Equal("b"))

	if diff := cmp.Diff(want, initial, boxOpts...); diff != "" {
		t.Errorf("original box changed (-want +got):\n%s", diff)
	}
}

func TestIsAbsent(t *testing.T) {
	var nilSlice []int
	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"empty string", isAbsent(""), true},
		{"string", isAbsent("a"), false},
		{"zero int", isAbsent(0), true},
		{"int", isAbsent(7), false},
		{"nil slice", isAbsent(nilSlice), true},
		{"nil interface", isAbsent[any](nil), true},
		{"boxed zero", isAbsent[any](0), false},
		{"zero struct", isAbsent(struct{ ID int }{}), true},
		{"struct", isAbsent(struct{ ID int }{ID: 1}), false},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("isAbsent(%s) = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}
