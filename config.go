package leitner

import "fmt"

// DefaultRepetitions is the repetition depth used when BoxConfig.Repetitions
// is nil. It yields a ring of 10 lesson slots.
const DefaultRepetitions = 3

// BoxConfig configures NewBox.
// Zero values produce sensible defaults; see field comments.
type BoxConfig[C any] struct {
	Repetitions   *int  `json:"repetitions" yaml:"repetitions"`       // nil → DefaultRepetitions; 0 is valid
	CurrentLesson int   `json:"current_lesson" yaml:"current_lesson"` // zero → lesson 0
	InitialDecks  [][]C `json:"decks" yaml:"decks"`                   // nil → count+2 empty decks
}

// Repetitions returns a pointer to n, for use in BoxConfig literals.
func Repetitions(n int) *int {
	return &n
}

// repetitions resolves the configured repetition depth.
func (cfg BoxConfig[C]) repetitions() int {
	if cfg.Repetitions == nil {
		return DefaultRepetitions
	}
	return *cfg.Repetitions
}

// ValidateConfig checks cfg without building a box.
// InitialDecks, when present, must hold exactly LessonCount(repetitions)+2
// decks: unknown first, learned last, one deck per lesson slot in between.
func ValidateConfig[C any](cfg BoxConfig[C]) error {
	r := cfg.repetitions()
	if r < 0 || r > MaxRepetitions {
		return fmt.Errorf("%w: %d, bounds [0, %d]", ErrInvalidRepetitions, r, MaxRepetitions)
	}
	if cfg.CurrentLesson < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLesson, cfg.CurrentLesson)
	}
	if cfg.InitialDecks != nil {
		if want := LessonCount(r) + 2; len(cfg.InitialDecks) != want {
			return fmt.Errorf("%w: got %d decks, want %d for %d repetitions",
				ErrInvalidDecks, len(cfg.InitialDecks), want, r)
		}
	}
	return nil
}
