// Package leitner implements a Leitner-box spaced repetition scheduler.
//
// A Box partitions opaque cards into three decks: "unknown" cards not yet
// scheduled, "learned" cards retired from review, and a ring of lesson
// slots. Each slot carries a fixed schedule of future lessons on which the
// cards parked in it come due again. Intervals grow along the recurrence
// Fib(0) = 0, Fib(n) = Fib(n-1) + n + 1, and the ring holds exactly
// Fib(repetitions) + 1 slots.
//
// Boxes are immutable. Every operation returns a new *Box, or the receiver
// itself when nothing changed, so callers can detect no-ops by pointer
// comparison.
//
// Basic usage:
//
//	box, err := leitner.NewBox(leitner.BoxConfig[string]{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	box = box.AddToUnknown("der Hund")
//	box = box.MoveToLessons(leitner.Equal("der Hund"))
//	due := box.WithCurrentLesson(2).CardsForCurrentLesson()
package leitner
