package leitner

// MaxRepetitions bounds the repetition depth accepted by NewBox.
// Fib(100) + 1 = 5151 lesson slots.
const MaxRepetitions = 100

// Fib returns the interval, in lessons, after which a card comes due for
// its n-th repetition.
// Fib(0) = 0, Fib(n) = Fib(n-1) + n + 1. Returns 0 for negative n.
func Fib(n int) int {
	f := 0
	for k := 1; k <= n; k++ {
		f += k + 1
	}
	return f
}

// LessonCount returns the number of lesson slots in a box with the given
// repetition depth: Fib(repetitions) + 1.
func LessonCount(repetitions int) int {
	return Fib(repetitions) + 1
}

// BuildSchedule computes the repeat schedule of every lesson slot on a ring
// of count slots. Entry i lists the lessons on which a card parked in slot i
// comes due: (i + Fib(j)) mod count for j = 1..repetitions.
func BuildSchedule(count, repetitions int) [][]int {
	if count <= 0 {
		return nil
	}

	// Offsets are shared by every slot; compute the recurrence once.
	offsets := make([]int, repetitions)
	f := 0
	for j := 1; j <= repetitions; j++ {
		f += j + 1
		offsets[j-1] = f
	}

	schedule := make([][]int, count)
	for i := range schedule {
		repeatOn := make([]int, repetitions)
		for j, off := range offsets {
			repeatOn[j] = (i + off) % count
		}
		schedule[i] = repeatOn
	}
	return schedule
}

// ringDistance returns how many lessons separate from and to walking forward
// around a ring of count slots. Either endpoint may lie outside [0, count).
func ringDistance(from, to, count int) int {
	d := (to - from) % count
	if d < 0 {
		d += count
	}
	return d
}
