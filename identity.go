package leitner

// Identity selects a single card in a box. The box never inspects card
// contents itself; it only asks the identity whether a card matches.
// If several cards match, operations affect the first one in search order:
// unknown, then learned, then lesson slots in ascending index order.
type Identity[C any] interface {
	Matches(card C) bool
}

// MatchFunc adapts an ordinary predicate to Identity.
type MatchFunc[C any] func(card C) bool

// Matches calls f(card).
func (f MatchFunc[C]) Matches(card C) bool {
	return f(card)
}

// Equal returns an Identity matching cards equal to want.
func Equal[C comparable](want C) Identity[C] {
	return MatchFunc[C](func(card C) bool { return card == want })
}
