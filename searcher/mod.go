package searcher

import "errors"

// Player tags the side to move at a recursion level.
type Player int

const (
	Max Player = iota // Maximizing player, prefers positive scores
	Min               // Minimizing player, prefers negative scores
)

func (p Player) Opponent() Player {
	if p == Max {
		return Min
	}
	return Max
}

func (p Player) String() string {
	switch p {
	case Max:
		return "max"
	case Min:
		return "min"
	default:
		return "unknown"
	}
}

// Children returns every state reachable by one legal move. Order decides
// which of several equally scored children is preferred (the first one).
type Children[S any] func(S) []S

// Terminal returns the score of a finished game and true, or false while play
// continues. Positive scores favor Max, negative scores favor Min.
type Terminal[S any] func(S) (score float64, ok bool)

// Heuristic estimates a non-terminal state at the depth cutoff.
type Heuristic[S any] func(S) float64

// Zero is the stub heuristic: every cutoff is scored as neutral.
func Zero[S any](S) float64 {
	return 0
}

var (
	// ErrMalformedModel is returned in strict mode for a state that is not
	// terminal yet has no children.
	ErrMalformedModel = errors.New("non-terminal state has no children")
	// ErrTerminal is returned when asking for a move in a finished game.
	ErrTerminal = errors.New("state is terminal")
	// ErrNoChildren is returned when asking for a move in a state without moves.
	ErrNoChildren = errors.New("state has no children")
)
