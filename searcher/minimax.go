package searcher

import "math"

// Minimax scores state under optimal play by both sides, looking at most
// depth plies ahead. Terminal scores win over the depth limit; a depth of
// zero or less scores non-terminal states with the heuristic. A non-terminal
// state without children is scored with the heuristic as well.
//
// The side to move must alternate with every call to children; this is not
// checked. Panics raised by the supplied functions propagate unchanged.
func Minimax[S any](state S, depth int, children Children[S], terminal Terminal[S], heuristic Heuristic[S], player Player) float64 {
	w := walker[S]{
		model:   Model[S]{Children: children, Terminal: terminal, Heuristic: heuristic},
		metrics: NewDummyCollector(),
	}
	// Lenient walks never fail
	score, _ := w.minimax(state, depth, player)
	return score
}

// Model bundles the capabilities a game supplies to the search.
type Model[S any] struct {
	Children  Children[S]
	Terminal  Terminal[S]
	Heuristic Heuristic[S]
}

// Evaluate runs Minimax over the model's capabilities.
func (m Model[S]) Evaluate(state S, depth int, player Player) float64 {
	return Minimax(state, depth, m.Children, m.Terminal, m.Heuristic, player)
}

type walker[S any] struct {
	model   Model[S]
	strict  bool
	metrics Collector
}

func (w walker[S]) minimax(state S, depth int, player Player) (float64, error) {
	children, score, done, err := w.expand(state, depth)
	if done {
		return score, err
	}

	best := initScore(player)
	for _, child := range children {
		score, err := w.minimax(child, depth-1, player.Opponent())
		if err != nil {
			return 0, err
		}
		best = pick(player, best, score)
	}
	return best, nil
}

// expand scores state directly when it is terminal, at the cutoff or
// childless (done is true), and otherwise returns its children.
func (w walker[S]) expand(state S, depth int) (children []S, score float64, done bool, err error) {
	w.metrics.AddNode()

	if score, ok := w.model.Terminal(state); ok {
		w.metrics.AddTerminal()
		return nil, score, true, nil
	}
	if depth <= 0 {
		w.metrics.AddCutoff()
		return nil, w.model.Heuristic(state), true, nil
	}

	children = w.model.Children(state)
	if len(children) == 0 {
		w.metrics.AddMalformed()
		if w.strict {
			return nil, 0, true, ErrMalformedModel
		}
		return nil, w.model.Heuristic(state), true, nil
	}
	return children, 0, false, nil
}

func initScore(player Player) float64 {
	if player == Max {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

// pick keeps the incumbent on ties so the first child found wins.
func pick(player Player, best, score float64) float64 {
	if better(player, score, best) {
		return score
	}
	return best
}

func better(player Player, score, best float64) bool {
	if player == Max {
		return score > best
	}
	return score < best
}
