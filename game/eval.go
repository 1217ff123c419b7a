package game

import (
	"math"

	"adversarial/searcher"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// TerminalScore maps a finished game to +Inf (cross wins), -Inf (circle
// wins) or 0 (draw). Decisive outcomes dominate any finite heuristic.
func TerminalScore(g Game) (float64, bool) {
	outcome, over := g.Outcome()
	if !over {
		return 0, false
	}
	switch outcome {
	case CrossWin:
		return math.Inf(1), true
	case CircleWin:
		return math.Inf(-1), true
	default:
		return 0, true
	}
}

// SearchPlayer maps the side to move to the search perspective: cross
// maximizes, circle minimizes.
func SearchPlayer(p Player) searcher.Player {
	if p == CrossPlayer {
		return searcher.Max
	}
	return searcher.Min
}

func children(g Game) []Game {
	return g.Children()
}

// Model returns the search capabilities of tic-tac-toe. A nil heuristic is
// the neutral stub.
func Model(heuristic searcher.Heuristic[Game]) searcher.Model[Game] {
	if heuristic == nil {
		heuristic = searcher.Zero[Game]
	}
	return searcher.Model[Game]{
		Children:  children,
		Terminal:  TerminalScore,
		Heuristic: heuristic,
	}
}

// Evaluate scores g with the side to move taken from g.
func Evaluate(g Game, depth int, heuristic searcher.Heuristic[Game]) float64 {
	return Model(heuristic).Evaluate(g, depth, SearchPlayer(g.Turn()))
}

// lineWeights scores a line holding only one player's marks by their count.
var lineWeights = [Size + 1]float64{0, 1, 10, 0}

// OpenLines counts lines still winnable by each side, weighted by how many
// marks they already hold, as cross's total minus circle's. The result is
// always finite.
func OpenLines(g Game) float64 {
	score := 0.0
	for _, coords := range lines {
		var crosses, circles int
		for _, t := range g.board.line(coords) {
			switch t {
			case Cross:
				crosses++
			case Circle:
				circles++
			}
		}
		switch {
		case circles == 0:
			score += lineWeights[crosses]
		case crosses == 0:
			score -= lineWeights[circles]
		}
	}
	return score
}

var heuristics = map[string]searcher.Heuristic[Game]{
	"zero":  searcher.Zero[Game],
	"lines": OpenLines,
}

// HeuristicNames lists the names accepted by HeuristicByName.
func HeuristicNames() []string {
	names := make([]string, 0, len(heuristics))
	for name := range heuristics {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func HeuristicByName(name string) (searcher.Heuristic[Game], error) {
	h, ok := heuristics[name]
	if !ok {
		return nil, errors.Errorf("unknown heuristic %q, want one of %v", name, HeuristicNames())
	}
	return h, nil
}
