package agent

import (
	"fmt"

	"adversarial/game"
	"adversarial/searcher"
)

type minimaxAgent struct {
	searcher *searcher.Searcher[game.Game]
}

// NewMinimaxAgent returns an agent playing the first optimal move found by s.
func NewMinimaxAgent(s *searcher.Searcher[game.Game]) Agent {
	return minimaxAgent{searcher: s}
}

func (a minimaxAgent) FindMove(g game.Game) (game.Coordinate, searcher.SearchMetrics, error) {
	index, _, metrics, err := a.searcher.BestChild(g, game.SearchPlayer(g.Turn()))
	if err != nil {
		return game.Coordinate{}, metrics, fmt.Errorf("failed to search %s: %w", g.Notation(), err)
	}
	// Children follow the order of legal moves
	return g.LegalMoves()[index], metrics, nil
}

func (a minimaxAgent) Name() string {
	return fmt.Sprintf("minimax(depth=%d)", a.searcher.Depth())
}
