package agent

import (
	"fmt"

	"adversarial/game"
	"adversarial/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rand *rand.Rand
}

// NewRandomAgent returns an agent playing uniformly random legal moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rand: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(g game.Game) (game.Coordinate, searcher.SearchMetrics, error) {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return game.Coordinate{}, searcher.SearchMetrics{}, fmt.Errorf("no legal moves in %s", g.Notation())
	}
	return moves[a.rand.Intn(len(moves))], searcher.SearchMetrics{}, nil
}

func (a *randomAgent) Name() string {
	return "random"
}
