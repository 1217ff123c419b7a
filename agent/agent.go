package agent

import (
	"adversarial/game"
	"adversarial/searcher"
)

type Agent interface {
	// FindMove returns the move to play and search metrics (if collected)
	FindMove(g game.Game) (game.Coordinate, searcher.SearchMetrics, error)
	Name() string
}
