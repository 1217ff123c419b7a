package engine

import (
	"adversarial/experiments/metrics"
	"adversarial/game"
)

// MaxMoves bounds a game of tic-tac-toe.
const MaxMoves = game.Size * game.Size

type Engine interface {
	// Run plays a game till it is over and returns its outcome
	Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error)
}
