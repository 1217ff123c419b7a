package metrics

import (
	"time"

	"adversarial/searcher"
)

type AgentConfig struct {
	ID         int
	Kind       string // "minimax" or "random"
	Depth      int
	Goroutines int
	Heuristic  string
	Seed       uint64
}

type MoveMetric struct {
	Step   int
	Player string // x or o
	Move   string // Keyboard symbol
	Eval   float64
	searcher.SearchMetrics
}

type GameMetric struct {
	StartingPlayer string
	Outcome        string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID of cross
	Agent2 int // AgentConfig.ID of circle
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
