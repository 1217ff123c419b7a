package experiments

import (
	"fmt"

	"adversarial/agent"
	"adversarial/engine"
	"adversarial/experiments/metrics"
	"adversarial/game"
	"adversarial/searcher"

	"github.com/rs/zerolog/log"
)

const (
	NumGames = 10 // Per match up
	Seed     = 1
)

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: "minimax", Depth: 1, Goroutines: 1, Heuristic: "zero"},
	{ID: 2, Kind: "minimax", Depth: 2, Goroutines: 1, Heuristic: "zero"},
	{ID: 3, Kind: "minimax", Depth: 4, Goroutines: 1, Heuristic: "zero"},
	{ID: 4, Kind: "minimax", Depth: 9, Goroutines: 4, Heuristic: "zero"},
}

// RunDepthExperiment pairs minimax agents of growing depth against a random agent.
func RunDepthExperiment(outputDir string, games int) ([]MatchUpResult, error) {
	baseline := metrics.AgentConfig{ID: 0, Kind: "random", Seed: Seed}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, baseline})
	}

	return Run("depth", outputDir, append(depthConfigs, baseline), matchUps, games)
}

// RunHeuristicExperiment pairs the stub heuristic against open lines at shallow depths.
func RunHeuristicExperiment(outputDir string, games int) ([]MatchUpResult, error) {
	configs := []metrics.AgentConfig{}
	matchUps := [][]metrics.AgentConfig{}
	for i, depth := range []int{1, 2, 3} {
		zero := metrics.AgentConfig{ID: 2*i + 1, Kind: "minimax", Depth: depth, Goroutines: 1, Heuristic: "zero"}
		lines := metrics.AgentConfig{ID: 2*i + 2, Kind: "minimax", Depth: depth, Goroutines: 1, Heuristic: "lines"}
		configs = append(configs, zero, lines)
		matchUps = append(matchUps, []metrics.AgentConfig{zero, lines})
	}

	return Run("heuristic", outputDir, configs, matchUps, games)
}

type MatchUpResult struct {
	Agent1 metrics.AgentConfig
	Agent2 metrics.AgentConfig
	Wins1  int
	Wins2  int
	Draws  int
}

// Run plays games per match up, alternating which agent plays cross, and
// writes configs and records under outputDir.
func Run(name, outputDir string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, games int) ([]MatchUpResult, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	results := make([]MatchUpResult, 0, len(matchUps))

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		if len(matchUp) != 2 {
			return nil, fmt.Errorf("match up %d has %d agents, want 2", mi+1, len(matchUp))
		}
		result := MatchUpResult{Agent1: matchUp[0], Agent2: matchUp[1]}

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), result.Agent1, result.Agent2)

		for i := 0; i < games; i++ {
			agent1Cross := i%2 == 0
			cross, circle := result.Agent1, result.Agent2
			if !agent1Cross {
				cross, circle = circle, cross
			}

			outcome, gameMetric, moveMetrics, err := runGame(cross, circle, i)
			if err != nil {
				return nil, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     cross.ID,
				Agent2:     circle.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			switch {
			case outcome == game.Draw:
				result.Draws++
			case (outcome == game.CrossWin) == agent1Cross:
				result.Wins1++
			default:
				result.Wins2++
			}

			log.Info().Msgf("completed matchup %d of %d game %d with outcome: %s", mi+1, len(matchUps), i+1, outcome)
		}
		results = append(results, result)
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(outputDir, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return nil, fmt.Errorf("failed to store agent configs: %w", err)
	}
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return nil, fmt.Errorf("failed to write game records: %w", err)
	}
	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return nil, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())

	return results, nil
}

// runGame executes a single game between two agents
func runGame(cross, circle metrics.AgentConfig, index int) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	crossAgent, err := CreateAgent(cross, index)
	if err != nil {
		return 0, metrics.GameMetric{}, nil, err
	}
	circleAgent, err := CreateAgent(circle, index)
	if err != nil {
		return 0, metrics.GameMetric{}, nil, err
	}

	e := engine.NewLocalEngine(game.NewGame(), crossAgent, circleAgent)
	return e.Run()
}

// CreateAgent builds the agent described by config. Random agents are
// reseeded per game so repeated games differ.
func CreateAgent(config metrics.AgentConfig, index int) (agent.Agent, error) {
	switch config.Kind {
	case "minimax":
		return createMinimax(config)
	case "random":
		return agent.NewRandomAgent(config.Seed + uint64(index)), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
	}
}

func createMinimax(config metrics.AgentConfig) (agent.Agent, error) {
	heuristic, err := heuristicOf(config.Heuristic)
	if err != nil {
		return nil, err
	}

	options := []searcher.Option{searcher.WithMetrics()}
	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}

	return agent.NewMinimaxAgent(searcher.NewSearcher(game.Model(heuristic), options...)), nil
}

func heuristicOf(name string) (searcher.Heuristic[game.Game], error) {
	if name == "" {
		return nil, nil
	}
	return game.HeuristicByName(name)
}
