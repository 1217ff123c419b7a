package engine

import (
	"fmt"
	"time"

	"adversarial/agent"
	"adversarial/experiments/metrics"
	"adversarial/game"
	"adversarial/searcher"

	"github.com/rs/zerolog/log"
)

// Update is passed to observers after every move.
type Update struct {
	State game.Game
	metrics.MoveMetric
}

type Option func(e *LocalEngine)

// WithEvaluator scores the position after every move.
func WithEvaluator(s *searcher.Searcher[game.Game]) Option {
	return func(e *LocalEngine) {
		e.evaluator = s
	}
}

func WithObserver(observer func(Update)) Option {
	return func(e *LocalEngine) {
		if observer != nil {
			e.observers = append(e.observers, observer)
		}
	}
}

type LocalEngine struct {
	State     game.Game
	Agents    [2]agent.Agent // Indexed by game.Player
	evaluator *searcher.Searcher[game.Game]
	observers []func(Update)
}

// NewLocalEngine returns an engine playing from state, cross's moves chosen
// by crossAgent and circle's by circleAgent.
func NewLocalEngine(state game.Game, crossAgent, circleAgent agent.Agent, options ...Option) *LocalEngine {
	if crossAgent == nil || circleAgent == nil {
		panic("need an agent for each player")
	}
	e := &LocalEngine{
		State:  state,
		Agents: [2]agent.Agent{crossAgent, circleAgent},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until the game is over.
func (e *LocalEngine) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Turn().String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("%s is starting", e.State.Turn())

	step := 1
	outcome, over := e.State.Outcome()
	for !over && step <= MaxMoves {
		player := e.State.Turn()
		a := e.Agents[player]

		move, searchMetrics, err := a.FindMove(e.State)
		if err != nil {
			return 0, gameMetric, moveMetrics, fmt.Errorf("%s failed to find a move at step %d: %w", a.Name(), step, err)
		}
		next, err := e.State.Play(move)
		if err != nil {
			return 0, gameMetric, moveMetrics, fmt.Errorf("%s played an illegal move at step %d: %w", a.Name(), step, err)
		}
		e.State = next

		moveMetric := metrics.MoveMetric{
			Step:          step,
			Player:        player.String(),
			Move:          game.Key(move),
			SearchMetrics: searchMetrics,
		}
		if e.evaluator != nil {
			moveMetric.Eval, _, err = e.evaluator.Evaluate(e.State, game.SearchPlayer(e.State.Turn()))
			if err != nil {
				return 0, gameMetric, moveMetrics, fmt.Errorf("failed to evaluate step %d: %w", step, err)
			}
		}
		moveMetrics = append(moveMetrics, moveMetric)

		log.Debug().Msgf("step %d: %s (%s) played %s, eval %v", step, player, a.Name(), game.Key(move), moveMetric.Eval)
		for _, observer := range e.observers {
			observer(Update{State: e.State, MoveMetric: moveMetric})
		}

		step++
		outcome, over = e.State.Outcome()
	}

	if !over {
		return 0, gameMetric, moveMetrics, fmt.Errorf("game not over after %d moves", MaxMoves)
	}

	gameMetric.Outcome = outcome.String()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	log.Debug().Msgf("game over: %s after %d moves", outcome, gameMetric.TotalMoves)

	return outcome, gameMetric, moveMetrics, nil
}
