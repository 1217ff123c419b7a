package searcher

import "sync"

const DefaultDepth = 9

type settings struct {
	depth      int
	goroutines int
	strict     bool
	metrics    bool
}

type Option func(s *settings)

func WithDepth(depth int) Option {
	return func(s *settings) {
		s.depth = depth
	}
}

// WithGoroutines evaluates the root's sibling subtrees on a pool of
// goroutines. Scores are combined in child order, so results match a
// sequential search.
func WithGoroutines(goroutines int) Option {
	return func(s *settings) {
		s.goroutines = goroutines
	}
}

// WithStrictModel reports ErrMalformedModel for non-terminal states without
// children instead of scoring them with the heuristic.
func WithStrictModel() Option {
	return func(s *settings) {
		s.strict = true
	}
}

func WithMetrics() Option {
	return func(s *settings) {
		s.metrics = true
	}
}

// Searcher is a configured minimax search over a model. It holds no state
// between calls and is safe for concurrent use.
type Searcher[S any] struct {
	model Model[S]
	settings
}

func NewSearcher[S any](model Model[S], options ...Option) *Searcher[S] {
	s := &Searcher[S]{ // Default values
		model: model,
		settings: settings{
			depth:      DefaultDepth,
			goroutines: 1,
		},
	}
	for _, option := range options {
		option(&s.settings)
	}
	if model.Children == nil || model.Terminal == nil || model.Heuristic == nil {
		panic("model must supply children, terminal and heuristic functions")
	}
	if s.depth < 0 {
		panic("depth cannot be negative")
	}
	if s.goroutines < 1 {
		panic("need at least one goroutine")
	}
	return s
}

func (s *Searcher[S]) Depth() int {
	return s.depth
}

// Evaluate scores state with player to move.
func (s *Searcher[S]) Evaluate(state S, player Player) (float64, SearchMetrics, error) {
	metrics := s.newCollector()
	metrics.Start(s.depth, s.goroutines)
	w := s.walker(metrics)

	if s.goroutines == 1 {
		score, err := w.minimax(state, s.depth, player)
		return score, metrics.Complete(), err
	}

	children, score, done, err := w.expand(state, s.depth)
	if done {
		return score, metrics.Complete(), err
	}
	scores, err := w.scoreAll(children, s.depth-1, player.Opponent(), s.goroutines)
	if err != nil {
		return 0, metrics.Complete(), err
	}

	best := initScore(player)
	for _, score := range scores {
		best = pick(player, best, score)
	}
	return best, metrics.Complete(), nil
}

// BestChild returns the index, within the model's children of state, of the
// first child reaching the optimal score for player, and that score.
func (s *Searcher[S]) BestChild(state S, player Player) (int, float64, SearchMetrics, error) {
	metrics := s.newCollector()
	metrics.Start(s.depth, s.goroutines)
	w := s.walker(metrics)

	metrics.AddNode()
	if _, ok := s.model.Terminal(state); ok {
		metrics.AddTerminal()
		return -1, 0, metrics.Complete(), ErrTerminal
	}
	children := s.model.Children(state)
	if len(children) == 0 {
		metrics.AddMalformed()
		return -1, 0, metrics.Complete(), ErrNoChildren
	}

	scores, err := w.scoreAll(children, s.depth-1, player.Opponent(), s.goroutines)
	if err != nil {
		return -1, 0, metrics.Complete(), err
	}

	bestIndex := 0
	for i, score := range scores[1:] {
		if better(player, score, scores[bestIndex]) {
			bestIndex = i + 1
		}
	}
	return bestIndex, scores[bestIndex], metrics.Complete(), nil
}

func (s *Searcher[S]) newCollector() Collector {
	if s.metrics {
		return NewCollector()
	}
	return NewDummyCollector()
}

func (s *Searcher[S]) walker(metrics Collector) walker[S] {
	return walker[S]{model: s.model, strict: s.strict, metrics: metrics}
}

// scoreAll evaluates every state with player to move. The first error in
// state order is returned, and a panic in any evaluation is re-raised here.
func (w walker[S]) scoreAll(states []S, depth int, player Player, goroutines int) ([]float64, error) {
	scores := make([]float64, len(states))
	errs := make([]error, len(states))
	panics := make([]any, len(states))

	if goroutines <= 1 {
		for i, state := range states {
			score, err := w.minimax(state, depth, player)
			if err != nil {
				return nil, err
			}
			scores[i] = score
		}
		return scores, nil
	}

	task := make(chan int, len(states))
	for i := range states {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < min(goroutines, len(states)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				func() {
					defer func() {
						if r := recover(); r != nil {
							panics[i] = r
						}
					}()
					scores[i], errs[i] = w.minimax(states[i], depth, player)
				}()
			}
		}()
	}
	wg.Wait()

	for i := range states {
		if panics[i] != nil {
			panic(panics[i])
		}
		if errs[i] != nil {
			return nil, errs[i]
		}
	}
	return scores, nil
}
