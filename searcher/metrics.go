package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetrics struct {
	Depth      int
	Goroutines int
	Duration   time.Duration
	Nodes      int64 // States visited, root included
	Terminals  int64 // States scored by the terminal evaluator
	Cutoffs    int64 // States scored by the heuristic at the depth limit
	Malformed  int64 // Non-terminal states without children
}

type Collector interface {
	Start(depth, goroutines int)
	AddNode()
	AddTerminal()
	AddCutoff()
	AddMalformed()
	Complete() SearchMetrics
}

type collector struct {
	depth      int
	goroutines int
	startTime  time.Time
	nodes      atomic.Int64
	terminals  atomic.Int64
	cutoffs    atomic.Int64
	malformed  atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth, goroutines int) {
	m.startTime = time.Now()
	m.depth = depth
	m.goroutines = goroutines
	m.nodes.Store(0)
	m.terminals.Store(0)
	m.cutoffs.Store(0)
	m.malformed.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddTerminal() {
	m.terminals.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) AddMalformed() {
	m.malformed.Add(1)
}

func (m *collector) Complete() SearchMetrics {
	return SearchMetrics{
		Depth:      m.depth,
		Goroutines: m.goroutines,
		Duration:   time.Since(m.startTime),
		Nodes:      m.nodes.Load(),
		Terminals:  m.terminals.Load(),
		Cutoffs:    m.cutoffs.Load(),
		Malformed:  m.malformed.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth, goroutines int) {}
func (m *dummyCollector) AddNode()                    {}
func (m *dummyCollector) AddTerminal()                {}
func (m *dummyCollector) AddCutoff()                  {}
func (m *dummyCollector) AddMalformed()               {}
func (m *dummyCollector) Complete() SearchMetrics     { return SearchMetrics{} }
