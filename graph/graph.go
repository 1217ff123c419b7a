// Package graph exports depth-bounded search trees as Graphviz DOT.
package graph

import (
	"errors"
	"fmt"
	"strconv"

	"adversarial/searcher"

	"github.com/awalterschulze/gographviz"
)

const (
	graphName       = "search"
	DefaultMaxNodes = 2000
)

var ErrTooLarge = errors.New("search tree exceeds the node limit")

type exporter[S any] struct {
	model    searcher.Model[S]
	label    func(S) string
	maxNodes int
	graph    *gographviz.Graph
	nodes    int
}

// Export walks the tree below root to depth plies, the same tree Minimax
// searches, and labels every state with label and its minimax score. It
// fails with ErrTooLarge past maxNodes states.
func Export[S any](model searcher.Model[S], root S, depth int, player searcher.Player, label func(S) string, maxNodes int) (string, error) {
	if maxNodes <= 0 {
		maxNodes = DefaultMaxNodes
	}
	e := &exporter[S]{
		model:    model,
		label:    label,
		maxNodes: maxNodes,
		graph:    gographviz.NewGraph(),
	}
	if err := e.graph.SetName(graphName); err != nil {
		return "", err
	}
	if err := e.graph.SetDir(true); err != nil {
		return "", err
	}

	if _, err := e.add(root, depth, player); err != nil {
		return "", err
	}
	return e.graph.String(), nil
}

func (e *exporter[S]) add(state S, depth int, player searcher.Player) (string, error) {
	if e.nodes >= e.maxNodes {
		return "", fmt.Errorf("%w (%d)", ErrTooLarge, e.maxNodes)
	}
	name := "n" + strconv.Itoa(e.nodes)
	e.nodes++

	score := e.model.Evaluate(state, depth, player)
	_, terminal := e.model.Terminal(state)
	attrs := map[string]string{
		"label": strconv.Quote(fmt.Sprintf("%s\n%s %v", e.label(state), player, score)),
		"shape": shape(player, terminal),
	}
	if err := e.graph.AddNode(graphName, name, attrs); err != nil {
		return "", err
	}

	if terminal || depth <= 0 {
		return name, nil
	}
	for _, child := range e.model.Children(state) {
		childName, err := e.add(child, depth-1, player.Opponent())
		if err != nil {
			return "", err
		}
		if err := e.graph.AddEdge(name, childName, true, nil); err != nil {
			return "", err
		}
	}
	return name, nil
}

func shape(player searcher.Player, terminal bool) string {
	switch {
	case terminal:
		return "doublecircle"
	case player == searcher.Max:
		return "box"
	default:
		return "ellipse"
	}
}
