package agent

import (
	"bufio"
	"fmt"
	"io"

	"adversarial/game"
	"adversarial/searcher"

	"golang.org/x/exp/slices"
)

type humanAgent struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewHumanAgent returns an agent reading one keyboard symbol per line from r
// and prompting on w until a free tile is named.
func NewHumanAgent(r io.Reader, w io.Writer) Agent {
	return &humanAgent{in: bufio.NewScanner(r), out: w}
}

func (a *humanAgent) FindMove(g game.Game) (game.Coordinate, searcher.SearchMetrics, error) {
	available := g.LegalMoves()
	if len(available) == 0 {
		return game.Coordinate{}, searcher.SearchMetrics{}, fmt.Errorf("no legal moves in %s", g.Notation())
	}

	fmt.Fprintf(a.out, "%s to move: ", g.Turn())
	for a.in.Scan() {
		c, err := game.ParseKey(a.in.Text())
		if err != nil {
			fmt.Fprint(a.out, "Enter a tile to play the next move:\n"+game.KeyLegend)
			continue
		}
		if !slices.Contains(available, c) {
			fmt.Fprintln(a.out, "That tile is occupied")
			continue
		}
		return c, searcher.SearchMetrics{}, nil
	}

	if err := a.in.Err(); err != nil {
		return game.Coordinate{}, searcher.SearchMetrics{}, fmt.Errorf("failed to read move: %w", err)
	}
	return game.Coordinate{}, searcher.SearchMetrics{}, io.ErrUnexpectedEOF
}

func (a *humanAgent) Name() string {
	return "human"
}
