package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"adversarial/game"

	"github.com/awalterschulze/gographviz"
	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

// execute runs the command tree with args and an empty config directory.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := Root()
	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	root.SetArgs(append([]string{"--config", configPath}, args...))

	err := root.Execute()
	return out.String(), err
}

func TestEval(t *testing.T) {
	t.Run("cross completes the top row", func(t *testing.T) {
		out, err := execute(t, "", "eval", "xx.oo....")

		require.NoError(t, err)
		require.Equal(t, "+Inf\n", out)
	})

	t.Run("turn flag overrides the inferred side", func(t *testing.T) {
		out, err := execute(t, "", "eval", "--turn", "o", "xx.oo....")

		require.NoError(t, err)
		require.Equal(t, "-Inf\n", out)
	})

	t.Run("depth flag limits the search", func(t *testing.T) {
		out, err := execute(t, "", "eval", "--depth", "4", "x.......o")
		require.NoError(t, err)
		require.Equal(t, "0\n", out)

		out, err = execute(t, "", "eval", "x.......o")
		require.NoError(t, err)
		require.Equal(t, "+Inf\n", out)
	})

	t.Run("open lines heuristic at depth zero", func(t *testing.T) {
		out, err := execute(t, "", "eval", "--depth", "0", "--heuristic", "lines", "....x....")

		require.NoError(t, err)
		require.Equal(t, "4\n", out)
	})

	t.Run("rejecting a malformed board", func(t *testing.T) {
		_, err := execute(t, "", "eval", "xx.oo")

		require.ErrorContains(t, err, "has 5 tiles")
	})

	t.Run("rejecting an unknown heuristic", func(t *testing.T) {
		_, err := execute(t, "", "eval", "--heuristic", "neural", ".........")

		require.ErrorContains(t, err, "unknown heuristic")
	})
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("depth: 4\n"), 0o644))

	root := Root()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--config", path, "eval", "x.......o"})

	require.NoError(t, root.Execute())
	require.Equal(t, "0\n", out.String(), "Depth should come from the config file")
}

func TestBest(t *testing.T) {
	t.Run("first winning move", func(t *testing.T) {
		out, err := execute(t, "", "best", "xx.oo....")

		require.NoError(t, err)
		require.Equal(t, "o (0, 2) +Inf\n", out)
	})

	t.Run("circle blocks the middle row", func(t *testing.T) {
		out, err := execute(t, "", "best", "o..xx....")

		require.NoError(t, err)
		require.Equal(t, "k (1, 2) 0\n", out)
	})

	t.Run("no move on a finished board", func(t *testing.T) {
		_, err := execute(t, "", "best", "xxxoo....")

		require.Error(t, err)
	})
}

func TestDot(t *testing.T) {
	out, err := execute(t, "", "dot", "--depth", "1", "xx.oo....")
	require.NoError(t, err)

	ast, err := gographviz.ParseString(out)
	require.NoError(t, err)
	g := gographviz.NewGraph()
	require.NoError(t, gographviz.Analyse(ast, g))
	require.Len(t, g.Nodes.Nodes, 6)

	_, err = execute(t, "", "dot", "--max-nodes", "20", ".........")
	require.Error(t, err)
}

func TestPlay(t *testing.T) {
	t.Run("human completes the top row", func(t *testing.T) {
		out, err := execute(t, "o\n", "play", "--board", "xx.oo....")

		require.NoError(t, err)
		require.Contains(t, out, game.KeyLegend)
		require.Contains(t, out, "x played o")
		require.Contains(t, out, "eval: +Inf")
		require.True(t, strings.HasSuffix(out, "Game over: cross wins\n"), out)
	})

	t.Run("human re-enters an occupied tile", func(t *testing.T) {
		out, err := execute(t, "u\no\n", "play", "--board", "xx.oo....")

		require.NoError(t, err)
		require.Contains(t, out, "That tile is occupied")
		require.Contains(t, out, "Game over: cross wins")
	})

	t.Run("computer plays both sides to a draw", func(t *testing.T) {
		out, err := execute(t, "", "play", "--human", "none", "--goroutines", "4")

		require.NoError(t, err)
		require.NotContains(t, out, game.KeyLegend)
		require.Contains(t, out, "Game over: draw")
	})

	t.Run("human runs out of input", func(t *testing.T) {
		_, err := execute(t, "", "play", "--human", "both")

		require.Error(t, err)
	})

	t.Run("rejecting an unknown side", func(t *testing.T) {
		_, err := execute(t, "", "play", "--human", "z")

		require.ErrorContains(t, err, "unknown --human value")
	})
}

func TestExperiment(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "", "experiment", "heuristic", "--games", "2", "--out", dir)

	require.NoError(t, err)
	require.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 3)
	files, err := filepath.Glob(filepath.Join(dir, "heuristic", "*", "*.csv"))
	require.NoError(t, err)
	require.Len(t, files, 3)

	_, err = execute(t, "", "experiment", "speed")
	require.ErrorContains(t, err, "unknown experiment")
}

func TestRender(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	for _, board := range []string{".........", "xx.oo....", "xoxxoooxx"} {
		g, err := game.ParseBoard(board, game.CrossPlayer)
		require.NoError(t, err)

		require.Equal(t, g.String(), render(g))
	}
}
