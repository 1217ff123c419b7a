package config

import (
	"os"
	"path/filepath"
	"testing"

	"adversarial/game"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		c, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

		require.NoError(t, err)
		require.Equal(t, Default(), c)
		require.NoError(t, c.Validate())
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := writeConfig(t, "depth: 4\nheuristic: lines\nexperiment:\n  games: 3\n")

		c, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, 4, c.Depth)
		require.Equal(t, "lines", c.Heuristic)
		require.Equal(t, 3, c.Experiment.Games)
		require.Equal(t, "experiments", c.Experiment.OutputDir, "Unset fields keep defaults")
		require.Equal(t, 1, c.Goroutines)
	})

	t.Run("rejecting malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "depth: [1, 2"))

		require.ErrorContains(t, err, "parsing config")
	})

	t.Run("rejecting invalid values", func(t *testing.T) {
		_, err := Load(writeConfig(t, "depth: -1\n"))

		require.ErrorContains(t, err, "depth must not be negative")
	})
}

func TestValidate(t *testing.T) {
	c := Default()
	c.Depth = -2
	c.Goroutines = 0
	c.Heuristic = "neural"
	c.LogLevel = "loud"
	c.Experiment.Games = 0
	c.Experiment.OutputDir = ""

	err := c.Validate()

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	require.Len(t, merr.Errors, 6, "Every invalid field should be reported")
}

func TestSearcher(t *testing.T) {
	c := Default()
	c.Depth = 1
	c.Heuristic = "lines"
	s, err := c.Searcher()
	require.NoError(t, err)

	g, err := game.ParseBoard("....x....", game.CirclePlayer)
	require.NoError(t, err)
	score, _, err := s.Evaluate(g, game.SearchPlayer(g.Turn()))

	require.NoError(t, err)
	require.Equal(t, 1.0, score, "Circle's best reply leaves cross one open-line point ahead")
}
