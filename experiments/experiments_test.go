package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"adversarial/experiments/metrics"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRun(t *testing.T) {
	t.Run("playing every game and writing records", func(t *testing.T) {
		dir := t.TempDir()
		strong := metrics.AgentConfig{ID: 1, Kind: "minimax", Depth: 9, Goroutines: 2}
		random := metrics.AgentConfig{ID: 2, Kind: "random", Seed: 3}

		results, err := Run("test", dir, []metrics.AgentConfig{strong, random},
			[][]metrics.AgentConfig{{strong, random}}, 4)

		require.NoError(t, err)
		require.Len(t, results, 1)
		require.Equal(t, 4, results[0].Wins1+results[0].Wins2+results[0].Draws)
		require.Zero(t, results[0].Wins2, "Perfect play never loses")

		runs, err := filepath.Glob(filepath.Join(dir, "test", "*"))
		require.NoError(t, err)
		require.Len(t, runs, 1)

		configs := readCSV(t, filepath.Join(runs[0], "agent_configs.csv"))
		require.Equal(t, []string{"id", "kind", "depth", "goroutines", "heuristic", "seed"}, configs[0])
		require.Len(t, configs, 3)

		games := readCSV(t, filepath.Join(runs[0], "game_records.csv"))
		require.Len(t, games, 5)
		require.Equal(t, []string{"1", "1", "2", "x"}, games[1][:4], "Agent 1 plays cross first")
		require.Equal(t, []string{"2", "2", "1", "x"}, games[2][:4], "Agents swap sides every game")

		moves := readCSV(t, filepath.Join(runs[0], "move_records.csv"))
		require.Greater(t, len(moves), 4*5)
	})

	t.Run("mirror match ups count wins per seat", func(t *testing.T) {
		random := metrics.AgentConfig{ID: 1, Kind: "random", Seed: 9}

		results, err := Run("mirror", t.TempDir(), []metrics.AgentConfig{random},
			[][]metrics.AgentConfig{{random, random}}, 6)

		require.NoError(t, err)
		require.Equal(t, 6, results[0].Wins1+results[0].Wins2+results[0].Draws)
	})

	t.Run("rejecting unknown agents", func(t *testing.T) {
		bad := metrics.AgentConfig{ID: 1, Kind: "oracle"}

		_, err := Run("bad", t.TempDir(), []metrics.AgentConfig{bad}, [][]metrics.AgentConfig{{bad, bad}}, 1)

		require.ErrorContains(t, err, "unknown agent kind")
	})

	t.Run("rejecting malformed match ups", func(t *testing.T) {
		random := metrics.AgentConfig{ID: 1, Kind: "random"}

		_, err := Run("bad", t.TempDir(), nil, [][]metrics.AgentConfig{{random}}, 1)

		require.ErrorContains(t, err, "has 1 agents")
	})
}

func TestCreateAgent(t *testing.T) {
	a, err := CreateAgent(metrics.AgentConfig{Kind: "minimax", Depth: 3, Heuristic: "lines"}, 0)
	require.NoError(t, err)
	require.Equal(t, "minimax(depth=3)", a.Name())

	_, err = CreateAgent(metrics.AgentConfig{Kind: "minimax", Heuristic: "neural"}, 0)
	require.ErrorContains(t, err, "unknown heuristic")

	a, err = CreateAgent(metrics.AgentConfig{Kind: "random"}, 2)
	require.NoError(t, err)
	require.Equal(t, "random", a.Name())
}

func TestHeuristicExperiment(t *testing.T) {
	results, err := RunHeuristicExperiment(t.TempDir(), 2)

	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, r := range results {
		require.Equal(t, "zero", r.Agent1.Heuristic)
		require.Equal(t, "lines", r.Agent2.Heuristic)
		require.Equal(t, 2, r.Wins1+r.Wins2+r.Draws)
	}
}
