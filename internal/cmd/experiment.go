package cmd

import (
	"fmt"
	"os"
	"time"

	"adversarial/experiments"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

// spinner character set used while experiments run
const spin = 11

func (a *app) experimentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "experiment depth|heuristic",
		Short: "Play agents against each other and record the results as CSV",
		Long: heredoc.Doc(`Run one of the experiments:

			depth       minimax agents of growing depth against a random agent
			heuristic   the zero heuristic against open lines at shallow depths

			Agents alternate sides every game. Agent configs, game records and
			move records are written under the output directory.`),
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"depth", "heuristic"},
		RunE:      a.experiment,
	}
	cmd.Flags().Int("games", 0, "Games per match up (defaults to the config)")
	cmd.Flags().String("out", "", "Output directory (defaults to the config)")
	return cmd
}

func (a *app) experiment(cmd *cobra.Command, args []string) error {
	games := a.config.Experiment.Games
	if cmd.Flags().Changed("games") {
		games, _ = cmd.Flags().GetInt("games")
	}
	if games < 1 {
		return fmt.Errorf("--games must be at least 1, got %d", games)
	}
	outputDir := a.config.Experiment.OutputDir
	if dir, _ := cmd.Flags().GetString("out"); dir != "" {
		outputDir = dir
	}

	run := experiments.RunDepthExperiment
	switch args[0] {
	case "depth":
	case "heuristic":
		run = experiments.RunHeuristicExperiment
	default:
		return fmt.Errorf("unknown experiment %q, want depth or heuristic", args[0])
	}

	s := spinner.New(spinner.CharSets[spin], 100*time.Millisecond)
	s.Writer = os.Stderr
	s.Suffix = " running " + args[0] + " experiment"
	s.Start()
	results, err := run(outputDir, games)
	s.Stop()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, r := range results {
		fmt.Fprintf(out, "agent %d (%s depth=%d %s) vs agent %d (%s depth=%d %s): %d-%d, %d draws\n",
			r.Agent1.ID, r.Agent1.Kind, r.Agent1.Depth, r.Agent1.Heuristic,
			r.Agent2.ID, r.Agent2.Kind, r.Agent2.Depth, r.Agent2.Heuristic,
			r.Wins1, r.Wins2, r.Draws)
	}
	return nil
}
