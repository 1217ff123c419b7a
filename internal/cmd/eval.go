package cmd

import (
	"fmt"
	"strconv"

	"adversarial/game"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func (a *app) evalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval BOARD",
		Short: "Print the minimax score of a board",
		Long: heredoc.Doc(`Search BOARD to the configured depth and print its score:
			+Inf when cross forces a win, -Inf when circle does.`),
		Example: heredoc.Doc(`
			$ adversarial eval xx.oo....
			+Inf
			$ adversarial eval --depth 4 x.......o
			0`),
		Args: cobra.ExactArgs(1),
		RunE: a.eval,
	}
	addTurnFlag(cmd)
	return cmd
}

func (a *app) eval(cmd *cobra.Command, args []string) error {
	g, err := parseGame(cmd, args[0])
	if err != nil {
		return err
	}
	s, err := a.config.Searcher()
	if err != nil {
		return err
	}

	score, metrics, err := s.Evaluate(g, game.SearchPlayer(g.Turn()))
	if err != nil {
		return err
	}
	log.Debug().Msgf("searched %d nodes in %v", metrics.Nodes, metrics.Duration)

	fmt.Fprintln(cmd.OutOrStdout(), formatScore(score))
	return nil
}

func (a *app) bestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "best BOARD",
		Short: "Print the best move for the side to move",
		Long: heredoc.Doc(`Search every move from BOARD and print the first one with
			the best score as its key, its coordinate and the score.`),
		Example: heredoc.Doc(`
			$ adversarial best xx.oo....
			o (0, 2) +Inf`),
		Args: cobra.ExactArgs(1),
		RunE: a.best,
	}
	addTurnFlag(cmd)
	return cmd
}

func (a *app) best(cmd *cobra.Command, args []string) error {
	g, err := parseGame(cmd, args[0])
	if err != nil {
		return err
	}
	s, err := a.config.Searcher()
	if err != nil {
		return err
	}

	index, score, _, err := s.BestChild(g, game.SearchPlayer(g.Turn()))
	if err != nil {
		return err
	}
	move := g.LegalMoves()[index]

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", game.Key(move), move, formatScore(score))
	return nil
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'g', -1, 64)
}
