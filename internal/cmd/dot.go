package cmd

import (
	"fmt"

	"adversarial/game"
	"adversarial/graph"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

func (a *app) dotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dot BOARD",
		Short: "Print the search tree below a board as Graphviz DOT",
		Long: heredoc.Doc(`Walk the tree minimax searches from BOARD and print it in
			the DOT language with every state labeled by its board and score.
			Pipe the output to dot(1) to draw it. Use a small --depth: the tree
			grows with the factorial of the empty tiles.`),
		Example: heredoc.Doc(`
			$ adversarial dot --depth 2 xx.oo.... | dot -Tsvg > tree.svg`),
		Args: cobra.ExactArgs(1),
		RunE: a.dot,
	}
	addTurnFlag(cmd)
	cmd.Flags().Int("max-nodes", graph.DefaultMaxNodes, "Fail when the tree has more states")
	return cmd
}

func (a *app) dot(cmd *cobra.Command, args []string) error {
	g, err := parseGame(cmd, args[0])
	if err != nil {
		return err
	}
	heuristic, err := game.HeuristicByName(a.config.Heuristic)
	if err != nil {
		return err
	}
	maxNodes, _ := cmd.Flags().GetInt("max-nodes")

	out, err := graph.Export(game.Model(heuristic), g, a.config.Depth, game.SearchPlayer(g.Turn()), game.Game.Notation, maxNodes)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
