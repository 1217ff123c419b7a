package cmd

import (
	"strings"

	"adversarial/game"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	crossColor  = color.New(color.FgRed, color.Bold)
	circleColor = color.New(color.FgBlue, color.Bold)
)

// render draws the board like game.Game.String, with colored marks.
func render(g game.Game) string {
	var sb strings.Builder
	for _, row := range g.Board() {
		sb.WriteString("| ")
		for _, t := range row {
			switch t {
			case game.Cross:
				sb.WriteString(" " + crossColor.Sprint("x") + " ")
			case game.Circle:
				sb.WriteString(" " + circleColor.Sprint("o") + " ")
			default:
				sb.WriteString("   ")
			}
		}
		sb.WriteString(" |\n")
	}
	return sb.String()
}

func addTurnFlag(cmd *cobra.Command) {
	cmd.Flags().String("turn", "", "Side to move, x or o (inferred from the tile counts by default)")
}

// parseGame reads the board argument and the --turn flag.
func parseGame(cmd *cobra.Command, board string) (game.Game, error) {
	g, err := game.ParseBoard(board, game.CrossPlayer)
	if err != nil {
		return game.Game{}, err
	}

	turn := g.Board().InferTurn()
	if text, _ := cmd.Flags().GetString("turn"); text != "" {
		turn, err = game.ParsePlayer(text)
		if err != nil {
			return game.Game{}, err
		}
	}
	return game.FromBoard(g.Board(), turn), nil
}
