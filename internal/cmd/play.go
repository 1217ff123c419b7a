package cmd

import (
	"fmt"

	"adversarial/agent"
	"adversarial/engine"
	"adversarial/game"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

func (a *app) playCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game of tic-tac-toe against the computer",
		Long: heredoc.Doc(`Play a game on the terminal. Tiles are chosen with the keys

			|u|i|o|
			|h|j|k|
			|b|n|m|

			followed by enter. After every move the position is scored from
			the point of view of the side to move.`),
		Args: cobra.NoArgs,
		RunE: a.play,
	}

	cmd.Flags().String("human", "x", "Sides played from the keyboard: x, o, both or none")
	cmd.Flags().Uint64("seed", 0, "Play random moves with this seed instead of searching (0 searches)")
	cmd.Flags().String("board", "", "Starting board instead of the empty one")
	addTurnFlag(cmd)
	return cmd
}

func (a *app) play(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	out := cmd.OutOrStdout()

	human, _ := flags.GetString("human")
	humanCross, humanCircle, err := parseSides(human)
	if err != nil {
		return err
	}

	s, err := a.config.Searcher()
	if err != nil {
		return err
	}
	var computer agent.Agent = agent.NewMinimaxAgent(s)
	if seed, _ := flags.GetUint64("seed"); seed != 0 {
		computer = agent.NewRandomAgent(seed)
	}

	keyboard := agent.NewHumanAgent(cmd.InOrStdin(), out)
	crossAgent, circleAgent := computer, computer
	if humanCross {
		crossAgent = keyboard
	}
	if humanCircle {
		circleAgent = keyboard
	}

	start := game.NewGame()
	if board, _ := flags.GetString("board"); board != "" {
		start, err = parseGame(cmd, board)
		if err != nil {
			return err
		}
	}

	if humanCross || humanCircle {
		fmt.Fprint(out, "Enter a tile to play the next move:\n"+game.KeyLegend+"\n")
	}
	fmt.Fprint(out, render(start))

	e := engine.NewLocalEngine(start, crossAgent, circleAgent,
		engine.WithEvaluator(s),
		engine.WithObserver(func(u engine.Update) {
			fmt.Fprintf(out, "\n%s played %s\n", u.Player, u.Move)
			fmt.Fprint(out, render(u.State))
			fmt.Fprintf(out, "eval: %v\n", u.Eval)
		}),
	)

	outcome, _, _, err := e.Run()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nGame over: %s\n", outcome)
	return nil
}

func parseSides(text string) (cross, circle bool, err error) {
	switch text {
	case "x":
		return true, false, nil
	case "o":
		return false, true, nil
	case "both":
		return true, true, nil
	case "none":
		return false, false, nil
	default:
		return false, false, fmt.Errorf("unknown --human value %q, want x, o, both or none", text)
	}
}
