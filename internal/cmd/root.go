package cmd

import (
	"strings"

	"adversarial/config"
	"adversarial/game"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type app struct {
	config config.Config
}

func Root() *cobra.Command {
	a := &app{config: config.Default()}

	root := &cobra.Command{
		Use:   "adversarial",
		Short: "Evaluate tic-tac-toe positions with minimax search",
		Long: heredoc.Doc(`adversarial scores two-player, zero-sum games by searching
			the game tree with minimax. Positive scores favor cross, negative
			scores favor circle; +Inf and -Inf are forced wins and 0 is a draw
			or a neutral cut-off.

			Boards are nine tiles in row-major order using x, o and . for
			empty tiles, e.g. "xx.oo....". Separators | and spaces are ignored.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: a.load,
	}

	flags := root.PersistentFlags()
	flags.String("config", config.DefaultPath, "Path of the YAML config file")
	flags.String("log-level", "", "Log level (trace, debug, info, warn, error)")
	flags.BoolP("trace", "t", false, "Show Trace Information")
	flags.IntP("depth", "d", 0, "Search depth in plies")
	flags.String("heuristic", "", "Heuristic for cut-off states, one of "+strings.Join(game.HeuristicNames(), ", "))
	flags.IntP("goroutines", "g", 0, "Goroutines evaluating sibling subtrees at the root")
	flags.Bool("strict", false, "Fail on non-terminal states without moves")

	root.AddCommand(a.playCmd())
	root.AddCommand(a.evalCmd())
	root.AddCommand(a.bestCmd())
	root.AddCommand(a.dotCmd())
	root.AddCommand(a.experimentCmd())

	return root
}

// load reads the config file, then applies flags that were set explicitly.
func (a *app) load(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	path, _ := flags.GetString("config")
	c, err := config.Load(path)
	if err != nil {
		return err
	}

	if flags.Changed("depth") {
		c.Depth, _ = flags.GetInt("depth")
	}
	if flags.Changed("heuristic") {
		c.Heuristic, _ = flags.GetString("heuristic")
	}
	if flags.Changed("goroutines") {
		c.Goroutines, _ = flags.GetInt("goroutines")
	}
	if flags.Changed("strict") {
		c.Strict, _ = flags.GetBool("strict")
	}
	if flags.Changed("log-level") {
		c.LogLevel, _ = flags.GetString("log-level")
	}
	if err := c.Validate(); err != nil {
		return err
	}

	level, _ := zerolog.ParseLevel(c.LogLevel)
	// If --trace flag is provided, set logging level to Trace.
	if flags.Changed("trace") {
		level = zerolog.TraceLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Trace().Msgf("loaded config %+v", c)

	a.config = c
	return nil
}
