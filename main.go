package main

import (
	"os"
	"time"

	"adversarial/internal/cmd"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	if err := cmd.Root().Execute(); err != nil {
		log.Fatal().Err(err).Msg("adversarial failed")
	}
}
