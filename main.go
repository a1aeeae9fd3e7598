package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/secretnumber/internal/console"
	"github.com/robalobadob/secretnumber/internal/game"
	"github.com/robalobadob/secretnumber/internal/phrases"
)

func main() {
	_ = godotenv.Load()
	cfg := loadConfig()

	// stdout carries the game transcript; logs go to stderr.
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(cfg.LogLevel)

	if err := phrases.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load phrases")
	}

	p := console.NewPresenter(os.Stdout, cfg.Delay)
	p.Welcome()

	st := game.New(0)
	log.Trace().Int("secret", st.Secret).Msg("secret drawn")

	if err := console.Run(os.Stdin, os.Stdout, st, p); err != nil {
		log.Error().Err(err).Int("attempts", st.Attempts).Msg("game ended early")
		os.Exit(1)
	}
	log.Info().Int("attempts", st.Attempts).Msg("secret found")
	os.Exit(0)
}
