package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/scorer/internal/config"
	"github.com/robalobadob/wordle/apps/scorer/internal/httpserver"
	"github.com/robalobadob/wordle/apps/scorer/internal/store"
	"github.com/robalobadob/wordle/apps/scorer/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	setupLogging(cfg)

	catalog, err := words.Load(cfg.Words.File)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word catalog")
	}

	srv := httpserver.New(cfg, catalog, store.NewMemoryStore())
	log.Info().Str("port", cfg.Port).Int("words", catalog.Len()).Msg("starting scorer")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func setupLogging(cfg config.Config) {
	if lvl, err := zerolog.ParseLevel(cfg.Log.Level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.Log.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
