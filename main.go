package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gameinfo/internal/bot"
	"gameinfo/internal/config"
	"gameinfo/internal/report"
	"gameinfo/internal/riotapi"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not load configuration: %v\n", err)
		os.Exit(1)
	}
	setupLogging(cfg)

	// Create riot API
	riotapi := riotapi.NewRiotApi(riotapi.Options{
		Region:       cfg.RiotRegion,
		ApiKey:       cfg.RiotApiKey,
		BaseUrl:      cfg.RiotBaseUrl,
		Restrictions: cfg.Restrictions,
	})
	log.Info().Msgf("Riot API ready for region %s with %d restrictions", cfg.RiotRegion, len(cfg.Restrictions))

	// Create bot
	bot := bot.NewBot(cfg, report.NewReporter(riotapi))

	// Run bot until interrupted
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := bot.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Bot stopped")
	}
}

func setupLogging(cfg config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
