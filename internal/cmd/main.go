package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/7rof/huroof/internal/buzzer"
	"github.com/7rof/huroof/internal/events"
	"github.com/7rof/huroof/internal/game"
	"github.com/7rof/huroof/internal/gateway"
	"github.com/7rof/huroof/internal/player"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file loaded")
	}
	if os.Getenv("LOG_PRETTY") != "" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := setupDatabase(ctx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up database")
	}
	defer pool.Close()

	var pub *events.Publisher
	if cfg.NATS.URL != "" {
		eventsCfg := events.DefaultConfig()
		eventsCfg.URL = cfg.NATS.URL
		pub, err = events.NewPublisher(eventsCfg)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to NATS")
		}
		defer pub.Close()
		log.Info().Str("url", cfg.NATS.URL).Msg("publishing room events")
	}

	svc := gateway.NewService(
		game.NewApp(game.NewRepository(pool), buzzer.NewRepository(pool), pub),
		buzzer.NewApp(buzzer.NewRepository(pool), pub),
		player.NewApp(player.NewRepository(pool), pub),
	)
	srv := setupServer(svc.Routes(), cfg.Port)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Msg("room service listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server failed")
	}
}
