// Package main is the entry point for Blockfall.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/samdwyer/blockfall/internal/game"
	"github.com/samdwyer/blockfall/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "blockfall: %v\n", err)
		os.Exit(1)
	}
}

// run wires the game together and blocks until it ends. Deferred cleanup
// always runs before main exits.
func run(configPath string) error {
	// Load .env file for local development; env vars may also be set directly
	envErr := godotenv.Load()

	cfg, err := game.LoadConfig(configPath)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	if envErr != nil {
		logger.Debug().Err(envErr).Msg(".env file not loaded")
	}

	sessionID := uuid.NewString()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Setup(ctx, telemetry.Settings{
			APIKey:    cfg.Telemetry.APIKey,
			Dataset:   cfg.Telemetry.Dataset,
			SessionID: sessionID,
		})
		if err != nil {
			// Not fatal - the game still works without observability
			logger.Warn().Err(err).Msg("telemetry setup failed")
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Error().Err(err).Msg("telemetry shutdown failed")
				}
			}()
		}
	}

	g, err := game.New(*cfg, sessionID, logger)
	if err != nil {
		logger.Error().Err(err).Msg("failed to initialize game")
		return err
	}

	if err := g.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("game error")
		return err
	}
	return nil
}
