package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/samdwyer/blockfall/internal/game"
)

// newLogger opens the configured log file and returns a leveled logger
// writing to it. The terminal is owned by the game screen, so nothing is
// logged to stderr once the game starts.
func newLogger(cfg *game.Config) (zerolog.Logger, func(), error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	path := cfg.LogPath()
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("open log file %s: %w", path, err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	logger := zerolog.New(file).Level(level).With().Timestamp().Logger()

	return logger, func() { _ = file.Close() }, nil
}
