package game

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds game configuration options.
type Config struct {
	// Seed for the piece randomizer. A seed of 0 means a time-based seed.
	Seed int64 `yaml:"seed" env:"BLOCKFALL_SEED" env-default:"0"`

	// DropInterval is the time between gravity ticks.
	DropInterval time.Duration `yaml:"drop-interval" env:"BLOCKFALL_DROP_INTERVAL" env-default:"500ms"`

	// FrameInterval is how often the loop wakes to advance time and redraw.
	FrameInterval time.Duration `yaml:"frame-interval" env:"BLOCKFALL_FRAME_INTERVAL" env-default:"16ms"`

	Palette  string `yaml:"palette" env:"BLOCKFALL_PALETTE" env-default:"classic"`
	LogLevel string `yaml:"log-level" env:"BLOCKFALL_LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"BLOCKFALL_LOG_FILE"`

	Telemetry Telemetry `yaml:"telemetry"`
}

// Telemetry configures trace export to Honeycomb.
type Telemetry struct {
	Enabled bool   `yaml:"enabled" env:"BLOCKFALL_TELEMETRY" env-default:"false"`
	APIKey  string `yaml:"api-key" env:"HONEYCOMB_BLOCKFALL_API_KEY"`
	Dataset string `yaml:"dataset" env:"HONEYCOMB_BLOCKFALL_DATASET" env-default:"blockfall"`
}

// LoadConfig reads configuration from the YAML file at path, if given, and
// from the environment. Environment variables override file values.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that intervals are usable.
func (c *Config) Validate() error {
	if c.DropInterval <= 0 {
		return errors.New("drop interval must be positive")
	}
	if c.FrameInterval <= 0 {
		return errors.New("frame interval must be positive")
	}
	return nil
}

// LogPath returns the log file location, defaulting to the temp directory.
// The terminal belongs to the game, so logs never go to stderr.
func (c *Config) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(os.TempDir(), "blockfall.log")
}
