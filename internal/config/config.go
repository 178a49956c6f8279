package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

type Config struct {
	Stage                 string
	Seed                  int64
	ThinkDelay            time.Duration
	MaxBoardRegenerations int
	LogLevel              log.Level
	DatabaseUrl           string
	SpectatorPort         string
}

// Load reads the configuration from the environment. Outside of prod a
// .env file is loaded first if there is one.
func Load(envFiles ...string) (Config, error) {
	if os.Getenv("STAGE") != StageProd {
		if len(envFiles) == 0 {
			envFiles = []string{".env"}
		}
		for _, f := range envFiles {
			if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
				return Config{}, err
			}
		}
	}

	cfg := Config{
		Stage:                 StageDev,
		ThinkDelay:            time.Second * 4,
		MaxBoardRegenerations: 1000,
		LogLevel:              log.InfoLevel,
		DatabaseUrl:           os.Getenv("DATABASE_URL"),
		SpectatorPort:         os.Getenv("SPECTATOR_PORT"),
	}

	if stage := os.Getenv("STAGE"); stage != "" {
		if stage != StageDev && stage != StageProd {
			return Config{}, fmt.Errorf("stage must be either dev or prod, got: %s", stage)
		}
		cfg.Stage = stage
	}

	if seed := os.Getenv("SEED"); seed != "" {
		v, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SEED: %w", err)
		}
		cfg.Seed = v
	}

	if delay := os.Getenv("AI_THINK_DELAY"); delay != "" {
		v, err := time.ParseDuration(delay)
		if err != nil {
			return Config{}, fmt.Errorf("invalid AI_THINK_DELAY: %w", err)
		}
		if v < 0 {
			return Config{}, fmt.Errorf("AI_THINK_DELAY cannot be negative: %s", delay)
		}
		cfg.ThinkDelay = v
	}

	if regenerations := os.Getenv("MAX_BOARD_REGENERATIONS"); regenerations != "" {
		v, err := strconv.Atoi(regenerations)
		if err != nil || v < 1 {
			return Config{}, fmt.Errorf("MAX_BOARD_REGENERATIONS must be a positive integer, got: %s", regenerations)
		}
		cfg.MaxBoardRegenerations = v
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		v, err := log.ParseLevel(level)
		if err != nil {
			return Config{}, err
		}
		cfg.LogLevel = v
	}

	return cfg, nil
}

// SeedOrNow returns the configured seed, or one derived from the clock
// when none was set.
func (c Config) SeedOrNow() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
