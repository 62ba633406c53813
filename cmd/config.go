package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	RatePolicy     string `env:"RATE_POLICY"     envDefault:"lenient"`
	RecalcSchedule string `env:"RECALC_SCHEDULE"`
	SeedFile       string `env:"SEED_FILE"`
	LogLevel       string `env:"LOG_LEVEL"       envDefault:"info"`
	LogFormat      string `env:"LOG_FORMAT"      envDefault:"text"`
}

// LoadConfig reads dotenvFile into the environment, if the file exists, and
// parses the environment into a Config. Variables already set win over the file.
func LoadConfig(dotenvFile string) (Config, error) {
	if dotenvFile != "" {
		if err := godotenv.Load(dotenvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", dotenvFile, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
