package config

import (
	"fmt"
	"os"

	"duel/meta"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config holds the driver settings. Flags given on the command line override
// the values loaded from a file.
type Config struct {
	Game          string   `yaml:"game"`
	Player1       string   `yaml:"player1"`
	Player2       string   `yaml:"player2"`
	Strategy      string   `yaml:"strategy"` // minimax, alphabeta or tournament
	Tournament    bool     `yaml:"tournament"`
	Exclude       []string `yaml:"exclude"`
	MaxExpansions int      `yaml:"max_expansions"`
	MaxPlies      int      `yaml:"max_plies"`
	Verbose       bool     `yaml:"verbose"`
	LogLevel      string   `yaml:"log_level"`
	OutDir        string   `yaml:"out_dir"` // Tournament records are only written when set
	Seed          uint64   `yaml:"seed"`
}

func Default() Config {
	return Config{
		Game:          meta.GAME,
		Strategy:      "minimax",
		MaxExpansions: meta.MAX_EXPANSIONS,
		MaxPlies:      meta.MAX_PLIES,
		LogLevel:      zerolog.LevelInfoValue,
	}
}

// Load reads a YAML file on top of the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Game == "" {
		return fmt.Errorf("no game given")
	}
	if c.MaxExpansions < 1 {
		return fmt.Errorf("max_expansions must be positive, got %d", c.MaxExpansions)
	}
	if c.MaxPlies < 0 {
		return fmt.Errorf("max_plies must not be negative, got %d", c.MaxPlies)
	}
	if !c.Tournament && len(c.Exclude) > 0 {
		return fmt.Errorf("exclusions are only allowed in a tournament")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
