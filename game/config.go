package game

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed default.toml
var defaultConfigTOML string

// ErrInvalidConfig is returned when a config decodes but cannot drive a game
var ErrInvalidConfig = errors.New("invalid game config")

// Difficulty is one selectable level
type Difficulty struct {
	Name        string `toml:"name"`
	MaxNumber   int    `toml:"max_number"`
	MaxAttempts int    `toml:"max_attempts"`
	// Multiplier scales points; 0 means 1
	Multiplier int `toml:"multiplier"`
}

// Config holds game tuning loaded from TOML
type Config struct {
	Title        string       `toml:"title"`
	Difficulties []Difficulty `toml:"difficulty"`
}

// DefaultConfig returns the embedded configuration
func DefaultConfig() Config {
	cfg, err := ParseConfig(defaultConfigTOML)
	if err != nil {
		panic(fmt.Sprintf("embedded game config: %v", err))
	}
	return cfg
}

// ParseConfig decodes and validates a TOML document. Unknown keys are rejected.
func ParseConfig(data string) (Config, error) {
	var cfg Config
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode game config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads path and overlays it on the defaults.
// A file that sets difficulties replaces the default list entirely. Empty path returns defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	var file Config
	md, err := toml.DecodeFile(path, &file)
	if err != nil {
		return Config{}, fmt.Errorf("load game config %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, fmt.Errorf("load game config %s: %w", path, err)
	}

	if file.Title != "" {
		cfg.Title = file.Title
	}
	if len(file.Difficulties) > 0 {
		cfg.Difficulties = file.Difficulties
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load game config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports whether every difficulty is playable
func (c Config) Validate() error {
	if len(c.Difficulties) == 0 {
		return fmt.Errorf("%w: no difficulties", ErrInvalidConfig)
	}
	for i, d := range c.Difficulties {
		switch {
		case d.Name == "":
			return fmt.Errorf("%w: difficulty %d has no name", ErrInvalidConfig, i)
		case d.MaxNumber < 1:
			return fmt.Errorf("%w: %s max_number %d < 1", ErrInvalidConfig, d.Name, d.MaxNumber)
		case d.MaxAttempts < 1:
			return fmt.Errorf("%w: %s max_attempts %d < 1", ErrInvalidConfig, d.Name, d.MaxAttempts)
		case d.Multiplier < 0:
			return fmt.Errorf("%w: %s multiplier %d < 0", ErrInvalidConfig, d.Name, d.Multiplier)
		}
	}
	return nil
}

// Points returns the score for solving on the given 1-based attempt
func (d Difficulty) Points(attempt int) int {
	mult := d.Multiplier
	if mult == 0 {
		mult = 1
	}
	return max(1, d.MaxAttempts-attempt+1) * 10 * mult
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	return fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
}
