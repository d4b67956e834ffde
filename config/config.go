package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"twixt/meta"
	"twixt/player"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("config error: %s", e.err)
}

// Matchup seats one strategy per seat, in seat order.
type Matchup struct {
	Name       string   `json:"name"`
	Strategies []string `json:"strategies"`
}

type Config struct {
	Games     int       `json:"games"` // per matchup
	Seed      uint64    `json:"seed"`
	Parallel  int       `json:"parallel"`
	MaxTurns  int       `json:"max_turns"`
	OutputDir string    `json:"output_dir"`
	LogLevel  string    `json:"log_level"`
	Matchups  []Matchup `json:"matchups"`
}

func DefaultConfig() Config {
	return Config{
		Games:     10,
		Seed:      1,
		Parallel:  meta.GO_ROUTINES,
		MaxTurns:  meta.MAX_TURNS,
		OutputDir: filepath.Join(xdg.DataHome, "twixt", "experiments"),
		LogLevel:  "info",
		Matchups: []Matchup{
			{Name: "random_vs_heuristic", Strategies: []string{"random", "heuristic"}},
			{Name: "heuristic_vs_random", Strategies: []string{"heuristic", "random"}},
			{Name: "heuristic_mirror", Strategies: []string{"heuristic", "heuristic"}},
			{Name: "heuristic_teams", Strategies: []string{"heuristic", "heuristic", "heuristic", "heuristic"}},
		},
	}
}

// InitConfig loads twixt/config.json from the xdg config directories, falling
// back to the defaults when there is none.
func InitConfig() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(meta.CONFIG_FILE)
	if err != nil {
		config := DefaultConfig()
		return &config, nil
	}
	return LoadFile(absPath)
}

// LoadFile reads a config file over the defaults and validates the result.
func LoadFile(path string) (*Config, error) {
	config := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if c.Games < 1 {
		return &InvalidConfig{"games must be at least 1"}
	}
	if c.Parallel < 1 {
		return &InvalidConfig{"parallel must be at least 1"}
	}
	if c.MaxTurns < 1 {
		return &InvalidConfig{"max_turns must be at least 1"}
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return &InvalidConfig{fmt.Sprintf("log_level %q: %v", c.LogLevel, err)}
	}
	if len(c.Matchups) == 0 {
		return &InvalidConfig{"no matchups"}
	}
	for _, m := range c.Matchups {
		if _, err := m.Players(); err != nil {
			return &InvalidConfig{fmt.Sprintf("matchup %q: %v", m.Name, err)}
		}
	}
	return nil
}

// Players parses the matchup's strategies.
func (m Matchup) Players() ([]player.Strategy, error) {
	if len(m.Strategies) < 2 || len(m.Strategies) > 4 {
		return nil, fmt.Errorf("needs 2 to 4 strategies, got %d", len(m.Strategies))
	}
	strategies := make([]player.Strategy, len(m.Strategies))
	for i, name := range m.Strategies {
		s, err := player.ParseStrategy(name)
		if err != nil {
			return nil, err
		}
		strategies[i] = s
	}
	return strategies, nil
}

// Level returns the zerolog level, info if unset.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return level
}

// Save writes the config to the user's xdg config directory.
func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(meta.CONFIG_FILE)
	if err != nil {
		return fmt.Errorf("failed to locate config file: %w", err)
	}
	return c.SaveFile(absPath)
}

func (c *Config) SaveFile(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0664); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
