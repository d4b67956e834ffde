package config

import (
	"os"
	"path/filepath"
	"testing"

	"twixt/meta"
	"twixt/player"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	require.NoError(t, config.Validate())
	require.Equal(t, meta.MAX_TURNS, config.MaxTurns)
	require.Equal(t, zerolog.InfoLevel, config.Level())

	strategies, err := config.Matchups[0].Players()
	require.NoError(t, err)
	require.Equal(t, []player.Strategy{player.Random, player.Heuristic}, strategies)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"no games":         func(c *Config) { c.Games = 0 },
		"no workers":       func(c *Config) { c.Parallel = 0 },
		"no turns":         func(c *Config) { c.MaxTurns = -1 },
		"bad log level":    func(c *Config) { c.LogLevel = "loud" },
		"no matchups":      func(c *Config) { c.Matchups = nil },
		"one player":       func(c *Config) { c.Matchups = []Matchup{{Name: "solo", Strategies: []string{"random"}}} },
		"five players":     func(c *Config) { c.Matchups[0].Strategies = []string{"random", "random", "random", "random", "random"} },
		"unknown strategy": func(c *Config) { c.Matchups[0].Strategies = []string{"random", "minimax"} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			config := DefaultConfig()
			mutate(&config)
			var invalid *InvalidConfig
			require.ErrorAs(t, config.Validate(), &invalid)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Run("overrides the defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"games": 3, "log_level": "debug", "matchups": [{"name": "m", "strategies": ["heuristic", "random", "random"]}]}`), 0644))

		config, err := LoadFile(path)

		require.NoError(t, err)
		require.Equal(t, 3, config.Games)
		require.Equal(t, zerolog.DebugLevel, config.Level())
		require.Len(t, config.Matchups, 1)
		require.Equal(t, DefaultConfig().Parallel, config.Parallel, "Unset fields keep their defaults")
	})

	t.Run("invalid json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"games": `), 0644))
		_, err := LoadFile(path)
		require.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"games": 0}`), 0644))
		_, err := LoadFile(path)
		var invalid *InvalidConfig
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestSaveAndInit(t *testing.T) {
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	xdg.Reload()

	config, err := InitConfig()
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), *config, "Defaults without a config file")

	config.Games = 42
	config.Matchups = config.Matchups[:1]
	require.NoError(t, config.Save())

	loaded, err := InitConfig()
	require.NoError(t, err)
	require.Equal(t, config, loaded)
}
