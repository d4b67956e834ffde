package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"twixt/config"
	"twixt/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	experiment := flag.String("experiment", "selfplay", "Experiment to run: selfplay or throughput")
	name := flag.String("name", "selfplay", "Name of the experiment's output folder")
	games := flag.Int("games", 0, "Games per matchup (overrides the config file)")
	parallel := flag.Int("parallel", 0, "Games played in parallel (overrides the config file)")
	seed := flag.Uint64("seed", 0, "Base seed of the computer players (overrides the config file)")
	maxTurns := flag.Int("turns", 0, "Turn limit per game (overrides the config file)")
	out := flag.String("out", "", "Output directory (overrides the config file)")
	level := flag.String("log", "", "Log level (overrides the config file)")
	levels := flag.String("levels", "1,2,4,8", "Parallelism levels of the throughput experiment")
	save := flag.Bool("save-config", false, "Write the effective config to the user config directory")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "games":
			cfg.Games = *games
		case "parallel":
			cfg.Parallel = *parallel
		case "seed":
			cfg.Seed = *seed
		case "turns":
			cfg.MaxTurns = *maxTurns
		case "out":
			cfg.OutputDir = *out
		case "log":
			cfg.LogLevel = *level
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	if *save {
		if err := cfg.Save(); err != nil {
			log.Fatal().Err(err).Msg("failed to save config")
		}
		log.Info().Msg("saved config")
	}

	switch *experiment {
	case "selfplay":
		dir, err := experiments.Run(*name, cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("self-play experiment failed")
		}
		fmt.Println(dir)
	case "throughput":
		ls, err := parseLevels(*levels)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid levels")
		}
		if _, err := experiments.RunThroughputExperiment(cfg, ls); err != nil {
			log.Fatal().Err(err).Msg("throughput experiment failed")
		}
	default:
		log.Fatal().Msgf("unknown experiment %q", *experiment)
	}
}

func parseLevels(s string) ([]int, error) {
	var levels []int
	for _, field := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("parallelism level %q: %w", field, err)
		}
		levels = append(levels, n)
	}
	return levels, nil
}
