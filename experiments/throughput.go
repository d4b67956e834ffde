package experiments

import (
	"fmt"
	"time"

	"twixt/config"

	"github.com/rs/zerolog/log"
)

// Throughput is the self-play speed measured at one level of parallelism.
type Throughput struct {
	Goroutines  int
	Games       int
	Turns       int
	Duration    time.Duration
	GamesPerSec float64
	TurnsPerSec float64
}

// RunThroughputExperiment plays the first configured matchup once per level of
// parallelism and reports how many games and turns per second each level reaches.
func RunThroughputExperiment(cfg *config.Config, levels []int) ([]Throughput, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	strategies, err := cfg.Matchups[0].Players()
	if err != nil {
		return nil, err
	}

	log.Info().Msgf("starting throughput experiment on %s...", cfg.Matchups[0].Name)

	var out []Throughput
	for _, goroutines := range levels {
		if goroutines < 1 {
			return nil, fmt.Errorf("invalid parallelism level %d", goroutines)
		}
		start := time.Now()
		results := playGames(strategies, cfg.Games, goroutines, cfg.MaxTurns, cfg.Seed)
		elapsed := time.Since(start)

		turns := 0
		for _, r := range results {
			turns += r.game.TotalTurns
		}
		t := Throughput{
			Goroutines:  goroutines,
			Games:       len(results),
			Turns:       turns,
			Duration:    elapsed,
			GamesPerSec: float64(len(results)) / elapsed.Seconds(),
			TurnsPerSec: float64(turns) / elapsed.Seconds(),
		}
		out = append(out, t)
		log.Info().Msgf("goroutines=%d: %d games, %d turns in %v (%.1f games/s, %.1f turns/s)",
			goroutines, t.Games, t.Turns, t.Duration, t.GamesPerSec, t.TurnsPerSec)
	}

	log.Info().Msg("completed throughput experiment")
	return out, nil
}
