package experiments

import (
	"fmt"
	"sync"

	"twixt/config"
	"twixt/engine"
	"twixt/experiments/metrics"
	"twixt/player"

	"github.com/rs/zerolog/log"
)

// result of one self-play game
type result struct {
	winner string
	game   metrics.GameMetric
	turns  []metrics.TurnMetric
}

// Run plays every configured matchup and stores the records under
// cfg.OutputDir/name. It returns the directory written to.
func Run(name string, cfg *config.Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	gameRecords := []metrics.GameRecord{}
	turnRecords := []metrics.TurnRecord{}
	matchupRecords := []metrics.MatchupRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range cfg.Matchups {
		strategies, err := matchup.Players()
		if err != nil {
			return "", err
		}
		log.Info().Msgf("starting matchup %d of %d: %s %v...", mi+1, len(cfg.Matchups), matchup.Name, matchup.Strategies)

		seed := cfg.Seed + uint64(mi)*uint64(cfg.Games)*4
		results := playGames(strategies, cfg.Games, cfg.Parallel, cfg.MaxTurns, seed)

		wins := map[string]int{}
		for _, r := range results {
			wins[r.winner]++
			gameRecords = append(gameRecords, metrics.GameRecord{Matchup: matchup.Name, GameMetric: r.game})
			for _, tm := range r.turns {
				turnRecords = append(turnRecords, metrics.TurnRecord{Game: r.game.ID, TurnMetric: tm})
			}
		}
		matchupRecords = append(matchupRecords, metrics.MatchupRecord{
			Name:       matchup.Name,
			Strategies: matchup.Strategies,
			Games:      cfg.Games,
		})
		log.Info().Msgf("completed matchup %s: side A %d, side B %d, no winner %d", matchup.Name, wins["A"], wins["B"], wins[""])
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(cfg.OutputDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteMatchups(matchupRecords); err != nil {
		return "", fmt.Errorf("failed to store matchups: %w", err)
	}
	log.Info().Msg("stored matchups")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteTurnRecords(turnRecords); err != nil {
		return "", fmt.Errorf("failed to write turn records: %w", err)
	}
	log.Info().Msgf("stored turn records in %s", writer.Dir())

	return writer.Dir(), nil
}

// playGames runs the games of one matchup on a pool of goroutines. Results are
// in game order whatever order the games finish in.
func playGames(strategies []player.Strategy, games, parallel, maxTurns int, seed uint64) []result {
	results := make([]result, games)
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < min(parallel, games); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = runGame(strategies, maxTurns, seed+uint64(i*len(strategies)))
				log.Debug().Msgf("game %d of %d completed with winner: %q", i+1, games, results[i].winner)
			}
		}()
	}
	for i := 0; i < games; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

// runGame executes a single self-play game and returns the winner
func runGame(strategies []player.Strategy, maxTurns int, seed uint64) result {
	players := make([]*player.Player, len(strategies))
	for seat, s := range strategies {
		players[seat] = player.New(seat, s, player.WithSeed(seed+uint64(seat)), player.WithMetrics())
	}
	e := engine.LocalEngine(players)
	e.MaxTurns = maxTurns

	winner, gameMetric, turnMetrics := e.Run()
	return result{winner: winner, game: gameMetric, turns: turnMetrics}
}
