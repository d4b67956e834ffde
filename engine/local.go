package engine

import (
	"fmt"
	"time"

	"twixt/experiments/metrics"
	"twixt/game"
	"twixt/gamemaster"
	"twixt/meta"
	"twixt/player"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Host is a gamemaster engine that computer players can sit at.
type Host interface {
	gamemaster.Engine
	player.Table
}

var _ Runner = (*Engine)(nil)

type Engine struct {
	ID       string
	Host     Host
	Players  []*player.Player
	MaxTurns int
}

// LocalEngine seats one computer player per seat at a fresh local host.
func LocalEngine(players []*player.Player) *Engine {
	if len(players) < 2 || len(players) > 4 {
		panic(fmt.Sprintf("need two to four players, got %d", len(players)))
	}
	for seat, p := range players {
		if p.Seat != seat {
			panic(fmt.Sprintf("player for seat %d sits at seat %d", seat, p.Seat))
		}
	}
	return &Engine{
		ID:       uuid.NewString(),
		Host:     gamemaster.NewLocalEngine(),
		Players:  players,
		MaxTurns: meta.MAX_TURNS,
	}
}

// Run executes the entire game loop until a winner is found. A host whose last
// game has ended is acknowledged for a rematch; otherwise a new game is set up.
func (e *Engine) Run() (string, metrics.GameMetric, []metrics.TurnMetric) {
	snapshot, getUpdate := e.start()
	for _, p := range e.Players {
		p.Reset()
	}

	gameMetric := metrics.GameMetric{
		ID:             e.ID,
		Players:        len(e.Players),
		StartingPlayer: snapshot.Player,
		StartTime:      time.Now(),
	}
	log.Info().Msgf("game %s: player %d is starting", e.ID, snapshot.Player)

	var turnMetrics []metrics.TurnMetric
	for turn := 1; snapshot.Status == game.InProgress && turn <= e.MaxTurns; turn++ {
		seat := snapshot.Player
		p := e.Players[seat]

		actions, err := p.TakeTurn(e.Host)
		if err != nil {
			log.Warn().Msgf("game %s: player %d stopped after %d actions: %v", e.ID, seat, len(actions), err)
			break
		}
		turnMetrics = append(turnMetrics, metrics.TurnMetric{
			Step:      turn,
			Player:    seat,
			Side:      p.Side().String(),
			Strategy:  p.Strategy.String(),
			TurnStats: p.Stats(),
		})
		updates := drain(getUpdate)
		log.Debug().Msgf("game %s turn %d: player %d played %v (%d updates)", e.ID, turn, seat, actions, updates)

		snapshot = e.Host.Snapshot()
	}

	winner := ""
	if snapshot.Winner != game.NoSide {
		winner = snapshot.Winner.String()
	}
	gameMetric.Winner = winner
	gameMetric.Status = snapshot.Status.String()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalTurns = snapshot.Turns

	if winner != "" {
		log.Info().Msgf("game %s ended after %d turns, winner: side %s", e.ID, snapshot.Turns, winner)
	} else {
		log.Info().Msgf("game %s stopped after %d turns (no winner)", e.ID, snapshot.Turns)
	}
	return winner, gameMetric, turnMetrics
}

func (e *Engine) start() (game.Snapshot, gamemaster.UpdateGetter) {
	if e.Host.Snapshot().Status == game.InProgress {
		return e.Host.Init(len(e.Players))
	}
	snapshot, getUpdate, err := e.Host.Rematch()
	if err != nil {
		panic(fmt.Sprintf("game %s: rematch failed: %v", e.ID, err))
	}
	return snapshot, getUpdate
}

// drain empties the host's update buffer and returns the number of updates read.
func drain(getUpdate gamemaster.UpdateGetter) int {
	n := 0
	for {
		if _, ok := getUpdate(); !ok {
			return n
		}
		n++
	}
}
