package gamemaster

import (
	"fmt"
	"sync"

	"twixt/game"
	"twixt/meta"

	"github.com/rs/zerolog/log"
)

// Update is published after every accepted action.
type Update struct {
	Action   game.Action
	Snapshot game.Snapshot
}

// UpdateGetter returns the next pending update without blocking. It reports
// false when no update is pending or when the game is over and every update
// has been read.
type UpdateGetter func() (Update, bool)

// Engine hosts one game and serialises the actions of its seats.
type Engine interface {
	Init(numPlayers int) (game.Snapshot, UpdateGetter)
	Rematch() (game.Snapshot, UpdateGetter, error)
	Play(game.Action) error
	Snapshot() game.Snapshot
	Board() *game.Board
}

type localEngine struct {
	mu       sync.Mutex
	game     *game.Game
	updateCh chan Update
	gameOver bool
}

func NewLocalEngine() *localEngine {
	return &localEngine{}
}

func (e *localEngine) Init(numPlayers int) (game.Snapshot, UpdateGetter) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.game = game.NewGame(numPlayers)
	e.game.EnsureBoard()
	return e.game.Snapshot(), e.open()
}

// Rematch acknowledges the finished game, which resets it for the same seats,
// and opens a new update stream.
func (e *localEngine) Rematch() (game.Snapshot, UpdateGetter, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.game == nil {
		return game.Snapshot{}, nil, fmt.Errorf("game has not been initialized")
	}
	if !e.gameOver {
		return game.Snapshot{}, nil, fmt.Errorf("game is still in progress - finish it before a rematch")
	}
	e.game.Acknowledge()
	log.Info().Msgf("rematch with %d players", e.game.NumPlayers())
	return e.game.Snapshot(), e.open(), nil
}

// open starts a new update stream; callers hold the lock.
func (e *localEngine) open() UpdateGetter {
	e.gameOver = false
	updateCh := make(chan Update, meta.UPDATE_BUFFER)
	e.updateCh = updateCh

	return func() (Update, bool) {
		select {
		case u, ok := <-updateCh:
			return u, ok
		default:
			return Update{}, false
		}
	}
}

// Play applies an action from any seat. Rejected actions leave the game as it was.
func (e *localEngine) Play(action game.Action) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.game == nil {
		return fmt.Errorf("game has not been initialized")
	}
	if e.gameOver {
		return fmt.Errorf("game is over - no moves allowed: %w", game.ErrGameAlreadyOver)
	}
	if err := e.game.Apply(action); err != nil {
		return err
	}

	e.publish(Update{Action: action, Snapshot: e.game.Snapshot()})
	if winner, over := e.game.IsGameOver(); over {
		e.gameOver = true
		log.Info().Msgf("game over after %d turns, status %v, winner %v", e.game.Turns(), e.game.Status(), winner)
		close(e.updateCh)
	}
	return nil
}

func (e *localEngine) publish(u Update) {
	select {
	case e.updateCh <- u:
	default:
		log.Warn().Msgf("update buffer full, dropping update for %v", u.Action)
	}
}

func (e *localEngine) Snapshot() game.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.game == nil {
		return game.Snapshot{}
	}
	return e.game.Snapshot()
}

// Board returns a copy of the hosted board, so that players can plan on it.
func (e *localEngine) Board() *game.Board {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.game == nil {
		return game.NewBoard()
	}
	return e.game.Board()
}

// Apply is Play, so the host can seat computer players directly.
func (e *localEngine) Apply(action game.Action) error {
	return e.Play(action)
}
