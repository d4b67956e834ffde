package player

import (
	"errors"
	"fmt"

	"twixt/experiments/metrics"
	"twixt/game"
)

// Table is the game a player sits at. *game.Game and the gamemaster hosts both
// satisfy it.
type Table interface {
	Board() *game.Board
	Apply(game.Action) error
}

// Player is a computer player occupying one seat.
type Player struct {
	Seat     int
	Strategy Strategy
	state    *State
	metrics  metrics.Collector
}

type Option func(*Player)

// WithSeed makes the player's moves reproducible.
func WithSeed(seed uint64) Option {
	return func(p *Player) {
		p.state = NewState(seed)
	}
}

func WithMetrics() Option {
	return func(p *Player) {
		p.metrics = metrics.NewCollector()
	}
}

func New(seat int, strategy Strategy, opts ...Option) *Player {
	p := &Player{
		Seat:     seat,
		Strategy: strategy,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.state == nil {
		p.state = NewState(newSeed())
	}
	return p
}

func (p *Player) Side() game.Side {
	return game.SideOf(p.Seat)
}

// Reset forgets the previous game, keeping the random source.
func (p *Player) Reset() {
	p.state.Turns = 0
}

// Stats returns the metrics of the last turn taken.
func (p *Player) Stats() metrics.TurnStats {
	return p.metrics.Complete()
}

// TakeTurn plans a full turn and plays it on the table, ending the turn. It
// returns the actions applied. Rejections that only a concurrent host can cause
// (the game ended or the turn moved on) are returned; any other rejection means
// the plan was wrong and panics.
func (p *Player) TakeTurn(t Table) ([]game.Action, error) {
	p.metrics.Start()
	plan := SelectMove(t.Board().Clone(), p.Side(), p.Strategy, p.state)

	var actions []game.Action
	apply := func(a game.Action) error {
		if err := t.Apply(a); err != nil {
			if errors.Is(err, game.ErrGameAlreadyOver) || errors.Is(err, game.ErrNotYourTurn) {
				return err
			}
			panic(fmt.Sprintf("invalid %v action %v: %v", p.Strategy, a, err))
		}
		p.metrics.AddAction()
		actions = append(actions, a)
		return nil
	}

	if plan.Placed {
		at := plan.Placement
		if err := apply(p.action(game.PlaceAction, at)); err != nil {
			return actions, err
		}
		p.metrics.AddPlacement()
		for _, target := range plan.Bridges {
			if err := apply(p.action(game.SelectAction, at)); err != nil {
				return actions, err
			}
			if err := apply(p.action(game.SelectAction, target)); err != nil {
				return actions, err
			}
			p.metrics.AddBridge()
		}
	}
	if err := apply(game.Action{PlayerID: p.Seat, Type: game.EndTurnAction}); err != nil {
		return actions, err
	}
	return actions, nil
}

func (p *Player) action(t game.ActionType, at game.Position) game.Action {
	return game.Action{PlayerID: p.Seat, Type: t, Row: at.Row, Col: at.Col}
}
