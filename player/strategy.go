package player

import (
	"fmt"
	"strings"
	"time"

	"twixt/game"

	"golang.org/x/exp/rand"
)

// Strategy selects how a computer player picks its moves.
type Strategy int

const (
	Random Strategy = iota
	Heuristic
)

func (s Strategy) String() string {
	switch s {
	case Random:
		return "random"
	case Heuristic:
		return "heuristic"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "random":
		return Random, nil
	case "heuristic", "smart":
		return Heuristic, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q", name)
	}
}

// TurnPlan is a full turn: one placement followed by bridges from the placed peg.
type TurnPlan struct {
	Placement game.Position
	Placed    bool            // false only when no legal cell is left
	Bridges   []game.Position // bridge targets, in the order they were added
}

// State is the per-game memory of a computer player.
type State struct {
	Turns int // turns planned so far
	rng   *rand.Rand
}

func NewState(seed uint64) *State {
	return &State{rng: rand.New(rand.NewSource(seed))}
}

func newSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

// SelectMove plans the next turn for side, initializing the board first if no game
// has started on it. Bridges are planned on a copy so that each one is checked
// against the ones added before it.
func SelectMove(board *game.Board, side game.Side, strategy Strategy, st *State) TurnPlan {
	st.Turns++
	if !board.Initialized() {
		board.Reset()
	}

	var p game.Position
	var ok bool
	switch strategy {
	case Random:
		p, ok = randomCell(board, side, st.rng)
	case Heuristic:
		p, ok = heuristicCell(board, side, st)
	default:
		panic(fmt.Sprintf("unknown strategy %v", strategy))
	}
	if !ok {
		return TurnPlan{}
	}
	return TurnPlan{Placement: p, Placed: true, Bridges: connect(board, side, p)}
}

// connect places p on a copy of the board and bridges it to every own peg a
// knight's move away, in row-major order.
func connect(board *game.Board, side game.Side, p game.Position) []game.Position {
	plan := board.Clone()
	if err := plan.SetOwner(p, side); err != nil {
		panic(fmt.Sprintf("planned placement %v: %v", p, err))
	}
	var bridges []game.Position
	for _, n := range game.KnightNeighbours(p) {
		if plan.Owner(n) != side || game.CanPlaceBridge(plan, p, n) != nil {
			continue
		}
		if err := plan.AddBridge(p, n); err != nil {
			panic(fmt.Sprintf("planned bridge %v-%v: %v", p, n, err))
		}
		bridges = append(bridges, n)
	}
	return bridges
}
