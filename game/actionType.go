package game

import "fmt"

// ActionType represents the type of action a player can perform.
type ActionType int

const (
	PlaceAction ActionType = iota
	SelectAction
	EndTurnAction
	CallAction
	SurrenderAction
	QuitAction
)

func (t ActionType) String() string {
	switch t {
	case PlaceAction:
		return "place"
	case SelectAction:
		return "select"
	case EndTurnAction:
		return "end-turn"
	case CallAction:
		return "call"
	case SurrenderAction:
		return "surrender"
	case QuitAction:
		return "quit"
	default:
		return fmt.Sprintf("action(%d)", int(t))
	}
}

// Action represents an action taken by a player. Row and Col are only read by
// place and select actions.
type Action struct {
	PlayerID int
	Type     ActionType
	Row      int
	Col      int
}

func (a Action) String() string {
	switch a.Type {
	case PlaceAction, SelectAction:
		return fmt.Sprintf("player %d %s (%d,%d)", a.PlayerID, a.Type, a.Row, a.Col)
	default:
		return fmt.Sprintf("player %d %s", a.PlayerID, a.Type)
	}
}
