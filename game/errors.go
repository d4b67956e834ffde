package game

import "errors"

var (
	ErrOutOfBounds     = errors.New("coordinate out of bounds")
	ErrOccupiedHomeRow = errors.New("cell is on the opponent's home line")
	ErrCellOccupied    = errors.New("cell is occupied")
	ErrNotOwner        = errors.New("peg is not owned by the acting side")
	ErrNotKnightsMove  = errors.New("pegs are not a knight's move apart")
	ErrBridgeCrosses   = errors.New("bridge would cross an existing bridge")
	ErrDuplicateCall   = errors.New("team has already called")
	ErrGameAlreadyOver = errors.New("game is already over")

	ErrInvalidBridge   = errors.New("invalid bridge")
	ErrCornerCell      = errors.New("corner cells cannot be occupied")
	ErrEmptyCell       = errors.New("cell is empty")
	ErrPegLocked       = errors.New("peg is locked in for this turn")
	ErrBridgeExists    = errors.New("pegs are already bridged")
	ErrNotYourTurn     = errors.New("not this player's turn")
	ErrCallUnavailable = errors.New("call is only available in 4 player games")
)
