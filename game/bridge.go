package game

import (
	"fmt"

	"twixt/utils"
)

// knightOffsets in row-major order of the target cell.
var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1},
	{-1, -2}, {-1, 2},
	{1, -2}, {1, 2},
	{2, -1}, {2, 1},
}

func IsKnightsMove(a, b Position) bool {
	dr, dc := abs(a.Row-b.Row), abs(a.Col-b.Col)
	return (dr == 1 && dc == 2) || (dr == 2 && dc == 1)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// KnightNeighbours returns the on-board cells a knight's move from p.
func KnightNeighbours(p Position) []Position {
	neighbours := make([]Position, 0, len(knightOffsets))
	for _, off := range knightOffsets {
		n := Position{Row: p.Row + off[0], Col: p.Col + off[1]}
		if n.InBounds() {
			neighbours = append(neighbours, n)
		}
	}
	return neighbours
}

// CanPlaceBridge returns nil if a bridge between first and second is legal on the
// board as it stands. It never mutates the board.
func CanPlaceBridge(b *Board, first, second Position) error {
	if !first.InBounds() || !second.InBounds() {
		return fmt.Errorf("%w: %v-%v", ErrOutOfBounds, first, second)
	}
	owner := b.Owner(first)
	if owner == NoSide || owner != b.Owner(second) {
		return fmt.Errorf("%w: %v and %v are not owned by the same side", ErrNotOwner, first, second)
	}
	if !IsKnightsMove(first, second) {
		return fmt.Errorf("%w: %v-%v", ErrNotKnightsMove, first, second)
	}
	if b.HasBridge(first, second) {
		return fmt.Errorf("%w: %v-%v", ErrBridgeExists, first, second)
	}
	for _, existing := range b.Bridges() {
		if SegmentsCross(first, second, existing.A, existing.B) {
			return fmt.Errorf("%w: %v-%v crosses %v-%v", ErrBridgeCrosses, first, second, existing.A, existing.B)
		}
	}
	return nil
}

// LegalBridgeTargets returns every peg that from could be bridged to right now.
func LegalBridgeTargets(b *Board, from Position) []Position {
	return utils.Filter(KnightNeighbours(from), func(n Position) bool {
		return CanPlaceBridge(b, from, n) == nil
	})
}
