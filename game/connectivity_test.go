package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// chainA connects row 0 to row 17 for side A without touching columns 0 and 17.
var chainA = []Position{
	{0, 1}, {2, 2}, {4, 3}, {5, 5}, {7, 6}, {8, 4},
	{10, 3}, {12, 4}, {13, 2}, {15, 1}, {17, 2},
}

// buildChain places and bridges the chain, skipping the last n links.
func buildChain(t *testing.T, b *Board, side Side, chain []Position, skip int) {
	t.Helper()
	place(t, b, side, chain...)
	for i := 0; i+1 < len(chain)-skip; i++ {
		bridge(t, b, chain[i], chain[i+1])
	}
}

// transpose mirrors a chain across the main diagonal.
func transpose(chain []Position) []Position {
	out := make([]Position, len(chain))
	for i, p := range chain {
		out[i] = Position{Row: p.Col, Col: p.Row}
	}
	return out
}

func TestHasWinningPath(t *testing.T) {
	t.Run("empty board", func(t *testing.T) {
		b := NewBoard()
		require.False(t, HasWinningPath(b, SideA))
		require.False(t, HasWinningPath(b, SideB))
		require.False(t, HasWinningPath(b, NoSide))
	})

	t.Run("single bridge away from the edges", func(t *testing.T) {
		b := NewBoard()
		place(t, b, SideA, Position{1, 1}, Position{3, 2})
		require.NoError(t, CanPlaceBridge(b, Position{1, 1}, Position{3, 2}))
		bridge(t, b, Position{1, 1}, Position{3, 2})

		require.False(t, HasWinningPath(b, SideA))
	})

	t.Run("chain from row 0 to row 17", func(t *testing.T) {
		b := NewBoard()
		buildChain(t, b, SideA, chainA, 0)

		require.True(t, HasWinningPath(b, SideA))
		require.False(t, HasWinningPath(b, SideB), "Side B owns nothing")
	})

	t.Run("chain with a missing link", func(t *testing.T) {
		b := NewBoard()
		buildChain(t, b, SideA, chainA, 1)

		require.False(t, HasWinningPath(b, SideA), "Pegs on both edges are not enough without bridges")
	})

	t.Run("chain from column 0 to column 17", func(t *testing.T) {
		b := NewBoard()
		chainB := transpose(chainA)
		buildChain(t, b, SideB, chainB, 0)

		require.True(t, HasWinningPath(b, SideB))
		require.False(t, HasWinningPath(b, SideA))
	})

	t.Run("side A chain across columns does not count", func(t *testing.T) {
		// side A owning a left to right chain (only possible by editing the board directly)
		b := NewBoard()
		buildChain(t, b, SideA, transpose(chainA), 0)

		require.False(t, HasWinningPath(b, SideA))
	})

	t.Run("path must start on the start edge", func(t *testing.T) {
		b := NewBoard()
		buildChain(t, b, SideA, chainA[1:], 0)

		require.False(t, HasWinningPath(b, SideA))
	})
}
