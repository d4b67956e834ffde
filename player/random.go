package player

import (
	"twixt/game"

	"golang.org/x/exp/rand"
)

// randomCell samples interior cells uniformly until it finds an empty one. Home
// lines of both sides are never sampled.
func randomCell(board *game.Board, side game.Side, rng *rand.Rand) (game.Position, bool) {
	if !hasEmptyInterior(board) {
		return game.Position{}, false
	}
	for {
		p := game.Position{
			Row: 1 + rng.Intn(game.NumPegs-2),
			Col: 1 + rng.Intn(game.NumPegs-2),
		}
		if game.ValidatePlacement(board, side, p) == nil {
			return p, true
		}
	}
}

func hasEmptyInterior(board *game.Board) bool {
	for i := 1; i < game.NumPegs-1; i++ {
		for j := 1; j < game.NumPegs-1; j++ {
			if board.Owner(game.Position{Row: i, Col: j}) == game.NoSide {
				return true
			}
		}
	}
	return false
}
