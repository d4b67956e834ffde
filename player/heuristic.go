package player

import (
	"twixt/game"

	"golang.org/x/exp/rand"
)

const (
	seedTurns   = 2 // turns spent on the start and end edges
	randomTurns = 5 // last turn placed at random
	noise       = 5 // perturbation is uniform in [0, noise)
)

func heuristicCell(board *game.Board, side game.Side, st *State) (game.Position, bool) {
	switch {
	case st.Turns == 1:
		if p, ok := edgeCell(board, side, side.StartEdge, st.rng); ok {
			return p, true
		}
	case st.Turns == seedTurns:
		if p, ok := edgeCell(board, side, side.EndEdge, st.rng); ok {
			return p, true
		}
	case st.Turns > randomTurns:
		if p, ok := bestCell(board, side, st.rng); ok {
			return p, true
		}
	}
	return randomCell(board, side, st.rng)
}

// edgeCell picks a random empty cell on an edge, avoiding the corners.
func edgeCell(board *game.Board, side game.Side, edge func(int) game.Position, rng *rand.Rand) (game.Position, bool) {
	var free []int
	for i := 1; i < game.NumPegs-1; i++ {
		if game.ValidatePlacement(board, side, edge(i)) == nil {
			free = append(free, i)
		}
	}
	if len(free) == 0 {
		return game.Position{}, false
	}
	for {
		p := edge(1 + rng.Intn(game.NumPegs-2))
		if game.ValidatePlacement(board, side, p) == nil {
			return p, true
		}
	}
}

// scoreCells counts, for every legal cell, the side's pegs a knight's move away.
// Illegal cells score -1.
func scoreCells(board *game.Board, side game.Side) [game.NumPegs][game.NumPegs]int {
	var scores [game.NumPegs][game.NumPegs]int
	for i := 0; i < game.NumPegs; i++ {
		for j := 0; j < game.NumPegs; j++ {
			p := game.Position{Row: i, Col: j}
			if game.ValidatePlacement(board, side, p) != nil {
				scores[i][j] = -1
				continue
			}
			for _, n := range game.KnightNeighbours(p) {
				if board.Owner(n) == side {
					scores[i][j]++
				}
			}
		}
	}
	return scores
}

func perturb(scores *[game.NumPegs][game.NumPegs]int, rng *rand.Rand) {
	for i := range scores {
		for j := range scores[i] {
			if scores[i][j] > 0 {
				scores[i][j] += rng.Intn(noise)
			}
		}
	}
}

// pickBest returns the first highest positive score in row-major order.
func pickBest(scores *[game.NumPegs][game.NumPegs]int) (game.Position, bool) {
	best, found := game.Position{}, false
	top := 0
	for i := range scores {
		for j := range scores[i] {
			if scores[i][j] > top {
				top = scores[i][j]
				best, found = game.Position{Row: i, Col: j}, true
			}
		}
	}
	return best, found
}

// bestCell places next to as many own pegs as possible. Scores are taken fresh
// from the board and occupied cells score -1, so the pick is always empty.
// Without any positive score it reports false and the caller falls back to a
// random cell.
func bestCell(board *game.Board, side game.Side, rng *rand.Rand) (game.Position, bool) {
	scores := scoreCells(board, side)
	perturb(&scores, rng)
	return pickBest(&scores)
}
