package game

// HasWinningPath reports whether side has a chain of bridges from its start edge
// to its opposite edge. Just BFS over the bridges recorded on the board.
func HasWinningPath(b *Board, side Side) bool {
	if side == NoSide {
		return false
	}
	var visited [NumPegs][NumPegs]bool
	queue := []Position{}

	for i := 0; i < NumPegs; i++ {
		start := side.StartEdge(i)
		if b.Owner(start) == side {
			visited[start.Row][start.Col] = true
			queue = append(queue, start)
		}
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if side.onEndEdge(current) {
			return true
		}
		for _, next := range b.pegs[current.Row][current.Col].Bridges {
			if visited[next.Row][next.Col] || b.Owner(next) != side {
				continue
			}
			visited[next.Row][next.Col] = true
			queue = append(queue, next)
		}
	}
	return false
}
