package game

// Side is the logical colour that owns a peg. In 3 and 4 player games two seats
// share a side.
type Side int

const (
	NoSide Side = iota
	SideA       // home rows 0 and 17, connects top to bottom
	SideB       // home columns 0 and 17, connects left to right
)

func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	default:
		return "none"
	}
}

// SideOf returns the side played by the given seat. Even seats play A, odd seats play B.
func SideOf(player int) Side {
	if player%2 == 0 {
		return SideA
	}
	return SideB
}

// Opponent returns the other side, NoSide for NoSide.
func (s Side) Opponent() Side {
	switch s {
	case SideA:
		return SideB
	case SideB:
		return SideA
	default:
		return NoSide
	}
}

// OnHomeLine reports whether p lies on one of the side's two home lines.
func (s Side) OnHomeLine(p Position) bool {
	switch s {
	case SideA:
		return p.Row == 0 || p.Row == NumPegs-1
	case SideB:
		return p.Col == 0 || p.Col == NumPegs-1
	default:
		return false
	}
}

// StartEdge returns the i-th cell of the edge a winning path starts from.
func (s Side) StartEdge(i int) Position {
	if s == SideB {
		return Position{Row: i, Col: 0}
	}
	return Position{Row: 0, Col: i}
}

// EndEdge returns the i-th cell of the edge a winning path must reach.
func (s Side) EndEdge(i int) Position {
	if s == SideB {
		return Position{Row: i, Col: NumPegs - 1}
	}
	return Position{Row: NumPegs - 1, Col: i}
}

func (s Side) onEndEdge(p Position) bool {
	switch s {
	case SideA:
		return p.Row == NumPegs-1
	case SideB:
		return p.Col == NumPegs-1
	default:
		return false
	}
}
