package game

import (
	"fmt"

	"twixt/utils"
)

// NumPegs is the number of pegs in a row of the board; the board is always square.
const NumPegs = 18

type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// InBounds reports whether p lies on the 18x18 grid.
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < NumPegs && p.Col >= 0 && p.Col < NumPegs
}

// IsCorner reports whether p is one of the four cells no side may occupy.
func (p Position) IsCorner() bool {
	return (p.Row == 0 || p.Row == NumPegs-1) && (p.Col == 0 || p.Col == NumPegs-1)
}

// Peg is one grid cell. An empty cell is a peg owned by NoSide.
type Peg struct {
	Position    Position
	Owner       Side
	Permanent   bool       // locked in by a bridge or a turn boundary
	Highlighted bool       // legal second bridge endpoint while connecting
	Bridges     []Position // pegs this peg is bridged to, recorded on both ends
}

func (p Peg) IsEmpty() bool {
	return p.Owner == NoSide
}

// Bridge is an undirected connection, listed once with A before B in row-major order.
type Bridge struct {
	A Position
	B Position
}

// Board holds the 18x18 grid of pegs. The zero value is an uninitialized board;
// Reset initializes it.
type Board struct {
	pegs        [NumPegs][NumPegs]Peg
	initialized bool
}

// NewBoard returns an initialized board of empty pegs.
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Initialized reports whether Reset has run at least once.
func (b *Board) Initialized() bool {
	return b.initialized
}

// Reset reinitializes every cell to an empty, non-permanent, unhighlighted peg.
func (b *Board) Reset() {
	for i := range b.pegs {
		for j := range b.pegs[i] {
			b.pegs[i][j] = Peg{Position: Position{Row: i, Col: j}, Owner: NoSide}
		}
	}
	b.initialized = true
}

// at returns the live peg; callers validate bounds first.
func (b *Board) at(p Position) *Peg {
	if !p.InBounds() {
		panic(fmt.Sprintf("position %v outside the board", p))
	}
	return &b.pegs[p.Row][p.Col]
}

// Get returns a copy of the peg at (row, col).
func (b *Board) Get(row, col int) (Peg, error) {
	p := Position{Row: row, Col: col}
	if !p.InBounds() {
		return Peg{}, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	return copyPeg(b.pegs[row][col]), nil
}

// Owner returns the owner of the cell, NoSide when empty or off the board.
func (b *Board) Owner(p Position) Side {
	if !p.InBounds() {
		return NoSide
	}
	return b.pegs[p.Row][p.Col].Owner
}

// SetOwner assigns an empty cell to a side, or clears a cell with NoSide. Only
// pegs that are not permanent can be cleared, and by construction they have no
// bridges. An owned cell is never handed to another side.
func (b *Board) SetOwner(p Position, owner Side) error {
	if !p.InBounds() {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	if p.IsCorner() && owner != NoSide {
		return fmt.Errorf("%w: %v", ErrCornerCell, p)
	}
	peg := b.at(p)
	if owner != NoSide && !peg.IsEmpty() {
		return fmt.Errorf("%w: %v is owned by %v", ErrCellOccupied, p, peg.Owner)
	}
	if owner == NoSide {
		if peg.Permanent {
			return fmt.Errorf("%w: cannot clear %v", ErrPegLocked, p)
		}
		peg.Highlighted = false
	}
	peg.Owner = owner
	return nil
}

func (b *Board) MarkPermanent(p Position) error {
	if !p.InBounds() {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	peg := b.at(p)
	if peg.IsEmpty() {
		return fmt.Errorf("%w: %v", ErrEmptyCell, p)
	}
	peg.Permanent = true
	return nil
}

// MarkAllPermanent locks in every occupied peg.
func (b *Board) MarkAllPermanent() {
	for i := range b.pegs {
		for j := range b.pegs[i] {
			if !b.pegs[i][j].IsEmpty() {
				b.pegs[i][j].Permanent = true
			}
		}
	}
}

// AddBridge records a bridge on both endpoints. It does not check legality beyond
// distinct, occupied endpoints; see CanPlaceBridge.
func (b *Board) AddBridge(from, to Position) error {
	if !from.InBounds() || !to.InBounds() {
		return fmt.Errorf("%w: %v-%v", ErrOutOfBounds, from, to)
	}
	if from == to {
		return fmt.Errorf("%w: %v bridged to itself", ErrInvalidBridge, from)
	}
	a, c := b.at(from), b.at(to)
	if a.IsEmpty() || c.IsEmpty() {
		return fmt.Errorf("%w: %v-%v has an empty endpoint", ErrInvalidBridge, from, to)
	}
	if utils.FindIndex(a.Bridges, to) < 0 {
		a.Bridges = append(a.Bridges, to)
	}
	if utils.FindIndex(c.Bridges, from) < 0 {
		c.Bridges = append(c.Bridges, from)
	}
	return nil
}

func (b *Board) HasBridge(from, to Position) bool {
	if !from.InBounds() || !to.InBounds() {
		return false
	}
	return utils.FindIndex(b.pegs[from.Row][from.Col].Bridges, to) >= 0
}

// Bridges lists every bridge on the board once.
func (b *Board) Bridges() []Bridge {
	var bridges []Bridge
	for i := range b.pegs {
		for j := range b.pegs[i] {
			from := b.pegs[i][j].Position
			for _, to := range b.pegs[i][j].Bridges {
				if before(from, to) {
					bridges = append(bridges, Bridge{A: from, B: to})
				}
			}
		}
	}
	return bridges
}

func before(a, b Position) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}

func (b *Board) SetHighlighted(p Position, highlighted bool) {
	b.at(p).Highlighted = highlighted
}

func (b *Board) ClearHighlights() {
	for i := range b.pegs {
		for j := range b.pegs[i] {
			b.pegs[i][j].Highlighted = false
		}
	}
}

// Pegs returns copies of every peg owned by side in row-major order.
func (b *Board) Pegs(side Side) []Peg {
	var pegs []Peg
	for i := range b.pegs {
		for j := range b.pegs[i] {
			if b.pegs[i][j].Owner == side {
				pegs = append(pegs, copyPeg(b.pegs[i][j]))
			}
		}
	}
	return pegs
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{initialized: b.initialized}
	for i := range b.pegs {
		for j := range b.pegs[i] {
			c.pegs[i][j] = copyPeg(b.pegs[i][j])
		}
	}
	return c
}

// Grid is a read-only copy of every peg, indexed [row][col].
type Grid [NumPegs][NumPegs]Peg

func (b *Board) Snapshot() Grid {
	var s Grid
	for i := range b.pegs {
		for j := range b.pegs[i] {
			s[i][j] = copyPeg(b.pegs[i][j])
		}
	}
	return s
}

func copyPeg(p Peg) Peg {
	if p.Bridges != nil {
		bridges := make([]Position, len(p.Bridges))
		copy(bridges, p.Bridges)
		p.Bridges = bridges
	}
	return p
}
