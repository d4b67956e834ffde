package game

// Screen geometry of the board: the centre of cell (row, col) sits at
// origin + (col*Spacing, row*Spacing).
const (
	OriginX = 30
	OriginY = 30
	Spacing = 40
)

// Segments are shrunk by 8% around their midpoint before intersecting so that
// bridges meeting at a shared peg never register as crossing. Coordinates are
// scaled by shrinkScale to keep the arithmetic exact: shrinkMargin/shrinkScale
// is trimmed from each end.
const (
	shrinkScale  = 50
	shrinkMargin = 2
)

type Point struct {
	X int
	Y int
}

func Center(p Position) Point {
	return Point{X: OriginX + p.Col*Spacing, Y: OriginY + p.Row*Spacing}
}

func (p Point) sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func cross(p, q Point) int {
	return p.X*q.Y - p.Y*q.X
}

func shrink(a, b Point) (Point, Point) {
	dx, dy := b.X-a.X, b.Y-a.Y
	return Point{X: a.X*shrinkScale + shrinkMargin*dx, Y: a.Y*shrinkScale + shrinkMargin*dy},
		Point{X: b.X*shrinkScale - shrinkMargin*dx, Y: b.Y*shrinkScale - shrinkMargin*dy}
}

// SegmentsCross reports whether the bridge p1-p2 properly crosses the bridge p3-p4.
// It solves p1 + α(p2−p1) = p3 + β(p4−p3) on the shrunk segments and requires both
// α and β strictly inside (0, 1). Zero length and parallel segments never cross.
func SegmentsCross(p1, p2, p3, p4 Position) bool {
	a1, a2 := Center(p1), Center(p2)
	b1, b2 := Center(p3), Center(p4)
	if a1 == a2 || b1 == b2 {
		return false
	}
	a1, a2 = shrink(a1, a2)
	b1, b2 = shrink(b1, b2)

	d1 := a2.sub(a1)
	d2 := b2.sub(b1)
	c := b1.sub(a1)

	denominator := cross(d1, d2)
	if denominator == 0 {
		return false
	}
	alpha := cross(c, d2)
	beta := cross(c, d1)
	return strictlyWithin(alpha, denominator) && strictlyWithin(beta, denominator)
}

// strictlyWithin reports 0 < numerator/denominator < 1 without dividing.
func strictlyWithin(numerator, denominator int) bool {
	if denominator > 0 {
		return numerator > 0 && numerator < denominator
	}
	return numerator < 0 && numerator > denominator
}
