package core

import "fmt"

// Point is an integer (x, y) pair. On the board X is the column and Y the row,
// with row 0 at the bottom of the visible window.
type Point struct {
	X, Y int
}

// NewPoint creates a new point with the given x and y values
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns a new point that is the sum of this point and another
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns a new point that is the difference between this point and another
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Equal checks if two points are equal
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// String returns a string representation of the point
func (p Point) String() string {
	return fmt.Sprintf("Point(%d, %d)", p.X, p.Y)
}

// Orientation is the direction a pattern faces before it is applied to the board.
// Patterns are declared facing Up (towards increasing row index).
type Orientation int

const (
	Up Orientation = iota
	Right
	Down
	Left
)

func (o Orientation) String() string {
	switch o {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Rotate turns an Up-facing offset so that it faces o.
func Rotate(p Point, o Orientation) Point {
	switch o {
	case Right:
		return Point{X: p.Y, Y: -p.X}
	case Down:
		return Point{X: -p.X, Y: -p.Y}
	case Left:
		return Point{X: -p.Y, Y: p.X}
	default:
		return p
	}
}

// RotatePattern returns a rotated copy of pattern, preserving declaration order.
func RotatePattern(pattern []Point, o Orientation) []Point {
	rotated := make([]Point, len(pattern))
	for i, p := range pattern {
		rotated[i] = Rotate(p, o)
	}
	return rotated
}
