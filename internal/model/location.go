package model

import "fmt"

// Point — координата ячейки инвентарной сетки.
// (0,0) is the top-left cell; X grows right, Y grows down.
type Point struct {
	X int
	Y int
}

// Offset is a position relative to a pattern anchor.
type Offset struct {
	DX int
	DY int
}

// Add returns the absolute cell reached by moving from p by o.
func (p Point) Add(o Offset) Point {
	return Point{X: p.X + o.DX, Y: p.Y + o.DY}
}

// In reports whether p lies inside a width×height grid.
func (p Point) In(width, height int) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < width && p.Y < height
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func (o Offset) String() string {
	return fmt.Sprintf("%+d%+d", o.DX, o.DY)
}
