package game

// Cells are addressed in two systems: cartesian (x, y) indices into the field
// grid, and the "doubled" hex representation the slide vectors operate on.
// A hex x is twice the cartesian x, shifted right by one on odd rows; y is
// shared. Both conversions are total and lossless.

type CartesianCoordinate struct {
	X int
	Y int
}

type HexCoordinate struct {
	X int
	Y int
}

func (c CartesianCoordinate) ToHex() HexCoordinate {
	if c.Y%2 == 1 {
		return HexCoordinate{X: c.X*2 + 1, Y: c.Y}
	}
	return HexCoordinate{X: c.X * 2, Y: c.Y}
}

func (h HexCoordinate) ToCartesian() CartesianCoordinate {
	if h.Y%2 == 1 {
		return CartesianCoordinate{X: (h.X - 1) / 2, Y: h.Y}
	}
	return CartesianCoordinate{X: h.X / 2, Y: h.Y}
}

// Vector is an offset in doubled hex space.
type Vector struct {
	DX int
	DY int
}

func (h HexCoordinate) Add(v Vector) HexCoordinate {
	return HexCoordinate{X: h.X + v.DX, Y: h.Y + v.DY}
}

// The six slide directions of the hex grid, in doubled coordinates.
var Directions = []Vector{
	{DX: -2, DY: 0},  // left
	{DX: 2, DY: 0},   // right
	{DX: -1, DY: -1}, // up left
	{DX: 1, DY: -1},  // up right
	{DX: -1, DY: 1},  // down left
	{DX: 1, DY: 1},   // down right
}
