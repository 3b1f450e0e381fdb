package game

import "fmt"

// Move is either a Place (set a new penguin during the placement phase) or a
// Slide (move a placed penguin along a straight line). Two concrete types
// give exhaustive type switches at validation and execution sites instead of
// nil checks on a source coordinate.
type Move interface {
	Actor() TeamEnum
	Dest() HexCoordinate
}

// Place sets a new penguin on an unoccupied one-fish field.
type Place struct {
	Team TeamEnum
	To   HexCoordinate
}

func (p Place) Actor() TeamEnum { return p.Team }

func (p Place) Dest() HexCoordinate { return p.To }

func (p Place) String() string {
	return fmt.Sprintf("%v places at (%d,%d)", p.Team, p.To.X, p.To.Y)
}

// Slide moves one of the team's penguins from From to To.
type Slide struct {
	Team TeamEnum
	From HexCoordinate
	To   HexCoordinate
}

func (s Slide) Actor() TeamEnum { return s.Team }

func (s Slide) Dest() HexCoordinate { return s.To }

func (s Slide) String() string {
	return fmt.Sprintf("%v slides (%d,%d) to (%d,%d)", s.Team, s.From.X, s.From.Y, s.To.X, s.To.Y)
}
