package game

// Board is a fixed width x height grid of fields, indexed by cartesian
// coordinates. Boards are immutable: Move returns a fresh Board and leaves
// the receiver untouched, so any number of states may share one board.
type Board struct {
	fields [][]Field // fields[y][x]
}

// NewBoard builds a board from a rectangular field grid, indexed [y][x].
func NewBoard(fields [][]Field) *Board {
	return &Board{fields: fields}
}

func (b *Board) Width() int {
	if len(b.fields) == 0 {
		return 0
	}
	return len(b.fields[0])
}

func (b *Board) Height() int {
	return len(b.fields)
}

// Contains reports whether the coordinate addresses a field on the board.
// Hex coordinates with the wrong row parity address no field at all.
func (b *Board) Contains(h HexCoordinate) bool {
	c := h.ToCartesian()
	if c.X < 0 || c.X >= b.Width() || c.Y < 0 || c.Y >= b.Height() {
		return false
	}
	return c.ToHex() == h
}

// GetField returns the field at the given coordinate.
func (b *Board) GetField(h HexCoordinate) Field {
	c := h.ToCartesian()
	return b.fields[c.Y][c.X]
}

// TeamsPenguins returns the given team's penguins currently on the board.
func (b *Board) TeamsPenguins(team TeamEnum) []Penguin {
	var penguins []Penguin
	for y := range b.fields {
		for x := range b.fields[y] {
			if p := b.fields[y][x].Penguin; p != nil && p.Team == team {
				penguins = append(penguins, *p)
			}
		}
	}
	return penguins
}

// PossibleSlidesFrom enumerates every slide the given team could make from
// origin: straight rays in the six hex directions, cut off before the first
// field that is off the board, occupied, or out of fish.
func (b *Board) PossibleSlidesFrom(origin HexCoordinate, team TeamEnum) []Move {
	var moves []Move
	for _, dir := range Directions {
		for dest := origin.Add(dir); b.Contains(dest); dest = dest.Add(dir) {
			field := b.GetField(dest)
			if field.IsOccupied() || field.Fish == 0 {
				break
			}
			moves = append(moves, Slide{Team: team, From: origin, To: dest})
		}
	}
	return moves
}

// Move applies the move and returns the resulting board. The destination is
// harvested to zero fish and occupied by the moving penguin; a slide's source
// field is vacated, leaving a hole behind. The receiver is not modified.
func (b *Board) Move(m Move) *Board {
	fields := make([][]Field, len(b.fields))
	for y, row := range b.fields {
		fields[y] = make([]Field, len(row))
		copy(fields[y], row)
		for x := range fields[y] {
			if p := row[x].Penguin; p != nil {
				penguin := *p
				fields[y][x].Penguin = &penguin
			}
		}
	}

	if slide, ok := m.(Slide); ok {
		from := slide.From.ToCartesian()
		fields[from.Y][from.X].Penguin = nil
	}
	to := m.Dest().ToCartesian()
	fields[to.Y][to.X].Fish = 0
	fields[to.Y][to.X].Penguin = &Penguin{Team: m.Actor(), Coordinate: m.Dest()}

	return &Board{fields: fields}
}
