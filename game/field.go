package game

// Penguin is a game piece owned by exactly one team.
type Penguin struct {
	Team       TeamEnum
	Coordinate HexCoordinate
}

// Field is a single ice floe of the board. Fish is the harvestable amount
// left on it; a field with no fish and no penguin is a hole and cannot be
// entered or crossed.
type Field struct {
	Fish    int
	Penguin *Penguin
}

func (f Field) IsOccupied() bool {
	return f.Penguin != nil
}
