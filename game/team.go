package game

// TeamEnum identifies one of the two sides.
type TeamEnum int

const (
	TeamOne TeamEnum = iota
	TeamTwo
)

// PenguinsPerTeam is the number of penguins each side sets during the
// placement phase.
const PenguinsPerTeam = 4

func (t TeamEnum) String() string {
	if t == TeamOne {
		return "ONE"
	}
	return "TWO"
}

// Team is the per-side aggregate: identity, penguins, harvested fish, move
// history, and the opponent link. The opponent pointer is only valid within
// a single GameState generation; PerformMove relinks the pair after cloning.
type Team struct {
	Name     TeamEnum
	Fish     int
	Penguins []Penguin
	Moves    []Move
	Opponent *Team
}

// Copy returns a deep copy of the team, decoupled from the receiver. The
// opponent link is left nil on purpose: the caller relinks the new pair so it
// never points into an old generation.
func (t *Team) Copy() *Team {
	penguinsCopy := make([]Penguin, len(t.Penguins))
	copy(penguinsCopy, t.Penguins)

	movesCopy := make([]Move, len(t.Moves))
	copy(movesCopy, t.Moves)

	return &Team{
		Name:     t.Name,
		Fish:     t.Fish,
		Penguins: penguinsCopy,
		Moves:    movesCopy,
	}
}
