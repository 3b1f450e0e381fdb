package game

import "math/rand"

const (
	StandardWidth  = 8
	StandardHeight = 8
)

// minOneFishFields guarantees both sides can finish the placement phase:
// eight one-fish fields cover 2 teams x 4 penguins.
const minOneFishFields = 2 * PenguinsPerTeam

// GenerateBoard builds a random starting board: no holes, one to four fish
// per field, and at least enough one-fish fields for all eight placements.
func GenerateBoard(rng *rand.Rand) *Board {
	fields := make([][]Field, StandardHeight)
	oneFish := 0
	for y := range fields {
		fields[y] = make([]Field, StandardWidth)
		for x := range fields[y] {
			fish := rng.Intn(4) + 1
			if fish == 1 {
				oneFish++
			}
			fields[y][x] = Field{Fish: fish}
		}
	}

	// Force extra one-fish fields if the draw came up short
	for oneFish < minOneFishFields {
		x, y := rng.Intn(StandardWidth), rng.Intn(StandardHeight)
		if fields[y][x].Fish != 1 {
			fields[y][x] = Field{Fish: 1}
			oneFish++
		}
	}

	return NewBoard(fields)
}

// NewStandardState starts a fresh game on a generated board. The real
// starting state arrives from the game server's handshake; this stands in
// for local play and tests.
func NewStandardState(rng *rand.Rand) *GameState {
	first := &Team{Name: TeamOne}
	second := &Team{Name: TeamTwo}
	return NewGameState(GenerateBoard(rng), 0, first, second, nil)
}
