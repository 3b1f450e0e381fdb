package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// movementState builds a state where both sides have all penguins set and can
// only slide. Layout (4x4, fish 2 everywhere unless noted):
//
//	ONE at the corners, TWO on the inner top and bottom fields.
func movementState() *GameState {
	b := boardFromFish([][]int{
		{2, 2, 2, 2},
		{2, 2, 3, 2},
		{2, 2, 2, 2},
		{2, 2, 2, 2},
	})
	first := &Team{Name: TeamOne}
	second := &Team{Name: TeamTwo}
	for _, c := range []CartesianCoordinate{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 3}, {X: 3, Y: 3}} {
		first.Penguins = append(first.Penguins, putPenguin(b, TeamOne, c))
	}
	for _, c := range []CartesianCoordinate{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 3}, {X: 2, Y: 3}} {
		second.Penguins = append(second.Penguins, putPenguin(b, TeamTwo, c))
	}
	return NewGameState(b, 0, first, second, nil)
}

func TestRound(t *testing.T) {
	gs := movementState()
	for turn, round := range map[int]int{0: 0, 1: 1, 2: 1, 3: 2, 4: 2, 5: 3, 6: 3, 7: 4} {
		gs.Turn = turn
		require.Equal(t, round, gs.Round(), "turn %d", turn)
	}
}

func TestPossibleMovesPlacement(t *testing.T) {
	// ONE has two penguins set, so it is still placing. Unoccupied one-fish
	// fields: (0,0) and (3,3). The one-fish field (3,0) is occupied and the
	// hole at (2,0) and the richer fields must not show up.
	b := boardFromFish([][]int{
		{1, 2, 0, 1},
		{3, 2, 2, 2},
		{2, 2, 2, 2},
		{2, 2, 2, 1},
	})
	first := &Team{Name: TeamOne}
	first.Penguins = append(first.Penguins, putPenguin(b, TeamOne, CartesianCoordinate{X: 1, Y: 2}))
	first.Penguins = append(first.Penguins, putPenguin(b, TeamOne, CartesianCoordinate{X: 2, Y: 2}))
	second := &Team{Name: TeamTwo}
	b.fields[0][3].Penguin = &Penguin{Team: TeamTwo, Coordinate: CartesianCoordinate{X: 3, Y: 0}.ToHex()}
	second.Penguins = append(second.Penguins, *b.fields[0][3].Penguin)
	gs := NewGameState(b, 0, first, second, nil)

	moves := gs.PossibleMoves()

	dests := map[HexCoordinate]bool{}
	for _, m := range moves {
		require.IsType(t, Place{}, m, "placement-phase moves have no source")
		require.Equal(t, TeamOne, m.Actor())
		field := b.GetField(m.Dest())
		require.Equal(t, 1, field.Fish)
		require.False(t, field.IsOccupied())
		dests[m.Dest()] = true
	}
	want := map[HexCoordinate]bool{
		CartesianCoordinate{X: 0, Y: 0}.ToHex(): true,
		CartesianCoordinate{X: 3, Y: 3}.ToHex(): true,
	}
	require.Equal(t, want, dests)
}

func TestPerformMovePlacement(t *testing.T) {
	b := boardFromFish([][]int{
		{1, 2},
		{2, 2},
	})
	gs := NewGameState(b, 0, &Team{Name: TeamOne}, &Team{Name: TeamTwo}, nil)
	dest := CartesianCoordinate{X: 0, Y: 0}.ToHex()
	move := Place{Team: TeamOne, To: dest}

	next, err := gs.PerformMove(move)
	require.NoError(t, err)

	require.Equal(t, 1, next.Turn)
	require.Equal(t, move, next.LastMove)
	require.Equal(t, 1, next.FirstTeam.Fish, "placement credits the harvested fish")
	require.Equal(t, []Penguin{{Team: TeamOne, Coordinate: dest}}, next.FirstTeam.Penguins)
	require.Equal(t, []Move{move}, next.FirstTeam.Moves)
	require.Equal(t, 0, next.Board.GetField(dest).Fish)
	require.True(t, next.Board.GetField(dest).IsOccupied())

	// The predecessor snapshot is untouched
	require.Equal(t, 0, gs.Turn)
	require.Nil(t, gs.LastMove)
	require.Empty(t, gs.FirstTeam.Penguins)
	require.Equal(t, 1, gs.Board.GetField(dest).Fish)
}

func TestPerformMoveSlide(t *testing.T) {
	gs := movementState()
	from := CartesianCoordinate{X: 3, Y: 0}.ToHex()
	dest := CartesianCoordinate{X: 2, Y: 1}.ToHex() // the 3 fish field, down-left of (3,0)
	move := Slide{Team: TeamOne, From: from, To: dest}
	require.True(t, gs.IsValidMove(move))

	next, err := gs.PerformMove(move)
	require.NoError(t, err)

	require.Equal(t, gs.Turn+1, next.Turn)
	require.Equal(t, move, next.LastMove)
	require.Equal(t, 3, next.FirstTeam.Fish, "slide credits the destination's fish from the old board")
	require.Equal(t, 0, next.Board.GetField(dest).Fish)

	// The old coordinate is vacated and exactly one penguin sits on the
	// destination in the mover's copy
	require.False(t, next.Board.GetField(from).IsOccupied())
	atDest := 0
	for _, p := range next.FirstTeam.Penguins {
		require.NotEqual(t, from, p.Coordinate)
		if p.Coordinate == dest {
			atDest++
		}
	}
	require.Equal(t, 1, atDest)
	require.Len(t, next.FirstTeam.Penguins, PenguinsPerTeam)

	// The predecessor snapshot is untouched
	require.True(t, gs.Board.GetField(from).IsOccupied())
	require.Equal(t, 3, gs.Board.GetField(dest).Fish)
	require.Equal(t, 0, gs.FirstTeam.Fish)
}

func TestPerformMoveInvalid(t *testing.T) {
	t.Run("wrong actor", func(t *testing.T) {
		gs := movementState()
		pristine := movementState()
		// A move that is perfectly legal for TWO, proposed on ONE's turn
		move := gs.possibleMovesFor(gs.SecondTeam)[0]

		next, err := gs.PerformMove(move)

		require.ErrorIs(t, err, ErrInvalidMove)
		require.Nil(t, next)
		require.Equal(t, pristine, gs, "a rejected move must leave no trace")
	})

	t.Run("destination not reachable", func(t *testing.T) {
		gs := movementState()
		pristine := movementState()
		hash := gs.Hash()
		move := Slide{
			Team: TeamOne,
			From: CartesianCoordinate{X: 0, Y: 0}.ToHex(),
			To:   CartesianCoordinate{X: 3, Y: 2}.ToHex(),
		}

		_, err := gs.PerformMove(move)

		require.ErrorIs(t, err, ErrInvalidMove)
		require.Equal(t, pristine, gs)
		require.Equal(t, hash, gs.Hash())
	})

	t.Run("placement during movement phase", func(t *testing.T) {
		gs := movementState()
		move := Place{Team: TeamOne, To: CartesianCoordinate{X: 1, Y: 1}.ToHex()}

		_, err := gs.PerformMove(move)

		require.ErrorIs(t, err, ErrInvalidMove)
	})
}

func TestTerminalState(t *testing.T) {
	// No one-fish fields and no penguins: neither side has a legal move at
	// any turn number. That is the terminal condition, not an error.
	b := boardFromFish([][]int{
		{2, 2},
		{2, 2},
	})
	first := &Team{Name: TeamOne, Fish: 5}
	second := &Team{Name: TeamTwo, Fish: 3}
	gs := NewGameState(b, 6, first, second, nil)

	require.Nil(t, gs.CurrentTeam())
	require.Empty(t, gs.PossibleMoves())
	require.Nil(t, gs.Opponent(nil))
	require.Equal(t, "", gs.Player())
	require.Equal(t, "ONE", gs.Winner())
}

func TestCurrentTeamSkipsBlockedSide(t *testing.T) {
	// ONE is in the movement phase with every penguin iced in; TWO is still
	// placing and has a one-fish field available. ONE forfeits its turns.
	b := boardFromFish([][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 0},
	})
	first := &Team{Name: TeamOne}
	for _, c := range []CartesianCoordinate{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 3}, {X: 3, Y: 3}} {
		first.Penguins = append(first.Penguins, putPenguin(b, TeamOne, c))
	}
	second := &Team{Name: TeamTwo}
	second.Penguins = append(second.Penguins, putPenguin(b, TeamTwo, CartesianCoordinate{X: 1, Y: 1}))
	gs := NewGameState(b, 0, first, second, nil)

	require.Empty(t, gs.possibleMovesFor(first))
	require.NotEmpty(t, gs.possibleMovesFor(second))

	require.Same(t, second, gs.CurrentTeamFromTurn(0), "even turn falls through to TWO")
	require.Same(t, second, gs.CurrentTeamFromTurn(1))
	require.Same(t, second, gs.CurrentTeam())
}

func TestOpponentLinks(t *testing.T) {
	gs := movementState()

	require.Same(t, gs.SecondTeam, gs.Opponent(gs.FirstTeam))
	require.Same(t, gs.FirstTeam, gs.Opponent(gs.SecondTeam))
	require.Same(t, gs.SecondTeam, gs.OtherTeam(), "ONE to move, so TWO is the other team")

	next, err := gs.PerformMove(gs.PossibleMoves()[0])
	require.NoError(t, err)

	// The new generation's teams are fresh copies linked to each other, never
	// back into the old generation
	require.NotSame(t, gs.FirstTeam, next.FirstTeam)
	require.NotSame(t, gs.SecondTeam, next.SecondTeam)
	require.Same(t, next.SecondTeam, next.FirstTeam.Opponent)
	require.Same(t, next.FirstTeam, next.SecondTeam.Opponent)
	require.Same(t, gs.SecondTeam, gs.FirstTeam.Opponent, "old links stay inside the old generation")
}

// TestRandomPlayoutInvariants drives a full random game and checks the
// transition bookkeeping at every step: turn increment, last move, fish
// conservation, move shape, and immutability of the predecessor.
func TestRandomPlayoutInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	gs := NewStandardState(rng)

	for turns := 0; ; turns++ {
		require.Less(t, turns, 500, "game must terminate")

		current := gs.CurrentTeam()
		moves := gs.PossibleMoves()
		if current == nil {
			require.Empty(t, moves)
			break
		}
		require.NotEmpty(t, moves)

		move := moves[rng.Intn(len(moves))]
		placed := len(gs.Board.TeamsPenguins(current.Name))
		switch m := move.(type) {
		case Place:
			require.Less(t, placed, PenguinsPerTeam)
		case Slide:
			require.Equal(t, PenguinsPerTeam, placed)
			onPenguin := false
			for _, p := range gs.Board.TeamsPenguins(current.Name) {
				onPenguin = onPenguin || p.Coordinate == m.From
			}
			require.True(t, onPenguin, "slide source must be one of the mover's penguins")
		}

		oldHash := gs.Hash()
		oldFish := gs.Board.GetField(move.Dest()).Fish
		oldScore := current.Fish

		next, err := gs.PerformMove(move)
		require.NoError(t, err)

		require.Equal(t, gs.Turn+1, next.Turn)
		require.Equal(t, move, next.LastMove)
		require.Equal(t, oldHash, gs.Hash(), "the receiver must not change")

		mover := next.FirstTeam
		if current.Name == TeamTwo {
			mover = next.SecondTeam
		}
		require.Equal(t, oldFish, mover.Fish-oldScore, "score delta equals the harvested fish")
		require.Equal(t, 0, next.Board.GetField(move.Dest()).Fish)
		require.True(t, next.Board.GetField(move.Dest()).IsOccupied())

		gs = next
	}

	require.Equal(t, "", gs.Player())
}
