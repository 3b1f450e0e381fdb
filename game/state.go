package game

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"

	"penguins/utils"
)

// ErrInvalidMove reports a move outside the legal move set of the side whose
// turn it is, or one declared for the wrong side. PerformMove fails fast: no
// partial effects ever reach the receiver.
var ErrInvalidMove = errors.New("invalid move")

// GameState is a full snapshot of the game between two moves: the board, both
// team aggregates, the consecutive turn number, and the move that produced
// it. Snapshots are immutable; PerformMove returns a new one and every
// predecessor stays valid, so search trees can expand a shared ancestor from
// multiple goroutines.
type GameState struct {
	Board      *Board
	Turn       int
	FirstTeam  *Team
	SecondTeam *Team
	LastMove   Move
}

// NewGameState assembles a snapshot from externally supplied parts and links
// the two teams as opponents.
func NewGameState(board *Board, turn int, first, second *Team, lastMove Move) *GameState {
	first.Opponent = second
	second.Opponent = first
	return &GameState{
		Board:      board,
		Turn:       turn,
		FirstTeam:  first,
		SecondTeam: second,
		LastMove:   lastMove,
	}
}

// Round pairs up turns: both sides moving once is one round.
func (gs *GameState) Round() int {
	return (gs.Turn + 1) / 2
}

// CurrentTeam resolves whose turn it is. A side with no legal move forfeits
// the turn without a pass being recorded; nil means neither side can move and
// the game is over.
func (gs *GameState) CurrentTeam() *Team {
	return gs.CurrentTeamFromTurn(gs.Turn)
}

// CurrentTeamFromTurn resolves the team to move for the given turn number
// against this state's move availability. Even turns prefer the first team,
// odd turns the second; the turn falls to the other side when the preferred
// one has no legal move, and to nobody when neither has one.
func (gs *GameState) CurrentTeamFromTurn(turn int) *Team {
	firstCanMove := len(gs.possibleMovesFor(gs.FirstTeam)) > 0
	secondCanMove := len(gs.possibleMovesFor(gs.SecondTeam)) > 0

	if turn%2 == 0 {
		if firstCanMove {
			return gs.FirstTeam
		}
		if secondCanMove {
			return gs.SecondTeam
		}
		return nil
	}
	if secondCanMove {
		return gs.SecondTeam
	}
	if firstCanMove {
		return gs.FirstTeam
	}
	return nil
}

// OtherTeam returns the opponent of the team to move.
func (gs *GameState) OtherTeam() *Team {
	return gs.Opponent(nil)
}

// Opponent returns the given team's opponent within this snapshot. A nil team
// defaults to the current team, so the result is nil on a terminal state
// unless a team is passed explicitly.
func (gs *GameState) Opponent(team *Team) *Team {
	if team == nil {
		team = gs.CurrentTeam()
	}
	if team == nil {
		return nil
	}
	return team.Opponent
}

// PossibleMoves returns every legal move for the team whose turn it is. The
// empty result on a terminal state is not an error: it is the terminal
// condition itself.
func (gs *GameState) PossibleMoves() []Move {
	return gs.possibleMovesFor(gs.CurrentTeam())
}

// possibleMovesFor enumerates the legal moves for one side. While the board
// holds fewer than four of the side's penguins it may place a new one on any
// unoccupied one-fish field; afterwards it may slide any of its penguins.
func (gs *GameState) possibleMovesFor(team *Team) []Move {
	if team == nil {
		return nil
	}

	penguins := gs.Board.TeamsPenguins(team.Name)
	if len(penguins) < PenguinsPerTeam {
		var moves []Move
		for x := 0; x < gs.Board.Width(); x++ {
			for y := 0; y < gs.Board.Height(); y++ {
				coordinate := CartesianCoordinate{X: x, Y: y}.ToHex()
				field := gs.Board.GetField(coordinate)
				if !field.IsOccupied() && field.Fish == 1 {
					moves = append(moves, Place{Team: team.Name, To: coordinate})
				}
			}
		}
		return moves
	}

	var moves []Move
	for _, penguin := range penguins {
		moves = append(moves, gs.Board.PossibleSlidesFrom(penguin.Coordinate, team.Name)...)
	}
	return moves
}

// IsValidMove reports whether the move is in the current team's legal move
// set and declared for that team.
func (gs *GameState) IsValidMove(move Move) bool {
	current := gs.CurrentTeam()
	if current == nil || move == nil || move.Actor() != current.Name {
		return false
	}
	return utils.FindIndex(gs.PossibleMoves(), move) >= 0
}

// PerformMove applies the move and returns the resulting snapshot. The
// receiver is never modified: the board transition is pure and both teams are
// deep copied before the mover's copy is updated, so the new snapshot shares
// nothing mutable with this one.
func (gs *GameState) PerformMove(move Move) (*GameState, error) {
	if !gs.IsValidMove(move) {
		return nil, fmt.Errorf("%w: %v on turn %d", ErrInvalidMove, move, gs.Turn)
	}

	// The credit comes from the destination field before it is harvested.
	harvest := gs.Board.GetField(move.Dest()).Fish
	board := gs.Board.Move(move)

	first := gs.FirstTeam.Copy()
	second := gs.SecondTeam.Copy()
	mover := first
	if gs.CurrentTeam().Name == TeamTwo {
		mover = second
	}
	updateTeam(mover, move, harvest)

	// Copying drops the opponent links; restore them inside the new generation.
	first.Opponent = second
	second.Opponent = first

	return &GameState{
		Board:      board,
		Turn:       gs.Turn + 1,
		FirstTeam:  first,
		SecondTeam: second,
		LastMove:   move,
	}, nil
}

// updateTeam applies the move's bookkeeping to the mover's fresh copy: append
// the move to the history, relocate the slid penguin or set the placed one,
// and credit the harvested fish.
func updateTeam(team *Team, move Move, harvest int) {
	team.Moves = append(team.Moves, move)
	switch m := move.(type) {
	case Slide:
		if i := utils.FindIndexFunc(team.Penguins, func(p Penguin) bool {
			return p.Coordinate == m.From
		}); i >= 0 {
			team.Penguins[i].Coordinate = m.To
		}
	case Place:
		team.Penguins = append(team.Penguins, Penguin{Team: m.Team, Coordinate: m.To})
	}
	team.Fish += harvest
}

// Player returns the identifier of the team to move, "" on a terminal state.
func (gs *GameState) Player() string {
	current := gs.CurrentTeam()
	if current == nil {
		return ""
	}
	return current.Name.String()
}

// LegalMoves implements State for the searcher.
func (gs *GameState) LegalMoves() []Move {
	return gs.PossibleMoves()
}

// Play applies the move, panicking on an invalid one. Search code only plays
// moves drawn from LegalMoves, so a failure here is a contract violation by
// the caller.
func (gs *GameState) Play(move Move) State {
	next, err := gs.PerformMove(move)
	if err != nil {
		panic(err)
	}
	return next
}

// Winner returns the name of the team with more fish once the game is over,
// "" while it is still running or on a tie.
func (gs *GameState) Winner() string {
	if gs.CurrentTeam() != nil {
		return ""
	}
	if gs.FirstTeam.Fish > gs.SecondTeam.Fish {
		return gs.FirstTeam.Name.String()
	}
	if gs.SecondTeam.Fish > gs.FirstTeam.Fish {
		return gs.SecondTeam.Name.String()
	}
	return ""
}

func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.Turn))

	// Hash field contents
	for y := 0; y < gs.Board.Height(); y++ {
		for x := 0; x < gs.Board.Width(); x++ {
			field := gs.Board.GetField(CartesianCoordinate{X: x, Y: y}.ToHex())
			binary.Write(hasher, binary.LittleEndian, int64(field.Fish))
			occupant := int64(-1)
			if field.Penguin != nil {
				occupant = int64(field.Penguin.Team)
			}
			binary.Write(hasher, binary.LittleEndian, occupant)
		}
	}

	// Hash scores
	binary.Write(hasher, binary.LittleEndian, int64(gs.FirstTeam.Fish))
	binary.Write(hasher, binary.LittleEndian, int64(gs.SecondTeam.Fish))

	return StateHash(hasher.Sum64())
}

func (gs *GameState) String() string {
	return fmt.Sprintf("GameState(turn=%d round=%d first=%d fish second=%d fish last=%v)",
		gs.Turn, gs.Round(), gs.FirstTeam.Fish, gs.SecondTeam.Fish, gs.LastMove)
}
