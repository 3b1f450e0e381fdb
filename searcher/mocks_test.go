package searcher

import "penguins/game"

type mockMove struct {
	id int
}

func (m mockMove) Actor() game.TeamEnum {
	return game.TeamOne
}

func (m mockMove) Dest() game.HexCoordinate {
	return game.HexCoordinate{X: m.id, Y: 0}
}

type mockState struct {
	player string
	moves  []game.Move
	played []game.Move
	winner string
}

func (m mockState) Player() string {
	return m.player
}

func (m mockState) LegalMoves() []game.Move {
	return m.moves
}

func (m mockState) Play(move game.Move) game.State {
	played := make([]game.Move, len(m.played), len(m.played)+1)
	copy(played, m.played)
	return mockState{player: m.player, played: append(played, move), winner: m.winner}
}

func (m mockState) Hash() game.StateHash {
	return 0
}

func (m mockState) Winner() string {
	return m.winner
}
