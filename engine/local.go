package engine

import (
	"github.com/rs/zerolog/log"

	"penguins/game"
	"penguins/meta"
)

// Agent picks a move for the side to play in the given state.
type Agent interface {
	FindMove(state game.State) game.Move
}

// Engine drives a local game between two agents until neither side has a
// legal move left.
type Engine struct {
	State  *game.GameState
	Agents map[game.TeamEnum]Agent
}

func LocalEngine(state *game.GameState, first, second Agent) *Engine {
	if first == nil || second == nil {
		panic("need an agent for each team")
	}
	return &Engine{
		State: state,
		Agents: map[game.TeamEnum]Agent{
			game.TeamOne: first,
			game.TeamTwo: second,
		},
	}
}

// Run executes the game loop until the terminal state and returns the name of
// the winning team, "" on a tie.
func (e *Engine) Run() string {
	log.Info().Msgf("starting game on a %dx%d board", e.State.Board.Width(), e.State.Board.Height())

	for e.State.Turn < meta.MAX_TURNS {
		current := e.State.CurrentTeam()
		if current == nil { // Neither side can move: game over
			break
		}

		move := e.Agents[current.Name].FindMove(e.State)
		next, err := e.State.PerformMove(move)
		if err != nil {
			log.Error().Err(err).Msgf("agent for team %v proposed an invalid move", current.Name)
			panic(err)
		}

		log.Info().
			Int("turn", e.State.Turn).
			Int("round", e.State.Round()).
			Str("team", current.Name.String()).
			Msgf("played %v", move)

		e.State = next
	}

	winner := e.State.Winner()
	log.Info().
		Int("turns", e.State.Turn).
		Int("first", e.State.FirstTeam.Fish).
		Int("second", e.State.SecondTeam.Fish).
		Msgf("game over, winner: %q", winner)
	return winner
}
