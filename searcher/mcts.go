package searcher

import (
	"sync"
	"time"

	"golang.org/x/exp/rand"

	"penguins/game"
)

// MaxCutoff effectively disables the rollout cutoff: playouts run to the end
// of the game.
const MaxCutoff = 1 << 30

type Option func(m *MCTS)

// MCTS runs parallel UCT searches over game states. Simulations share one
// tree guarded by per-node locks; virtual losses keep the goroutines from
// exploring the same line at once.
type MCTS struct {
	goroutines int
	episodes   int
	duration   time.Duration
	cutoff     int
	evaluate   game.Evaluate
}

func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithCutoff(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *MCTS) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func NewMCTS(goroutines int, options ...Option) *MCTS {
	m := &MCTS{ // Default values
		goroutines: goroutines,
		cutoff:     MaxCutoff,
		evaluate:   game.EvaluateFish,
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

// FindMove searches from state and returns the most visited root move, nil
// when the state is terminal.
func (m *MCTS) FindMove(state game.State) game.Move {
	root := newDecision(nil, state)
	if len(root.moves) == 0 {
		return nil
	}

	if m.episodes > 0 {
		m.iterate(root, state)
	} else {
		m.countdown(root, state)
	}

	return root.findBestMove()
}

func (m *MCTS) iterate(root *decision, state game.State) {
	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for range task {
				m.simulate(root, state)
			}
		}()
	}
	wg.Wait()
}

func (m *MCTS) countdown(root *decision, state game.State) {
	done := make(chan any)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for {
				select {
				case <-done:
					return
				default:
					m.simulate(root, state)
				}
			}
		}()
	}

	<-time.After(m.duration)
	close(done)
	wg.Wait()
}

func (m *MCTS) simulate(root *decision, state game.State) {
	node, nodeState := selectThenExpand(root, state)
	scorer, score := rollout(nodeState, m.cutoff, m.evaluate)
	backup(node, scorer, score)
}

func selectThenExpand(root *decision, state game.State) (*decision, game.State) {
	parent := root
	child, state, added := parent.SelectOrExpand(state)
	for child != parent && !added {
		parent = child
		child, state, added = parent.SelectOrExpand(state)
	}
	return child, state
}

// rollout plays uniformly random moves until the game is over or the cutoff
// depth is reached, then scores the reached state.
func rollout(state game.State, cutoff int, evaluate game.Evaluate) (string, float64) {
	depth := 0
	moves := state.LegalMoves()
	for len(moves) > 0 && depth < cutoff {
		move := moves[rand.Intn(len(moves))] // Random rollout policy
		state = state.Play(move)
		moves = state.LegalMoves()
		depth++
	}

	if len(moves) == 0 { // Game over before cutoff
		return state.Winner(), Win
	}

	// At the cutoff, score the state from the current player's perspective
	return state.Player(), evaluate(state)
}

func backup(node *decision, scorer string, score float64) {
	for node != nil {
		node = node.Backup(scorer, score)
	}
}
