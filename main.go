package main

import (
	"fmt"
	"math/rand"
	"time"

	"penguins/engine"
	"penguins/game"
	"penguins/meta"
	"penguins/searcher"
)

type config struct {
	goroutines int
	episodes   int
	duration   time.Duration
	cutoff     int
}

func main() {
	numGames := 10
	cfg1 := config{goroutines: meta.GO_ROUTINES, episodes: meta.EPISODES}
	cfg2 := config{goroutines: meta.GO_ROUTINES, episodes: meta.EPISODES, cutoff: meta.WITH_CUTOFF}

	fmt.Printf("Agent %+v vs Agent %+v:\n", cfg1, cfg2)
	wins := map[string]int{}
	for i := 0; i < numGames; i++ {
		fmt.Printf("Game %d started...\n", i+1)
		winner := runGame(int64(i), cfg1, cfg2)
		if winner == "" {
			fmt.Printf("Game %d over! Tie\n", i+1)
		} else {
			fmt.Printf("Game %d over! Winner: %s\n", i+1, winner)
		}
		wins[winner]++
	}
	fmt.Printf("Results after %d games: %v\n", numGames, wins)
}

// runGame executes a single game between two agents and returns the winner
func runGame(seed int64, cfg1, cfg2 config) string {
	state := game.NewStandardState(rand.New(rand.NewSource(seed)))
	eng := engine.LocalEngine(state, newAgent(cfg1), newAgent(cfg2))
	return eng.Run()
}

func newAgent(cfg config) *searcher.MCTS {
	var options []searcher.Option
	if cfg.episodes > 0 {
		options = append(options, searcher.WithEpisodes(cfg.episodes))
	}
	if cfg.duration > 0 {
		options = append(options, searcher.WithDuration(cfg.duration))
	}
	if cfg.cutoff > 0 {
		options = append(options, searcher.WithCutoff(cfg.cutoff))
	}
	return searcher.NewMCTS(cfg.goroutines, options...)
}
