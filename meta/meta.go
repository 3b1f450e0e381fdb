// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines to use.
const GO_ROUTINES = 8

// EPISODES defines the number of episodes for MCTS.
const EPISODES = 150

// WITH_CUTOFF defines the cutoff value for MCTS rollouts.
const WITH_CUTOFF = 40

// MAX_TURNS caps the engine loop as a safety net; a full game on the
// standard board ends well before this.
const MAX_TURNS = 300
