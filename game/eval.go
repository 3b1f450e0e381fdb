package game

// EvaluateFish tallies each side's harvested fish to produce a relative score
// between -1 and 1 from the current player's perspective.
func EvaluateFish(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}

	current := gs.CurrentTeam()
	if current == nil {
		current = gs.FirstTeam
	}
	return normalize(float64(current.Fish), float64(current.Opponent.Fish))
}

// normalize converts two values into a single score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	// [a/(a+b)-0.5]*2 = (a-b)/(a+b)
	return (value - otherValue) / total
}
