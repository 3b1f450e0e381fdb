package searcher

import (
	"math"
	"sync"

	"penguins/game"
)

// decision is one decision point of the search tree. Every move in this game
// is deterministic, so the tree consists of decision nodes only. A node's
// rewards are stored from the perspective of the side whose move led to it,
// which is the side selecting among the node and its siblings.
type decision struct {
	sync.RWMutex
	parent   *decision
	player   string // side to move at this node, "" on a terminal node
	chooser  string // side whose move led here; rewards count for it
	moves    []game.Move
	children []*decision // children[i] reached by moves[i]
	rewards  float64
	visits   int
}

func newDecision(parent *decision, state game.State) *decision {
	chooser := state.Player()
	if parent != nil {
		chooser = parent.player
	}
	moves := state.LegalMoves()

	return &decision{
		parent:   parent,
		player:   state.Player(),
		chooser:  chooser,
		moves:    moves,
		children: make([]*decision, 0, len(moves)),
	}
}

// SelectOrExpand walks one step down the tree: expand the next unexplored
// move, or select the max UCB child. The chosen child takes a virtual loss so
// concurrent simulations spread over the tree instead of piling onto one
// line. added reports whether a new child was created.
func (d *decision) SelectOrExpand(state game.State) (child *decision, childState game.State, added bool) {
	d.Lock()
	defer d.Unlock()

	if len(d.moves) == 0 { // Terminal node
		return d, state, false
	}

	if len(d.children) < len(d.moves) { // Expandable node
		child, childState := d.addChild(state)
		child.applyLoss()
		return child, childState, true
	}

	// Fully expanded node
	ith := d.pickChild()
	child = d.children[ith]
	child.applyLoss()
	return child, state.Play(d.moves[ith]), false
}

func (d *decision) addChild(state game.State) (*decision, game.State) {
	move := d.moves[len(d.children)]
	childState := state.Play(move)
	child := newDecision(d, childState)
	d.children = append(d.children, child)
	return child, childState
}

func (d *decision) pickChild() int {
	if d.visits == 0 {
		panic("node has children but no visits")
	}

	normalizer := CSquared * math.Log(float64(d.visits))

	maxIndex := -1
	maxScore := math.Inf(-1)
	for i, child := range d.children {
		score := child.score(normalizer)
		if score == math.Inf(1) {
			return i
		}
		if score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

func (d *decision) applyLoss() {
	d.Lock()
	defer d.Unlock()

	d.rewards += Loss
	d.visits++
}

func (d *decision) score(normalizer float64) float64 {
	d.RLock()
	defer d.RUnlock()

	return ucb1(d.rewards, d.visits, normalizer)
}

// Backup folds one simulation result into the node and returns its parent.
// The score arrives from scorer's perspective; an empty scorer is a drawn
// playout and rewards neither side.
func (d *decision) Backup(scorer string, score float64) *decision {
	d.Lock()
	defer d.Unlock()

	if d.parent != nil { // Non-root node
		d.reverseLoss()
	}

	if scorer != "" {
		if d.chooser == scorer {
			d.rewards += score
		} else {
			d.rewards -= score
		}
	}
	d.visits++

	return d.parent
}

func (d *decision) reverseLoss() {
	d.rewards -= Loss
	d.visits--
}

func (d *decision) Visits() int {
	d.RLock()
	defer d.RUnlock()

	return d.visits
}

// findBestMove returns the most visited root move.
func (d *decision) findBestMove() game.Move {
	d.RLock()
	defer d.RUnlock()

	if len(d.children) == 0 {
		panic("node has no children")
	}

	bestIndex := 0
	maxVisits := d.children[0].Visits()
	for i, child := range d.children[1:] {
		if v := child.Visits(); v > maxVisits {
			maxVisits = v
			bestIndex = i + 1
		}
	}
	return d.moves[bestIndex]
}
