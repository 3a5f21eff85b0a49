package mcts

import (
	"math"
	"time"

	"twenty48nogo/internal/boardnogo"

	"golang.org/x/exp/rand"
)

// Perspective selects whose turn backpropagation credits a win against
// (§9 "Open question — RAVE backprop perspective").
type Perspective string

const (
	// PerspectiveRoot credits every node on the path against the turn to
	// move at the tree's root, exactly as selected when the playout
	// started. This is the default: it reproduces the original agent's
	// behavior, bug and all, where a single root-relative judge is reused
	// for the whole path regardless of which node actually made the move.
	PerspectiveRoot Perspective = "root"
	// PerspectiveNode credits each node against the side that actually
	// played its move (its parent's turn to move).
	PerspectiveNode Perspective = "node"
)

// Tree drives one root-to-leaf MCTS playout loop over a NoGo position
// (§4.B2), grounded on node::MCTS in
// original_source/hollow_nogo_MCTS/agent.h.
type Tree struct {
	Root        *Node
	Rave        *Tables
	rng         *rand.Rand
	perspective Perspective
	metrics     Metrics
}

// NewTree builds a tree rooted at state.
func NewTree(state *boardnogo.Board, seed uint64, perspective Perspective) *Tree {
	if perspective == "" {
		perspective = PerspectiveRoot
	}
	return &Tree{
		Root:        NewNode(state.Copy(), -1),
		Rave:        NewTables(),
		rng:         rand.New(rand.NewSource(seed)),
		perspective: perspective,
	}
}

// Run performs n select/expand/simulate/backpropagate iterations and
// returns the root's best move, or -1 if the root has no legal move.
func (t *Tree) Run(n int) int {
	t.metrics = Metrics{StartTime: time.Now(), Iterations: n}
	for i := 0; i < n; i++ {
		t.iterate()
	}
	t.metrics.Duration = time.Since(t.metrics.StartTime)
	return t.SelectAction()
}

func (t *Tree) iterate() {
	path := t.selectPath()
	leaf := path[len(path)-1]
	expanded := t.expand(leaf)
	if expanded != leaf {
		path = append(path, expanded)
		t.metrics.Expansions++
	}
	winner := t.simulate(path[len(path)-1])
	t.backpropagate(path, winner)
}

// selectPath walks from the root to a leaf, at each step choosing the
// child with the highest UCB (own perspective) or UCB-opponent (the
// other side's perspective), depending on whether the side to move at
// the current node matches the side to move at the root (§4.B2).
func (t *Tree) selectPath() []*Node {
	rootTurn := t.Root.Turn()
	path := []*Node{t.Root}
	curr := t.Root
	for !curr.IsLeaf() {
		if len(curr.Children) == 0 {
			break
		}
		var best *Node
		bestScore := -math.MaxFloat64
		for _, c := range curr.Children {
			var score float64
			if curr.Turn() == rootTurn {
				score = t.Rave.UCB(c)
			} else {
				score = t.Rave.UCBOpponent(c)
			}
			if score > bestScore {
				bestScore = score
				best = c
			}
		}
		path = append(path, best)
		curr = best
	}
	return path
}

// expand adds one child to leaf at a legal, not-yet-expanded position
// chosen in random order, or returns leaf unchanged if none remains.
func (t *Tree) expand(leaf *Node) *Node {
	existing := make(map[int]bool, len(leaf.Children))
	for _, c := range leaf.Children {
		existing[c.PlacePos] = true
	}

	for _, pos := range t.shuffledPositions() {
		if existing[pos] {
			continue
		}
		candidate := leaf.board.Copy()
		if candidate.Place(pos) == boardnogo.Legal {
			child := NewNode(candidate, pos)
			child.Parent = leaf
			leaf.Children = append(leaf.Children, child)
			return child
		}
	}
	return leaf
}

// simulate plays out random legal moves from n's position, repeatedly
// sweeping the remaining positions until a full sweep places nothing,
// and returns the winner: whichever side is NOT stuck without a move
// (§4.B2, §6 — NoGo: the side unable to move loses).
func (t *Tree) simulate(n *Node) boardnogo.Piece {
	b := n.board.Copy()
	remaining := t.shuffledPositions()
	for {
		progressed := false
		next := remaining[:0]
		for _, pos := range remaining {
			if b.Get(pos) != boardnogo.Empty {
				continue
			}
			if b.Place(pos) == boardnogo.Legal {
				progressed = true
			} else {
				next = append(next, pos)
			}
		}
		remaining = next
		if !progressed {
			break
		}
	}
	return boardnogo.Opponent(b.Turn())
}

// backpropagate credits every node on path with a visit, and with a win
// when the playout's winner matches the judge side for that node. The
// judge is either the root's turn to move throughout (PerspectiveRoot)
// or the side that actually played each node's move (PerspectiveNode).
// The root itself has no placement (PlacePos -1) and is excluded from
// the RAVE tables, though its TotalCnt still feeds its children's UCB.
// The root has no parent, so it is judged against its own turn to move
// under either perspective.
func (t *Tree) backpropagate(path []*Node, winner boardnogo.Piece) {
	rootTurn := t.Root.Turn()
	for _, node := range path {
		judge := rootTurn
		if t.perspective == PerspectiveNode && node.Parent != nil {
			judge = node.Parent.Turn()
		}
		won := winner == judge

		node.TotalCnt++
		if won {
			node.WinCnt++
		}
		if node.PlacePos < 0 {
			continue
		}
		t.Rave.Total[node.PlacePos]++
		if won {
			t.Rave.Win[node.PlacePos]++
		}
	}
}

// SelectAction returns the root's move with the highest blended win rate
// (not UCB), ties broken toward whichever child was seen first, or -1 if
// the root has no children (§4.B2, §7 "No legal move at root").
func (t *Tree) SelectAction() int {
	if len(t.Root.Children) == 0 {
		return -1
	}
	bestScore := -math.MaxFloat64
	bestPos := -1
	for _, c := range t.Root.Children {
		score := t.Rave.WinRate(c)
		if score > bestScore {
			bestScore = score
			bestPos = c.PlacePos
		}
	}
	return bestPos
}

func (t *Tree) shuffledPositions() []int {
	positions := make([]int, boardnogo.Cells)
	for i := range positions {
		positions[i] = i
	}
	t.rng.Shuffle(len(positions), func(i, j int) {
		positions[i], positions[j] = positions[j], positions[i]
	})
	return positions
}
