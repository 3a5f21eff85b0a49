// Package mcts implements the NoGo search tree: UCB selection blended with
// RAVE, single-playout expansion, random rollout, and backpropagation
// (§2 Core B, §4.B). Grounded on the node class in
// original_source/hollow_nogo_MCTS/agent.h, restructured into one type per
// concern (Node, RAVE tables, Tree driver) the way the teacher splits
// decision/chance nodes across files.
package mcts

import "twenty48nogo/internal/boardnogo"

// Node is one position in the search tree. PlacePos is the move that led
// to this node from its parent; the root's PlacePos is -1.
type Node struct {
	board      *boardnogo.Board
	PlacePos   int
	WinCnt     int
	TotalCnt   int
	Parent     *Node
	Children   []*Node
	legalMoves []int // cached at construction time (§9 "is_leaf cost")
}

// NewNode builds a node from state, caching its legal moves once so
// repeated leaf checks don't rescan the board (§9).
func NewNode(state *boardnogo.Board, placePos int) *Node {
	return &Node{
		board:      state,
		PlacePos:   placePos,
		legalMoves: state.LegalMoves(),
	}
}

// Turn returns the side to move at this node.
func (n *Node) Turn() boardnogo.Piece {
	return n.board.Turn()
}

// IsLeaf reports whether n is not yet fully expanded: it has legal moves
// that have no corresponding child. A node with no legal moves at all
// (terminal) also counts as a leaf.
func (n *Node) IsLeaf() bool {
	return !(len(n.legalMoves) > 0 && len(n.Children) == len(n.legalMoves))
}
