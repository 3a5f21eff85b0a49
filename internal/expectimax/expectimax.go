// Package expectimax implements the one-ply expectimax search and player
// action selection for the 2048 n-tuple network evaluator (§4.A3, §4.A4).
package expectimax

import (
	"math"

	"twenty48nogo/internal/board2048"
	"twenty48nogo/internal/value"
)

// probTwo and probFour are the 90%/10% 2-tile/4-tile chance distribution
// (§4.A3, §9 "Tile placement probability").
const (
	probTwo  = 0.9
	probFour = 0.1
)

// Expectation returns the expected value of placing a random tile on after
// and then playing optimally for one ply (§4.A3). after must already be
// post-slide. Returns 0 if after has no empty cell (terminal; caller
// handles).
func Expectation(w *value.Weights, after *board2048.Board) float64 {
	empties := after.EmptyPositions()
	if len(empties) == 0 {
		return 0
	}

	total := 0.0
	for _, pos := range empties {
		vTwo := bestAfterPlacing(w, after, pos, 1)
		vFour := bestAfterPlacing(w, after, pos, 2)
		total += (probTwo*vTwo + probFour*vFour) / float64(len(empties))
	}
	return total
}

// bestAfterPlacing places tile at pos on a copy of after, then returns the
// best reward+estimate over the four slide directions, or -Inf if no slide
// is legal.
func bestAfterPlacing(w *value.Weights, after *board2048.Board, pos int, tile board2048.Cell) float64 {
	placed := after.Copy()
	placed.Place(pos, tile)

	best := math.Inf(-1)
	for d := board2048.Direction(0); d < 4; d++ {
		candidate := placed.Copy()
		reward := candidate.Slide(d)
		if reward == -1 {
			continue
		}
		v := float64(reward) + value.EstimateValue(w, candidate)
		if v > best {
			best = v
		}
	}
	return best
}
