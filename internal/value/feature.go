// Package value implements the n-tuple network value function for 2048
// (§4.A1, §4.A2): feature index extraction, weight table storage and I/O,
// and the dihedral-symmetric value estimator.
package value

import "twenty48nogo/internal/board2048"

// Tuple is a fixed 6-tuple of cell indices addressed into the board.
type Tuple [6]int

// Tuples is the network's four fixed 6-cell tuples (§3).
var Tuples = [4]Tuple{
	{0, 1, 2, 3, 4, 5},
	{4, 5, 6, 7, 8, 9},
	{0, 1, 2, 4, 5, 6},
	{4, 5, 6, 8, 9, 10},
}

// TableSize is 16^6, the address space of a single weight table.
const TableSize = 16 * 16 * 16 * 16 * 16 * 16

// ExtractFeature6 returns the base-16 packed index
// v_a*16^5 + v_b*16^4 + v_c*16^3 + v_d*16^2 + v_e*16 + v_f
// for the six cell values read off tuple t (§4.A1, S1, property 4).
func ExtractFeature6(b *board2048.Board, t Tuple) int {
	index := 0
	for _, pos := range t {
		index = index*16 + b.Get(pos)
	}
	return index
}
