package value

import (
	"twenty48nogo/internal/board2048"

	"gonum.org/v1/gonum/floats"
)

// EstimateValue sums weight-table entries over eight isomorphic views of
// after (§4.A2): four rotations, then a horizontal reflection, then four
// more rotations — 32 table lookups total. The result is invariant under
// every element of the dihedral group D4 (§8 property 3).
func EstimateValue(w *Weights, after *board2048.Board) float64 {
	lookups := make([]float64, 0, 8*len(Tuples))

	b := after.Copy()
	appendOrientation := func() {
		for t, tuple := range Tuples {
			idx := ExtractFeature6(b, tuple)
			lookups = append(lookups, float64(w.Tables[t][idx]))
		}
	}

	for i := 0; i < 4; i++ {
		appendOrientation()
		b.RotateRight()
	}
	b.ReflectHorizontal()
	for i := 0; i < 4; i++ {
		appendOrientation()
		b.RotateRight()
	}

	return floats.Sum(lookups)
}
