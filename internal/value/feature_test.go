package value

import (
	"testing"

	"github.com/stretchr/testify/require"
	"twenty48nogo/internal/board2048"
)

func TestExtractFeature6(t *testing.T) {
	// S1 — Board with cell values [3,1,0,2,5,7,...] (rest zero).
	b := board2048.New()
	values := []int{3, 1, 0, 2, 5, 7}
	for i, v := range values {
		b.Place(i, v)
	}

	idx := ExtractFeature6(b, Tuple{0, 1, 2, 3, 4, 5})

	// 3*16^5 + 1*16^4 + 0*16^3 + 2*16^2 + 5*16 + 7
	// = 3145728 + 65536 + 0 + 512 + 80 + 7
	require.Equal(t, 3_211_863, idx)
}

func TestExtractFeature6AllZero(t *testing.T) {
	b := board2048.New()
	idx := ExtractFeature6(b, Tuples[0])
	require.Equal(t, 0, idx)
}
