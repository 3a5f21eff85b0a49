package value

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	w := NewWeights()
	w.Tables[0][0] = 1.5
	w.Tables[3][TableSize-1] = -2.25

	var buf bytes.Buffer
	require.NoError(t, SaveWeightsToWriter(w, &buf))

	got, err := LoadWeightsFromReader(&buf)
	require.NoError(t, err)
	require.Len(t, got.Tables, 4)
	require.Equal(t, float32(1.5), got.Tables[0][0])
	require.Equal(t, float32(-2.25), got.Tables[3][TableSize-1])
}

func TestLoadWeightsMissingFileIsError(t *testing.T) {
	_, err := LoadWeights("/nonexistent/path/to/weights.bin")
	require.Error(t, err)
}
