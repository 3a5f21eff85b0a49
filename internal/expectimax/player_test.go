package expectimax

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"twenty48nogo/internal/board2048"
	"twenty48nogo/internal/properties"
)

func TestNewPlayerInitAllocatesZeroTables(t *testing.T) {
	p := NewPlayer(properties.Parse("init=true"))

	require.NotNil(t, p.Weights)
	require.Zero(t, p.Weights.Tables[0][0])
}

func TestNewPlayerLoadRoundTrip(t *testing.T) {
	seed := NewPlayer(properties.Parse("init=true"))
	seed.Weights.Tables[0][0] = 3.5
	path := filepath.Join(t.TempDir(), "weights.bin")
	require.NoError(t, seed.Save(path))

	loaded := NewPlayer(properties.Parse("load=" + path))

	require.Equal(t, float32(3.5), loaded.Weights.Tables[0][0])
}

func TestTrainMutatesWeights(t *testing.T) {
	p := NewPlayer(properties.Parse("init=true"))
	b := board2048.New()
	b.Place(0, 1)

	p.Train(b, 32.0)

	require.NotZero(t, p.Weights.Tables[0][0])
}

func TestRandomPlayerPicksALegalDirection(t *testing.T) {
	p := NewRandomPlayer(1)
	b := board2048.New()
	b.Place(0, 1)
	b.Place(1, 1)

	action := p.SelectAction(b)

	require.True(t, action.Valid)
}

func TestRandomPlayerNoLegalMoveReturnsNoAction(t *testing.T) {
	p := NewRandomPlayer(1)
	b := board2048.New()
	pattern := []board2048.Cell{1, 2, 1, 2, 2, 1, 2, 1, 1, 2, 1, 2, 2, 1, 2, 1}
	for i, v := range pattern {
		b.Place(i, v)
	}

	action := p.SelectAction(b)

	require.False(t, action.Valid)
}

