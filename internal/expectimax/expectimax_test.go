package expectimax

import (
	"testing"

	"github.com/stretchr/testify/require"
	"twenty48nogo/internal/board2048"
	"twenty48nogo/internal/value"
)

func TestExpectationNoEmptyCellsIsZero(t *testing.T) {
	w := value.NewWeights()
	b := board2048.New()
	for i := 0; i < board2048.Size; i++ {
		b.Place(i, 1)
	}

	got := Expectation(w, b)

	require.Zero(t, got)
}

func TestExpectationSingleEmptyCell(t *testing.T) {
	// One empty cell at pos 0; weights zero so estimate_value is 0
	// everywhere and each placement's value is its best slide reward.
	w := value.NewWeights()
	b := board2048.New()
	// Row 0 holds [_, 2, 2, 3] (log2 values); rows 1-3 hold only 1s, so
	// whichever tile lands at pos 0 some slide merges and earns a reward.
	b.Place(1, 2)
	b.Place(2, 2)
	b.Place(3, 3)
	for i := 4; i < board2048.Size; i++ {
		b.Place(i, 1)
	}
	got := Expectation(w, b)

	require.Greater(t, got, 0.0)
}

func TestSelectActionNoLegalMoveReturnsNoAction(t *testing.T) {
	p := &Player{Weights: value.NewWeights()}
	b := board2048.New()
	// Fill with a strictly alternating, unmergeable, unmovable pattern.
	pattern := []board2048.Cell{1, 2, 1, 2, 2, 1, 2, 1, 1, 2, 1, 2, 2, 1, 2, 1}
	for i, v := range pattern {
		b.Place(i, v)
	}

	action := p.SelectAction(b)

	require.False(t, action.Valid)
	require.Equal(t, NoAction, action)
}

func TestSelectActionPicksLegalDirection(t *testing.T) {
	p := &Player{Weights: value.NewWeights()}
	b := board2048.New()
	b.Place(0, 1)
	b.Place(1, 1)

	action := p.SelectAction(b)

	require.True(t, action.Valid)
	require.Equal(t, 4, action.Reward)
}
