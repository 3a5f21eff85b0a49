package boardnogo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlaceOnEmptyIsLegalAndFlipsTurn(t *testing.T) {
	b := New()

	result := b.Place(40)

	require.Equal(t, Legal, result)
	require.Equal(t, Black, b.Get(40))
	require.Equal(t, White, b.Turn())
}

func TestPlaceOccupiedCellFails(t *testing.T) {
	b := New()
	b.Place(40)

	result := b.Place(40)

	require.Equal(t, OccupiedCell, result)
}

func TestSuicideIsIllegal(t *testing.T) {
	b := New()
	// Surround a single empty point at 0 with white stones, then black
	// tries to play into it with no liberties and no capture available.
	b.cells[1] = White
	b.cells[SizeX] = White
	b.turn = Black

	result := b.Place(0)

	require.Equal(t, Suicide, result)
}

func TestCaptureIsIllegal(t *testing.T) {
	b := New()
	// White stone at pos 1 with a single liberty at pos 0; black fills it.
	b.cells[1] = White
	b.cells[2] = Black
	b.cells[1+SizeX] = Black
	b.turn = Black

	result := b.Place(0)

	require.Equal(t, Capture, result)
}

func TestLegalMovesOnEmptyBoardCoversAllCells(t *testing.T) {
	b := New()

	moves := b.LegalMoves()

	require.Len(t, moves, Cells)
}
