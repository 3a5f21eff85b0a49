package nogo

import (
	"testing"

	"github.com/stretchr/testify/require"
	"twenty48nogo/internal/boardnogo"
	"twenty48nogo/internal/properties"
)

func TestNewPlayerInvalidRoleIsError(t *testing.T) {
	_, err := NewPlayer(properties.Parse("name=p1 role=purple"))

	require.Error(t, err)
}

func TestNewPlayerValidRole(t *testing.T) {
	p, err := NewPlayer(properties.Parse("name=p1 role=black seed=7"))

	require.NoError(t, err)
	require.Equal(t, boardnogo.Black, p.Role)
	require.Equal(t, uint64(7), p.Seed)
}

func TestNewPlayerInvalidNameIsError(t *testing.T) {
	_, err := NewPlayer(properties.Parse("name=bad[name] role=white"))

	require.Error(t, err)
}

func TestSelectActionWithZeroNFallsBackToRandomLegalMove(t *testing.T) {
	p, err := NewPlayer(properties.Parse("name=p1 role=black seed=3 N=0"))
	require.NoError(t, err)

	action := p.SelectAction(boardnogo.New())

	require.True(t, action.Valid)
	check := boardnogo.New()
	require.Equal(t, boardnogo.Legal, check.Place(action.Position))
}

func TestSelectActionWithNoLegalMoveReturnsNoAction(t *testing.T) {
	p, err := NewPlayer(properties.Parse("name=p1 role=black seed=3 N=0"))
	require.NoError(t, err)

	b := boardnogo.New()
	for len(b.LegalMoves()) > 0 {
		b.Place(b.LegalMoves()[0])
	}

	action := p.SelectAction(b)

	require.False(t, action.Valid)
	require.Equal(t, NoAction, action)
}

func TestSelectActionWithNRunsMCTS(t *testing.T) {
	p, err := NewPlayer(properties.Parse("name=p1 role=black seed=5 N=10"))
	require.NoError(t, err)

	action := p.SelectAction(boardnogo.New())

	require.True(t, action.Valid)
}
