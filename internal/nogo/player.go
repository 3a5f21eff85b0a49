// Package nogo implements the 9x9 NoGo player: a single root-parallel MCTS
// search, or a uniform-random legal fallback when N=0 (§2 Core B item 6,
// §4.B3, §6). Grounded on the random/MCTS `player` class in
// original_source/hollow_nogo_Parallel_MCTS/agent.h.
package nogo

import (
	"fmt"
	"time"

	"twenty48nogo/internal/boardnogo"
	"twenty48nogo/internal/mcts"
	"twenty48nogo/internal/properties"

	"golang.org/x/exp/rand"
)

// Action is the chosen placement, or NoAction if nothing was legal (§7 "No
// legal move at root").
type Action struct {
	Position int
	Valid    bool
}

// NoAction is the null action.
var NoAction = Action{Position: -1}

// Player is the NoGo agent: its assigned color, iteration budget, RNG seed,
// and RAVE backprop perspective (§9 open question).
type Player struct {
	Role        boardnogo.Piece
	N           int
	Seed        uint64
	Perspective mcts.Perspective
}

// NewPlayer constructs a Player from an agent property bag. An invalid or
// missing role is fatal, raised here as a domain error at construction
// (§7 "Invalid role string (Core B)").
func NewPlayer(props properties.Properties) (*Player, error) {
	if err := properties.ValidateName(props.Name()); err != nil {
		return nil, err
	}

	var role boardnogo.Piece
	switch props.Role() {
	case "black":
		role = boardnogo.Black
	case "white":
		role = boardnogo.White
	default:
		return nil, fmt.Errorf("invalid role: %s", props.Role())
	}

	seed := uint64(props.Int("seed", 0))
	if !props.Has("seed") {
		seed = uint64(time.Now().UnixNano())
	}

	perspective := mcts.PerspectiveRoot
	if props.Extra["rave_perspective"] == "node" {
		perspective = mcts.PerspectiveNode
	}

	return &Player{
		Role:        role,
		N:           props.Int("N", 0),
		Seed:        seed,
		Perspective: perspective,
	}, nil
}

// SelectAction returns the player's move for state. With N=0 it returns a
// uniformly random legal move; otherwise it runs root
// parallelization over NumWorkers goroutines (§4.B3).
func (p *Player) SelectAction(state *boardnogo.Board) Action {
	if p.N == 0 {
		return p.randomLegalMove(state)
	}

	pos, err := RunParallel(state, p.N, NumWorkers(), p.Seed, p.Perspective)
	if err != nil || pos < 0 {
		return NoAction
	}
	return Action{Position: pos, Valid: true}
}

func (p *Player) randomLegalMove(state *boardnogo.Board) Action {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return NoAction
	}
	rng := rand.New(rand.NewSource(p.Seed))
	pos := moves[rng.Intn(len(moves))]
	return Action{Position: pos, Valid: true}
}
