package expectimax

import (
	"fmt"

	"twenty48nogo/internal/board2048"
	"twenty48nogo/internal/properties"
	"twenty48nogo/internal/value"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Action is the chosen slide direction, or NoAction if no direction was
// legal (§4.A4, §7 "No legal move at root").
type Action struct {
	Direction board2048.Direction
	Reward    int
	Value     float64
	Valid     bool
}

// NoAction is the null action returned when every direction is illegal.
var NoAction = Action{}

// Player is the 2048 n-tuple expectimax player (§2 Core A item 5, §4.A4).
type Player struct {
	Weights *value.Weights
	Alpha   float64
}

// NewPlayer constructs a Player from an agent property bag. A missing or
// unreadable "load" weights file is fatal (§7); init=true allocates fresh
// zero tables (§9 "init_weights").
func NewPlayer(props properties.Properties) *Player {
	p := &Player{Alpha: props.Float("alpha", 0)}

	switch {
	case props.Has("load"):
		w, err := value.LoadWeights(props.String("load"))
		if err != nil {
			log.Fatal().Err(err).Str("path", props.String("load")).Msg("failed to load weight file")
		}
		p.Weights = w
	case props.Bool("init"):
		p.Weights = value.NewWeights()
	default:
		p.Weights = value.NewWeights()
	}
	return p
}

// SelectAction evaluates every legal slide from before and returns the one
// with the largest reward+expectation, ties broken toward the lowest
// direction index (§4.A4). Returns NoAction if no direction is legal.
func (p *Player) SelectAction(before *board2048.Board) Action {
	best := NoAction
	bestValue := negInf
	for d := board2048.Direction(0); d < 4; d++ {
		candidate := before.Copy()
		reward := candidate.Slide(d)
		if reward == -1 {
			continue
		}

		v := float64(reward) + Expectation(p.Weights, candidate)
		if !best.Valid || v > bestValue {
			bestValue = v
			best = Action{Direction: d, Reward: reward, Value: v, Valid: true}
		}
	}
	return best
}

// negInf is the starting low-water mark for SelectAction's max search.
const negInf = -1e300

// Save writes the player's weight tables to path (§6, §7: fatal on I/O
// error for the caller to surface at shutdown).
func (p *Player) Save(path string) error {
	if err := value.SaveWeights(p.Weights, path); err != nil {
		return fmt.Errorf("saving weights: %w", err)
	}
	return nil
}

// Train applies a single TD-style update toward target, split evenly
// across the 32 table lookups that estimate_value would visit for after
// (§9 "Open question — TD training loop", grounded on the original's
// commented-out adjust_value). Weights is not safe for concurrent mutation;
// callers must serialize Train against SelectAction/Save from a single
// thread, since evaluation and training share the same table storage.
func (p *Player) Train(after *board2048.Board, target float64) float64 {
	const lookupsPerEval = 32
	uSplit := float32(target / lookupsPerEval)

	sum := 0.0
	b := after.Copy()
	applyOrientation := func() {
		for t, tuple := range value.Tuples {
			idx := value.ExtractFeature6(b, tuple)
			p.Weights.Tables[t][idx] += uSplit
			sum += float64(p.Weights.Tables[t][idx])
		}
	}

	for i := 0; i < 4; i++ {
		applyOrientation()
		b.RotateRight()
	}
	b.ReflectHorizontal()
	for i := 0; i < 4; i++ {
		applyOrientation()
		b.RotateRight()
	}
	return sum
}

// RandomPlayer selects a uniformly random legal slide, ignoring the value
// function entirely. Grounded on dummy_player in
// original_source/2048_expectimax/agent.h: a baseline mover for
// calibrating the n-tuple player against, not used by SelectAction.
type RandomPlayer struct {
	rng *rand.Rand
}

// NewRandomPlayer returns a RandomPlayer seeded from seed.
func NewRandomPlayer(seed uint64) *RandomPlayer {
	return &RandomPlayer{rng: rand.New(rand.NewSource(seed))}
}

// SelectAction tries the four slide directions in random order and returns
// the first legal one, or NoAction if none is legal.
func (p *RandomPlayer) SelectAction(before *board2048.Board) Action {
	order := [4]board2048.Direction{0, 1, 2, 3}
	p.rng.Shuffle(4, func(i, j int) { order[i], order[j] = order[j], order[i] })

	for _, d := range order {
		candidate := before.Copy()
		reward := candidate.Slide(d)
		if reward != -1 {
			return Action{Direction: d, Reward: reward, Valid: true}
		}
	}
	return NoAction
}
