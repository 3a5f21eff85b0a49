// play2048 drives one episode of the n-tuple network expectimax player
// against a random tile-placement environment (§2 Core A, §6). The
// environment and episode-driving harness are out of scope for the
// evaluator itself (§1); this command supplies a minimal one so the
// player has something to run against end to end.
package main

import (
	"flag"
	"os"

	"twenty48nogo/internal/board2048"
	"twenty48nogo/internal/expectimax"
	"twenty48nogo/internal/properties"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var args string
	var seed uint64
	flag.StringVar(&args, "props", "", "agent property string, e.g. \"init=true alpha=0.0025\"")
	flag.Uint64Var(&seed, "seed", 1, "tile-placement RNG seed")
	flag.Parse()

	props := properties.Parse(args)
	player := expectimax.NewPlayer(props)

	rng := rand.New(rand.NewSource(seed))
	board := board2048.New()
	placeRandomTile(board, rng)
	placeRandomTile(board, rng)

	moves := 0
	for {
		action := player.SelectAction(board)
		if !action.Valid {
			break
		}
		board.Slide(action.Direction)
		moves++
		if len(board.EmptyPositions()) == 0 {
			break
		}
		placeRandomTile(board, rng)
	}

	log.Info().Int("moves", moves).Msg("episode finished")

	if props.Has("save") {
		if err := player.Save(props.String("save")); err != nil {
			log.Fatal().Err(err).Msg("failed to save weights")
		}
	}
}

// placeRandomTile places a 2 (probability 0.9) or a 4 (probability 0.1) on
// a uniformly chosen empty cell (§4.A3, §9 "Tile placement probability").
func placeRandomTile(b *board2048.Board, rng *rand.Rand) {
	empties := b.EmptyPositions()
	if len(empties) == 0 {
		return
	}
	pos := empties[rng.Intn(len(empties))]
	tile := board2048.Cell(1)
	if rng.Float64() >= 0.9 {
		tile = 2
	}
	b.Place(pos, tile)
}
