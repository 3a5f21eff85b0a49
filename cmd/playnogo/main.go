// playnogo drives one episode of a 9x9 NoGo game between a root-parallel
// MCTS player and a uniform-random legal-move player (§2 Core B, §6). The
// episode-driving harness is out of scope for the search core itself
// (§1); this command supplies a minimal one so the player runs end to end.
package main

import (
	"flag"
	"os"

	"twenty48nogo/internal/boardnogo"
	"twenty48nogo/internal/nogo"
	"twenty48nogo/internal/properties"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var blackArgs, whiteArgs string
	flag.StringVar(&blackArgs, "black", "name=black role=black N=400", "black agent property string")
	flag.StringVar(&whiteArgs, "white", "name=white role=white N=0", "white agent property string")
	flag.Parse()

	black, err := nogo.NewPlayer(properties.Parse(blackArgs))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid black agent properties")
	}
	white, err := nogo.NewPlayer(properties.Parse(whiteArgs))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid white agent properties")
	}

	board := boardnogo.New()
	movers := map[boardnogo.Piece]*nogo.Player{boardnogo.Black: black, boardnogo.White: white}

	moves := 0
	for {
		mover := movers[board.Turn()]
		action := mover.SelectAction(board)
		if !action.Valid {
			break
		}
		board.Place(action.Position)
		moves++
	}

	winner := boardnogo.Opponent(board.Turn())
	log.Info().Int("moves", moves).Int("winner", int(winner)).Msg("episode finished")
}
