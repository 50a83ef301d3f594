package bot

import (
	"math/rand/v2"

	engine "github.com/jason-s-yu/schnapsen/engine"
)

// RandBot plays a uniformly random legal move.
type RandBot struct {
	rng *rand.Rand
}

func NewRandBot(rng *rand.Rand) *RandBot { return &RandBot{rng: rng} }

func (b *RandBot) Decide(p *engine.PlayerPerspective, leaderMove *engine.Move) (engine.Move, error) {
	moves := p.ValidMoves()
	if len(moves) == 0 {
		return engine.Move{}, ErrNoLegalMoves
	}
	return moves[b.rng.IntN(len(moves))], nil
}

// pick returns a random element of moves.
func pick(rng *rand.Rand, moves []engine.Move) engine.Move {
	return moves[rng.IntN(len(moves))]
}
