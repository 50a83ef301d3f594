package bot

import (
	"context"
	"fmt"
	"math/rand/v2"

	engine "github.com/jason-s-yu/schnapsen/engine"
)

// Defaults for the lookahead policy when it plays inside RdeepML rollouts.
const (
	DefaultInnerSamples = 8
	DefaultInnerDepth   = 5
)

// RdeepBot is the plain Monte-Carlo lookahead: both players are simulated
// with random play.
type RdeepBot struct {
	rng *rand.Rand
	s   sampler
}

// NewRdeepBot returns a lookahead policy taking numSamples determinizations
// per move and rolling each out for depth tricks.
func NewRdeepBot(numSamples, depth int, rng *rand.Rand) (*RdeepBot, error) {
	if numSamples < 1 || depth < 1 || rng == nil {
		return nil, fmt.Errorf("%w: rdeep needs samples >= 1, depth >= 1 and a random source", ErrInvalidConfiguration)
	}
	return &RdeepBot{
		rng: rng,
		s: sampler{
			numSamples: numSamples,
			depth:      depth,
			workers:    1,
			det:        AssumptionDeterminizer{},
			eval:       Rollout{},
		},
	}, nil
}

func (b *RdeepBot) Decide(p *engine.PlayerPerspective, leaderMove *engine.Move) (engine.Move, error) {
	moves := p.ValidMoves()
	if len(moves) == 0 {
		return engine.Move{}, ErrNoLegalMoves
	}
	shuffleMoves(b.rng, moves)
	if len(moves) == 1 {
		return moves[0], nil
	}
	best, _, err := b.s.choose(context.Background(), p, leaderMove, moves, b.rng, func(rng *rand.Rand) (engine.Bot, engine.Bot) {
		return NewRandBot(rng), NewRandBot(rng)
	})
	return best, err
}
