package bot

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"

	engine "github.com/jason-s-yu/schnapsen/engine"
	"github.com/jason-s-yu/schnapsen/internal/telemetry"
	"golang.org/x/sync/errgroup"
)

// policyFactory builds the self and opponent policies for one sample. The
// self policy is wrapped in a FirstFixedMove by the sampler.
type policyFactory func(rng *rand.Rand) (self, opponent engine.Bot)

// sampler scores candidate moves by averaging rollouts over
// determinizations of the hidden cards.
type sampler struct {
	numSamples int
	depth      int
	workers    int
	det        Determinizer
	eval       Evaluator
	metrics    *telemetry.Metrics
}

// choose evaluates moves in order and returns the first one with the
// highest average score.
func (s *sampler) choose(ctx context.Context, p *engine.PlayerPerspective, leaderMove *engine.Move, moves []engine.Move, rng *rand.Rand, policies policyFactory) (engine.Move, float64, error) {
	best, bestScore := moves[0], math.Inf(-1)
	for _, m := range moves {
		score, err := s.score(ctx, p, leaderMove, m, rng, policies)
		if err != nil {
			return engine.Move{}, 0, err
		}
		if score > bestScore {
			best, bestScore = m, score
		}
	}
	return best, bestScore, nil
}

// score averages numSamples rollouts of m. Each sample gets its own
// generator seeded from rng before any work starts, so the result does not
// depend on the number of workers.
func (s *sampler) score(ctx context.Context, p *engine.PlayerPerspective, leaderMove *engine.Move, m engine.Move, rng *rand.Rand, policies policyFactory) (float64, error) {
	seeds := make([][2]uint64, s.numSamples)
	for i := range seeds {
		seeds[i] = [2]uint64{rng.Uint64(), rng.Uint64()}
	}
	scores := make([]float64, s.numSamples)
	run := func(i int) error {
		r := rand.New(rand.NewPCG(seeds[i][0], seeds[i][1]))
		v, err := s.sample(p, leaderMove, m, r, policies)
		if err != nil {
			s.metrics.RolloutFailed()
			return err
		}
		scores[i] = v
		return nil
	}

	if s.workers <= 1 {
		for i := range seeds {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
			if err := run(i); err != nil {
				return 0, err
			}
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.workers)
		for i := range seeds {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				return run(i)
			})
		}
		if err := g.Wait(); err != nil {
			return 0, err
		}
	}
	s.metrics.AddRollouts(s.numSamples)

	var sum float64
	for _, v := range scores {
		sum += v
	}
	return sum / float64(s.numSamples), nil
}

// sample runs one determinization of m.
func (s *sampler) sample(p *engine.PlayerPerspective, leaderMove *engine.Move, m engine.Move, rng *rand.Rand, policies policyFactory) (float64, error) {
	state, err := s.det.Determinize(p, leaderMove, m, rng)
	if err != nil {
		return 0, fmt.Errorf("determinizing for %s: %w", m, err)
	}
	selfBase, opponent := policies(rng)
	self := NewFirstFixedMove(selfBase, m)

	var leader, follower engine.Bot = self, opponent
	if !p.AmILeader() && leaderMove != nil {
		leader, follower = NewFirstFixedMove(opponent, *leaderMove), self
	}
	return s.eval.Evaluate(state, leader, follower, s.depth, p.Player())
}

func shuffleMoves(rng *rand.Rand, moves []engine.Move) {
	rng.Shuffle(len(moves), func(i, j int) { moves[i], moves[j] = moves[j], moves[i] })
}
