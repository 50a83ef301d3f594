package bot

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	engine "github.com/jason-s-yu/schnapsen/engine"
	"github.com/jason-s-yu/schnapsen/internal/telemetry"
	"github.com/sirupsen/logrus"
)

// Config configures an RdeepML selector. NumSamples, Depth, Rand,
// Classifier and Policies are required; the rest have defaults.
type Config struct {
	NumSamples int // determinizations per candidate move
	Depth      int // tricks simulated per rollout
	Workers    int // concurrent rollouts; <= 1 runs sequentially

	Rand       *rand.Rand
	Classifier ArchetypeClassifier
	Policies   PolicyLookup

	// SelfPolicy builds the policy that plays for us after the candidate
	// move. Defaults to an RdeepBot with InnerSamples and InnerDepth.
	SelfPolicy   func(rng *rand.Rand) engine.Bot
	InnerSamples int
	InnerDepth   int

	Determinizer Determinizer // defaults to AssumptionDeterminizer
	Evaluator    Evaluator    // defaults to Rollout

	Logger  logrus.FieldLogger // defaults to logrus.StandardLogger()
	Metrics *telemetry.Metrics
}

// RdeepML chooses moves by Monte-Carlo lookahead against a learned model of
// the opponent's classified style.
//
// A single RdeepML is not safe for concurrent SelectMove calls: it draws
// from its random source without locking.
type RdeepML struct {
	rng        *rand.Rand
	classifier ArchetypeClassifier
	policies   PolicyLookup
	newSelf    func(rng *rand.Rand) engine.Bot
	s          sampler
	log        logrus.FieldLogger
	metrics    *telemetry.Metrics
	closer     io.Closer
}

// NewRdeepML validates cfg and builds a selector.
func NewRdeepML(cfg Config) (*RdeepML, error) {
	switch {
	case cfg.NumSamples < 1:
		return nil, fmt.Errorf("%w: need at least one sample, got %d", ErrInvalidConfiguration, cfg.NumSamples)
	case cfg.Depth < 1:
		return nil, fmt.Errorf("%w: depth must be >= 1, got %d", ErrInvalidConfiguration, cfg.Depth)
	case cfg.Rand == nil:
		return nil, fmt.Errorf("%w: missing random source", ErrInvalidConfiguration)
	case cfg.Classifier == nil:
		return nil, fmt.Errorf("%w: missing opponent classifier", ErrInvalidConfiguration)
	case cfg.Policies == nil:
		return nil, fmt.Errorf("%w: missing policy lookup", ErrInvalidConfiguration)
	}

	newSelf := cfg.SelfPolicy
	if newSelf == nil {
		samples, depth := cfg.InnerSamples, cfg.InnerDepth
		if samples == 0 {
			samples = DefaultInnerSamples
		}
		if depth == 0 {
			depth = DefaultInnerDepth
		}
		if samples < 1 || depth < 1 {
			return nil, fmt.Errorf("%w: inner samples and depth must be >= 1", ErrInvalidConfiguration)
		}
		newSelf = func(rng *rand.Rand) engine.Bot {
			b, _ := NewRdeepBot(samples, depth, rng)
			return b
		}
	}

	det := cfg.Determinizer
	if det == nil {
		det = AssumptionDeterminizer{}
	}
	eval := cfg.Evaluator
	if eval == nil {
		eval = Rollout{}
	}
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &RdeepML{
		rng:        cfg.Rand,
		classifier: cfg.Classifier,
		policies:   cfg.Policies,
		newSelf:    newSelf,
		s: sampler{
			numSamples: cfg.NumSamples,
			depth:      cfg.Depth,
			workers:    max(cfg.Workers, 1),
			det:        det,
			eval:       eval,
			metrics:    cfg.Metrics,
		},
		log:     log,
		metrics: cfg.Metrics,
	}, nil
}

// SelectMove returns the legal move with the best average rollout score.
// Candidates are shuffled first so equal scores are broken at random. A
// lone legal move is returned without any rollouts.
func (r *RdeepML) SelectMove(ctx context.Context, p *engine.PlayerPerspective, leaderMove *engine.Move) (engine.Move, error) {
	start := time.Now()
	log := r.log.WithField("decision", uuid.New())

	moves := p.ValidMoves()
	if len(moves) == 0 {
		return engine.Move{}, ErrNoLegalMoves
	}
	shuffleMoves(r.rng, moves)
	if len(moves) == 1 {
		log.WithField("move", moves[0].String()).Debug("Single legal move")
		return moves[0], nil
	}

	archetype, err := r.classifier.Classify(p)
	if err != nil {
		return engine.Move{}, fmt.Errorf("classifying opponent: %w", err)
	}
	opponent, err := r.policies.Lookup(ctx, archetype)
	if err != nil {
		return engine.Move{}, err
	}

	best, score, err := r.s.choose(ctx, p, leaderMove, moves, r.rng, func(rng *rand.Rand) (engine.Bot, engine.Bot) {
		return r.newSelf(rng), opponent
	})
	if err != nil {
		log.WithError(err).WithField("archetype", archetype.String()).Warn("Move selection failed")
		return engine.Move{}, err
	}

	log.WithFields(logrus.Fields{
		"archetype": archetype.String(),
		"move":      best.String(),
		"score":     score,
		"samples":   r.s.numSamples * len(moves),
	}).Debug("Move selected")
	r.metrics.ObserveDecision(archetype.String(), time.Since(start))
	return best, nil
}

// Decide implements engine.Bot.
func (r *RdeepML) Decide(p *engine.PlayerPerspective, leaderMove *engine.Move) (engine.Move, error) {
	return r.SelectMove(context.Background(), p, leaderMove)
}

// Close releases the model store connection opened by FromConfig, if any.
func (r *RdeepML) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
