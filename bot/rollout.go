package bot

import (
	"fmt"
	"math/rand/v2"

	engine "github.com/jason-s-yu/schnapsen/engine"
)

// DrawScore is the rollout value when neither side has scored.
const DrawScore = 0.5

// Evaluator scores a determinized state for one side by playing it forward.
type Evaluator interface {
	Evaluate(state engine.GameState, leader, follower engine.Bot, depth int, side uint8) (float64, error)
}

// Determinizer samples a full game state consistent with a perspective.
type Determinizer interface {
	Determinize(p *engine.PlayerPerspective, leaderMove *engine.Move, myMove engine.Move, rng *rand.Rand) (engine.GameState, error)
}

// AssumptionDeterminizer samples with PlayerPerspective.MakeAssumption.
type AssumptionDeterminizer struct{}

func (AssumptionDeterminizer) Determinize(p *engine.PlayerPerspective, leaderMove *engine.Move, myMove engine.Move, rng *rand.Rand) (engine.GameState, error) {
	return p.MakeAssumption(leaderMove, myMove, rng)
}

// Rollout plays at most depth tricks and returns side's share of the direct
// points scored by both players, in [0,1].
type Rollout struct{}

func (Rollout) Evaluate(state engine.GameState, leader, follower engine.Bot, depth int, side uint8) (float64, error) {
	end, _, err := engine.PlayAtMostNTricks(state, leader, follower, depth)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrEvaluationFailed, err)
	}
	mine := end.Players[side].Score.DirectPoints
	theirs := end.Players[1-side].Score.DirectPoints
	if mine+theirs == 0 {
		return DrawScore, nil
	}
	return float64(mine) / float64(mine+theirs), nil
}
