package bot

import (
	"fmt"

	engine "github.com/jason-s-yu/schnapsen/engine"
	"github.com/jason-s-yu/schnapsen/engine/agent"
	"github.com/jason-s-yu/schnapsen/model"
)

// MLPlayingBot plays the legal move a behavioural model rates most likely
// to win. It holds no mutable state and may be shared between goroutines.
type MLPlayingBot struct {
	model model.BehaviourModel
}

func NewMLPlayingBot(m model.BehaviourModel) *MLPlayingBot { return &MLPlayingBot{model: m} }

func (b *MLPlayingBot) Decide(p *engine.PlayerPerspective, leaderMove *engine.Move) (engine.Move, error) {
	moves := p.ValidMoves()
	if len(moves) == 0 {
		return engine.Move{}, ErrNoLegalMoves
	}

	leading := p.AmILeader() || leaderMove == nil
	best, bestProb := moves[0], -1.0
	for _, m := range moves {
		var x []float32
		if leading {
			x = agent.Vector(p, &m, nil)
		} else {
			x = agent.Vector(p, leaderMove, &m)
		}
		prob, err := b.model.WinProbability(x)
		if err != nil {
			return engine.Move{}, fmt.Errorf("scoring %s: %w", m, err)
		}
		if prob > bestProb {
			best, bestProb = m, prob
		}
	}
	return best, nil
}
