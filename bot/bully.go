package bot

import (
	"math/rand/v2"

	engine "github.com/jason-s-yu/schnapsen/engine"
)

// BullyBot plays aggressively: trumps first, then the led suit when
// following, otherwise its highest cards.
type BullyBot struct {
	rng *rand.Rand
}

func NewBullyBot(rng *rand.Rand) *BullyBot { return &BullyBot{rng: rng} }

func (b *BullyBot) Decide(p *engine.PlayerPerspective, leaderMove *engine.Move) (engine.Move, error) {
	moves := p.ValidMoves()
	if len(moves) == 0 {
		return engine.Move{}, ErrNoLegalMoves
	}

	trump := p.TrumpSuit()
	if trumps := filterMoves(moves, func(m engine.Move) bool { return m.PlayedCard().Suit() == trump }); len(trumps) > 0 {
		return pick(b.rng, trumps), nil
	}

	if !p.AmILeader() && leaderMove != nil {
		led := leaderMove.PlayedCard().Suit()
		if same := filterMoves(moves, func(m engine.Move) bool { return m.PlayedCard().Suit() == led }); len(same) > 0 {
			return pick(b.rng, same), nil
		}
	}

	top := 0
	for _, m := range moves {
		top = max(top, m.PlayedCard().Points())
	}
	highest := filterMoves(moves, func(m engine.Move) bool { return m.PlayedCard().Points() == top })
	return pick(b.rng, highest), nil
}

func filterMoves(moves []engine.Move, keep func(engine.Move) bool) []engine.Move {
	var out []engine.Move
	for _, m := range moves {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}
