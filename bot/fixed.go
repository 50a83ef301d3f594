package bot

import engine "github.com/jason-s-yu/schnapsen/engine"

// FirstFixedMove plays a fixed move on its first decision and delegates to
// a base policy afterwards. It is single-shot: build a fresh one for every
// rollout and never share one between goroutines.
type FirstFixedMove struct {
	base   engine.Bot
	move   engine.Move
	played bool
}

func NewFirstFixedMove(base engine.Bot, move engine.Move) *FirstFixedMove {
	return &FirstFixedMove{base: base, move: move}
}

func (b *FirstFixedMove) Decide(p *engine.PlayerPerspective, leaderMove *engine.Move) (engine.Move, error) {
	if !b.played {
		b.played = true
		return b.move, nil
	}
	return b.base.Decide(p, leaderMove)
}
