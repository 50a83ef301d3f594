package bot

import engine "github.com/jason-s-yu/schnapsen/engine"

// SecondBot is a deterministic heuristic player.
//
// Leading, it announces a marriage if it can, else exchanges the trump
// jack, else plays its cheapest non-trump card. Following, it takes a trick
// worth at least valuableTrick points with its cheapest winning card and
// otherwise throws its cheapest card.
type SecondBot struct{}

const valuableTrick = 10

func NewSecondBot() *SecondBot { return &SecondBot{} }

func (b *SecondBot) Decide(p *engine.PlayerPerspective, leaderMove *engine.Move) (engine.Move, error) {
	moves := p.ValidMoves()
	if len(moves) == 0 {
		return engine.Move{}, ErrNoLegalMoves
	}
	trump := p.TrumpSuit()

	if p.AmILeader() || leaderMove == nil {
		for _, kind := range []engine.MoveKind{engine.Marriage, engine.TrumpExchange} {
			for _, m := range moves {
				if m.Kind == kind {
					return m, nil
				}
			}
		}
		plain := filterMoves(moves, func(m engine.Move) bool { return m.PlayedCard().Suit() != trump })
		if len(plain) > 0 {
			return cheapest(plain, trump), nil
		}
		return cheapest(moves, trump), nil
	}

	led := leaderMove.PlayedCard()
	if led.Points() >= valuableTrick {
		winners := filterMoves(moves, func(m engine.Move) bool {
			return engine.TrickWinner(led, m.PlayedCard(), trump) == 1
		})
		if len(winners) > 0 {
			return cheapest(winners, trump), nil
		}
	}
	return cheapest(moves, trump), nil
}

// cheapest returns the move playing the lowest-valued card, preferring
// non-trumps on equal points. moves must not be empty.
func cheapest(moves []engine.Move, trump uint8) engine.Move {
	best := moves[0]
	for _, m := range moves[1:] {
		c, bc := m.PlayedCard(), best.PlayedCard()
		if c.Points() < bc.Points() || (c.Points() == bc.Points() && bc.Suit() == trump && c.Suit() != trump) {
			best = m
		}
	}
	return best
}
