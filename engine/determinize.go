package engine

import (
	"fmt"
	"math/rand/v2"
)

// MakeAssumption returns one full game state consistent with the viewer's
// knowledge. The viewer's hand, both won piles, the face-up trump card and
// every revealed opponent card keep their place; the remaining unseen cards
// are dealt uniformly at random between the opponent's hand and the talon.
//
// leaderMove is the move the viewer answers (nil when leading); its cards are
// pinned to the opponent's hand. myMove is the candidate being evaluated: it
// must come from the viewer's hand and is not applied to the returned state.
func (p *PlayerPerspective) MakeAssumption(leaderMove *Move, myMove Move, rng *rand.Rand) (GameState, error) {
	g := p.state
	me, opp := p.player, p.Opponent()
	hand := p.Hand()

	if !hand.Contains(myMove.Card) || (myMove.Kind == Marriage && !hand.Contains(myMove.King)) {
		return g, fmt.Errorf("%w: candidate %s is not in hand %s", ErrDeterminizationInfeasible, myMove, hand)
	}

	known := g.Revealed[opp]
	if leaderMove != nil && !p.AmILeader() {
		known = known.Union(SetOf(leaderMove.Cards()...))
	}
	fixed := hand.Union(g.Players[me].Won).Union(g.Players[opp].Won)
	if known.Intersect(fixed) != 0 {
		return g, fmt.Errorf("%w: revealed cards %s overlap seen cards", ErrDeterminizationInfeasible, known.Intersect(fixed))
	}

	trumpCard := g.TrumpCard()
	if trumpCard != EmptyCard {
		fixed = fixed.Add(trumpCard)
	}
	unseen := FullDeck.Minus(fixed).Minus(known)

	oppNeed := g.Players[opp].Hand.Len() - known.Len()
	talonNeed := 0
	if g.TalonLen > 0 {
		talonNeed = int(g.TalonLen) - 1
	}
	if oppNeed < 0 || unseen.Len() != oppNeed+talonNeed {
		return g, fmt.Errorf("%w: %d unseen cards for %d hand and %d talon slots",
			ErrDeterminizationInfeasible, unseen.Len(), max(oppNeed, 0), talonNeed)
	}

	pool := unseen.Cards()
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	g.Players[opp].Hand = known.Union(SetOf(pool[:oppNeed]...))
	rest := pool[oppNeed:]
	for i := range g.Talon {
		g.Talon[i] = EmptyCard
	}
	if g.TalonLen > 0 {
		g.Talon[0] = trumpCard
		copy(g.Talon[1:], rest)
	}
	return g, nil
}
