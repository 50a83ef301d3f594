// Package agent encodes a player's view of a Schnapsen game into the
// fixed-length feature vectors consumed by the learned models.
package agent

import engine "github.com/jason-s-yu/schnapsen/engine"

// Beliefs is the card-location view of one player: for every card, where
// the player knows it to be. It is a flat value type.
type Beliefs struct {
	Locations [engine.DeckSize]CardLocation
}

// NewBeliefs derives the card locations visible from p.
func NewBeliefs(p *engine.PlayerPerspective) Beliefs {
	var b Beliefs
	hand := p.Hand()
	myWon := p.WonCards()
	oppWon := p.OpponentWonCards()
	known := p.KnownOpponentCards()
	trump := p.TrumpCard()

	for i := range b.Locations {
		c := engine.CardAt(i)
		switch {
		case hand.Contains(c):
			b.Locations[i] = LocMyHand
		case myWon.Contains(c):
			b.Locations[i] = LocMyWon
		case oppWon.Contains(c):
			b.Locations[i] = LocOpponentWon
		case known.Contains(c):
			b.Locations[i] = LocOpponentKnown
		case c == trump:
			b.Locations[i] = LocTrumpCard
		default:
			b.Locations[i] = LocUnknown
		}
	}
	return b
}

// Count returns how many cards sit at loc.
func (b Beliefs) Count(loc CardLocation) int {
	n := 0
	for _, l := range b.Locations {
		if l == loc {
			n++
		}
	}
	return n
}
