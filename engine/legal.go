package engine

// LegalLeaderMoves returns every move the current leader may make:
// each card in hand, each marriage held, and the trump exchange when the
// leader holds the trump jack while the talon is open.
func (g *GameState) LegalLeaderMoves() []Move {
	hand := g.Players[g.Leader].Hand
	moves := make([]Move, 0, MaxHandSize+3)
	for _, c := range hand.Cards() {
		moves = append(moves, NewRegularMove(c))
	}
	for suit := uint8(0); suit < NumSuits; suit++ {
		queen, king := NewCard(suit, RankQueen), NewCard(suit, RankKing)
		if hand.Contains(queen) && hand.Contains(king) {
			moves = append(moves, NewMarriage(queen, king))
		}
	}
	if g.TalonLen > 0 {
		jack := NewCard(g.TrumpSuit, RankJack)
		if hand.Contains(jack) {
			moves = append(moves, NewTrumpExchange(jack))
		}
	}
	return moves
}

// LegalFollowerMoves returns the follower's legal answers to leaderMove.
//
// Phase one: any card. Phase two: follow suit and beat if possible, else
// follow suit, else trump, else any card.
func (g *GameState) LegalFollowerMoves(leaderMove Move) []Move {
	hand := g.Players[g.Follower()].Hand
	allowed := hand
	if g.Phase() == PhaseTwo {
		allowed = followerObligation(hand, leaderMove.PlayedCard(), g.TrumpSuit)
	}
	moves := make([]Move, 0, allowed.Len())
	for _, c := range allowed.Cards() {
		moves = append(moves, NewRegularMove(c))
	}
	return moves
}

// followerObligation narrows hand to the cards phase-two rules allow
// against led.
func followerObligation(hand CardSet, led Card, trump uint8) CardSet {
	same := hand.OfSuit(led.Suit())
	if !same.IsEmpty() {
		var higher CardSet
		for _, c := range same.Cards() {
			if c.Rank() > led.Rank() {
				higher = higher.Add(c)
			}
		}
		if !higher.IsEmpty() {
			return higher
		}
		return same
	}
	if trumps := hand.OfSuit(trump); !trumps.IsEmpty() {
		return trumps
	}
	return hand
}

// LegalMoves returns the legal moves of the acting player: the leader when
// leaderMove is nil, the follower otherwise.
func (g *GameState) LegalMoves(leaderMove *Move) []Move {
	if leaderMove == nil {
		return g.LegalLeaderMoves()
	}
	return g.LegalFollowerMoves(*leaderMove)
}
