package engine

import (
	"fmt"
	"slices"
)

// ApplyExchange returns the state after the leader swaps the trump jack for
// the face-up trump card. The leader keeps the lead.
func (g GameState) ApplyExchange(m Move) (GameState, error) {
	if m.Kind != TrumpExchange {
		return g, fmt.Errorf("%w: %s is not a trump exchange", ErrIllegalMove, m)
	}
	if !slices.Contains(g.LegalLeaderMoves(), m) {
		return g, fmt.Errorf("%w: exchange %s not allowed", ErrIllegalMove, m)
	}

	before := g
	leader := g.Leader
	taken := g.Talon[0]
	g.Players[leader].Hand = g.Players[leader].Hand.Remove(m.Card).Add(taken)
	g.Talon[0] = m.Card
	g.Revealed[leader] = g.Revealed[leader].Add(taken)
	g.prev = &historyNode{
		before: before,
		trick:  Trick{Leader: leader, LeaderMove: m, Winner: leader},
	}
	return g, nil
}

// ApplyTrick returns the state after leaderMove is answered by followerMove.
// Both moves are checked against the legal sets.
func (g GameState) ApplyTrick(leaderMove, followerMove Move) (GameState, error) {
	if !leaderMove.IsRegularPlay() {
		return g, fmt.Errorf("%w: %s cannot lead a trick", ErrIllegalMove, leaderMove)
	}
	if !slices.Contains(g.LegalLeaderMoves(), leaderMove) {
		return g, fmt.Errorf("%w: leader move %s", ErrIllegalMove, leaderMove)
	}
	if !slices.Contains(g.LegalFollowerMoves(leaderMove), followerMove) {
		return g, fmt.Errorf("%w: follower move %s against %s", ErrIllegalMove, followerMove, leaderMove)
	}

	before := g
	leader, follower := g.Leader, g.Follower()
	lc, fc := leaderMove.PlayedCard(), followerMove.PlayedCard()

	g.Players[leader].Hand = g.Players[leader].Hand.Remove(lc)
	g.Players[follower].Hand = g.Players[follower].Hand.Remove(fc)
	g.Revealed[leader] = g.Revealed[leader].Remove(lc)
	g.Revealed[follower] = g.Revealed[follower].Remove(fc)

	if leaderMove.Kind == Marriage {
		pts := marriagePoints(lc.Suit(), g.TrumpSuit)
		g.Players[leader].Score = g.Players[leader].Score.Add(Score{PendingPoints: pts})
		g.Revealed[leader] = g.Revealed[leader].Add(leaderMove.King)
	}

	winner := leader
	if TrickWinner(lc, fc, g.TrumpSuit) == 1 {
		winner = follower
	}
	loser := 1 - winner

	w := &g.Players[winner]
	w.Won = w.Won.Add(lc).Add(fc)
	w.Score = w.Score.Add(Score{DirectPoints: lc.Points() + fc.Points()}).Redeem()
	g.Leader = winner

	// Winner draws first, then the loser; the talon always holds an even count.
	if g.TalonLen > 0 {
		g.Players[winner].Hand = g.Players[winner].Hand.Add(g.draw())
		g.Players[loser].Hand = g.Players[loser].Hand.Add(g.draw())
	}

	g.prev = &historyNode{
		before: before,
		trick: Trick{
			Leader:       leader,
			LeaderMove:   leaderMove,
			FollowerMove: followerMove,
			Winner:       winner,
		},
	}
	return g, nil
}

// draw pops the top talon card.
func (g *GameState) draw() Card {
	g.TalonLen--
	c := g.Talon[g.TalonLen]
	g.Talon[g.TalonLen] = EmptyCard
	return c
}
