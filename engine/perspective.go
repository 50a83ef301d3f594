package engine

import "slices"

// PlayerPerspective is one player's partial view of a game. It exposes
// everything the player can legitimately know; the opponent's hand and the
// talon order stay hidden and are only reachable through MakeAssumption.
type PlayerPerspective struct {
	state      GameState
	player     uint8
	leaderMove *Move
}

func newPerspective(g GameState, player uint8, leaderMove *Move) *PlayerPerspective {
	var lm *Move
	if leaderMove != nil {
		m := *leaderMove
		lm = &m
	}
	return &PlayerPerspective{state: g, player: player, leaderMove: lm}
}

// Player returns the index of the viewing player.
func (p *PlayerPerspective) Player() uint8 { return p.player }

// Opponent returns the index of the other player.
func (p *PlayerPerspective) Opponent() uint8 { return 1 - p.player }

// AmILeader reports whether the viewing player leads the current trick.
func (p *PlayerPerspective) AmILeader() bool { return p.state.Leader == p.player }

// LeaderMove returns the move the viewer is answering, or nil when leading.
func (p *PlayerPerspective) LeaderMove() *Move {
	if p.leaderMove == nil {
		return nil
	}
	m := *p.leaderMove
	return &m
}

func (p *PlayerPerspective) Hand() CardSet { return p.state.Players[p.player].Hand }
func (p *PlayerPerspective) WonCards() CardSet { return p.state.Players[p.player].Won }
func (p *PlayerPerspective) OpponentWonCards() CardSet { return p.state.Players[p.Opponent()].Won }
func (p *PlayerPerspective) MyScore() Score { return p.state.Players[p.player].Score }
func (p *PlayerPerspective) OpponentScore() Score { return p.state.Players[p.Opponent()].Score }
func (p *PlayerPerspective) TrumpSuit() uint8 { return p.state.TrumpSuit }
func (p *PlayerPerspective) TrumpCard() Card { return p.state.TrumpCard() }
func (p *PlayerPerspective) TalonSize() int { return int(p.state.TalonLen) }
func (p *PlayerPerspective) Phase() Phase { return p.state.Phase() }

// OpponentHandSize returns how many cards the opponent holds.
func (p *PlayerPerspective) OpponentHandSize() int {
	return p.state.Players[p.Opponent()].Hand.Len()
}

// KnownOpponentCards returns the opponent cards revealed by a marriage or a
// trump exchange that have not been played yet. When the viewer follows, the
// cards of the leader move are included.
func (p *PlayerPerspective) KnownOpponentCards() CardSet {
	known := p.state.Revealed[p.Opponent()]
	if p.leaderMove != nil {
		known = known.Union(SetOf(p.leaderMove.Cards()...))
	}
	return known
}

// SeenCards returns every card whose location the viewer knows.
func (p *PlayerPerspective) SeenCards() CardSet {
	seen := p.Hand().Union(p.WonCards()).Union(p.OpponentWonCards()).Union(p.KnownOpponentCards())
	if tc := p.TrumpCard(); tc != EmptyCard {
		seen = seen.Add(tc)
	}
	return seen
}

// ValidMoves returns the viewer's legal moves.
func (p *PlayerPerspective) ValidMoves() []Move {
	if p.AmILeader() {
		return p.state.LegalLeaderMoves()
	}
	if p.leaderMove == nil {
		return nil
	}
	return p.state.LegalFollowerMoves(*p.leaderMove)
}

// IsGameOver reports whether the game behind the perspective has ended.
func (p *PlayerPerspective) IsGameOver() bool { return p.state.IsGameOver() }

// HistoryEntry pairs a completed trick with the viewer's perspective at the
// moment the viewer decided its move in that trick.
type HistoryEntry struct {
	Perspective *PlayerPerspective
	Trick       Trick
}

// GameHistory returns the completed tricks, oldest first. The trick being
// decided is not part of the history.
func (p *PlayerPerspective) GameHistory() []HistoryEntry {
	var out []HistoryEntry
	for h := p.state.prev; h != nil; h = h.before.prev {
		var lm *Move
		if !h.trick.IsTrumpExchange() && h.trick.Leader != p.player {
			m := h.trick.LeaderMove
			lm = &m
		}
		out = append(out, HistoryEntry{
			Perspective: newPerspective(h.before, p.player, lm),
			Trick:       h.trick,
		})
	}
	slices.Reverse(out)
	return out
}
