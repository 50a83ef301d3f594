package engine

// Score tracks a player's points. Marriage points stay pending until the
// player wins a trick.
type Score struct {
	DirectPoints  int
	PendingPoints int
}

// Add returns the component-wise sum.
func (s Score) Add(o Score) Score {
	return Score{
		DirectPoints:  s.DirectPoints + o.DirectPoints,
		PendingPoints: s.PendingPoints + o.PendingPoints,
	}
}

// Redeem moves pending points into direct points.
func (s Score) Redeem() Score {
	return Score{DirectPoints: s.DirectPoints + s.PendingPoints}
}

// marriagePoints returns 40 for a trump marriage, 20 otherwise.
func marriagePoints(suit, trump uint8) int {
	if suit == trump {
		return 40
	}
	return 20
}

// gamePoints returns the game points the winner earns, given the loser's
// direct points:
//   - loser scored nothing → 3
//   - loser below 33 → 2
//   - otherwise → 1
func gamePoints(loser Score) int {
	switch {
	case loser.DirectPoints == 0:
		return 3
	case loser.DirectPoints < WinningPoints/2:
		return 2
	}
	return 1
}

// Winner reports whether the game is over and, if so, who won and how many
// game points they earned.
//
// A player reaching 66 direct points wins. Otherwise, once both hands and
// the talon are empty, the winner of the last trick (the current leader) wins.
func (g *GameState) Winner() (winner uint8, points int, over bool) {
	for p := uint8(0); p < 2; p++ {
		if g.Players[p].Score.DirectPoints >= WinningPoints {
			return p, gamePoints(g.Players[1-p].Score), true
		}
	}
	if g.TalonLen == 0 && g.Players[0].Hand.IsEmpty() && g.Players[1].Hand.IsEmpty() {
		w := g.Leader
		return w, gamePoints(g.Players[1-w].Score), true
	}
	return 0, 0, false
}

// IsGameOver reports whether the game has ended.
func (g *GameState) IsGameOver() bool {
	_, _, over := g.Winner()
	return over
}
