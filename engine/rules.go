package engine

// Trick is one completed exchange between the players: either a trump
// exchange by the leader, or a leader move answered by a follower move.
type Trick struct {
	Leader       uint8
	LeaderMove   Move
	FollowerMove Move // zero value for a trump exchange
	Winner       uint8
}

// IsTrumpExchange reports whether the trick is an exchange event rather
// than a played trick.
func (t Trick) IsTrumpExchange() bool { return t.LeaderMove.Kind == TrumpExchange }

// Follower returns the player who answered the trick.
func (t Trick) Follower() uint8 { return 1 - t.Leader }

// Points returns the card points collected by the winner.
func (t Trick) Points() int {
	if t.IsTrumpExchange() {
		return 0
	}
	return t.LeaderMove.PlayedCard().Points() + t.FollowerMove.PlayedCard().Points()
}

// beats reports whether the follower's card takes the leader's card.
// A higher card of the led suit wins; a trump wins over any non-trump.
func beats(follower, leader Card, trump uint8) bool {
	if follower.Suit() == leader.Suit() {
		return follower.Rank() > leader.Rank()
	}
	return follower.Suit() == trump
}

// TrickWinner returns 0 if the leader takes the trick, 1 if the follower does.
func TrickWinner(leader, follower Card, trump uint8) uint8 {
	if beats(follower, leader, trump) {
		return 1
	}
	return 0
}
