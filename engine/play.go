package engine

import (
	"fmt"
	"math/rand/v2"
)

// Bot chooses a move for the viewing player of p. leaderMove is nil when the
// bot leads and the move being answered otherwise.
type Bot interface {
	Decide(p *PlayerPerspective, leaderMove *Move) (Move, error)
}

// PlayTrick asks the leader (and, for a played trick, the follower) for a
// move and returns the resulting state. bots is indexed by player.
// A trump exchange completes the step on its own; the leader leads again.
func PlayTrick(g GameState, bots [2]Bot) (GameState, Trick, error) {
	if g.IsGameOver() {
		return g, Trick{}, ErrGameOver
	}

	leader, follower := g.Leader, g.Follower()
	lm, err := bots[leader].Decide(g.Perspective(leader, nil), nil)
	if err != nil {
		return g, Trick{}, fmt.Errorf("player %d leading: %w", leader, err)
	}

	if lm.Kind == TrumpExchange {
		next, err := g.ApplyExchange(lm)
		if err != nil {
			return g, Trick{}, fmt.Errorf("player %d: %w", leader, err)
		}
		return next, next.prev.trick, nil
	}

	fm, err := bots[follower].Decide(g.Perspective(follower, &lm), &lm)
	if err != nil {
		return g, Trick{}, fmt.Errorf("player %d following: %w", follower, err)
	}

	next, err := g.ApplyTrick(lm, fm)
	if err != nil {
		return g, Trick{}, err
	}
	return next, next.prev.trick, nil
}

// PlayAtMostNTricks advances g by up to n tricks, stopping early when the
// game ends. leader plays for whoever leads g, follower for the other
// player; the bots stay with their players as the lead changes. g itself is
// not modified.
func PlayAtMostNTricks(g GameState, leader, follower Bot, n int) (GameState, []Trick, error) {
	var bots [2]Bot
	bots[g.Leader] = leader
	bots[g.Follower()] = follower

	tricks := make([]Trick, 0, n)
	for i := 0; i < n && !g.IsGameOver(); i++ {
		next, t, err := PlayTrick(g, bots)
		if err != nil {
			return g, tricks, err
		}
		g = next
		tricks = append(tricks, t)
	}
	return g, tricks, nil
}

// GameResult summarizes a finished game.
type GameResult struct {
	Winner     uint8
	GamePoints int
	Scores     [2]Score
	Tricks     int
}

// PlayGame deals a new game with rng and plays it to the end. bot0 sits in
// seat 0 and leads the first trick.
func PlayGame(bot0, bot1 Bot, rng *rand.Rand) (GameResult, error) {
	return PlayGameFrom(NewGame(rng), bot0, bot1)
}

// PlayGameFrom plays g to the end with bot0 in seat 0 and bot1 in seat 1.
func PlayGameFrom(g GameState, bot0, bot1 Bot) (GameResult, error) {
	bots := [2]Bot{bot0, bot1}
	for !g.IsGameOver() {
		next, _, err := PlayTrick(g, bots)
		if err != nil {
			return GameResult{}, err
		}
		g = next
	}
	winner, points, _ := g.Winner()
	return GameResult{
		Winner:     winner,
		GamePoints: points,
		Scores:     [2]Score{g.Players[0].Score, g.Players[1].Score},
		Tricks:     g.TrickCount(),
	}, nil
}
