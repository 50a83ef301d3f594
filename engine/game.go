// Package engine implements the Schnapsen card game rules.
//
// GameState is a small value type: advancing the game never mutates the
// receiver, so states can be handed to concurrent rollouts without copying
// by hand. Trick history is an immutable linked list shared between states.
package engine

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

const (
	DeckSize      = NumSuits * NumRanks // 20
	MaxHandSize   = 5
	TalonCapacity = DeckSize - 2*MaxHandSize // 10
	WinningPoints = 66
)

var (
	// ErrIllegalMove is returned when a bot answers with a move outside the legal set.
	ErrIllegalMove = errors.New("illegal move")
	// ErrGameOver is returned when asked to play a trick in a finished game.
	ErrGameOver = errors.New("game is already over")
	// ErrDeterminizationInfeasible is returned when no deal is consistent with a perspective.
	ErrDeterminizationInfeasible = errors.New("determinization infeasible")
)

// PlayerState holds one player's hand, won cards and score.
type PlayerState struct {
	Hand  CardSet
	Won   CardSet
	Score Score
}

// GameState holds the complete, privileged state of a two-player Schnapsen game.
type GameState struct {
	Players [2]PlayerState
	// Talon[0] is the bottom (face-up trump) card, Talon[TalonLen-1] the top.
	Talon     [TalonCapacity]Card
	TalonLen  uint8
	TrumpSuit uint8
	Leader    uint8
	// Revealed holds cards a player has shown (marriage partner, exchanged
	// trump card) and not yet played.
	Revealed [2]CardSet

	prev *historyNode
}

// historyNode links a completed trick to the state it was played from.
type historyNode struct {
	before GameState
	trick  Trick
}

// Phase distinguishes play with a non-empty talon from the closed endgame.
type Phase uint8

const (
	PhaseOne Phase = iota // talon non-empty, no obligation to follow
	PhaseTwo              // talon exhausted, follow suit and beat
)

func (p Phase) String() string {
	if p == PhaseOne {
		return "phase-one"
	}
	return "phase-two"
}

// ---------------------------------------------------------------------------
// NewGame and Deal
// ---------------------------------------------------------------------------

// NewDeck returns the 20 cards in index order.
func NewDeck() []Card {
	deck := make([]Card, DeckSize)
	for i := range deck {
		deck[i] = CardAt(i)
	}
	return deck
}

// NewGame shuffles a fresh deck with rng and deals it. Player 0 leads.
func NewGame(rng *rand.Rand) GameState {
	deck := NewDeck()
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	g, _ := DealFromDeck(deck)
	return g
}

// DealFromDeck deals a prepared deck: deck[0:5] to player 0, deck[5:10] to
// player 1, the rest to the talon with deck[10] on top and deck[19] as the
// face-up trump card.
func DealFromDeck(deck []Card) (GameState, error) {
	var g GameState
	if len(deck) != DeckSize {
		return g, fmt.Errorf("deck has %d cards, want %d", len(deck), DeckSize)
	}
	if SetOf(deck...) != FullDeck {
		return g, fmt.Errorf("deck contains duplicate or invalid cards")
	}

	g.Players[0].Hand = SetOf(deck[0:MaxHandSize]...)
	g.Players[1].Hand = SetOf(deck[MaxHandSize : 2*MaxHandSize]...)
	rest := deck[2*MaxHandSize:]
	for i := range rest {
		g.Talon[i] = rest[len(rest)-1-i]
	}
	g.TalonLen = uint8(len(rest))
	g.TrumpSuit = g.Talon[0].Suit()
	return g, nil
}

// ---------------------------------------------------------------------------
// Query methods
// ---------------------------------------------------------------------------

// Follower returns the index of the player who does not lead.
func (g *GameState) Follower() uint8 { return 1 - g.Leader }

// Phase reports whether the talon is still open.
func (g *GameState) Phase() Phase {
	if g.TalonLen > 0 {
		return PhaseOne
	}
	return PhaseTwo
}

// TrumpCard returns the face-up card at the bottom of the talon, or
// EmptyCard once the talon is exhausted.
func (g *GameState) TrumpCard() Card {
	if g.TalonLen == 0 {
		return EmptyCard
	}
	return g.Talon[0]
}

// TalonCards returns the talon as a set, without order.
func (g *GameState) TalonCards() CardSet {
	return SetOf(g.Talon[:g.TalonLen]...)
}

// TrickCount returns the number of completed tricks, exchanges included.
func (g *GameState) TrickCount() int {
	n := 0
	for h := g.prev; h != nil; h = h.before.prev {
		n++
	}
	return n
}

// Tricks returns the completed tricks, oldest first.
func (g *GameState) Tricks() []Trick {
	out := make([]Trick, g.TrickCount())
	i := len(out) - 1
	for h := g.prev; h != nil; h = h.before.prev {
		out[i] = h.trick
		i--
	}
	return out
}

// Perspective returns player's partial view of g. leaderMove must be set
// when player follows in the trick being decided.
func (g *GameState) Perspective(player uint8, leaderMove *Move) *PlayerPerspective {
	return newPerspective(*g, player, leaderMove)
}
