package engine

import (
	"fmt"
	"math/bits"
	"strings"
)

// Suit constants: packed into upper 4 bits of Card.
const (
	SuitHearts   uint8 = 0
	SuitDiamonds uint8 = 1
	SuitClubs    uint8 = 2
	SuitSpades   uint8 = 3
)

// Rank constants: packed into lower 4 bits of Card.
// Ordered by trick-taking strength, weakest first.
const (
	RankJack  uint8 = 0
	RankQueen uint8 = 1
	RankKing  uint8 = 2
	RankTen   uint8 = 3
	RankAce   uint8 = 4
)

const (
	NumSuits = 4
	NumRanks = 5
)

// Card is a packed uint8: upper 4 bits = suit, lower 4 bits = rank.
type Card uint8

// EmptyCard represents the absence of a card.
const EmptyCard Card = 0xFF

// NewCard constructs a Card from suit and rank.
func NewCard(suit, rank uint8) Card {
	return Card((suit << 4) | (rank & 0x0F))
}

// Suit returns the suit bits (upper 4).
func (c Card) Suit() uint8 { return uint8(c) >> 4 }

// Rank returns the rank bits (lower 4).
func (c Card) Rank() uint8 { return uint8(c) & 0x0F }

// Index returns the dense index of the card in [0, DeckSize).
func (c Card) Index() int { return int(c.Suit())*NumRanks + int(c.Rank()) }

// CardAt is the inverse of Index.
func CardAt(idx int) Card { return NewCard(uint8(idx/NumRanks), uint8(idx%NumRanks)) }

// Points returns the card's trick value.
//   - Jack → 2, Queen → 3, King → 4, Ten → 10, Ace → 11
func (c Card) Points() int {
	switch c.Rank() {
	case RankJack:
		return 2
	case RankQueen:
		return 3
	case RankKing:
		return 4
	case RankTen:
		return 10
	case RankAce:
		return 11
	}
	return 0
}

var (
	suitNames = [NumSuits]string{"H", "D", "C", "S"}
	rankNames = [NumRanks]string{"J", "Q", "K", "T", "A"}
)

func (c Card) String() string {
	if c == EmptyCard || c.Suit() >= NumSuits || c.Rank() >= NumRanks {
		return "--"
	}
	return rankNames[c.Rank()] + suitNames[c.Suit()]
}

// ---------------------------------------------------------------------------
// CardSet
// ---------------------------------------------------------------------------

// CardSet is a bitmask over the 20-card deck, bit i set iff CardAt(i) is in the set.
type CardSet uint32

// FullDeck contains every card.
const FullDeck CardSet = 1<<DeckSize - 1

func SetOf(cards ...Card) CardSet {
	var s CardSet
	for _, c := range cards {
		s = s.Add(c)
	}
	return s
}

func (s CardSet) Add(c Card) CardSet { return s | 1<<c.Index() }
func (s CardSet) Remove(c Card) CardSet { return s &^ (1 << c.Index()) }
func (s CardSet) Contains(c Card) bool { return c != EmptyCard && s&(1<<c.Index()) != 0 }
func (s CardSet) Union(o CardSet) CardSet { return s | o }
func (s CardSet) Minus(o CardSet) CardSet { return s &^ o }
func (s CardSet) Intersect(o CardSet) CardSet { return s & o }
func (s CardSet) Len() int { return bits.OnesCount32(uint32(s)) }
func (s CardSet) IsEmpty() bool { return s == 0 }

// Cards lists the set in index order.
func (s CardSet) Cards() []Card {
	out := make([]Card, 0, s.Len())
	for w := uint32(s); w != 0; w &= w - 1 {
		out = append(out, CardAt(bits.TrailingZeros32(w)))
	}
	return out
}

// OfSuit returns the subset of cards with the given suit.
func (s CardSet) OfSuit(suit uint8) CardSet {
	return s & (CardSet(1<<NumRanks-1) << (int(suit) * NumRanks))
}

// Points sums the trick value of every card in the set.
func (s CardSet) Points() int {
	total := 0
	for _, c := range s.Cards() {
		total += c.Points()
	}
	return total
}

func (s CardSet) String() string {
	cards := s.Cards()
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// ---------------------------------------------------------------------------
// Moves
// ---------------------------------------------------------------------------

// MoveKind tags the Move variant.
type MoveKind uint8

const (
	RegularMove   MoveKind = iota // 0
	Marriage                      // 1
	TrumpExchange                 // 2
)

func (k MoveKind) String() string {
	switch k {
	case RegularMove:
		return "regular"
	case Marriage:
		return "marriage"
	case TrumpExchange:
		return "exchange"
	}
	return fmt.Sprintf("MoveKind(%d)", uint8(k))
}

// Move is an immutable tagged variant.
//   - RegularMove: Card is the card played.
//   - Marriage: Card is the queen laid on the trick, King the partner shown.
//   - TrumpExchange: Card is the trump jack swapped for the face-up trump card.
type Move struct {
	Kind MoveKind
	Card Card
	King Card
}

// NewRegularMove plays a single card.
func NewRegularMove(c Card) Move { return Move{Kind: RegularMove, Card: c, King: EmptyCard} }

// NewMarriage announces the queen and king of one suit.
func NewMarriage(queen, king Card) Move { return Move{Kind: Marriage, Card: queen, King: king} }

// NewTrumpExchange swaps the trump jack with the face-up trump card.
func NewTrumpExchange(jack Card) Move { return Move{Kind: TrumpExchange, Card: jack, King: EmptyCard} }

// Cards returns every card the move references.
func (m Move) Cards() []Card {
	if m.Kind == Marriage {
		return []Card{m.Card, m.King}
	}
	return []Card{m.Card}
}

// PlayedCard is the card that lands on the trick (the queen for a marriage).
// Meaningless for a trump exchange.
func (m Move) PlayedCard() Card { return m.Card }

// IsRegularPlay reports whether the move puts a card on the trick.
func (m Move) IsRegularPlay() bool { return m.Kind != TrumpExchange }

func (m Move) String() string {
	switch m.Kind {
	case Marriage:
		return fmt.Sprintf("marriage(%s,%s)", m.Card, m.King)
	case TrumpExchange:
		return fmt.Sprintf("exchange(%s)", m.Card)
	}
	return m.Card.String()
}
