package agent

import engine "github.com/jason-s-yu/schnapsen/engine"

// CardLocation is where a card sits as far as the viewing player knows.
type CardLocation uint8

const (
	LocMyHand        CardLocation = iota // 0: in the viewer's hand
	LocMyWon                             // 1: in the viewer's won pile
	LocOpponentWon                       // 2: in the opponent's won pile
	LocOpponentKnown                     // 3: revealed in the opponent's hand
	LocTrumpCard                         // 4: face up at the bottom of the talon
	LocUnknown                           // 5: opponent hand or talon, unknown which
	NumLocations
)

func (l CardLocation) String() string {
	switch l {
	case LocMyHand:
		return "my-hand"
	case LocMyWon:
		return "my-won"
	case LocOpponentWon:
		return "opponent-won"
	case LocOpponentKnown:
		return "opponent-known"
	case LocTrumpCard:
		return "trump-card"
	case LocUnknown:
		return "unknown"
	}
	return "invalid"
}

const (
	// Points are scaled by the winning threshold.
	pointScale = float32(engine.WinningPoints)

	CardDim  = engine.DeckSize * int(NumLocations) // 120
	ScoreDim = 4
	SuitDim  = engine.NumSuits
	PhaseDim = 2
	TalonDim = 1
	RoleDim  = 2
	MoveDim  = 3 + engine.NumSuits + engine.NumRanks // kind + suit + rank = 12

	StateDim = CardDim + ScoreDim + SuitDim + PhaseDim + TalonDim + RoleDim // 133
	InputDim = StateDim + 2*MoveDim                                          // 157
)
