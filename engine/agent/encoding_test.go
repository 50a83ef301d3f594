package agent

import (
	"math"
	"testing"

	engine "github.com/jason-s-yu/schnapsen/engine"
)

func TestInputDim(t *testing.T) {
	if InputDim != 157 {
		t.Fatalf("InputDim = %d, want 157", InputDim)
	}
	if StateDim+2*MoveDim != InputDim {
		t.Fatalf("layout does not add up: %d + 2*%d != %d", StateDim, MoveDim, InputDim)
	}
}

func TestEncode_FreshDealLeader(t *testing.T) {
	g := dealTestGame(t)
	var out [InputDim]float32
	Encode(g.Perspective(0, nil), nil, nil, &out)

	var cardSum float32
	for i := 0; i < CardDim; i++ {
		cardSum += out[i]
	}
	if cardSum != engine.DeckSize {
		t.Errorf("card block sum = %v, want %d", cardSum, engine.DeckSize)
	}

	for i := CardDim; i < CardDim+ScoreDim; i++ {
		if out[i] != 0 {
			t.Errorf("score feature %d = %v, want 0", i, out[i])
		}
	}
	if out[CardDim+ScoreDim+int(engine.SuitSpades)] != 1 {
		t.Error("trump suit one-hot not set for spades")
	}
	phaseOff := CardDim + ScoreDim + SuitDim
	if out[phaseOff+int(engine.PhaseOne)] != 1 || out[phaseOff+int(engine.PhaseTwo)] != 0 {
		t.Error("phase one-hot wrong")
	}
	if out[phaseOff+PhaseDim] != 1 {
		t.Errorf("talon feature = %v, want 1", out[phaseOff+PhaseDim])
	}
	roleOff := phaseOff + PhaseDim + TalonDim
	if out[roleOff] != 1 || out[roleOff+1] != 0 {
		t.Error("leader role not encoded")
	}
	for i := StateDim; i < InputDim; i++ {
		if out[i] != 0 {
			t.Fatalf("move feature %d = %v without moves", i, out[i])
		}
	}
}

func TestEncode_Moves(t *testing.T) {
	g := dealTestGame(t)
	qh, kh := card(engine.SuitHearts, engine.RankQueen), card(engine.SuitHearts, engine.RankKing)
	lm := engine.NewMarriage(qh, kh)
	fm := engine.NewRegularMove(card(engine.SuitHearts, engine.RankAce))

	out := Vector(g.Perspective(1, &lm), &lm, &fm)
	if len(out) != InputDim {
		t.Fatalf("len = %d, want %d", len(out), InputDim)
	}

	lead := out[StateDim : StateDim+MoveDim]
	if lead[int(engine.Marriage)] != 1 {
		t.Error("leader move kind should be marriage")
	}
	if lead[3+int(engine.SuitHearts)] != 1 || lead[3+engine.NumSuits+int(engine.RankQueen)] != 1 {
		t.Error("leader move should encode the queen of hearts")
	}
	follow := out[StateDim+MoveDim:]
	if follow[int(engine.RegularMove)] != 1 || follow[3+engine.NumSuits+int(engine.RankAce)] != 1 {
		t.Error("follower move should encode a regular ace")
	}

	roleOff := StateDim - RoleDim
	if out[roleOff] != 0 || out[roleOff+1] != 1 {
		t.Error("follower role not encoded")
	}
}

func TestEncode_Scores(t *testing.T) {
	g := dealTestGame(t)
	as, qs := card(engine.SuitSpades, engine.RankAce), card(engine.SuitSpades, engine.RankQueen)
	next, err := g.ApplyTrick(engine.NewRegularMove(as), engine.NewRegularMove(qs))
	if err != nil {
		t.Fatalf("ApplyTrick: %v", err)
	}

	var out [InputDim]float32
	Encode(next.Perspective(1, nil), nil, nil, &out)
	want := float32(14) / float32(engine.WinningPoints)
	if got := out[CardDim+2]; math.Abs(float64(got-want)) > 1e-6 {
		t.Errorf("opponent direct points = %v, want %v", got, want)
	}
	if out[CardDim] != 0 {
		t.Errorf("my direct points = %v, want 0", out[CardDim])
	}
}

func TestEncode_Overwrites(t *testing.T) {
	g := dealTestGame(t)
	var out [InputDim]float32
	for i := range out {
		out[i] = 7
	}
	Encode(g.Perspective(0, nil), nil, nil, &out)
	if out[InputDim-1] != 0 {
		t.Error("Encode must zero the output first")
	}
}
