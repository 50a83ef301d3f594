package bot

import (
	"context"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"testing"

	engine "github.com/jason-s-yu/schnapsen/engine"
	"github.com/stretchr/testify/require"
)

func card(suit, rank uint8) engine.Card { return engine.NewCard(suit, rank) }

var (
	jh, qh, kh, th, ah = card(engine.SuitHearts, engine.RankJack), card(engine.SuitHearts, engine.RankQueen), card(engine.SuitHearts, engine.RankKing), card(engine.SuitHearts, engine.RankTen), card(engine.SuitHearts, engine.RankAce)
	jd, qd, kd, td, ad = card(engine.SuitDiamonds, engine.RankJack), card(engine.SuitDiamonds, engine.RankQueen), card(engine.SuitDiamonds, engine.RankKing), card(engine.SuitDiamonds, engine.RankTen), card(engine.SuitDiamonds, engine.RankAce)
	jc, qc, kc, tc, ac = card(engine.SuitClubs, engine.RankJack), card(engine.SuitClubs, engine.RankQueen), card(engine.SuitClubs, engine.RankKing), card(engine.SuitClubs, engine.RankTen), card(engine.SuitClubs, engine.RankAce)
	js, qs, ks, ts, as = card(engine.SuitSpades, engine.RankJack), card(engine.SuitSpades, engine.RankQueen), card(engine.SuitSpades, engine.RankKing), card(engine.SuitSpades, engine.RankTen), card(engine.SuitSpades, engine.RankAce)
)

func newTestRand(seed uint64) *rand.Rand { return rand.New(rand.NewPCG(seed, seed+1)) }

// dealHands deals p0 and p1 the given hands with trump face up; the other
// cards fill the talon in index order.
func dealHands(t *testing.T, p0, p1 []engine.Card, trump engine.Card) engine.GameState {
	t.Helper()
	used := engine.SetOf(p0...).Union(engine.SetOf(p1...)).Add(trump)
	deck := append(append([]engine.Card{}, p0...), p1...)
	deck = append(deck, engine.FullDeck.Minus(used).Cards()...)
	deck = append(deck, trump)
	g, err := engine.DealFromDeck(deck)
	require.NoError(t, err)
	return g
}

// standardGame gives player 0 a heart marriage and the trump jack; spades
// are trump.
func standardGame(t *testing.T) engine.GameState {
	return dealHands(t, []engine.Card{qh, kh, js, as, tc}, []engine.Card{ah, th, jh, ks, qs}, ts)
}

// firstBot plays the first legal move.
type firstBot struct{}

func (firstBot) Decide(p *engine.PlayerPerspective, _ *engine.Move) (engine.Move, error) {
	moves := p.ValidMoves()
	if len(moves) == 0 {
		return engine.Move{}, ErrNoLegalMoves
	}
	return moves[0], nil
}

// fixedBot always plays the same move.
type fixedBot struct {
	move  engine.Move
	calls int
}

func (b *fixedBot) Decide(*engine.PlayerPerspective, *engine.Move) (engine.Move, error) {
	b.calls++
	return b.move, nil
}

// playTricks advances g by n steps with firstBot on both sides.
func playTricks(t *testing.T, g engine.GameState, n int) engine.GameState {
	t.Helper()
	g, tricks, err := engine.PlayAtMostNTricks(g, firstBot{}, firstBot{}, n)
	require.NoError(t, err)
	require.Len(t, tricks, n)
	return g
}

// lastTrickState returns a state where the leader holds a single card and
// the game is still running.
func lastTrickState(t *testing.T) engine.GameState {
	t.Helper()
	for seed := uint64(1); seed < 500; seed++ {
		rng := newTestRand(seed)
		g := engine.NewGame(rng)
		bots := [2]engine.Bot{NewRandBot(rng), NewRandBot(rng)}
		for !g.IsGameOver() {
			if g.TalonLen == 0 && g.Players[g.Leader].Hand.Len() == 1 {
				return g
			}
			next, _, err := engine.PlayTrick(g, bots)
			require.NoError(t, err)
			g = next
		}
	}
	t.Fatal("no game reached its last trick")
	return engine.GameState{}
}

// stubClassifier returns a fixed archetype.
type stubClassifier struct {
	archetype Archetype
	err       error
	calls     atomic.Int64
}

func (c *stubClassifier) Classify(*engine.PlayerPerspective) (Archetype, error) {
	c.calls.Add(1)
	return c.archetype, c.err
}

// stubLookup hands out policies built by newBot.
type stubLookup struct {
	newBot func() engine.Bot
	err    error

	mu    sync.Mutex
	asked []Archetype
}

func (l *stubLookup) Lookup(_ context.Context, a Archetype) (engine.Bot, error) {
	l.mu.Lock()
	l.asked = append(l.asked, a)
	l.mu.Unlock()
	if l.err != nil {
		return nil, l.err
	}
	return l.newBot(), nil
}

func randLookup(seed uint64) *stubLookup {
	return &stubLookup{newBot: func() engine.Bot { return NewRandBot(newTestRand(seed)) }}
}

// moveEvaluator scores a sample by the candidate move the viewer plays
// first. It only works when the viewer leads.
type moveEvaluator struct {
	scores map[engine.Move]float64
	calls  atomic.Int64
}

func (e *moveEvaluator) Evaluate(state engine.GameState, leader, _ engine.Bot, _ int, _ uint8) (float64, error) {
	e.calls.Add(1)
	m, err := leader.Decide(state.Perspective(state.Leader, nil), nil)
	if err != nil {
		return 0, err
	}
	if s, ok := e.scores[m]; ok {
		return s, nil
	}
	return 0.5, nil
}

// funcEvaluator adapts a function to Evaluator.
type funcEvaluator func(state engine.GameState, side uint8) (float64, error)

func (f funcEvaluator) Evaluate(state engine.GameState, _, _ engine.Bot, _ int, side uint8) (float64, error) {
	return f(state, side)
}

// quickConfig returns a selector config that never touches a real model.
func quickConfig(seed uint64) Config {
	return Config{
		NumSamples: 2,
		Depth:      2,
		Rand:       newTestRand(seed),
		Classifier: &stubClassifier{archetype: ArchetypeRandom},
		Policies:   randLookup(seed),
		SelfPolicy: func(rng *rand.Rand) engine.Bot { return NewRandBot(rng) },
	}
}
