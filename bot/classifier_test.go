package bot

import (
	"errors"
	"testing"

	engine "github.com/jason-s-yu/schnapsen/engine"
	"github.com/jason-s-yu/schnapsen/engine/agent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqModel returns labels in order and records its inputs.
type seqModel struct {
	labels []int
	err    error
	inputs [][]float32
}

func (m *seqModel) Predict(x []float32) (int, error) {
	m.inputs = append(m.inputs, x)
	if m.err != nil {
		return 0, m.err
	}
	return m.labels[len(m.inputs)-1], nil
}

func TestArchetype_Names(t *testing.T) {
	assert.Equal(t, "random_model", ArchetypeRandom.ModelName())
	assert.Equal(t, "bully_model", ArchetypeBully.ModelName())
	assert.Equal(t, "rdeep_model", ArchetypeLookahead.ModelName())
	assert.Equal(t, "2ndBot_model", ArchetypeSecondStrategy.ModelName())
	assert.Equal(t, "second-strategy", ArchetypeSecondStrategy.String())
}

func TestClassify_EmptyHistory(t *testing.T) {
	m := &seqModel{}
	a, err := NewOpponentClassifier(m).Classify(standardGame(t).Perspective(0, nil))
	require.NoError(t, err)
	assert.Equal(t, ArchetypeRandom, a)
	assert.Empty(t, m.inputs, "the model must not be consulted")
}

func TestClassify_MajorityVote(t *testing.T) {
	g := playTricks(t, standardGame(t), 3)
	m := &seqModel{labels: []int{1, 1, 2}}

	a, err := NewOpponentClassifier(m).Classify(g.Perspective(0, nil))
	require.NoError(t, err)
	assert.Equal(t, ArchetypeBully, a)
	require.Len(t, m.inputs, 3)
	for _, x := range m.inputs {
		assert.Len(t, x, agent.InputDim)
	}
}

func TestClassify_OmitsFollowerWhenViewerLed(t *testing.T) {
	// Player 0 leads the first two tricks and player 1 the third.
	g := playTricks(t, standardGame(t), 3)
	m := &seqModel{labels: []int{0, 0, 0}}

	_, err := NewOpponentClassifier(m).Classify(g.Perspective(0, nil))
	require.NoError(t, err)

	follower := func(x []float32) []float32 { return x[agent.StateDim+agent.MoveDim:] }
	assert.Equal(t, make([]float32, agent.MoveDim), follower(m.inputs[0]))
	assert.Equal(t, make([]float32, agent.MoveDim), follower(m.inputs[1]))
	assert.NotEqual(t, make([]float32, agent.MoveDim), follower(m.inputs[2]))
}

func TestClassify_TieGoesToLowestLabel(t *testing.T) {
	g := playTricks(t, standardGame(t), 2)
	a, err := NewOpponentClassifier(&seqModel{labels: []int{3, 2}}).Classify(g.Perspective(1, nil))
	require.NoError(t, err)
	assert.Equal(t, ArchetypeLookahead, a)
}

func TestClassify_CountsExchanges(t *testing.T) {
	g := standardGame(t)
	g, err := g.ApplyExchange(engine.NewTrumpExchange(js))
	require.NoError(t, err)

	m := &seqModel{labels: []int{3}}
	a, err := NewOpponentClassifier(m).Classify(g.Perspective(1, nil))
	require.NoError(t, err)
	assert.Equal(t, ArchetypeSecondStrategy, a)
	require.Len(t, m.inputs, 1)
}

func TestClassify_Errors(t *testing.T) {
	g := playTricks(t, standardGame(t), 1)

	_, err := NewOpponentClassifier(&seqModel{labels: []int{4}}).Classify(g.Perspective(0, nil))
	assert.ErrorIs(t, err, ErrUnknownArchetype)

	_, err = NewOpponentClassifier(&seqModel{labels: []int{-1}}).Classify(g.Perspective(0, nil))
	assert.ErrorIs(t, err, ErrUnknownArchetype)

	boom := errors.New("boom")
	_, err = NewOpponentClassifier(&seqModel{err: boom}).Classify(g.Perspective(0, nil))
	assert.ErrorIs(t, err, boom)
}
