package bot

import (
	"fmt"

	engine "github.com/jason-s-yu/schnapsen/engine"
	"github.com/jason-s-yu/schnapsen/engine/agent"
	"github.com/jason-s-yu/schnapsen/model"
)

// Archetype is an opponent playing style. The values match the labels the
// classifier model was trained with.
type Archetype int

const (
	ArchetypeRandom Archetype = iota
	ArchetypeBully
	ArchetypeLookahead
	ArchetypeSecondStrategy
	numArchetypes
)

func (a Archetype) String() string {
	switch a {
	case ArchetypeRandom:
		return "random"
	case ArchetypeBully:
		return "bully"
	case ArchetypeLookahead:
		return "lookahead"
	case ArchetypeSecondStrategy:
		return "second-strategy"
	}
	return fmt.Sprintf("archetype(%d)", int(a))
}

// ModelName returns the behavioural model trained on the archetype.
func (a Archetype) ModelName() string {
	switch a {
	case ArchetypeBully:
		return "bully_model"
	case ArchetypeLookahead:
		return "rdeep_model"
	case ArchetypeSecondStrategy:
		return "2ndBot_model"
	}
	return "random_model"
}

// ArchetypeClassifier guesses the opponent's style from a perspective.
type ArchetypeClassifier interface {
	Classify(p *engine.PlayerPerspective) (Archetype, error)
}

// OpponentClassifier labels every completed trick with a model and returns
// the most frequent label.
type OpponentClassifier struct {
	model model.Classifier
}

func NewOpponentClassifier(m model.Classifier) *OpponentClassifier {
	return &OpponentClassifier{model: m}
}

// Classify votes over the completed tricks in p's history, ties going to
// the lowest archetype. With no history it returns ArchetypeRandom without
// consulting the model.
func (c *OpponentClassifier) Classify(p *engine.PlayerPerspective) (Archetype, error) {
	history := p.GameHistory()
	if len(history) == 0 {
		return ArchetypeRandom, nil
	}

	var votes [numArchetypes]int
	for i, h := range history {
		lm := h.Trick.LeaderMove
		var fm *engine.Move
		if !h.Trick.IsTrumpExchange() && !h.Perspective.AmILeader() {
			m := h.Trick.FollowerMove
			fm = &m
		}
		label, err := c.model.Predict(agent.Vector(h.Perspective, &lm, fm))
		if err != nil {
			return ArchetypeRandom, fmt.Errorf("classifying trick %d: %w", i, err)
		}
		if label < 0 || label >= int(numArchetypes) {
			return ArchetypeRandom, fmt.Errorf("%w: label %d for trick %d", ErrUnknownArchetype, label, i)
		}
		votes[label]++
	}

	best := ArchetypeRandom
	for a := ArchetypeRandom; a < numArchetypes; a++ {
		if votes[a] > votes[best] {
			best = a
		}
	}
	return best, nil
}
