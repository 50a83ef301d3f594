package model

import (
	"encoding/json"
	"fmt"
	"math"
)

// Layer is one dense layer: Weights is out×in, Bias has length out.
type Layer struct {
	Weights [][]float32 `json:"weights"`
	Bias    []float32   `json:"bias"`
}

// MLP is a feed-forward network with ReLU hidden layers and a single
// sigmoid output unit giving the win probability.
type MLP struct {
	Layers []Layer `json:"layers"`
}

// DecodeMLP parses and validates an MLP document.
func DecodeMLP(data []byte) (*MLP, error) {
	var m MLP
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: mlp: %v", ErrInvalidModel, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks that layer shapes chain and the output is one unit.
func (m *MLP) Validate() error {
	if len(m.Layers) == 0 {
		return fmt.Errorf("%w: mlp: no layers", ErrInvalidModel)
	}
	in := -1
	for i, l := range m.Layers {
		if len(l.Weights) == 0 || len(l.Weights) != len(l.Bias) {
			return fmt.Errorf("%w: mlp: layer %d has %d rows and %d biases", ErrInvalidModel, i, len(l.Weights), len(l.Bias))
		}
		width := len(l.Weights[0])
		for _, row := range l.Weights {
			if len(row) != width {
				return fmt.Errorf("%w: mlp: layer %d is ragged", ErrInvalidModel, i)
			}
		}
		if in >= 0 && width != in {
			return fmt.Errorf("%w: mlp: layer %d takes %d inputs, previous layer gives %d", ErrInvalidModel, i, width, in)
		}
		in = len(l.Weights)
	}
	if in != 1 {
		return fmt.Errorf("%w: mlp: output layer has %d units, want 1", ErrInvalidModel, in)
	}
	return nil
}

// Dim returns the input dimension the network expects.
func (m *MLP) Dim() int { return len(m.Layers[0].Weights[0]) }

// WinProbability runs the forward pass.
func (m *MLP) WinProbability(x []float32) (float64, error) {
	if len(x) != m.Dim() {
		return 0, fmt.Errorf("%w: mlp: input dimension %d, want %d", ErrInvalidModel, len(x), m.Dim())
	}
	act := make([]float64, len(x))
	for i, v := range x {
		act[i] = float64(v)
	}
	last := len(m.Layers) - 1
	for li, l := range m.Layers {
		next := make([]float64, len(l.Weights))
		for o, row := range l.Weights {
			sum := float64(l.Bias[o])
			for i, w := range row {
				sum += float64(w) * act[i]
			}
			if li < last {
				sum = max(sum, 0)
			}
			next[o] = sum
		}
		act = next
	}
	return 1 / (1 + math.Exp(-act[0])), nil
}
