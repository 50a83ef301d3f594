package model

import (
	"encoding/json"
	"fmt"
	"slices"
)

// KNN is a k-nearest-neighbour classifier over stored training vectors.
// Distances are squared euclidean; the vote among the k nearest samples goes
// to the most frequent label, ties to the lowest label.
type KNN struct {
	K       int         `json:"k"`
	Samples [][]float32 `json:"samples"`
	Labels  []int       `json:"labels"`
}

// DecodeKNN parses and validates a KNN document.
func DecodeKNN(data []byte) (*KNN, error) {
	var m KNN
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: knn: %v", ErrInvalidModel, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the classifier is usable.
func (m *KNN) Validate() error {
	if m.K < 1 {
		return fmt.Errorf("%w: knn: k must be >= 1, got %d", ErrInvalidModel, m.K)
	}
	if len(m.Samples) == 0 {
		return fmt.Errorf("%w: knn: no samples", ErrInvalidModel)
	}
	if len(m.Samples) != len(m.Labels) {
		return fmt.Errorf("%w: knn: %d samples but %d labels", ErrInvalidModel, len(m.Samples), len(m.Labels))
	}
	dim := len(m.Samples[0])
	for i, s := range m.Samples {
		if len(s) != dim {
			return fmt.Errorf("%w: knn: sample %d has dimension %d, want %d", ErrInvalidModel, i, len(s), dim)
		}
	}
	return nil
}

// Dim returns the input dimension the classifier expects.
func (m *KNN) Dim() int { return len(m.Samples[0]) }

// Predict returns the majority label among the k nearest samples to x.
func (m *KNN) Predict(x []float32) (int, error) {
	if len(x) != m.Dim() {
		return 0, fmt.Errorf("%w: knn: input dimension %d, want %d", ErrInvalidModel, len(x), m.Dim())
	}

	type neighbour struct {
		idx  int
		dist float32
	}
	ns := make([]neighbour, len(m.Samples))
	for i, s := range m.Samples {
		var d float32
		for j, v := range s {
			diff := v - x[j]
			d += diff * diff
		}
		ns[i] = neighbour{idx: i, dist: d}
	}
	// Stable so equidistant samples keep training order.
	slices.SortStableFunc(ns, func(a, b neighbour) int {
		switch {
		case a.dist < b.dist:
			return -1
		case a.dist > b.dist:
			return 1
		}
		return 0
	})

	k := min(m.K, len(ns))
	votes := make(map[int]int, k)
	for _, n := range ns[:k] {
		votes[m.Labels[n.idx]]++
	}
	best, bestVotes := 0, -1
	for label, v := range votes {
		if v > bestVotes || (v == bestVotes && label < best) {
			best, bestVotes = label, v
		}
	}
	return best, nil
}
