// Package model holds the learned models the adaptive bot consults: the
// opponent-style classifier and the per-archetype behavioural models, plus
// the stores they are loaded from.
//
// Models are trained elsewhere and shipped as JSON documents. Once loaded a
// model is read-only and safe for concurrent use.
package model

import (
	"context"
	"errors"
)

// ClassifierName is the name the opponent classifier is stored under.
const ClassifierName = "KNN_model"

var (
	// ErrModelNotFound is returned when a store has no model under a name.
	ErrModelNotFound = errors.New("model not found")
	// ErrInvalidModel is returned for malformed model documents and for
	// inputs whose dimension does not match the model.
	ErrInvalidModel = errors.New("invalid model")
)

// Classifier maps a state+action vector to an archetype label.
type Classifier interface {
	Predict(x []float32) (int, error)
}

// BehaviourModel scores a state+action vector with the probability that the
// acting player goes on to win.
type BehaviourModel interface {
	WinProbability(x []float32) (float64, error)
}

// Store loads models by name.
type Store interface {
	LoadClassifier(ctx context.Context) (Classifier, error)
	LoadBehaviourModel(ctx context.Context, name string) (BehaviourModel, error)
}
