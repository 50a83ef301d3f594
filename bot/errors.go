// Package bot implements the Schnapsen playing policies, most importantly
// RdeepML: a Monte-Carlo lookahead that first classifies the opponent's
// style from the tricks played so far and then simulates the opponent with a
// learned policy for that style.
package bot

import "errors"

var (
	// ErrInvalidConfiguration is returned by constructors given unusable
	// settings.
	ErrInvalidConfiguration = errors.New("invalid bot configuration")
	// ErrNoLegalMoves is returned when a policy is asked to move with no
	// legal move available.
	ErrNoLegalMoves = errors.New("no legal moves")
	// ErrEvaluationFailed wraps engine failures during a rollout.
	ErrEvaluationFailed = errors.New("rollout evaluation failed")
	// ErrUnknownArchetype is returned when the classifier yields a label
	// outside the known archetypes.
	ErrUnknownArchetype = errors.New("unknown archetype")
)
