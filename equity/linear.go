package equity

import (
	"errors"

	"github.com/samber/lo"

	"github.com/domino14/twenty48/game"
)

// ErrWeightLength is returned when a weight vector's length does not
// match the feature count.
var ErrWeightLength = errors.New("weight vector length does not match feature count")

// DefaultFeatures returns the canonical ordered feature list. Weight
// vectors are always interpreted against this order.
func DefaultFeatures() []Feature {
	return []Feature{
		Monotonicity{},
		Smoothness{},
		FreeCells{},
		MaxTile{},
		FreedomDegree{},
	}
}

// NumFeatures is the length of the canonical feature list.
func NumFeatures() int {
	return len(DefaultFeatures())
}

// FeatureNames returns the names of the canonical features, in order.
func FeatureNames() []string {
	return lo.Map(DefaultFeatures(), func(f Feature, _ int) string {
		return f.Name()
	})
}

// DefaultWeights is a hand-tuned starting point for the canonical
// feature list, usable before any optimization has run.
var DefaultWeights = []float64{2.0, 1.0, 3.0, 1.0, 200.0}

// LinearEvaluator combines a feature list with a weight vector of the
// same length into a weighted sum.
type LinearEvaluator struct {
	features []Feature
	weights  []float64
}

// NewLinearEvaluator creates an evaluator over the given features. A nil
// feature list means the canonical DefaultFeatures list.
func NewLinearEvaluator(features []Feature, weights []float64) (*LinearEvaluator, error) {
	if features == nil {
		features = DefaultFeatures()
	}
	e := &LinearEvaluator{features: features}
	if err := e.SetWeights(weights); err != nil {
		return nil, err
	}
	return e, nil
}

// Evaluate returns the weighted sum of all feature values for the state.
func (e *LinearEvaluator) Evaluate(g *game.Game) float64 {
	total := 0.0
	for i, f := range e.features {
		total += e.weights[i] * f.Value(g)
	}
	return total
}

// Weights returns a copy of the current weight vector.
func (e *LinearEvaluator) Weights() []float64 {
	w := make([]float64, len(e.weights))
	copy(w, e.weights)
	return w
}

// SetWeights replaces the weight vector. The length must match the
// feature count.
func (e *LinearEvaluator) SetWeights(weights []float64) error {
	if len(weights) != len(e.features) {
		return ErrWeightLength
	}
	e.weights = make([]float64, len(weights))
	copy(e.weights, weights)
	return nil
}
