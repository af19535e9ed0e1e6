// Package model loads the trained scaler and classifier artifacts and hides
// their on-disk format behind small capability interfaces.
package model

import "errors"

// ErrUnavailable is returned when inference is attempted without loaded
// artifacts. Loading happens once at startup; there is no retry at
// request time.
var ErrUnavailable = errors.New("model artifacts not loaded")

// Scaler transforms a raw feature vector into the scaled space the
// classifier was trained on.
type Scaler interface {
	Transform(vec []float64) []float64
}

// Classifier produces a binary class and a per-class probability
// distribution for a scaled feature vector. probs[0] is the non-diabetic
// probability, probs[1] the diabetic probability; they sum to 1.
type Classifier interface {
	Predict(vec []float64) (class int, probs [2]float64)
}
