package model

import "math"

// Binary is the observation model for Bernoulli outcomes seen through a
// logistic link. Omega is the observation noise parameter.
type Binary struct {
	Omega float64
}

// Predict returns the outcome probability
// sigmoid(m) = 1 / (1 + exp(-m)).
func (b Binary) Predict(m float64) float64 {
	return 1. / (1. + math.Exp(-m))
}

// Gains returns the two gains of the binary update. Under the Laplace
// approximation of the Bernoulli likelihood the mean update takes a
// Newton-like step
//
//	meanGain = sqrt(w + v)
//
// while the variance update keeps the Kalman form
//
//	varGain = (w + v) / (w + v + omega)
//
// These are different quantities and must not be conflated; the asymmetry is
// part of the update, not an implementation accident.
func (b Binary) Gains(w, v float64) (meanGain, varGain float64) {
	meanGain = math.Sqrt(w + v)
	varGain = (w + v) / (w + v + b.Omega)
	return meanGain, varGain
}

// InitialVariance seeds w0 with omega.
func (b Binary) InitialVariance() float64 {
	return b.Omega
}
