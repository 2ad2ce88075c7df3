// Package model implements the observation models of the volatile Kalman
// filter, see Piray & Daw, "A simple model for learning in volatile
// environments", PLOS Computational Biology 2020
// https://doi.org/10.1371/journal.pcbi.1007963.
// The recursive driver in the filter package is written against the
// ObservationModel interface; the binary and continuous variants differ only
// in their outcome prediction and gain equations.
package model

// ObservationModel maps the latent mean estimate to an expected outcome and
// provides the gains of the per-trial variational update.
type ObservationModel interface {
	// Predict returns the expected outcome for the current mean estimate.
	Predict(m float64) float64
	// Gains returns the mean gain and the variance gain given the current
	// posterior variance w and volatility estimate v. The mean gain scales
	// the prediction error in the mean update and is recorded as the
	// learning rate signal. The variance gain drives the variance update.
	Gains(w, v float64) (meanGain, varGain float64)
	// InitialVariance returns the observation noise parameter, which also
	// seeds the initial posterior variance w0.
	InitialVariance() float64
}
