// Package vkf implements the volatile Kalman filter (VKF), a recursive
// approximate Bayesian filter that jointly tracks a latent scalar state and
// its time-varying volatility from a sequence of outcomes, one trial at a
// time. See Piray & Daw, "A simple model for learning in volatile
// environments", PLOS Computational Biology 2020
// https://doi.org/10.1371/journal.pcbi.1007963.
//
// Two variants are provided. BinaryFilter handles Bernoulli outcomes through
// a logistic link, ContinuousFilter handles Gaussian outcomes through an
// identity link. Both run the shared recursion from the filter package;
// the variant-specific equations live in the model package.
package vkf

import (
	"gonum.org/v1/gonum/mat"

	"github.com/payampiray/VKF/filter"
	"github.com/payampiray/VKF/model"
)

// BinaryFilter runs the binary VKF over a trials x cues outcome matrix.
// Outcomes are read as 0/1. Columns are filtered independently with
// identical parameters. It returns the per-trial predictions together with
// the full signal bundle; the predictions matrix is the same array as
// signals.Predictions.
//
// lambda is the volatility learning rate in (0,1), v0 > 0 the initial
// volatility and omega > 0 the observation noise parameter. An out-of-domain
// parameter returns an InvalidParameterError before any trial is processed.
func BinaryFilter(outcomes mat.Matrix, lambda, v0, omega float64) (*mat.Dense, *filter.Signals, error) {
	if err := validate(lambda, v0, "omega", omega); err != nil {
		return nil, nil, err
	}
	sig := filter.Run(outcomes, lambda, v0, model.Binary{Omega: omega})
	return sig.Predictions, sig, nil
}

// ContinuousFilter runs the continuous VKF over a trials x cues outcome
// matrix of real-valued outcomes. Parameters are as for BinaryFilter with
// sigma2 > 0 the observation noise variance.
func ContinuousFilter(outcomes mat.Matrix, lambda, v0, sigma2 float64) (*mat.Dense, *filter.Signals, error) {
	if err := validate(lambda, v0, "sigma2", sigma2); err != nil {
		return nil, nil, err
	}
	sig := filter.Run(outcomes, lambda, v0, model.Gaussian{Sigma2: sigma2})
	return sig.Predictions, sig, nil
}

// validate checks the parameter domains shared by both variants. Failing
// fast here guarantees an invalid call produces no partial results.
//
// Numeric degeneracy during filtering (overflow in the exponential, w or v
// driven non-positive by adversarial inputs) is deliberately not guarded;
// NaN and Inf propagate into the signal bundle.
func validate(lambda, v0 float64, noiseName string, noise float64) error {
	if lambda <= 0 || lambda >= 1 {
		return InvalidParameterError{Name: "lambda", Value: lambda}
	}
	if v0 <= 0 {
		return InvalidParameterError{Name: "v0", Value: v0}
	}
	if noise <= 0 {
		return InvalidParameterError{Name: noiseName, Value: noise}
	}
	return nil
}
