// Package filter implements the recursive driver of the volatile Kalman
// filter. The driver owns the per-cue state, advances it one trial at a time
// and records the per-trial signals; the variant-specific prediction and gain
// equations are delegated to a model.ObservationModel.
package filter

import (
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/payampiray/VKF/model"
)

// State holds the filter state of a single cue: the latent mean estimate m,
// its posterior variance w and the volatility estimate v. A State is a value
// owned by one cue; it is passed through Step and never shared.
type State struct {
	M float64
	W float64
	V float64
}

// Update holds the signals produced by a single Step.
type Update struct {
	LearningRate              float64
	PredictionError           float64
	VolatilityPredictionError float64
}

// Step advances the state by one trial given the observed outcome and the
// volatility learning rate lambda. It returns the posterior state and the
// recorded signals. The volatility update couples the new and previous mean
// estimate through their cross covariance wCov; getting that term wrong
// changes the result silently, so the sequence below follows the derivation
// term by term.
func Step(s State, outcome, lambda float64, om model.ObservationModel) (State, Update) {
	deltaM := outcome - om.Predict(s.M)
	meanGain, varGain := om.Gains(s.W, s.V)

	mNext := s.M + meanGain*deltaM
	wNext := (1 - varGain) * (s.W + s.V)
	// Cross covariance between the new and the previous mean estimate.
	wCov := (1 - varGain) * s.W
	deltaV := (mNext-s.M)*(mNext-s.M) + wNext + s.W - 2*wCov - s.V
	vNext := s.V + lambda*deltaV

	next := State{M: mNext, W: wNext, V: vNext}
	return next, Update{
		LearningRate:              meanGain,
		PredictionError:           deltaM,
		VolatilityPredictionError: deltaV,
	}
}

// Run filters a trials x cues outcome matrix and returns the recorded
// signals. Each cue is an independent filter instance initialized with
// m = 0, w = om.InitialVariance() and v = v0, and runs on its own goroutine,
// writing a disjoint column of the signal matrices. Trials within a cue are
// strictly sequential since trial t is a function of the posterior of trial
// t-1. Identical inputs always produce identical outputs.
//
// Row t of Predictions and Volatility holds the state as of before outcome t
// was incorporated.
func Run(outcomes mat.Matrix, lambda, v0 float64, om model.ObservationModel) *Signals {
	trials, cues := outcomes.Dims()
	sig := NewSignals(trials, cues)

	var wg sync.WaitGroup
	wg.Add(cues)
	for cue := 0; cue < cues; cue++ {
		go func(cue int) {
			defer wg.Done()
			s := State{M: 0, W: om.InitialVariance(), V: v0}
			for t := 0; t < trials; t++ {
				sig.Predictions.Set(t, cue, s.M)
				sig.Volatility.Set(t, cue, s.V)

				var u Update
				s, u = Step(s, outcomes.At(t, cue), lambda, om)

				sig.LearningRate.Set(t, cue, u.LearningRate)
				sig.PredictionError.Set(t, cue, u.PredictionError)
				sig.VolatilityPredictionError.Set(t, cue, u.VolatilityPredictionError)
			}
		}(cue)
	}
	wg.Wait()

	return sig
}
