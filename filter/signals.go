package filter

import "gonum.org/v1/gonum/mat"

// Signals bundles the five trials x cues signal arrays recorded by Run.
type Signals struct {
	// Predictions holds the latent mean estimate prior to each trial.
	Predictions *mat.Dense
	// Volatility holds the volatility estimate prior to each trial.
	Volatility *mat.Dense
	// LearningRate is the mean gain applied to the prediction error. The
	// binary model reports sqrt(w+v) here, which is unbounded above and not
	// on the same scale as the (0,1) Kalman gain reported by the Gaussian
	// model.
	LearningRate *mat.Dense
	// PredictionError is the difference between the outcome and the
	// predicted outcome.
	PredictionError *mat.Dense
	// VolatilityPredictionError is the discrepancy term driving the
	// volatility update.
	VolatilityPredictionError *mat.Dense
}

// NewSignals returns a zero-initialized signal bundle.
func NewSignals(trials, cues int) *Signals {
	return &Signals{
		Predictions:               mat.NewDense(trials, cues, nil),
		Volatility:                mat.NewDense(trials, cues, nil),
		LearningRate:              mat.NewDense(trials, cues, nil),
		PredictionError:           mat.NewDense(trials, cues, nil),
		VolatilityPredictionError: mat.NewDense(trials, cues, nil),
	}
}
