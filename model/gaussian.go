package model

// Gaussian is the observation model for continuous outcomes seen through an
// identity link. Sigma2 is the observation noise variance.
type Gaussian struct {
	Sigma2 float64
}

// Predict is the identity link.
func (g Gaussian) Predict(m float64) float64 {
	return m
}

// Gains returns the single Kalman gain
//
//	k = (w + v) / (w + v + sigma2)
//
// used both for the mean and the variance update.
func (g Gaussian) Gains(w, v float64) (meanGain, varGain float64) {
	k := (w + v) / (w + v + g.Sigma2)
	return k, k
}

// InitialVariance seeds w0 with sigma2.
func (g Gaussian) InitialVariance() float64 {
	return g.Sigma2
}
