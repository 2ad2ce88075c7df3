// Package simulate generates synthetic outcome sequences from volatile
// environments. The matrices it produces are suitable inputs for the filters
// in the parent package: SwitchingBernoulli for the binary variant,
// VolatileRandomWalk for the continuous one. All generators are deterministic
// for a given seed; cues are drawn from independent streams so that adding a
// column never changes the others.
package simulate

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// SwitchingBernoulli returns a trials x cues matrix of binary outcomes whose
// underlying reward probability jumps between the given levels every
// blockLen trials, cycling through levels in order. This is the volatile
// probabilistic switching task: the latent probability is piecewise constant
// and the switches are what the volatility estimate should pick up.
func SwitchingBernoulli(trials, cues, blockLen int, levels []float64, seed uint64) *mat.Dense {
	out := mat.NewDense(trials, cues, nil)
	for cue := 0; cue < cues; cue++ {
		src := rand.NewPCG(seed, uint64(cue))
		for t := 0; t < trials; t++ {
			level := levels[(t/blockLen)%len(levels)]
			b := distuv.Bernoulli{P: level, Src: src}
			out.Set(t, cue, b.Rand())
		}
	}
	return out
}

// VolatileRandomWalk returns a trials x cues matrix of noisy observations of
// a latent Gaussian random walk. The walk normally steps with standard
// deviation processStd; every burstEvery trials it takes a single step with
// standard deviation burstStd instead, producing the volatility bursts the
// continuous filter is meant to track. Observations add Gaussian noise with
// standard deviation noiseStd. A burstEvery <= 0 disables bursts.
func VolatileRandomWalk(trials, cues int, processStd, burstStd, noiseStd float64, burstEvery int, seed uint64) *mat.Dense {
	out := mat.NewDense(trials, cues, nil)
	for cue := 0; cue < cues; cue++ {
		src := rand.NewPCG(seed, uint64(cue))
		step := distuv.Normal{Mu: 0, Sigma: processStd, Src: src}
		burst := distuv.Normal{Mu: 0, Sigma: burstStd, Src: src}
		noise := distuv.Normal{Mu: 0, Sigma: noiseStd, Src: src}

		var x float64
		for t := 0; t < trials; t++ {
			if burstEvery > 0 && t > 0 && t%burstEvery == 0 {
				x += burst.Rand()
			} else {
				x += step.Rand()
			}
			out.Set(t, cue, x+noise.Rand())
		}
	}
	return out
}
