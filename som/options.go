package som

import "math"

// Defaults (single source of truth for zero-option behavior).
const (
	// DefaultLearningRate is the initial learning rate; it decays linearly to 0.
	DefaultLearningRate = 0.5

	// DefaultRadiusFactor scales the variance of the lattice distance matrix
	// into the initial neighborhood radius. By Chebyshev's inequality
	// 1.75 variances cover roughly two thirds of node pairs.
	DefaultRadiusFactor = 1.75

	// DefaultRadiusDecay is k in radius = radius₀·exp(-k·t/T).
	DefaultRadiusDecay = 3.0
)

const (
	panicLearningRateInvalid = "som: WithLearningRate: rate must be finite and > 0"
	panicRadiusFactorInvalid = "som: WithRadiusFactor: factor must be finite and >= 0"
	panicRadiusDecayInvalid  = "som: WithRadiusDecay: decay must be finite and >= 0"
)

// Options holds trainer hyper-parameters. Use DefaultOptions and Option
// constructors rather than filling it by hand.
type Options struct {
	LearningRate float64
	RadiusFactor float64
	RadiusDecay  float64
}

// Option mutates Options. Constructors panic only on nonsensical values
// (programmer error).
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		LearningRate: DefaultLearningRate,
		RadiusFactor: DefaultRadiusFactor,
		RadiusDecay:  DefaultRadiusDecay,
	}
}

// WithLearningRate sets the initial learning rate.
func WithLearningRate(rate float64) Option {
	if !finite(rate) || rate <= 0 {
		panic(panicLearningRateInvalid)
	}
	return func(o *Options) { o.LearningRate = rate }
}

// WithRadiusFactor sets the multiplier applied to the lattice distance
// variance to obtain the initial radius.
func WithRadiusFactor(factor float64) Option {
	if !finite(factor) || factor < 0 {
		panic(panicRadiusFactorInvalid)
	}
	return func(o *Options) { o.RadiusFactor = factor }
}

// WithRadiusDecay sets the exponential decay constant of the radius.
func WithRadiusDecay(decay float64) Option {
	if !finite(decay) || decay < 0 {
		panic(panicRadiusDecayInvalid)
	}
	return func(o *Options) { o.RadiusDecay = decay }
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
