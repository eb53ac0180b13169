package som_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/kohonen/som"
)

func TestDefaultOptions(t *testing.T) {
	o := som.DefaultOptions()
	assert.Equal(t, som.DefaultLearningRate, o.LearningRate)
	assert.Equal(t, som.DefaultRadiusFactor, o.RadiusFactor)
	assert.Equal(t, som.DefaultRadiusDecay, o.RadiusDecay)
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { som.WithLearningRate(0) })
	assert.Panics(t, func() { som.WithLearningRate(-0.1) })
	assert.Panics(t, func() { som.WithLearningRate(math.NaN()) })
	assert.Panics(t, func() { som.WithRadiusFactor(-1) })
	assert.Panics(t, func() { som.WithRadiusFactor(math.Inf(1)) })
	assert.Panics(t, func() { som.WithRadiusDecay(-2) })

	assert.NotPanics(t, func() { som.WithRadiusFactor(0) })
	assert.NotPanics(t, func() { som.WithRadiusDecay(0) })
}
