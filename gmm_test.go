package fvad

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestGaussianProbabilityPeaksAtMean(t *testing.T) {
	atMean := gaussianProbability(6738, 6738, 378, 100)
	offMean := gaussianProbability(6738+2000, 6738, 378, 100)
	require.Greater(t, atMean, offMean)
}

func TestGaussianProbabilityNeverNegative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		x := rapid.Int16().Draw(rt, "x")
		mean := rapid.Int16().Draw(rt, "mean")
		std := rapid.Int16Range(0, 32767).Draw(rt, "std")
		w := rapid.Int16Range(0, 127).Draw(rt, "w")

		got := gaussianProbability(x, mean, std, w)
		require.GreaterOrEqual(t, got, int32(0))
	})
}

func TestGaussianProbabilityFloorsZeroStd(t *testing.T) {
	require.NotPanics(t, func() {
		gaussianProbability(100, 0, 0, 50)
	})
}

func TestGaussianProbabilityIsDeterministic(t *testing.T) {
	a := gaussianProbability(1234, 6738, 378, 34)
	b := gaussianProbability(1234, 6738, 378, 34)
	require.Equal(t, a, b)
}
