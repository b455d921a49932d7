package fvad

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHighPassFilterSilenceStaysSilent(t *testing.T) {
	in := make([]int16, 80)
	out := make([]int16, 80)
	state := make([]int16, 2)

	highPassFilter(in, out, state)
	for _, v := range out {
		require.Zero(t, v)
	}
}

func TestHighPassFilterRemovesDC(t *testing.T) {
	in := make([]int16, 400)
	for i := range in {
		in[i] = 5000
	}
	out := make([]int16, 400)
	state := make([]int16, 2)

	highPassFilter(in, out, state)

	// a sustained DC input should decay toward zero well before the end
	require.Less(t, abs16(out[len(out)-1]), abs16(out[10]))
}

func TestBandEnergyZeroForSilence(t *testing.T) {
	require.Zero(t, bandEnergy(make([]int16, 80)))
}

func TestBandEnergyNonNegative(t *testing.T) {
	data := []int16{-100, 200, -300, 400}
	require.GreaterOrEqual(t, bandEnergy(data), int32(0))
}

func TestCalculateFeaturesSilenceYieldsLowEnergy(t *testing.T) {
	state := newDetectorState()
	var features [kNumChannels]int16

	total := calculateFeatures(state, make([]int16, 80), &features)
	require.Less(t, total, kMinEnergy)
}

func TestCalculateFeaturesNonNegativeForEveryBand(t *testing.T) {
	state := newDetectorState()
	var features [kNumChannels]int16

	in := make([]int16, 240)
	for i := range in {
		in[i] = int16((i * 131) % 4000)
	}

	calculateFeatures(state, in, &features)
	for i, f := range features {
		require.GreaterOrEqualf(t, f, int16(0), "band %d should have non-negative log-energy", i)
	}
}

func abs16(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}
