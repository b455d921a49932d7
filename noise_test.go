package fvad

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUpdateNoiseModelAdvancesFrameCounter(t *testing.T) {
	state := newDetectorState()
	var features [kNumChannels]int16
	for i := range features {
		features[i] = 2000
	}

	updateNoiseModel(state, features)
	require.EqualValues(t, 1, state.frameCounter)

	updateNoiseModel(state, features)
	require.EqualValues(t, 2, state.frameCounter)
}

func TestUpdateNoiseModelShiftsRingAndTracksAge(t *testing.T) {
	state := newDetectorState()
	var features [kNumChannels]int16
	features[0] = 999

	updateNoiseModel(state, features)
	require.EqualValues(t, 999, state.lowValueVector[0])
	require.EqualValues(t, 0, state.indexVector[0])
	require.EqualValues(t, 1, state.indexVector[1])
}

func TestUpdateNoiseModelNudgesNoiseMeanTowardFeature(t *testing.T) {
	state := newDetectorState()
	before := state.noiseMeans[0]

	var features [kNumChannels]int16
	features[0] = before + 5000 // well above the current noise mean

	updateNoiseModel(state, features)
	require.Greater(t, state.noiseMeans[0], before)
}

func TestUpdateNoiseModelConvergesTowardSteadyInput(t *testing.T) {
	state := newDetectorState()
	var features [kNumChannels]int16
	for i := range features {
		features[i] = state.noiseMeans[i*2] + 3000
	}

	for i := 0; i < 500; i++ {
		updateNoiseModel(state, features)
	}

	// the adaptive mean should have moved well past its prior toward the
	// steady input, without overshooting it
	require.Greater(t, state.noiseMeans[0], kNoiseDataMeans[0])
	require.LessOrEqual(t, state.noiseMeans[0], features[0])
}
