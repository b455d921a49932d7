package fvad

// decision.go dispatches a frame to 8 kHz and runs the decision core:
// per-band Gaussian-mixture scores, a global log-likelihood-ratio
// threshold, and hangover hysteresis, using core.go's kModeTable for
// the mode-dependent numeric constants.

// process runs one frame through the full pipeline and returns the
// binary decision. frame must already have passed
// ValidRateAndFrameLength against state.sampleRate.
func process(state *detectorState, frame []int16) (int, error) {
	nb, err := downsampleTo8kHz(state, frame)
	if err != nil {
		return 0, err
	}

	var features [kNumChannels]int16
	totalPower := calculateFeatures(state, nb, &features)

	if totalPower < kMinEnergy {
		state.overHang = 0
		state.lastDecision = 0
		return 0, nil
	}

	vad := gmmDecision(state, features)
	updateNoiseModel(state, features)

	state.lastDecision = vad
	return vad, nil
}

// downsampleTo8kHz brings frame to 8 kHz according to state.sampleRate,
// reusing the detector's carried filter state across calls.
func downsampleTo8kHz(state *detectorState, frame []int16) ([]int16, error) {
	switch state.sampleRate {
	case 8000:
		return frame, nil
	case 16000:
		out := make([]int16, len(frame)/2)
		downsampleBy2(frame, out, &state.downsamplingFilterStates[0])
		return out, nil
	case 32000:
		wb := make([]int16, len(frame)/2)
		downsampleBy2(frame, wb, &state.downsamplingFilterStates[0])
		nb := make([]int16, len(wb)/2)
		downsampleBy2(wb, nb, &state.downsamplingFilterStates[1])
		return nb, nil
	case 48000:
		const chunk48 = 480
		const chunk8 = 80
		n := len(frame) / chunk48
		nb := make([]int16, n*chunk8)
		for i := 0; i < n; i++ {
			in := frame[i*chunk48 : (i+1)*chunk48]
			out := nb[i*chunk8 : (i+1)*chunk8]
			resample48kHzTo8kHz(in, out, &state.state48To8)
		}
		return nb, nil
	default:
		return nil, ErrInvalidSampleRate
	}
}

// gmmDecision scores every band against the noise and speech mixtures,
// accumulates the global log-likelihood ratio, and applies the
// threshold + hangover rule for the detector's active mode (slot 0).
func gmmDecision(state *detectorState, features [kNumChannels]int16) int {
	var h0, h1 int32

	for ch := 0; ch < kNumChannels; ch++ {
		n0 := ch * 2
		n1 := n0 + 1

		noiseScore := gaussianProbability(features[ch], state.noiseMeans[n0], state.noiseStds[n0], kNoiseDataWeights[n0]) +
			gaussianProbability(features[ch], state.noiseMeans[n1], state.noiseStds[n1], kNoiseDataWeights[n1])
		speechScore := gaussianProbability(features[ch], state.speechMeans[n0], state.speechStds[n0], kSpeechDataWeights[n0]) +
			gaussianProbability(features[ch], state.speechMeans[n1], state.speechStds[n1], kSpeechDataWeights[n1])

		h0 += noiseScore
		h1 += speechScore
	}

	llr := h1 - h0

	var vad int
	if llr >= int32(state.total[0]) {
		vad = 1
		state.overHang = state.overHangMax1[0]
	} else if state.overHang > 0 {
		vad = 1
		state.overHang--
	} else {
		vad = 0
	}

	return vad
}
