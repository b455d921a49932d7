package fvad

// noise.go implements the minimum-statistics noise-floor tracker. Per
// band it keeps a 16-deep ring of recent feature values, tracks a
// slow noise-floor mean, and nudges the first Gaussian's noise mean
// toward the current feature.
//
// This step only runs on frames that clear kMinEnergy; it is skipped
// entirely on the silence short-circuit path in decision.go.
func updateNoiseModel(state *detectorState, features [kNumChannels]int16) {
	for ch := 0; ch < kNumChannels; ch++ {
		offset := ch * kMinValueVectorLen
		ring := state.lowValueVector[offset : offset+kMinValueVectorLen]
		ages := state.indexVector[offset : offset+kMinValueVectorLen]

		minVal := features[ch]
		for _, v := range ring {
			if v < minVal {
				minVal = v
			}
		}

		for j := kMinValueVectorLen - 1; j > 0; j-- {
			ring[j] = ring[j-1]
			ages[j] = ages[j-1] + 1
		}
		ring[0] = features[ch]
		ages[0] = 0

		if minVal < state.meanValue[ch] {
			state.meanValue[ch] = int16((int32(state.meanValue[ch])*31 + int32(minVal)) >> 5)
		} else {
			state.meanValue[ch] = int16((int32(state.meanValue[ch])*63 + int32(minVal)) >> 6)
		}

		delta := int16((int32(features[ch]-state.noiseMeans[ch*2]) * kNoiseUpdateConst) >> 15)
		state.noiseMeans[ch*2] += delta
		state.noiseMeans[ch*2+1] += delta >> 1
	}

	state.frameCounter++
}
