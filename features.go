package fvad

// features.go implements the high-pass DC-removal filter and the
// six-band sub-band log-energy feature extractor: bands are built by
// sample partitioning, not by a band-pass filter cascade.

const kLogConst int32 = 1500

// highPassFilter removes DC and rumble from an 8 kHz signal in place.
// state[0] holds the last input sample, state[1] the last output
// sample; both are carried across calls and zeroed by reset.
func highPassFilter(in []int16, out []int16, state []int16) {
	for i, x := range in {
		tmp32 := int32(x) - int32(state[0])
		tmp32 += (int32(state[1]) * 31000) >> 15

		tmp16 := satW32ToW16(tmp32)
		state[0] = x
		state[1] = tmp16
		out[i] = tmp16
	}
}

// bandEnergy sums squared samples right-shifted by 8 to keep the
// accumulator within range for frames up to 240 samples.
func bandEnergy(data []int16) int32 {
	var energy int32
	for _, x := range data {
		energy += (int32(x) * int32(x)) >> 8
	}
	return energy
}

// calculateFeatures high-pass-filters in, splits it into kNumChannels
// contiguous sub-bands by sample partitioning (band i spans
// [i*bandSize, (i+1)*bandSize), the final band absorbing the
// remainder), and fills features with each band's Log2Q8 energy. It
// returns the total-power indicator used to gate adaptation.
func calculateFeatures(state *detectorState, in []int16, features *[kNumChannels]int16) int16 {
	hp := make([]int16, len(in))
	highPassFilter(in, hp, state.hpFilterState[:2])

	bandSize := len(hp) / kNumChannels
	if bandSize < 1 {
		bandSize = 1
	}

	var totalEnergy int32
	for i := 0; i < kNumChannels; i++ {
		start := i * bandSize
		end := start + bandSize
		if i == kNumChannels-1 || end > len(hp) {
			end = len(hp)
		}
		if start >= len(hp) {
			features[i] = 0
			continue
		}

		energy := bandEnergy(hp[start:end])
		totalEnergy += energy
		features[i] = log2Q8(energy + kLogConst)
	}

	return satW32ToW16(totalEnergy >> 8)
}
