package fvad

// resample.go implements the downsampling path: a first-order IIR +
// 2-tap averaging for every 2:1 step (16→8, 32→16), and a 6-tap
// averaging decimator with a one-pole IIR for the 48→8 path. This is
// a simplified contract chosen over a full polyphase decimator.

// resample48State is the 48→8 kHz resampler's fixed-shape scratch
// struct. Only s168[0] is touched by the simplified averaging path
// below; the remaining fields are reserved for a future
// higher-fidelity polyphase implementation.
type resample48State struct {
	s4848 [16]int32
	s4832 [8]int32
	s3216 [8]int32
	s168  [8]int32
}

func (r *resample48State) reset() {
	*r = resample48State{}
}

// downsampleBy2 halves the sample rate of in using a 2-tap average
// followed by a one-pole IIR low-pass, saturating to int16. state is
// a single carried word; out must have length len(in)/2.
func downsampleBy2(in []int16, out []int16, state *int32) {
	half := len(in) / 2
	for i := 0; i < half; i++ {
		sum := int32(in[2*i]) + int32(in[2*i+1])
		avg := (sum + 1) >> 1

		avg = (avg + *state) >> 1
		*state = avg

		out[i] = satW32ToW16(avg)
	}
}

// resample48kHzTo8kHz decimates a 480-sample (10 ms) chunk of 48 kHz
// audio to 80 samples at 8 kHz by averaging consecutive runs of six
// samples (with rounding) and passing the result through a one-pole
// IIR carried in state.s168[0].
func resample48kHzTo8kHz(in []int16, out []int16, state *resample48State) {
	const decim = 6
	n := len(in) / decim

	for i := 0; i < n; i++ {
		var sum int32
		for k := 0; k < decim; k++ {
			sum += int32(in[i*decim+k])
		}
		sum = (sum + decim/2) / decim

		sum = (sum + state.s168[0]) >> 1
		state.s168[0] = sum

		out[i] = satW32ToW16(sum)
	}
}
