// Package fvad implements a streaming voice activity detector for
// 16-bit linear-PCM audio: a fixed-point port of the classic
// sub-band Gaussian-mixture detector, running entirely on int16/int32
// arithmetic so that a given stream decodes identically on any
// platform.
package fvad

// Detector is a single-stream voice activity detector. It carries its
// own filter and noise-model state between frames and is not safe for
// concurrent use by multiple goroutines; give each stream its own
// Detector.
type Detector struct {
	state *detectorState
}

// NewDetector creates a Detector at the default aggressiveness mode
// (0, the least aggressive) and the default sample rate (8000 Hz).
func NewDetector() *Detector {
	return &Detector{state: newDetectorState()}
}

// New creates a Detector at the given aggressiveness mode (0-3). It is
// a convenience wrapper around NewDetector followed by SetMode.
func New(mode int) (*Detector, error) {
	d := NewDetector()
	if err := d.SetMode(mode); err != nil {
		return nil, err
	}
	return d, nil
}

// SetMode selects one of the four aggressiveness profiles (0 least
// aggressive, 3 most aggressive). It leaves the adaptive noise model
// untouched; only the hangover and threshold parameters change.
func (d *Detector) SetMode(mode int) error {
	return d.state.setMode(mode)
}

// SetSampleRate configures the rate, in Hz, that future frames passed
// to Process/ProcessBytes will be interpreted at. Valid rates are
// 8000, 16000, 32000, and 48000. It does not reset the noise model.
func (d *Detector) SetSampleRate(rate int) error {
	if !isValidSampleRate(rate) {
		return ErrInvalidSampleRate
	}
	d.state.sampleRate = rate
	return nil
}

// Reset restores the Detector to its just-created state: noise and
// speech models reseed from their priors, filter state clears, and the
// sample rate returns to 8000 Hz. The configured mode is preserved.
func (d *Detector) Reset() error {
	mode := d.state.mode
	d.state.reset()
	return d.state.setMode(mode)
}

// Close releases any resources held by the Detector. It exists for API
// symmetry with constructors that acquire external resources; a
// Detector holds none and Close is always nil.
func (d *Detector) Close() error {
	return nil
}

// Process classifies one frame of samples at the Detector's configured
// sample rate, returning true for speech. frame's length must equal
// 10, 20, or 30 ms worth of samples at that rate, or Process returns
// ErrInvalidFrameLength.
func (d *Detector) Process(frame []int16) (bool, error) {
	if d.state.initFlag != kInitCheck {
		return false, ErrNotInitialized
	}
	if !ValidRateAndFrameLength(d.state.sampleRate, len(frame)) {
		return false, ErrInvalidFrameLength
	}

	decision, err := process(d.state, frame)
	if err != nil {
		return false, err
	}
	return decision == 1, nil
}

// ProcessBytes is Process for a little-endian 16-bit PCM byte buffer.
// len(buf) must be even; it is reinterpreted as len(buf)/2 int16
// samples without copying sign-extension behavior across platforms.
func (d *Detector) ProcessBytes(buf []byte) (bool, error) {
	if len(buf)%2 != 0 {
		return false, ErrBufferTooSmall
	}

	frame := make([]int16, len(buf)/2)
	for i := range frame {
		frame[i] = int16(uint16(buf[2*i]) | uint16(buf[2*i+1])<<8)
	}
	return d.Process(frame)
}

// SampleRate reports the Detector's currently configured sample rate.
func (d *Detector) SampleRate() int {
	return d.state.sampleRate
}

// Mode reports the Detector's currently configured aggressiveness mode.
func (d *Detector) Mode() int {
	return d.state.mode
}
