package fvad

// options.go provides the functional-options constructor for Detector,
// in the style the rest of this package's constructors already follow
// (New takes a mode directly; NewWithOptions layers on top of it for
// callers that want to set the sample rate at construction time too).

// Option configures a Detector at construction time.
type Option func(*Detector) error

// WithMode sets the aggressiveness mode (0-3).
func WithMode(mode int) Option {
	return func(d *Detector) error {
		return d.SetMode(mode)
	}
}

// WithSampleRate sets the sample rate (8000, 16000, 32000, or 48000 Hz).
func WithSampleRate(rate int) Option {
	return func(d *Detector) error {
		return d.SetSampleRate(rate)
	}
}

// NewWithOptions creates a Detector and applies opts in order,
// stopping at the first error.
func NewWithOptions(opts ...Option) (*Detector, error) {
	d := NewDetector()
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Quality creates a Detector in quality mode (0, least aggressive).
func Quality() (*Detector, error) {
	return New(0)
}

// Aggressive creates a Detector in the most aggressive mode (3).
func Aggressive() (*Detector, error) {
	return New(3)
}
