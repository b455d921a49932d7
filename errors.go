package fvad

import "errors"

// Sentinel errors returned by Detector. All of them are caller-input
// errors: on any of them the detector's state is left untouched.
var (
	// ErrInvalidMode is returned by SetMode for any mode outside 0..3.
	ErrInvalidMode = errors.New("fvad: mode must be 0, 1, 2, or 3")

	// ErrInvalidSampleRate is returned by SetSampleRate for any rate
	// other than 8000, 16000, 32000, or 48000 Hz.
	ErrInvalidSampleRate = errors.New("fvad: sample rate must be 8000, 16000, 32000, or 48000 Hz")

	// ErrInvalidFrameLength is returned by Process/ProcessBytes when the
	// frame length does not correspond to 10, 20, or 30 ms at the
	// configured sample rate.
	ErrInvalidFrameLength = errors.New("fvad: frame length must correspond to 10, 20, or 30 ms at the configured sample rate")

	// ErrNotInitialized is returned by Process/ProcessBytes if called on
	// a Detector that was never initialized (should be unreachable
	// through the exported constructors).
	ErrNotInitialized = errors.New("fvad: detector not initialized")

	// ErrBufferTooSmall is returned by ProcessBytes when a byte buffer
	// has an odd length and therefore cannot be reinterpreted as int16
	// samples.
	ErrBufferTooSmall = errors.New("fvad: buffer length must be a multiple of 2 bytes")
)
