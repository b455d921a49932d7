// Package stream layers frame buffering and segment tracking on top of
// a fvad.Detector: callers feed it arbitrarily sized byte chunks and
// get back contiguous speech/silence segments, timestamped against the
// total audio processed so far.
package stream

import (
	"time"

	"github.com/fvad-go/fvad"
)

// Segment describes one contiguous run of frames sharing a decision.
type Segment struct {
	Start    time.Duration
	End      time.Duration
	IsSpeech bool
}

// Processor buffers incoming bytes into fixed-size frames, classifies
// each with a fvad.Detector, and merges consecutive same-decision
// frames into Segments. It is not safe for concurrent use.
type Processor struct {
	det        *fvad.Detector
	sampleRate int
	frameMs    int

	buffer     []byte
	frameSize  int // bytes per frame
	segments   []Segment
	totalBytes int64
}

// New creates a Processor at the given mode, sample rate, and frame
// duration (10, 20, or 30 ms).
func New(mode, sampleRate, frameMs int) (*Processor, error) {
	if !fvad.ValidRateAndFrameLength(sampleRate, sampleRate*frameMs/1000) {
		return nil, fvad.ErrInvalidFrameLength
	}

	det, err := fvad.New(mode)
	if err != nil {
		return nil, err
	}
	if err := det.SetSampleRate(sampleRate); err != nil {
		return nil, err
	}

	frameSize := sampleRate * frameMs / 1000 * 2

	return &Processor{
		det:        det,
		sampleRate: sampleRate,
		frameMs:    frameMs,
		buffer:     make([]byte, 0, frameSize*2),
		frameSize:  frameSize,
		segments:   make([]Segment, 0, 64),
	}, nil
}

// Write appends data to the internal buffer, classifies every complete
// frame it now contains, and returns any segments newly started by
// this call (a run already in progress is extended in place, not
// re-returned).
func (p *Processor) Write(data []byte) ([]Segment, error) {
	p.buffer = append(p.buffer, data...)

	var fresh []Segment

	for len(p.buffer) >= p.frameSize {
		frame := p.buffer[:p.frameSize]

		isSpeech, err := p.det.ProcessBytes(frame)
		if err != nil {
			return nil, err
		}

		start := p.bytesToDuration(p.totalBytes)
		p.totalBytes += int64(p.frameSize)
		end := p.bytesToDuration(p.totalBytes)

		if n := len(p.segments); n > 0 && p.segments[n-1].IsSpeech == isSpeech {
			p.segments[n-1].End = end
		} else {
			seg := Segment{Start: start, End: end, IsSpeech: isSpeech}
			p.segments = append(p.segments, seg)
			fresh = append(fresh, seg)
		}

		p.buffer = p.buffer[p.frameSize:]
	}

	return fresh, nil
}

// Segments returns every segment produced so far.
func (p *Processor) Segments() []Segment {
	return p.segments
}

// SpeechSegments filters Segments to just the speech runs.
func (p *Processor) SpeechSegments() []Segment {
	out := make([]Segment, 0, len(p.segments))
	for _, s := range p.segments {
		if s.IsSpeech {
			out = append(out, s)
		}
	}
	return out
}

// SilenceSegments filters Segments to just the silence runs.
func (p *Processor) SilenceSegments() []Segment {
	out := make([]Segment, 0, len(p.segments))
	for _, s := range p.segments {
		if !s.IsSpeech {
			out = append(out, s)
		}
	}
	return out
}

// Reset clears all buffered bytes and recorded segments and resets the
// underlying detector's adaptive state.
func (p *Processor) Reset() error {
	p.buffer = p.buffer[:0]
	p.segments = p.segments[:0]
	p.totalBytes = 0
	return p.det.Reset()
}

// BufferedBytes reports how many bytes are buffered but not yet
// classified (less than one full frame).
func (p *Processor) BufferedBytes() int {
	return len(p.buffer)
}

// TotalProcessed reports the total number of bytes classified so far.
func (p *Processor) TotalProcessed() int64 {
	return p.totalBytes
}

// TotalDuration reports the total audio duration classified so far.
func (p *Processor) TotalDuration() time.Duration {
	return p.bytesToDuration(p.totalBytes)
}

func (p *Processor) bytesToDuration(n int64) time.Duration {
	samples := n / 2
	seconds := float64(samples) / float64(p.sampleRate)
	return time.Duration(seconds * float64(time.Second))
}
