package fvad

// core.go holds the model tables, the mode-dependent threshold rows,
// and detectorState: the mutable record a Detector owns. The tables
// here are package-level and read-only; every Detector instance reads
// them. Of the per-instance model copies, only detectorState.noiseMeans
// is adapted; noiseStds keeps its prior values until reset.

const (
	kNumChannels  = 6
	kNumGaussians = 2
	kTableSize    = kNumChannels * kNumGaussians // 12

	kMinEnergy  int16 = 10
	kInitCheck        = 42
	kDefaultMode      = 0

	kNoiseUpdateConst int32 = 655 // Q15 ≈ 0.02
	kMinValueVectorLen      = 16  // depth of the min-statistics ring per band
)

// kNoiseDataWeights and kSpeechDataWeights are the two-Gaussian mixture
// weights (Q7), immutable for the life of the process.
var kNoiseDataWeights = [kTableSize]int16{34, 62, 72, 66, 53, 25, 94, 66, 56, 62, 75, 103}
var kSpeechDataWeights = [kTableSize]int16{48, 82, 45, 87, 50, 47, 80, 46, 83, 41, 78, 81}

// kNoiseDataMeans/kNoiseDataStds seed the mutable noise model at
// create/reset time; kSpeechDataMeans/kSpeechDataStds are copied once
// and never adapted (speech-model adaptation is out of scope).
var kNoiseDataMeans = [kTableSize]int16{6738, 4892, 7065, 6715, 6771, 3369, 7646, 3863, 7820, 7266, 5020, 4362}
var kSpeechDataMeans = [kTableSize]int16{8306, 10085, 10078, 11823, 11843, 6309, 9473, 9571, 10879, 7581, 8180, 7483}
var kNoiseDataStds = [kTableSize]int16{378, 1064, 493, 582, 688, 593, 474, 697, 475, 277, 1198, 1106}
var kSpeechDataStds = [kTableSize]int16{555, 505, 567, 524, 585, 1231, 509, 828, 492, 1540, 1079, 850}

// modeParams is one row of the mode-dependent threshold table.
type modeParams struct {
	overHangMax1 int16
	overHangMax2 int16
	individual   int16 // local, per-band threshold; not gated on (see decision.go)
	total        int16 // global LLR threshold
}

// kModeTable holds the four aggressiveness-mode profiles.
var kModeTable = [4]modeParams{
	{overHangMax1: 8, overHangMax2: 14, individual: 24, total: 57},
	{overHangMax1: 6, overHangMax2: 9, individual: 21, total: 48},
	{overHangMax1: 4, overHangMax2: 5, individual: 24, total: 57},
	{overHangMax1: 2, overHangMax2: 2, individual: 28, total: 66},
}

// detectorState is the mutable record a Detector owns. Fields are
// grouped by concern: model arrays, min-statistics state, filter
// state, decision state, mode params.
type detectorState struct {
	sampleRate int
	mode       int
	initFlag   int

	noiseMeans  [kTableSize]int16
	noiseStds   [kTableSize]int16
	speechMeans [kTableSize]int16
	speechStds  [kTableSize]int16

	lowValueVector [kMinValueVectorLen * kNumChannels]int16
	indexVector    [kMinValueVectorLen * kNumChannels]int16
	meanValue      [kNumChannels]int16

	downsamplingFilterStates [4]int32
	state48To8               resample48State
	hpFilterState            [4]int16 // only [0],[1] used; sized to match the filter-state vector's nominal width

	overHang     int16
	numOfSpeech  int16
	frameCounter int32
	lastDecision int

	// mode parameter slots: length 3, plus an in-use index slot 0;
	// only slot 0 is ever read or written by this package.
	overHangMax1 [3]int16
	overHangMax2 [3]int16
	individual   [3]int16
	total        [3]int16
}

// newDetectorState allocates and resets a fresh detectorState.
func newDetectorState() *detectorState {
	s := &detectorState{}
	s.reset()
	return s
}

// reset re-seeds all mutable state to priors: model means/stds from
// the constant tables, filter and decision state to zero, sample rate
// to 8000, and mode to the default profile. This is the single place
// both create and Detector.Reset funnel through.
func (s *detectorState) reset() {
	s.sampleRate = 8000
	s.mode = kDefaultMode

	s.noiseMeans = kNoiseDataMeans
	s.speechMeans = kSpeechDataMeans
	s.noiseStds = kNoiseDataStds
	s.speechStds = kSpeechDataStds

	for i := range s.lowValueVector {
		s.lowValueVector[i] = 10000
		s.indexVector[i] = 0
	}
	for i := range s.meanValue {
		s.meanValue[i] = 1600
	}

	s.downsamplingFilterStates = [4]int32{}
	s.state48To8.reset()
	s.hpFilterState = [4]int16{}

	s.overHang = 0
	s.numOfSpeech = 0
	s.frameCounter = 0
	s.lastDecision = 0

	s.setMode(kDefaultMode)
	s.initFlag = kInitCheck
}

// setMode copies the selected aggressiveness profile into slot 0 of
// the mode-parameter arrays. It never touches adaptive state.
func (s *detectorState) setMode(mode int) error {
	if mode < 0 || mode > 3 {
		return ErrInvalidMode
	}

	row := kModeTable[mode]
	s.mode = mode
	s.overHangMax1[0] = row.overHangMax1
	s.overHangMax2[0] = row.overHangMax2
	s.individual[0] = row.individual
	s.total[0] = row.total
	return nil
}

// isValidSampleRate reports whether rate is one of the four legal
// VAD sample rates.
func isValidSampleRate(rate int) bool {
	switch rate {
	case 8000, 16000, 32000, 48000:
		return true
	default:
		return false
	}
}

// ValidRateAndFrameLength reports whether frameLength (in samples) is
// one of the three legal 10/20/30 ms frame sizes for rate.
func ValidRateAndFrameLength(rate, frameLength int) bool {
	if !isValidSampleRate(rate) {
		return false
	}
	return frameLength == rate/100 || frameLength == rate/50 || frameLength == 3*rate/100
}
