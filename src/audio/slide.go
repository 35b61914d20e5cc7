package audio

import "math"

// slideThreshold is the envelope level above which an incoming slide note
// chains onto the still-decaying previous note instead of retriggering.
const slideThreshold = 0.01

// slideSnapHz is how close freqCurrent must get to freqTarget before it
// snaps exactly onto it, avoiding an infinite exponential tail.
const slideSnapHz = 0.01

// SlideController glides freqCurrent exponentially toward freqTarget in the
// linear-frequency domain, independent of whether a glide is in progress —
// when freqCurrent already equals freqTarget, step() is a no-op.
type SlideController struct {
	sr float64

	slideTimeMs float64
	k           float64

	freqCurrent float64
	freqTarget  float64
}

func newSlideController(sr float64) *SlideController {
	s := &SlideController{sr: sr, slideTimeMs: 60}
	s.recomputeK()
	return s
}

func (s *SlideController) setSlideTime(ms float64) {
	s.slideTimeMs = clamp(ms, 10, 200)
	s.recomputeK()
}

func (s *SlideController) recomputeK() {
	samples := s.slideTimeMs * s.sr / 1000
	s.k = 1 - math.Exp(-1/samples)
}

// setImmediate jumps freqCurrent and freqTarget to freqHz with no glide.
func (s *SlideController) setImmediate(freqHz float64) {
	s.freqCurrent = freqHz
	s.freqTarget = freqHz
}

// glideTo begins (or redirects) a glide toward freqHz, leaving freqCurrent
// where it is.
func (s *SlideController) glideTo(freqHz float64) {
	s.freqTarget = freqHz
}

// step advances the glide by one sample and returns the frequency to render.
func (s *SlideController) step() float64 {
	s.freqCurrent += (s.freqTarget - s.freqCurrent) * s.k
	if math.Abs(s.freqTarget-s.freqCurrent) < slideSnapHz {
		s.freqCurrent = s.freqTarget
	}
	return s.freqCurrent
}
