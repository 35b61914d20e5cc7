package audio

import "math"

// cutoffSweepHz is the fixed amount the envelope can open the filter by
// when envMod=1, envValue=1. Not exposed as a parameter.
const cutoffSweepHz = 8000.0

// Filter is a cascade of three one-pole lowpass sections with global
// resonance feedback, giving an 18dB/octave rolloff. The feedback path is
// tanh-limited so the filter stays bounded (BIBO stable) even at
// resonance=1 and self-oscillating.
type Filter struct {
	sr float64

	cutoffHz  float64
	resonance float64

	y1, y2, y3 float64
}

func newFilter(sr float64) *Filter {
	return &Filter{sr: sr, cutoffHz: 1000}
}

func (f *Filter) setCutoff(hz float64) {
	f.cutoffHz = clamp(hz, 20, 20000)
}

func (f *Filter) setResonance(r float64) {
	f.resonance = clamp(r, 0, 1)
}

// render filters one sample of input, modulating the effective cutoff by
// envMod*envValue*cutoffSweepHz as described in SPEC_FULL.md §4.2.
func (f *Filter) render(input, envMod, envValue float64) float64 {
	nyquistCeil := f.sr / 2 * 0.45
	cutoffMod := clamp(f.cutoffHz+envMod*envValue*cutoffSweepHz, 20, nyquistCeil)

	g := 1 - math.Exp(-2*math.Pi*cutoffMod/f.sr)
	fb := f.resonance * fbScale(f.resonance)

	x := input - fb*math.Tanh(f.y3)
	f.y1 += g * (x - f.y1)
	f.y2 += g * (f.y1 - f.y2)
	f.y3 += g * (f.y2 - f.y3)

	if !isFinite(f.y1) || !isFinite(f.y2) || !isFinite(f.y3) {
		f.y1, f.y2, f.y3 = 0, 0, 0
		return 0
	}
	return f.y3
}

func (f *Filter) reset() {
	f.y1, f.y2, f.y3 = 0, 0, 0
}

// fbScale grows the feedback amount with resonance so the filter can reach
// self-oscillation near resonance=1; the tanh on the feedback path keeps it
// from diverging. It depends on resonance only, not on cutoff.
func fbScale(resonance float64) float64 {
	return 1 + 3*resonance
}
