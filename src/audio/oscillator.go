package audio

import "math"

// ----- Waveform ----- //

// Waveform selects the oscillator's raw shape before PolyBLEP correction.
type Waveform int

const (
	WaveformSaw Waveform = iota
	WaveformSquare
)

// ----- Oscillator ----- //

// Oscillator generates one band-limited sample per call at a caller-supplied
// frequency. Band-limiting uses PolyBLEP at waveform discontinuities. The
// phase accumulator is kept across calls, so changing frequency between
// calls never introduces a phase jump.
type Oscillator struct {
	sr    float64
	phase float64
}

func newOscillator(sr float64) *Oscillator {
	return &Oscillator{sr: sr}
}

// render advances the phase accumulator by one sample at freqHz, then
// produces the sample for the given waveform at the new phase.
func (o *Oscillator) render(waveform Waveform, freqHz float64) float64 {
	dt := freqHz / o.sr
	o.phase += dt
	o.phase -= math.Floor(o.phase)
	var out float64
	switch waveform {
	case WaveformSquare:
		if o.phase < 0.5 {
			out = 1
		} else {
			out = -1
		}
		out += polyBlep(o.phase, dt)
		out -= polyBlep(math.Mod(o.phase+0.5, 1), dt)
	default: // WaveformSaw
		out = 2*o.phase - 1
		out -= polyBlep(o.phase, dt)
	}
	return out
}

// polyBlep is the polynomial band-limited step correction added at a
// waveform discontinuity located at phase=0 (mod 1), per sample period dt.
func polyBlep(phase, dt float64) float64 {
	if dt <= 0 {
		return 0
	}
	if phase < dt {
		t := phase / dt
		return 2*t - t*t - 1
	}
	if phase > 1-dt {
		t := (phase - 1) / dt
		return t*t + 2*t + 1
	}
	return 0
}

// midiToHz converts a MIDI note number to frequency in Hz (A4 = note 69 = 440Hz).
func midiToHz(note float64) float64 {
	return 440 * math.Pow(2, (note-69)/12)
}
