package audio

// accentLoudness is how much a latched accent boosts final VCA gain.
const accentLoudness = 1.0

// accentEnvModBoost is how much a latched accent boosts the filter's
// envelope modulation depth.
const accentEnvModBoost = 1.0

// SynthVoice wires oscillator -> filter -> envelope -> VCA -> distortion
// into the monophonic acid-bass voice. It owns note_on/note_off and the
// slide-vs-retrigger decision described in SPEC_FULL.md §4.4.
type SynthVoice struct {
	osc    *Oscillator
	filter *Filter
	env    *Envelope
	slide  *SlideController

	waveform Waveform
	envMod   float64

	accentAmount float64
	distortion   float64

	gate        bool
	accentLevel float64
}

func newSynthVoice(sr float64) *SynthVoice {
	return &SynthVoice{
		osc:      newOscillator(sr),
		filter:   newFilter(sr),
		env:      newEnvelope(sr),
		slide:    newSlideController(sr),
		waveform: WaveformSaw,
		envMod:   0.5,
	}
}

// ----- parameter setters (§3 Config, all clamped) ----- //

func (v *SynthVoice) setWaveform(w Waveform) { v.waveform = w }
func (v *SynthVoice) setCutoff(hz float64)   { v.filter.setCutoff(hz) }
func (v *SynthVoice) setResonance(r float64) { v.filter.setResonance(r) }
func (v *SynthVoice) setEnvMod(m float64)    { v.envMod = clamp(m, 0, 1) }
func (v *SynthVoice) setDecay(ms float64)    { v.env.setDecay(ms) }
func (v *SynthVoice) setAccentAmount(a float64) {
	v.accentAmount = clamp(a, 0, 1)
}
func (v *SynthVoice) setSlideTime(ms float64) { v.slide.setSlideTime(ms) }
func (v *SynthVoice) setDistortion(d float64) { v.distortion = clamp(d, 0, 1) }

// noteOn applies the §4.4 slide/retrigger decision and latches accent.
func (v *SynthVoice) noteOn(midiNote float64, accent, slide bool) {
	freq := midiToHz(midiNote)
	if slide && v.env.value > slideThreshold {
		v.slide.glideTo(freq)
	} else {
		v.slide.setImmediate(freq)
		v.env.trigger(accent)
	}
	if accent {
		v.accentLevel = v.accentAmount
	} else {
		v.accentLevel = 0
	}
	v.gate = true
}

func (v *SynthVoice) noteOff() {
	v.gate = false
}

// renderSample renders exactly one output sample, advancing every piece of
// per-voice state by one sample.
func (v *SynthVoice) renderSample() float64 {
	freq := v.slide.step()
	o := v.osc.render(v.waveform, freq)
	e := v.env.step()
	f := v.filter.render(o, v.envMod*(1+v.accentLevel*accentEnvModBoost), e)
	y := f * e * (1 + v.accentLevel*accentLoudness)
	return distort(y, v.distortion)
}
