package audio

import "math"

// accentDecayScale shortens an accented note's decay relative to its
// unaccented decayMs, giving accented steps their characteristic snap.
const accentDecayScale = 0.5

const envelopeFloor = 1e-5

// Envelope is a decay-only, one-shot envelope with retrigger. There is no
// attack phase: trigger() is an instant step to 1.0.
type Envelope struct {
	sr float64

	decayMs float64
	value   float64

	decayCoef float64
}

func newEnvelope(sr float64) *Envelope {
	e := &Envelope{sr: sr, decayMs: 150}
	return e
}

func (e *Envelope) setDecay(ms float64) {
	e.decayMs = clamp(ms, 10, 2000)
}

// trigger restarts the decay from 1.0. accent shortens the decay time.
func (e *Envelope) trigger(accent bool) {
	e.value = 1.0
	ms := e.decayMs
	if accent {
		ms *= accentDecayScale
	}
	decaySamples := ms * e.sr / 1000
	e.decayCoef = math.Exp(-1 / decaySamples)
}

// step advances the envelope by one sample and returns the new value.
func (e *Envelope) step() float64 {
	e.value *= e.decayCoef
	if e.value < envelopeFloor {
		e.value = 0
	}
	return e.value
}

func (e *Envelope) reset() {
	e.value = 0
}
