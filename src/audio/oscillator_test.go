package audio

import (
	"math"
	"testing"
)

func TestOscillatorSawRange(t *testing.T) {
	o := newOscillator(44100)
	for i := 0; i < 10000; i++ {
		v := o.render(WaveformSaw, 220)
		if v < -1.2 || v > 1.2 {
			t.Fatalf("sample %d out of range: %v", i, v)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("sample %d not finite: %v", i, v)
		}
	}
}

func TestOscillatorSquareRange(t *testing.T) {
	o := newOscillator(44100)
	for i := 0; i < 10000; i++ {
		v := o.render(WaveformSquare, 440)
		if v < -1.2 || v > 1.2 {
			t.Fatalf("sample %d out of range: %v", i, v)
		}
	}
}

func TestOscillatorFrequencyChangePreservesPhase(t *testing.T) {
	o := newOscillator(44100)
	for i := 0; i < 100; i++ {
		o.render(WaveformSaw, 110)
	}
	phaseBeforeChange := o.phase
	o.render(WaveformSaw, 880)
	expected := phaseBeforeChange + 880.0/44100
	expected -= math.Floor(expected)
	if math.Abs(o.phase-expected) > 1e-9 {
		t.Fatalf("frequency change did not advance from the prior phase: got=%v want=%v", o.phase, expected)
	}
}

func TestMidiToHz(t *testing.T) {
	got := midiToHz(69)
	if math.Abs(got-440) > 1e-9 {
		t.Fatalf("A4 (note 69) = %v, want 440", got)
	}
	got = midiToHz(57) // A3, one octave down
	if math.Abs(got-220) > 1e-6 {
		t.Fatalf("A3 (note 57) = %v, want 220", got)
	}
}

func TestPolyBlepZeroAwayFromEdges(t *testing.T) {
	if v := polyBlep(0.5, 0.01); v != 0 {
		t.Fatalf("polyBlep(0.5, 0.01) = %v, want 0", v)
	}
}
