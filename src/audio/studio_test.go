package audio

import (
	"math"
	"testing"
)

// E1: silent start.
func TestStudioSilentStart(t *testing.T) {
	s := NewStudio(44100)
	buf := make([]float64, 1024)
	s.Process(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("sample %d nonzero on silent start: %v", i, v)
		}
	}
}

// E2: a single triggered note decays to near-silence within one second.
func TestStudioSingleNoteDecays(t *testing.T) {
	s := NewStudio(44100)
	s.SynthNoteOn(45, false, false)
	buf := make([]float64, 44100)
	s.Process(buf)

	if buf[0] == 0 {
		t.Fatal("buf[0] should be nonzero right after note_on")
	}
	var max float64
	for _, v := range buf {
		if a := math.Abs(v); a > max {
			max = a
		}
	}
	if max > 1.0 {
		t.Fatalf("max|buf| = %v, want <= 1", max)
	}
	if math.Abs(buf[len(buf)-1]) >= 1e-3 {
		t.Fatalf("tail sample should have decayed near zero, got %v", buf[len(buf)-1])
	}
}

// E3: at 120 BPM, step boundaries land at k*5512.5 samples within +-1 sample.
func TestStudioSequencerTimingAt120BPM(t *testing.T) {
	s := NewStudio(44100)
	s.SetSynthStep(0, 45, false, false, true)
	s.SetTempo(120)
	s.Start()

	buf := make([]float64, 44100)
	var edges []int
	for i := range buf {
		before := s.GetSynthStep()
		one := buf[i : i+1]
		s.Process(one)
		if s.GetSynthStep() != before {
			edges = append(edges, i)
		}
	}
	if len(edges) != 8 {
		t.Fatalf("expected 8 step-change edges in one second at 120 BPM, got %d", len(edges))
	}
	for k, pos := range edges {
		want := math.Floor(float64(k) * 5512.5)
		if math.Abs(float64(pos)-want) > 1 {
			t.Fatalf("edge %d at sample %d, want near %v", k, pos, want)
		}
	}
}

// P1: bounded output for any parameter setting.
func TestStudioBoundedOutput(t *testing.T) {
	s := NewStudio(44100)
	s.SetSynthResonance(1.0)
	s.SetSynthDistortion(1.0)
	s.SetSynthEnvMod(1.0)
	s.LoadDrumPattern(1) // Breakbeat: dense pattern
	s.SetTempo(200)
	s.Start()
	s.SynthNoteOn(36, true, false)

	buf := make([]float64, 44100*10)
	s.Process(buf)
	for i, v := range buf {
		if !isFinite(v) {
			t.Fatalf("sample %d not finite", i)
		}
		if math.Abs(v) > 1.0 {
			t.Fatalf("sample %d exceeded [-1,1]: %v", i, v)
		}
	}
}

// P2: silence with no notes and no active steps, here with the sequencer
// running.
func TestStudioSilenceWithNoActiveSteps(t *testing.T) {
	s := NewStudio(44100)
	s.Start() // sequencer runs but every step defaults to inactive
	buf := make([]float64, 44100)
	s.Process(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("sample %d nonzero with no active steps: %v", i, v)
		}
	}
}

// P3: determinism -- identical construction and call sequence produce
// bit-identical output.
func TestStudioDeterministic(t *testing.T) {
	run := func() []float64 {
		s := NewStudio(44100)
		s.SetSynthStep(0, 36, true, false, true)
		s.SetSynthStep(4, 48, false, true, true)
		s.LoadDrumPattern(0)
		s.SetTempo(128)
		s.Start()
		s.SynthNoteOn(45, true, false)
		buf := make([]float64, 44100*2)
		s.Process(buf)
		return buf
	}
	a := run()
	b := run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d diverged between identical runs: %v != %v", i, a[i], b[i])
		}
	}
}

// P4: tempo correctness / drift bound over 60 seconds.
func TestStudioTempoDriftBound(t *testing.T) {
	s := NewStudio(44100)
	s.SetSynthStep(0, 45, false, false, true)
	s.SetTempo(120)
	s.Start()

	stepPeriod := 44100.0 * 60 / (120 * 4)
	edgeCount := 0
	buf := make([]float64, 1)
	for i := 0; i < 44100*60; i++ {
		before := s.GetSynthStep()
		s.Process(buf)
		if s.GetSynthStep() != before {
			expected := math.Floor(float64(edgeCount) * stepPeriod)
			if math.Abs(float64(i)-expected) > 1 {
				t.Fatalf("edge %d drifted: at sample %d, expected near %v", edgeCount, i, expected)
			}
			edgeCount++
		}
	}
}

// E5: accent boosts the studio-level output, not just the raw voice.
func TestStudioAccentBoostsOutput(t *testing.T) {
	plain := NewStudio(44100)
	plain.SetSynthAccent(0.7)
	plain.SynthNoteOn(45, false, false)

	accented := NewStudio(44100)
	accented.SetSynthAccent(0.7)
	accented.SynthNoteOn(45, true, false)

	n := int(44100 * 0.01)
	plainBuf := make([]float64, n)
	accentedBuf := make([]float64, n)
	plain.Process(plainBuf)
	accented.Process(accentedBuf)

	var plainPeak, accentedPeak float64
	for i := 0; i < n; i++ {
		if v := math.Abs(plainBuf[i]); v > plainPeak {
			plainPeak = v
		}
		if v := math.Abs(accentedBuf[i]); v > accentedPeak {
			accentedPeak = v
		}
	}
	if accentedPeak <= plainPeak*1.3 {
		t.Fatalf("accented peak (%v) should exceed plain peak (%v) by 30%%", accentedPeak, plainPeak)
	}
}

// E6: a drum pattern produces the expected number of transients per bar.
func TestStudioDrumPatternTransientCount(t *testing.T) {
	s := NewStudio(44100)
	s.SetDrumStep(0, true, false, false, false)
	s.SetDrumStep(4, true, true, false, false)
	s.SetDrumStep(8, true, false, false, false)
	s.SetDrumStep(12, true, true, false, false)
	s.SetTempo(120)
	s.Start()

	kickTriggers, snareTriggers := 0, 0
	kickWasActive, snareWasActive := false, false
	buf := make([]float64, 1)
	for i := 0; i < 44100*2; i++ {
		s.Process(buf)
		if s.drums.Kick.active && !kickWasActive {
			kickTriggers++
		}
		if s.drums.Snare.active && !snareWasActive {
			snareTriggers++
		}
		kickWasActive = s.drums.Kick.active
		snareWasActive = s.drums.Snare.active
	}
	if kickTriggers != 4 {
		t.Fatalf("expected 4 kick transients, got %d", kickTriggers)
	}
	if snareTriggers != 2 {
		t.Fatalf("expected 2 snare transients, got %d", snareTriggers)
	}
}

func TestStudioStepWriteIsolation(t *testing.T) {
	s := NewStudio(44100)
	s.SetSynthStep(0, 36, false, false, true)
	s.SetTempo(120)
	s.Start()
	one := make([]float64, 1)
	s.Process(one) // land on step 0

	s.SetSynthStep(5, 72, true, true, true)
	second := make([]float64, 1)
	s.Process(second)
	if s.GetSynthStep() != 0 {
		t.Fatalf("should still be within step 0's duration, at step %d", s.GetSynthStep())
	}
}

func TestStudioLoadSynthPresetAppliesSteps(t *testing.T) {
	s := NewStudio(44100)
	s.LoadSynthPreset(0)
	step, ok := s.synthSeq.getStep(0)
	if !ok || !step.Active || !step.Accent {
		t.Fatalf("Acid Tracks step 0 should be active+accented, got %+v", step)
	}
}

func TestStudioOutOfRangePresetIsNoop(t *testing.T) {
	s := NewStudio(44100)
	s.LoadSynthPreset(-1)
	s.LoadSynthPreset(PresetCount())
	step, _ := s.synthSeq.getStep(0)
	if step != (SynthStep{}) {
		t.Fatalf("out-of-range preset load should be a no-op, got %+v", step)
	}
}
