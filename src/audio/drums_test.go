package audio

import (
	"math"
	"testing"
)

func renderUntilSilent(t *testing.T, name string, active func() bool, render func() float64, maxSamples int) int {
	for i := 0; i < maxSamples; i++ {
		out := render()
		if !isFinite(out) {
			t.Fatalf("%s: sample %d not finite", name, i)
		}
		if math.Abs(out) > 1.5 {
			t.Fatalf("%s: sample %d out of range: %v", name, i, out)
		}
		if !active() {
			return i
		}
	}
	t.Fatalf("%s: did not go silent within %d samples", name, maxSamples)
	return -1
}

func TestKickTriggerProducesSoundThenDecays(t *testing.T) {
	k := newKick(44100)
	k.trigger()
	has := false
	for i := 0; i < 100; i++ {
		if math.Abs(k.renderSample()) > 0.01 {
			has = true
			break
		}
	}
	if !has {
		t.Fatal("kick should produce audible output shortly after trigger")
	}
	renderUntilSilent(t, "kick", func() bool { return k.active }, k.renderSample, 44100)
}

func TestSnareTriggerProducesSoundThenDecays(t *testing.T) {
	s := newSnare(44100)
	s.trigger()
	if math.Abs(s.renderSample()) == 0 {
		t.Fatal("snare should produce nonzero output on the trigger sample")
	}
	renderUntilSilent(t, "snare", func() bool { return s.active }, s.renderSample, 44100)
}

func TestHihatClosedDecaysFasterThanOpen(t *testing.T) {
	closed := newClosedHihat(44100)
	open := newOpenHihat(44100)
	closed.trigger()
	open.trigger()

	closedCount := 0
	for closed.active && closedCount < 100000 {
		closed.renderSample()
		closedCount++
	}
	openCount := 0
	for open.active && openCount < 100000 {
		open.renderSample()
		openCount++
	}
	if closedCount >= openCount {
		t.Fatalf("closed hihat (%d samples) should decay faster than open (%d)", closedCount, openCount)
	}
}

func TestClosedHihatChokesOpen(t *testing.T) {
	kit := newDrumKit(44100)
	kit.trigger(DrumStep{OpenHH: true})
	for i := 0; i < 500; i++ {
		kit.OpenHihat.renderSample()
	}
	if !kit.OpenHihat.active {
		t.Fatal("open hihat should still be ringing before being choked")
	}
	kit.trigger(DrumStep{ClosedHH: true})
	if !kit.OpenHihat.choking {
		t.Fatal("triggering closed hihat should choke the ringing open hihat")
	}
	for i := 0; i < 5000; i++ {
		kit.OpenHihat.renderSample()
	}
	if kit.OpenHihat.active {
		t.Fatal("choked open hihat should go silent quickly")
	}
}

func TestLFSRNoiseVariesAndIsDeterministic(t *testing.T) {
	a := newLFSRNoise(0xBEEF)
	b := newLFSRNoise(0xBEEF)
	prev := a.next()
	_ = b.next()
	var seenDiff bool
	for i := 0; i < 10; i++ {
		na, nb := a.next(), b.next()
		if na != nb {
			t.Fatalf("same seed should produce identical sequences at step %d: %v != %v", i, na, nb)
		}
		if na != prev {
			seenDiff = true
		}
		prev = na
	}
	if !seenDiff {
		t.Fatal("LFSR should produce a varying sequence")
	}
}
