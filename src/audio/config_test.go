package audio

import "testing"

func TestConfigRoundTrip(t *testing.T) {
	s := NewStudio(44100)
	s.SetTempo(140)
	s.SetSynthWaveform(WaveformSquare)
	s.SetSynthCutoff(900)
	s.SetSynthResonance(0.6)
	s.SetSynthEnvMod(0.5)
	s.SetSynthDecay(200)
	s.SetSynthAccent(0.4)
	s.SetSynthDistortion(0.3)
	s.SetKickVolume(0.5)

	data := s.ToConfigJSON()

	fresh := NewStudio(44100)
	fresh.ApplyConfigJSON(data)

	if fresh.synthSeq.tempoBPM != 140 {
		t.Fatalf("tempo round trip = %v, want 140", fresh.synthSeq.tempoBPM)
	}
	if fresh.voice.waveform != WaveformSquare {
		t.Fatalf("waveform round trip = %v, want square", fresh.voice.waveform)
	}
	if fresh.voice.filter.cutoffHz != 900 {
		t.Fatalf("cutoff round trip = %v, want 900", fresh.voice.filter.cutoffHz)
	}
	if fresh.voice.filter.resonance != 0.6 {
		t.Fatalf("resonance round trip = %v, want 0.6", fresh.voice.filter.resonance)
	}
}

func TestConfigMalformedJSONIsIgnored(t *testing.T) {
	s := NewStudio(44100)
	s.SetSynthCutoff(1234)
	s.ApplyConfigJSON([]byte("not json"))
	if s.voice.filter.cutoffHz != 1234 {
		t.Fatalf("malformed config JSON should leave state untouched, cutoff = %v", s.voice.filter.cutoffHz)
	}
}
