package audio

// gainGlideMs is the time constant of the exponential glide a volume-setter
// change follows, so that changing a gain mid-buffer never produces an
// audible step.
const gainGlideMs = 15

// Studio is the single entry point described in SPEC_FULL.md §4.9: it owns
// the synth voice, the drum kit, and two tempo-locked sequencers, and mixes
// everything into one output buffer per process() call. The studio owns
// all of this exclusively; nothing below it escapes to a second owner.
type Studio struct {
	sr float64

	voice    *SynthVoice
	drums    *DrumKit
	synthSeq *Sequencer[SynthStep]
	drumSeq  *Sequencer[DrumStep]

	synthGain      *transitiveValue
	drumMasterGain *transitiveValue
	kickGain       *transitiveValue
	snareGain      *transitiveValue
	hihatGain      *transitiveValue
}

// NewStudio constructs a Studio fixed to sampleRate for its lifetime; no
// other construction-time parameter exists (SPEC_FULL.md §6).
func NewStudio(sampleRate float64) *Studio {
	newGain := func(initial float64) *transitiveValue {
		tv := newTransitiveValue(sampleRate)
		tv.init(initial)
		return tv
	}
	s := &Studio{
		sr:             sampleRate,
		voice:          newSynthVoice(sampleRate),
		drums:          newDrumKit(sampleRate),
		synthSeq:       newSequencer[SynthStep](sampleRate),
		drumSeq:        newSequencer[DrumStep](sampleRate),
		synthGain:      newGain(0.5),
		drumMasterGain: newGain(0.9),
		kickGain:       newGain(1.0),
		snareGain:      newGain(0.8),
		hihatGain:      newGain(0.6),
	}
	return s
}

func glideGain(tv *transitiveValue, target float64) {
	tv.exponential(gainGlideMs, clamp(target, 0, 1), 0.001)
}

// Start begins both sequencers; they remain tempo-locked because they
// share the sample rate and both receive setTempo calls from the studio.
func (s *Studio) Start() {
	s.synthSeq.start()
	s.drumSeq.start()
}

func (s *Studio) Stop() {
	s.synthSeq.stop()
	s.drumSeq.stop()
	s.voice.noteOff()
}

// SetTempo clamps to [60,200] BPM and applies to both sequencers so they
// stay phase-locked.
func (s *Studio) SetTempo(bpm float64) {
	s.synthSeq.setTempo(bpm)
	s.drumSeq.setTempo(bpm)
}

// ----- synth control ----- //

func (s *Studio) SynthNoteOn(midiNote uint8, accent, slide bool) {
	s.voice.noteOn(float64(midiNote), accent, slide)
}

func (s *Studio) SynthNoteOff() {
	s.voice.noteOff()
}

func (s *Studio) SetSynthStep(i int, note uint8, accent, slide, active bool) {
	s.synthSeq.setStep(i, SynthStep{Note: note, Accent: accent, Slide: slide, Active: active})
}

func (s *Studio) SetDrumStep(i int, kick, snare, closedHH, openHH bool) {
	s.drumSeq.setStep(i, DrumStep{Kick: kick, Snare: snare, ClosedHH: closedHH, OpenHH: openHH})
}

func (s *Studio) SetSynthWaveform(w Waveform)   { s.voice.setWaveform(w) }
func (s *Studio) SetSynthCutoff(hz float64)     { s.voice.setCutoff(hz) }
func (s *Studio) SetSynthResonance(r float64)   { s.voice.setResonance(r) }
func (s *Studio) SetSynthEnvMod(m float64)      { s.voice.setEnvMod(m) }
func (s *Studio) SetSynthDecay(ms float64)      { s.voice.setDecay(ms) }
func (s *Studio) SetSynthAccent(a float64)      { s.voice.setAccentAmount(a) }
func (s *Studio) SetSynthSlideTime(ms float64)  { s.voice.setSlideTime(ms) }
func (s *Studio) SetSynthDistortion(d float64)  { s.voice.setDistortion(d) }

func (s *Studio) SetSynthVolume(v float64) { glideGain(s.synthGain, v) }
func (s *Studio) SetDrumVolume(v float64)  { glideGain(s.drumMasterGain, v) }
func (s *Studio) SetKickVolume(v float64)  { glideGain(s.kickGain, v) }
func (s *Studio) SetSnareVolume(v float64) { glideGain(s.snareGain, v) }
func (s *Studio) SetHihatVolume(v float64) { glideGain(s.hihatGain, v) }

// LoadSynthPreset is a no-op on an out-of-range index (§7 index-error
// policy).
func (s *Studio) LoadSynthPreset(index int) {
	if index < 0 || index >= len(synthPresets) {
		return
	}
	p := synthPresets[index]
	s.synthSeq.loadPattern(p.Steps)
	s.SetTempo(p.TempoBPM)
	s.voice.setCutoff(p.CutoffHz)
	s.voice.setResonance(p.Resonance)
	s.voice.setEnvMod(p.EnvMod)
	s.voice.setDecay(p.DecayMs)
	s.voice.setWaveform(p.Waveform)
}

func (s *Studio) LoadDrumPattern(index int) {
	if index < 0 || index >= len(drumPatterns) {
		return
	}
	s.drumSeq.loadPattern(drumPatterns[index].Steps)
}

func (s *Studio) SynthStepChanged() bool   { return s.synthSeq.stepChanged() }
func (s *Studio) GetSynthStep() int        { return s.synthSeq.currentStepIndex() }
func (s *Studio) DrumStepChanged() bool    { return s.drumSeq.stepChanged() }
func (s *Studio) GetDrumStep() int         { return s.drumSeq.currentStepIndex() }

// Process fills out with one mono sample per element, per SPEC_FULL.md §4.9.
// It never allocates, blocks, or logs: it is the sole function that may run
// on the audio thread.
func (s *Studio) Process(out []float64) {
	for i := range out {
		if step, ok := s.synthSeq.tick(); ok && step.Active {
			s.voice.noteOn(float64(step.Note), step.Accent, step.Slide)
		}
		if step, ok := s.drumSeq.tick(); ok {
			s.drums.trigger(step)
		}

		s.synthGain.step()
		s.drumMasterGain.step()
		s.kickGain.step()
		s.snareGain.step()
		s.hihatGain.step()

		drumMaster := s.drumMasterGain.value
		sample := s.voice.renderSample() * s.synthGain.value
		sample += s.drums.Kick.renderSample() * s.kickGain.value * drumMaster
		sample += s.drums.Snare.renderSample() * s.snareGain.value * drumMaster
		sample += s.drums.ClosedHihat.renderSample() * s.hihatGain.value * drumMaster
		sample += s.drums.OpenHihat.renderSample() * s.hihatGain.value * drumMaster

		out[i] = clamp(sample, -1, 1)
	}
}
