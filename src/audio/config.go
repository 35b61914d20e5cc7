package audio

import (
	"encoding/json"
	"log"
)

// synthConfigJSON mirrors the teacher lineage's params-as-JSON convention
// (oscParams/filterParams/adsrParams): a plain struct carrying every
// runtime-mutable synth field, marshaled with encoding/json for the host's
// control protocol. Clamping happens in the Studio setters this applies
// through, not here.
type synthConfigJSON struct {
	Waveform     string  `json:"waveform"`
	CutoffHz     float64 `json:"cutoffHz"`
	Resonance    float64 `json:"resonance"`
	EnvMod       float64 `json:"envMod"`
	DecayMs      float64 `json:"decayMs"`
	AccentAmount float64 `json:"accentAmount"`
	SlideTimeMs  float64 `json:"slideTimeMs"`
	Distortion   float64 `json:"distortion"`
	Volume       float64 `json:"volume"`
}

type drumConfigJSON struct {
	MasterVolume float64 `json:"masterVolume"`
	KickVolume   float64 `json:"kickVolume"`
	SnareVolume  float64 `json:"snareVolume"`
	HihatVolume  float64 `json:"hihatVolume"`
}

type studioConfigJSON struct {
	TempoBPM float64          `json:"tempoBpm"`
	Synth    synthConfigJSON  `json:"synth"`
	Drums    drumConfigJSON   `json:"drums"`
}

// ApplyConfigJSON parses data and applies every field through the Studio's
// own clamped setters, exactly as if each had been called individually from
// a control command. Malformed JSON is logged and otherwise ignored — the
// DSP core never observes a parse error (SPEC_FULL.md §10.2).
func (s *Studio) ApplyConfigJSON(data []byte) {
	var cfg studioConfigJSON
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Println("failed to apply JSON to studio config:", err)
		return
	}
	s.SetTempo(cfg.TempoBPM)

	if cfg.Synth.Waveform == "square" {
		s.SetSynthWaveform(WaveformSquare)
	} else {
		s.SetSynthWaveform(WaveformSaw)
	}
	s.SetSynthCutoff(cfg.Synth.CutoffHz)
	s.SetSynthResonance(cfg.Synth.Resonance)
	s.SetSynthEnvMod(cfg.Synth.EnvMod)
	s.SetSynthDecay(cfg.Synth.DecayMs)
	s.SetSynthAccent(cfg.Synth.AccentAmount)
	s.SetSynthSlideTime(cfg.Synth.SlideTimeMs)
	s.SetSynthDistortion(cfg.Synth.Distortion)
	s.SetSynthVolume(cfg.Synth.Volume)

	s.SetDrumVolume(cfg.Drums.MasterVolume)
	s.SetKickVolume(cfg.Drums.KickVolume)
	s.SetSnareVolume(cfg.Drums.SnareVolume)
	s.SetHihatVolume(cfg.Drums.HihatVolume)
}

// ToConfigJSON serializes the studio's current runtime-mutable state,
// mirroring the teacher lineage's toJSON()/ToJSON() round trip.
func (s *Studio) ToConfigJSON() []byte {
	waveform := "saw"
	if s.voice.waveform == WaveformSquare {
		waveform = "square"
	}
	cfg := studioConfigJSON{
		TempoBPM: s.synthSeq.tempoBPM,
		Synth: synthConfigJSON{
			Waveform:     waveform,
			CutoffHz:     s.voice.filter.cutoffHz,
			Resonance:    s.voice.filter.resonance,
			EnvMod:       s.voice.envMod,
			DecayMs:      s.voice.env.decayMs,
			AccentAmount: s.voice.accentAmount,
			SlideTimeMs:  s.voice.slide.slideTimeMs,
			Distortion:   s.voice.distortion,
			Volume:       s.synthGain.value,
		},
		Drums: drumConfigJSON{
			MasterVolume: s.drumMasterGain.value,
			KickVolume:   s.kickGain.value,
			SnareVolume:  s.snareGain.value,
			HihatVolume:  s.hihatGain.value,
		},
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		panic(err)
	}
	return data
}
