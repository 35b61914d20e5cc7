package audio

// SynthPreset bundles a factory pattern with the voice settings it was
// written for. Presets are compiled-in, read-only constants — the core
// never persists or loads them from disk (SPEC_FULL.md §6, §9).
type SynthPreset struct {
	Name      string
	Steps     [sequencerSteps]SynthStep
	TempoBPM  float64
	CutoffHz  float64
	Resonance float64
	EnvMod    float64
	DecayMs   float64
	Waveform  Waveform
}

func sstep(note uint8, accent, slide, active bool) SynthStep {
	return SynthStep{Note: note, Accent: accent, Slide: slide, Active: active}
}

func rest() SynthStep {
	return SynthStep{Note: 36}
}

// synthPresets ports the ten classic acid-house patterns from the original
// implementation (SPEC_FULL.md §12).
var synthPresets = []SynthPreset{
	{
		Name: "Acid Tracks",
		Steps: [16]SynthStep{
			sstep(36, true, false, true), sstep(36, false, false, true),
			sstep(48, false, true, true), sstep(36, false, false, true),
			sstep(38, true, false, true), rest(),
			sstep(36, false, false, true), sstep(43, false, true, true),
			sstep(36, true, false, true), rest(),
			sstep(48, false, false, true), sstep(36, false, true, true),
			sstep(41, true, false, true), sstep(36, false, false, true),
			rest(), sstep(36, false, false, true),
		},
		TempoBPM: 126, CutoffHz: 400, Resonance: 0.75, EnvMod: 0.8, DecayMs: 150, Waveform: WaveformSaw,
	},
	{
		Name: "Higher State",
		Steps: [16]SynthStep{
			sstep(36, true, false, true), sstep(36, false, false, true),
			sstep(38, false, true, true), sstep(40, false, true, true),
			sstep(41, true, false, true), sstep(41, false, false, true),
			sstep(43, false, true, true), sstep(45, false, true, true),
			sstep(48, true, false, true), sstep(48, false, false, true),
			sstep(45, false, true, true), sstep(43, false, true, true),
			sstep(41, true, false, true), sstep(38, false, true, true),
			sstep(36, false, true, true), rest(),
		},
		TempoBPM: 132, CutoffHz: 300, Resonance: 0.85, EnvMod: 0.9, DecayMs: 120, Waveform: WaveformSaw,
	},
	{
		Name: "Acperience",
		Steps: [16]SynthStep{
			sstep(36, true, false, true), sstep(36, false, false, true),
			sstep(36, false, false, true), sstep(48, false, true, true),
			sstep(36, true, false, true), sstep(36, false, false, true),
			sstep(43, false, true, true), sstep(36, false, false, true),
			sstep(36, true, false, true), sstep(36, false, false, true),
			sstep(36, false, false, true), sstep(41, false, true, true),
			sstep(36, true, false, true), sstep(36, false, false, true),
			sstep(38, false, true, true), sstep(36, false, false, true),
		},
		TempoBPM: 138, CutoffHz: 350, Resonance: 0.8, EnvMod: 0.7, DecayMs: 100, Waveform: WaveformSaw,
	},
	{
		Name: "Voodoo Ray",
		Steps: [16]SynthStep{
			sstep(41, true, false, true), rest(),
			sstep(43, false, false, true), sstep(45, false, true, true),
			sstep(48, true, false, true), rest(),
			sstep(45, false, true, true), sstep(43, false, false, true),
			sstep(41, true, false, true), rest(),
			sstep(38, false, false, true), sstep(36, false, true, true),
			sstep(38, true, false, true), rest(),
			sstep(41, false, true, true), rest(),
		},
		TempoBPM: 118, CutoffHz: 500, Resonance: 0.65, EnvMod: 0.6, DecayMs: 200, Waveform: WaveformSaw,
	},
	{
		Name: "Mentasm",
		Steps: [16]SynthStep{
			sstep(36, true, false, true), sstep(36, false, false, true),
			sstep(36, false, false, true), rest(),
			sstep(36, true, false, true), sstep(43, false, true, true),
			sstep(48, false, true, true), rest(),
			sstep(36, true, false, true), sstep(36, false, false, true),
			sstep(36, false, false, true), rest(),
			sstep(36, true, false, true), sstep(41, false, true, true),
			sstep(36, false, true, true), rest(),
		},
		TempoBPM: 128, CutoffHz: 600, Resonance: 0.7, EnvMod: 0.75, DecayMs: 180, Waveform: WaveformSquare,
	},
	{
		Name: "Energy Flash",
		Steps: [16]SynthStep{
			sstep(36, true, false, true), sstep(36, false, false, true),
			sstep(36, true, false, true), sstep(36, false, false, true),
			sstep(43, true, false, true), sstep(43, false, false, true),
			sstep(36, true, false, true), sstep(36, false, false, true),
			sstep(36, true, false, true), sstep(36, false, false, true),
			sstep(41, true, false, true), sstep(41, false, false, true),
			sstep(38, true, false, true), sstep(38, false, false, true),
			sstep(36, true, false, true), sstep(36, false, false, true),
		},
		TempoBPM: 130, CutoffHz: 450, Resonance: 0.72, EnvMod: 0.65, DecayMs: 140, Waveform: WaveformSaw,
	},
	{
		Name: "Squelch Classic",
		Steps: [16]SynthStep{
			sstep(36, true, false, true), sstep(48, false, true, true),
			sstep(36, false, true, true), sstep(48, false, true, true),
			sstep(36, true, false, true), sstep(43, false, true, true),
			sstep(36, false, true, true), sstep(41, false, true, true),
			sstep(36, true, false, true), sstep(48, false, true, true),
			sstep(36, false, true, true), sstep(45, false, true, true),
			sstep(36, true, false, true), sstep(43, false, true, true),
			sstep(36, false, true, true), sstep(38, false, true, true),
		},
		TempoBPM: 125, CutoffHz: 250, Resonance: 0.9, EnvMod: 0.95, DecayMs: 100, Waveform: WaveformSaw,
	},
	{
		Name: "Minimal Techno",
		Steps: [16]SynthStep{
			sstep(36, true, false, true), rest(), rest(),
			sstep(36, false, false, true), rest(),
			sstep(36, true, false, true), rest(), rest(),
			sstep(36, false, false, true), rest(),
			sstep(43, true, true, true), rest(),
			sstep(36, false, true, true), rest(), rest(), rest(),
		},
		TempoBPM: 135, CutoffHz: 800, Resonance: 0.5, EnvMod: 0.4, DecayMs: 250, Waveform: WaveformSaw,
	},
	{
		Name: "Rave Anthem",
		Steps: [16]SynthStep{
			sstep(36, true, false, true), sstep(36, false, false, true),
			sstep(43, true, false, true), sstep(43, false, false, true),
			sstep(48, true, false, true), sstep(48, false, false, true),
			sstep(43, true, false, true), sstep(43, false, false, true),
			sstep(41, true, false, true), sstep(41, false, false, true),
			sstep(43, true, false, true), sstep(48, false, true, true),
			sstep(53, true, false, true), sstep(48, false, true, true),
			sstep(43, false, true, true), sstep(36, false, true, true),
		},
		TempoBPM: 140, CutoffHz: 550, Resonance: 0.68, EnvMod: 0.7, DecayMs: 130, Waveform: WaveformSaw,
	},
	{
		Name: "Warehouse",
		Steps: [16]SynthStep{
			sstep(33, true, false, true), rest(),
			sstep(33, false, false, true), sstep(36, false, true, true),
			sstep(33, true, false, true), rest(),
			sstep(40, false, true, true), sstep(33, false, true, true),
			sstep(33, true, false, true), rest(),
			sstep(33, false, false, true), sstep(45, false, true, true),
			sstep(33, true, false, true), rest(),
			sstep(33, false, false, true), rest(),
		},
		TempoBPM: 122, CutoffHz: 380, Resonance: 0.78, EnvMod: 0.82, DecayMs: 170, Waveform: WaveformSaw,
	},
}

// PresetCount and PresetName implement the host API's preset-metadata
// operations (SPEC_FULL.md §6).
func PresetCount() int { return len(synthPresets) }

func PresetName(i int) string {
	if i < 0 || i >= len(synthPresets) {
		return ""
	}
	return synthPresets[i].Name
}

// DrumPattern is a named, compiled-in 16-step drum pattern.
type DrumPattern struct {
	Name  string
	Steps [sequencerSteps]DrumStep
}

func dstep(kick, snare, closedHH, openHH bool) DrumStep {
	return DrumStep{Kick: kick, Snare: snare, ClosedHH: closedHH, OpenHH: openHH}
}

// drumPatterns ports five factory drum patterns from the original
// implementation (SPEC_FULL.md §12).
var drumPatterns = []DrumPattern{
	{
		Name: "Basic Beat",
		Steps: [16]DrumStep{
			dstep(true, false, true, false), dstep(false, false, true, false),
			dstep(false, false, true, false), dstep(false, false, true, false),
			dstep(true, true, true, false), dstep(false, false, true, false),
			dstep(false, false, true, false), dstep(false, false, true, false),
			dstep(true, false, true, false), dstep(false, false, true, false),
			dstep(false, false, true, false), dstep(false, false, true, false),
			dstep(true, true, true, false), dstep(false, false, true, false),
			dstep(false, false, true, false), dstep(false, false, true, false),
		},
	},
	{
		Name: "Breakbeat",
		Steps: [16]DrumStep{
			dstep(true, false, true, false), dstep(false, false, false, true),
			dstep(false, true, true, false), dstep(false, false, true, false),
			dstep(false, false, true, false), dstep(false, true, false, true),
			dstep(true, false, true, false), dstep(false, false, true, false),
			dstep(false, false, true, false), dstep(false, false, false, true),
			dstep(false, true, true, false), dstep(false, false, true, false),
			dstep(true, false, true, false), dstep(false, true, false, true),
			dstep(false, false, true, false), dstep(true, false, true, false),
		},
	},
	{
		Name: "House 909",
		Steps: [16]DrumStep{
			dstep(true, false, true, false), dstep(false, false, true, false),
			dstep(false, false, false, true), dstep(false, false, true, false),
			dstep(true, true, true, false), dstep(false, false, true, false),
			dstep(false, false, false, true), dstep(false, false, true, false),
			dstep(true, false, true, false), dstep(false, false, true, false),
			dstep(false, false, false, true), dstep(false, false, true, false),
			dstep(true, true, true, false), dstep(false, false, true, false),
			dstep(false, false, false, true), dstep(true, false, true, false),
		},
	},
	{
		Name: "Minimal Techno",
		Steps: [16]DrumStep{
			dstep(true, false, true, false), dstep(false, false, false, false),
			dstep(false, false, true, false), dstep(false, false, false, false),
			dstep(true, false, true, false), dstep(false, false, false, false),
			dstep(false, false, true, false), dstep(false, true, false, false),
			dstep(true, false, true, false), dstep(false, false, false, false),
			dstep(false, false, true, false), dstep(false, false, false, false),
			dstep(true, false, true, false), dstep(false, false, false, false),
			dstep(false, true, true, false), dstep(false, false, false, false),
		},
	},
	{
		Name: "Acid Drive",
		Steps: [16]DrumStep{
			dstep(true, false, true, false), dstep(false, false, true, false),
			dstep(true, false, true, false), dstep(false, false, true, false),
			dstep(true, true, true, false), dstep(false, false, true, false),
			dstep(true, false, true, false), dstep(false, false, false, true),
			dstep(true, false, true, false), dstep(false, false, true, false),
			dstep(true, false, true, false), dstep(false, false, true, false),
			dstep(true, true, true, false), dstep(false, false, true, false),
			dstep(true, false, false, true), dstep(false, false, true, false),
		},
	},
}

func DrumPatternCount() int { return len(drumPatterns) }

func DrumPatternName(i int) string {
	if i < 0 || i >= len(drumPatterns) {
		return ""
	}
	return drumPatterns[i].Name
}
