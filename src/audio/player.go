package audio

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/hajimehoshi/oto"
)

const (
	sampleRate        = 44100
	channelNum        = 1
	bitDepthInBytes   = 2
	bufferSizeInBytes = 4096
)

// Player is the host-facing wrapper around a Studio: it owns the oto
// playback device, renders the studio through an io.Reader adapter exactly
// as the teacher lineage's Audio.Read does, and serializes every
// control-context mutation behind one mutex so the non-interleaving
// assumption in SPEC_FULL.md §5 holds.
type Player struct {
	mu     sync.Mutex
	ctx    context.Context
	studio *Studio

	otoContext *oto.Context

	renderBuf []float64
}

var _ io.Reader = (*Player)(nil)

// NewPlayer opens the default audio device at the fixed sample rate and
// constructs the Studio behind it.
func NewPlayer() (*Player, error) {
	otoContext, err := oto.NewContext(sampleRate, channelNum, bitDepthInBytes, bufferSizeInBytes)
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	return &Player{
		ctx:        context.Background(),
		studio:     NewStudio(sampleRate),
		otoContext: otoContext,
	}, nil
}

// Read renders one buffer's worth of samples and writes them as
// little-endian signed 16-bit mono PCM, matching oto v0.7's wire format.
func (p *Player) Read(buf []byte) (int, error) {
	select {
	case <-p.ctx.Done():
		return 0, io.EOF
	default:
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	n := len(buf) / bitDepthInBytes
	if cap(p.renderBuf) < n {
		p.renderBuf = make([]float64, n)
	}
	out := p.renderBuf[:n]
	p.studio.Process(out)

	const max = 32767
	for i, v := range out {
		sample := int16(clamp(v, -1, 1) * max)
		buf[2*i] = byte(sample)
		buf[2*i+1] = byte(sample >> 8)
	}
	return n * bitDepthInBytes, nil
}

// Start blocks, pumping rendered audio to the device until ctx is
// cancelled.
func (p *Player) Start(ctx context.Context) error {
	p.ctx = ctx
	player := p.otoContext.NewPlayer()
	defer func() {
		_ = player.Close()
	}()
	if _, err := io.CopyBuffer(player, p, make([]byte, bufferSizeInBytes)); err != nil {
		return fmt.Errorf("audio playback: %w", err)
	}
	return nil
}

func (p *Player) Close() error {
	return p.otoContext.Close()
}

// Update dispatches one parsed control command against the studio. Unlike
// process(), this runs in the control context and reports malformed
// commands (unknown name, wrong argument count, unparsable number) as
// errors (SPEC_FULL.md §10.2). Parsed values are passed on unchecked, so
// out-of-range numbers are clamped and out-of-range indices ignored by the
// Studio's setters.
func (p *Player) Update(command []string) error {
	if len(command) == 0 {
		return fmt.Errorf("empty command")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	s := p.studio

	switch command[0] {
	case "start":
		s.Start()
	case "stop":
		s.Stop()
	case "config":
		if len(command) != 2 {
			return fmt.Errorf("config requires exactly one JSON argument")
		}
		s.ApplyConfigJSON([]byte(command[1]))
	case "tempo":
		v, err := parseFloatArg(command, 1)
		if err != nil {
			return err
		}
		s.SetTempo(v)
	case "note_on":
		note, accent, slide, err := parseNoteOnArgs(command)
		if err != nil {
			return err
		}
		s.SynthNoteOn(note, accent, slide)
	case "note_off":
		s.SynthNoteOff()
	case "synth_step":
		return applySynthStepCommand(s, command)
	case "drum_step":
		return applyDrumStepCommand(s, command)
	case "preset":
		i, err := parseIntArg(command, 1)
		if err != nil {
			return err
		}
		s.LoadSynthPreset(i)
	case "drum_pattern":
		i, err := parseIntArg(command, 1)
		if err != nil {
			return err
		}
		s.LoadDrumPattern(i)
	default:
		return fmt.Errorf("unknown command %q", command[0])
	}
	return nil
}

func parseIntArg(command []string, i int) (int, error) {
	if len(command) <= i {
		return 0, fmt.Errorf("%s: missing argument", command[0])
	}
	v, err := strconv.Atoi(command[i])
	if err != nil {
		return 0, fmt.Errorf("%s: %w", command[0], err)
	}
	return v, nil
}

func parseFloatArg(command []string, i int) (float64, error) {
	if len(command) <= i {
		return 0, fmt.Errorf("%s: missing argument", command[0])
	}
	v, err := strconv.ParseFloat(command[i], 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", command[0], err)
	}
	return v, nil
}

func parseNoteOnArgs(command []string) (note uint8, accent, slide bool, err error) {
	if len(command) != 4 {
		return 0, false, false, fmt.Errorf("note_on requires note, accent, slide")
	}
	n, err := strconv.Atoi(command[1])
	if err != nil {
		return 0, false, false, fmt.Errorf("note_on: %w", err)
	}
	return uint8(n), command[2] == "true", command[3] == "true", nil
}

func applySynthStepCommand(s *Studio, command []string) error {
	if len(command) != 6 {
		return fmt.Errorf("synth_step requires index, note, accent, slide, active")
	}
	i, err := strconv.Atoi(command[1])
	if err != nil {
		return fmt.Errorf("synth_step: %w", err)
	}
	note, err := strconv.Atoi(command[2])
	if err != nil {
		return fmt.Errorf("synth_step: %w", err)
	}
	s.SetSynthStep(i, uint8(note), command[3] == "true", command[4] == "true", command[5] == "true")
	return nil
}

func applyDrumStepCommand(s *Studio, command []string) error {
	if len(command) != 6 {
		return fmt.Errorf("drum_step requires index, kick, snare, closed_hh, open_hh")
	}
	i, err := strconv.Atoi(command[1])
	if err != nil {
		return fmt.Errorf("drum_step: %w", err)
	}
	s.SetDrumStep(i, command[2] == "true", command[3] == "true", command[4] == "true", command[5] == "true")
	return nil
}

// ApplyMIDI bridges one raw MIDI message straight onto the voice, bypassing
// the sequencer (SPEC_FULL.md §11).
func (p *Player) ApplyMIDI(data []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	ApplyNoteEvent(p.studio, data)
}
