package audio

import (
	"context"
	"log"

	"gitlab.com/gomidi/rtmididrv"
)

// ListenMIDI opens the first available MIDI input port and streams raw
// MIDI messages until ctx is cancelled. The channel is closed when streaming
// ends, including when the driver or port cannot be opened. Live MIDI input
// is in scope per SPEC_FULL.md §11; MIDI *file* I/O is not.
func ListenMIDI(ctx context.Context) <-chan []byte {
	ch := make(chan []byte, 4096)
	go func() {
		defer close(ch)
		drv, err := rtmididrv.New()
		if err != nil {
			log.Printf("failed to initialize MIDI driver: %v\n", err)
			return
		}
		defer func() {
			if err := drv.Close(); err != nil {
				log.Printf("failed to close MIDI driver: %v\n", err)
			}
		}()
		ins, err := drv.Ins()
		if err != nil {
			log.Printf("failed to get MIDI inputs: %v\n", err)
			return
		}
		if len(ins) == 0 {
			log.Println("no MIDI input ports found")
			return
		}
		in := ins[0]
		if err := in.Open(); err != nil {
			log.Printf("failed to open MIDI input %q: %v\n", in.String(), err)
			return
		}
		log.Printf("listening on MIDI input %q\n", in.String())
		defer func() {
			if err := in.Close(); err != nil {
				log.Printf("failed to close MIDI input: %v\n", err)
			}
		}()
		if err := in.SetListener(func(data []byte, deltaMicroseconds int64) {
			ch <- data
		}); err != nil {
			log.Println("failed to set MIDI listener:", err)
			return
		}
		defer func() {
			if err := in.StopListening(); err != nil {
				log.Printf("failed to stop MIDI listener: %v\n", err)
			}
		}()
		<-ctx.Done()
	}()
	return ch
}

// DecodeNoteEvent interprets a raw MIDI message as a note-on/note-off pair,
// matching the standard status-byte layout: a note-on with velocity 0 is
// treated as a note-off, per the MIDI spec's running-status convention.
func DecodeNoteEvent(data []byte) (note uint8, on bool, ok bool) {
	if len(data) < 3 {
		return 0, false, false
	}
	status := data[0] >> 4
	switch {
	case status == 0x8:
		return data[1], false, true
	case status == 0x9:
		return data[1], data[2] > 0, true
	default:
		return 0, false, false
	}
}

// ApplyNoteEvent drives a Studio directly from a raw MIDI message, bridging
// live MIDI input straight onto the synth voice without going through the
// step sequencer.
func ApplyNoteEvent(s *Studio, data []byte) {
	note, on, ok := DecodeNoteEvent(data)
	if !ok {
		return
	}
	if on {
		s.SynthNoteOn(note, false, false)
	} else {
		s.SynthNoteOff()
	}
}
