// Package midiexport renders a decoded Fingering sequence to a Standard
// MIDI File, one chord block per Fingering, using the same absolute-tick
// event collection, sort, and delta-time conversion approach used
// elsewhere in the pack for building Standard MIDI Files from scratch.
package midiexport

import (
	"fmt"
	"io"
	"os"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"fretpath/fingering"
)

// Options configures how a Fingering sequence becomes a MIDI file.
type Options struct {
	// Tempo in beats per minute.
	Tempo float64
	// TicksPerQuarter is the SMF time division.
	TicksPerQuarter int
	// BeatsPerChord is how many quarter notes each Fingering sounds for.
	BeatsPerChord float64
	// Program is the GM instrument program number (0 = Acoustic Grand
	// Piano; 24 = Acoustic Nylon Guitar is the natural default here).
	Program uint8
	// Channel is the MIDI channel events are written on.
	Channel uint8
	// Pattern controls how a Fingering's notes are spread across its
	// chord duration. Defaults to Block.
	Pattern Pattern
}

// DefaultOptions returns sensible defaults for exporting a fingering
// sequence as a short nylon-guitar demo.
func DefaultOptions() Options {
	return Options{
		Tempo:           100,
		TicksPerQuarter: 480,
		BeatsPerChord:   4,
		Program:         24,
		Channel:         0,
		Pattern:         PatternBlock,
	}
}

type event struct {
	tick    uint32
	message midi.Message
}

// Write renders sequence to an SMF file at path.
func Write(path string, sequence []fingering.Fingering, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("midiexport: creating %s: %w", path, err)
	}
	defer f.Close()
	return Encode(f, sequence, opts)
}

// Encode renders sequence as an SMF directly to w.
func Encode(w io.Writer, sequence []fingering.Fingering, opts Options) error {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(uint16(opts.TicksPerQuarter))

	var tempoTrack smf.Track
	tempoTrack.Add(0, smf.MetaTempo(opts.Tempo))
	tempoTrack.Close(0)
	s.Add(tempoTrack)

	var notesTrack smf.Track
	notesTrack.Add(0, midi.ProgramChange(opts.Channel, opts.Program))

	ticksPerChord := uint32(opts.BeatsPerChord * float64(opts.TicksPerQuarter))
	var events []event
	for i, f := range sequence {
		start := uint32(i) * ticksPerChord
		events = append(events, chordEvents(f, start, ticksPerChord, opts)...)
	}

	sort.SliceStable(events, func(i, j int) bool { return events[i].tick < events[j].tick })

	var prevTick uint32
	for _, e := range events {
		delta := e.tick - prevTick
		notesTrack.Add(delta, e.message)
		prevTick = e.tick
	}
	notesTrack.Close(0)
	s.Add(notesTrack)

	_, err := s.WriteTo(w)
	if err != nil {
		return fmt.Errorf("midiexport: writing SMF: %w", err)
	}
	return nil
}

func chordEvents(f fingering.Fingering, start, duration uint32, opts Options) []event {
	placements := opts.Pattern.Place(f, duration)
	events := make([]event, 0, len(placements)*2)
	for _, p := range placements {
		key := uint8(p.Position.Note.MIDI())
		onTick := start + p.Offset
		offTick := onTick + p.Duration
		events = append(events,
			event{onTick, midi.NoteOn(opts.Channel, key, p.Velocity)},
			event{offTick, midi.NoteOff(opts.Channel, key)},
		)
	}
	return events
}
