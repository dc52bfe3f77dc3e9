// Package synth renders notes into PCM buffers and plays them.
//
// A note is an additive stack of six harmonics shaped by an ADSR envelope.
// Rendering is pure and can run anywhere; playback goes through an Engine,
// which owns a single audio worker and the output device.
package synth

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/rapidmidiex/notedrill/pitch"
)

const (
	SampleRate beep.SampleRate = 44100

	// NoteDuration is the length of every rendered note.
	NoteDuration = time.Second

	// Headroom scales the normalized harmonic sum to keep overlapping notes
	// away from clipping.
	Headroom = 0.3

	// A4 is the tuning reference, MIDI note 69.
	A4Frequency = 440.0
	A4Number    = 69
)

type (
	// Harmonic is one partial of a note, relative to the fundamental.
	Harmonic struct {
		Ratio     float64
		Amplitude float64
	}

	// Envelope is an attack-decay-sustain-release curve. Attack, Decay and
	// Release are in seconds; Sustain is a level in [0, 1].
	Envelope struct {
		Attack  float64
		Decay   float64
		Sustain float64
		Release float64
	}

	// Voice describes how a note is rendered.
	Voice struct {
		Harmonics  []Harmonic
		Envelope   Envelope
		Headroom   float64
		Duration   time.Duration
		SampleRate beep.SampleRate
	}
)

var (
	DefaultHarmonics = []Harmonic{
		{Ratio: 1, Amplitude: 1.0},
		{Ratio: 2, Amplitude: 0.5},
		{Ratio: 3, Amplitude: 0.3},
		{Ratio: 4, Amplitude: 0.2},
		{Ratio: 5, Amplitude: 0.15},
		{Ratio: 6, Amplitude: 0.1},
	}

	DefaultEnvelope = Envelope{
		Attack:  0.01,
		Decay:   0.1,
		Sustain: 0.1,
		Release: 0.1,
	}
)

// Frequency converts a canonical pitch number to Hz in equal temperament.
func Frequency(number int) float64 {
	return A4Frequency * math.Pow(2, float64(number-A4Number)/12)
}

func FrequencyOf(n pitch.Note) float64 {
	return Frequency(n.Number())
}

func DefaultVoice() Voice {
	return Voice{
		Harmonics:  DefaultHarmonics,
		Envelope:   DefaultEnvelope,
		Headroom:   Headroom,
		Duration:   NoteDuration,
		SampleRate: SampleRate,
	}
}

// Render renders n with the default voice, writing the same signal to each of
// channels outputs.
func Render(n pitch.Note, channels int) *Buffer {
	b := DefaultVoice().Render(FrequencyOf(n), channels)
	b.Number = n.Number()
	return b
}

// Level returns the envelope gain at t seconds into a note lasting duration
// seconds. Release starts at duration-Release and ends at zero.
func (e Envelope) Level(t, duration float64) float64 {
	switch {
	case t < 0:
		return 0
	case t < e.Attack:
		return t / e.Attack
	case t < e.Attack+e.Decay:
		progress := (t - e.Attack) / e.Decay
		return 1 - (1-e.Sustain)*progress
	case t < duration-e.Release:
		return e.Sustain
	case t < duration:
		progress := (t - (duration - e.Release)) / e.Release
		return e.Sustain * (1 - progress)
	}
	return 0
}

// Oscillate returns the normalized harmonic sum at t seconds, before the
// envelope is applied.
func (v Voice) Oscillate(freq, t float64) float64 {
	if len(v.Harmonics) == 0 {
		return 0
	}
	var sum float64
	for _, h := range v.Harmonics {
		sum += math.Sin(2*math.Pi*freq*h.Ratio*t) * h.Amplitude
	}
	return sum / float64(len(v.Harmonics)) * v.Headroom
}

// Render synthesizes one note at freq Hz.
func (v Voice) Render(freq float64, channels int) *Buffer {
	if channels < 1 {
		channels = 1
	}
	frames := v.SampleRate.N(v.Duration)
	duration := v.Duration.Seconds()
	rate := float64(v.SampleRate)

	b := newBuffer(v.SampleRate, channels, frames)
	b.Frequency = freq

	mono := b.data[0]
	for i := range mono {
		t := float64(i) / rate
		mono[i] = float32(v.Oscillate(freq, t) * v.Envelope.Level(t, duration))
	}
	for c := 1; c < channels; c++ {
		copy(b.data[c], mono)
	}
	return b
}
