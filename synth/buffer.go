package synth

import (
	"fmt"

	"github.com/faiface/beep"
)

type (
	// Buffer holds one rendered note, one sample slice per output channel.
	Buffer struct {
		SampleRate beep.SampleRate
		// Canonical pitch number of the note, 0 when rendered from a raw frequency.
		Number    int
		Frequency float64

		data [][]float32
	}

	// Streamer plays a Buffer once. It implements beep.StreamSeeker.
	Streamer struct {
		pos int
		buf *Buffer
	}
)

func newBuffer(sr beep.SampleRate, channels, frames int) *Buffer {
	data := make([][]float32, channels)
	for c := range data {
		data[c] = make([]float32, frames)
	}
	return &Buffer{SampleRate: sr, data: data}
}

// Len returns the number of frames in the buffer.
func (b *Buffer) Len() int {
	if len(b.data) == 0 {
		return 0
	}
	return len(b.data[0])
}

func (b *Buffer) Channels() int {
	return len(b.data)
}

// Channel returns the samples of channel c. The slice is shared with the buffer.
func (b *Buffer) Channel(c int) []float32 {
	return b.data[c]
}

// Streamer returns a new streamer positioned at the first frame.
func (b *Buffer) Streamer() *Streamer {
	return &Streamer{buf: b}
}

// stereo maps the buffer onto beep's two channels. A mono buffer feeds both.
func (b *Buffer) stereo() (left, right []float32) {
	left = b.data[0]
	right = left
	if len(b.data) > 1 {
		right = b.data[1]
	}
	return left, right
}

// Stream implements beep.Streamer.
func (s *Streamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.buf.Len() {
		return 0, false
	}
	left, right := s.buf.stereo()
	for i := range samples {
		if s.pos >= len(left) {
			break
		}
		samples[i][0] = float64(left[s.pos])
		samples[i][1] = float64(right[s.pos])
		s.pos++
		n++
	}
	return n, true
}

// Len returns the total number of samples of the Streamer.
func (s *Streamer) Len() int {
	return s.buf.Len()
}

// Position returns the current position of the Streamer.
func (s *Streamer) Position() int {
	return s.pos
}

// Seek sets the position of the Streamer to the provided value.
func (s *Streamer) Seek(p int) error {
	if p < 0 || p > s.buf.Len() {
		return fmt.Errorf("p is out of range: %d", p)
	}
	s.pos = p
	return nil
}

func (s *Streamer) Err() error {
	return nil
}
