package synth

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

// WriteWAV encodes bufs one after another as a 16-bit stereo WAV file.
func WriteWAV(w io.WriteSeeker, bufs ...*Buffer) error {
	if len(bufs) == 0 {
		return errors.New("write wav: no buffers")
	}
	streamers := make([]beep.Streamer, 0, len(bufs))
	for _, b := range bufs {
		streamers = append(streamers, b.Streamer())
	}
	format := beep.Format{
		SampleRate:  bufs[0].SampleRate,
		NumChannels: 2,
		Precision:   2,
	}
	if err := wav.Encode(w, beep.Seq(streamers...), format); err != nil {
		return fmt.Errorf("write wav: %w", err)
	}
	return nil
}

// WAVOutput is an Output that records scheduled buffers and writes them to a
// file on Close. It is meant for rendering without an audio device.
type WAVOutput struct {
	path string
	bufs []*Buffer
}

func NewWAVOutput(path string) *WAVOutput {
	return &WAVOutput{path: path}
}

// Open implements Output.
func (o *WAVOutput) Open(beep.SampleRate) (int, error) {
	o.bufs = o.bufs[:0]
	return 2, nil
}

// Schedule implements Output.
func (o *WAVOutput) Schedule(b *Buffer) error {
	o.bufs = append(o.bufs, b)
	return nil
}

// Close implements Output. Nothing is written if no buffer was scheduled.
func (o *WAVOutput) Close() error {
	if len(o.bufs) == 0 {
		return nil
	}
	f, err := os.Create(o.path)
	if err != nil {
		return err
	}
	if err := WriteWAV(f, o.bufs...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
