package synth

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// DefaultLatency is the speaker buffer length.
// Bigger -> less CPU, slower response. Lower -> more CPU, faster response.
const DefaultLatency = 20 * time.Millisecond

// Speaker plays buffers on the default audio device through beep's speaker.
// A single mixer is started on Open and every scheduled buffer is added to
// it, so a new note never cuts off the previous one.
type Speaker struct {
	latency time.Duration
	mixer   *beep.Mixer
}

func NewSpeaker(latency time.Duration) *Speaker {
	if latency <= 0 {
		latency = DefaultLatency
	}
	return &Speaker{latency: latency}
}

// Open implements Output. beep's speaker is always stereo.
func (s *Speaker) Open(sr beep.SampleRate) (int, error) {
	if err := speaker.Init(sr, sr.N(s.latency)); err != nil {
		return 0, fmt.Errorf("speaker init: %w", err)
	}
	s.mixer = &beep.Mixer{}
	// Only need to call Play once.
	// The mixer will play silence if the streamers are drained.
	speaker.Play(s.mixer)
	return 2, nil
}

// Schedule implements Output.
func (s *Speaker) Schedule(b *Buffer) error {
	if s.mixer == nil {
		return ErrNotRunning
	}
	speaker.Lock()
	s.mixer.Add(b.Streamer())
	speaker.Unlock()
	return nil
}

// Close implements Output.
func (s *Speaker) Close() error {
	speaker.Clear()
	speaker.Close()
	s.mixer = nil
	return nil
}
