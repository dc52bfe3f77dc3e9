package synth_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/mjibson/go-dsp/fft"
	"github.com/rapidmidiex/notedrill/pitch"
	"github.com/rapidmidiex/notedrill/synth"
	"github.com/stretchr/testify/require"
)

func TestFrequency(t *testing.T) {
	require.InDelta(t, 440.0, synth.Frequency(69), 1e-9)
	require.InDelta(t, 880.0, synth.Frequency(81), 1e-9)
	require.InDelta(t, 220.0, synth.Frequency(57), 1e-9)
	require.InDelta(t, 261.6256, synth.FrequencyOf(pitch.MustNew(pitch.C, pitch.Natural, 4)), 1e-4)

	// Enharmonic spellings sound the same.
	require.Equal(t,
		synth.FrequencyOf(pitch.MustNew(pitch.C, pitch.Sharp, 4)),
		synth.FrequencyOf(pitch.MustNew(pitch.D, pitch.Flat, 4)),
	)
}

func TestEnvelope(t *testing.T) {
	env := synth.DefaultEnvelope
	const dur = 1.0

	tests := []struct {
		name string
		t    float64
		want float64
	}{
		{"starts silent", 0, 0},
		{"is halfway up mid-attack", 0.005, 0.5},
		{"peaks at the end of attack", 0.01, 1},
		{"is halfway down mid-decay", 0.06, 0.55},
		{"holds the sustain level", 0.5, 0.1},
		{"starts the release at sustain", 0.9, 0.1},
		{"is halfway released", 0.95, 0.05},
		{"ends silent", 1.0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, env.Level(tt.t, dur), 1e-9)
		})
	}
}

func TestRender(t *testing.T) {
	a4 := pitch.MustNew(pitch.A, pitch.Natural, 4)
	voice := synth.DefaultVoice()
	freq := synth.FrequencyOf(a4)

	t.Run("renders exactly one second at 44.1 kHz", func(t *testing.T) {
		buf := synth.Render(a4, 2)
		require.Equal(t, 44100, buf.Len())
		require.Equal(t, 2, buf.Channels())
		require.Equal(t, synth.SampleRate, buf.SampleRate)
		require.Equal(t, 69, buf.Number)
		require.InDelta(t, 440.0, buf.Frequency, 1e-9)
	})

	t.Run("writes the same signal to every channel", func(t *testing.T) {
		buf := synth.Render(a4, 4)
		for c := 1; c < buf.Channels(); c++ {
			require.Equal(t, buf.Channel(0), buf.Channel(c))
		}
	})

	t.Run("shapes the signal with the envelope", func(t *testing.T) {
		buf := synth.Render(a4, 1)
		samples := buf.Channel(0)
		rate := float64(synth.SampleRate)

		require.Zero(t, samples[0])

		// t = 220/44100 ≈ 0.005 s, half way through the attack
		i := 220
		tm := float64(i) / rate
		half := voice.Oscillate(freq, tm) * 0.5
		require.InDelta(t, half, float64(samples[i]), 1e-3)

		require.InDelta(t, 0, float64(samples[len(samples)-1]), 1e-4)
	})

	t.Run("stays within headroom", func(t *testing.T) {
		buf := synth.Render(a4, 1)
		var peak float64
		for _, s := range buf.Channel(0) {
			peak = math.Max(peak, math.Abs(float64(s)))
		}
		require.Greater(t, peak, 0.0)
		require.LessOrEqual(t, peak, synth.Headroom)
	})

	t.Run("embeds the fundamental frequency", func(t *testing.T) {
		for _, name := range []string{"C4", "E4", "G4", "A4", "B2", "C5"} {
			n, err := pitch.Parse(name)
			require.NoError(t, err)
			buf := synth.Render(n, 1)
			require.InDelta(t, synth.FrequencyOf(n), peakFrequency(buf), 1.5, name)
		}
	})
}

func TestStreamer(t *testing.T) {
	buf := synth.Render(pitch.MustNew(pitch.C, pitch.Natural, 4), 2)

	t.Run("streams the buffer once", func(t *testing.T) {
		s := buf.Streamer()
		chunk := make([][2]float64, 1000)
		total := 0
		for {
			n, ok := s.Stream(chunk)
			if !ok {
				break
			}
			total += n
		}
		require.Equal(t, buf.Len(), total)
		require.Equal(t, buf.Len(), s.Position())
		require.NoError(t, s.Err())
	})

	t.Run("seeks within range", func(t *testing.T) {
		s := buf.Streamer()
		require.NoError(t, s.Seek(100))
		require.Equal(t, 100, s.Position())
		require.Error(t, s.Seek(-1))
		require.Error(t, s.Seek(buf.Len()+1))
	})

	t.Run("streams left and right samples", func(t *testing.T) {
		s := buf.Streamer()
		chunk := make([][2]float64, 64)
		n, ok := s.Stream(chunk)
		require.True(t, ok)
		require.Equal(t, 64, n)
		for i := range chunk {
			require.Equal(t, float64(buf.Channel(0)[i]), chunk[i][0])
			require.Equal(t, float64(buf.Channel(1)[i]), chunk[i][1])
		}

		require.NoError(t, s.Seek(buf.Len()-10))
		n, ok = s.Stream(chunk)
		require.True(t, ok)
		require.Equal(t, 10, n)
	})
}

// peakFrequency returns the frequency of the strongest FFT bin of channel 0.
func peakFrequency(buf *synth.Buffer) float64 {
	samples := buf.Channel(0)
	x := make([]float64, len(samples))
	for i, s := range samples {
		x[i] = float64(s)
	}
	spectrum := fft.FFTReal(x)

	peakBin, peakMag := 0, 0.0
	for k := 1; k < len(spectrum)/2; k++ {
		if mag := cmplx.Abs(spectrum[k]); mag > peakMag {
			peakBin, peakMag = k, mag
		}
	}
	return float64(peakBin) * float64(buf.SampleRate) / float64(len(x))
}
