// Package reaction contains tools for calculating stats on how long it takes to
// find a note on the keyboard.
package reaction

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type (
	StatsMsg struct {
		Latest time.Duration
		Avg    time.Duration
		Min    time.Duration
		Max    time.Duration
		Count  int
	}
)

// CalcStats summarizes prev, the response times recorded so far, with latest
// being the most recent one. Averages are rounded to the nearest 10ms.
func CalcStats(latest time.Duration, prev []time.Duration) tea.Cmd {
	return func() tea.Msg {
		return Summarize(latest, prev)
	}
}

func Summarize(latest time.Duration, prev []time.Duration) StatsMsg {
	if len(prev) == 0 {
		return StatsMsg{Latest: latest}
	}
	step := float64(10 * time.Millisecond)
	roundedAvg := math.Round(float64(Avg(prev))/step) * step
	return StatsMsg{
		Latest: latest,
		Avg:    time.Duration(roundedAvg),
		Max:    Max(prev),
		Min:    Min(prev),
		Count:  len(prev),
	}
}

func Min(times []time.Duration) time.Duration {
	if len(times) == 0 {
		return 0
	}
	min := math.Inf(1)
	for _, t := range times {
		min = math.Min(min, float64(t))
	}
	return time.Duration(min)
}

func Max(times []time.Duration) time.Duration {
	if len(times) == 0 {
		return 0
	}
	max := math.Inf(-1)
	for _, t := range times {
		max = math.Max(max, float64(t))
	}
	return time.Duration(max)
}

func Avg(times []time.Duration) time.Duration {
	if len(times) == 0 {
		return 0
	}
	sum := time.Duration(0)
	for _, t := range times {
		sum = sum + t
	}
	return sum / time.Duration(len(times))
}
