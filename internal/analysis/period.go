package analysis

import "github.com/san-kum/lifesim/internal/life"

const (
	// MaxLookback bounds the backward scan of DetectPeriod.
	MaxLookback = 200

	// NoPeriod is returned when no repeat of the final frame was found.
	NoPeriod = -1
)

// DetectPeriod returns the distance from the last frame back to its most
// recent exact repeat, searching at most MaxLookback frames, or NoPeriod.
func DetectPeriod(frames []*life.Grid) int {
	return DetectPeriodWindow(frames, MaxLookback)
}

// DetectPeriodWindow is DetectPeriod with a caller-chosen lookback. The
// effective window is min(len(frames), lookback).
func DetectPeriodWindow(frames []*life.Grid, lookback int) int {
	n := len(frames)
	if n < 2 || lookback < 1 {
		return NoPeriod
	}
	window := min(n, lookback)
	last := frames[n-1]
	for i := n - 2; i > n-2-window && i >= 0; i-- {
		if last.Equal(frames[i]) {
			return n - 1 - i
		}
	}
	return NoPeriod
}
