// Package report turns tracked experiment series into artifacts
package report

// DefaultWindow is the default smoothing window for episodic series
const DefaultWindow int = 100

// Reporter consumes an ordered series of per-episode metrics, such as
// step counts, and produces some artifact from it. The experiment
// consumes nothing in return.
type Reporter interface {
	Report(series []float64) error
}

// MovingAverage returns the trailing moving average of a series. The
// value at index t is the mean of the last window values up to and
// including index t; early indices, where fewer than window values
// exist, average over all values seen so far.
func MovingAverage(series []float64, window int) []float64 {
	if window < 1 {
		panic("movingAverage: window must be positive")
	}

	smoothed := make([]float64, len(series))
	sum := 0.0

	for t := range series {
		sum += series[t]
		if t >= window {
			sum -= series[t-window]
			smoothed[t] = sum / float64(window)
		} else {
			smoothed[t] = sum / float64(t+1)
		}
	}
	return smoothed
}
