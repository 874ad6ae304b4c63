package analysis

import "fmt"

// EstimatePeriodDays recovers the dominant cycle length from a uniformly
// sampled coordinate trace. For a circular orbit the x (or y) trace is a pure
// sinusoid, so the spectrum's strongest non-DC bin sits at the orbital
// frequency. Resolution is limited by the trace length: one bin is
// 1/(n*sampleDays) cycles per day.
func EstimatePeriodDays(series []float64, sampleDays float64) (float64, error) {
	if sampleDays <= 0 {
		return 0, fmt.Errorf("sample interval must be positive, got %g", sampleDays)
	}
	if len(series) < 4 {
		return 0, fmt.Errorf("need at least 4 samples, got %d", len(series))
	}

	n := 1
	for n < len(series) {
		n *= 2
	}
	padded := make([]float64, n)
	copy(padded, series)

	ps := PowerSpectrum(padded)

	maxIdx := 0
	maxPower := 0.0
	for i := 1; i < len(ps); i++ {
		if ps[i] > maxPower {
			maxPower = ps[i]
			maxIdx = i
		}
	}
	if maxIdx == 0 {
		return 0, fmt.Errorf("no dominant frequency in trace")
	}

	freq := float64(maxIdx) / (float64(n) * sampleDays) // cycles per day
	return 1 / freq, nil
}
