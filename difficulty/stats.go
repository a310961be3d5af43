// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package difficulty

import (
	"math"
	"sort"
)

// Stats summarizes the intervals between a sequence of block timestamps
// for diagnostics. It has no bearing on consensus, and the control read
// model's "info" response does not include it.
type Stats struct {
	Average float64
	Median  float64
	StdDev  float64
	Min     float64
	Max     float64
}

// ComputeStats derives Stats from a sequence of unix-second timestamps
// ordered by ascending height. It reports ok=false when fewer than two
// timestamps are given.
func ComputeStats(timestamps []int64) (Stats, bool) {
	if len(timestamps) < 2 {
		return Stats{}, false
	}

	intervals := make([]float64, 0, len(timestamps)-1)
	var sum float64
	for i := 1; i < len(timestamps); i++ {
		d := float64(timestamps[i] - timestamps[i-1])
		intervals = append(intervals, d)
		sum += d
	}

	average := sum / float64(len(intervals))

	sorted := append([]float64(nil), intervals...)
	sort.Float64s(sorted)
	var median float64
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		median = sorted[mid]
	}

	var variance float64
	for _, v := range intervals {
		variance += (v - average) * (v - average)
	}
	variance /= float64(len(intervals))

	return Stats{
		Average: average,
		Median:  median,
		StdDev:  math.Sqrt(variance),
		Min:     sorted[0],
		Max:     sorted[len(sorted)-1],
	}, true
}
