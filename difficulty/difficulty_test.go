// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package difficulty

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func blockTimes(n int, spacing int64) []BlockTime {
	out := make([]BlockTime, n)
	for i := range out {
		out[i] = BlockTime{Height: uint64(i), Timestamp: int64(i) * spacing}
	}
	return out
}

func TestNextReturnsCurrentWithoutEnoughObservations(t *testing.T) {
	require.EqualValues(t, 10000, Next(10000, nil))
	require.EqualValues(t, 10000, Next(10000, []BlockTime{{Height: 0, Timestamp: 0}}))
}

func TestNextIncreasesWhenBlocksComeFast(t *testing.T) {
	next := Next(10000, blockTimes(10, 15))
	require.Greater(t, next, uint64(10000))
}

func TestNextDecreasesWhenBlocksComeSlow(t *testing.T) {
	next := Next(10000, blockTimes(10, 60))
	require.Less(t, next, uint64(10000))
}

func TestNextClampsToMinDifficulty(t *testing.T) {
	next := Next(1, blockTimes(10, 60))
	require.EqualValues(t, MinDifficulty, next)
}

func TestNextClampFactorBounds(t *testing.T) {
	// Extremely fast blocks still only move the difficulty by the +10%
	// per-step clamp.
	next := Next(10000, blockTimes(10, 1))
	require.EqualValues(t, uint64(11000), next)

	// Extremely slow blocks are clamped to the -10% floor.
	next = Next(10000, blockTimes(10, 10000))
	require.EqualValues(t, uint64(9000), next)
}

func TestComputeStatsBasic(t *testing.T) {
	stats, ok := ComputeStats([]int64{0, 30, 60, 120})
	require.True(t, ok)
	require.InDelta(t, 40.0, stats.Average, 0.001)
	require.Equal(t, 30.0, stats.Min)
	require.Equal(t, 60.0, stats.Max)
}

func TestComputeStatsNeedsTwoPoints(t *testing.T) {
	_, ok := ComputeStats([]int64{1})
	require.False(t, ok)
}

func TestNextWithFloorHonorsCustomFloor(t *testing.T) {
	next := NextWithFloor(1, blockTimes(10, 60), 1)
	require.EqualValues(t, 1, next)
}
