// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aequihash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMeetsTargetBoundary(t *testing.T) {
	target := Target(1000)

	require.True(t, MeetsTarget(target, target))

	plusOne := target
	// Incrementing the least significant byte makes the hash strictly
	// larger, so it must no longer meet the target.
	plusOne[31]++
	require.False(t, MeetsTarget(plusOne, target))

	minusOne := target
	minusOne[31]--
	require.True(t, MeetsTarget(minusOne, target))
}

func TestTargetDecreasesWithDifficulty(t *testing.T) {
	low := Target(1000)
	high := Target(2000)
	require.True(t, MeetsTarget(high, low))
	require.False(t, MeetsTarget(low, high))
}
