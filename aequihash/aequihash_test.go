// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aequihash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeEpochSeedDeterministic(t *testing.T) {
	require.Equal(t, ComputeEpochSeed(0), ComputeEpochSeed(0))
	require.NotEqual(t, ComputeEpochSeed(0), ComputeEpochSeed(1))
}

func TestEpochFromHeight(t *testing.T) {
	require.EqualValues(t, 0, EpochFromHeight(0))
	require.EqualValues(t, 0, EpochFromHeight(EpochLength-1))
	require.EqualValues(t, 1, EpochFromHeight(EpochLength))
}

func TestDeriveProgramDeterministic(t *testing.T) {
	seed := ComputeEpochSeed(7)
	require.Equal(t, DeriveProgram(seed), DeriveProgram(seed))
}

func TestComputeCacheSmallDeterministic(t *testing.T) {
	seed := ComputeEpochSeed(0)
	c1 := ComputeCache(seed, 256)
	c2 := ComputeCache(seed, 256)
	require.Equal(t, c1, c2)
	require.Len(t, c1, 256)
}

// Scenario G3: hash_light is a pure function of (header, nonce, cache) and
// differs across nonces.
func TestHashLightScenarioG3(t *testing.T) {
	epoch := &Epoch{
		Number:  0,
		Seed:    ComputeEpochSeed(0),
		Program: DeriveProgram(ComputeEpochSeed(0)),
		Cache:   ComputeCache(ComputeEpochSeed(0), 1<<18), // 1 MiB / 4
	}
	var header [32]byte

	h1 := HashLight(header, 0, epoch)
	h2 := HashLight(header, 0, epoch)
	require.Equal(t, h1, h2)

	h3 := HashLight(header, 1, epoch)
	require.NotEqual(t, h1, h3)
}

func TestGenerateDagItemDeterministic(t *testing.T) {
	cache := ComputeCache(ComputeEpochSeed(0), 1<<14)
	a := generateDagItem(cache, 3)
	b := generateDagItem(cache, 3)
	require.Equal(t, a, b)

	c := generateDagItem(cache, 4)
	require.NotEqual(t, a, c)
}

func TestHashFullMatchesAcrossCalls(t *testing.T) {
	cache := ComputeCache(ComputeEpochSeed(0), 1<<14)
	dag := GenerateDataset(cache, 1<<14)
	epoch := &Epoch{Number: 0, Seed: ComputeEpochSeed(0), Program: DeriveProgram(ComputeEpochSeed(0)), Cache: cache}

	var header [32]byte
	h1 := HashFull(header, 42, epoch, dag)
	h2 := HashFull(header, 42, epoch, dag)
	require.Equal(t, h1, h2)
}
