// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenesisBlockDeterministic(t *testing.T) {
	a := MainNetParams().GenesisBlock()
	b := MainNetParams().GenesisBlock()
	require.Equal(t, a.Hash(), b.Hash())
}

func TestNetworksHaveDistinctGenesisBlocks(t *testing.T) {
	main := MainNetParams().GenesisBlock()
	test := TestNetParams().GenesisBlock()
	require.NotEqual(t, main.Hash(), test.Hash())
}

func TestGenesisBlockHeightZeroSingleCoinbase(t *testing.T) {
	g := MainNetParams().GenesisBlock()
	require.EqualValues(t, 0, g.Header.Height)
	require.Len(t, g.Transactions, 1)
	require.Equal(t, g.MerkleLeaves()[0], g.Transactions[0].Hash())
}

func TestRegNetUsesSmallTables(t *testing.T) {
	r := RegNetParams()
	require.Less(t, r.CacheSizeWords, MainNetParams().CacheSizeWords)
	require.Less(t, r.DagSizeWords, MainNetParams().DagSizeWords)
}
