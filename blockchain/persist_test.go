// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"

	"github.com/moinecalixte-cyber/aequitas/address"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	c := New(regnet())
	miner := address.Address{7}

	for h := uint64(1); h <= 3; h++ {
		block := buildBlock(t, c, simpleCoinbase(h, c.mustTipTimestamp(t)+regnet().TargetBlockTime, miner, miner))
		require.NoError(t, c.ApplyBlock(block))
	}

	data, err := c.Save()
	require.NoError(t, err)

	restored, err := Load(regnet(), data)
	require.NoError(t, err)

	wantTip, wantHeight := c.Tip()
	gotTip, gotHeight := restored.Tip()
	require.Equal(t, wantTip, gotTip)
	require.Equal(t, wantHeight, gotHeight)
	require.Equal(t, c.CurrentDifficulty(), restored.CurrentDifficulty())
	require.Equal(t, c.Balance(miner), restored.Balance(miner))
	require.Equal(t, len(c.utxos), len(restored.utxos))
}
