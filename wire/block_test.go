// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"testing"

	"github.com/moinecalixte-cyber/aequitas/merkle"
	"github.com/stretchr/testify/require"
)

func TestBlockSerializeRoundTrip(t *testing.T) {
	kp := mustKeypair(t)
	cb := NewCoinbase(kp.Address, 50_000_000_000, 0, 1700000000)

	block := &Block{
		Header: BlockHeader{
			Version:    1,
			Timestamp:  1700000000,
			Difficulty: 1000,
			Height:     0,
		},
		Transactions: []*Transaction{cb},
	}
	block.Header.MerkleRoot = merkle.Root(block.MerkleLeaves())

	var buf bytes.Buffer
	require.NoError(t, block.Serialize(&buf))

	got, err := DeserializeBlock(&buf)
	require.NoError(t, err)
	require.Equal(t, block.Hash(), got.Hash())
	require.Len(t, got.Transactions, 1)
}

func TestHeaderHashChangesWithNonce(t *testing.T) {
	h1 := BlockHeader{Version: 1, Difficulty: 1000, Nonce: 0}
	h2 := h1
	h2.Nonce = 1
	require.NotEqual(t, h1.Hash(), h2.Hash())
}

func TestMerkleLeavesMatchTransactionHashes(t *testing.T) {
	kp := mustKeypair(t)
	cb := NewCoinbase(kp.Address, 1, 0, 1)
	block := &Block{Transactions: []*Transaction{cb}}
	leaves := block.MerkleLeaves()
	require.Len(t, leaves, 1)
	require.Equal(t, cb.Hash(), leaves[0])
}
