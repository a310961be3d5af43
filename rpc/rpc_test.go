// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"testing"

	"github.com/moinecalixte-cyber/aequitas/address"
	"github.com/moinecalixte-cyber/aequitas/blockchain"
	"github.com/moinecalixte-cyber/aequitas/chaincfg"
	"github.com/moinecalixte-cyber/aequitas/chainhash"
	"github.com/moinecalixte-cyber/aequitas/wire"
	"github.com/stretchr/testify/require"
)

func TestInfoReportsTipAndDifficulty(t *testing.T) {
	chain := blockchain.New(chaincfg.RegNetParams())
	m := NewReadModel(chain)

	info := m.Info()
	wantTip, wantHeight := chain.Tip()
	require.Equal(t, wantTip, info.TipHash)
	require.Equal(t, wantHeight, info.Height)
	require.Equal(t, chain.CurrentDifficulty(), info.Difficulty)
}

func TestBlockByHashAndHeightReflectGenesis(t *testing.T) {
	chain := blockchain.New(chaincfg.RegNetParams())
	m := NewReadModel(chain)

	tip, _ := chain.Tip()

	byHash, err := m.BlockByHash(tip)
	require.NoError(t, err)
	byHeight, err := m.BlockByHeight(0)
	require.NoError(t, err)
	require.Equal(t, byHash.Hash(), byHeight.Hash())
}

func TestBlockByHashUnknownReturnsError(t *testing.T) {
	chain := blockchain.New(chaincfg.RegNetParams())
	m := NewReadModel(chain)

	_, err := m.BlockByHash(chainhash.Hash{0xff})
	require.Error(t, err)
}

func TestBlockTemplateTargetsNextHeightAndDifficulty(t *testing.T) {
	chain := blockchain.New(chaincfg.RegNetParams())
	m := NewReadModel(chain)

	tmpl := m.BlockTemplate()
	tip, height := chain.Tip()

	require.Equal(t, tip, tmpl.PrevHash)
	require.Equal(t, height+1, tmpl.Height)
	require.Equal(t, chain.NextDifficulty(), tmpl.Difficulty)
	require.NotEqual(t, [32]byte{}, tmpl.HeaderHash)
}

func TestSubmitBlockRejectsWrongPrevHash(t *testing.T) {
	chain := blockchain.New(chaincfg.RegNetParams())
	m := NewReadModel(chain)

	bad := &wire.Block{
		Header: wire.BlockHeader{
			PrevBlock: chainhash.Hash{9, 9, 9},
			Height:    1,
		},
		Transactions: []*wire.Transaction{
			wire.NewCoinbase(address.Address{1}, 1, 1, 0),
		},
	}

	result := m.SubmitBlock(bad)
	require.False(t, result.Accepted)
	require.NotEmpty(t, result.Reason)
}
