// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines the network-wide consensus parameters and the
// genesis block/state for each of Aequitas's deployments.
package chaincfg

import (
	"time"

	"github.com/moinecalixte-cyber/aequitas/difficulty"
	"github.com/moinecalixte-cyber/aequitas/merkle"
	"github.com/moinecalixte-cyber/aequitas/subsidy"
	"github.com/moinecalixte-cyber/aequitas/wire"
)

// Params holds the consensus-critical constants and genesis definition for
// a single Aequitas network deployment. A conforming node must agree with
// its peers on every field here; Params is never mutated after
// construction.
type Params struct {
	// Name identifies the network ("mainnet", "testnet", "regnet").
	Name string

	// GenesisTimestamp is the Unix timestamp stamped into the genesis
	// block header.
	GenesisTimestamp int64

	// GenesisDifficulty is the starting difficulty before any
	// retargeting has occurred.
	GenesisDifficulty uint64

	// TargetBlockTime, AveragingWindow, MinDifficulty mirror the
	// difficulty package's tunables. MinDifficulty floors retargeting and
	// AveragingWindow sizes the chain's retarget ring (twice the window);
	// the retarget computation itself always aims at
	// difficulty.TargetBlockTime and averages over at most
	// difficulty.AveragingWindow entries, so TargetBlockTime here does not
	// change retargeting.
	TargetBlockTime int64
	AveragingWindow int
	MinDifficulty   uint64

	// CacheSizeWords and DagSizeWords size the AequiHash per-epoch
	// tables; regnet shrinks both so tests don't allocate gigabytes.
	CacheSizeWords int
	DagSizeWords   int
}

// MainNetParams returns the consensus parameters for the production
// Aequitas network.
func MainNetParams() *Params {
	return &Params{
		Name:              "mainnet",
		GenesisTimestamp:  1735689600, // 2025-01-01T00:00:00Z
		GenesisDifficulty: difficulty.MinDifficulty,
		TargetBlockTime:   difficulty.TargetBlockTime,
		AveragingWindow:   difficulty.AveragingWindow,
		MinDifficulty:     difficulty.MinDifficulty,
		CacheSizeWords:    64 * 1024 * 1024 / 4,
		DagSizeWords:      4 * 1024 * 1024 * 1024 / 4,
	}
}

// TestNetParams returns parameters for a public test network: identical
// consensus rules to mainnet but a distinct genesis timestamp so the two
// chains never collide.
func TestNetParams() *Params {
	p := MainNetParams()
	p.Name = "testnet"
	p.GenesisTimestamp = 1735689600 + 1
	return p
}

// RegNetParams returns parameters for local regression testing: tiny
// AequiHash tables and a short averaging window so a full epoch can be
// exercised in-process without multi-gigabyte allocations.
func RegNetParams() *Params {
	return &Params{
		Name:              "regnet",
		GenesisTimestamp:  1735689600 + 2,
		GenesisDifficulty: 1,
		TargetBlockTime:   difficulty.TargetBlockTime,
		AveragingWindow:   8,
		MinDifficulty:     1,
		CacheSizeWords:    1 << 15,
		DagSizeWords:      1 << 18,
	}
}

// GenesisBlock constructs the fixed genesis block for p: height 0, a
// coinbase paying the full genesis reward to the treasury/genesis
// address, and a zero previous hash.
func (p *Params) GenesisBlock() *wire.Block {
	coinbase := wire.NewCoinbase(subsidy.GenesisAddress(), subsidy.GenesisReward, 0, p.GenesisTimestamp)

	block := &wire.Block{
		Header: wire.BlockHeader{
			Version:    1,
			PrevBlock:  zeroHash(),
			Timestamp:  p.GenesisTimestamp,
			Difficulty: p.GenesisDifficulty,
			Nonce:      0,
			Height:     0,
		},
		Transactions: []*wire.Transaction{coinbase},
	}
	block.Header.MerkleRoot = merkle.Root(block.MerkleLeaves())
	return block
}

func zeroHash() (h [32]byte) { return h }

// GenesisTime returns the genesis timestamp as a time.Value, primarily
// useful for logging at startup.
func (p *Params) GenesisTime() time.Time {
	return time.Unix(p.GenesisTimestamp, 0).UTC()
}
