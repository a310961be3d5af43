// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package subsidy implements Aequitas's tiered block reward policy: a
// halving schedule, the fixed treasury/solidarity cut, and the
// deterministic solidarity-beneficiary selection rule.
package subsidy

import (
	"github.com/moinecalixte-cyber/aequitas/address"
	"github.com/moinecalixte-cyber/aequitas/chainhash"
)

// Consensus-critical reward constants every conforming node must honor.
const (
	GenesisReward    uint64 = 50_000_000_000
	HalvingInterval  uint64 = 2_100_000
	MaxSupply        uint64 = 210_000_000_000_000_000
	TreasuryPercent  uint64 = 1
	SolidarityPercent uint64 = 1
	maxHalvings             = 64

	// SolidarityWindow is the number of most-recent blocks (inclusive of
	// the current one) scanned to pick the solidarity beneficiary.
	SolidarityWindow = 101

	// SolidarityActivationHeight is the last height at which the
	// beneficiary computation is advisory; for every block above it the
	// coinbase's third output must pay the computed beneficiary.
	SolidarityActivationHeight = 100
)

// RewardForHeight returns the base block reward at height h:
// floor(GenesisReward * 2^-floor(h/HalvingInterval)), zero once 64
// halvings have elapsed.
func RewardForHeight(height uint64) uint64 {
	halvings := height / HalvingInterval
	if halvings >= maxHalvings {
		return 0
	}
	return GenesisReward >> halvings
}

// Split divides a block's base reward into the miner, treasury and
// solidarity shares. The treasury and solidarity cuts are each floor(base *
// pct / 100); the miner receives the remainder so the three always sum to
// exactly base.
type Split struct {
	Miner      uint64
	Treasury   uint64
	Solidarity uint64
}

// SplitReward computes the tiered split of base per §4.6.
func SplitReward(base uint64) Split {
	treasury := base * TreasuryPercent / 100
	solidarity := base * SolidarityPercent / 100
	return Split{
		Treasury:   treasury,
		Solidarity: solidarity,
		Miner:      base - treasury - solidarity,
	}
}

// GenesisAddressSeed is the ASCII string hashed to derive the genesis /
// treasury address.
const GenesisAddressSeed = "Aequitas Genesis 2026"

// GenesisAddress returns the fixed treasury/genesis recipient address: the
// trailing 20 bytes of Keccak-256 over GenesisAddressSeed.
func GenesisAddress() address.Address {
	digest := chainhash.HashB([]byte(GenesisAddressSeed))
	var addr address.Address
	copy(addr[:], digest[len(digest)-len(addr):])
	return addr
}
