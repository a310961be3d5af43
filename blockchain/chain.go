// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockchain implements the UTXO ledger and the block/transaction
// validation pipeline that binds it to AequiHash proof-of-work and the
// reward tier policy.
package blockchain

import (
	"sync"

	"github.com/moinecalixte-cyber/aequitas/address"
	"github.com/moinecalixte-cyber/aequitas/aequihash"
	"github.com/moinecalixte-cyber/aequitas/chaincfg"
	"github.com/moinecalixte-cyber/aequitas/chainhash"
	"github.com/moinecalixte-cyber/aequitas/difficulty"
	"github.com/moinecalixte-cyber/aequitas/sigcache"
	"github.com/moinecalixte-cyber/aequitas/subsidy"
	"github.com/moinecalixte-cyber/aequitas/wire"
	"go.uber.org/zap"
)

// retargetRingCap bounds the retarget ring at twice the averaging window,
// per §4.7 step 6.
func retargetRingCap(params *chaincfg.Params) int {
	return 2 * params.AveragingWindow
}

// Chain is the single-writer, many-reader ledger: the block index, the
// UTXO set, the retarget ring and the current tip. Every mutation flows
// through ApplyBlock, which holds chainLock exclusively for its entire
// duration; every read-only query acquires the lock only for shared
// access.
type Chain struct {
	params *chaincfg.Params

	chainLock sync.RWMutex

	blocks      map[chainhash.Hash]*wire.Block
	heightIndex map[uint64]chainhash.Hash
	tip         chainhash.Hash
	height      uint64

	utxos map[OutPoint]Utxo

	retargetRing []difficulty.BlockTime
	curDifficulty uint64

	sigCache *sigcache.SigCache
	epochs   map[uint64]*aequihash.Epoch

	log *zap.Logger
}

// New constructs a Chain seeded with the fixed genesis state for params:
// height 0, tip equal to the genesis block hash, a single UTXO for the
// genesis coinbase output, and the network's starting difficulty.
func New(params *chaincfg.Params) *Chain {
	genesis := params.GenesisBlock()

	c := &Chain{
		params:        params,
		blocks:        make(map[chainhash.Hash]*wire.Block),
		heightIndex:   make(map[uint64]chainhash.Hash),
		utxos:         make(map[OutPoint]Utxo),
		retargetRing:  []difficulty.BlockTime{{Height: 0, Timestamp: params.GenesisTimestamp}},
		curDifficulty: params.GenesisDifficulty,
		sigCache:      sigcache.NewSigCache(100_000),
		epochs:        make(map[uint64]*aequihash.Epoch),
		log:           zap.NewNop(),
	}

	genesisHash := genesis.Hash()
	c.blocks[genesisHash] = genesis
	c.heightIndex[0] = genesisHash
	c.tip = genesisHash
	c.height = 0

	coinbase := genesis.Transactions[0]
	c.utxos[OutPoint{Hash: coinbase.Hash(), Index: 0}] = Utxo{
		Amount:    coinbase.Outputs[0].Amount,
		Recipient: coinbase.Outputs[0].Recipient,
	}

	return c
}

// Params returns the network parameters the chain was constructed with.
func (c *Chain) Params() *chaincfg.Params {
	return c.params
}

// SetLogger replaces the chain's logger. A freshly constructed Chain logs
// nowhere until one is attached.
func (c *Chain) SetLogger(log *zap.Logger) {
	c.chainLock.Lock()
	defer c.chainLock.Unlock()
	c.log = log
}

// Tip returns the current tip hash and height.
func (c *Chain) Tip() (chainhash.Hash, uint64) {
	c.chainLock.RLock()
	defer c.chainLock.RUnlock()
	return c.tip, c.height
}

// CurrentDifficulty returns the difficulty recomputed after the most
// recently accepted block. A block extending the tip must carry
// NextDifficulty, which retargets once more from this value.
func (c *Chain) CurrentDifficulty() uint64 {
	c.chainLock.RLock()
	defer c.chainLock.RUnlock()
	return c.curDifficulty
}

// BlockByHash returns the block with the given hash, if known.
func (c *Chain) BlockByHash(hash chainhash.Hash) (*wire.Block, bool) {
	c.chainLock.RLock()
	defer c.chainLock.RUnlock()
	b, ok := c.blocks[hash]
	return b, ok
}

// BlockByHeight returns the canonical-chain block at height, if known.
func (c *Chain) BlockByHeight(height uint64) (*wire.Block, bool) {
	c.chainLock.RLock()
	defer c.chainLock.RUnlock()
	hash, ok := c.heightIndex[height]
	if !ok {
		return nil, false
	}
	b, ok := c.blocks[hash]
	return b, ok
}

// Balance returns addr's total balance: the sum of every UTXO currently
// owned by addr.
func (c *Chain) Balance(addr address.Address) uint64 {
	c.chainLock.RLock()
	defer c.chainLock.RUnlock()
	return c.balance(addr)
}

func (c *Chain) balance(addr address.Address) uint64 {
	var total uint64
	for _, u := range c.utxos {
		if u.Recipient == addr {
			total += u.Amount
		}
	}
	return total
}

// UTXOsForAddress returns every outpoint and UTXO currently owned by addr.
func (c *Chain) UTXOsForAddress(addr address.Address) map[OutPoint]Utxo {
	c.chainLock.RLock()
	defer c.chainLock.RUnlock()

	out := make(map[OutPoint]Utxo)
	for op, u := range c.utxos {
		if u.Recipient == addr {
			out[op] = u
		}
	}
	return out
}

// NextDifficulty reports the difficulty a block extending the current tip
// must satisfy, were it applied right now.
func (c *Chain) NextDifficulty() uint64 {
	c.chainLock.RLock()
	defer c.chainLock.RUnlock()
	return c.nextDifficulty()
}

func (c *Chain) nextDifficulty() uint64 {
	return difficulty.NextWithFloor(c.curDifficulty, c.retargetRing, c.params.MinDifficulty)
}

// epochFor returns the (possibly newly-derived and memoized) AequiHash
// epoch state for the epoch owning height.
func (c *Chain) epochFor(height uint64) *aequihash.Epoch {
	num := aequihash.EpochFromHeight(height)
	if e, ok := c.epochs[num]; ok {
		return e
	}
	e := aequihash.NewEpochWithCacheSize(num, c.params.CacheSizeWords)
	c.epochs[num] = e
	return e
}

// solidarityCandidates collects the recipient of each coinbase's first
// output across the 101-block window ending at (and including) height,
// oldest first, per §4.6.
func (c *Chain) solidarityCandidates(height uint64) []address.Address {
	var start uint64
	if height > 100 {
		start = height - 100
	}

	candidates := make([]address.Address, 0, height-start+1)
	for h := start; h <= height; h++ {
		hash, ok := c.heightIndex[h]
		if !ok {
			continue
		}
		block := c.blocks[hash]
		if len(block.Transactions) == 0 || len(block.Transactions[0].Outputs) == 0 {
			continue
		}
		candidates = append(candidates, block.Transactions[0].Outputs[0].Recipient)
	}
	return candidates
}

// solidarityBeneficiary computes the solidarity beneficiary for a block
// being built (or validated) at height, against the ledger state as it
// stands immediately before that block is applied.
func (c *Chain) solidarityBeneficiary(height uint64) address.Address {
	candidates := c.solidarityCandidates(height - 1)
	return subsidy.SelectBeneficiary(candidates, c.balance, subsidy.GenesisAddress())
}
