// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc exposes the node's read model and block-submission surface
// over a small request/response API, independent of wire transport.
package rpc

import (
	"encoding/binary"
	"fmt"

	"github.com/moinecalixte-cyber/aequitas/address"
	"github.com/moinecalixte-cyber/aequitas/blockchain"
	"github.com/moinecalixte-cyber/aequitas/chainhash"
	"github.com/moinecalixte-cyber/aequitas/wire"
	"lukechampine.com/blake3"
)

// Ledger is the subset of *blockchain.Chain the read model needs. Kept as
// an interface so this package can be tested against a fake without
// constructing a real chain.
type Ledger interface {
	Tip() (chainhash.Hash, uint64)
	CurrentDifficulty() uint64
	NextDifficulty() uint64
	BlockByHash(hash chainhash.Hash) (*wire.Block, bool)
	BlockByHeight(height uint64) (*wire.Block, bool)
	Balance(addr address.Address) uint64
	UTXOsForAddress(addr address.Address) map[blockchain.OutPoint]blockchain.Utxo
	ApplyBlock(block *wire.Block) error
}

// InfoResponse answers the info call.
type InfoResponse struct {
	TipHash    chainhash.Hash
	Height     uint64
	Difficulty uint64
}

// BlockTemplate answers block_template: the work a miner should search
// against. HeaderHash is BLAKE3(prev_hash || height_le || difficulty_le),
// an identifier for the template. SubmitBlock does not check it; a
// submitted block's proof of work is checked against its own header.
type BlockTemplate struct {
	PrevHash   chainhash.Hash
	Height     uint64
	Difficulty uint64
	HeaderHash [32]byte
}

// SubmitResult answers submit_block.
type SubmitResult struct {
	Accepted bool
	Reason   string
}

// ReadModel serves the node's query and submission API against a Ledger.
type ReadModel struct {
	chain Ledger
}

// NewReadModel wraps chain for RPC service.
func NewReadModel(chain Ledger) *ReadModel {
	return &ReadModel{chain: chain}
}

// Info reports the current tip and difficulty.
func (m *ReadModel) Info() InfoResponse {
	tip, height := m.chain.Tip()
	return InfoResponse{
		TipHash:    tip,
		Height:     height,
		Difficulty: m.chain.CurrentDifficulty(),
	}
}

// BlockByHash looks up a block by its hash.
func (m *ReadModel) BlockByHash(hash chainhash.Hash) (*wire.Block, error) {
	block, ok := m.chain.BlockByHash(hash)
	if !ok {
		return nil, fmt.Errorf("rpc: no block with hash %s", hash)
	}
	return block, nil
}

// BlockByHeight looks up a block by its height.
func (m *ReadModel) BlockByHeight(height uint64) (*wire.Block, error) {
	block, ok := m.chain.BlockByHeight(height)
	if !ok {
		return nil, fmt.Errorf("rpc: no block at height %d", height)
	}
	return block, nil
}

// Balance sums the confirmed UTXO value owned by addr.
func (m *ReadModel) Balance(addr address.Address) uint64 {
	return m.chain.Balance(addr)
}

// UTXOsForAddress enumerates every unspent output owned by addr, the
// supplement to Balance a wallet needs to construct a new transaction.
func (m *ReadModel) UTXOsForAddress(addr address.Address) map[blockchain.OutPoint]blockchain.Utxo {
	return m.chain.UTXOsForAddress(addr)
}

// BlockTemplate builds the work a miner should search for a solving nonce
// against: the next height and difficulty off the current tip, and the
// template's commitment hash.
func (m *ReadModel) BlockTemplate() BlockTemplate {
	tip, height := m.chain.Tip()
	difficulty := m.chain.NextDifficulty()

	headerHash := commitmentHash(tip, height+1, difficulty)

	return BlockTemplate{
		PrevHash:   tip,
		Height:     height + 1,
		Difficulty: difficulty,
		HeaderHash: headerHash,
	}
}

// commitmentHash computes BLAKE3(prev_hash || height_le || difficulty_le),
// the job identifier reported in a block_template response. No
// submit_block request is matched against it.
func commitmentHash(prevHash chainhash.Hash, height, difficulty uint64) [32]byte {
	buf := make([]byte, 0, chainhash.HashSize+16)
	buf = append(buf, prevHash[:]...)

	var heightLE, difficultyLE [8]byte
	binary.LittleEndian.PutUint64(heightLE[:], height)
	binary.LittleEndian.PutUint64(difficultyLE[:], difficulty)
	buf = append(buf, heightLE[:]...)
	buf = append(buf, difficultyLE[:]...)

	return blake3.Sum256(buf)
}

// SubmitBlock validates and, on success, applies a fully assembled block a
// miner found a solution for. The caller supplies the whole block (header
// plus transactions) rather than just the {job_id, nonce} pair — the
// template/nonce pairing is the miner's responsibility; this method only
// judges whether the resulting block is acceptable.
func (m *ReadModel) SubmitBlock(block *wire.Block) SubmitResult {
	if err := m.chain.ApplyBlock(block); err != nil {
		return SubmitResult{Accepted: false, Reason: err.Error()}
	}
	return SubmitResult{Accepted: true}
}
