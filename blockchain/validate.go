// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"crypto/ed25519"
	"fmt"

	"github.com/moinecalixte-cyber/aequitas/address"
	"github.com/moinecalixte-cyber/aequitas/aequihash"
	"github.com/moinecalixte-cyber/aequitas/chainhash"
	"github.com/moinecalixte-cyber/aequitas/difficulty"
	"github.com/moinecalixte-cyber/aequitas/merkle"
	"github.com/moinecalixte-cyber/aequitas/subsidy"
	"github.com/moinecalixte-cyber/aequitas/wire"
	"go.uber.org/zap"
)

// ApplyBlock validates block against the current tip and, if every rule
// passes, atomically mutates the ledger to extend the chain by one block.
// On any rejection the ledger is left exactly as it was; ApplyBlock holds
// the exclusive lock for its entire duration, per the concurrency model.
func (c *Chain) ApplyBlock(block *wire.Block) error {
	c.chainLock.Lock()
	defer c.chainLock.Unlock()
	return c.applyBlock(block)
}

func (c *Chain) applyBlock(block *wire.Block) error {
	header := &block.Header

	if err := c.checkBlock(block); err != nil {
		c.log.Warn("rejected block",
			zap.Uint64("height", header.Height),
			zap.String("hash", header.Hash().String()),
			zap.Error(err))
		return err
	}

	spent, err := c.checkSpends(block.Transactions[1:])
	if err != nil {
		c.log.Warn("rejected block",
			zap.Uint64("height", header.Height),
			zap.String("hash", header.Hash().String()),
			zap.Error(err))
		return err
	}

	c.mutate(block, spent)
	c.log.Info("accepted block",
		zap.Uint64("height", header.Height),
		zap.String("hash", header.Hash().String()),
		zap.Int("transactions", len(block.Transactions)))
	return nil
}

// checkBlock runs every structural, difficulty, proof-of-work and
// per-transaction check that does not mutate the ledger.
func (c *Chain) checkBlock(block *wire.Block) error {
	header := &block.Header

	if header.PrevBlock != c.tip {
		return ruleError(ErrInvalidPrevHash, "block does not extend the current tip")
	}
	if header.Height != c.height+1 {
		return ruleError(ErrInvalidHeight, fmt.Sprintf("expected height %d, got %d", c.height+1, header.Height))
	}

	wantDifficulty := c.nextDifficulty()
	if header.Difficulty != wantDifficulty {
		return ruleError(ErrInvalidDifficulty, fmt.Sprintf("expected difficulty %d, got %d", wantDifficulty, header.Difficulty))
	}

	root := merkle.Root(block.MerkleLeaves())
	if root != header.MerkleRoot {
		return ruleError(ErrInvalidMerkleRoot, "merkle root does not match transaction list")
	}

	epoch := c.epochFor(header.Height)
	ok, _ := aequihash.Verify(header.PowHeaderHash(), header.Nonce, epoch, header.Difficulty)
	if !ok {
		return ruleError(ErrInsufficientProofOfWork, "header hash does not meet target difficulty")
	}

	for i, tx := range block.Transactions {
		if i == 0 {
			continue // coinbase rules are checked separately below
		}
		if err := c.checkTransaction(tx); err != nil {
			return ruleError(ErrTransactionInvalid, err.Error())
		}
	}

	return c.validateCoinbase(block)
}

// checkTransaction applies tx's structural rules, the same ones
// tx.Validate enforces, but verifies each input's signature through the
// chain's signature cache instead of unconditionally invoking ed25519:
// a signature already proven valid against this exact (message, pubkey)
// pair — because the transaction was checked in an earlier block
// validation attempt or while it sat in a mempool — is accepted without
// being recomputed, mirroring the teacher's script-validation cache.
func (c *Chain) checkTransaction(tx *wire.Transaction) error {
	if tx.Kind == wire.TxCoinbase {
		return tx.Validate()
	}
	if len(tx.Inputs) == 0 {
		return wire.ErrNoInputs
	}
	if len(tx.Outputs) == 0 {
		return wire.ErrNoOutputs
	}
	if len(tx.Memo) > wire.MaxMemoSize {
		return wire.ErrMemoTooLarge
	}

	message := tx.SigningMessage()
	msgHash := chainhash.HashH(message)
	for _, in := range tx.Inputs {
		if len(in.PublicKey) != ed25519.PublicKeySize {
			return wire.ErrInvalidPublicKey
		}
		if len(in.Signature) != ed25519.SignatureSize {
			return wire.ErrInvalidSignature
		}
		if c.sigCache.Exists(msgHash, in.Signature, in.PublicKey) {
			continue
		}
		if err := in.Verify(message); err != nil {
			return err
		}
		c.sigCache.Add(msgHash, in.Signature, in.PublicKey)
	}
	return nil
}

// validateCoinbase enforces §4.7 step 4: the first transaction must be a
// coinbase with no inputs (checked via Validate); for height > 0 it must
// carry at least three outputs whose sum does not exceed the base reward;
// for height > 100 its third output must pay the computed solidarity
// beneficiary.
func (c *Chain) validateCoinbase(block *wire.Block) error {
	if len(block.Transactions) == 0 || block.Transactions[0].Kind != wire.TxCoinbase {
		return ruleError(ErrNoCoinbase, "first transaction must be a coinbase")
	}
	coinbase := block.Transactions[0]
	height := block.Header.Height

	if err := coinbase.Validate(); err != nil {
		return ruleError(ErrTransactionInvalid, err.Error())
	}

	if height == 0 {
		return nil
	}

	if len(coinbase.Outputs) < 3 {
		return ruleError(ErrInvalidCoinbaseAmount, "coinbase must carry at least 3 outputs past genesis")
	}

	base := subsidy.RewardForHeight(height)
	if coinbase.TotalOutputAmount() > base {
		return ruleError(ErrInvalidCoinbaseAmount, "coinbase outputs exceed base reward")
	}

	if height > 100 {
		want := c.solidarityBeneficiary(height)
		if coinbase.Outputs[2].Recipient != want {
			return ruleError(ErrInvalidSolidarityRecipient, "coinbase third output is not the solidarity beneficiary")
		}
	}

	return nil
}

// checkSpends verifies that every input of every non-coinbase transaction
// references a UTXO that exists in the current set, and that no UTXO is
// spent twice within the block. It returns the set of outpoints that would
// be spent, for mutate to apply.
func (c *Chain) checkSpends(txs []*wire.Transaction) (map[OutPoint]bool, error) {
	spent := make(map[OutPoint]bool)

	for _, tx := range txs {
		for _, in := range tx.Inputs {
			op := OutPoint{Hash: in.PrevTxHash, Index: in.OutputIndex}
			if spent[op] {
				return nil, ruleError(ErrDoubleSpend, "UTXO spent twice within the same block")
			}
			utxo, ok := c.utxos[op]
			if !ok {
				return nil, ruleError(ErrMissingUtxo, "referenced UTXO does not exist")
			}
			if spenderAddr, err := address.FromPublicKey(ed25519.PublicKey(in.PublicKey)); err != nil || spenderAddr != utxo.Recipient {
				return nil, ruleError(ErrMissingUtxo, "input public key does not own the referenced UTXO")
			}
			spent[op] = true
		}
	}
	return spent, nil
}

// mutate applies block's effects to the ledger: spent UTXOs are removed,
// new ones are inserted, the block/height index and tip are updated, and
// the retarget ring and current difficulty are advanced. Called only after
// every validation check in applyBlock has succeeded.
func (c *Chain) mutate(block *wire.Block, spent map[OutPoint]bool) {
	for op := range spent {
		delete(c.utxos, op)
	}

	for _, tx := range block.Transactions {
		hash := tx.Hash()
		for idx, out := range tx.Outputs {
			c.utxos[OutPoint{Hash: hash, Index: uint32(idx)}] = Utxo{
				Amount:    out.Amount,
				Recipient: out.Recipient,
			}
		}
	}

	hash := block.Hash()
	c.blocks[hash] = block
	c.heightIndex[block.Header.Height] = hash
	c.tip = hash
	c.height = block.Header.Height

	c.retargetRing = append(c.retargetRing, difficulty.BlockTime{
		Height:    block.Header.Height,
		Timestamp: block.Header.Timestamp,
	})
	if maxLen := retargetRingCap(c.params); len(c.retargetRing) > maxLen {
		c.retargetRing = c.retargetRing[len(c.retargetRing)-maxLen:]
	}

	c.curDifficulty = difficulty.NextWithFloor(c.curDifficulty, c.retargetRing, c.params.MinDifficulty)
}
