// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"

	"github.com/moinecalixte-cyber/aequitas/chainhash"
)

// ExtraDataSize is the width of a block header's epoch-metadata field.
const ExtraDataSize = 32

// BlockHeader is the fixed-size, hashable summary of a block.
type BlockHeader struct {
	Version    uint32
	PrevBlock  chainhash.Hash
	MerkleRoot chainhash.Hash
	Timestamp  int64
	Difficulty uint64
	Nonce      uint64
	Height     uint64
	ExtraData  [ExtraDataSize]byte
}

// Serialize writes the canonical encoding of the header to w.
func (h *BlockHeader) Serialize(w io.Writer) error {
	if err := writeUint32(w, h.Version); err != nil {
		return err
	}
	if _, err := w.Write(h.PrevBlock[:]); err != nil {
		return err
	}
	if _, err := w.Write(h.MerkleRoot[:]); err != nil {
		return err
	}
	if err := writeInt64(w, h.Timestamp); err != nil {
		return err
	}
	if err := writeUint64(w, h.Difficulty); err != nil {
		return err
	}
	if err := writeUint64(w, h.Nonce); err != nil {
		return err
	}
	if err := writeUint64(w, h.Height); err != nil {
		return err
	}
	_, err := w.Write(h.ExtraData[:])
	return err
}

// DeserializeBlockHeader reads a header previously written by Serialize.
func DeserializeBlockHeader(r io.Reader) (*BlockHeader, error) {
	h := &BlockHeader{}
	var err error
	if h.Version, err = readUint32(r); err != nil {
		return nil, err
	}
	if _, err := io.ReadFull(r, h.PrevBlock[:]); err != nil {
		return nil, err
	}
	if _, err := io.ReadFull(r, h.MerkleRoot[:]); err != nil {
		return nil, err
	}
	if h.Timestamp, err = readInt64(r); err != nil {
		return nil, err
	}
	if h.Difficulty, err = readUint64(r); err != nil {
		return nil, err
	}
	if h.Nonce, err = readUint64(r); err != nil {
		return nil, err
	}
	if h.Height, err = readUint64(r); err != nil {
		return nil, err
	}
	if _, err := io.ReadFull(r, h.ExtraData[:]); err != nil {
		return nil, err
	}
	return h, nil
}

// Bytes returns the canonical serialization of the header.
func (h *BlockHeader) Bytes() []byte {
	var buf bytes.Buffer
	_ = h.Serialize(&buf)
	return buf.Bytes()
}

// Hash returns the Keccak-256 hash of the header's canonical serialization.
func (h *BlockHeader) Hash() chainhash.Hash {
	return chainhash.HashH(h.Bytes())
}

// PowHeaderHash returns the hash fed to AequiHash alongside the nonce: the
// header's canonical serialization with the nonce field held at zero. A
// miner searching for a valid nonce computes this once per header and
// reuses it across the entire search range.
func (h *BlockHeader) PowHeaderHash() chainhash.Hash {
	withoutNonce := *h
	withoutNonce.Nonce = 0
	return chainhash.HashH(withoutNonce.Bytes())
}

// Block is a header plus its ordered transaction list. The first
// transaction in a well-formed block is always Coinbase.
type Block struct {
	Header       BlockHeader
	Transactions []*Transaction
}

// Hash returns the block's identifying hash, which is simply the header
// hash.
func (b *Block) Hash() chainhash.Hash {
	return b.Header.Hash()
}

// MerkleLeaves returns the transaction hashes in block order, suitable for
// handing to the merkle package.
func (b *Block) MerkleLeaves() []chainhash.Hash {
	leaves := make([]chainhash.Hash, len(b.Transactions))
	for i, tx := range b.Transactions {
		leaves[i] = tx.Hash()
	}
	return leaves
}

// Serialize writes the canonical encoding of the block to w.
func (b *Block) Serialize(w io.Writer) error {
	if err := b.Header.Serialize(w); err != nil {
		return err
	}
	if err := writeUint32(w, uint32(len(b.Transactions))); err != nil {
		return err
	}
	for _, tx := range b.Transactions {
		if err := tx.Serialize(w); err != nil {
			return err
		}
	}
	return nil
}

// DeserializeBlock reads a block previously written by Serialize.
func DeserializeBlock(r io.Reader) (*Block, error) {
	header, err := DeserializeBlockHeader(r)
	if err != nil {
		return nil, err
	}
	n, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	txs := make([]*Transaction, n)
	for i := range txs {
		tx, err := DeserializeTransaction(r)
		if err != nil {
			return nil, err
		}
		txs[i] = tx
	}
	return &Block{Header: *header, Transactions: txs}, nil
}

// Bytes returns the canonical serialization of the block.
func (b *Block) Bytes() []byte {
	var buf bytes.Buffer
	_ = b.Serialize(&buf)
	return buf.Bytes()
}
