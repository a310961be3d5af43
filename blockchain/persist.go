// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/moinecalixte-cyber/aequitas/address"
	"github.com/moinecalixte-cyber/aequitas/aequihash"
	"github.com/moinecalixte-cyber/aequitas/chaincfg"
	"github.com/moinecalixte-cyber/aequitas/chainhash"
	"github.com/moinecalixte-cyber/aequitas/difficulty"
	"github.com/moinecalixte-cyber/aequitas/sigcache"
	"github.com/moinecalixte-cyber/aequitas/wire"
	"go.uber.org/zap"
)

// Save serializes the entire ledger state — block index, UTXO set,
// retarget ring, tip and current difficulty — to a byte slice. Load later
// reconstructs a Chain from these bytes that is behaviorally
// indistinguishable from the original: same tip, same UTXO set, same
// difficulty trajectory. No on-disk persistence engine is implemented;
// callers own where the bytes are written.
func (c *Chain) Save() ([]byte, error) {
	c.chainLock.RLock()
	defer c.chainLock.RUnlock()

	var buf bytes.Buffer

	if err := writeUint64(&buf, c.height); err != nil {
		return nil, err
	}
	if err := writeUint64(&buf, c.curDifficulty); err != nil {
		return nil, err
	}

	if err := writeUint64(&buf, c.height+1); err != nil {
		return nil, err
	}
	for h := uint64(0); h <= c.height; h++ {
		hash, ok := c.heightIndex[h]
		if !ok {
			return nil, fmt.Errorf("blockchain: height index missing entry for height %d", h)
		}
		block := c.blocks[hash]
		if err := block.Serialize(&buf); err != nil {
			return nil, fmt.Errorf("serialize block at height %d: %w", h, err)
		}
	}

	if err := writeUint64(&buf, uint64(len(c.utxos))); err != nil {
		return nil, err
	}
	for op, u := range c.utxos {
		if _, err := buf.Write(op.Hash[:]); err != nil {
			return nil, err
		}
		if err := writeUint32(&buf, op.Index); err != nil {
			return nil, err
		}
		if err := writeUint64(&buf, u.Amount); err != nil {
			return nil, err
		}
		if _, err := buf.Write(u.Recipient[:]); err != nil {
			return nil, err
		}
	}

	if err := writeUint64(&buf, uint64(len(c.retargetRing))); err != nil {
		return nil, err
	}
	for _, bt := range c.retargetRing {
		if err := writeUint64(&buf, bt.Height); err != nil {
			return nil, err
		}
		if err := writeInt64(&buf, bt.Timestamp); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

// Load reconstructs a Chain previously produced by Save, under params.
func Load(params *chaincfg.Params, data []byte) (*Chain, error) {
	r := bytes.NewReader(data)

	height, err := readUint64(r)
	if err != nil {
		return nil, fmt.Errorf("blockchain: read height: %w", err)
	}
	curDifficulty, err := readUint64(r)
	if err != nil {
		return nil, fmt.Errorf("blockchain: read difficulty: %w", err)
	}

	numBlocks, err := readUint64(r)
	if err != nil {
		return nil, fmt.Errorf("blockchain: read block count: %w", err)
	}

	c := &Chain{
		params:        params,
		blocks:        make(map[chainhash.Hash]*wire.Block, numBlocks),
		heightIndex:   make(map[uint64]chainhash.Hash, numBlocks),
		utxos:         make(map[OutPoint]Utxo),
		curDifficulty: curDifficulty,
		height:        height,
		sigCache:      sigcache.NewSigCache(100_000),
		epochs:        make(map[uint64]*aequihash.Epoch),
		log:           zap.NewNop(),
	}

	for i := uint64(0); i < numBlocks; i++ {
		block, err := wire.DeserializeBlock(r)
		if err != nil {
			return nil, fmt.Errorf("blockchain: deserialize block %d: %w", i, err)
		}
		hash := block.Hash()
		c.blocks[hash] = block
		c.heightIndex[block.Header.Height] = hash
		if block.Header.Height == height {
			c.tip = hash
		}
	}

	numUtxos, err := readUint64(r)
	if err != nil {
		return nil, fmt.Errorf("blockchain: read utxo count: %w", err)
	}
	for i := uint64(0); i < numUtxos; i++ {
		var op OutPoint
		if _, err := io.ReadFull(r, op.Hash[:]); err != nil {
			return nil, fmt.Errorf("blockchain: read utxo %d outpoint: %w", i, err)
		}
		idx, err := readUint32(r)
		if err != nil {
			return nil, fmt.Errorf("blockchain: read utxo %d index: %w", i, err)
		}
		op.Index = idx

		amount, err := readUint64(r)
		if err != nil {
			return nil, fmt.Errorf("blockchain: read utxo %d amount: %w", i, err)
		}
		var recipient address.Address
		if _, err := io.ReadFull(r, recipient[:]); err != nil {
			return nil, fmt.Errorf("blockchain: read utxo %d recipient: %w", i, err)
		}
		c.utxos[op] = Utxo{Amount: amount, Recipient: recipient}
	}

	numRing, err := readUint64(r)
	if err != nil {
		return nil, fmt.Errorf("blockchain: read retarget ring length: %w", err)
	}
	c.retargetRing = make([]difficulty.BlockTime, numRing)
	for i := range c.retargetRing {
		h, err := readUint64(r)
		if err != nil {
			return nil, fmt.Errorf("blockchain: read retarget entry %d height: %w", i, err)
		}
		ts, err := readInt64(r)
		if err != nil {
			return nil, fmt.Errorf("blockchain: read retarget entry %d timestamp: %w", i, err)
		}
		c.retargetRing[i] = difficulty.BlockTime{Height: h, Timestamp: ts}
	}

	return c, nil
}

func writeUint64(w io.Writer, v uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	_, err := w.Write(b[:])
	return err
}

func writeUint32(w io.Writer, v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	_, err := w.Write(b[:])
	return err
}

func writeInt64(w io.Writer, v int64) error {
	return writeUint64(w, uint64(v))
}

func readUint64(r io.Reader) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

func readUint32(r io.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

func readInt64(r io.Reader) (int64, error) {
	v, err := readUint64(r)
	return int64(v), err
}
