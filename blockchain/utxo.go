// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/moinecalixte-cyber/aequitas/address"
	"github.com/moinecalixte-cyber/aequitas/chainhash"
)

// OutPoint identifies a single UTXO by the hash of the transaction that
// created it and the index of the output within that transaction.
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// Utxo is an unspent transaction output tracked by the ledger.
type Utxo struct {
	Amount    uint64
	Recipient address.Address
}
