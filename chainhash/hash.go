// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainhash provides the 32-byte digest type used throughout
// Aequitas to identify blocks, transactions and dataset items, along with
// the Keccak-256 helpers used to produce it.
package chainhash

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// HashSize is the number of bytes in the preferred hash used by Aequitas,
// which is Keccak-256.
const HashSize = 32

// ErrHashStrSize describes an error that indicates the caller specified a
// hash string that has too many characters.
var ErrHashStrSize = fmt.Errorf("max hash string length is %v bytes", HashSize*2)

// Hash is used to store the Keccak-256 hash of data.
type Hash [HashSize]byte

// String returns the Hash as a hexadecimal string, matching the byte order
// it was produced in (no reversal, unlike Bitcoin-style hashes).
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Bytes returns a copy of the bytes backing the hash.
func (h Hash) Bytes() []byte {
	out := make([]byte, HashSize)
	copy(out, h[:])
	return out
}

// IsZero reports whether the hash is the all-zero value, used to identify
// the absent previous-block-hash of a genesis header.
func (h Hash) IsZero() bool {
	return h == Hash{}
}

// SetBytes sets the bytes of the hash to the passed slice, which must be
// exactly HashSize bytes long.
func (h *Hash) SetBytes(newHash []byte) error {
	if len(newHash) != HashSize {
		return fmt.Errorf("invalid hash length of %v, want %v", len(newHash), HashSize)
	}
	copy(h[:], newHash)
	return nil
}

// NewHash returns a new Hash from a byte slice.
func NewHash(newHash []byte) (*Hash, error) {
	var sh Hash
	if err := sh.SetBytes(newHash); err != nil {
		return nil, err
	}
	return &sh, nil
}

// NewHashFromStr creates a Hash from a hex hash string.
func NewHashFromStr(hash string) (*Hash, error) {
	if len(hash) > HashSize*2 {
		return nil, ErrHashStrSize
	}
	buf, err := hex.DecodeString(hash)
	if err != nil {
		return nil, err
	}
	var h Hash
	copy(h[HashSize-len(buf):], buf)
	return &h, nil
}

// HashB computes the Keccak-256 hash of the given data and returns the raw
// bytes.
func HashB(b []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(b)
	return h.Sum(nil)
}

// HashH computes the Keccak-256 hash of the given data and returns it as a
// Hash.
func HashH(b []byte) Hash {
	var h Hash
	copy(h[:], HashB(b))
	return h
}

// HashMany computes the Keccak-256 hash over the concatenation of every
// argument, avoiding an intermediate allocation for each piece.
func HashMany(parts ...[]byte) Hash {
	h := sha3.NewLegacyKeccak256()
	for _, p := range parts {
		h.Write(p)
	}
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}
