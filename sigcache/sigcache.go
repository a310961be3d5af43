// Copyright (c) 2015-2021 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sigcache implements an Ed25519 signature-verification cache so
// that re-validating a transaction already accepted into the mempool or a
// recently processed block does not re-run Ed25519 verification.
package sigcache

import (
	"crypto/ed25519"
	"sync"

	"github.com/dchest/siphash"
	"github.com/moinecalixte-cyber/aequitas/chainhash"
)

// entry is a signature/pubkey/message triple known to be valid.
type entry struct {
	sig      [ed25519.SignatureSize]byte
	pubKey   [ed25519.PublicKeySize]byte
	shortKey uint64
}

// SigCache caches the validity of Ed25519 signatures to avoid doing
// expensive signature checking more than once. It is safe for concurrent
// access from multiple goroutines.
//
// Entries are bucketed by a Keccak-256 hash of the message; within a
// bucket, a siphash short key lets a lookup skip the full signature and
// public-key byte comparison for every entry whose short key differs, the
// same role shortTxHashKey plays in the teacher's SigCache.
type SigCache struct {
	sync.RWMutex
	validSigs  map[chainhash.Hash][]entry
	maxEntries uint
	k0, k1     uint64
}

// NewSigCache creates and initializes a new instance of SigCache. The
// maxEntries parameter does not trigger a check to ensure that resizing
// will not cause a memory usage spike; like the teacher's sigcache this is
// the caller's responsibility to size reasonably. maxEntries bounds the
// number of message-hash buckets, not the number of entries within them.
func NewSigCache(maxEntries uint) *SigCache {
	return &SigCache{
		validSigs:  make(map[chainhash.Hash][]entry),
		maxEntries: maxEntries,
		k0:         0x5ca1ab1eba5eba11,
		k1:         0xdeadbeefcafebabe,
	}
}

func (s *SigCache) shortKey(sig, pubKey []byte) uint64 {
	buf := make([]byte, 0, len(sig)+len(pubKey))
	buf = append(buf, sig...)
	buf = append(buf, pubKey...)
	return siphash.Hash(s.k0, s.k1, buf)
}

// Exists returns true if the cache holds an entry asserting that sig,
// signed by pubKey, is a valid signature over msgHash.
func (s *SigCache) Exists(msgHash chainhash.Hash, sig, pubKey []byte) bool {
	if len(sig) != ed25519.SignatureSize || len(pubKey) != ed25519.PublicKeySize {
		return false
	}

	s.RLock()
	defer s.RUnlock()

	entries, ok := s.validSigs[msgHash]
	if !ok {
		return false
	}
	want := s.shortKey(sig, pubKey)
	for _, e := range entries {
		if e.shortKey != want {
			continue
		}
		if byteEq(e.sig[:], sig) && byteEq(e.pubKey[:], pubKey) {
			return true
		}
	}
	return false
}

// Add asserts that sig, signed by pubKey, is a valid signature over
// msgHash. Once the cache reaches maxEntries, a random bucket is evicted to
// make room, mirroring the teacher's random-eviction-via-map-iteration
// strategy.
func (s *SigCache) Add(msgHash chainhash.Hash, sig, pubKey []byte) {
	if s.maxEntries == 0 || len(sig) != ed25519.SignatureSize || len(pubKey) != ed25519.PublicKeySize {
		return
	}

	s.Lock()
	defer s.Unlock()

	if uint(len(s.validSigs)) >= s.maxEntries {
		for k := range s.validSigs {
			delete(s.validSigs, k)
			break
		}
	}

	var e entry
	copy(e.sig[:], sig)
	copy(e.pubKey[:], pubKey)
	e.shortKey = s.shortKey(sig, pubKey)
	s.validSigs[msgHash] = append(s.validSigs[msgHash], e)
}

func byteEq(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
