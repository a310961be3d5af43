// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package aequihash implements AequiHash, the memory-hard proof-of-work
// function used by Aequitas: an epoch-indexed cache and dataset, an
// 8-variant operation program, and light/full hash evaluation over them.
package aequihash

import (
	"encoding/binary"

	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/sha3"
)

// Consensus-critical constants every conforming node must honor.
const (
	EpochLength      = 240
	MixRounds        = 64
	MixWords         = 32
	DatasetAccesses  = 64
	DagItemWords     = 16
	DagParents       = 256
	CacheSize        = 64 * 1024 * 1024       // 64 MiB
	DagSize          = 4 * 1024 * 1024 * 1024 // 4 GiB
	cacheWords       = CacheSize / 4
	dagWords         = DagSize / 4
	epochSeedPrefix  = "AequiHash Epoch Seed"
	fnvPrime  uint32 = 0x01000193
)

// EpochFromHeight returns the epoch number owning the block at height.
func EpochFromHeight(height uint64) uint64 {
	return height / EpochLength
}

// ComputeEpochSeed returns the deterministic 32-byte seed for epoch,
// Keccak-256("AequiHash Epoch Seed" || epoch as little-endian u64).
func ComputeEpochSeed(epoch uint64) [32]byte {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(epochSeedPrefix))
	var e [8]byte
	binary.LittleEndian.PutUint64(e[:], epoch)
	h.Write(e[:])
	var seed [32]byte
	copy(seed[:], h.Sum(nil))
	return seed
}

// Op is one of the eight pure u32 x u32 -> u32 variants an operation
// program may select.
type Op uint8

// The closed set of operation-program variants.
const (
	OpAdd Op = iota
	OpMul
	OpSub
	OpXor
	OpRotL
	OpRotR
	OpAnd
	OpOr
)

// Execute evaluates the operation on (a, b).
func (o Op) Execute(a, b uint32) uint32 {
	switch o {
	case OpAdd:
		return a + b
	case OpMul:
		return a * b
	case OpSub:
		return a - b
	case OpXor:
		return a ^ b
	case OpRotL:
		return rotl32(a, b%32)
	case OpRotR:
		return rotr32(a, b%32)
	case OpAnd:
		return a & b
	default: // OpOr
		return a | b
	}
}

func rotl32(x, n uint32) uint32 { return (x << n) | (x >> (32 - n)) }
func rotr32(x, n uint32) uint32 { return (x >> n) | (x << (32 - n)) }

// Program is the length-64 operation sequence governing a single epoch's
// mixing rounds.
type Program [MixRounds]Op

// DeriveProgram draws the operation program for seed by running a ChaCha20
// keystream keyed on the seed (the ChaCha20 branch of the two candidate
// realizations; see DESIGN.md for why it was chosen over the byte-indexed
// fallback). One keystream byte selects each round's operation.
func DeriveProgram(seed [32]byte) Program {
	var nonce [chacha20.NonceSize]byte
	cipher, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		// seed is always exactly chacha20.KeySize (32) bytes; this can
		// only fail on programmer error.
		panic(err)
	}
	keystream := make([]byte, MixRounds)
	cipher.XORKeyStream(keystream, keystream)

	var prog Program
	for i, b := range keystream {
		prog[i] = Op(b % 8)
	}
	return prog
}

// Epoch bundles the per-epoch derived state: the seed, the operation
// program, and the light-verification cache. It is purely a function of
// the epoch number and is safe to memoize and share read-only across
// goroutines once built.
type Epoch struct {
	Number  uint64
	Seed    [32]byte
	Program Program
	Cache   []uint32
}

// NewEpoch derives the full epoch state, including the CacheSize-byte
// light-verification cache.
func NewEpoch(number uint64) *Epoch {
	return NewEpochWithCacheSize(number, cacheWords)
}

// NewEpochWithCacheSize derives epoch state using a cache of
// cacheSizeWords words rather than the consensus CacheSize default. Only a
// deployment's regression-test network may legitimately shrink the cache;
// mainnet and testnet must always use NewEpoch.
func NewEpochWithCacheSize(number uint64, cacheSizeWords int) *Epoch {
	seed := ComputeEpochSeed(number)
	return &Epoch{
		Number:  number,
		Seed:    seed,
		Program: DeriveProgram(seed),
		Cache:   ComputeCache(seed, cacheSizeWords),
	}
}

// ComputeCache derives a sizeWords-word cache from seed: a Keccak-256
// block chain fills the array, followed by three passes of
// RandMemoHash-style self-mixing.
func ComputeCache(seed [32]byte, sizeWords int) []uint32 {
	cache := make([]uint32, sizeWords)

	numBlocks := (sizeWords + 7) / 8
	var digest []byte
	for i := 0; i < numBlocks; i++ {
		h := sha3.NewLegacyKeccak256()
		if i == 0 {
			h.Write(seed[:])
		} else {
			h.Write(digest)
			var idx [8]byte
			binary.LittleEndian.PutUint64(idx[:], uint64(i))
			h.Write(idx[:])
		}
		digest = h.Sum(nil)

		for w := 0; w < 8; w++ {
			pos := i*8 + w
			if pos >= sizeWords {
				break
			}
			cache[pos] = binary.LittleEndian.Uint32(digest[w*4 : w*4+4])
		}
	}

	n := len(cache)
	for pass := 0; pass < 3; pass++ {
		for i := 0; i < n; i++ {
			s := int(cache[i]) % n
			d := (i + 1) % n
			cache[i] = cache[i] ^ (cache[s] + cache[d])
		}
	}
	return cache
}
