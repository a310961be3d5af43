// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aequihash

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"
)

func seedLanes(headerHash [32]byte, nonce uint64) [8]uint32 {
	h := sha3.NewLegacyKeccak256()
	h.Write(headerHash[:])
	var n [8]byte
	binary.LittleEndian.PutUint64(n[:], nonce)
	h.Write(n[:])
	digest := h.Sum(nil)

	var lanes [8]uint32
	for i := range lanes {
		lanes[i] = binary.LittleEndian.Uint32(digest[i*4 : i*4+4])
	}
	return lanes
}

// expandMix grows the 8 seed lanes into the full 32-word mix state per
// §4.4: mix[i+8]=mix[i]; mix[i+16]=mix[i]*0x85ebca6b; mix[i+24]=mix[i]*0xc2b2ae35.
func expandMix(seed [8]uint32) [MixWords]uint32 {
	var mix [MixWords]uint32
	for i := 0; i < 8; i++ {
		mix[i] = seed[i]
		mix[i+8] = seed[i]
		mix[i+16] = seed[i] * 0x85ebca6b
		mix[i+24] = seed[i] * 0xc2b2ae35
	}
	return mix
}

func lanesToBytesLE(lanes []uint32) []byte {
	out := make([]byte, 4*len(lanes))
	for i, w := range lanes {
		binary.LittleEndian.PutUint32(out[i*4:i*4+4], w)
	}
	return out
}

// diffuse applies the FNV-like mixing step in place, in ascending lane
// order, so the wraparound lane (MixWords-1) reads lane 0 after lane 0 has
// already been updated this round — matching the reference mixer's
// sequential mutation rather than an all-lanes-read-old-values pass.
func diffuse(mix *[MixWords]uint32) {
	for j := 0; j < MixWords; j++ {
		mix[j] = (mix[j] * fnvPrime) ^ mix[(j+1)%MixWords]
	}
}

// HashLight evaluates the memory-hard function against the per-epoch
// verification cache, producing the 32-byte digest used to check a
// candidate block header against its difficulty target.
func HashLight(headerHash [32]byte, nonce uint64, epoch *Epoch) [32]byte {
	mix := expandMix(seedLanes(headerHash, nonce))
	cache := epoch.Cache
	cacheLen := uint32(len(cache))

	for r := 0; r < MixRounds; r++ {
		op := epoch.Program[r]
		base := mix[r%MixWords]
		for j := 0; j < MixWords; j++ {
			idx := (base + uint32(16*j)) % cacheLen
			mix[j] = op.Execute(mix[j], cache[idx])
		}
		diffuse(&mix)
	}

	var buf []byte
	buf = append(buf, headerHash[:]...)
	var n [8]byte
	binary.LittleEndian.PutUint64(n[:], nonce)
	buf = append(buf, n[:]...)
	buf = append(buf, lanesToBytesLE(mix[:])...)

	out := blake3.Sum256(buf)
	return out
}

// HashFull evaluates the memory-hard function against the full per-epoch
// dataset, performing DatasetAccesses dataset accesses in place of
// HashLight's cache rounds. It is used by mining workers, which hold the
// full DAG.
func HashFull(headerHash [32]byte, nonce uint64, epoch *Epoch, dag []uint32) [32]byte {
	mix := expandMix(seedLanes(headerHash, nonce))
	dagItems := uint64(len(dag)) / MixWords

	for a := 0; a < DatasetAccesses; a++ {
		h := sha3.NewLegacyKeccak256()
		h.Write(lanesToBytesLE(mix[:]))
		digest := h.Sum(nil)
		itemIdx := binary.LittleEndian.Uint64(digest[:8]) % dagItems

		op := epoch.Program[a%MixRounds]
		base := int(itemIdx) * MixWords
		for j := 0; j < MixWords; j++ {
			mix[j] = op.Execute(mix[j], dag[base+j])
		}

		// Sequential in-place mixing, same wraparound-reads-updated-lane
		// behavior as diffuse above.
		for j := 0; j < MixWords; j++ {
			mix[j] = mix[j] ^ mix[(j+a)%MixWords]
		}
	}

	var buf []byte
	buf = append(buf, headerHash[:]...)
	var n [8]byte
	binary.LittleEndian.PutUint64(n[:], nonce)
	buf = append(buf, n[:]...)
	var e [8]byte
	binary.LittleEndian.PutUint64(e[:], epoch.Number)
	buf = append(buf, e[:]...)
	buf = append(buf, lanesToBytesLE(mix[:])...)

	return blake3.Sum256(buf)
}
