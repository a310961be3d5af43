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

func fnv(a, b uint32) uint32 { return (a * fnvPrime) ^ b }

// GenerateDataset derives the full per-epoch DAG from cache. The dataset is
// generated item by item (DagItemWords words each); every item only
// depends on the cache and its own index, so items MAY be generated in
// parallel by callers that shard the index range across goroutines.
func GenerateDataset(cache []uint32, sizeWords int) []uint32 {
	dag := make([]uint32, sizeWords)
	items := sizeWords / DagItemWords
	for i := 0; i < items; i++ {
		copy(dag[i*DagItemWords:(i+1)*DagItemWords], generateDagItem(cache, uint64(i)))
	}
	return dag
}

// GenerateDatasetRange fills dag[startItem*DagItemWords : endItem*DagItemWords]
// in place, letting a caller partition dataset construction across workers.
func GenerateDatasetRange(dag []uint32, cache []uint32, startItem, endItem int) {
	for i := startItem; i < endItem; i++ {
		copy(dag[i*DagItemWords:(i+1)*DagItemWords], generateDagItem(cache, uint64(i)))
	}
}

func generateDagItem(cache []uint32, i uint64) []uint32 {
	itemsInCache := len(cache) / DagItemWords
	cacheItemIdx := int(i % uint64(itemsInCache))

	lanes := make([]uint32, DagItemWords)
	copy(lanes, cache[cacheItemIdx*DagItemWords:(cacheItemIdx+1)*DagItemWords])
	lanes[0] ^= uint32(i)

	h := sha3.NewLegacyKeccak256()
	h.Write(lanesToBytesLE(lanes))
	digest := h.Sum(nil)
	for j := 0; j < 4; j++ {
		lanes[j] = binary.LittleEndian.Uint32(digest[j*4 : j*4+4])
	}

	cacheItems := uint64(itemsInCache)
	for p := 0; p < DagParents; p++ {
		parentSeed := uint32(i) ^ uint32(p)
		parentIdx := int(fnv(parentSeed, lanes[p%DagItemWords]) % uint32(cacheItems))
		parentOffset := parentIdx * DagItemWords
		for j := 0; j < DagItemWords; j++ {
			lanes[j] = fnv(lanes[j], cache[(parentOffset+j)%len(cache)])
		}
	}

	blended := blake3.Sum256(lanesToBytesLE(lanes))
	for j := 0; j < 8; j++ {
		lanes[j] = binary.LittleEndian.Uint32(blended[j*4 : j*4+4])
	}
	for j := 0; j < 8; j++ {
		lanes[8+j] ^= lanes[j]
	}
	return lanes
}
