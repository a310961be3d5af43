// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package merkle builds the Keccak-256 Merkle tree committing a block's
// transaction set and produces compact inclusion proofs against its root.
package merkle

import (
	"github.com/moinecalixte-cyber/aequitas/chainhash"
)

// nextPowerOfTwo returns the smallest power of two greater than or equal
// to n.
func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 0
	}
	exponent := uint(0)
	for (1 << exponent) < n {
		exponent++
	}
	return 1 << exponent
}

// hashPair hashes the concatenation of two leaves/nodes.
func hashPair(left, right chainhash.Hash) chainhash.Hash {
	return chainhash.HashMany(left[:], right[:])
}

// Root computes the Merkle root over the given leaf hashes, duplicating the
// final node of any odd-length level, as required by §4.1.
//
// Root of an empty leaf set is the zero hash.
func Root(leaves []chainhash.Hash) chainhash.Hash {
	if len(leaves) == 0 {
		return chainhash.Hash{}
	}
	if len(leaves) == 1 {
		return leaves[0]
	}

	level := make([]chainhash.Hash, len(leaves))
	copy(level, leaves)

	for len(level) > 1 {
		if len(level)%2 != 0 {
			level = append(level, level[len(level)-1])
		}
		next := make([]chainhash.Hash, len(level)/2)
		for i := range next {
			next[i] = hashPair(level[2*i], level[2*i+1])
		}
		level = next
	}
	return level[0]
}

// ProofStep is one step of an inclusion proof: the sibling hash and whether
// that sibling sits on the left of the node being folded.
type ProofStep struct {
	Sibling chainhash.Hash
	OnLeft  bool
}

// Proof is an ordered list of steps that fold a leaf up to the Merkle root.
type Proof []ProofStep

// BuildProof returns the inclusion proof for the leaf at index i within
// leaves, along with the tree's root.
func BuildProof(leaves []chainhash.Hash, i int) (Proof, chainhash.Hash, bool) {
	if i < 0 || i >= len(leaves) {
		return nil, chainhash.Hash{}, false
	}
	if len(leaves) == 1 {
		return Proof{}, leaves[0], true
	}

	level := make([]chainhash.Hash, len(leaves))
	copy(level, leaves)
	idx := i

	var proof Proof
	for len(level) > 1 {
		if len(level)%2 != 0 {
			level = append(level, level[len(level)-1])
		}
		siblingIdx := idx ^ 1
		onLeft := siblingIdx < idx
		proof = append(proof, ProofStep{Sibling: level[siblingIdx], OnLeft: onLeft})

		next := make([]chainhash.Hash, len(level)/2)
		for j := range next {
			next[j] = hashPair(level[2*j], level[2*j+1])
		}
		level = next
		idx /= 2
	}
	return proof, level[0], true
}

// Verify folds leaf up through proof and reports whether the result equals
// root.
func Verify(leaf chainhash.Hash, proof Proof, root chainhash.Hash) bool {
	cur := leaf
	for _, step := range proof {
		if step.OnLeft {
			cur = hashPair(step.Sibling, cur)
		} else {
			cur = hashPair(cur, step.Sibling)
		}
	}
	return cur == root
}
