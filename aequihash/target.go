// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aequihash

import "math/big"

// maxTarget is 2^256 - 1.
var maxTarget = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// Target returns floor((2^256-1)/difficulty) serialized big-endian into 32
// bytes, per §4.4. difficulty must be nonzero.
func Target(difficulty uint64) [32]byte {
	t := new(big.Int).Div(maxTarget, new(big.Int).SetUint64(difficulty))
	var out [32]byte
	b := t.Bytes()
	copy(out[32-len(b):], b)
	return out
}

// MeetsTarget reports whether hash is less than or equal to target when
// compared byte-wise from the most significant byte.
func MeetsTarget(hash, target [32]byte) bool {
	for i := 0; i < 32; i++ {
		if hash[i] < target[i] {
			return true
		}
		if hash[i] > target[i] {
			return false
		}
	}
	return true
}

// Verify recomputes HashLight for the given header hash and nonce and
// checks the result against difficulty's target.
func Verify(headerHash [32]byte, nonce uint64, epoch *Epoch, difficulty uint64) (bool, [32]byte) {
	digest := HashLight(headerHash, nonce, epoch)
	return MeetsTarget(digest, Target(difficulty)), digest
}
