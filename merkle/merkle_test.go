// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

import (
	"testing"

	"github.com/moinecalixte-cyber/aequitas/chainhash"
	"github.com/stretchr/testify/require"
)

func leaves(n int) []chainhash.Hash {
	out := make([]chainhash.Hash, n)
	for i := range out {
		out[i] = chainhash.HashH([]byte{byte(i)})
	}
	return out
}

func TestRootSingleLeaf(t *testing.T) {
	l := leaves(1)
	require.Equal(t, l[0], Root(l))
}

func TestRootEmpty(t *testing.T) {
	require.Equal(t, chainhash.Hash{}, Root(nil))
}

func TestRootOddLevelDuplicatesLast(t *testing.T) {
	l := leaves(3)
	manualLevel1 := []chainhash.Hash{
		chainhash.HashMany(l[0][:], l[1][:]),
		chainhash.HashMany(l[2][:], l[2][:]),
	}
	want := chainhash.HashMany(manualLevel1[0][:], manualLevel1[1][:])
	require.Equal(t, want, Root(l))
}

func TestProofRoundTripForEveryLeaf(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 7, 8, 13} {
		l := leaves(n)
		root := Root(l)
		for i := range l {
			proof, gotRoot, ok := BuildProof(l, i)
			require.Truef(t, ok, "n=%d i=%d", n, i)
			require.Equal(t, root, gotRoot)
			require.Truef(t, Verify(l[i], proof, root), "n=%d i=%d", n, i)
		}
	}
}

func TestBuildProofOutOfRange(t *testing.T) {
	l := leaves(3)
	_, _, ok := BuildProof(l, 5)
	require.False(t, ok)
}

func TestVerifyRejectsWrongLeaf(t *testing.T) {
	l := leaves(4)
	root := Root(l)
	proof, _, ok := BuildProof(l, 1)
	require.True(t, ok)
	require.False(t, Verify(l[2], proof, root))
}
