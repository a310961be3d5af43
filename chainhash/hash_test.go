// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashHDeterministic(t *testing.T) {
	h1 := HashH([]byte("aequitas"))
	h2 := HashH([]byte("aequitas"))
	require.Equal(t, h1, h2)
	require.NotEqual(t, Hash{}, h1)
}

func TestHashManyMatchesConcatenation(t *testing.T) {
	a := []byte("left-")
	b := []byte("right")
	require.Equal(t, HashH(append(append([]byte{}, a...), b...)), HashMany(a, b))
}

func TestNewHashFromStrRoundTrip(t *testing.T) {
	orig := HashH([]byte("round-trip"))
	parsed, err := NewHashFromStr(orig.String())
	require.NoError(t, err)
	require.Equal(t, orig, *parsed)
}

func TestNewHashFromStrTooLong(t *testing.T) {
	_, err := NewHashFromStr(string(make([]byte, HashSize*2+1)))
	require.ErrorIs(t, err, ErrHashStrSize)
}

func TestSetBytesWrongLength(t *testing.T) {
	var h Hash
	require.Error(t, h.SetBytes([]byte{1, 2, 3}))
}

func TestIsZero(t *testing.T) {
	var h Hash
	require.True(t, h.IsZero())
	h = HashH([]byte{0})
	require.False(t, h.IsZero())
}
