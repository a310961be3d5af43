// Copyright (c) 2015-2021 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sigcache

import (
	"crypto/ed25519"
	"testing"

	"github.com/moinecalixte-cyber/aequitas/chainhash"
	"github.com/stretchr/testify/require"
)

func randSigAndKey(t *testing.T) ([]byte, []byte) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	sig := ed25519.Sign(priv, []byte("message"))
	return sig, []byte(pub)
}

func TestAddThenExists(t *testing.T) {
	cache := NewSigCache(10)
	sig, pub := randSigAndKey(t)
	msgHash := chainhash.HashH([]byte("message"))

	require.False(t, cache.Exists(msgHash, sig, pub))
	cache.Add(msgHash, sig, pub)
	require.True(t, cache.Exists(msgHash, sig, pub))
}

func TestExistsRejectsUnknownEntry(t *testing.T) {
	cache := NewSigCache(10)
	sig, pub := randSigAndKey(t)
	other, _ := randSigAndKey(t)
	msgHash := chainhash.HashH([]byte("message"))

	cache.Add(msgHash, sig, pub)
	require.False(t, cache.Exists(msgHash, other, pub))
}

func TestAddEvictsWhenFull(t *testing.T) {
	cache := NewSigCache(2)
	for i := 0; i < 5; i++ {
		sig, pub := randSigAndKey(t)
		msgHash := chainhash.HashH([]byte{byte(i)})
		cache.Add(msgHash, sig, pub)
		require.LessOrEqual(t, len(cache.validSigs), 2)
	}
}

func TestAddIgnoresMalformedInputs(t *testing.T) {
	cache := NewSigCache(10)
	msgHash := chainhash.HashH([]byte("message"))
	cache.Add(msgHash, []byte("short"), []byte("also-short"))
	require.Empty(t, cache.validSigs)
}

func TestZeroCapacityCacheNeverStores(t *testing.T) {
	cache := NewSigCache(0)
	sig, pub := randSigAndKey(t)
	msgHash := chainhash.HashH([]byte("message"))
	cache.Add(msgHash, sig, pub)
	require.False(t, cache.Exists(msgHash, sig, pub))
}
