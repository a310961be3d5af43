// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeParseRoundTrip(t *testing.T) {
	kp, err := GenerateKeypair()
	require.NoError(t, err)

	s := kp.Address.String()
	require.Truef(t, len(s) > len(humanReadablePrefix), "encoded address too short: %q", s)
	require.Equal(t, humanReadablePrefix, s[:len(humanReadablePrefix)])

	parsed, err := Parse(s)
	require.NoError(t, err)
	require.Equal(t, kp.Address, parsed)
}

func TestParseRejectsBadChecksum(t *testing.T) {
	kp, err := GenerateKeypair()
	require.NoError(t, err)

	s := kp.Address.String()
	// Flip the last character to corrupt the checksum payload.
	mutated := []byte(s)
	if mutated[len(mutated)-1] == 'a' {
		mutated[len(mutated)-1] = 'b'
	} else {
		mutated[len(mutated)-1] = 'a'
	}

	_, err = Parse(string(mutated))
	require.Error(t, err)
}

func TestParseRejectsMissingPrefix(t *testing.T) {
	_, err := Parse("notanaddress")
	require.ErrorIs(t, err, ErrMalformedAddress)
}

func TestFromPublicKeyRejectsWrongSize(t *testing.T) {
	_, err := FromPublicKey(ed25519.PublicKey([]byte{1, 2, 3}))
	require.ErrorIs(t, err, ErrInvalidPublicKey)
}

func TestKeypairFromSeedDeterministic(t *testing.T) {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = byte(i)
	}
	k1, err := KeypairFromSeed(seed)
	require.NoError(t, err)
	k2, err := KeypairFromSeed(seed)
	require.NoError(t, err)
	require.Equal(t, k1.Address, k2.Address)
}
