// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
)

// Keypair couples an Ed25519 signing key with the address it controls.
//
// There is no ecosystem Ed25519 package among the retrieved examples — the
// pack's signature libraries are all secp256k1/Decred-Edwards, which this
// protocol does not use. crypto/ed25519 is the idiomatic choice here; see
// DESIGN.md for the full justification.
type Keypair struct {
	Private ed25519.PrivateKey
	Public  ed25519.PublicKey
	Address Address
}

// GenerateKeypair creates a new random Keypair.
func GenerateKeypair() (*Keypair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("address: generate keypair: %w", err)
	}
	return keypairFromKeys(pub, priv)
}

// KeypairFromSeed deterministically derives a Keypair from a 32-byte seed.
func KeypairFromSeed(seed []byte) (*Keypair, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("address: seed must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}
	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)
	return keypairFromKeys(pub, priv)
}

func keypairFromKeys(pub ed25519.PublicKey, priv ed25519.PrivateKey) (*Keypair, error) {
	addr, err := FromPublicKey(pub)
	if err != nil {
		return nil, err
	}
	return &Keypair{Private: priv, Public: pub, Address: addr}, nil
}

// Sign signs message with the keypair's private key.
func (k *Keypair) Sign(message []byte) []byte {
	return ed25519.Sign(k.Private, message)
}
