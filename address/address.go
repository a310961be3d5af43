// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address implements Aequitas's account identifiers: 20-byte
// Keccak-256-derived addresses rendered as "aeq1" plus a base58-checksummed
// payload, and the Ed25519 keypairs that control them.
package address

import (
	"crypto/ed25519"
	"errors"
	"fmt"

	"github.com/EXCCoin/base58"
	"github.com/moinecalixte-cyber/aequitas/chainhash"
)

// Size is the number of bytes in an address.
const Size = 20

// checksumLen is the number of checksum bytes appended to the address
// payload before base58 encoding.
const checksumLen = 4

// humanReadablePrefix is prepended to every encoded address string.
const humanReadablePrefix = "aeq1"

var (
	// ErrMalformedAddress indicates a decoded address string did not
	// carry the expected prefix or payload length.
	ErrMalformedAddress = errors.New("address: malformed address string")

	// ErrChecksumMismatch indicates the checksum embedded in a decoded
	// address does not match the checksum computed over its payload.
	ErrChecksumMismatch = errors.New("address: checksum mismatch")

	// ErrInvalidPublicKey indicates a public key was not a valid 32-byte
	// Ed25519 verifying key.
	ErrInvalidPublicKey = errors.New("address: invalid ed25519 public key")
)

// Address is the 20-byte Keccak-256-derived identifier of an Aequitas
// account.
type Address [Size]byte

// FromPublicKey derives the address controlled by the given Ed25519 public
// key: the low 20 bytes of Keccak-256(pubkey).
func FromPublicKey(pub ed25519.PublicKey) (Address, error) {
	if len(pub) != ed25519.PublicKeySize {
		return Address{}, ErrInvalidPublicKey
	}
	digest := chainhash.HashB(pub)
	var addr Address
	copy(addr[:], digest[len(digest)-Size:])
	return addr, nil
}

// checksum returns the first checksumLen bytes of Keccak-256 over the raw
// address bytes. The checksum scope is the 20 address bytes only, never the
// human-readable prefix or the encoded payload.
func (a Address) checksum() [checksumLen]byte {
	digest := chainhash.HashB(a[:])
	var sum [checksumLen]byte
	copy(sum[:], digest[:checksumLen])
	return sum
}

// String encodes the address as "aeq1" followed by the base58 encoding of
// the 20 address bytes concatenated with a 4-byte checksum.
func (a Address) String() string {
	sum := a.checksum()
	payload := make([]byte, 0, Size+checksumLen)
	payload = append(payload, a[:]...)
	payload = append(payload, sum[:]...)
	return humanReadablePrefix + base58.Encode(payload)
}

// Bytes returns a copy of the 20 raw address bytes.
func (a Address) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, a[:])
	return out
}

// IsZero reports whether the address is the all-zero value.
func (a Address) IsZero() bool {
	return a == Address{}
}

// Parse decodes an address string produced by String, verifying the prefix,
// payload length and checksum.
func Parse(s string) (Address, error) {
	if len(s) <= len(humanReadablePrefix) || s[:len(humanReadablePrefix)] != humanReadablePrefix {
		return Address{}, ErrMalformedAddress
	}
	payload := base58.Decode(s[len(humanReadablePrefix):])
	if len(payload) != Size+checksumLen {
		return Address{}, fmt.Errorf("%w: decoded payload is %d bytes, want %d",
			ErrMalformedAddress, len(payload), Size+checksumLen)
	}

	var addr Address
	copy(addr[:], payload[:Size])

	want := addr.checksum()
	for i := 0; i < checksumLen; i++ {
		if payload[Size+i] != want[i] {
			return Address{}, ErrChecksumMismatch
		}
	}
	return addr, nil
}
