// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package hashing collects the two digests the wire format and the address
// scheme are built on: plain SHA-256, and SHA-256 followed by RIPEMD-160.
package hashing

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // required for address derivation
)

// HashLen is the length, in bytes, of a Hash256 digest.
const HashLen = 32

// AddrLen is the length, in bytes, of a Hash160 digest.
const AddrLen = 20

// ComputeHash256 returns SHA256(bytes).
func ComputeHash256(bytes []byte) []byte {
	hash := sha256.Sum256(bytes)
	return hash[:]
}

// ComputeHash256Array returns SHA256(bytes) as a fixed-size array.
func ComputeHash256Array(bytes []byte) [HashLen]byte {
	return sha256.Sum256(bytes)
}

// ComputeHash160 returns RIPEMD160(SHA256(bytes)).
func ComputeHash160(bytes []byte) []byte {
	addr := ComputeHash160Array(bytes)
	return addr[:]
}

// ComputeHash160Array returns RIPEMD160(SHA256(bytes)) as a fixed-size array.
func ComputeHash160Array(bytes []byte) [AddrLen]byte {
	sha := sha256.Sum256(bytes)

	hasher := ripemd160.New()
	_, _ = hasher.Write(sha[:]) // ripemd160.digest.Write never errors
	var addr [AddrLen]byte
	copy(addr[:], hasher.Sum(nil))
	return addr
}

// Checksum returns the last [size] bytes of SHA256(bytes).
func Checksum(bytes []byte, size int) []byte {
	hash := ComputeHash256(bytes)
	return hash[len(hash)-size:]
}
