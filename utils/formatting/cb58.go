// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package formatting implements CB58, the checksummed base58 textual form
// of ids, keys and UTXOs.
package formatting

import (
	"errors"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/ava-labs/avalanche-wallet-core/utils/hashing"
)

// checksumLen is the number of trailing checksum bytes CB58 appends.
const checksumLen = 4

var (
	// ErrChecksum is returned by CB58Decode when the checksum doesn't match.
	ErrChecksum = errors.New("invalid checksum")
	errMissingChecksum = fmt.Errorf("input is smaller than the checksum size, %d", checksumLen)
)

// CB58Encode returns base58(bytes || last 4 bytes of SHA256(bytes)).
func CB58Encode(bytes []byte) string {
	checked := make([]byte, len(bytes)+checksumLen)
	copy(checked, bytes)
	copy(checked[len(bytes):], hashing.Checksum(bytes, checksumLen))
	return base58.Encode(checked)
}

// CB58Decode reverses CB58Encode, returning ErrChecksum if the trailing 4
// bytes don't match SHA256 of the prefix.
func CB58Decode(str string) ([]byte, error) {
	decoded, err := base58.Decode(str)
	if err != nil {
		return nil, fmt.Errorf("couldn't decode base58 string: %w", err)
	}
	return checkAndStrip(decoded)
}

func checkAndStrip(decoded []byte) ([]byte, error) {
	if len(decoded) < checksumLen {
		return nil, errMissingChecksum
	}

	rawBytes := decoded[:len(decoded)-checksumLen]
	checkBytes := decoded[len(decoded)-checksumLen:]
	expectedCheckBytes := hashing.Checksum(rawBytes, checksumLen)
	for i, b := range checkBytes {
		if b != expectedCheckBytes[i] {
			return nil, fmt.Errorf("%w: expected %x got %x", ErrChecksum, expectedCheckBytes, checkBytes)
		}
	}
	return rawBytes, nil
}
