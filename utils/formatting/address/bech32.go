// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package address implements the HRP-qualified bech32 address codec:
// Format joins chain || '-' || bech32(hrp, bytes), and Parse reverses it,
// failing with ErrBech32 on any mismatch. The bech32 encode/decode/
// bit-regrouping itself is btcutil's, not a hand-rolled BIP-173
// implementation.
package address

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// ErrBech32 covers every address-decoding failure: HRP mismatch, bad
// checksum, or invalid length.
var ErrBech32 = errors.New("bech32 error")

// Bech32ToBytes decodes a bech32 string against the expected [hrp], returning
// the raw (8-bit) payload.
func Bech32ToBytes(expectedHRP, bech string) ([]byte, error) {
	hrp, data, err := bech32.Decode(bech)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBech32, err)
	}
	if hrp != expectedHRP {
		return nil, fmt.Errorf("%w: expected hrp %q got %q", ErrBech32, expectedHRP, hrp)
	}
	converted, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBech32, err)
	}
	return converted, nil
}

// BytesToBech32 encodes [payload] (8-bit bytes) under [hrp].
func BytesToBech32(hrp string, payload []byte) (string, error) {
	converted, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrBech32, err)
	}
	addr, err := bech32.Encode(hrp, converted)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrBech32, err)
	}
	return addr, nil
}

// Format joins chain || '-' || bech32(hrp, bytes).
func Format(chainIDAlias, hrp string, addrBytes []byte) (string, error) {
	addrStr, err := BytesToBech32(hrp, addrBytes)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s", chainIDAlias, addrStr), nil
}

// Parse reverses Format, returning the chain alias, the decoded HRP, and the
// raw address bytes.
func Parse(addrStr string) (chainIDAlias string, hrp string, addrBytes []byte, err error) {
	parts := strings.SplitN(addrStr, "-", 2)
	if len(parts) != 2 {
		return "", "", nil, fmt.Errorf("%w: missing '-' separator in %q", ErrBech32, addrStr)
	}
	chainIDAlias = parts[0]
	decodedHRP, data, err := bech32.Decode(parts[1])
	if err != nil {
		return "", "", nil, fmt.Errorf("%w: %s", ErrBech32, err)
	}
	addrBytes, err = bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", "", nil, fmt.Errorf("%w: %s", ErrBech32, err)
	}
	return chainIDAlias, decodedHRP, addrBytes, nil
}

// ParseToID parses [addrStr] and checks the decoded bytes have the length of
// a 20-byte short ID (address).
func ParseToID(addrStr string) (chainIDAlias, hrp string, addrBytes []byte, err error) {
	chainIDAlias, hrp, addrBytes, err = Parse(addrStr)
	if err != nil {
		return "", "", nil, err
	}
	if len(addrBytes) != 20 {
		return "", "", nil, fmt.Errorf("%w: expected 20 address bytes, got %d", ErrBech32, len(addrBytes))
	}
	return chainIDAlias, hrp, addrBytes, nil
}
