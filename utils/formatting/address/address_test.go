// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package address

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddrBytes() []byte {
	b := make([]byte, 20)
	for i := range b {
		b[i] = byte(i + 1)
	}
	return b
}

func TestBech32RoundTrip(t *testing.T) {
	for _, hrp := range []string{"avax", "fuji", "local"} {
		encoded, err := BytesToBech32(hrp, testAddrBytes())
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(encoded, hrp+"1"))

		decoded, err := Bech32ToBytes(hrp, encoded)
		require.NoError(t, err)
		assert.Equal(t, testAddrBytes(), decoded)
	}
}

func TestBech32ToBytesRejectsHRPMismatch(t *testing.T) {
	encoded, err := BytesToBech32("avax", testAddrBytes())
	require.NoError(t, err)

	_, err = Bech32ToBytes("fuji", encoded)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBech32)
}

func TestBech32ToBytesRejectsBadChecksum(t *testing.T) {
	encoded, err := BytesToBech32("avax", testAddrBytes())
	require.NoError(t, err)

	tampered := []byte(encoded)
	last := tampered[len(tampered)-1]
	if last == 'q' {
		tampered[len(tampered)-1] = 'p'
	} else {
		tampered[len(tampered)-1] = 'q'
	}
	_, err = Bech32ToBytes("avax", string(tampered))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBech32)
}

func TestFormatAndParse(t *testing.T) {
	formatted, err := Format("X", "avax", testAddrBytes())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(formatted, "X-avax1"))

	chain, hrp, addrBytes, err := Parse(formatted)
	require.NoError(t, err)
	assert.Equal(t, "X", chain)
	assert.Equal(t, "avax", hrp)
	assert.Equal(t, testAddrBytes(), addrBytes)
}

func TestParseRejectsMissingSeparator(t *testing.T) {
	encoded, err := BytesToBech32("avax", testAddrBytes())
	require.NoError(t, err)

	_, _, _, err = Parse(encoded)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBech32)
}

func TestParseToIDRejectsWrongLength(t *testing.T) {
	formatted, err := Format("P", "avax", []byte{1, 2, 3})
	require.NoError(t, err)

	_, _, _, err = ParseToID(formatted)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBech32)
}
