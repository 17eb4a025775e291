// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package formatting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCB58RoundTrip(t *testing.T) {
	tests := [][]byte{
		{},
		{0},
		{0, 0, 0, 0},
		{1, 2, 3, 4, 5},
		{255, 254, 253},
		make([]byte, 32),
	}
	for _, b := range tests {
		encoded := CB58Encode(b)
		decoded, err := CB58Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, b, decoded)
	}
}

func TestCB58DecodeKnownVector(t *testing.T) {
	// 32-byte id with a valid trailing checksum.
	decoded, err := CB58Decode("24jUJ9vZexUM6expyMcT48LBx27k1m7xpraoV62oSQAHdziao5")
	require.NoError(t, err)
	assert.Len(t, decoded, 32)
}

func TestCB58DecodeRejectsTamperedString(t *testing.T) {
	valid := "24jUJ9vZexUM6expyMcT48LBx27k1m7xpraoV62oSQAHdziao5"
	tampered := []byte(valid)
	if tampered[10] == '2' {
		tampered[10] = '3'
	} else {
		tampered[10] = '2'
	}
	_, err := CB58Decode(string(tampered))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestCB58DecodeRejectsSingleBytePerturbation(t *testing.T) {
	encoded := CB58Encode([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	for i := range encoded {
		tampered := []byte(encoded)
		if tampered[i] == 'A' {
			tampered[i] = 'B'
		} else {
			tampered[i] = 'A'
		}
		if _, err := CB58Decode(string(tampered)); err == nil {
			t.Fatalf("perturbation at index %d decoded successfully", i)
		}
	}
}

func TestCB58DecodeRejectsTooShort(t *testing.T) {
	// base58 of fewer than 4 bytes can't carry a checksum.
	_, err := CB58Decode("1")
	assert.Error(t, err)
}

func TestCB58DecodeRejectsNonBase58(t *testing.T) {
	_, err := CB58Decode("0OIl")
	assert.Error(t, err)
}
