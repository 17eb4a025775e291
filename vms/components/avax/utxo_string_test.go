// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/avalanche-wallet-core/ids"
)

func TestUTXOStringRoundTrip(t *testing.T) {
	assetID := ids.GenerateTestID([]byte("asset"))
	u := testUTXO("tx1", 0, assetID, 100, testAddr(1))

	decoded, err := UTXOFromString(u.String())
	require.NoError(t, err)
	assert.Equal(t, u.InputID(), decoded.InputID())
	assert.Equal(t, u.Bytes(), decoded.Bytes())
}

func TestUTXOFromStringRejectsTamper(t *testing.T) {
	assetID := ids.GenerateTestID([]byte("asset"))
	str := testUTXO("tx1", 0, assetID, 100, testAddr(1)).String()

	tampered := []byte(str)
	if tampered[5] == '2' {
		tampered[5] = '3'
	} else {
		tampered[5] = '2'
	}
	_, err := UTXOFromString(string(tampered))
	assert.Error(t, err)
}

func TestUTXOSetStringsRoundTrip(t *testing.T) {
	assetID := ids.GenerateTestID([]byte("asset"))
	s := NewUTXOSet()
	s.Put(testUTXO("tx1", 0, assetID, 100, testAddr(1)))
	s.Put(testUTXO("tx2", 1, assetID, 200, testAddr(2)))

	strs := s.Strings()
	require.Len(t, strs, 2)

	restored := NewUTXOSet()
	require.NoError(t, restored.PutStrings(strs))
	assert.Equal(t, s.Len(), restored.Len())
	assert.Equal(t, strs, restored.Strings())
}

func TestPutStringsRejectsGarbage(t *testing.T) {
	s := NewUTXOSet()
	assert.Error(t, s.PutStrings([]string{"not a utxo"}))
}
