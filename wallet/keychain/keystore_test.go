// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package keychain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/avalanche-wallet-core/ids"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	kc := New()
	addr1, err := kc.Make()
	require.NoError(t, err)
	addr2, err := kc.Make()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "keystore.json")
	require.NoError(t, kc.SaveToFile(path))

	loaded, err := LoadKeychainFromFile(path)
	require.NoError(t, err)
	assert.True(t, loaded.HasKey(addr1))
	assert.True(t, loaded.HasKey(addr2))
	assert.Equal(t, kc.Addresses().Len(), loaded.Addresses().Len())
}

func TestLoadPreservesInsertionOrder(t *testing.T) {
	kc := New()
	addr1, err := kc.Make()
	require.NoError(t, err)
	addr2, err := kc.Make()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "keystore.json")
	require.NoError(t, kc.SaveToFile(path))

	loaded, err := LoadKeychainFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, []ids.ShortID{addr1, addr2}, loaded.order)
}
