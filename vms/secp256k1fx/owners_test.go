// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1fx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/avalanche-wallet-core/ids"
	"github.com/ava-labs/avalanche-wallet-core/utils/set"
)

func ownerAddr(seed byte) ids.ShortID {
	var addr ids.ShortID
	addr[ids.ShortIDLen-1] = seed
	return addr
}

func TestNewOutputOwnersSortsAddresses(t *testing.T) {
	a1, a2, a3 := ownerAddr(1), ownerAddr(2), ownerAddr(3)
	owners := NewOutputOwners(0, 2, []ids.ShortID{a3, a1, a2})
	assert.Equal(t, []ids.ShortID{a1, a2, a3}, owners.Addrs)
	require.NoError(t, owners.Verify())
}

func TestVerifyRejectsThresholdAboveAddressCount(t *testing.T) {
	owners := NewOutputOwners(0, 2, []ids.ShortID{ownerAddr(1)})
	assert.Error(t, owners.Verify())
}

func TestVerifyRejectsDuplicateAddresses(t *testing.T) {
	owners := &OutputOwners{
		Threshold: 1,
		Addrs:     []ids.ShortID{ownerAddr(1), ownerAddr(1)},
	}
	assert.Error(t, owners.Verify())
}

func TestMeetsThresholdCountsIntersection(t *testing.T) {
	a1, a2, a3 := ownerAddr(1), ownerAddr(2), ownerAddr(3)
	owners := NewOutputOwners(0, 2, []ids.ShortID{a1, a2, a3})

	assert.True(t, owners.MeetsThreshold(set.Of(a1, a3), 0))
	assert.False(t, owners.MeetsThreshold(set.Of(a1), 0))
	assert.False(t, owners.MeetsThreshold(set.Of(ownerAddr(9)), 0))
}

func TestMeetsThresholdHonorsLocktime(t *testing.T) {
	a1 := ownerAddr(1)
	owners := NewOutputOwners(100, 1, []ids.ShortID{a1})

	assert.False(t, owners.MeetsThreshold(set.Of(a1), 99))
	assert.True(t, owners.MeetsThreshold(set.Of(a1), 100))
	assert.True(t, owners.MeetsThreshold(set.Of(a1), 101))
}

func TestSpendersReturnsCanonicalOrder(t *testing.T) {
	a1, a2, a3 := ownerAddr(1), ownerAddr(2), ownerAddr(3)
	owners := NewOutputOwners(0, 2, []ids.ShortID{a1, a2, a3})

	spenders := owners.Spenders(set.Of(a3, a1), 0)
	assert.Equal(t, []ids.ShortID{a1, a3}, spenders)
}

func TestSpendersEmptyWhenLocked(t *testing.T) {
	a1 := ownerAddr(1)
	owners := NewOutputOwners(100, 1, []ids.ShortID{a1})
	assert.Empty(t, owners.Spenders(set.Of(a1), 0))
}

func TestAddressIndex(t *testing.T) {
	a1, a2 := ownerAddr(1), ownerAddr(2)
	owners := NewOutputOwners(0, 1, []ids.ShortID{a1, a2})

	assert.Equal(t, 0, owners.AddressIndex(a1))
	assert.Equal(t, 1, owners.AddressIndex(a2))
	assert.Equal(t, -1, owners.AddressIndex(ownerAddr(9)))
}

func TestInputVerifyRequiresStrictlyIncreasingSigIndices(t *testing.T) {
	require.NoError(t, (&Input{SigIndices: []uint32{0, 1, 5}}).Verify())
	assert.Error(t, (&Input{SigIndices: []uint32{1, 1}}).Verify())
	assert.Error(t, (&Input{SigIndices: []uint32{2, 1}}).Verify())
}

func TestTransferOutputVerifyRejectsZeroAmount(t *testing.T) {
	out := &TransferOutput{
		Amt:          0,
		OutputOwners: *NewOutputOwners(0, 1, []ids.ShortID{ownerAddr(1)}),
	}
	assert.Error(t, out.Verify())
}
