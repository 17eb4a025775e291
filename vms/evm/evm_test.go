// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package evm

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/avalanche-wallet-core/ids"
	"github.com/ava-labs/avalanche-wallet-core/utils/wrappers"
)

func evmAddr(seed byte) common.Address {
	var addr common.Address
	addr[common.AddressLength-1] = seed
	return addr
}

func TestEVMOutputRoundTrip(t *testing.T) {
	out := &EVMOutput{
		Address: evmAddr(1),
		Amount:  12345,
		AssetID: ids.GenerateTestID([]byte("asset")),
	}

	p := &wrappers.Packer{}
	out.Marshal(p)
	require.False(t, p.Errored())
	// address(20) + amount(8) + assetID(32)
	assert.Len(t, p.Bytes(), 60)

	r := &wrappers.Packer{Buf: p.Bytes()}
	decoded, err := UnmarshalEVMOutput(r)
	require.NoError(t, err)
	assert.Equal(t, out, decoded)
}

func TestEVMInputRoundTrip(t *testing.T) {
	in := &EVMInput{
		Address: evmAddr(2),
		Amount:  999,
		AssetID: ids.GenerateTestID([]byte("asset")),
		Nonce:   7,
	}

	p := &wrappers.Packer{}
	in.Marshal(p)
	require.False(t, p.Errored())

	r := &wrappers.Packer{Buf: p.Bytes()}
	decoded, err := UnmarshalEVMInput(r)
	require.NoError(t, err)
	assert.Equal(t, in, decoded)
}

func TestSortEVMOutputsByAddressThenAsset(t *testing.T) {
	assetA := ids.ID{}
	assetB := ids.ID{}
	assetB[0] = 1

	outs := []EVMOutput{
		{Address: evmAddr(2), AssetID: assetA},
		{Address: evmAddr(1), AssetID: assetB},
		{Address: evmAddr(1), AssetID: assetA},
	}
	SortEVMOutputs(outs)
	assert.Equal(t, evmAddr(1), outs[0].Address)
	assert.Equal(t, assetA, outs[0].AssetID)
	assert.Equal(t, evmAddr(1), outs[1].Address)
	assert.Equal(t, assetB, outs[1].AssetID)
	assert.Equal(t, evmAddr(2), outs[2].Address)
}

func TestSortEVMInputsByAddressAssetNonce(t *testing.T) {
	asset := ids.ID{}
	ins := []EVMInput{
		{Address: evmAddr(1), AssetID: asset, Nonce: 2},
		{Address: evmAddr(1), AssetID: asset, Nonce: 1},
	}
	SortEVMInputs(ins)
	assert.Equal(t, uint64(1), ins[0].Nonce)
	assert.Equal(t, uint64(2), ins[1].Nonce)
}
