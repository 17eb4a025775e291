// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package evm is the C-chain atomic dialect: EVMOutput/EVMInput, the
// account-model halves of an
// ImportTx/ExportTx that cross between the UTXO model and the C-chain's
// account balances. Unlike vms/secp256k1fx's outputs, these never enter the
// codec.Output/Input registry: an account-keyed output has no address
// list, threshold or locktime, so it can't satisfy that interface, and
// C-chain atomic txs never mix them with UTXO-model outputs in one list.
package evm

import (
	"sort"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/avalanche-wallet-core/ids"
	"github.com/ava-labs/avalanche-wallet-core/utils/wrappers"
)

// EVMOutput credits [Amount] of [AssetID] to [Address]'s C-chain account
// balance; it is what an ImportTx produces.
type EVMOutput struct {
	Address common.Address
	Amount  uint64
	AssetID ids.ID
}

func (out *EVMOutput) Marshal(p *wrappers.Packer) {
	p.PackFixedBytes(out.Address.Bytes())
	p.PackLong(out.Amount)
	p.PackFixedBytes(out.AssetID.Bytes())
}

func UnmarshalEVMOutput(p *wrappers.Packer) (*EVMOutput, error) {
	addrBytes := p.UnpackFixedBytes(common.AddressLength)
	amount := p.UnpackLong()
	assetID, err := ids.ToID(p.UnpackFixedBytes(wrappers.IDLen))
	if p.Errored() {
		return nil, p.Err
	}
	if err != nil {
		return nil, err
	}
	return &EVMOutput{
		Address: common.BytesToAddress(addrBytes),
		Amount:  amount,
		AssetID: assetID,
	}, nil
}

// Compare orders two EVMOutputs by (Address, AssetID), the order an
// ImportTx's Outs list is canonicalized into.
func (out *EVMOutput) Compare(other *EVMOutput) int {
	if c := compareAddress(out.Address, other.Address); c != 0 {
		return c
	}
	return out.AssetID.Compare(other.AssetID)
}

// EVMInput debits [Amount] of [AssetID] from [Address]'s C-chain account
// balance at [Nonce]; it is what an ExportTx consumes, with [Nonce]
// standing in for the UTXO model's double-spend protection (the UTXO
// chains don't need nonces; the account model does).
type EVMInput struct {
	Address common.Address
	Amount  uint64
	AssetID ids.ID
	Nonce   uint64
}

func (in *EVMInput) Marshal(p *wrappers.Packer) {
	p.PackFixedBytes(in.Address.Bytes())
	p.PackLong(in.Amount)
	p.PackFixedBytes(in.AssetID.Bytes())
	p.PackLong(in.Nonce)
}

func UnmarshalEVMInput(p *wrappers.Packer) (*EVMInput, error) {
	addrBytes := p.UnpackFixedBytes(common.AddressLength)
	amount := p.UnpackLong()
	assetID, err := ids.ToID(p.UnpackFixedBytes(wrappers.IDLen))
	if err != nil {
		return nil, err
	}
	nonce := p.UnpackLong()
	if p.Errored() {
		return nil, p.Err
	}
	return &EVMInput{
		Address: common.BytesToAddress(addrBytes),
		Amount:  amount,
		AssetID: assetID,
		Nonce:   nonce,
	}, nil
}

// Compare orders two EVMInputs by (Address, AssetID, Nonce), the order an
// ExportTx's Ins list must be canonicalized into before signing.
func (in *EVMInput) Compare(other *EVMInput) int {
	if c := compareAddress(in.Address, other.Address); c != 0 {
		return c
	}
	if c := in.AssetID.Compare(other.AssetID); c != 0 {
		return c
	}
	switch {
	case in.Nonce < other.Nonce:
		return -1
	case in.Nonce > other.Nonce:
		return 1
	default:
		return 0
	}
}

func compareAddress(a, b common.Address) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// SortEVMOutputs sorts [outs] into canonical order in place.
func SortEVMOutputs(outs []EVMOutput) {
	sort.Slice(outs, func(i, j int) bool { return outs[i].Compare(&outs[j]) < 0 })
}

// SortEVMInputs sorts [ins] into canonical order in place.
func SortEVMInputs(ins []EVMInput) {
	sort.Slice(ins, func(i, j int) bool { return ins[i].Compare(&ins[j]) < 0 })
}
