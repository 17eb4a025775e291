// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package nftfx holds the NFT output variants. The spend solver never
// selects them, but they still need a full codec entry so deserializing a
// UTXO set that contains them doesn't fail with an unknown type id.
package nftfx

import (
	"github.com/ava-labs/avalanche-wallet-core/codec"
	"github.com/ava-labs/avalanche-wallet-core/ids"
	"github.com/ava-labs/avalanche-wallet-core/utils/set"
	"github.com/ava-labs/avalanche-wallet-core/utils/wrappers"
	"github.com/ava-labs/avalanche-wallet-core/vms/secp256k1fx"
)

const (
	MintOutputTypeID     = 0x0000000a
	TransferOutputTypeID = 0x0000000b
)

var (
	_ codec.Output = (*MintOutput)(nil)
	_ codec.Output = (*TransferOutput)(nil)
)

// MintOutput grants the right to mint more units of an NFT group.
type MintOutput struct {
	GroupID uint32
	secp256k1fx.OutputOwners
}

func (*MintOutput) TypeID() uint32 { return MintOutputTypeID }

func (out *MintOutput) Marshal(p *wrappers.Packer) {
	p.PackInt(out.GroupID)
	out.OutputOwners.Marshal(p)
}

func (out *MintOutput) Bytes() []byte {
	p := &wrappers.Packer{}
	codec.MarshalOutput(p, out)
	return p.Bytes()
}

func (out *MintOutput) Spenders(from set.Set[ids.ShortID], asOf uint64) []ids.ShortID {
	return out.OutputOwners.Spenders(from, asOf)
}

func (out *MintOutput) MeetsThreshold(from set.Set[ids.ShortID], asOf uint64) bool {
	return out.OutputOwners.MeetsThreshold(from, asOf)
}

func (out *MintOutput) AddressIndex(addr ids.ShortID) int { return out.OutputOwners.AddressIndex(addr) }

func unmarshalMintOutput(p *wrappers.Packer) (codec.Output, error) {
	groupID := p.UnpackInt()
	owners, err := secp256k1fx.UnmarshalOutputOwners(p)
	if err != nil {
		return nil, err
	}
	return &MintOutput{GroupID: groupID, OutputOwners: *owners}, nil
}

// TransferOutput carries one instance of an NFT (its group id + payload).
type TransferOutput struct {
	GroupID uint32
	Payload []byte
	secp256k1fx.OutputOwners
}

func (*TransferOutput) TypeID() uint32 { return TransferOutputTypeID }

func (out *TransferOutput) Marshal(p *wrappers.Packer) {
	p.PackInt(out.GroupID)
	p.PackBytes(out.Payload)
	out.OutputOwners.Marshal(p)
}

func (out *TransferOutput) Bytes() []byte {
	p := &wrappers.Packer{}
	codec.MarshalOutput(p, out)
	return p.Bytes()
}

func (out *TransferOutput) Spenders(from set.Set[ids.ShortID], asOf uint64) []ids.ShortID {
	return out.OutputOwners.Spenders(from, asOf)
}

func (out *TransferOutput) MeetsThreshold(from set.Set[ids.ShortID], asOf uint64) bool {
	return out.OutputOwners.MeetsThreshold(from, asOf)
}

func (out *TransferOutput) AddressIndex(addr ids.ShortID) int {
	return out.OutputOwners.AddressIndex(addr)
}

func unmarshalTransferOutput(p *wrappers.Packer) (codec.Output, error) {
	groupID := p.UnpackInt()
	payload := p.UnpackBytes()
	owners, err := secp256k1fx.UnmarshalOutputOwners(p)
	if err != nil {
		return nil, err
	}
	return &TransferOutput{GroupID: groupID, Payload: payload, OutputOwners: *owners}, nil
}

func init() {
	codec.RegisterOutput(MintOutputTypeID, unmarshalMintOutput)
	codec.RegisterOutput(TransferOutputTypeID, unmarshalTransferOutput)
}
