// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1fx

import (
	"github.com/ava-labs/avalanche-wallet-core/codec"
	"github.com/ava-labs/avalanche-wallet-core/ids"
	"github.com/ava-labs/avalanche-wallet-core/utils/set"
	"github.com/ava-labs/avalanche-wallet-core/utils/wrappers"
)

// MintOutputTypeID is SECPMintOutput's wire type id.
const MintOutputTypeID = 0x00000006

var _ codec.Output = (*MintOutput)(nil)

// MintOutput grants the owners the right to mint further units of an
// asset; the spend solver silently skips it, like every non-transfer
// variant.
type MintOutput struct {
	OutputOwners
}

func (*MintOutput) TypeID() uint32 { return MintOutputTypeID }

func (out *MintOutput) Marshal(p *wrappers.Packer) { out.OutputOwners.Marshal(p) }

func (out *MintOutput) Bytes() []byte {
	p := &wrappers.Packer{}
	codec.MarshalOutput(p, out)
	return p.Bytes()
}

func (out *MintOutput) Spenders(fromAddrs set.Set[ids.ShortID], asOf uint64) []ids.ShortID {
	return out.OutputOwners.Spenders(fromAddrs, asOf)
}

func (out *MintOutput) MeetsThreshold(fromAddrs set.Set[ids.ShortID], asOf uint64) bool {
	return out.OutputOwners.MeetsThreshold(fromAddrs, asOf)
}

func (out *MintOutput) AddressIndex(addr ids.ShortID) int {
	return out.OutputOwners.AddressIndex(addr)
}

func UnmarshalMintOutput(p *wrappers.Packer) (codec.Output, error) {
	owners, err := UnmarshalOutputOwners(p)
	if err != nil {
		return nil, err
	}
	return &MintOutput{OutputOwners: *owners}, nil
}

func init() {
	codec.RegisterOutput(MintOutputTypeID, UnmarshalMintOutput)
}
