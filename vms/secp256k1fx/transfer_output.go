// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1fx

import (
	"errors"

	"github.com/ava-labs/avalanche-wallet-core/codec"
	"github.com/ava-labs/avalanche-wallet-core/ids"
	"github.com/ava-labs/avalanche-wallet-core/utils/set"
	"github.com/ava-labs/avalanche-wallet-core/utils/wrappers"
)

// TransferOutputTypeID is the transfer output's wire type id, shared by
// the AVM and PlatformVM dialects.
const TransferOutputTypeID = 0x00000007

var (
	errZeroAmount = errors.New("amount must be greater than 0")

	_ codec.Output = (*TransferOutput)(nil)
)

// TransferOutput is a plain spendable amount behind an owners clause.
type TransferOutput struct {
	Amt uint64
	OutputOwners
}

func (*TransferOutput) TypeID() uint32 { return TransferOutputTypeID }

func (out *TransferOutput) Verify() error {
	if out.Amt == 0 {
		return errZeroAmount
	}
	return out.OutputOwners.Verify()
}

func (out *TransferOutput) Marshal(p *wrappers.Packer) {
	p.PackLong(out.Amt)
	out.OutputOwners.Marshal(p)
}

func (out *TransferOutput) Bytes() []byte {
	p := &wrappers.Packer{}
	codec.MarshalOutput(p, out)
	return p.Bytes()
}

func (out *TransferOutput) Spenders(fromAddrs set.Set[ids.ShortID], asOf uint64) []ids.ShortID {
	return out.OutputOwners.Spenders(fromAddrs, asOf)
}

func (out *TransferOutput) MeetsThreshold(fromAddrs set.Set[ids.ShortID], asOf uint64) bool {
	return out.OutputOwners.MeetsThreshold(fromAddrs, asOf)
}

func (out *TransferOutput) AddressIndex(addr ids.ShortID) int {
	return out.OutputOwners.AddressIndex(addr)
}

// Amount returns the transferable amount, used by avax.UTXOSet.GetBalance
// and the spend solver.
func (out *TransferOutput) Amount() uint64 { return out.Amt }

func UnmarshalTransferOutput(p *wrappers.Packer) (codec.Output, error) {
	amt := p.UnpackLong()
	owners, err := UnmarshalOutputOwners(p)
	if err != nil {
		return nil, err
	}
	return &TransferOutput{Amt: amt, OutputOwners: *owners}, nil
}

func init() {
	codec.RegisterOutput(TransferOutputTypeID, UnmarshalTransferOutput)
}
