// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1fx

import (
	"github.com/ava-labs/avalanche-wallet-core/codec"
	"github.com/ava-labs/avalanche-wallet-core/utils/wrappers"
)

// TransferInputTypeID is SECPTransferInput's wire type id.
const TransferInputTypeID = 0x00000005

var _ codec.Input = (*TransferInput)(nil)

// TransferInput consumes a TransferOutput's full amount.
type TransferInput struct {
	Amt uint64
	Input
}

func (*TransferInput) TypeID() uint32 { return TransferInputTypeID }

func (in *TransferInput) Marshal(p *wrappers.Packer) {
	p.PackLong(in.Amt)
	in.Input.Marshal(p)
}

func UnmarshalTransferInput(p *wrappers.Packer) (codec.Input, error) {
	amt := p.UnpackLong()
	in, err := UnmarshalInput(p)
	if err != nil {
		return nil, err
	}
	return &TransferInput{Amt: amt, Input: *in}, nil
}

func init() {
	codec.RegisterInput(TransferInputTypeID, UnmarshalTransferInput)
}
