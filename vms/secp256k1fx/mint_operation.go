// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1fx

import "github.com/ava-labs/avalanche-wallet-core/utils/wrappers"

// MintOperationTypeID is SECPMintOperation's wire type id.
const MintOperationTypeID = 0x00000008

// MintOperation authorizes spending a MintOutput: [SigIndices] proves
// ownership of the mint right, producing a fresh MintOutput (the
// unconsumed remainder of the mint right) and a TransferOutput (the newly
// minted units). OperationTx carries a list of these.
type MintOperation struct {
	Input
	MintOutput     MintOutput
	TransferOutput TransferOutput
}

func (*MintOperation) TypeID() uint32 { return MintOperationTypeID }

func (op *MintOperation) Verify() error {
	if err := op.Input.Verify(); err != nil {
		return err
	}
	if err := op.MintOutput.Verify(); err != nil {
		return err
	}
	return op.TransferOutput.Verify()
}

func (op *MintOperation) Marshal(p *wrappers.Packer) {
	op.Input.Marshal(p)
	op.MintOutput.Marshal(p)
	op.TransferOutput.Marshal(p)
}

func UnmarshalMintOperation(p *wrappers.Packer) (*MintOperation, error) {
	in, err := UnmarshalInput(p)
	if err != nil {
		return nil, err
	}
	mintOutIface, err := UnmarshalMintOutput(p)
	if err != nil {
		return nil, err
	}
	mintOut := mintOutIface.(*MintOutput)
	transferOutIface, err := UnmarshalTransferOutput(p)
	if err != nil {
		return nil, err
	}
	transferOut := transferOutIface.(*TransferOutput)
	return &MintOperation{Input: *in, MintOutput: *mintOut, TransferOutput: *transferOut}, nil
}
