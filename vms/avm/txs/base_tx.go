// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package txs holds the X-chain (AVM) transaction bodies: BaseTx,
// CreateAssetTx, OperationTx, ImportTx, ExportTx.
package txs

import (
	"errors"

	"github.com/ava-labs/avalanche-wallet-core/ids"
	"github.com/ava-labs/avalanche-wallet-core/txs"
	"github.com/ava-labs/avalanche-wallet-core/utils/wrappers"
	"github.com/ava-labs/avalanche-wallet-core/vms/components/avax"
)

const (
	BaseTxTypeID        = 0x00000000
	CreateAssetTxTypeID = 0x00000001
	OperationTxTypeID   = 0x00000002
	ImportTxTypeID      = 0x00000003
	ExportTxTypeID      = 0x00000004

	// MaxMemoLen bounds the BaseTx memo field.
	MaxMemoLen = 256
)

var (
	errMemoTooLong = errors.New("memo exceeds 256 bytes")

	_ txs.UnsignedTx = (*BaseTx)(nil)
)

// BaseTx carries the networkID/blockchainID/outputs/inputs/memo frame
// shared by every chain's transaction types.
type BaseTx struct {
	NetworkID    uint32
	BlockchainID ids.ID
	Outs         []*avax.TransferableOutput
	Inputs       []*avax.TransferableInput
	Memo         []byte
}

func (*BaseTx) TypeID() uint32 { return BaseTxTypeID }

// Ins satisfies txs.UnsignedTx: the input list a KeyChain assembles
// credentials for, in wire order.
func (tx *BaseTx) Ins() []*avax.TransferableInput { return tx.Inputs }

func (tx *BaseTx) Verify() error {
	if len(tx.Memo) > MaxMemoLen {
		return errMemoTooLong
	}
	for _, out := range tx.Outs {
		if err := out.Verify(); err != nil {
			return err
		}
	}
	for _, in := range tx.Inputs {
		if err := in.Verify(); err != nil {
			return err
		}
	}
	return nil
}

func (tx *BaseTx) Marshal(p *wrappers.Packer) {
	marshalBaseTxBody(p, tx.NetworkID, tx.BlockchainID, tx.Outs, tx.Inputs, tx.Memo)
}

// marshalBaseTxBody writes the shared `networkID || blockchainID || numOuts ||
// outs || numIns || ins || memoLen || memo` wire layout used by
// every tx type that embeds BaseTx's fields.
func marshalBaseTxBody(p *wrappers.Packer, networkID uint32, blockchainID ids.ID, outs []*avax.TransferableOutput, ins []*avax.TransferableInput, memo []byte) {
	p.PackInt(networkID)
	p.PackFixedBytes(blockchainID.Bytes())
	p.PackInt(uint32(len(outs)))
	for _, out := range outs {
		out.Marshal(p)
	}
	p.PackInt(uint32(len(ins)))
	for _, in := range ins {
		in.Marshal(p)
	}
	p.PackBytes(memo)
}

func unmarshalBaseTxBody(p *wrappers.Packer) (networkID uint32, blockchainID ids.ID, outs []*avax.TransferableOutput, ins []*avax.TransferableInput, memo []byte, err error) {
	networkID = p.UnpackInt()
	blockchainID, err = ids.ToID(p.UnpackFixedBytes(wrappers.IDLen))
	if err != nil {
		return
	}
	numOuts := p.UnpackInt()
	outs = make([]*avax.TransferableOutput, numOuts)
	for i := range outs {
		outs[i], err = avax.UnmarshalTransferableOutput(p)
		if err != nil {
			return
		}
	}
	numIns := p.UnpackInt()
	ins = make([]*avax.TransferableInput, numIns)
	for i := range ins {
		ins[i], err = avax.UnmarshalTransferableInput(p)
		if err != nil {
			return
		}
	}
	memo = p.UnpackBytes()
	if p.Errored() {
		err = p.Err
	}
	return
}

func UnmarshalBaseTx(p *wrappers.Packer) (*BaseTx, error) {
	networkID, blockchainID, outs, ins, memo, err := unmarshalBaseTxBody(p)
	if err != nil {
		return nil, err
	}
	return &BaseTx{
		NetworkID:    networkID,
		BlockchainID: blockchainID,
		Outs:         outs,
		Inputs:       ins,
		Memo:         memo,
	}, nil
}
