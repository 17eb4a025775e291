// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package txs holds the P-chain (PlatformVM) transaction bodies: BaseTx,
// ImportTx, ExportTx. P-chain UTXOs may carry
// stakeable.LockOut/LockIn wrappers around a plain secp256k1fx transfer,
// which is why this package's BaseTx lives separately from the X-chain's
// even though the wire shape is identical.
package txs

import (
	"errors"

	"github.com/ava-labs/avalanche-wallet-core/ids"
	"github.com/ava-labs/avalanche-wallet-core/txs"
	"github.com/ava-labs/avalanche-wallet-core/utils/wrappers"
	"github.com/ava-labs/avalanche-wallet-core/vms/components/avax"
)

const (
	BaseTxTypeID   = 0x00000000
	ImportTxTypeID = 0x00000011
	ExportTxTypeID = 0x00000012

	MaxMemoLen = 256
)

var (
	errMemoTooLong = errors.New("memo exceeds 256 bytes")

	_ txs.UnsignedTx = (*BaseTx)(nil)
)

// BaseTx mirrors avm/txs.BaseTx's wire shape.
type BaseTx struct {
	NetworkID    uint32
	BlockchainID ids.ID
	Outs         []*avax.TransferableOutput
	Inputs       []*avax.TransferableInput
	Memo         []byte
}

func (*BaseTx) TypeID() uint32 { return BaseTxTypeID }

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
	p.PackInt(tx.NetworkID)
	p.PackFixedBytes(tx.BlockchainID.Bytes())
	p.PackInt(uint32(len(tx.Outs)))
	for _, out := range tx.Outs {
		out.Marshal(p)
	}
	p.PackInt(uint32(len(tx.Inputs)))
	for _, in := range tx.Inputs {
		in.Marshal(p)
	}
	p.PackBytes(tx.Memo)
}

func UnmarshalBaseTx(p *wrappers.Packer) (*BaseTx, error) {
	networkID := p.UnpackInt()
	blockchainID, err := ids.ToID(p.UnpackFixedBytes(wrappers.IDLen))
	if err != nil {
		return nil, err
	}
	numOuts := p.UnpackInt()
	outs := make([]*avax.TransferableOutput, numOuts)
	for i := range outs {
		outs[i], err = avax.UnmarshalTransferableOutput(p)
		if err != nil {
			return nil, err
		}
	}
	numIns := p.UnpackInt()
	ins := make([]*avax.TransferableInput, numIns)
	for i := range ins {
		ins[i], err = avax.UnmarshalTransferableInput(p)
		if err != nil {
			return nil, err
		}
	}
	memo := p.UnpackBytes()
	if p.Errored() {
		return nil, p.Err
	}
	return &BaseTx{
		NetworkID:    networkID,
		BlockchainID: blockchainID,
		Outs:         outs,
		Inputs:       ins,
		Memo:         memo,
	}, nil
}
