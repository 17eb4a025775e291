// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package atomic holds the C-chain's atomic transaction bodies:
// ImportTx/ExportTx crossing between the UTXO model and the EVM account
// model.
package atomic

import (
	"github.com/ava-labs/avalanche-wallet-core/ids"
	"github.com/ava-labs/avalanche-wallet-core/txs"
	"github.com/ava-labs/avalanche-wallet-core/utils/wrappers"
	"github.com/ava-labs/avalanche-wallet-core/vms/components/avax"
	"github.com/ava-labs/avalanche-wallet-core/vms/evm"
)

const (
	ImportTxTypeID = 0x00000000
	ExportTxTypeID = 0x00000001
)

var _ txs.UnsignedTx = (*ImportTx)(nil)

// ImportTx moves funds referenced by [ImportedIns] (atomic UTXOs from
// [SourceChain]) into C-chain account balances via [Outs], each keyed by
// a 20-byte EVM account address. Its inputs are
// ordinary avax.TransferableInputs, so it signs through the same
// wallet/keychain.SignTx path as the X/P chains.
type ImportTx struct {
	NetworkID    uint32
	BlockchainID ids.ID
	SourceChain  ids.ID
	ImportedIns  []*avax.TransferableInput
	Outs         []evm.EVMOutput
}

func (*ImportTx) TypeID() uint32 { return ImportTxTypeID }

func (tx *ImportTx) Ins() []*avax.TransferableInput { return tx.ImportedIns }

func (tx *ImportTx) Marshal(p *wrappers.Packer) {
	p.PackInt(tx.NetworkID)
	p.PackFixedBytes(tx.BlockchainID.Bytes())
	p.PackFixedBytes(tx.SourceChain.Bytes())
	p.PackInt(uint32(len(tx.ImportedIns)))
	for _, in := range tx.ImportedIns {
		in.Marshal(p)
	}
	p.PackInt(uint32(len(tx.Outs)))
	for i := range tx.Outs {
		tx.Outs[i].Marshal(p)
	}
}

func UnmarshalImportTx(p *wrappers.Packer) (*ImportTx, error) {
	networkID := p.UnpackInt()
	blockchainID, err := ids.ToID(p.UnpackFixedBytes(wrappers.IDLen))
	if err != nil {
		return nil, err
	}
	sourceChain, err := ids.ToID(p.UnpackFixedBytes(wrappers.IDLen))
	if err != nil {
		return nil, err
	}
	numIns := p.UnpackInt()
	ins := make([]*avax.TransferableInput, numIns)
	for i := range ins {
		ins[i], err = avax.UnmarshalTransferableInput(p)
		if err != nil {
			return nil, err
		}
	}
	numOuts := p.UnpackInt()
	outs := make([]evm.EVMOutput, numOuts)
	for i := range outs {
		out, err := evm.UnmarshalEVMOutput(p)
		if err != nil {
			return nil, err
		}
		outs[i] = *out
	}
	if p.Errored() {
		return nil, p.Err
	}
	return &ImportTx{
		NetworkID:    networkID,
		BlockchainID: blockchainID,
		SourceChain:  sourceChain,
		ImportedIns:  ins,
		Outs:         outs,
	}, nil
}
