// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/ava-labs/avalanche-wallet-core/ids"
	"github.com/ava-labs/avalanche-wallet-core/txs"
	"github.com/ava-labs/avalanche-wallet-core/utils/wrappers"
	"github.com/ava-labs/avalanche-wallet-core/vms/components/avax"
)

var _ txs.UnsignedTx = (*ImportTx)(nil)

// ImportTx is the P-chain counterpart of avm/txs.ImportTx.
type ImportTx struct {
	BaseTx
	SourceChain ids.ID
	ImportedIns []*avax.TransferableInput
}

func (*ImportTx) TypeID() uint32 { return ImportTxTypeID }

func (tx *ImportTx) Ins() []*avax.TransferableInput {
	return append(append([]*avax.TransferableInput{}, tx.Inputs...), tx.ImportedIns...)
}

func (tx *ImportTx) Marshal(p *wrappers.Packer) {
	tx.BaseTx.Marshal(p)
	p.PackFixedBytes(tx.SourceChain.Bytes())
	p.PackInt(uint32(len(tx.ImportedIns)))
	for _, in := range tx.ImportedIns {
		in.Marshal(p)
	}
}

func UnmarshalImportTx(p *wrappers.Packer) (*ImportTx, error) {
	base, err := UnmarshalBaseTx(p)
	if err != nil {
		return nil, err
	}
	sourceChain, err := ids.ToID(p.UnpackFixedBytes(wrappers.IDLen))
	if err != nil {
		return nil, err
	}
	numIns := p.UnpackInt()
	importedIns := make([]*avax.TransferableInput, numIns)
	for i := range importedIns {
		importedIns[i], err = avax.UnmarshalTransferableInput(p)
		if err != nil {
			return nil, err
		}
	}
	if p.Errored() {
		return nil, p.Err
	}
	return &ImportTx{BaseTx: *base, SourceChain: sourceChain, ImportedIns: importedIns}, nil
}
