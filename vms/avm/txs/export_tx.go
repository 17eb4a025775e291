// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/ava-labs/avalanche-wallet-core/ids"
	"github.com/ava-labs/avalanche-wallet-core/txs"
	"github.com/ava-labs/avalanche-wallet-core/utils/wrappers"
	"github.com/ava-labs/avalanche-wallet-core/vms/components/avax"
)

var _ txs.UnsignedTx = (*ExportTx)(nil)

// ExportTx funds its ExportedOuts from ordinary BaseTx.Ins, sending them to
// [DestinationChain]; change stays on this chain as an ordinary BaseTx
// output.
type ExportTx struct {
	BaseTx
	DestinationChain ids.ID
	ExportedOuts     []*avax.TransferableOutput
}

func (*ExportTx) TypeID() uint32 { return ExportTxTypeID }

// Verify extends BaseTx.Verify with the ExportedOuts leg, so a zero amount,
// a threshold above the address count or unsorted addresses on the
// destination-chain outputs is caught here too, not just on the change side.
func (tx *ExportTx) Verify() error {
	if err := tx.BaseTx.Verify(); err != nil {
		return err
	}
	for _, out := range tx.ExportedOuts {
		if err := out.Verify(); err != nil {
			return err
		}
	}
	return nil
}

func (tx *ExportTx) Marshal(p *wrappers.Packer) {
	tx.BaseTx.Marshal(p)
	p.PackFixedBytes(tx.DestinationChain.Bytes())
	p.PackInt(uint32(len(tx.ExportedOuts)))
	for _, out := range tx.ExportedOuts {
		out.Marshal(p)
	}
}

func UnmarshalExportTx(p *wrappers.Packer) (*ExportTx, error) {
	base, err := UnmarshalBaseTx(p)
	if err != nil {
		return nil, err
	}
	destChain, err := ids.ToID(p.UnpackFixedBytes(wrappers.IDLen))
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
	if p.Errored() {
		return nil, p.Err
	}
	return &ExportTx{BaseTx: *base, DestinationChain: destChain, ExportedOuts: outs}, nil
}
