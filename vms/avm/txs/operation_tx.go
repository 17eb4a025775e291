// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/ava-labs/avalanche-wallet-core/txs"
	"github.com/ava-labs/avalanche-wallet-core/utils/wrappers"
	"github.com/ava-labs/avalanche-wallet-core/vms/components/avax"
	"github.com/ava-labs/avalanche-wallet-core/vms/secp256k1fx"
)

var _ txs.UnsignedTx = (*OperationTx)(nil)

// Operation spends the UTXOs in [UTXOIDs] (all of the same asset) through
// [Op], producing whatever new outputs [Op] itself carries (e.g. a
// MintOperation's MintOutput/TransferOutput pair).
type Operation struct {
	UTXOIDs []avax.UTXOID
	Asset   avax.Asset
	Op      secp256k1fx.MintOperation
}

func (op *Operation) Marshal(p *wrappers.Packer) {
	p.PackInt(uint32(len(op.UTXOIDs)))
	for _, u := range op.UTXOIDs {
		u.Marshal(p)
	}
	op.Asset.Marshal(p)
	op.Op.Marshal(p)
}

func UnmarshalOperation(p *wrappers.Packer) (*Operation, error) {
	numUTXOIDs := p.UnpackInt()
	utxoIDs := make([]avax.UTXOID, numUTXOIDs)
	for i := range utxoIDs {
		utxoID, err := avax.UnmarshalUTXOID(p)
		if err != nil {
			return nil, err
		}
		utxoIDs[i] = utxoID
	}
	asset, err := avax.UnmarshalAsset(p)
	if err != nil {
		return nil, err
	}
	op, err := secp256k1fx.UnmarshalMintOperation(p)
	if err != nil {
		return nil, err
	}
	if p.Errored() {
		return nil, p.Err
	}
	return &Operation{UTXOIDs: utxoIDs, Asset: asset, Op: *op}, nil
}

// OperationTx extends BaseTx with a list of minting operations, the form
// asset issuance beyond a simple transfer takes.
type OperationTx struct {
	BaseTx
	Ops []*Operation
}

func (*OperationTx) TypeID() uint32 { return OperationTxTypeID }

func (tx *OperationTx) Marshal(p *wrappers.Packer) {
	tx.BaseTx.Marshal(p)
	p.PackInt(uint32(len(tx.Ops)))
	for _, op := range tx.Ops {
		op.Marshal(p)
	}
}

func UnmarshalOperationTx(p *wrappers.Packer) (*OperationTx, error) {
	base, err := UnmarshalBaseTx(p)
	if err != nil {
		return nil, err
	}
	numOps := p.UnpackInt()
	ops := make([]*Operation, numOps)
	for i := range ops {
		ops[i], err = UnmarshalOperation(p)
		if err != nil {
			return nil, err
		}
	}
	if p.Errored() {
		return nil, p.Err
	}
	return &OperationTx{BaseTx: *base, Ops: ops}, nil
}
