// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"errors"

	"github.com/ava-labs/avalanche-wallet-core/codec"
	"github.com/ava-labs/avalanche-wallet-core/txs"
	"github.com/ava-labs/avalanche-wallet-core/utils/wrappers"
)

const (
	maxNameLen   = 128
	maxSymbolLen = 4
	maxDenom     = 32
)

var (
	errNameTooLong   = errors.New("asset name exceeds 128 bytes")
	errSymbolTooLong = errors.New("asset symbol exceeds 4 bytes")
	errDenomTooLarge = errors.New("denomination exceeds 32")

	_ txs.UnsignedTx = (*CreateAssetTx)(nil)
)

// InitialState is one `fxID → outputs` entry CreateAssetTx carries:
// the outputs an asset is minted with at creation.
type InitialState struct {
	FxID uint32
	Outs []codec.Output
}

func (s *InitialState) Marshal(p *wrappers.Packer) {
	p.PackInt(s.FxID)
	p.PackInt(uint32(len(s.Outs)))
	for _, out := range s.Outs {
		codec.MarshalOutput(p, out)
	}
}

func UnmarshalInitialState(p *wrappers.Packer) (*InitialState, error) {
	fxID := p.UnpackInt()
	numOuts := p.UnpackInt()
	outs := make([]codec.Output, numOuts)
	for i := range outs {
		out, err := codec.SelectOutputClass(p)
		if err != nil {
			return nil, err
		}
		outs[i] = out
	}
	if p.Errored() {
		return nil, p.Err
	}
	return &InitialState{FxID: fxID, Outs: outs}, nil
}

// CreateAssetTx extends BaseTx with the new asset's metadata; the
// resulting transaction id is that asset's AssetID.
type CreateAssetTx struct {
	BaseTx
	Name          string
	Symbol        string
	Denomination  uint8
	InitialStates []*InitialState
}

func (*CreateAssetTx) TypeID() uint32 { return CreateAssetTxTypeID }

func (tx *CreateAssetTx) Verify() error {
	if len(tx.Name) > maxNameLen {
		return errNameTooLong
	}
	if len(tx.Symbol) > maxSymbolLen {
		return errSymbolTooLong
	}
	if tx.Denomination > maxDenom {
		return errDenomTooLarge
	}
	return tx.BaseTx.Verify()
}

func (tx *CreateAssetTx) Marshal(p *wrappers.Packer) {
	tx.BaseTx.Marshal(p)
	p.PackBytes([]byte(tx.Name))
	p.PackBytes([]byte(tx.Symbol))
	p.PackByte(tx.Denomination)
	p.PackInt(uint32(len(tx.InitialStates)))
	for _, state := range tx.InitialStates {
		state.Marshal(p)
	}
}

func UnmarshalCreateAssetTx(p *wrappers.Packer) (*CreateAssetTx, error) {
	base, err := UnmarshalBaseTx(p)
	if err != nil {
		return nil, err
	}
	name := string(p.UnpackBytes())
	symbol := string(p.UnpackBytes())
	denom := p.UnpackByte()
	numStates := p.UnpackInt()
	states := make([]*InitialState, numStates)
	for i := range states {
		states[i], err = UnmarshalInitialState(p)
		if err != nil {
			return nil, err
		}
	}
	if p.Errored() {
		return nil, p.Err
	}
	return &CreateAssetTx{
		BaseTx:        *base,
		Name:          name,
		Symbol:        symbol,
		Denomination:  denom,
		InitialStates: states,
	}, nil
}
