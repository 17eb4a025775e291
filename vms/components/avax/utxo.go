// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package avax holds the chain-agnostic UTXO model:
// Asset, UTXOID, UTXO, TransferableInput/Output, and the UTXOSet the spend
// solver (§4.6) walks. X, P and C builders all import this package rather
// than redefining it.
package avax

import (
	"errors"

	"github.com/ava-labs/avalanche-wallet-core/codec"
	"github.com/ava-labs/avalanche-wallet-core/ids"
	"github.com/ava-labs/avalanche-wallet-core/utils/hashing"
	"github.com/ava-labs/avalanche-wallet-core/utils/wrappers"
)

var errNilOutput = errors.New("nil output")

// Asset identifies the asset a UTXO or TransferableInput/Output denominates.
type Asset struct {
	ID ids.ID
}

func (a *Asset) Marshal(p *wrappers.Packer) { p.PackFixedBytes(a.ID.Bytes()) }

func UnmarshalAsset(p *wrappers.Packer) (Asset, error) {
	id, err := ids.ToID(p.UnpackFixedBytes(wrappers.IDLen))
	if p.Errored() {
		return Asset{}, p.Err
	}
	return Asset{ID: id}, err
}

// UTXOID names one output of one transaction by its (txID, index) pair.
type UTXOID struct {
	TxID        ids.ID
	OutputIndex uint32
}

// InputID is the UTXOID's own 32-byte identity, derived deterministically
// from (txID, index), used as the UTXOSet key.
func (u *UTXOID) InputID() ids.ID {
	p := &wrappers.Packer{}
	p.PackFixedBytes(u.TxID.Bytes())
	p.PackInt(u.OutputIndex)
	return hashing.ComputeHash256Array(p.Bytes())
}

// Compare orders UTXOIDs by (txID, index), the canonical order the
// candidate set is sorted into before the solver walks it.
func (u *UTXOID) Compare(other *UTXOID) int {
	if c := u.TxID.Compare(other.TxID); c != 0 {
		return c
	}
	switch {
	case u.OutputIndex < other.OutputIndex:
		return -1
	case u.OutputIndex > other.OutputIndex:
		return 1
	default:
		return 0
	}
}

func (u *UTXOID) Marshal(p *wrappers.Packer) {
	p.PackFixedBytes(u.TxID.Bytes())
	p.PackInt(u.OutputIndex)
}

func UnmarshalUTXOID(p *wrappers.Packer) (UTXOID, error) {
	txID, err := ids.ToID(p.UnpackFixedBytes(wrappers.IDLen))
	if err != nil {
		return UTXOID{}, err
	}
	idx := p.UnpackInt()
	if p.Errored() {
		return UTXOID{}, p.Err
	}
	return UTXOID{TxID: txID, OutputIndex: idx}, nil
}

// UTXO is one spendable output: its identity, asset, and the polymorphic
// output body dispatched through the codec registry.
type UTXO struct {
	UTXOID
	Asset
	Out codec.Output
}

func (u *UTXO) Marshal(p *wrappers.Packer) {
	u.UTXOID.Marshal(p)
	u.Asset.Marshal(p)
	codec.MarshalOutput(p, u.Out)
}

func UnmarshalUTXO(p *wrappers.Packer) (*UTXO, error) {
	utxoID, err := UnmarshalUTXOID(p)
	if err != nil {
		return nil, err
	}
	asset, err := UnmarshalAsset(p)
	if err != nil {
		return nil, err
	}
	out, err := codec.SelectOutputClass(p)
	if err != nil {
		return nil, err
	}
	return &UTXO{UTXOID: utxoID, Asset: asset, Out: out}, nil
}

// Bytes returns the UTXO's full wire encoding.
func (u *UTXO) Bytes() []byte {
	p := &wrappers.Packer{}
	u.Marshal(p)
	return p.Bytes()
}

// TransferableOutput pairs an Asset with a polymorphic output body; it is
// what appears in a transaction's Outs list.
type TransferableOutput struct {
	Asset
	Out codec.Output
}

func (out *TransferableOutput) Marshal(p *wrappers.Packer) {
	out.Asset.Marshal(p)
	codec.MarshalOutput(p, out.Out)
}

func UnmarshalTransferableOutput(p *wrappers.Packer) (*TransferableOutput, error) {
	asset, err := UnmarshalAsset(p)
	if err != nil {
		return nil, err
	}
	out, err := codec.SelectOutputClass(p)
	if err != nil {
		return nil, err
	}
	return &TransferableOutput{Asset: asset, Out: out}, nil
}

func (out *TransferableOutput) Verify() error {
	if out.Out == nil {
		return errNilOutput
	}
	return out.Out.Verify()
}

// Compare orders two TransferableOutputs canonically: by asset id, then
// by serialized output body.
func (out *TransferableOutput) Compare(other *TransferableOutput) int {
	if c := out.Asset.ID.Compare(other.Asset.ID); c != 0 {
		return c
	}
	return codec.Compare(out.Out, other.Out)
}

// TransferableInput pairs a UTXOID+Asset with the polymorphic input body
// consumed from that UTXO; it is what appears in a transaction's Ins list.
type TransferableInput struct {
	UTXOID
	Asset
	In codec.Input
}

func (in *TransferableInput) Marshal(p *wrappers.Packer) {
	in.UTXOID.Marshal(p)
	in.Asset.Marshal(p)
	codec.MarshalInput(p, in.In)
}

func UnmarshalTransferableInput(p *wrappers.Packer) (*TransferableInput, error) {
	utxoID, err := UnmarshalUTXOID(p)
	if err != nil {
		return nil, err
	}
	asset, err := UnmarshalAsset(p)
	if err != nil {
		return nil, err
	}
	in, err := codec.SelectInputClass(p)
	if err != nil {
		return nil, err
	}
	return &TransferableInput{UTXOID: utxoID, Asset: asset, In: in}, nil
}

func (in *TransferableInput) Verify() error {
	if in.In == nil {
		return errNilOutput
	}
	return in.In.Verify()
}

// Compare orders two TransferableInputs by UTXOID, the order inputs are
// placed in before credentials are attached (so a credential's index
// lines up with its input's position).
func (in *TransferableInput) Compare(other *TransferableInput) int {
	return in.UTXOID.Compare(&other.UTXOID)
}
