// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package stakeable holds the P-chain locked-until variants: an
// output/input pair that wraps a plain secp256k1fx output/input behind a
// lockout time, the form staked and locked-platform-fund UTXOs take.
package stakeable

import (
	"errors"

	"github.com/ava-labs/avalanche-wallet-core/codec"
	"github.com/ava-labs/avalanche-wallet-core/ids"
	"github.com/ava-labs/avalanche-wallet-core/utils/set"
	"github.com/ava-labs/avalanche-wallet-core/utils/wrappers"
	"github.com/ava-labs/avalanche-wallet-core/vms/secp256k1fx"
)

const (
	LockOutTypeID = 0x00000016
	LockInTypeID  = 0x00000015
)

var (
	errNotTransferOutput = errors.New("stakeable.LockOut must wrap a secp256k1fx.TransferOutput")
	errNotTransferInput  = errors.New("stakeable.LockIn must wrap a secp256k1fx.TransferInput")

	_ codec.Output = (*LockOut)(nil)
	_ codec.Input  = (*LockIn)(nil)
)

// LockOut is a secp256k1fx.TransferOutput that cannot be spent until
// Locktime, independent of (and typically later than) the wrapped output's
// own OutputOwners.Locktime.
type LockOut struct {
	Locktime    uint64
	TransferOut secp256k1fx.TransferOutput
}

func (*LockOut) TypeID() uint32 { return LockOutTypeID }

func (out *LockOut) Verify() error {
	return out.TransferOut.Verify()
}

func (out *LockOut) Marshal(p *wrappers.Packer) {
	p.PackLong(out.Locktime)
	codec.MarshalOutput(p, &out.TransferOut)
}

func (out *LockOut) Bytes() []byte {
	p := &wrappers.Packer{}
	codec.MarshalOutput(p, out)
	return p.Bytes()
}

func (out *LockOut) Spenders(fromAddrs set.Set[ids.ShortID], asOf uint64) []ids.ShortID {
	if out.Locktime > asOf {
		return nil
	}
	return out.TransferOut.Spenders(fromAddrs, asOf)
}

func (out *LockOut) MeetsThreshold(fromAddrs set.Set[ids.ShortID], asOf uint64) bool {
	if out.Locktime > asOf {
		return false
	}
	return out.TransferOut.MeetsThreshold(fromAddrs, asOf)
}

func (out *LockOut) AddressIndex(addr ids.ShortID) int {
	return out.TransferOut.AddressIndex(addr)
}

func (out *LockOut) Addresses() []ids.ShortID { return out.TransferOut.Addresses() }

// Amount returns the locked amount, the field balance queries and the
// spend solver read to compute how much of a lock a tx consumes.
func (out *LockOut) Amount() uint64 { return out.TransferOut.Amt }

func unmarshalLockOut(p *wrappers.Packer) (codec.Output, error) {
	locktime := p.UnpackLong()
	inner, err := codec.SelectOutputClass(p)
	if err != nil {
		return nil, err
	}
	transferOut, ok := inner.(*secp256k1fx.TransferOutput)
	if !ok {
		return nil, errNotTransferOutput
	}
	return &LockOut{Locktime: locktime, TransferOut: *transferOut}, nil
}

// LockIn is the corresponding input spending a LockOut.
type LockIn struct {
	Locktime   uint64
	TransferIn secp256k1fx.TransferInput
}

func (*LockIn) TypeID() uint32 { return LockInTypeID }

func (in *LockIn) Verify() error { return in.TransferIn.Verify() }

func (in *LockIn) Marshal(p *wrappers.Packer) {
	p.PackLong(in.Locktime)
	codec.MarshalInput(p, &in.TransferIn)
}

func unmarshalLockIn(p *wrappers.Packer) (codec.Input, error) {
	locktime := p.UnpackLong()
	inner, err := codec.SelectInputClass(p)
	if err != nil {
		return nil, err
	}
	transferIn, ok := inner.(*secp256k1fx.TransferInput)
	if !ok {
		return nil, errNotTransferInput
	}
	return &LockIn{Locktime: locktime, TransferIn: *transferIn}, nil
}

func init() {
	codec.RegisterOutput(LockOutTypeID, unmarshalLockOut)
	codec.RegisterInput(LockInTypeID, unmarshalLockIn)
}
