// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package codec is the type-id registry:
// SelectOutputClass/SelectInputClass factories dispatching on a
// 4-byte type id, shared by every fx package (secp256k1fx, nftfx,
// stakeable, evm) so that vms/components/avax can deserialize polymorphic
// outputs/inputs without importing any one fx concretely.
package codec

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanche-wallet-core/ids"
	"github.com/ava-labs/avalanche-wallet-core/utils/set"
	"github.com/ava-labs/avalanche-wallet-core/utils/wrappers"
)

// ErrUnknownType is returned when the deserializer sees a type id no fx
// registered.
var ErrUnknownType = errors.New("unknown type id")

// Output is the shared capability set every output variant implements.
type Output interface {
	TypeID() uint32
	Marshal(p *wrappers.Packer)

	// Spenders returns the subset of fromAddrs that can spend this output
	// as of [asOf], in the output's own canonical (ascending) order.
	Spenders(fromAddrs set.Set[ids.ShortID], asOf uint64) []ids.ShortID
	// MeetsThreshold reports whether fromAddrs satisfies both the
	// locktime and the signature threshold of this output.
	MeetsThreshold(fromAddrs set.Set[ids.ShortID], asOf uint64) bool
	// AddressIndex returns addr's position in this output's address list,
	// or -1 if addr is absent.
	AddressIndex(addr ids.ShortID) int
	// Addresses returns the output's full address list, in canonical
	// (ascending) order, used to build a UTXOSet's address secondary
	// index.
	Addresses() []ids.ShortID

	// Bytes returns typeID || body, used by Compare for canonical
	// TransferableOutput ordering.
	Bytes() []byte

	// Verify checks the output's own invariants (threshold <= len(addrs),
	// amount > 0 for transfer outputs, addresses sorted ascending).
	Verify() error
}

// Compare orders two outputs of possibly-different concrete type by their
// serialized (typeID || body) bytes.
func Compare(a, b Output) int {
	return bytes.Compare(a.Bytes(), b.Bytes())
}

// Input is the shared capability set for input variants.
type Input interface {
	TypeID() uint32
	Marshal(p *wrappers.Packer)
	Verify() error
}

// OutputFactory decodes an output body (the type id has already been read)
// from p.
type OutputFactory func(p *wrappers.Packer) (Output, error)

// InputFactory decodes an input body from p.
type InputFactory func(p *wrappers.Packer) (Input, error)

var (
	outputRegistry = map[uint32]OutputFactory{}
	inputRegistry  = map[uint32]InputFactory{}
)

// RegisterOutput adds [f] to the registry under [id]. Called from each fx
// package's init(); panics on a duplicate id, since that is a programming
// error in this module, not a runtime condition a caller can hit.
func RegisterOutput(id uint32, f OutputFactory) {
	if _, exists := outputRegistry[id]; exists {
		panic(fmt.Sprintf("codec: output type id %d registered twice", id))
	}
	outputRegistry[id] = f
}

// RegisterInput adds [f] to the registry under [id].
func RegisterInput(id uint32, f InputFactory) {
	if _, exists := inputRegistry[id]; exists {
		panic(fmt.Sprintf("codec: input type id %d registered twice", id))
	}
	inputRegistry[id] = f
}

// SelectOutputClass reads the 4-byte type id from p and decodes the rest of
// the output body through the registered factory.
func SelectOutputClass(p *wrappers.Packer) (Output, error) {
	typeID := p.UnpackInt()
	if p.Errored() {
		return nil, p.Err
	}
	f, ok := outputRegistry[typeID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, typeID)
	}
	return f(p)
}

// SelectInputClass reads the 4-byte type id from p and decodes the rest of
// the input body through the registered factory.
func SelectInputClass(p *wrappers.Packer) (Input, error) {
	typeID := p.UnpackInt()
	if p.Errored() {
		return nil, p.Err
	}
	f, ok := inputRegistry[typeID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, typeID)
	}
	return f(p)
}

// MarshalOutput writes typeID || body.
func MarshalOutput(p *wrappers.Packer, out Output) {
	p.PackInt(out.TypeID())
	out.Marshal(p)
}

// MarshalInput writes typeID || body.
func MarshalInput(p *wrappers.Packer, in Input) {
	p.PackInt(in.TypeID())
	in.Marshal(p)
}
