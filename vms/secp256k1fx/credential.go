// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1fx

import (
	"fmt"

	"github.com/ava-labs/avalanche-wallet-core/codec"
	"github.com/ava-labs/avalanche-wallet-core/utils/wrappers"
)

// CredentialTypeID is the wire type id prefixing a credential in a signed
// transaction's credential list.
const CredentialTypeID = 0x00000009

// SignatureLen is the length, in bytes, of one recoverable ECDSA signature.
const SignatureLen = 65

// Credential is the list of signatures attached to one input after signing,
// length equal to that input's sigIndices length.
type Credential struct {
	Sigs [][SignatureLen]byte
}

func (c *Credential) Marshal(p *wrappers.Packer) {
	p.PackInt(CredentialTypeID)
	p.PackInt(uint32(len(c.Sigs)))
	for _, sig := range c.Sigs {
		p.PackFixedBytes(sig[:])
	}
}

func UnmarshalCredential(p *wrappers.Packer) (*Credential, error) {
	typeID := p.UnpackInt()
	if typeID != CredentialTypeID {
		return nil, fmt.Errorf("%w: %d", codec.ErrUnknownType, typeID)
	}
	numSigs := p.UnpackInt()
	sigs := make([][SignatureLen]byte, numSigs)
	for i := range sigs {
		copy(sigs[i][:], p.UnpackFixedBytes(SignatureLen))
	}
	if p.Errored() {
		return nil, p.Err
	}
	return &Credential{Sigs: sigs}, nil
}
