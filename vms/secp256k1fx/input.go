// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1fx

import (
	"errors"

	"github.com/ava-labs/avalanche-wallet-core/utils/wrappers"
)

var errSigIndicesNotSortedUnique = errors.New("sigIndices must be strictly increasing")

// Input is the bare sigIndices container: positions into the referenced
// output's address list, strictly increasing.
type Input struct {
	SigIndices []uint32
}

func (in *Input) Verify() error {
	for i := 1; i < len(in.SigIndices); i++ {
		if in.SigIndices[i-1] >= in.SigIndices[i] {
			return errSigIndicesNotSortedUnique
		}
	}
	return nil
}

func (in *Input) Marshal(p *wrappers.Packer) {
	p.PackInt(uint32(len(in.SigIndices)))
	for _, idx := range in.SigIndices {
		p.PackInt(idx)
	}
}

func UnmarshalInput(p *wrappers.Packer) (*Input, error) {
	numSigs := p.UnpackInt()
	sigIndices := make([]uint32, numSigs)
	for i := range sigIndices {
		sigIndices[i] = p.UnpackInt()
	}
	if p.Errored() {
		return nil, p.Err
	}
	return &Input{SigIndices: sigIndices}, nil
}
