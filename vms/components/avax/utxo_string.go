// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avax

import (
	"github.com/ava-labs/avalanche-wallet-core/utils/formatting"
	"github.com/ava-labs/avalanche-wallet-core/utils/wrappers"
)

// codecVersion prefixes a UTXO's portable string encoding, matching the
// version prefix transaction bodies carry.
const codecVersion uint16 = 0x0000

// String returns the UTXO's portable form: CB58 of codecVersion || wire
// bytes. This is how UTXOs travel between a node's responses and a local
// snapshot, and it doubles as the UTXO's textual identity.
func (u *UTXO) String() string {
	p := &wrappers.Packer{}
	p.PackShort(codecVersion)
	u.Marshal(p)
	return formatting.CB58Encode(p.Bytes())
}

// UTXOFromString reverses String.
func UTXOFromString(str string) (*UTXO, error) {
	b, err := formatting.CB58Decode(str)
	if err != nil {
		return nil, err
	}
	p := &wrappers.Packer{Buf: b}
	p.UnpackShort() // codec version
	if p.Errored() {
		return nil, p.Err
	}
	return UnmarshalUTXO(p)
}

// Strings returns every UTXO in the set as its portable string form, in
// deterministic order.
func (s *UTXOSet) Strings() []string {
	out := make([]string, 0, s.Len())
	s.Iterate(func(u *UTXO) bool {
		out = append(out, u.String())
		return true
	})
	return out
}

// PutStrings decodes [strs] (as produced by Strings, or returned by a
// node) and adds each UTXO to the set. On a decode failure the set is left
// with the UTXOs added so far.
func (s *UTXOSet) PutStrings(strs []string) error {
	for _, str := range strs {
		u, err := UTXOFromString(str)
		if err != nil {
			return err
		}
		s.Put(u)
	}
	return nil
}
