// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import (
	"fmt"

	"github.com/tyler-smith/go-bip32"
)

// DeriveChildFromSeed derives a single hardened child private key from seed
// material at the given index. A caller managing its own BIP-32 tree
// derives further children itself; this is not a general derivation path
// walker.
func DeriveChildFromSeed(seed []byte, index uint32) ([]byte, error) {
	master, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("couldn't derive master key: %w", err)
	}
	child, err := master.NewChildKey(bip32.FirstHardenedChild + index)
	if err != nil {
		return nil, fmt.Errorf("couldn't derive child key: %w", err)
	}
	return child.Key, nil
}
