// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package keychain maps 20-byte addresses to keypairs and signs a built
// transaction into a txs.SignedTx.
package keychain

import (
	"errors"

	"github.com/ava-labs/avalanche-wallet-core/ids"
	"github.com/ava-labs/avalanche-wallet-core/txs"
	"github.com/ava-labs/avalanche-wallet-core/utils/crypto"
	"github.com/ava-labs/avalanche-wallet-core/utils/crypto/secp256k1"
	"github.com/ava-labs/avalanche-wallet-core/utils/set"
	"github.com/ava-labs/avalanche-wallet-core/vms/components/avax"
	"github.com/ava-labs/avalanche-wallet-core/vms/secp256k1fx"
)

// ErrMissingKey is returned when SignTx needs a key for an address the
// keychain doesn't hold.
var ErrMissingKey = errors.New("keychain: missing key for required signer address")

// UTXOSource resolves a UTXOID-derived ids.ID back to the UTXO it names, so
// SignTx can read the address list an input's sigIndices index into.
// avax.UTXOSet satisfies this directly.
type UTXOSource interface {
	Get(utxoID ids.ID) (*avax.UTXO, bool)
}

// Keychain is a mapping from address to keypair.
type Keychain struct {
	factory crypto.RecoverableFactory
	keys    map[ids.ShortID]crypto.PrivateKey
	order   []ids.ShortID
}

// New returns an empty Keychain backed by the secp256k1 factory.
func New() *Keychain {
	return &Keychain{
		factory: secp256k1.Factory{},
		keys:    make(map[ids.ShortID]crypto.PrivateKey),
	}
}

// Make generates a new key, inserts it, and returns its address.
func (kc *Keychain) Make() (ids.ShortID, error) {
	sk, err := kc.factory.NewPrivateKey()
	if err != nil {
		return ids.ShortID{}, err
	}
	return kc.add(sk), nil
}

// ImportKey derives the address of [raw] (a 32-byte secp256k1 private key)
// and inserts it.
func (kc *Keychain) ImportKey(raw []byte) (ids.ShortID, error) {
	sk, err := kc.factory.ToPrivateKey(raw)
	if err != nil {
		return ids.ShortID{}, err
	}
	return kc.add(sk), nil
}

func (kc *Keychain) add(sk crypto.PrivateKey) ids.ShortID {
	addr := sk.PublicKey().Address()
	if _, exists := kc.keys[addr]; !exists {
		kc.order = append(kc.order, addr)
	}
	kc.keys[addr] = sk
	return addr
}

// HasKey reports whether the keychain holds a key for [addr].
func (kc *Keychain) HasKey(addr ids.ShortID) bool {
	_, ok := kc.keys[addr]
	return ok
}

// GetKey returns the key for [addr], if present.
func (kc *Keychain) GetKey(addr ids.ShortID) (crypto.PrivateKey, bool) {
	sk, ok := kc.keys[addr]
	return sk, ok
}

// Addresses returns the set of every address the keychain holds a key for;
// the set carries no order.
func (kc *Keychain) Addresses() set.Set[ids.ShortID] {
	return set.Of(kc.order...)
}

// SignTx walks [tx]'s inputs in order, resolves each input's signer
// addresses via its referenced UTXO's output address list and sigIndices,
// signs the transaction's pre-image digest with each required key, and
// assembles credentials in input order.
func (kc *Keychain) SignTx(tx txs.UnsignedTx, utxos UTXOSource) (*txs.SignedTx, error) {
	digest := txs.PreImage(tx)

	ins := tx.Ins()
	creds := make([]*secp256k1fx.Credential, len(ins))
	for i, in := range ins {
		utxoID := in.UTXOID.InputID()
		utxo, ok := utxos.Get(utxoID)
		if !ok {
			return nil, ErrMissingKey
		}
		transferIn, ok := in.In.(*secp256k1fx.TransferInput)
		if !ok {
			creds[i] = &secp256k1fx.Credential{}
			continue
		}
		addrs := utxo.Out.Addresses()
		sigs := make([][secp256k1fx.SignatureLen]byte, len(transferIn.SigIndices))
		for j, sigIdx := range transferIn.SigIndices {
			if int(sigIdx) >= len(addrs) {
				return nil, ErrMissingKey
			}
			sk, ok := kc.keys[addrs[sigIdx]]
			if !ok {
				return nil, ErrMissingKey
			}
			sig, err := sk.SignHash(digest.Bytes())
			if err != nil {
				return nil, err
			}
			copy(sigs[j][:], sig)
		}
		creds[i] = &secp256k1fx.Credential{Sigs: sigs}
	}
	return &txs.SignedTx{Unsigned: tx, Credentials: creds}, nil
}
