// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package txs implements C8: the UnsignedTx/SignedTx wire framing and the
// signing pre-image every chain-specific transaction type (vms/avm/txs,
// vms/platformvm/txs, vms/evm/atomic) is built from.
package txs

import (
	"crypto/sha256"

	"github.com/ava-labs/avalanche-wallet-core/ids"
	"github.com/ava-labs/avalanche-wallet-core/utils/wrappers"
	"github.com/ava-labs/avalanche-wallet-core/vms/components/avax"
	"github.com/ava-labs/avalanche-wallet-core/vms/secp256k1fx"
)

// CodecVersion is the wire version prefix every transaction body carries.
const CodecVersion uint16 = 0x0000

// UnsignedTx is the shared capability set of every chain-specific
// transaction: a type id, a body encoder, and the list of inputs a
// KeyChain must produce credentials for, in wire order.
type UnsignedTx interface {
	TypeID() uint32
	Marshal(p *wrappers.Packer)
	Ins() []*avax.TransferableInput
}

// Bytes returns codecVersion || typeID || tx-body, the exact pre-image the
// signing digest is taken over.
func Bytes(tx UnsignedTx) []byte {
	p := &wrappers.Packer{}
	p.PackShort(CodecVersion)
	p.PackInt(tx.TypeID())
	tx.Marshal(p)
	return p.Bytes()
}

// PreImage returns SHA256(Bytes(tx)), the digest every input's credential
// signs.
func PreImage(tx UnsignedTx) ids.ID {
	return sha256.Sum256(Bytes(tx))
}

// SignedTx is UnsignedTx || credentials. Once built it is immutable; there
// is no partially-signed state. Multi-party signing is handled by
// assembling a Keychain with all needed keys before SignTx.
type SignedTx struct {
	Unsigned    UnsignedTx
	Credentials []*secp256k1fx.Credential
}

// Bytes returns the full signed wire encoding: unsigned bytes || numCreds ||
// credentials, each credential self-framed as typeID || numSigs || sigs.
func (tx *SignedTx) Bytes() []byte {
	p := &wrappers.Packer{}
	p.PackFixedBytes(Bytes(tx.Unsigned))
	p.PackInt(uint32(len(tx.Credentials)))
	for _, cred := range tx.Credentials {
		cred.Marshal(p)
	}
	return p.Bytes()
}

// ID returns the transaction id: SHA256 of the unsigned body. For a
// CreateAssetTx this doubles as the created asset's AssetID; for every tx
// it is the TxID its UTXOs are referenced under.
func (tx *SignedTx) ID() ids.ID {
	return PreImage(tx.Unsigned)
}
