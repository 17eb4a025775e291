// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package atomic

import (
	"crypto/sha256"
	"errors"

	"github.com/ava-labs/avalanche-wallet-core/ids"
	"github.com/ava-labs/avalanche-wallet-core/txs"
	"github.com/ava-labs/avalanche-wallet-core/utils/crypto"
	"github.com/ava-labs/avalanche-wallet-core/utils/wrappers"
	"github.com/ava-labs/avalanche-wallet-core/vms/components/avax"
	"github.com/ava-labs/avalanche-wallet-core/vms/evm"
	"github.com/ava-labs/avalanche-wallet-core/vms/secp256k1fx"
)

// ErrMissingExportKey is returned by SignExportTx when no key covers one
// of the tx's EVMInputs.
var ErrMissingExportKey = errors.New("atomic: missing key for EVMInput address")

// ExportTx debits C-chain account balances via [Ins] (each carrying its own
// account [Nonce]) and credits [ExportedOuts] on [DestinationChain].
// Unlike ImportTx, its inputs aren't avax.TransferableInputs, so
// it doesn't implement txs.UnsignedTx and is signed through SignExportTx
// rather than wallet/keychain.SignTx.
type ExportTx struct {
	NetworkID        uint32
	BlockchainID     ids.ID
	DestinationChain ids.ID
	Ins              []evm.EVMInput
	ExportedOuts     []*avax.TransferableOutput
}

func (*ExportTx) TypeID() uint32 { return ExportTxTypeID }

// Verify checks ExportedOuts' own invariants (threshold <= len(addrs),
// amount > 0), the same guard avm/platformvm's BaseTx.Verify applies to
// their Outs.
func (tx *ExportTx) Verify() error {
	for _, out := range tx.ExportedOuts {
		if err := out.Verify(); err != nil {
			return err
		}
	}
	return nil
}

func (tx *ExportTx) Marshal(p *wrappers.Packer) {
	p.PackInt(tx.NetworkID)
	p.PackFixedBytes(tx.BlockchainID.Bytes())
	p.PackFixedBytes(tx.DestinationChain.Bytes())
	p.PackInt(uint32(len(tx.Ins)))
	for i := range tx.Ins {
		tx.Ins[i].Marshal(p)
	}
	p.PackInt(uint32(len(tx.ExportedOuts)))
	for _, out := range tx.ExportedOuts {
		out.Marshal(p)
	}
}

// Bytes returns codecVersion || typeID || body, mirroring txs.Bytes.
func (tx *ExportTx) Bytes() []byte {
	p := &wrappers.Packer{}
	p.PackShort(txs.CodecVersion)
	p.PackInt(tx.TypeID())
	tx.Marshal(p)
	return p.Bytes()
}

// PreImage returns SHA256(Bytes(tx)), the digest each EVMInput's signature
// is produced over.
func (tx *ExportTx) PreImage() ids.ID {
	return sha256.Sum256(tx.Bytes())
}

func UnmarshalExportTx(p *wrappers.Packer) (*ExportTx, error) {
	networkID := p.UnpackInt()
	blockchainID, err := ids.ToID(p.UnpackFixedBytes(wrappers.IDLen))
	if err != nil {
		return nil, err
	}
	destChain, err := ids.ToID(p.UnpackFixedBytes(wrappers.IDLen))
	if err != nil {
		return nil, err
	}
	numIns := p.UnpackInt()
	ins := make([]evm.EVMInput, numIns)
	for i := range ins {
		in, err := evm.UnmarshalEVMInput(p)
		if err != nil {
			return nil, err
		}
		ins[i] = *in
	}
	numOuts := p.UnpackInt()
	outs := make([]*avax.TransferableOutput, numOuts)
	for i := range outs {
		outs[i], err = avax.UnmarshalTransferableOutput(p)
		if err != nil {
			return nil, err
		}
	}
	if p.Errored() {
		return nil, p.Err
	}
	return &ExportTx{
		NetworkID:        networkID,
		BlockchainID:     blockchainID,
		DestinationChain: destChain,
		Ins:              ins,
		ExportedOuts:     outs,
	}, nil
}

// KeySource resolves an address to the key that controls it, the minimal
// capability SignExportTx needs from a keychain.
type KeySource interface {
	GetKey(addr ids.ShortID) (crypto.PrivateKey, bool)
}

// SignExportTx signs [tx]'s pre-image once per EVMInput address (the
// account model needs one signature per debited address, not a sigIndices
// set) and returns the resulting credential list in input order.
func SignExportTx(tx *ExportTx, keys KeySource) ([]*secp256k1fx.Credential, error) {
	digest := tx.PreImage()
	creds := make([]*secp256k1fx.Credential, len(tx.Ins))
	for i, in := range tx.Ins {
		addr, err := ids.ToShortID(in.Address.Bytes())
		if err != nil {
			return nil, err
		}
		sk, ok := keys.GetKey(addr)
		if !ok {
			return nil, ErrMissingExportKey
		}
		sig, err := sk.SignHash(digest.Bytes())
		if err != nil {
			return nil, err
		}
		var sigArr [secp256k1fx.SignatureLen]byte
		copy(sigArr[:], sig)
		creds[i] = &secp256k1fx.Credential{Sigs: [][secp256k1fx.SignatureLen]byte{sigArr}}
	}
	return creds, nil
}
