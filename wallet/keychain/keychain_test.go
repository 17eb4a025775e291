// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package keychain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/avalanche-wallet-core/ids"
	"github.com/ava-labs/avalanche-wallet-core/txs"
	avmtxs "github.com/ava-labs/avalanche-wallet-core/vms/avm/txs"
	"github.com/ava-labs/avalanche-wallet-core/vms/components/avax"
	"github.com/ava-labs/avalanche-wallet-core/vms/secp256k1fx"
)

func TestMakeAndHasKey(t *testing.T) {
	kc := New()
	addr, err := kc.Make()
	require.NoError(t, err)
	assert.True(t, kc.HasKey(addr))

	sk, ok := kc.GetKey(addr)
	require.True(t, ok)
	assert.Equal(t, addr, sk.PublicKey().Address())
}

func TestAddressesReflectsInsertedKeys(t *testing.T) {
	kc := New()
	addr1, err := kc.Make()
	require.NoError(t, err)
	addr2, err := kc.Make()
	require.NoError(t, err)

	addrs := kc.Addresses()
	assert.Equal(t, 2, addrs.Len())
	assert.True(t, addrs.Contains(addr1))
	assert.True(t, addrs.Contains(addr2))
}

func TestHasKeyFalseForUnknownAddress(t *testing.T) {
	kc := New()
	var unknown ids.ShortID
	assert.False(t, kc.HasKey(unknown))
}

func TestSignTxProducesVerifiableCredential(t *testing.T) {
	kc := New()
	addr, err := kc.Make()
	require.NoError(t, err)

	assetID := ids.GenerateTestID([]byte("asset"))
	utxoID := avax.UTXOID{TxID: ids.GenerateTestID([]byte("tx")), OutputIndex: 0}
	utxo := &avax.UTXO{
		UTXOID: utxoID,
		Asset:  avax.Asset{ID: assetID},
		Out: &secp256k1fx.TransferOutput{
			Amt:          100,
			OutputOwners: *secp256k1fx.NewOutputOwners(0, 1, []ids.ShortID{addr}),
		},
	}
	utxos := avax.NewUTXOSet()
	utxos.Put(utxo)

	tx := &avmtxs.BaseTx{
		NetworkID:    1,
		BlockchainID: ids.GenerateTestID([]byte("chain")),
		Inputs: []*avax.TransferableInput{{
			UTXOID: utxoID,
			Asset:  avax.Asset{ID: assetID},
			In: &secp256k1fx.TransferInput{
				Amt:   100,
				Input: secp256k1fx.Input{SigIndices: []uint32{0}},
			},
		}},
	}

	signed, err := kc.SignTx(tx, utxos)
	require.NoError(t, err)
	require.Len(t, signed.Credentials, 1)
	require.Len(t, signed.Credentials[0].Sigs, 1)

	sk, _ := kc.GetKey(addr)
	digest := txs.PreImage(tx)
	pub := sk.PublicKey()
	assert.True(t, pub.VerifyHash(digest.Bytes(), signed.Credentials[0].Sigs[0][:]))
}

func TestSignTxMissingUTXOReturnsErrMissingKey(t *testing.T) {
	kc := New()
	utxos := avax.NewUTXOSet()

	tx := &avmtxs.BaseTx{
		NetworkID:    1,
		BlockchainID: ids.GenerateTestID([]byte("chain")),
		Inputs: []*avax.TransferableInput{{
			UTXOID: avax.UTXOID{TxID: ids.GenerateTestID([]byte("tx")), OutputIndex: 0},
			Asset:  avax.Asset{ID: ids.GenerateTestID([]byte("asset"))},
			In: &secp256k1fx.TransferInput{
				Amt:   100,
				Input: secp256k1fx.Input{SigIndices: []uint32{0}},
			},
		}},
	}

	_, err := kc.SignTx(tx, utxos)
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestSignTxMissingSignerKeyReturnsErrMissingKey(t *testing.T) {
	kc := New()
	other := New()
	otherAddr, err := other.Make()
	require.NoError(t, err)

	assetID := ids.GenerateTestID([]byte("asset"))
	utxoID := avax.UTXOID{TxID: ids.GenerateTestID([]byte("tx")), OutputIndex: 0}
	utxo := &avax.UTXO{
		UTXOID: utxoID,
		Asset:  avax.Asset{ID: assetID},
		Out: &secp256k1fx.TransferOutput{
			Amt:          100,
			OutputOwners: *secp256k1fx.NewOutputOwners(0, 1, []ids.ShortID{otherAddr}),
		},
	}
	utxos := avax.NewUTXOSet()
	utxos.Put(utxo)

	tx := &avmtxs.BaseTx{
		NetworkID:    1,
		BlockchainID: ids.GenerateTestID([]byte("chain")),
		Inputs: []*avax.TransferableInput{{
			UTXOID: utxoID,
			Asset:  avax.Asset{ID: assetID},
			In: &secp256k1fx.TransferInput{
				Amt:   100,
				Input: secp256k1fx.Input{SigIndices: []uint32{0}},
			},
		}},
	}

	_, err = kc.SignTx(tx, utxos)
	assert.ErrorIs(t, err, ErrMissingKey)
}
