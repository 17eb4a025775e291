// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package builder

import (
	"testing"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/avalanche-wallet-core/ids"
	"github.com/ava-labs/avalanche-wallet-core/utils/set"
	"github.com/ava-labs/avalanche-wallet-core/vms/components/avax"
	"github.com/ava-labs/avalanche-wallet-core/vms/secp256k1fx"
	wcommon "github.com/ava-labs/avalanche-wallet-core/wallet/primary/common"
)

var avaxID = ids.GenerateTestID([]byte("avax"))

func testCAddr(seed byte) ids.ShortID {
	var addr ids.ShortID
	addr[ids.ShortIDLen-1] = seed
	return addr
}

func testEVMAddr(seed byte) ethcommon.Address {
	var addr ethcommon.Address
	addr[ethcommon.AddressLength-1] = seed
	return addr
}

func atomicUTXO(txSeed string, assetID ids.ID, amount uint64, addr ids.ShortID) *avax.UTXO {
	return &avax.UTXO{
		UTXOID: avax.UTXOID{TxID: ids.GenerateTestID([]byte(txSeed)), OutputIndex: 0},
		Asset:  avax.Asset{ID: assetID},
		Out: &secp256k1fx.TransferOutput{
			Amt:          amount,
			OutputOwners: *secp256k1fx.NewOutputOwners(0, 1, []ids.ShortID{addr}),
		},
	}
}

func newTestBuilder() *Builder {
	return New(set.Of(testCAddr(1)), &Context{
		NetworkID:    12345,
		BlockchainID: ids.GenerateTestID([]byte("c-chain")),
		AVAXAssetID:  avaxID,
		AtomicTxFee:  10,
	})
}

// One 100-AVAX atomic UTXO and a 10-AVAX fee yield a single 90-AVAX
// EVMOutput and no change.
func TestNewImportTxFeeFromImportedInputs(t *testing.T) {
	b := newTestBuilder()
	evmAddr := testEVMAddr(7)

	tx, err := b.NewImportTx(
		ids.GenerateTestID([]byte("x-chain")),
		[]*avax.UTXO{atomicUTXO("atomic1", avaxID, 100, testCAddr(1))},
		evmAddr,
	)
	require.NoError(t, err)
	require.Len(t, tx.ImportedIns, 1)

	transferIn := tx.ImportedIns[0].In.(*secp256k1fx.TransferInput)
	assert.Equal(t, uint64(100), transferIn.Amt)
	assert.Equal(t, []uint32{0}, transferIn.SigIndices)

	require.Len(t, tx.Outs, 1)
	assert.Equal(t, evmAddr, tx.Outs[0].Address)
	assert.Equal(t, uint64(90), tx.Outs[0].Amount)
	assert.Equal(t, avaxID, tx.Outs[0].AssetID)
}

func TestNewImportTxRejectsFeeNotCoveredByImport(t *testing.T) {
	b := newTestBuilder()

	_, err := b.NewImportTx(
		ids.GenerateTestID([]byte("x-chain")),
		[]*avax.UTXO{atomicUTXO("atomic1", avaxID, 5, testCAddr(1))},
		testEVMAddr(7),
	)
	assert.ErrorIs(t, err, wcommon.ErrMixedFeeAsset)
}

func TestNewImportTxRejectsNonAVAXOnlyImport(t *testing.T) {
	b := newTestBuilder()
	otherAsset := ids.GenerateTestID([]byte("other"))

	_, err := b.NewImportTx(
		ids.GenerateTestID([]byte("x-chain")),
		[]*avax.UTXO{atomicUTXO("atomic1", otherAsset, 100, testCAddr(1))},
		testEVMAddr(7),
	)
	assert.ErrorIs(t, err, wcommon.ErrMixedFeeAsset)
}

func TestNewImportTxSkipsUnspendableAtomics(t *testing.T) {
	b := newTestBuilder()

	_, err := b.NewImportTx(
		ids.GenerateTestID([]byte("x-chain")),
		[]*avax.UTXO{atomicUTXO("atomic1", avaxID, 100, testCAddr(9))}, // not ours
		testEVMAddr(7),
	)
	assert.ErrorIs(t, err, wcommon.ErrMixedFeeAsset)
}

func TestNewExportTxAVAXPaysFeeFromAmount(t *testing.T) {
	b := newTestBuilder()
	to := secp256k1fx.NewOutputOwners(0, 1, []ids.ShortID{testCAddr(2)})

	tx, err := b.NewExportTx(
		ids.GenerateTestID([]byte("x-chain")),
		testEVMAddr(1), avaxID, 100, 3, 0, to,
	)
	require.NoError(t, err)
	require.Len(t, tx.Ins, 1)
	assert.Equal(t, uint64(100), tx.Ins[0].Amount)
	assert.Equal(t, uint64(3), tx.Ins[0].Nonce)

	require.Len(t, tx.ExportedOuts, 1)
	assert.Equal(t, uint64(90), tx.ExportedOuts[0].Out.(*secp256k1fx.TransferOutput).Amt)
}

func TestNewExportTxNonAVAXAddsSeparateFeeInput(t *testing.T) {
	b := newTestBuilder()
	otherAsset := ids.GenerateTestID([]byte("other"))
	to := secp256k1fx.NewOutputOwners(0, 1, []ids.ShortID{testCAddr(2)})

	tx, err := b.NewExportTx(
		ids.GenerateTestID([]byte("x-chain")),
		testEVMAddr(1), otherAsset, 100, 3, 4, to,
	)
	require.NoError(t, err)
	require.Len(t, tx.Ins, 2)

	var sawPayload, sawFee bool
	for _, in := range tx.Ins {
		switch in.AssetID {
		case otherAsset:
			sawPayload = true
			assert.Equal(t, uint64(100), in.Amount)
		case avaxID:
			sawFee = true
			assert.Equal(t, uint64(10), in.Amount)
			assert.Equal(t, uint64(4), in.Nonce)
		}
	}
	assert.True(t, sawPayload)
	assert.True(t, sawFee)

	require.Len(t, tx.ExportedOuts, 1)
	assert.Equal(t, uint64(100), tx.ExportedOuts[0].Out.(*secp256k1fx.TransferOutput).Amt)
}

func TestNewExportTxRejectsAmountBelowFee(t *testing.T) {
	b := newTestBuilder()
	to := secp256k1fx.NewOutputOwners(0, 1, []ids.ShortID{testCAddr(2)})

	_, err := b.NewExportTx(
		ids.GenerateTestID([]byte("x-chain")),
		testEVMAddr(1), avaxID, 5, 0, 0, to,
	)
	assert.ErrorIs(t, err, wcommon.ErrInsufficientFunds)
}
