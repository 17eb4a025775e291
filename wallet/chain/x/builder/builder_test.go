// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/avalanche-wallet-core/ids"
	"github.com/ava-labs/avalanche-wallet-core/txs"
	"github.com/ava-labs/avalanche-wallet-core/utils/set"
	"github.com/ava-labs/avalanche-wallet-core/vms/components/avax"
	"github.com/ava-labs/avalanche-wallet-core/vms/secp256k1fx"
	"github.com/ava-labs/avalanche-wallet-core/wallet/primary/common"
)

var avaxID = ids.GenerateTestID([]byte("avax"))

func testXAddr(seed byte) ids.ShortID {
	var addr ids.ShortID
	addr[ids.ShortIDLen-1] = seed
	return addr
}

func testXUTXO(txSeed string, index uint32, assetID ids.ID, amount uint64, addr ids.ShortID) *avax.UTXO {
	return &avax.UTXO{
		UTXOID: avax.UTXOID{TxID: ids.GenerateTestID([]byte(txSeed)), OutputIndex: index},
		Asset:  avax.Asset{ID: assetID},
		Out: &secp256k1fx.TransferOutput{
			Amt:          amount,
			OutputOwners: *secp256k1fx.NewOutputOwners(0, 1, []ids.ShortID{addr}),
		},
	}
}

func newTestBuilder(t *testing.T, utxos ...*avax.UTXO) (*Builder, ids.ShortID) {
	addr := testXAddr(1)
	addrs := set.Of(addr)
	u := avax.NewUTXOSet()
	for _, utxo := range utxos {
		u.Put(utxo)
	}
	ctx := &Context{
		NetworkID:    12345,
		BlockchainID: ids.GenerateTestID([]byte("x-chain")),
		AVAXAssetID:  avaxID,
		BaseTxFee:    10,
	}
	return New(addrs, ctx, u), addr
}

func TestNewBaseTxPaysAndFundsFee(t *testing.T) {
	b, addr := newTestBuilder(t, testXUTXO("tx1", 0, avaxID, 1000, testXAddr(1)))
	dest := testXAddr(2)

	tx, err := b.NewBaseTx([]Payment{{AssetID: avaxID, Amount: 500}}, []ids.ShortID{dest}, 1)
	require.NoError(t, err)
	require.Len(t, tx.Inputs, 1)

	var sawPayout, sawChange bool
	for _, out := range tx.Outs {
		transferOut := out.Out.(*secp256k1fx.TransferOutput)
		switch transferOut.Amt {
		case 500:
			sawPayout = true
			assert.Equal(t, []ids.ShortID{dest}, transferOut.Addrs)
		case 490: // 1000 - 500 payload - 10 fee
			sawChange = true
			assert.Equal(t, []ids.ShortID{addr}, transferOut.Addrs)
		}
	}
	assert.True(t, sawPayout)
	assert.True(t, sawChange)
}

func TestNewBaseTxInsufficientFunds(t *testing.T) {
	b, _ := newTestBuilder(t, testXUTXO("tx1", 0, avaxID, 5, testXAddr(1)))
	_, err := b.NewBaseTx([]Payment{{AssetID: avaxID, Amount: 500}}, []ids.ShortID{testXAddr(2)}, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInsufficientFunds)
}

func TestNewImportTxRejectsInsufficientFeeFromImport(t *testing.T) {
	b, _ := newTestBuilder(t)
	importedUTXOs := []*avax.UTXO{testXUTXO("atomic1", 0, avaxID, 1, testXAddr(1))}
	to := secp256k1fx.NewOutputOwners(0, 1, []ids.ShortID{testXAddr(2)})

	_, err := b.NewImportTx(ids.GenerateTestID([]byte("p-chain")), importedUTXOs, to)
	assert.ErrorIs(t, err, common.ErrMixedFeeAsset)
}

func TestNewImportTxPaysFeeFromImportedAVAX(t *testing.T) {
	b, _ := newTestBuilder(t)
	importedUTXOs := []*avax.UTXO{testXUTXO("atomic1", 0, avaxID, 100, testXAddr(1))}
	to := secp256k1fx.NewOutputOwners(0, 1, []ids.ShortID{testXAddr(2)})

	tx, err := b.NewImportTx(ids.GenerateTestID([]byte("p-chain")), importedUTXOs, to)
	require.NoError(t, err)
	require.Len(t, tx.ImportedIns, 1)
	require.Len(t, tx.Outs, 1)
	assert.Equal(t, uint64(90), tx.Outs[0].Out.(*secp256k1fx.TransferOutput).Amt)
}

func TestNewBaseTxPaysMultisigDestination(t *testing.T) {
	b, _ := newTestBuilder(t, testXUTXO("tx1", 0, avaxID, 1000, testXAddr(1)))
	dest1, dest2 := testXAddr(2), testXAddr(3)

	tx, err := b.NewBaseTx([]Payment{{AssetID: avaxID, Amount: 500}}, []ids.ShortID{dest1, dest2}, 2)
	require.NoError(t, err)

	var payout *secp256k1fx.TransferOutput
	for _, out := range tx.Outs {
		transferOut := out.Out.(*secp256k1fx.TransferOutput)
		if transferOut.Amt == 500 {
			payout = transferOut
		}
	}
	require.NotNil(t, payout)
	assert.Equal(t, uint32(2), payout.Threshold)
	assert.ElementsMatch(t, []ids.ShortID{dest1, dest2}, payout.Addrs)
}

func TestNewBaseTxRejectsThresholdAboveAddressCount(t *testing.T) {
	b, _ := newTestBuilder(t, testXUTXO("tx1", 0, avaxID, 1000, testXAddr(1)))

	_, err := b.NewBaseTx([]Payment{{AssetID: avaxID, Amount: 500}}, []ids.ShortID{testXAddr(2)}, 2)
	require.Error(t, err)
}

func TestNewExportTxBurnsPaymentAndFee(t *testing.T) {
	b, _ := newTestBuilder(t, testXUTXO("tx1", 0, avaxID, 1000, testXAddr(1)))
	to := secp256k1fx.NewOutputOwners(0, 1, []ids.ShortID{testXAddr(2)})

	tx, err := b.NewExportTx(ids.GenerateTestID([]byte("c-chain")), []Payment{{AssetID: avaxID, Amount: 300}}, to, 1)
	require.NoError(t, err)
	require.Len(t, tx.ExportedOuts, 1)
	assert.Equal(t, uint64(300), tx.ExportedOuts[0].Out.(*secp256k1fx.TransferOutput).Amt)
	require.Len(t, tx.Outs, 1)
	assert.Equal(t, uint64(690), tx.Outs[0].Out.(*secp256k1fx.TransferOutput).Amt) // 1000 - 300 - 10 fee
}

func TestNewBaseTxTwoAssetsSeparateFeeAsset(t *testing.T) {
	assetA := ids.GenerateTestID([]byte("asset-a"))
	b, _ := newTestBuilder(t,
		testXUTXO("tx1", 0, assetA, 500, testXAddr(1)),
		testXUTXO("tx2", 0, avaxID, 50, testXAddr(1)),
	)
	dest := testXAddr(2)

	tx, err := b.NewBaseTx([]Payment{{AssetID: assetA, Amount: 200}}, []ids.ShortID{dest}, 1)
	require.NoError(t, err)
	require.Len(t, tx.Inputs, 2)
	require.Len(t, tx.Outs, 3)

	amounts := map[ids.ID][]uint64{}
	for _, out := range tx.Outs {
		transferOut := out.Out.(*secp256k1fx.TransferOutput)
		amounts[out.Asset.ID] = append(amounts[out.Asset.ID], transferOut.Amt)
	}
	assert.ElementsMatch(t, []uint64{200, 300}, amounts[assetA])
	assert.ElementsMatch(t, []uint64{40}, amounts[avaxID])
}

func TestNewBaseTxOutputsAndInputsAreCanonicallyOrdered(t *testing.T) {
	assetA := ids.GenerateTestID([]byte("asset-a"))
	b, _ := newTestBuilder(t,
		testXUTXO("tx3", 0, assetA, 500, testXAddr(1)),
		testXUTXO("tx1", 0, avaxID, 50, testXAddr(1)),
		testXUTXO("tx2", 1, avaxID, 50, testXAddr(1)),
	)

	tx, err := b.NewBaseTx([]Payment{
		{AssetID: assetA, Amount: 200},
		{AssetID: avaxID, Amount: 60},
	}, []ids.ShortID{testXAddr(2)}, 1)
	require.NoError(t, err)

	for i := 1; i < len(tx.Outs); i++ {
		assert.True(t, tx.Outs[i-1].Compare(tx.Outs[i]) < 0)
	}
	for i := 1; i < len(tx.Inputs); i++ {
		assert.True(t, tx.Inputs[i-1].Compare(tx.Inputs[i]) < 0)
	}
}

func TestNewBaseTxIsDeterministic(t *testing.T) {
	build := func() []byte {
		b, _ := newTestBuilder(t,
			testXUTXO("tx1", 0, avaxID, 400, testXAddr(1)),
			testXUTXO("tx2", 0, avaxID, 400, testXAddr(1)),
		)
		tx, err := b.NewBaseTx([]Payment{{AssetID: avaxID, Amount: 500}}, []ids.ShortID{testXAddr(2)}, 1)
		require.NoError(t, err)
		return txs.Bytes(tx)
	}
	assert.Equal(t, build(), build())
}

func TestNewBaseTxConservesValuePerAsset(t *testing.T) {
	assetA := ids.GenerateTestID([]byte("asset-a"))
	b, _ := newTestBuilder(t,
		testXUTXO("tx1", 0, assetA, 500, testXAddr(1)),
		testXUTXO("tx2", 0, avaxID, 50, testXAddr(1)),
	)

	tx, err := b.NewBaseTx([]Payment{{AssetID: assetA, Amount: 200}}, []ids.ShortID{testXAddr(2)}, 1)
	require.NoError(t, err)

	inSums := map[ids.ID]uint64{}
	for _, in := range tx.Inputs {
		inSums[in.Asset.ID] += in.In.(*secp256k1fx.TransferInput).Amt
	}
	outSums := map[ids.ID]uint64{}
	for _, out := range tx.Outs {
		outSums[out.Asset.ID] += out.Out.(*secp256k1fx.TransferOutput).Amt
	}
	assert.Equal(t, inSums[assetA], outSums[assetA])
	assert.Equal(t, inSums[avaxID], outSums[avaxID]+10) // fee burned
}

func TestNewBaseTxZeroAmountIsNoOp(t *testing.T) {
	b, _ := newTestBuilder(t, testXUTXO("tx1", 0, avaxID, 1000, testXAddr(1)))

	tx, err := b.NewBaseTx(nil, []ids.ShortID{testXAddr(2)}, 1)
	require.NoError(t, err)
	assert.Nil(t, tx)

	tx, err = b.NewBaseTx([]Payment{{AssetID: avaxID, Amount: 0}}, []ids.ShortID{testXAddr(2)}, 1)
	require.NoError(t, err)
	assert.Nil(t, tx)
}
