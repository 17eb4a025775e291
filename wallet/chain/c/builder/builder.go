// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package builder holds the C-chain atomic constructors: ImportTx (atomic
// UTXOs -> EVM account balances) and ExportTx (EVM account balances ->
// atomic UTXOs on a destination chain).
package builder

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/avalanche-wallet-core/ids"
	"github.com/ava-labs/avalanche-wallet-core/utils/set"
	"github.com/ava-labs/avalanche-wallet-core/vms/components/avax"
	"github.com/ava-labs/avalanche-wallet-core/vms/evm"
	"github.com/ava-labs/avalanche-wallet-core/vms/evm/atomic"
	"github.com/ava-labs/avalanche-wallet-core/vms/secp256k1fx"
	wcommon "github.com/ava-labs/avalanche-wallet-core/wallet/primary/common"
)

// Context carries the C-chain's identity and fee. The fee is denominated
// in AVAX and, unlike X/P, is paid entirely out of imported or exported
// funds rather than from a standing UTXO balance.
type Context struct {
	NetworkID    uint32
	BlockchainID ids.ID
	AVAXAssetID  ids.ID
	AtomicTxFee  uint64
}

// Builder constructs unsigned C-chain atomic transactions.
type Builder struct {
	Addrs set.Set[ids.ShortID]
	Ctx   *Context
}

// New returns a Builder for the given signer address set.
func New(addrs set.Set[ids.ShortID], ctx *Context) *Builder {
	return &Builder{Addrs: addrs, Ctx: ctx}
}

// NewImportTx spends [importedUTXOs] (atomic UTXOs from sourceChain),
// paying the fee out of imported AVAX and crediting [to]'s C-chain account
// with the remainder of every imported asset.
func (b *Builder) NewImportTx(sourceChain ids.ID, importedUTXOs []*avax.UTXO, to common.Address, ops ...wcommon.Option) (*atomic.ImportTx, error) {
	opts := wcommon.NewOptions(ops)
	addrs := opts.Addresses(b.Addrs)
	asOf := opts.MinIssuanceTime()

	importedIns := make([]*avax.TransferableInput, 0, len(importedUTXOs))
	amounts := make(map[ids.ID]uint64, len(importedUTXOs))
	for _, u := range importedUTXOs {
		transferOut, ok := u.Out.(*secp256k1fx.TransferOutput)
		if !ok || !transferOut.MeetsThreshold(addrs, asOf) {
			continue
		}
		spenders := transferOut.Spenders(addrs, asOf)
		sigIndices := make([]uint32, 0, len(spenders))
		for _, addr := range spenders {
			if idx := transferOut.AddressIndex(addr); idx >= 0 {
				sigIndices = append(sigIndices, uint32(idx))
			}
		}
		importedIns = append(importedIns, &avax.TransferableInput{
			UTXOID: u.UTXOID,
			Asset:  u.Asset,
			In:     &secp256k1fx.TransferInput{Amt: transferOut.Amt, Input: secp256k1fx.Input{SigIndices: sigIndices}},
		})
		amounts[u.Asset.ID] += transferOut.Amt
	}
	avax.SortTransferableInputs(importedIns)

	// An import whose fee isn't sufficiently covered by the imported
	// AVAX is rejected outright; imported AVAX pays its own fee directly.
	if amounts[b.Ctx.AVAXAssetID] < b.Ctx.AtomicTxFee {
		return nil, wcommon.ErrMixedFeeAsset
	}

	outs := make([]evm.EVMOutput, 0, len(amounts))
	for assetID, amt := range amounts {
		payout := amt
		if assetID == b.Ctx.AVAXAssetID {
			payout -= b.Ctx.AtomicTxFee
		}
		if payout > 0 {
			outs = append(outs, evm.EVMOutput{Address: to, Amount: payout, AssetID: assetID})
		}
	}
	evm.SortEVMOutputs(outs)

	return &atomic.ImportTx{
		NetworkID:    b.Ctx.NetworkID,
		BlockchainID: b.Ctx.BlockchainID,
		SourceChain:  sourceChain,
		ImportedIns:  importedIns,
		Outs:         outs,
	}, nil
}

// NewExportTx debits [from]'s C-chain account of [amount] of [assetID] at
// [nonce] and credits ExportedOuts addressed to [to] on destinationChain,
// net of the fee. When [assetID] isn't AVAX, the fee is debited separately
// from [from]'s AVAX balance at [feeNonce] (feeNonce is ignored when
// assetID is AVAX).
func (b *Builder) NewExportTx(destinationChain ids.ID, from common.Address, assetID ids.ID, amount, nonce, feeNonce uint64, to *secp256k1fx.OutputOwners) (*atomic.ExportTx, error) {
	fee := b.Ctx.AtomicTxFee
	payout := amount
	var ins []evm.EVMInput
	if assetID == b.Ctx.AVAXAssetID {
		if payout < fee {
			return nil, wcommon.ErrInsufficientFunds
		}
		payout -= fee
		ins = []evm.EVMInput{{Address: from, Amount: amount, AssetID: assetID, Nonce: nonce}}
	} else {
		ins = []evm.EVMInput{
			{Address: from, Amount: amount, AssetID: assetID, Nonce: nonce},
			{Address: from, Amount: fee, AssetID: b.Ctx.AVAXAssetID, Nonce: feeNonce},
		}
	}
	evm.SortEVMInputs(ins)

	exportedOuts := []*avax.TransferableOutput{{
		Asset: avax.Asset{ID: assetID},
		Out:   &secp256k1fx.TransferOutput{Amt: payout, OutputOwners: *to},
	}}
	avax.SortTransferableOutputs(exportedOuts)

	tx := &atomic.ExportTx{
		NetworkID:        b.Ctx.NetworkID,
		BlockchainID:     b.Ctx.BlockchainID,
		DestinationChain: destinationChain,
		Ins:              ins,
		ExportedOuts:     exportedOuts,
	}
	if err := tx.Verify(); err != nil {
		return nil, err
	}
	return tx, nil
}
