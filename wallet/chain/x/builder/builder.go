// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package builder holds the X-chain constructors (NewBaseTx,
// NewCreateAssetTx, NewOperationTx, NewImportTx, NewExportTx) that turn a
// UTXOSet plus a spend request into an UnsignedTx.
package builder

import (
	"github.com/ava-labs/avalanche-wallet-core/ids"
	"github.com/ava-labs/avalanche-wallet-core/utils/set"
	"github.com/ava-labs/avalanche-wallet-core/vms/components/avax"
	avmtxs "github.com/ava-labs/avalanche-wallet-core/vms/avm/txs"
	"github.com/ava-labs/avalanche-wallet-core/vms/secp256k1fx"
	"github.com/ava-labs/avalanche-wallet-core/wallet/primary/common"
)

// Context carries the network/chain identity and fee schedule every built
// transaction needs.
type Context struct {
	NetworkID    uint32
	BlockchainID ids.ID
	AVAXAssetID  ids.ID
	BaseTxFee    uint64
}

// Payment is one (asset, amount) leg of a payload.
type Payment struct {
	AssetID ids.ID
	Amount  uint64
}

// Builder constructs unsigned X-chain transactions by spending from
// [UTXOs] on behalf of [Addrs].
type Builder struct {
	Addrs set.Set[ids.ShortID]
	UTXOs *avax.UTXOSet
	Ctx   *Context
}

// New returns a Builder over utxos for the given signer address set.
func New(addrs set.Set[ids.ShortID], ctx *Context, utxos *avax.UTXOSet) *Builder {
	return &Builder{Addrs: addrs, UTXOs: utxos, Ctx: ctx}
}

// GetBalance sums every UTXO denominated in assetID that [b.Addrs] can
// spend as of opts' MinIssuanceTime.
func (b *Builder) GetBalance(assetID ids.ID, ops ...common.Option) uint64 {
	opts := common.NewOptions(ops)
	addrs := opts.Addresses(b.Addrs)
	return b.UTXOs.GetBalance(addrs, assetID, opts.MinIssuanceTime())
}

// NewBaseTx pays [payments] to [destinations], funding the payload and the
// chain's base fee out of [b.UTXOs]; a payload denominated in the fee
// asset collapses with the fee into one demand. [threshold] is the
// destination OutputOwners' signature threshold, letting a caller pay
// into an M-of-N multisig address instead of always a single-signer one.
func (b *Builder) NewBaseTx(payments []Payment, destinations []ids.ShortID, threshold uint32, ops ...common.Option) (*avmtxs.BaseTx, error) {
	if totalAmount(payments) == 0 {
		return nil, nil // nothing to pay, nothing to build
	}
	opts := common.NewOptions(ops)
	demands := demandsFor(payments, b.Ctx.AVAXAssetID, b.Ctx.BaseTxFee)

	ins, outs, err := common.Spend(b.UTXOs, &common.AssetAmountDestination{
		Demands:         demands,
		Senders:         opts.Addresses(b.Addrs),
		Destinations:    destinations,
		ChangeAddresses: changeAddrs(opts, nil),
		AsOf:            opts.MinIssuanceTime(),
		Threshold:       threshold,
		Log:             opts.Log(),
	})
	if err != nil {
		return nil, err
	}
	tx := &avmtxs.BaseTx{
		NetworkID:    b.Ctx.NetworkID,
		BlockchainID: b.Ctx.BlockchainID,
		Outs:         outs,
		Inputs:       ins,
		Memo:         opts.Memo(),
	}
	if err := tx.Verify(); err != nil {
		return nil, err
	}
	return tx, nil
}

// NewCreateAssetTx defines a new asset: [initialStates] carries the
// outputs it's minted with, funded purely by the base fee.
// [threshold] parameterizes the (here unused, since no payload asset is
// paid out) destination OutputOwners Spend would otherwise build with a
// hardcoded threshold.
func (b *Builder) NewCreateAssetTx(name, symbol string, denomination uint8, initialStates []*avmtxs.InitialState, threshold uint32, ops ...common.Option) (*avmtxs.CreateAssetTx, error) {
	opts := common.NewOptions(ops)
	demands := demandsFor(nil, b.Ctx.AVAXAssetID, b.Ctx.BaseTxFee)

	ins, outs, err := common.Spend(b.UTXOs, &common.AssetAmountDestination{
		Demands:         demands,
		Senders:         opts.Addresses(b.Addrs),
		ChangeAddresses: changeAddrs(opts, nil),
		AsOf:            opts.MinIssuanceTime(),
		Threshold:       threshold,
		Log:             opts.Log(),
	})
	if err != nil {
		return nil, err
	}
	tx := &avmtxs.CreateAssetTx{
		BaseTx: avmtxs.BaseTx{
			NetworkID:    b.Ctx.NetworkID,
			BlockchainID: b.Ctx.BlockchainID,
			Outs:         outs,
			Inputs:       ins,
			Memo:         opts.Memo(),
		},
		Name:          name,
		Symbol:        symbol,
		Denomination:  denomination,
		InitialStates: initialStates,
	}
	if err := tx.Verify(); err != nil {
		return nil, err
	}
	return tx, nil
}

// NewOperationTx wraps pre-built mint [operations] (each already carrying
// the UTXOIDs of the mint rights it spends) in a transaction whose
// ordinary BaseTx inputs fund only the base fee. [threshold] parameterizes
// Spend's destination OutputOwners the same way NewCreateAssetTx's does.
func (b *Builder) NewOperationTx(operations []*avmtxs.Operation, threshold uint32, ops ...common.Option) (*avmtxs.OperationTx, error) {
	opts := common.NewOptions(ops)
	demands := demandsFor(nil, b.Ctx.AVAXAssetID, b.Ctx.BaseTxFee)

	ins, outs, err := common.Spend(b.UTXOs, &common.AssetAmountDestination{
		Demands:         demands,
		Senders:         opts.Addresses(b.Addrs),
		ChangeAddresses: changeAddrs(opts, nil),
		AsOf:            opts.MinIssuanceTime(),
		Threshold:       threshold,
		Log:             opts.Log(),
	})
	if err != nil {
		return nil, err
	}
	tx := &avmtxs.OperationTx{
		BaseTx: avmtxs.BaseTx{
			NetworkID:    b.Ctx.NetworkID,
			BlockchainID: b.Ctx.BlockchainID,
			Outs:         outs,
			Inputs:       ins,
			Memo:         opts.Memo(),
		},
		Ops: operations,
	}
	if err := tx.Verify(); err != nil {
		return nil, err
	}
	return tx, nil
}

// NewImportTx spends [importedUTXOs] (atomic UTXOs from sourceChain) into
// outputs addressed to [to]. Imported AVAX pays the base fee; if the
// imported funds don't cover it, NewImportTx returns ErrMixedFeeAsset
// rather than drawing the remainder from b.UTXOs.
func (b *Builder) NewImportTx(sourceChain ids.ID, importedUTXOs []*avax.UTXO, to *secp256k1fx.OutputOwners, ops ...common.Option) (*avmtxs.ImportTx, error) {
	opts := common.NewOptions(ops)
	addrs := opts.Addresses(b.Addrs)
	asOf := opts.MinIssuanceTime()

	importedIns, importedAmounts := importAtomicUTXOs(importedUTXOs, addrs, asOf)

	fee := b.Ctx.BaseTxFee
	avaxImported := importedAmounts[b.Ctx.AVAXAssetID]
	feeFromImport := avaxImported
	if feeFromImport > fee {
		feeFromImport = fee
	}
	// An import whose fee isn't sufficiently covered by the imported
	// funds is rejected, not silently topped up from the chain's
	// ordinary UTXO balance.
	if feeFromImport < fee {
		return nil, common.ErrMixedFeeAsset
	}

	outs := make([]*avax.TransferableOutput, 0, len(importedAmounts))
	for assetID, amt := range importedAmounts {
		payout := amt
		if assetID == b.Ctx.AVAXAssetID {
			payout = amt - feeFromImport
		}
		if payout > 0 {
			outs = append(outs, &avax.TransferableOutput{
				Asset: avax.Asset{ID: assetID},
				Out:   &secp256k1fx.TransferOutput{Amt: payout, OutputOwners: *to},
			})
		}
	}
	avax.SortTransferableOutputs(outs)

	tx := &avmtxs.ImportTx{
		BaseTx: avmtxs.BaseTx{
			NetworkID:    b.Ctx.NetworkID,
			BlockchainID: b.Ctx.BlockchainID,
			Outs:         outs,
			Memo:         opts.Memo(),
		},
		SourceChain: sourceChain,
		ImportedIns: importedIns,
	}
	if err := tx.Verify(); err != nil {
		return nil, err
	}
	return tx, nil
}

// NewExportTx burns [payments] out of b.UTXOs (they disappear from this
// chain and reappear as ExportedOuts on destinationChain) plus the base
// fee, leaving any overage as ordinary BaseTx change. [to]
// already carries its own threshold for the ExportedOuts; [threshold]
// parameterizes Spend's (here unused) destination OutputOwners the same
// way NewCreateAssetTx's does.
func (b *Builder) NewExportTx(destinationChain ids.ID, payments []Payment, to *secp256k1fx.OutputOwners, threshold uint32, ops ...common.Option) (*avmtxs.ExportTx, error) {
	if totalAmount(payments) == 0 {
		return nil, nil // nothing to export, nothing to build
	}
	opts := common.NewOptions(ops)
	demands := make(map[ids.ID]*common.Demand, len(payments)+1)
	for _, p := range payments {
		d, ok := demands[p.AssetID]
		if !ok {
			d = &common.Demand{}
			demands[p.AssetID] = d
		}
		d.Burn += p.Amount
	}
	if d, ok := demands[b.Ctx.AVAXAssetID]; ok {
		d.Burn += b.Ctx.BaseTxFee
	} else {
		demands[b.Ctx.AVAXAssetID] = &common.Demand{Burn: b.Ctx.BaseTxFee}
	}

	ins, changeOuts, err := common.Spend(b.UTXOs, &common.AssetAmountDestination{
		Demands:         demands,
		Senders:         opts.Addresses(b.Addrs),
		ChangeAddresses: changeAddrs(opts, nil),
		AsOf:            opts.MinIssuanceTime(),
		Threshold:       threshold,
		Log:             opts.Log(),
	})
	if err != nil {
		return nil, err
	}

	exportedOuts := make([]*avax.TransferableOutput, 0, len(payments))
	for _, p := range payments {
		exportedOuts = append(exportedOuts, &avax.TransferableOutput{
			Asset: avax.Asset{ID: p.AssetID},
			Out:   &secp256k1fx.TransferOutput{Amt: p.Amount, OutputOwners: *to},
		})
	}
	avax.SortTransferableOutputs(exportedOuts)

	tx := &avmtxs.ExportTx{
		BaseTx: avmtxs.BaseTx{
			NetworkID:    b.Ctx.NetworkID,
			BlockchainID: b.Ctx.BlockchainID,
			Outs:         changeOuts,
			Inputs:       ins,
			Memo:         opts.Memo(),
		},
		DestinationChain: destinationChain,
		ExportedOuts:     exportedOuts,
	}
	if err := tx.Verify(); err != nil {
		return nil, err
	}
	return tx, nil
}

// totalAmount sums the payment legs; a zero total means the builder has
// nothing to do and returns no transaction at all.
func totalAmount(payments []Payment) uint64 {
	var total uint64
	for _, p := range payments {
		total += p.Amount
	}
	return total
}

// demandsFor folds [payments] into a Demand map and adds feeAsset's burn,
// collapsing payload and fee into one entry when they share an asset.
func demandsFor(payments []Payment, feeAsset ids.ID, fee uint64) map[ids.ID]*common.Demand {
	demands := make(map[ids.ID]*common.Demand, len(payments)+1)
	for _, p := range payments {
		d, ok := demands[p.AssetID]
		if !ok {
			d = &common.Demand{}
			demands[p.AssetID] = d
		}
		d.Amount += p.Amount
	}
	if d, ok := demands[feeAsset]; ok {
		d.Burn += fee
	} else {
		demands[feeAsset] = &common.Demand{Burn: fee}
	}
	return demands
}

// changeAddrs returns the options' configured change owner's addresses,
// falling back to [destinations]; when the result is empty, Spend sends
// change back to the sender set.
func changeAddrs(opts *common.Options, destinations []ids.ShortID) []ids.ShortID {
	if owner := opts.ChangeOwner(nil); owner != nil {
		return owner.Addrs
	}
	return destinations
}

// importAtomicUTXOs builds the TransferableInput list for [importedUTXOs]
// and sums their amounts per asset.
func importAtomicUTXOs(importedUTXOs []*avax.UTXO, addrs set.Set[ids.ShortID], asOf uint64) ([]*avax.TransferableInput, map[ids.ID]uint64) {
	ins := make([]*avax.TransferableInput, 0, len(importedUTXOs))
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
		ins = append(ins, &avax.TransferableInput{
			UTXOID: u.UTXOID,
			Asset:  u.Asset,
			In:     &secp256k1fx.TransferInput{Amt: transferOut.Amt, Input: secp256k1fx.Input{SigIndices: sigIndices}},
		})
		amounts[u.Asset.ID] += transferOut.Amt
	}
	avax.SortTransferableInputs(ins)
	return ins, amounts
}
