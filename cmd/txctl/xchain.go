// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava-labs/avalanche-wallet-core/ids"
	"github.com/ava-labs/avalanche-wallet-core/utils/formatting/address"
	"github.com/ava-labs/avalanche-wallet-core/wallet/chain/x/builder"
)

// newXChainCmd groups the X-chain transaction-building subcommands.
func newXChainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "x-chain",
		Short: "Build and sign X-chain transactions",
	}
	cmd.AddCommand(newXChainSendCmd())
	return cmd
}

// newXChainSendCmd wires the spend solver, the BaseTx builder, and the
// keychain signer into one end-to-end path: spend a locally supplied UTXO
// snapshot to pay an asset amount to a destination, with the chain's base
// fee and change handled by the same call.
func newXChainSendCmd() *cobra.Command {
	var (
		utxoFile     string
		blockchainID string
		assetID      string
		amount       uint64
		to           string
		fee          uint64
		threshold    uint32
	)
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Build, sign, and print a BaseTx paying [amount] of [asset] to [to]",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := newCLIConfig(cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			log, err := cfg.Logger()
			if err != nil {
				return err
			}

			networkID, err := cfg.NetworkID()
			if err != nil {
				return err
			}
			bcID, err := ids.FromString(blockchainID)
			if err != nil {
				return err
			}
			asset, err := ids.FromString(assetID)
			if err != nil {
				return err
			}
			_, _, toBytes, err := address.ParseToID(to)
			if err != nil {
				return err
			}
			toAddr, err := ids.ToShortID(toBytes)
			if err != nil {
				return err
			}

			utxos, err := loadUTXOSet(utxoFile)
			if err != nil {
				return err
			}
			kc, err := openOrCreateKeychain(cfg.KeystorePath())
			if err != nil {
				return err
			}

			b := builder.New(kc.Addresses(), &builder.Context{
				NetworkID:    networkID,
				BlockchainID: bcID,
				AVAXAssetID:  asset,
				BaseTxFee:    fee,
			}, utxos)

			log.Debug("building BaseTx")
			unsigned, err := b.NewBaseTx(
				[]builder.Payment{{AssetID: asset, Amount: amount}},
				[]ids.ShortID{toAddr},
				threshold,
			)
			if err != nil {
				return err
			}
			if unsigned == nil {
				return fmt.Errorf("amount must be greater than 0")
			}

			signed, err := kc.SignTx(unsigned, utxos)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(signed.Bytes()))
			return nil
		},
	}
	cmd.Flags().StringVar(&utxoFile, "utxos", "", "path to a UTXO snapshot file (see loadUTXOSet)")
	cmd.Flags().StringVar(&blockchainID, "blockchain-id", "", "CB58 blockchain id this tx is scoped to")
	cmd.Flags().StringVar(&assetID, "asset", "", "CB58 asset id to send and pay the base fee in")
	cmd.Flags().Uint64Var(&amount, "amount", 0, "amount to send, in the asset's smallest denomination")
	cmd.Flags().StringVar(&to, "to", "", "bech32 destination address")
	cmd.Flags().Uint64Var(&fee, "fee", 1000000, "base transaction fee")
	cmd.Flags().Uint32Var(&threshold, "threshold", 1, "signature threshold required of the destination address")
	for _, name := range []string{"utxos", "blockchain-id", "asset", "to"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
