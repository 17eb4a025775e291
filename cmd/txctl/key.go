// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ava-labs/avalanche-wallet-core/utils/formatting/address"
	"github.com/ava-labs/avalanche-wallet-core/wallet/keychain"
)

func openOrCreateKeychain(path string) (*keychain.Keychain, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return keychain.New(), nil
	}
	return keychain.LoadKeychainFromFile(path)
}

func newKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Manage the local keystore",
	}
	cmd.AddCommand(newKeyNewCmd())
	cmd.AddCommand(newKeyListCmd())
	return cmd
}

func newKeyNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Generate a new key and add it to the keystore",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := newCLIConfig(cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			kc, err := openOrCreateKeychain(cfg.KeystorePath())
			if err != nil {
				return err
			}
			addr, err := kc.Make()
			if err != nil {
				return err
			}
			if err := kc.SaveToFile(cfg.KeystorePath()); err != nil {
				return err
			}
			formatted, err := address.Format("X", cfg.HRP(), addr.Bytes())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatted)
			return nil
		},
	}
}

func newKeyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every address in the keystore",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := newCLIConfig(cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			kc, err := openOrCreateKeychain(cfg.KeystorePath())
			if err != nil {
				return err
			}
			for _, addr := range kc.Addresses().List() {
				formatted, err := address.Format("X", cfg.HRP(), addr.Bytes())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatted)
			}
			return nil
		},
	}
}
