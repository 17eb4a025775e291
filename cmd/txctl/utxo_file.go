// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/json"
	"os"

	"github.com/ava-labs/avalanche-wallet-core/ids"
	"github.com/ava-labs/avalanche-wallet-core/utils/formatting/address"
	"github.com/ava-labs/avalanche-wallet-core/vms/components/avax"
	"github.com/ava-labs/avalanche-wallet-core/vms/secp256k1fx"
)

// utxoFileEntry is one line of the flat UTXO snapshot txctl spends from:
// the caller is responsible for fetching this from wherever UTXOs live
// (an indexer, a node's API) and handing it to txctl as a file.
type utxoFileEntry struct {
	TxID        string   `json:"txID"`
	OutputIndex uint32   `json:"outputIndex"`
	AssetID     string   `json:"assetID"`
	Amount      uint64   `json:"amount"`
	Addresses   []string `json:"addresses"`
	Threshold   uint32   `json:"threshold"`
	Locktime    uint64   `json:"locktime"`
}

func loadUTXOSet(path string) (*avax.UTXOSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []utxoFileEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	set := avax.NewUTXOSet()
	for _, e := range entries {
		txID, err := ids.FromString(e.TxID)
		if err != nil {
			return nil, err
		}
		assetID, err := ids.FromString(e.AssetID)
		if err != nil {
			return nil, err
		}
		addrs := make([]ids.ShortID, len(e.Addresses))
		for i, a := range e.Addresses {
			_, _, addrBytes, err := address.ParseToID(a)
			if err != nil {
				return nil, err
			}
			addrs[i], err = ids.ToShortID(addrBytes)
			if err != nil {
				return nil, err
			}
		}
		threshold := e.Threshold
		if threshold == 0 {
			threshold = 1
		}
		set.Put(&avax.UTXO{
			UTXOID: avax.UTXOID{TxID: txID, OutputIndex: e.OutputIndex},
			Asset:  avax.Asset{ID: assetID},
			Out: &secp256k1fx.TransferOutput{
				Amt:          e.Amount,
				OutputOwners: *secp256k1fx.NewOutputOwners(e.Locktime, threshold, addrs),
			},
		})
	}
	return set, nil
}
