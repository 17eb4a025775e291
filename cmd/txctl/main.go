// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Command txctl is a thin, offline CLI over this module: generate and
// persist keys, derive addresses, and build+sign a BaseTx against a
// locally supplied UTXO set. It never talks to a node; every UTXO it
// spends is read from a file the caller already fetched some other way.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
