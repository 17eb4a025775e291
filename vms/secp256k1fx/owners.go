// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package secp256k1fx is the standard output/input dialect: locktime +
// M-of-N threshold ownership over a set of addresses, spent by positional
// sigIndices into that address list.
package secp256k1fx

import (
	"errors"
	"sort"

	"github.com/ava-labs/avalanche-wallet-core/ids"
	"github.com/ava-labs/avalanche-wallet-core/utils/set"
	"github.com/ava-labs/avalanche-wallet-core/utils/wrappers"
)

var (
	errThresholdExceedsAddrs = errors.New("threshold must be no greater than number of addresses")
	errAddrsNotSortedUnique  = errors.New("addresses not sorted and unique")
)

// OutputOwners is the common (locktime, threshold, addresses) ownership
// clause shared by every secp256k1fx output.
type OutputOwners struct {
	Locktime  uint64
	Threshold uint32
	Addrs     []ids.ShortID // must be kept sorted ascending
}

// NewOutputOwners sorts [addrs] and returns the owners clause.
func NewOutputOwners(locktime uint64, threshold uint32, addrs []ids.ShortID) *OutputOwners {
	sorted := make([]ids.ShortID, len(addrs))
	copy(sorted, addrs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Compare(sorted[j]) < 0 })
	return &OutputOwners{Locktime: locktime, Threshold: threshold, Addrs: sorted}
}

func (owners *OutputOwners) Verify() error {
	if int(owners.Threshold) > len(owners.Addrs) {
		return errThresholdExceedsAddrs
	}
	for i := 1; i < len(owners.Addrs); i++ {
		if owners.Addrs[i-1].Compare(owners.Addrs[i]) >= 0 {
			return errAddrsNotSortedUnique
		}
	}
	return nil
}

func (owners *OutputOwners) Marshal(p *wrappers.Packer) {
	p.PackLong(owners.Locktime)
	p.PackInt(owners.Threshold)
	p.PackInt(uint32(len(owners.Addrs)))
	for _, addr := range owners.Addrs {
		p.PackFixedBytes(addr.Bytes())
	}
}

func UnmarshalOutputOwners(p *wrappers.Packer) (*OutputOwners, error) {
	owners := &OutputOwners{
		Locktime:  p.UnpackLong(),
		Threshold: p.UnpackInt(),
	}
	numAddrs := p.UnpackInt()
	owners.Addrs = make([]ids.ShortID, numAddrs)
	for i := range owners.Addrs {
		addr, err := ids.ToShortID(p.UnpackFixedBytes(ids.ShortIDLen))
		if p.Errored() {
			return nil, p.Err
		}
		if err != nil {
			return nil, err
		}
		owners.Addrs[i] = addr
	}
	if p.Errored() {
		return nil, p.Err
	}
	return owners, nil
}

// Addresses returns the owners' address list, already kept sorted
// ascending.
func (owners *OutputOwners) Addresses() []ids.ShortID { return owners.Addrs }

// AddressIndex returns addr's position in Addrs, or -1 if absent.
func (owners *OutputOwners) AddressIndex(addr ids.ShortID) int {
	for i, a := range owners.Addrs {
		if a == addr {
			return i
		}
	}
	return -1
}

// Spenders returns the subset of fromAddrs present in Addrs, in Addrs'
// (ascending) order, the canonical order sigIndices are derived from.
func (owners *OutputOwners) Spenders(fromAddrs set.Set[ids.ShortID], asOf uint64) []ids.ShortID {
	if owners.Locktime > asOf {
		return nil
	}
	spenders := make([]ids.ShortID, 0, owners.Threshold)
	for _, addr := range owners.Addrs {
		if fromAddrs.Contains(addr) {
			spenders = append(spenders, addr)
		}
	}
	return spenders
}

// MeetsThreshold reports whether fromAddrs can satisfy this owners clause as
// of asOf: locktime has elapsed and at least Threshold addresses intersect.
func (owners *OutputOwners) MeetsThreshold(fromAddrs set.Set[ids.ShortID], asOf uint64) bool {
	if owners.Locktime > asOf {
		return false
	}
	matches := 0
	for _, addr := range owners.Addrs {
		if fromAddrs.Contains(addr) {
			matches++
			if matches >= int(owners.Threshold) {
				return true
			}
		}
	}
	return owners.Threshold == 0
}
