// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avax

import (
	"github.com/google/btree"

	"github.com/ava-labs/avalanche-wallet-core/ids"
	"github.com/ava-labs/avalanche-wallet-core/utils/set"
)

const btreeDegree = 32

// utxoItem adapts *UTXO to btree.Item, ordered by (txID, outputIndex),
// the candidate order the spend solver walks deterministically.
type utxoItem struct{ utxo *UTXO }

func (a utxoItem) Less(than btree.Item) bool {
	b := than.(utxoItem)
	if c := a.utxo.TxID.Compare(b.utxo.TxID); c != 0 {
		return c < 0
	}
	return a.utxo.OutputIndex < b.utxo.OutputIndex
}

// UTXOSet is an in-memory UTXO inventory: a primary
// utxoID → UTXO map plus a secondary address → set<utxoID> index. Lookup by
// utxoID is O(1) via the map; the btree gives the ordered walk Iterate
// uses without re-sorting on every call.
type UTXOSet struct {
	byID   map[ids.ID]*UTXO
	tree   *btree.BTree
	byAddr map[ids.ShortID]set.Set[ids.ID]
}

// NewUTXOSet returns an empty set.
func NewUTXOSet() *UTXOSet {
	return &UTXOSet{
		byID:   make(map[ids.ID]*UTXO),
		tree:   btree.New(btreeDegree),
		byAddr: make(map[ids.ShortID]set.Set[ids.ID]),
	}
}

// Put adds or replaces [utxo] in the set, idempotent on utxo id.
func (s *UTXOSet) Put(utxo *UTXO) {
	id := utxo.InputID()
	if old, ok := s.byID[id]; ok {
		s.tree.Delete(utxoItem{old})
		s.unindexAddrs(id, old)
	}
	s.byID[id] = utxo
	s.tree.ReplaceOrInsert(utxoItem{utxo})
	s.indexAddrs(id, utxo)
}

func (s *UTXOSet) indexAddrs(id ids.ID, utxo *UTXO) {
	for _, addr := range utxo.Out.Addresses() {
		addrSet, ok := s.byAddr[addr]
		if !ok {
			addrSet = set.Set[ids.ID]{}
			s.byAddr[addr] = addrSet
		}
		addrSet.Add(id)
	}
}

func (s *UTXOSet) unindexAddrs(id ids.ID, utxo *UTXO) {
	for _, addr := range utxo.Out.Addresses() {
		if addrSet, ok := s.byAddr[addr]; ok {
			addrSet.Remove(id)
		}
	}
}

// Get returns the UTXO keyed by [utxoID], if present.
func (s *UTXOSet) Get(utxoID ids.ID) (*UTXO, bool) {
	utxo, ok := s.byID[utxoID]
	return utxo, ok
}

// Remove deletes the UTXO keyed by [utxoID], if present.
func (s *UTXOSet) Remove(utxoID ids.ID) {
	utxo, ok := s.byID[utxoID]
	if !ok {
		return
	}
	delete(s.byID, utxoID)
	s.tree.Delete(utxoItem{utxo})
	s.unindexAddrs(utxoID, utxo)
}

// GetUTXOsByAddress returns every UTXO whose output lists [addr], in
// deterministic (txID, outputIndex) order.
func (s *UTXOSet) GetUTXOsByAddress(addr ids.ShortID) []*UTXO {
	ours, ok := s.byAddr[addr]
	if !ok {
		return nil
	}
	out := make([]*UTXO, 0, ours.Len())
	s.Iterate(func(u *UTXO) bool {
		if ours.Contains(u.InputID()) {
			out = append(out, u)
		}
		return true
	})
	return out
}

// amounter is implemented by every output variant that carries a spendable
// amount (SECPTransferOutput, StakeableLockOut); NFT and mint-right
// variants don't and are skipped by GetBalance.
type amounter interface {
	Amount() uint64
}

// GetBalance sums the amount of every UTXO denominated in [assetID] whose
// output's MeetsThreshold(addrs, asOf) holds.
func (s *UTXOSet) GetBalance(addrs set.Set[ids.ShortID], assetID ids.ID, asOf uint64) uint64 {
	var total uint64
	s.Iterate(func(u *UTXO) bool {
		if u.Asset.ID != assetID || !u.Out.MeetsThreshold(addrs, asOf) {
			return true
		}
		if a, ok := u.Out.(amounter); ok {
			total += a.Amount()
		}
		return true
	})
	return total
}

// Len returns the number of UTXOs in the set.
func (s *UTXOSet) Len() int { return s.tree.Len() }

// Iterate walks every UTXO in (txID, outputIndex) order, the deterministic
// candidate order the spend solver consumes.
func (s *UTXOSet) Iterate(f func(*UTXO) bool) {
	s.tree.Ascend(func(item btree.Item) bool {
		return f(item.(utxoItem).utxo)
	})
}

// Filter returns, in the same deterministic order, every UTXO whose asset
// id equals [assetID] and for which [match] returns true.
func (s *UTXOSet) Filter(assetID ids.ID, match func(*UTXO) bool) []*UTXO {
	var out []*UTXO
	s.Iterate(func(u *UTXO) bool {
		if u.Asset.ID == assetID && match(u) {
			out = append(out, u)
		}
		return true
	})
	return out
}

// List returns every UTXO in deterministic order.
func (s *UTXOSet) List() []*UTXO {
	out := make([]*UTXO, 0, s.Len())
	s.Iterate(func(u *UTXO) bool {
		out = append(out, u)
		return true
	})
	return out
}
