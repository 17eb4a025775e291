// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avax

import "sort"

// SortTransferableOutputs sorts [outs] into the canonical order a
// transaction is serialized with: by asset id, then by the serialized
// output body.
func SortTransferableOutputs(outs []*TransferableOutput) {
	sort.Slice(outs, func(i, j int) bool {
		return outs[i].Compare(outs[j]) < 0
	})
}

// SortTransferableInputs sorts [ins] by UTXOID, so each input's position
// lines up with its credential's index after signing.
func SortTransferableInputs(ins []*TransferableInput) []uint32 {
	indices := make([]uint32, len(ins))
	for i := range indices {
		indices[i] = uint32(i)
	}
	sort.Sort(&innSorter{ins: ins, indices: indices})
	return indices
}

type innSorter struct {
	ins     []*TransferableInput
	indices []uint32
}

func (s *innSorter) Len() int { return len(s.ins) }

func (s *innSorter) Less(i, j int) bool {
	return s.ins[i].Compare(s.ins[j]) < 0
}

func (s *innSorter) Swap(i, j int) {
	s.ins[i], s.ins[j] = s.ins[j], s.ins[i]
	s.indices[i], s.indices[j] = s.indices[j], s.indices[i]
}
