// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/ava-labs/avalanche-wallet-core/utils/formatting"
	"github.com/ava-labs/avalanche-wallet-core/utils/hashing"
)

// IDLen is the length, in bytes, of an ID: an AssetID, TxID, BlockchainID
// or ChainID.
const IDLen = 32

// Empty is the all-zeroes ID.
var Empty = ID{}

// ID is a 32-byte identifier, textually represented as CB58.
type ID [IDLen]byte

// ToID takes a byte slice and produces an ID.
func ToID(bytes []byte) (ID, error) {
	var id ID
	if len(bytes) != IDLen {
		return id, fmt.Errorf("expected %d bytes but got %d", IDLen, len(bytes))
	}
	copy(id[:], bytes)
	return id, nil
}

// FromString parses the CB58 representation of an ID.
func FromString(idStr string) (ID, error) {
	decoded, err := formatting.CB58Decode(idStr)
	if err != nil {
		return ID{}, fmt.Errorf("couldn't decode ID from string: %w", err)
	}
	return ToID(decoded)
}

// GenerateTestID returns a deterministic ID derived from [seed], for use in
// tests and example data only, never in wire construction.
func GenerateTestID(seed []byte) ID {
	return hashing.ComputeHash256Array(seed)
}

func (id ID) String() string {
	return formatting.CB58Encode(id[:])
}

func (id ID) Bytes() []byte { return id[:] }

func (id ID) IsZero() bool { return id == Empty }

func (id ID) Compare(other ID) int {
	return bytes.Compare(id[:], other[:])
}

func (id ID) Equals(other ID) bool { return id == other }

func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

func (id *ID) UnmarshalJSON(b []byte) error {
	str := string(b)
	if str == "null" {
		return nil
	}
	var unquoted string
	if err := json.Unmarshal(b, &unquoted); err != nil {
		return err
	}
	parsed, err := FromString(unquoted)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// SortIDs sorts [ids] byte-lexicographically in place.
func SortIDs(ids []ID) {
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].Compare(ids[j]) < 0
	})
}
