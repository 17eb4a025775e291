// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ava-labs/avalanche-wallet-core/utils/formatting"
)

// ShortIDLen is the length, in bytes, of a ShortID: an address.
const ShortIDLen = 20

// ShortEmpty is the all-zeroes ShortID.
var ShortEmpty = ShortID{}

// ShortID is a 20-byte identifier: RIPEMD160(SHA256(pubkey)), the address
// form. Textual form is CB58 by default; HRP-qualified bech32 addresses
// live in utils/formatting/address and are derived from these bytes.
type ShortID [ShortIDLen]byte

func ToShortID(b []byte) (ShortID, error) {
	var id ShortID
	if len(b) != ShortIDLen {
		return id, fmt.Errorf("expected %d bytes but got %d", ShortIDLen, len(b))
	}
	copy(id[:], b)
	return id, nil
}

func ShortFromString(idStr string) (ShortID, error) {
	decoded, err := formatting.CB58Decode(idStr)
	if err != nil {
		return ShortID{}, fmt.Errorf("couldn't decode ShortID from string: %w", err)
	}
	return ToShortID(decoded)
}

func (id ShortID) String() string { return formatting.CB58Encode(id[:]) }

func (id ShortID) Bytes() []byte { return id[:] }

func (id ShortID) IsZero() bool { return id == ShortEmpty }

func (id ShortID) Compare(other ShortID) int { return bytes.Compare(id[:], other[:]) }

func (id ShortID) Equals(other ShortID) bool { return id == other }

func (id ShortID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

func (id *ShortID) UnmarshalJSON(b []byte) error {
	str := string(b)
	if str == "null" {
		return nil
	}
	var unquoted string
	if err := json.Unmarshal(b, &unquoted); err != nil {
		return err
	}
	parsed, err := ShortFromString(unquoted)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// ShortIDsToStrings converts a slice of ShortIDs to their CB58 form.
func ShortIDsToStrings(ids []ShortID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
