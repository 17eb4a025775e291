// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import "fmt"

// nodeIDPrefix is prepended to a NodeID's CB58 form.
const nodeIDPrefix = "NodeID-"

// NodeID identifies a validator. It shares ShortID's 20-byte shape but is
// rendered with a "NodeID-" prefix instead of being address-formatted.
type NodeID ShortID

func (id NodeID) String() string {
	return nodeIDPrefix + ShortID(id).String()
}

func NodeIDFromString(str string) (NodeID, error) {
	if len(str) < len(nodeIDPrefix) || str[:len(nodeIDPrefix)] != nodeIDPrefix {
		return NodeID{}, fmt.Errorf("ID: %q is missing the prefix: %q", str, nodeIDPrefix)
	}
	short, err := ShortFromString(str[len(nodeIDPrefix):])
	if err != nil {
		return NodeID{}, err
	}
	return NodeID(short), nil
}
