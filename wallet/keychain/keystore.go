// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package keychain

import (
	"encoding/hex"
	"encoding/json"
	"os"

	"github.com/google/renameio/v2"
)

// keystoreFile is the on-disk shape a Keychain persists to: one hex-encoded
// raw private key per entry, in insertion order, so reloading reproduces
// the same key insertion order.
type keystoreFile struct {
	Keys []string `json:"keys"`
}

// SaveToFile writes every key kc holds to [path] as one atomic file write,
// so a crash mid-write never leaves a truncated keystore behind.
func (kc *Keychain) SaveToFile(path string) error {
	kf := keystoreFile{Keys: make([]string, len(kc.order))}
	for i, addr := range kc.order {
		kf.Keys[i] = hex.EncodeToString(kc.keys[addr].Bytes())
	}
	data, err := json.MarshalIndent(kf, "", "  ")
	if err != nil {
		return err
	}
	return renameio.WriteFile(path, data, 0o600)
}

// LoadKeychainFromFile reads a keystore written by SaveToFile and returns
// the Keychain it describes.
func LoadKeychainFromFile(path string) (*Keychain, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var kf keystoreFile
	if err := json.Unmarshal(data, &kf); err != nil {
		return nil, err
	}
	kc := New()
	for _, keyHex := range kf.Keys {
		raw, err := hex.DecodeString(keyHex)
		if err != nil {
			return nil, err
		}
		if _, err := kc.ImportKey(raw); err != nil {
			return nil, err
		}
	}
	return kc, nil
}
