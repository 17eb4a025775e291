// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package secp256k1 is the concrete crypto.Factory/PublicKey/PrivateKey
// implementation: keygen, ECDSA sign/recover/verify over SHA-256 digests,
// address = RIPEMD160(SHA256(pubkey)).
package secp256k1

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/ava-labs/avalanche-wallet-core/ids"
	"github.com/ava-labs/avalanche-wallet-core/utils/crypto"
	"github.com/ava-labs/avalanche-wallet-core/utils/hashing"
)

// secp256k1N is the curve's group order; secp256k1HalfN is its midpoint.
// Canonical signatures must be low-S normalized; toLowS below checks and
// renormalizes every signature this package produces rather than relying
// on a dependency default.
var secp256k1N, _ = new(big.Int).SetString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)

var secp256k1HalfN = new(big.Int).Rsh(secp256k1N, 1)

const (
	PrivateKeyLen = 32
	PublicKeyLen  = 33
	SignatureLen  = 65
)

// ErrRecovery reports an invalid ECDSA recovery id.
var (
	ErrRecovery        = errors.New("invalid recovery id")
	errInvalidSigLen   = fmt.Errorf("signature must be %d bytes long", SignatureLen)
	errInvalidPubKeyLen = fmt.Errorf("public key must be %d bytes long", PublicKeyLen)

	_ crypto.RecoverableFactory = (*Factory)(nil)
	_ crypto.PrivateKey         = (*PrivateKey)(nil)
	_ crypto.PublicKey          = (*PublicKey)(nil)
)

// Factory produces secp256k1 keys.
type Factory struct{}

func (Factory) NewPrivateKey() (crypto.PrivateKey, error) {
	sk, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, err
	}
	return &PrivateKey{sk: sk}, nil
}

func (Factory) ToPublicKey(b []byte) (crypto.PublicKey, error) {
	if len(b) != PublicKeyLen {
		return nil, errInvalidPubKeyLen
	}
	pk, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse public key: %w", err)
	}
	return &PublicKey{pk: pk}, nil
}

func (Factory) ToPrivateKey(b []byte) (crypto.PrivateKey, error) {
	if len(b) != PrivateKeyLen {
		return nil, fmt.Errorf("private key must be %d bytes long", PrivateKeyLen)
	}
	sk := secp256k1.PrivKeyFromBytes(b)
	return &PrivateKey{sk: sk}, nil
}

func (f Factory) RecoverPublicKey(message, signature []byte) (crypto.PublicKey, error) {
	return f.RecoverHashPublicKey(hashing.ComputeHash256(message), signature)
}

func (Factory) RecoverHashPublicKey(hash, signature []byte) (crypto.PublicKey, error) {
	if len(signature) != SignatureLen {
		return nil, errInvalidSigLen
	}
	raw := ethSigToRawSig(signature)
	pk, _, err := ecdsa.RecoverCompact(raw, hash)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRecovery, err)
	}
	return &PublicKey{pk: pk}, nil
}

// PrivateKey wraps a decred secp256k1 private key.
type PrivateKey struct {
	sk  *secp256k1.PrivateKey
	pk  *PublicKey
}

func (k *PrivateKey) PublicKey() crypto.PublicKey {
	if k.pk == nil {
		k.pk = &PublicKey{pk: k.sk.PubKey()}
	}
	return k.pk
}

func (k *PrivateKey) Sign(message []byte) ([]byte, error) {
	return k.SignHash(hashing.ComputeHash256(message))
}

// SignHash produces a 65-byte recoverable signature: a 64-byte compact
// signature followed by a 1-byte recovery id, explicitly renormalized to
// the low-S form by toLowS rather than trusting ecdsa.SignCompact's own
// low-S default.
func (k *PrivateKey) SignHash(hash []byte) ([]byte, error) {
	raw := ecdsa.SignCompact(k.sk, hash, false)
	raw = toLowS(raw)
	return rawSigToEthSig(raw), nil
}

// toLowS renormalizes sig (decred's compact layout is
// [recID+27, R(32), S(32)]) to the low-S form: if S > N/2, replace it
// with N-S and flip the
// recovery id's y-parity bit so the same public key still recovers.
func toLowS(sig []byte) []byte {
	s := new(big.Int).SetBytes(sig[33:65])
	if s.Cmp(secp256k1HalfN) <= 0 {
		return sig
	}
	s.Sub(secp256k1N, s)

	out := make([]byte, SignatureLen)
	copy(out, sig)
	sBytes := s.Bytes()
	for i := 33; i < 65-len(sBytes); i++ {
		out[i] = 0
	}
	copy(out[65-len(sBytes):65], sBytes)

	recID := sig[0] - 27
	out[0] = 27 + (recID ^ 1)
	return out
}

func (k *PrivateKey) Bytes() []byte { return k.sk.Serialize() }

// PublicKey wraps a decred secp256k1 public key.
type PublicKey struct {
	pk   *secp256k1.PublicKey
	addr *ids.ShortID
}

func (k *PublicKey) Verify(message, signature []byte) bool {
	return k.VerifyHash(hashing.ComputeHash256(message), signature)
}

func (k *PublicKey) VerifyHash(hash, signature []byte) bool {
	if len(signature) != SignatureLen {
		return false
	}
	raw := ethSigToRawSig(signature)
	recoveredPK, _, err := ecdsa.RecoverCompact(raw, hash)
	if err != nil {
		return false
	}
	return recoveredPK.IsEqual(k.pk)
}

func (k *PublicKey) Address() ids.ShortID {
	if k.addr == nil {
		addr, _ := ids.ToShortID(hashing.ComputeHash160(k.Bytes()))
		k.addr = &addr
	}
	return *k.addr
}

func (k *PublicKey) Bytes() []byte { return k.pk.SerializeCompressed() }

// rawSigToEthSig moves decred's compact-signature recovery byte (v,
// leading) to the end, producing the R || S || V layout credentials carry.
func rawSigToEthSig(sig []byte) []byte {
	ethSig := make([]byte, SignatureLen)
	copy(ethSig, sig[1:])
	ethSig[64] = sig[0] - 27
	return ethSig
}

func ethSigToRawSig(sig []byte) []byte {
	rawSig := make([]byte, SignatureLen)
	rawSig[0] = sig[64] + 27
	copy(rawSig[1:], sig[:64])
	return rawSig
}
