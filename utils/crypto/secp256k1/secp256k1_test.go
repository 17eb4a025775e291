// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/avalanche-wallet-core/utils/hashing"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	f := Factory{}
	sk, err := f.NewPrivateKey()
	require.NoError(t, err)

	msg := []byte("the quick brown fox")
	sig, err := sk.Sign(msg)
	require.NoError(t, err)
	require.Len(t, sig, SignatureLen)

	assert.True(t, sk.PublicKey().Verify(msg, sig))
	assert.False(t, sk.PublicKey().Verify([]byte("different message"), sig))
}

func TestRecoverMatchesSigner(t *testing.T) {
	f := Factory{}
	sk, err := f.NewPrivateKey()
	require.NoError(t, err)

	msg := []byte("recover me")
	sig, err := sk.Sign(msg)
	require.NoError(t, err)

	recovered, err := f.RecoverPublicKey(msg, sig)
	require.NoError(t, err)
	assert.Equal(t, sk.PublicKey().Bytes(), recovered.Bytes())
	assert.Equal(t, sk.PublicKey().Address(), recovered.Address())
}

func TestRecoverRejectsInvalidRecoveryID(t *testing.T) {
	f := Factory{}
	sk, err := f.NewPrivateKey()
	require.NoError(t, err)

	msg := []byte("tamper the recovery id")
	sig, err := sk.Sign(msg)
	require.NoError(t, err)

	sig[64] = 7
	_, err = f.RecoverPublicKey(msg, sig)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRecovery)
}

func TestRecoverRejectsWrongLength(t *testing.T) {
	f := Factory{}
	_, err := f.RecoverPublicKey([]byte("msg"), make([]byte, 64))
	assert.Error(t, err)
}

func TestSignaturesAreLowS(t *testing.T) {
	f := Factory{}
	sk, err := f.NewPrivateKey()
	require.NoError(t, err)

	msgs := [][]byte{
		[]byte("a"), []byte("b"), []byte("c"), []byte("d"),
		[]byte("e"), []byte("f"), []byte("g"), []byte("h"),
	}
	for _, msg := range msgs {
		sig, err := sk.Sign(msg)
		require.NoError(t, err)
		s := new(big.Int).SetBytes(sig[32:64])
		assert.True(t, s.Cmp(secp256k1HalfN) <= 0, "signature S exceeds half the curve order")
	}
}

func TestPrivateKeyBytesRoundTrip(t *testing.T) {
	f := Factory{}
	sk, err := f.NewPrivateKey()
	require.NoError(t, err)

	restored, err := f.ToPrivateKey(sk.Bytes())
	require.NoError(t, err)
	assert.Equal(t, sk.PublicKey().Bytes(), restored.PublicKey().Bytes())
}

func TestPublicKeyBytesRoundTrip(t *testing.T) {
	f := Factory{}
	sk, err := f.NewPrivateKey()
	require.NoError(t, err)

	pk := sk.PublicKey()
	require.Len(t, pk.Bytes(), PublicKeyLen)

	restored, err := f.ToPublicKey(pk.Bytes())
	require.NoError(t, err)
	assert.Equal(t, pk.Address(), restored.Address())
}

func TestAddressIsHash160OfPubkey(t *testing.T) {
	f := Factory{}
	sk, err := f.NewPrivateKey()
	require.NoError(t, err)

	pk := sk.PublicKey()
	expected := hashing.ComputeHash160(pk.Bytes())
	assert.Equal(t, expected, pk.Address().Bytes())
}

func TestSignHashMatchesSignOfDigest(t *testing.T) {
	f := Factory{}
	sk, err := f.NewPrivateKey()
	require.NoError(t, err)

	msg := []byte("digest equivalence")
	sigFromMsg, err := sk.Sign(msg)
	require.NoError(t, err)

	recovered, err := f.RecoverHashPublicKey(hashing.ComputeHash256(msg), sigFromMsg)
	require.NoError(t, err)
	assert.Equal(t, sk.PublicKey().Bytes(), recovered.Bytes())
}
