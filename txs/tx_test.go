// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/avalanche-wallet-core/ids"
	"github.com/ava-labs/avalanche-wallet-core/txs"
	avmtxs "github.com/ava-labs/avalanche-wallet-core/vms/avm/txs"
	"github.com/ava-labs/avalanche-wallet-core/vms/secp256k1fx"
)

func newBaseTx() *avmtxs.BaseTx {
	return &avmtxs.BaseTx{
		NetworkID:    5,
		BlockchainID: ids.GenerateTestID([]byte("chain")),
		Memo:         []byte("hi"),
	}
}

func TestBytesPrefixesCodecVersionAndTypeID(t *testing.T) {
	tx := newBaseTx()
	b := txs.Bytes(tx)
	require.True(t, len(b) >= 6)
	assert.Equal(t, []byte{0x00, 0x00}, b[:2]) // CodecVersion
	assert.EqualValues(t, avmtxs.BaseTxTypeID, uint32(b[2])<<24|uint32(b[3])<<16|uint32(b[4])<<8|uint32(b[5]))
}

func TestPreImageIsDeterministic(t *testing.T) {
	tx1 := newBaseTx()
	tx2 := newBaseTx()
	assert.Equal(t, txs.PreImage(tx1), txs.PreImage(tx2))
}

func TestPreImageDiffersOnBodyChange(t *testing.T) {
	tx1 := newBaseTx()
	tx2 := newBaseTx()
	tx2.NetworkID = 6
	assert.NotEqual(t, txs.PreImage(tx1), txs.PreImage(tx2))
}

func TestSignedTxBytesAndID(t *testing.T) {
	tx := newBaseTx()
	signed := &txs.SignedTx{
		Unsigned: tx,
		Credentials: []*secp256k1fx.Credential{
			{Sigs: [][secp256k1fx.SignatureLen]byte{{}}},
		},
	}

	assert.Equal(t, txs.PreImage(tx), signed.ID())

	unsignedLen := len(txs.Bytes(tx))
	signedBytes := signed.Bytes()
	require.True(t, len(signedBytes) > unsignedLen)
	assert.Equal(t, txs.Bytes(tx), signedBytes[:unsignedLen])
}
