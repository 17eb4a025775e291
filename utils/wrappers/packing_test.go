// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wrappers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackUnpackPrimitives(t *testing.T) {
	p := &Packer{}
	p.PackByte(0xab)
	p.PackShort(0x0102)
	p.PackInt(0x01020304)
	p.PackLong(0x0102030405060708)
	p.PackBool(true)
	require.False(t, p.Errored())

	r := &Packer{Buf: p.Bytes()}
	assert.Equal(t, byte(0xab), r.UnpackByte())
	assert.Equal(t, uint16(0x0102), r.UnpackShort())
	assert.Equal(t, uint32(0x01020304), r.UnpackInt())
	assert.Equal(t, uint64(0x0102030405060708), r.UnpackLong())
	assert.True(t, r.UnpackBool())
	require.False(t, r.Errored())
}

func TestPackingIsBigEndian(t *testing.T) {
	p := &Packer{}
	p.PackShort(0x0102)
	assert.Equal(t, []byte{0x01, 0x02}, p.Bytes())

	p = &Packer{}
	p.PackInt(0x01020304)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, p.Bytes())

	p = &Packer{}
	p.PackLong(0x0102030405060708)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, p.Bytes())
}

func TestPackBytesAddsLengthPrefix(t *testing.T) {
	p := &Packer{}
	p.PackBytes([]byte{0xaa, 0xbb})
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x02, 0xaa, 0xbb}, p.Bytes())

	r := &Packer{Buf: p.Bytes()}
	assert.Equal(t, []byte{0xaa, 0xbb}, r.UnpackBytes())
	require.False(t, r.Errored())
}

func TestUnpackPastEndSticksError(t *testing.T) {
	r := &Packer{Buf: []byte{0x01}}
	assert.Equal(t, byte(0x01), r.UnpackByte())
	assert.Equal(t, uint32(0), r.UnpackInt())
	require.True(t, r.Errored())

	// everything after the first error is a no-op
	assert.Equal(t, byte(0), r.UnpackByte())
	assert.Nil(t, r.UnpackFixedBytes(4))
	require.True(t, r.Errored())
}

func TestMaxSizeBoundsWrites(t *testing.T) {
	p := &Packer{MaxSize: 4}
	p.PackInt(1)
	require.False(t, p.Errored())
	p.PackByte(1)
	require.True(t, p.Errored())
}

func TestPackFixedBytesRoundTrip(t *testing.T) {
	payload := []byte{1, 2, 3, 4, 5}
	p := &Packer{}
	p.PackFixedBytes(payload)
	require.False(t, p.Errored())

	r := &Packer{Buf: p.Bytes()}
	assert.Equal(t, payload, r.UnpackFixedBytes(len(payload)))
	require.False(t, r.Errored())
}
