// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package wrappers implements the primitive wire codec: a byte cursor
// with sticky errors, so a builder can chain a long run of Pack calls and
// check err once at the end.
package wrappers

import "errors"

const (
	ByteLen   = 1
	ShortLen  = 2
	IntLen    = 4
	LongLen   = 8
	BoolLen   = 1
	ShortIDLen = 20
	IDLen      = 32
)

var (
	errBadLength  = errors.New("packer has insufficient length for input")
	errNegativeOffset = errors.New("negative offset")
)

// Packer packs and unpacks big-endian primitives to/from a byte slice. All
// reads/writes after the first error become no-ops; callers check Errored()
// once at the end of a sequence of operations.
type Packer struct {
	Buf      []byte
	Off      int
	Err      error
	MaxSize  int // 0 means unbounded
}

func (p *Packer) Errored() bool { return p.Err != nil }

func (p *Packer) Bytes() []byte { return p.Buf }

func (p *Packer) checkSpace(n int) bool {
	if p.Err != nil {
		return false
	}
	if p.MaxSize > 0 && len(p.Buf)+n > p.MaxSize {
		p.Err = errBadLength
		return false
	}
	return true
}

func (p *Packer) expand(n int) {
	needed := p.Off + n
	if needed <= len(p.Buf) {
		return
	}
	newBuf := make([]byte, needed)
	copy(newBuf, p.Buf)
	p.Buf = newBuf
}

// PackByte appends a single byte.
func (p *Packer) PackByte(val byte) {
	if !p.checkSpace(ByteLen) {
		return
	}
	p.expand(ByteLen)
	p.Buf[p.Off] = val
	p.Off++
}

// PackShort appends a big-endian uint16.
func (p *Packer) PackShort(val uint16) {
	if !p.checkSpace(ShortLen) {
		return
	}
	p.expand(ShortLen)
	p.Buf[p.Off] = byte(val >> 8)
	p.Buf[p.Off+1] = byte(val)
	p.Off += ShortLen
}

// PackInt appends a big-endian uint32.
func (p *Packer) PackInt(val uint32) {
	if !p.checkSpace(IntLen) {
		return
	}
	p.expand(IntLen)
	p.Buf[p.Off] = byte(val >> 24)
	p.Buf[p.Off+1] = byte(val >> 16)
	p.Buf[p.Off+2] = byte(val >> 8)
	p.Buf[p.Off+3] = byte(val)
	p.Off += IntLen
}

// PackLong appends a big-endian uint64.
func (p *Packer) PackLong(val uint64) {
	if !p.checkSpace(LongLen) {
		return
	}
	p.expand(LongLen)
	for i := 0; i < LongLen; i++ {
		p.Buf[p.Off+i] = byte(val >> uint(56-8*i))
	}
	p.Off += LongLen
}

// PackBool appends a single bool byte.
func (p *Packer) PackBool(b bool) {
	if b {
		p.PackByte(1)
	} else {
		p.PackByte(0)
	}
}

// PackFixedBytes appends bytes verbatim, with no length prefix.
func (p *Packer) PackFixedBytes(bytes []byte) {
	if !p.checkSpace(len(bytes)) {
		return
	}
	p.expand(len(bytes))
	copy(p.Buf[p.Off:], bytes)
	p.Off += len(bytes)
}

// PackBytes appends a 4-byte length prefix followed by bytes.
func (p *Packer) PackBytes(bytes []byte) {
	p.PackInt(uint32(len(bytes)))
	p.PackFixedBytes(bytes)
}

func (p *Packer) checkRead(n int) bool {
	if p.Err != nil {
		return false
	}
	if p.Off < 0 {
		p.Err = errNegativeOffset
		return false
	}
	if p.Off+n > len(p.Buf) {
		p.Err = errBadLength
		return false
	}
	return true
}

// UnpackByte reads a single byte.
func (p *Packer) UnpackByte() byte {
	if !p.checkRead(ByteLen) {
		return 0
	}
	val := p.Buf[p.Off]
	p.Off++
	return val
}

// UnpackShort reads a big-endian uint16.
func (p *Packer) UnpackShort() uint16 {
	if !p.checkRead(ShortLen) {
		return 0
	}
	val := uint16(p.Buf[p.Off])<<8 | uint16(p.Buf[p.Off+1])
	p.Off += ShortLen
	return val
}

// UnpackInt reads a big-endian uint32.
func (p *Packer) UnpackInt() uint32 {
	if !p.checkRead(IntLen) {
		return 0
	}
	val := uint32(p.Buf[p.Off])<<24 | uint32(p.Buf[p.Off+1])<<16 | uint32(p.Buf[p.Off+2])<<8 | uint32(p.Buf[p.Off+3])
	p.Off += IntLen
	return val
}

// UnpackLong reads a big-endian uint64.
func (p *Packer) UnpackLong() uint64 {
	if !p.checkRead(LongLen) {
		return 0
	}
	var val uint64
	for i := 0; i < LongLen; i++ {
		val = val<<8 | uint64(p.Buf[p.Off+i])
	}
	p.Off += LongLen
	return val
}

// UnpackBool reads a single bool byte.
func (p *Packer) UnpackBool() bool {
	return p.UnpackByte() != 0
}

// UnpackFixedBytes reads exactly n bytes verbatim.
func (p *Packer) UnpackFixedBytes(n int) []byte {
	if !p.checkRead(n) {
		return nil
	}
	val := make([]byte, n)
	copy(val, p.Buf[p.Off:p.Off+n])
	p.Off += n
	return val
}

// UnpackBytes reads a 4-byte length prefix followed by that many bytes.
func (p *Packer) UnpackBytes() []byte {
	n := p.UnpackInt()
	return p.UnpackFixedBytes(int(n))
}
