// Package buf24 implements an immutable byte buffer packed into exactly
// 24 bytes.
//
// Content up to 23 bytes is stored inline in the value itself. Longer
// content lives either in a reference counted shared block or in caller
// provided memory that outlives every user of the buffer. All three
// variants expose the same read-only byte view, and cloning is always a
// 24 byte copy plus at most one atomic increment.
//
// The package is a wider sibling of buf16; the two do not depend on each
// other and differ only in total size, inline capacity and where the
// discriminant byte sits.
package buf24

import (
	"bytes"
	"encoding/binary"
	"unsafe"

	"github.com/rawbytedev/smolstr/internal/shared"
)

const (
	// Size is the exact in-memory size of a Buf in bytes.
	Size = 24
	// InlineCap is the longest content stored without a pointer.
	InlineCap = Size - 1
)

// The discriminant lives in the low three bits of the first byte, with
// the inline length above it; the remaining 23 bytes are the inline
// payload. Pointer variants zero the payload area except for the
// address in bytes 8..16 and the length in bytes 16..24, both little
// endian. Every variant sets a tag bit, therefore the all-zero
// representation is never produced and the zero Buf doubles as "no
// value" at no extra width.
const (
	tagInline byte = 0b001
	tagShared byte = 0b010
	tagStatic byte = 0b100

	tagMask  = 0b111
	lenShift = 3
)

// Buf is an immutable byte buffer in a fixed 24 byte value.
//
// The zero value represents the absence of a buffer; no constructor
// returns it. Buf is deliberately not comparable with ==, since two
// buffers holding equal content may differ in representation. Use Equal.
type Buf struct {
	_ [0]chan int
	w [3]uint64
}

// Layout is load-bearing: these fail to compile if Buf ever deviates
// from 24 bytes at pointer alignment.
const (
	_ = Size - unsafe.Sizeof(Buf{})
	_ = unsafe.Sizeof(Buf{}) - Size
	_ = unsafe.Alignof(Buf{}) - 8
	_ = 8 - unsafe.Alignof(Buf{})
)

// NewInline stores p directly inside the value.
//
// It panics if len(p) exceeds InlineCap; use New when the length is not
// known to be small.
func NewInline(p []byte) Buf {
	if len(p) > InlineCap {
		panic("buf24: NewInline content exceeds 23 bytes")
	}
	var b Buf
	raw := (*[Size]byte)(unsafe.Pointer(&b))
	copy(raw[1:], p)
	raw[0] = byte(len(p))<<lenShift | tagInline
	return b
}

// NewStatic borrows p without copying or allocating.
//
// The caller promises that the backing memory stays valid and unchanged
// for as long as any buffer built from it (or any clone) is in use. The
// promise is not checked; it holds for data reachable from compile time
// constants or otherwise pinned for the process lifetime. Content that
// fits inline is copied down instead, so no pointer is kept for cheap
// data.
func NewStatic(p []byte) Buf {
	if len(p) <= InlineCap {
		return NewInline(p)
	}
	return pointerBuf(tagStatic, uintptr(unsafe.Pointer(unsafe.SliceData(p))), len(p))
}

// New copies p into the cheapest suitable variant: inline when it fits,
// otherwise a fresh reference counted block sized exactly to the content.
func New(p []byte) Buf {
	if len(p) <= InlineCap {
		return NewInline(p)
	}
	return pointerBuf(tagShared, shared.New(p).Addr(), len(p))
}

// FromShared adopts blk without copying, consuming one reference unit.
//
// Content that fits inline is copied down and the adopted reference
// released immediately; short data never stays heap backed.
func FromShared(blk *shared.Block) Buf {
	if blk.Len() <= InlineCap {
		b := NewInline(blk.Bytes())
		blk.Release()
		return b
	}
	return pointerBuf(tagShared, blk.Addr(), blk.Len())
}

func pointerBuf(tag byte, addr uintptr, n int) Buf {
	var b Buf
	raw := (*[Size]byte)(unsafe.Pointer(&b))
	raw[0] = tag
	binary.LittleEndian.PutUint64(raw[8:16], uint64(addr))
	binary.LittleEndian.PutUint64(raw[16:24], uint64(n))
	return b
}

func (b Buf) raw() *[Size]byte {
	return (*[Size]byte)(unsafe.Pointer(&b))
}

func (b Buf) tag() byte { return b.raw()[0] & tagMask }

func (b Buf) addr() uintptr {
	return uintptr(binary.LittleEndian.Uint64(b.raw()[8:16]))
}

// Len returns the content length in bytes.
func (b Buf) Len() int {
	if b.tag() == tagInline {
		return int(b.raw()[0] >> lenShift)
	}
	return int(binary.LittleEndian.Uint64(b.raw()[16:24]))
}

// IsEmpty reports whether the content has length zero.
func (b Buf) IsEmpty() bool { return b.Len() == 0 }

// IsHeapAllocated reports whether the content lives in a reference
// counted shared block.
func (b Buf) IsHeapAllocated() bool { return b.tag() == tagShared }

// IsNil reports whether b is the zero value.
func (b Buf) IsNil() bool { return b.w == [3]uint64{} }

// Bytes returns a read-only view over exactly Len bytes.
//
// The view is valid as long as b is: for shared content until the last
// reference is released, for static content as long as the caller's
// original region.
func (b Buf) Bytes() []byte {
	n := b.Len()
	switch b.tag() {
	case tagInline:
		return b.raw()[1 : 1+n : Size]
	case tagShared:
		return shared.FromAddr(b.addr()).Bytes()[:n:n]
	default:
		return unsafe.Slice((*byte)(unsafe.Pointer(b.addr())), n)
	}
}

// Shared returns the backing block of a heap variant without taking a
// reference, or nil for the other variants.
func (b Buf) Shared() *shared.Block {
	if b.tag() != tagShared {
		return nil
	}
	return shared.FromAddr(b.addr())
}

// Clone returns a buffer with the same content. A heap backed buffer
// takes one extra reference; the other variants are a plain 24 byte
// copy.
func (b Buf) Clone() Buf {
	if blk := b.Shared(); blk != nil {
		blk.Retain()
	}
	return b
}

// Free releases b's reference to its backing block, if any. The Free
// that drops the last reference lets the block's memory be reclaimed;
// using a heap backed buffer or any view of it after that is undefined.
// Free on inline and static variants is a no-op.
func (b Buf) Free() {
	if blk := b.Shared(); blk != nil {
		blk.Release()
	}
}

// Equal reports content equality. Buffers holding the same bytes are
// equal regardless of variant; identical representations (same inline
// bytes, or same block and length) short-circuit without touching the
// content.
func (b Buf) Equal(o Buf) bool {
	if b.w == o.w {
		return true
	}
	return bytes.Equal(b.Bytes(), o.Bytes())
}
