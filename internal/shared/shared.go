// Package shared manages the reference counted heap blocks that back the
// pointer variants of buf16 and buf24 values.
//
// A block's address is stowed inside a buffer value as a plain integer,
// which hides it from the garbage collector. The package therefore keeps
// every live block in a registry until its reference count drops to zero;
// removing the registry entry is what makes the memory collectable again.
// Go's heap does not move objects, so a stowed address stays valid for as
// long as a reference is held.
package shared

import (
	"sync"
	"sync/atomic"
	"unsafe"
)

// Block is a shared immutable byte allocation. A freshly constructed
// block holds one reference.
type Block struct {
	refs atomic.Int64
	data []byte
}

var (
	mu   sync.Mutex
	live = make(map[*Block]struct{})

	allocs atomic.Uint64
	frees  atomic.Uint64
)

// New copies p into a fresh block sized exactly to the content.
func New(p []byte) *Block {
	return Adopt(append([]byte(nil), p...))
}

// Adopt wraps data in a block without copying. The caller must not
// mutate data afterwards.
func Adopt(data []byte) *Block {
	b := &Block{data: data}
	b.refs.Store(1)
	allocs.Add(1)
	mu.Lock()
	live[b] = struct{}{}
	mu.Unlock()
	return b
}

// Bytes returns the block's content. The slice must not be mutated.
func (b *Block) Bytes() []byte { return b.data }

// Len returns the content length in bytes.
func (b *Block) Len() int { return len(b.data) }

// Refs returns the current reference count.
func (b *Block) Refs() int64 { return b.refs.Load() }

// Retain takes one additional reference.
func (b *Block) Retain() { b.refs.Add(1) }

// Release drops one reference. The release that brings the count to
// zero removes the block from the registry; its memory is then
// unreachable and any stowed address dangling.
func (b *Block) Release() {
	if b.refs.Add(-1) > 0 {
		return
	}
	frees.Add(1)
	mu.Lock()
	delete(live, b)
	mu.Unlock()
}

// Addr returns the block's address as an integer, suitable for stowing
// in a non-pointer word.
func (b *Block) Addr() uintptr { return uintptr(unsafe.Pointer(b)) }

// FromAddr is the inverse of Addr. The caller must hold a reference to
// the block; the registry then guarantees the address is still live.
func FromAddr(addr uintptr) *Block {
	return (*Block)(unsafe.Pointer(addr))
}

// Live reports the number of blocks currently in the registry.
func Live() int {
	mu.Lock()
	defer mu.Unlock()
	return len(live)
}

// Counters reports the total number of blocks allocated and released
// since process start. Intended for allocation accounting in tests.
func Counters() (alloc, free uint64) {
	return allocs.Load(), frees.Load()
}
