package smolstr

import (
	"sync"

	"github.com/rawbytedev/smolstr/pkg/buf16"
	"github.com/rawbytedev/smolstr/pkg/buf24"
)

// Intern16 deduplicates heap backed Str16 values so repeated equal
// strings share one allocation. Interners are explicit objects, not
// process globals; independent interners can coexist and each one can
// be released as a unit.
//
// Strings short enough to be inline are returned directly and never
// enter the interner, since they carry no allocation to share.
type Intern16 struct {
	mu  sync.Mutex
	set map[string]Str16
}

// NewIntern16 constructs an empty interner.
func NewIntern16() *Intern16 {
	return &Intern16{set: make(map[string]Str16)}
}

// Intern returns a canonical string for text. The result holds its own
// reference; callers Free it independently of the interner.
func (in *Intern16) Intern(text string) Str16 {
	if len(text) <= buf16.InlineCap {
		return NewStr16(text)
	}

	in.mu.Lock()
	defer in.mu.Unlock()
	if s, ok := in.set[text]; ok {
		return s.Clone()
	}

	s := NewStr16(text)
	// The key aliases the entry's own shared block, which the entry's
	// reference keeps alive for as long as it stays in the map.
	in.set[s.Str()] = s
	return s.Clone()
}

// Len reports the number of interned heap strings.
func (in *Intern16) Len() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.set)
}

// Reset releases every interned string and empties the interner.
// Strings previously handed out stay valid through their own
// references.
func (in *Intern16) Reset() {
	in.mu.Lock()
	defer in.mu.Unlock()
	for _, s := range in.set {
		s.Free()
	}
	in.set = make(map[string]Str16)
}

// Intern24 deduplicates heap backed Str24 values so repeated equal
// strings share one allocation. See Intern16 for semantics.
type Intern24 struct {
	mu  sync.Mutex
	set map[string]Str24
}

// NewIntern24 constructs an empty interner.
func NewIntern24() *Intern24 {
	return &Intern24{set: make(map[string]Str24)}
}

// Intern returns a canonical string for text. The result holds its own
// reference; callers Free it independently of the interner.
func (in *Intern24) Intern(text string) Str24 {
	if len(text) <= buf24.InlineCap {
		return NewStr24(text)
	}

	in.mu.Lock()
	defer in.mu.Unlock()
	if s, ok := in.set[text]; ok {
		return s.Clone()
	}

	s := NewStr24(text)
	in.set[s.Str()] = s
	return s.Clone()
}

// Len reports the number of interned heap strings.
func (in *Intern24) Len() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.set)
}

// Reset releases every interned string and empties the interner.
// Strings previously handed out stay valid through their own
// references.
func (in *Intern24) Reset() {
	in.mu.Lock()
	defer in.mu.Unlock()
	for _, s := range in.set {
		s.Free()
	}
	in.set = make(map[string]Str24)
}
