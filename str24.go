package smolstr

import (
	"strings"
	"unicode/utf8"

	"github.com/rawbytedev/smolstr/pkg/buf24"
)

// Str24 is an immutable string in a 24 byte value, the width of a Go
// string header plus one word.
//
// Strings up to 23 bytes are stored inline; longer strings are
// reference counted on the heap unless explicitly borrowed via
// NewStr24Static. The zero value is a usable empty string. Str24 is not
// comparable with ==; use Equal, which compares content across storage
// variants.
type Str24 struct {
	buf buf24.Buf
}

// NewStr24 copies s into the cheapest representation: inline when it
// fits, a shared heap block otherwise.
func NewStr24(s string) Str24 {
	return Str24{buf: buf24.New(stringBytes(s))}
}

// NewStr24Inline stores s inline. It panics if s is longer than 23
// bytes.
func NewStr24Inline(s string) Str24 {
	return Str24{buf: buf24.NewInline(stringBytes(s))}
}

// NewStr24Static borrows s without copying or allocating. The caller
// promises the string data outlives every use of the result, which
// holds for compile time constants.
func NewStr24Static(s string) Str24 {
	return Str24{buf: buf24.NewStatic(stringBytes(s))}
}

// FromStrings24 concatenates parts, producing an inline string with no
// intermediate allocation whenever the joined content fits.
func FromStrings24(parts ...string) Str24 {
	var buf [buf24.InlineCap]byte
	n := 0
	for i, part := range parts {
		if n+len(part) > buf24.InlineCap {
			var sb strings.Builder
			sb.Grow(n + len(part))
			sb.Write(buf[:n])
			sb.WriteString(part)
			for _, rest := range parts[i+1:] {
				sb.WriteString(rest)
			}
			return NewStr24(sb.String())
		}
		n += copy(buf[n:], part)
	}
	return Str24{buf: buf24.NewInline(buf[:n])}
}

// FromRunes24 builds a string from runes, staying inline when the UTF-8
// encoding fits. Invalid runes are replaced with utf8.RuneError, as in
// strings.Builder.
func FromRunes24(runes []rune) Str24 {
	var buf [buf24.InlineCap]byte
	n := 0
	for i, r := range runes {
		size := utf8.RuneLen(r)
		if size < 0 {
			r, size = utf8.RuneError, utf8.RuneLen(utf8.RuneError)
		}
		if n+size > buf24.InlineCap {
			var sb strings.Builder
			sb.Write(buf[:n])
			for _, rest := range runes[i:] {
				sb.WriteRune(rest)
			}
			return NewStr24(sb.String())
		}
		n += utf8.EncodeRune(buf[n:], r)
	}
	return Str24{buf: buf24.NewInline(buf[:n])}
}

// Str returns a zero-copy view of the content. The view is valid as
// long as s is.
func (s Str24) Str() string { return bytesString(s.buf.Bytes()) }

// String implements fmt.Stringer.
func (s Str24) String() string { return s.Str() }

// StringCopy returns the content in a newly allocated string.
func (s Str24) StringCopy() string { return string(s.buf.Bytes()) }

// Bytes returns a read-only zero-copy view of the content.
func (s Str24) Bytes() []byte { return s.buf.Bytes() }

// Len returns the content length in bytes.
func (s Str24) Len() int { return s.buf.Len() }

// IsEmpty reports whether the string is empty.
func (s Str24) IsEmpty() bool { return s.buf.IsEmpty() }

// IsHeapAllocated reports whether the content lives in a reference
// counted heap block.
func (s Str24) IsHeapAllocated() bool { return s.buf.IsHeapAllocated() }

// Clone returns a string sharing the same content, taking one extra
// reference when the content is heap backed.
func (s Str24) Clone() Str24 { return Str24{buf: s.buf.Clone()} }

// Free releases the string's reference to its backing block, if any.
// Using a heap backed string after its last Free is undefined; Free on
// inline and static strings is a no-op.
func (s Str24) Free() { s.buf.Free() }

// Equal reports content equality regardless of storage variant.
func (s Str24) Equal(o Str24) bool { return s.buf.Equal(o.buf) }

// EqualString reports whether s holds exactly t.
func (s Str24) EqualString(t string) bool { return s.Str() == t }

// Compare orders two strings lexicographically, like strings.Compare.
func (s Str24) Compare(o Str24) int { return strings.Compare(s.Str(), o.Str()) }
