package smolstr

import (
	"testing"
	"testing/quick"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/smolstr/pkg/buf16"
)

var longText16 = "a constant string that clearly exceeds the 15 byte inline capacity"

func TestStr16Size(t *testing.T) {
	assert.EqualValues(t, 16, unsafe.Sizeof(Str16{}))
}

func TestStr16ZeroValue(t *testing.T) {
	var s Str16
	assert.Zero(t, s.Len())
	assert.True(t, s.IsEmpty())
	assert.Equal(t, "", s.Str())
	assert.True(t, s.Equal(NewStr16("")))
	s.Free() // no-op
}

func TestStr16InlineConstants(t *testing.T) {
	for _, text := range []string{"", "A", "HELLO", "ABCDEFGHIZKLMNO"} {
		s := NewStr16Inline(text)
		assert.True(t, s.Equal(NewStr16(text)), "text %q", text)
		assert.False(t, s.IsHeapAllocated())
	}

	assert.Panics(t, func() {
		NewStr16Inline("sixteen bytes!!!")
	})
}

func TestStr16RoundTrip(t *testing.T) {
	prop := func(text string) bool {
		s := NewStr16(text)
		defer s.Free()
		return s.Str() == text &&
			s.Len() == len(text) &&
			s.IsEmpty() == (len(text) == 0) &&
			s.IsHeapAllocated() == (len(text) > buf16.InlineCap)
	}
	require.NoError(t, quick.Check(prop, nil))
}

func TestStr16StaticAliasesConstant(t *testing.T) {
	s := NewStr16Static(longText16)
	assert.False(t, s.IsHeapAllocated())
	assert.Equal(t, longText16, s.Str())
	// The view points straight at the constant's data.
	assert.Equal(t, unsafe.StringData(longText16), unsafe.StringData(s.Str()))
}

func TestFromStrings16(t *testing.T) {
	s := FromStrings16("foo", "bar")
	assert.Equal(t, "foobar", s.Str())
	assert.False(t, s.IsHeapAllocated())

	spill := FromStrings16("0123456789", "0123456789")
	defer spill.Free()
	assert.Equal(t, "01234567890123456789", spill.Str())
	assert.True(t, spill.IsHeapAllocated())

	assert.Equal(t, "", FromStrings16().Str())
}

func TestFromRunes16(t *testing.T) {
	s := FromRunes16([]rune("héllo"))
	assert.Equal(t, "héllo", s.Str())
	assert.False(t, s.IsHeapAllocated())

	spill := FromRunes16([]rune("パーティーへ行か"))
	defer spill.Free()
	assert.Equal(t, "パーティーへ行か", spill.Str())
	assert.True(t, spill.IsHeapAllocated())
}

func TestStr16Compare(t *testing.T) {
	a := NewStr16("aaa")
	b := NewStr16("aab")
	assert.Negative(t, a.Compare(b))
	assert.Positive(t, b.Compare(a))
	assert.Zero(t, a.Compare(a.Clone()))

	assert.True(t, a.EqualString("aaa"))
	assert.False(t, a.EqualString("aab"))
}
