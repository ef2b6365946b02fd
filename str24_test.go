package smolstr

import (
	"strings"
	"testing"
	"testing/quick"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/smolstr/pkg/buf24"
)

var longText24 = "a constant string that clearly exceeds the 23 byte inline capacity"

func TestStr24Size(t *testing.T) {
	assert.EqualValues(t, 24, unsafe.Sizeof(Str24{}))
}

func TestStr24ZeroValue(t *testing.T) {
	var s Str24
	assert.Zero(t, s.Len())
	assert.True(t, s.IsEmpty())
	assert.Equal(t, "", s.Str())
	assert.True(t, s.Equal(NewStr24("")))
	s.Free() // no-op
}

func TestStr24InlineConstants(t *testing.T) {
	for _, text := range []string{"", "A", "HELLO", "ABCDEFGHIZKLMNOPQRSTUVW"} {
		s := NewStr24Inline(text)
		assert.True(t, s.Equal(NewStr24(text)), "text %q", text)
		assert.False(t, s.IsHeapAllocated())
	}

	assert.Panics(t, func() {
		NewStr24Inline("twenty-four bytes here!!")
	})
}

func TestStr24RoundTrip(t *testing.T) {
	prop := func(text string) bool {
		s := NewStr24(text)
		defer s.Free()
		return s.Str() == text &&
			s.Len() == len(text) &&
			s.IsEmpty() == (len(text) == 0) &&
			s.IsHeapAllocated() == (len(text) > buf24.InlineCap)
	}
	require.NoError(t, quick.Check(prop, nil))
}

func TestStr24RoundTripWhitespace(t *testing.T) {
	for _, text := range []string{
		" ", "          ", "\n\n\n", strings.Repeat(" \n", 30),
	} {
		s := NewStr24(text)
		assert.Equal(t, text, s.Str())
		assert.Equal(t, len(text), s.Len())
		s.Free()
	}
}

func TestStr24StaticAliasesConstant(t *testing.T) {
	s := NewStr24Static(longText24)
	assert.False(t, s.IsHeapAllocated())
	assert.Equal(t, longText24, s.Str())
	// The view points straight at the constant's data.
	assert.Equal(t, unsafe.StringData(longText24), unsafe.StringData(s.Str()))
}

func TestFromStrings24(t *testing.T) {
	prop := func(parts []string) bool {
		joined := strings.Join(parts, "")
		s := FromStrings24(parts...)
		defer s.Free()
		return s.Str() == joined &&
			s.IsHeapAllocated() == (len(joined) > buf24.InlineCap)
	}
	require.NoError(t, quick.Check(prop, nil))

	assert.Equal(t, "", FromStrings24().Str())
}

func TestFromRunes24(t *testing.T) {
	// Multi-byte content around the inline boundary.
	examples := []struct {
		text string
		heap bool
	}{
		{"if", false},
		{"for", false},
		{"impl", false},
		{"パーティーへ行かないか", true},
		{"パーティーへ行か", true},
		{"パーティーへ行_", false},
		{"和製漢語", false},
		{"部落格", false},
		{"사회과학원 어학연구소", true},
	}
	for _, ex := range examples {
		s := FromRunes24([]rune(ex.text))
		assert.Equal(t, ex.text, s.Str())
		assert.Equal(t, ex.heap, s.IsHeapAllocated(), "text %q", ex.text)
		s.Free()
	}
}

func TestStr24CloneSharesContent(t *testing.T) {
	s := NewStr24(longText24)
	c := s.Clone()
	assert.True(t, s.Equal(c))
	// One backing allocation for both.
	assert.Equal(t, unsafe.StringData(s.Str()), unsafe.StringData(c.Str()))
	c.Free()
	s.Free()
}

func TestStr24Compare(t *testing.T) {
	a := NewStr24("aaa")
	b := NewStr24("aab")
	assert.Negative(t, a.Compare(b))
	assert.Positive(t, b.Compare(a))
	assert.Zero(t, a.Compare(a.Clone()))

	assert.True(t, a.EqualString("aaa"))
	assert.False(t, a.EqualString("aab"))
}

func FuzzStr24RoundTrip(f *testing.F) {
	f.Add("")
	f.Add("short")
	f.Add("exactly twenty-three by")
	f.Add(longText24)
	f.Fuzz(func(t *testing.T, text string) {
		s := NewStr24(text)
		defer s.Free()
		require.Equal(t, text, s.Str())
		require.Equal(t, len(text), s.Len())
		require.Equal(t, len(text) > buf24.InlineCap, s.IsHeapAllocated())
	})
}
