package smolstr

import (
	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/smolstr/pkg/buf16"
	"github.com/rawbytedev/smolstr/pkg/buf24"
)

// Str16 and Str24 marshal as plain strings. encoding/json picks the
// text interfaces up automatically, including for map keys.

// MarshalText implements encoding.TextMarshaler.
func (s Str16) MarshalText() ([]byte, error) {
	return []byte(s.Str()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The previous value
// is released.
func (s *Str16) UnmarshalText(text []byte) error {
	s.Free()
	*s = Str16{buf: buf16.New(text)}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s Str16) MarshalYAML() (any, error) {
	return s.StringCopy(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The previous value is
// released.
func (s *Str16) UnmarshalYAML(value *yaml.Node) error {
	var text string
	if err := value.Decode(&text); err != nil {
		return err
	}
	s.Free()
	*s = NewStr16(text)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Str24) MarshalText() ([]byte, error) {
	return []byte(s.Str()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The previous value
// is released.
func (s *Str24) UnmarshalText(text []byte) error {
	s.Free()
	*s = Str24{buf: buf24.New(text)}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s Str24) MarshalYAML() (any, error) {
	return s.StringCopy(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The previous value is
// released.
func (s *Str24) UnmarshalYAML(value *yaml.Node) error {
	var text string
	if err := value.Decode(&text); err != nil {
		return err
	}
	s.Free()
	*s = NewStr24(text)
	return nil
}
