package generator

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	numberChars  = "123456789"
	letterChars  = "abcdefghijklmnopqrstuvwxyz"
	specialChars = "#@$^*;-_ç\"'`\\/<>&~{}()[]|%ù²"
)

var ErrInvalidClassSpec = errors.New("character class must be a boolean or a string of characters")

// Class identifies one of the character classes a password draws from.
type Class int

const (
	Numbers Class = iota
	Letters
	SpecialCharacters
)

// Classes lists every class in sampling order.
var Classes = []Class{Numbers, Letters, SpecialCharacters}

func (c Class) String() string {
	switch c {
	case Numbers:
		return "numbers"
	case Letters:
		return "letters"
	case SpecialCharacters:
		return "specialCharacters"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// Builtin returns the built-in character set of the class.
func (c Class) Builtin() string {
	switch c {
	case Numbers:
		return numberChars
	case Letters:
		return letterChars
	case SpecialCharacters:
		return specialChars
	}
	return ""
}

// ClassMode tells how a class takes part in generation.
type ClassMode uint8

const (
	ClassUnset ClassMode = iota
	ClassDisabled
	ClassDefault
	ClassCustom
)

// ClassSpec is the per-class setting: unset, disabled, enabled with the
// default characters, or enabled with a custom set of characters.
// The zero value is unset.
type ClassSpec struct {
	Mode  ClassMode
	Chars string
}

// Disabled excludes the class.
func Disabled() ClassSpec { return ClassSpec{Mode: ClassDisabled} }

// Enabled includes the class with its default characters.
func Enabled() ClassSpec { return ClassSpec{Mode: ClassDefault} }

// Custom includes the class with exactly the given characters.
// An empty string leaves nothing to draw from, so it behaves as Disabled.
func Custom(chars string) ClassSpec { return ClassSpec{Mode: ClassCustom, Chars: chars} }

// IsZero reports whether s is unset.
func (s ClassSpec) IsZero() bool { return s.Mode == ClassUnset }

func (s ClassSpec) String() string {
	switch s.Mode {
	case ClassDisabled:
		return "false"
	case ClassDefault:
		return "true"
	case ClassCustom:
		return s.Chars
	}
	return ""
}

// ParseClassSpec reads the text form used by flags and environment
// variables. Recognised keywords select Default or Disabled; any other
// text is taken verbatim as a custom character set.
func ParseClassSpec(text string) ClassSpec {
	if text == "" {
		return ClassSpec{}
	}
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "true", "on", "yes", "default":
		return Enabled()
	case "false", "off", "no", "none":
		return Disabled()
	}
	return Custom(text)
}

// MarshalJSON encodes s the way JSON clients send it:
// false, true, a string, or null when unset.
func (s ClassSpec) MarshalJSON() ([]byte, error) {
	switch s.Mode {
	case ClassDisabled:
		return []byte("false"), nil
	case ClassDefault:
		return []byte("true"), nil
	case ClassCustom:
		return json.Marshal(s.Chars)
	}
	return []byte("null"), nil
}

// UnmarshalJSON accepts false, true, a string or null.
func (s *ClassSpec) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidClassSpec, err)
	}

	switch v := v.(type) {
	case nil:
		*s = ClassSpec{}
	case bool:
		if v {
			*s = Enabled()
		} else {
			*s = Disabled()
		}
	case string:
		*s = Custom(v)
	default:
		return ErrInvalidClassSpec
	}
	return nil
}
