package generator

// Options is a complete generator configuration.
type Options struct {
	Numbers           ClassSpec
	Letters           ClassSpec
	SpecialCharacters ClassSpec
	Uppercase         bool
	Length            int
}

// DefaultOptions returns the built-in defaults: every class enabled with its
// built-in characters, random uppercasing, 20 characters.
func DefaultOptions() Options {
	return Options{
		Numbers:           Custom(numberChars),
		Letters:           Custom(letterChars),
		SpecialCharacters: Custom(specialChars),
		Uppercase:         true,
		Length:            20,
	}
}

// Overrides is a partial configuration laid over Options.
// Unset class specs and nil pointers fall back to the defaults; explicit
// false and 0 are kept.
type Overrides struct {
	Numbers           ClassSpec
	Letters           ClassSpec
	SpecialCharacters ClassSpec
	Uppercase         *bool
	Length            *int
}

// SetClass replaces the override for c.
func (o *Overrides) SetClass(c Class, spec ClassSpec) {
	switch c {
	case Numbers:
		o.Numbers = spec
	case Letters:
		o.Letters = spec
	case SpecialCharacters:
		o.SpecialCharacters = spec
	}
}

// Resolved is a configuration ready for sampling. A nil class is disabled;
// an enabled class always holds at least one character.
type Resolved struct {
	Numbers           []rune
	Letters           []rune
	SpecialCharacters []rune
	Uppercase         bool
	Length            int
}

// Chars returns the characters of c, or nil if c is disabled.
func (r Resolved) Chars(c Class) []rune {
	switch c {
	case Numbers:
		return r.Numbers
	case Letters:
		return r.Letters
	case SpecialCharacters:
		return r.SpecialCharacters
	}
	return nil
}

// Active returns the enabled classes in sampling order.
func (r Resolved) Active() []Class {
	active := make([]Class, 0, len(Classes))
	for _, c := range Classes {
		if len(r.Chars(c)) > 0 {
			active = append(active, c)
		}
	}
	return active
}

// Options converts r back into a full configuration.
func (r Resolved) Options() Options {
	return Options{
		Numbers:           specOf(r.Numbers),
		Letters:           specOf(r.Letters),
		SpecialCharacters: specOf(r.SpecialCharacters),
		Uppercase:         r.Uppercase,
		Length:            r.Length,
	}
}

// Overrides converts r into an override set that pins every field.
func (r Resolved) Overrides() Overrides {
	uppercase, length := r.Uppercase, r.Length
	return Overrides{
		Numbers:           specOf(r.Numbers),
		Letters:           specOf(r.Letters),
		SpecialCharacters: specOf(r.SpecialCharacters),
		Uppercase:         &uppercase,
		Length:            &length,
	}
}

func specOf(chars []rune) ClassSpec {
	if len(chars) == 0 {
		return Disabled()
	}
	return Custom(string(chars))
}

// Resolve lays overrides over defaults. Each class is decided on its own:
// an explicit Disabled wins, Default takes the default's characters, Custom
// takes the given characters, and Unset keeps the default. Inputs are not
// modified.
func Resolve(defaults Options, overrides Overrides) Resolved {
	r := Resolved{
		Numbers:           resolveClass(Numbers, defaults.Numbers, overrides.Numbers),
		Letters:           resolveClass(Letters, defaults.Letters, overrides.Letters),
		SpecialCharacters: resolveClass(SpecialCharacters, defaults.SpecialCharacters, overrides.SpecialCharacters),
		Uppercase:         defaults.Uppercase,
		Length:            defaults.Length,
	}
	if overrides.Uppercase != nil {
		r.Uppercase = *overrides.Uppercase
	}
	if overrides.Length != nil {
		r.Length = *overrides.Length
	}
	return r
}

func resolveClass(c Class, def, override ClassSpec) []rune {
	switch override.Mode {
	case ClassDisabled:
		return nil
	case ClassDefault:
		if def.Mode == ClassCustom && def.Chars != "" {
			return split(def.Chars)
		}
		return split(c.Builtin())
	case ClassCustom:
		return split(override.Chars)
	}

	switch def.Mode {
	case ClassCustom:
		return split(def.Chars)
	case ClassDefault:
		return split(c.Builtin())
	}
	return nil
}

// split returns the characters of s as a fresh slice, or nil when s is empty.
func split(s string) []rune {
	if s == "" {
		return nil
	}
	return []rune(s)
}
