package generator

import (
	"errors"
	"strings"
	"unicode"
)

// maxPrealloc bounds the up-front buffer; longer passwords grow as they are built.
const maxPrealloc = 4096

var (
	ErrInvalidLength            = errors.New("password length must be a positive number")
	ErrNoActiveCharacterClasses = errors.New("at least one character class must be enabled")
)

// Sample builds a password from a resolved configuration. For every
// position it picks an enabled class, then a character of that class, and,
// when uppercasing is on, flips a coin to uppercase it. Draws are taken from
// src in that order.
//
// Nothing is drawn from src when the configuration is rejected.
func Sample(cfg Resolved, src Source) (string, error) {
	if cfg.Length <= 0 {
		return "", ErrInvalidLength
	}

	active := cfg.Active()
	if len(active) == 0 {
		return "", ErrNoActiveCharacterClasses
	}

	var b strings.Builder
	b.Grow(min(cfg.Length, maxPrealloc))

	for range cfg.Length {
		chars := cfg.Chars(active[Between(src, 0, float64(len(active)-1))])
		ch := chars[Between(src, 0, float64(len(chars)-1))]

		if cfg.Uppercase && Between(src, 0, 1) == 1 {
			ch = unicode.ToUpper(ch)
		}
		b.WriteRune(ch)
	}

	return b.String(), nil
}

// Generate resolves overrides against defaults and samples a password.
func Generate(defaults Options, overrides Overrides, src Source) (string, error) {
	return Sample(Resolve(defaults, overrides), src)
}
