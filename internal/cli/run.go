package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"

	"github.com/passgen/passgen-go/internal/generator"
)

const copiedMessage = "Password copied successfully!"

var ErrLengthTooLong = errors.New("password length exceeds the maximum")

// resolve applies overrides to defaults and enforces maxLength when it is
// positive.
func resolve(defaults generator.Options, overrides generator.Overrides, maxLength int) (generator.Resolved, error) {
	resolved := generator.Resolve(defaults, overrides)
	if maxLength > 0 && resolved.Length > maxLength {
		return generator.Resolved{}, fmt.Errorf("%w (%d)", ErrLengthTooLong, maxLength)
	}
	return resolved, nil
}

// Run generates cfg.Count passwords, writes one per line to w and, when
// requested, copies the last one to clip. A maxLength of zero or less
// disables the length cap.
func Run(cfg Config, defaults generator.Options, maxLength int, src generator.Source, clip Clipboard, w io.Writer) error {
	resolved, err := resolve(defaults, cfg.Overrides, maxLength)
	if err != nil {
		return err
	}

	passwords := make([]string, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		pw, err := generator.Sample(resolved, src)
		if err != nil {
			return err
		}
		passwords = append(passwords, pw)
	}

	for _, pw := range passwords {
		fmt.Fprintln(w, pw)
	}

	if cfg.Copy {
		copyPassword(clip, passwords[len(passwords)-1], w)
	}
	return nil
}

// copyPassword writes password to clip and confirms on w. A failed copy
// prints nothing.
func copyPassword(clip Clipboard, password string, w io.Writer) bool {
	if err := clip.WriteAll(password); err != nil {
		slog.Debug("clipboard write failed", "error", err)
		return false
	}
	color.New(color.FgGreen).Fprintln(w, copiedMessage)
	return true
}
