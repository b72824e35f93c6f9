package cli

import "github.com/atotto/clipboard"

// Clipboard receives copied passwords.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// SystemClipboard returns the operating system clipboard.
func SystemClipboard() Clipboard { return systemClipboard{} }
