package prompt

import "github.com/atotto/clipboard"

// Copier writes text to the system clipboard.
type Copier interface {
	Copy(text string) error
}

// CopierFunc adapts a function to Copier.
type CopierFunc func(string) error

// Copy implements Copier.
func (f CopierFunc) Copy(text string) error {
	return f(text)
}

// SystemClipboard is the Copier backed by the host clipboard utilities.
var SystemClipboard Copier = CopierFunc(clipboard.WriteAll)
