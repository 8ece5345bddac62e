package main

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"
)

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// copyToClipboard places text on the system clipboard. The clipboard is
// initialized on first use; headless systems report an error every call.
func copyToClipboard(text string) error {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		return fmt.Errorf("clipboard: %w", clipboardErr)
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
