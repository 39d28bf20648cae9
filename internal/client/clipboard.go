package client

import (
	"log"

	"golang.design/x/clipboard"
)

var clipboardReady bool

// InitClipboard initialises the system clipboard. Copy is disabled when it
// is not available, e.g. on a headless X server.
func InitClipboard() {
	if err := clipboard.Init(); err != nil {
		log.Printf("Clipboard unavailable: %v", err)
		return
	}
	clipboardReady = true
}

// CopyText puts text on the clipboard and reports whether it could.
func CopyText(text string) bool {
	if !clipboardReady {
		return false
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return true
}
