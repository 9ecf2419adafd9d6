package clip

import "github.com/atotto/clipboard"

// System is the single shared clipboard resource. The engine is its sole
// intended writer, but the user or another application can overwrite it at
// any time, which the integrity check exists to detect.
type System interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type systemClipboard struct{}

// NewSystemClipboard returns the real OS clipboard.
func NewSystemClipboard() System {
	return systemClipboard{}
}

func (systemClipboard) ReadAll() (string, error) {
	return clipboard.ReadAll()
}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
