// Package validate holds the invariant checks shared by the folder store,
// the watchers, and the command layer.
package validate

import (
	"path/filepath"
	"strings"

	"github.com/pders01/folderclip/internal/apperr"
)

// MaxNameLength is the maximum length of a folder name in characters.
const MaxNameLength = 100

// forbiddenNameChars are characters that cannot appear in a folder name.
// The set matches what common filesystems reject in path components.
const forbiddenNameChars = `<>:"/\|?*`

// reservedNames are device names rejected regardless of case.
var reservedNames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {},
	"COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {},
	"LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
}

// FolderName validates a folder name and returns its trimmed form.
func FolderName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", apperr.Invalid("folder name must not be empty")
	}
	if len([]rune(trimmed)) > MaxNameLength {
		return "", apperr.Invalidf("folder name exceeds %d characters", MaxNameLength)
	}
	if i := strings.IndexAny(trimmed, forbiddenNameChars); i >= 0 {
		return "", apperr.Invalidf("folder name contains forbidden character %q", trimmed[i])
	}
	for _, r := range trimmed {
		if r < 0x20 || r == 0x7f {
			return "", apperr.Invalid("folder name contains control characters")
		}
	}
	if _, reserved := reservedNames[strings.ToUpper(trimmed)]; reserved {
		return "", apperr.Invalidf("folder name %q is a reserved device name", trimmed)
	}
	return trimmed, nil
}

// FileURI validates a file reference and returns its normalized form.
// Accepted inputs are absolute paths or file:// URIs; the normalized form
// is always a cleaned absolute path.
func FileURI(uri string) (string, error) {
	trimmed := strings.TrimSpace(uri)
	if trimmed == "" {
		return "", apperr.Invalid("file reference must not be empty")
	}
	trimmed = strings.TrimPrefix(trimmed, "file://")
	cleaned := filepath.Clean(trimmed)
	if !filepath.IsAbs(cleaned) {
		return "", apperr.Invalidf("file reference %q is not absolute", uri)
	}
	return cleaned, nil
}

// FileCount rejects additions that would push a folder past the file cap.
func FileCount(current, adding, max int) error {
	if max <= 0 {
		return nil
	}
	if current+adding > max {
		return apperr.Invalidf("folder would hold %d files, limit is %d", current+adding, max)
	}
	return nil
}
