// Package clip maintains the ordered collection of copied fragments and
// keeps the system clipboard in sync with their aggregate payload.
package clip

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/pders01/folderclip/internal/apperr"
	"github.com/pders01/folderclip/internal/models"
)

// Delimiter separates fragment contents in the aggregate payload.
const Delimiter = "\n\n---\n\n"

// IntegrityMarker is appended (after a newline) to payloads written by
// Unstash only, so a later integrity check recognizes the engine's own
// output. Normal captures never append it: Stash verifies the clipboard
// before moving fragments aside, so only the restore path needs the
// guarantee.
const IntegrityMarker = "[folderclip:restored]"

// Engine aggregates copied fragments into one clipboard payload. Fragments
// are kept in insertion order and deduped by (BasePath, Format): a new
// capture replaces an existing fragment with the same key. A secondary
// temp slot holds a stashed snapshot of the collection.
type Engine struct {
	mu          sync.Mutex
	system      System
	fragments   []models.Fragment
	temp        []models.Fragment
	lastWritten string
	// detectedFiles are file paths recognized in externally produced
	// clipboard content; cleared together with the fragments.
	detectedFiles []string
}

// NewEngine creates an engine writing to the given clipboard.
func NewEngine(system System) *Engine {
	return &Engine{system: system}
}

// Capture merges frag into the collection, replacing any fragment with the
// same base path and format, and rewrites the aggregate payload to the
// clipboard.
func (e *Engine) Capture(frag models.Fragment) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mergeLocked(frag)
	return e.writePayloadLocked()
}

// CaptureFolder captures every file of a folder as a normal-format
// fragment. open resolves a URI to its text; per-file failures are logged
// and counted but do not abort the batch. With zero successes the engine
// reports a not-found condition instead of writing an empty payload.
func (e *Engine) CaptureFolder(folder *models.Folder, open func(uri string) (string, error)) (copied, failed int, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, uri := range folder.Files {
		text, openErr := open(uri)
		if openErr != nil {
			failed++
			log.Printf("clip: cannot open %s: %v", uri, openErr)
			continue
		}
		e.mergeLocked(models.Fragment{
			DisplayPath: uri,
			BasePath:    uri,
			Content:     fmt.Sprintf("%s:\n%s", uri, text),
			Format:      models.FormatNormal,
		})
		copied++
	}

	if copied == 0 {
		return 0, failed, apperr.NotFoundf("nothing to copy from folder %q", folder.Name)
	}
	return copied, failed, e.writePayloadLocked()
}

// Clear empties the fragment collection, writes an empty clipboard, and
// drops any detected file list.
func (e *Engine) Clear() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.fragments = nil
	e.detectedFiles = nil
	e.lastWritten = ""
	if err := e.system.WriteAll(""); err != nil {
		return apperr.IO("failed to write clipboard", err)
	}
	return nil
}

// Stash moves the current fragments into the temp slot and clears the live
// collection and clipboard. It refuses when no fragments are present or
// when the clipboard no longer matches what the engine last wrote (the
// user overwrote it from elsewhere).
func (e *Engine) Stash() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.fragments) == 0 {
		return apperr.NotFound("no copied fragments to stash")
	}

	current, err := e.system.ReadAll()
	if err != nil {
		return apperr.IO("failed to read clipboard", err)
	}
	if current != e.lastWritten {
		return apperr.Integrity("clipboard was modified outside the engine")
	}

	e.temp = e.fragments
	e.fragments = nil
	e.lastWritten = ""
	if err := e.system.WriteAll(""); err != nil {
		return apperr.IO("failed to write clipboard", err)
	}
	return nil
}

// Unstash replaces the live collection with the temp slot's contents and
// writes the aggregate payload plus the integrity marker. The temp slot
// survives: this is a copy-back, not a move, so repeated restores work.
func (e *Engine) Unstash() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.temp) == 0 {
		return apperr.NotFound("temp slot is empty")
	}

	e.fragments = append([]models.Fragment(nil), e.temp...)
	payload := e.payloadLocked() + "\n" + IntegrityMarker
	if err := e.system.WriteAll(payload); err != nil {
		return apperr.IO("failed to write clipboard", err)
	}
	e.lastWritten = payload
	return nil
}

// Fragments returns the live fragments in insertion order.
func (e *Engine) Fragments() []models.Fragment {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]models.Fragment(nil), e.fragments...)
}

// TempFragments returns the stashed fragments.
func (e *Engine) TempFragments() []models.Fragment {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]models.Fragment(nil), e.temp...)
}

// Payload returns the aggregate clipboard payload for the live fragments.
func (e *Engine) Payload() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.payloadLocked()
}

// SetDetectedFiles records file paths recognized in external clipboard
// content.
func (e *Engine) SetDetectedFiles(paths []string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.detectedFiles = append([]string(nil), paths...)
}

// DetectedFiles returns the recorded external file list.
func (e *Engine) DetectedFiles() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.detectedFiles...)
}

func (e *Engine) mergeLocked(frag models.Fragment) {
	key := frag.Key()
	for i, existing := range e.fragments {
		if existing.Key() == key {
			e.fragments = append(e.fragments[:i], e.fragments[i+1:]...)
			break
		}
	}
	e.fragments = append(e.fragments, frag)
}

func (e *Engine) payloadLocked() string {
	contents := make([]string, len(e.fragments))
	for i, frag := range e.fragments {
		contents[i] = frag.Content
	}
	return strings.Join(contents, Delimiter)
}

func (e *Engine) writePayloadLocked() error {
	payload := e.payloadLocked()
	if err := e.system.WriteAll(payload); err != nil {
		return apperr.IO("failed to write clipboard", err)
	}
	e.lastWritten = payload
	return nil
}
