package clip

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pders01/folderclip/internal/apperr"
	"github.com/pders01/folderclip/internal/models"
)

// State is the engine's persisted form, so fragment collections survive
// across command invocations. The live clipboard is not part of the state;
// LastWritten is what the integrity check compares it against.
type State struct {
	Fragments     []models.Fragment `json:"fragments"`
	Temp          []models.Fragment `json:"temp,omitempty"`
	LastWritten   string            `json:"lastWritten"`
	DetectedFiles []string          `json:"detectedFiles,omitempty"`
}

// LoadState reads the engine state from path. A missing file yields the
// zero state; a corrupt file degrades to the zero state as well, matching
// the folder store's read policy.
func LoadState(path string) State {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			warnf("Warning: failed to read clipboard state: %v\n", err)
		}
		return State{}
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		warnf("Warning: clipboard state is corrupt, starting empty: %v\n", err)
		return State{}
	}
	return st
}

// SaveState writes the engine state to path.
func SaveState(path string, st State) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return apperr.IO("failed to marshal clipboard state", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperr.IO("failed to create state directory", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return apperr.IO("failed to write clipboard state", err)
	}
	return nil
}

// State captures the engine's current state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return State{
		Fragments:     append([]models.Fragment(nil), e.fragments...),
		Temp:          append([]models.Fragment(nil), e.temp...),
		LastWritten:   e.lastWritten,
		DetectedFiles: append([]string(nil), e.detectedFiles...),
	}
}

// RestoreState replaces the engine's state wholesale.
func (e *Engine) RestoreState(st State) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.fragments = append([]models.Fragment(nil), st.Fragments...)
	e.temp = append([]models.Fragment(nil), st.Temp...)
	e.lastWritten = st.LastWritten
	e.detectedFiles = append([]string(nil), st.DetectedFiles...)
}

func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
