package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempWorkspace is a temporary directory standing in for an editor
// workspace during tests.
type TempWorkspace struct {
	Path string
	T    *testing.T
}

// NewTempWorkspace creates a temporary workspace directory.
func NewTempWorkspace(t *testing.T) *TempWorkspace {
	t.Helper()
	return &TempWorkspace{Path: t.TempDir(), T: t}
}

// CreateFile creates a file (and parent directories) in the workspace and
// returns its absolute path.
func (w *TempWorkspace) CreateFile(name, content string) string {
	w.T.Helper()
	path := filepath.Join(w.Path, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		w.T.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		w.T.Fatalf("failed to create file: %v", err)
	}
	return path
}

// CreateDir creates a directory in the workspace and returns its absolute
// path.
func (w *TempWorkspace) CreateDir(name string) string {
	w.T.Helper()
	path := filepath.Join(w.Path, name)
	if err := os.MkdirAll(path, 0755); err != nil {
		w.T.Fatalf("failed to create directory: %v", err)
	}
	return path
}

// Rename moves a file or directory inside the workspace and returns the
// new absolute path.
func (w *TempWorkspace) Rename(oldName, newName string) string {
	w.T.Helper()
	oldPath := filepath.Join(w.Path, oldName)
	newPath := filepath.Join(w.Path, newName)
	if err := os.Rename(oldPath, newPath); err != nil {
		w.T.Fatalf("failed to rename %s to %s: %v", oldName, newName, err)
	}
	return newPath
}

// Remove deletes a file or directory tree in the workspace.
func (w *TempWorkspace) Remove(name string) {
	w.T.Helper()
	if err := os.RemoveAll(filepath.Join(w.Path, name)); err != nil {
		w.T.Fatalf("failed to remove %s: %v", name, err)
	}
}
