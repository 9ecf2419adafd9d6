package watch

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type fakeReloadStore struct {
	path    string
	reloads atomic.Int32

	mu        sync.Mutex
	lastLocal time.Time
}

func (s *fakeReloadStore) Reload() error {
	s.reloads.Add(1)
	return nil
}

func (s *fakeReloadStore) LastLocalWrite() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastLocal
}

func (s *fakeReloadStore) Path() string {
	return s.path
}

func (s *fakeReloadStore) markLocalWrite() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastLocal = time.Now()
}

func newWatchedDocument(t *testing.T) (*fakeReloadStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "folders.json")
	if err := os.WriteFile(path, []byte("[]"), 0644); err != nil {
		t.Fatalf("failed to seed document: %v", err)
	}
	return &fakeReloadStore{path: path}, path
}

func TestExternalBurstCollapsesToOneReload(t *testing.T) {
	store, path := newWatchedDocument(t)

	var refreshes atomic.Int32
	w, err := NewDocumentWatcher(store, 200*time.Millisecond, 50*time.Millisecond, func() {
		refreshes.Add(1)
	})
	if err != nil {
		t.Fatalf("NewDocumentWatcher failed: %v", err)
	}
	defer w.Close()

	// Burst of external writes well inside the debounce window.
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte("[]"), 0644); err != nil {
			t.Fatalf("failed to write document: %v", err)
		}
	}

	time.Sleep(500 * time.Millisecond)

	if got := store.reloads.Load(); got != 1 {
		t.Errorf("reloads = %d, want exactly 1 for the burst", got)
	}
	if got := refreshes.Load(); got != 1 {
		t.Errorf("refreshes = %d, want exactly 1 for the burst", got)
	}
}

func TestOwnWriteIsSuppressed(t *testing.T) {
	store, path := newWatchedDocument(t)

	w, err := NewDocumentWatcher(store, time.Second, 30*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("NewDocumentWatcher failed: %v", err)
	}
	defer w.Close()

	// Simulate the repository writing: the watcher sees the event inside
	// the suppress window and must not reload.
	store.markLocalWrite()
	if err := os.WriteFile(path, []byte("[]"), 0644); err != nil {
		t.Fatalf("failed to write document: %v", err)
	}

	time.Sleep(300 * time.Millisecond)

	if got := store.reloads.Load(); got != 0 {
		t.Errorf("reloads = %d, want 0 inside the suppress window", got)
	}
}

func TestUnrelatedFilesIgnored(t *testing.T) {
	store, path := newWatchedDocument(t)

	w, err := NewDocumentWatcher(store, 0, 30*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("NewDocumentWatcher failed: %v", err)
	}
	defer w.Close()

	other := filepath.Join(filepath.Dir(path), "other.json")
	if err := os.WriteFile(other, []byte("{}"), 0644); err != nil {
		t.Fatalf("failed to write sibling file: %v", err)
	}

	time.Sleep(200 * time.Millisecond)

	if got := store.reloads.Load(); got != 0 {
		t.Errorf("reloads = %d, want 0 for unrelated files", got)
	}
}
