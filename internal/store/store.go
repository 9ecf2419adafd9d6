// Package store persists the folder collection to a single shared JSON
// document on disk. The document is the source of truth across all running
// instances: every read opportunistically reloads it unless a staleness
// check shows this process wrote it last, and every write rewrites the
// whole document. Concurrent writers from two instances resolve by
// last-writer-wins; there is no locking or versioning.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pders01/folderclip/internal/apperr"
	"github.com/pders01/folderclip/internal/models"
)

// Store is the folder repository contract. The file-backed implementation
// is FileStore; BackupStore decorates any Store with write mirroring.
type Store interface {
	FindAll() []*models.Folder
	FindByID(id string) (*models.Folder, error)
	FindByName(name string) (*models.Folder, error)
	FindByWorkspace(workspace string) []*models.Folder
	Save(f *models.Folder) error
	Delete(id string) (bool, error)
	SaveAll(folders []*models.Folder) error
	Clear() error
	Path() string
}

// FileStore is the file-backed repository. It is the sole intended writer
// of the shared document; watchers trigger reloads but never mutate
// folders except through this API.
type FileStore struct {
	mu         sync.Mutex
	path       string
	legacyPath string
	folders    []*models.Folder

	// lastSync is the last time the in-memory collection and the document
	// were known to agree (set on load and on write); reads skip reloading
	// while the document mtime is not newer than this.
	lastSync time.Time
	// lastLocalWrite is the last time this process wrote the document.
	// The sync watcher uses it to absorb notifications of our own writes.
	lastLocalWrite time.Time
}

// NewFileStore opens the repository backed by the document at path.
// legacyPath may be empty; when set and the document does not exist yet,
// a one-time migration from the legacy key-value store is attempted.
// A missing or corrupt document degrades to an empty collection.
func NewFileStore(path, legacyPath string) *FileStore {
	s := &FileStore{
		path:       path,
		legacyPath: legacyPath,
		folders:    []*models.Folder{},
	}
	s.mu.Lock()
	s.loadLocked()
	s.mu.Unlock()
	return s
}

// Path returns the shared document path.
func (s *FileStore) Path() string {
	return s.path
}

// LastLocalWrite returns the time of this process's last document write.
func (s *FileStore) LastLocalWrite() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastLocalWrite
}

// Reload discards the in-memory collection and reads the document again.
func (s *FileStore) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadLocked()
	return nil
}

// FindAll returns the current folder collection.
func (s *FileStore) FindAll() []*models.Folder {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reloadIfStaleLocked()
	out := make([]*models.Folder, len(s.folders))
	copy(out, s.folders)
	return out
}

// FindByID returns the folder with the given id.
func (s *FileStore) FindByID(id string) (*models.Folder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reloadIfStaleLocked()
	for _, f := range s.folders {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, apperr.NotFoundf("folder %q not found", id)
}

// FindByName returns the first folder with the given name.
func (s *FileStore) FindByName(name string) (*models.Folder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reloadIfStaleLocked()
	for _, f := range s.folders {
		if f.Name == name {
			return f, nil
		}
	}
	return nil, apperr.NotFoundf("folder %q not found", name)
}

// FindByWorkspace returns folders bound to the given workspace path.
func (s *FileStore) FindByWorkspace(workspace string) []*models.Folder {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reloadIfStaleLocked()
	var out []*models.Folder
	for _, f := range s.folders {
		if f.WorkspaceFolder == workspace {
			out = append(out, f)
		}
	}
	return out
}

// Save upserts the folder by id and persists the collection.
func (s *FileStore) Save(f *models.Folder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reloadIfStaleLocked()
	replaced := false
	for i, existing := range s.folders {
		if existing.ID == f.ID {
			s.folders[i] = f
			replaced = true
			break
		}
	}
	if !replaced {
		s.folders = append(s.folders, f)
	}
	return s.saveLocked()
}

// Delete removes the folder with the given id, reporting whether anything
// was removed. Deleting an absent id is not an error.
func (s *FileStore) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reloadIfStaleLocked()
	for i, f := range s.folders {
		if f.ID == id {
			s.folders = append(s.folders[:i], s.folders[i+1:]...)
			if err := s.saveLocked(); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// SaveAll replaces the whole collection and persists it.
func (s *FileStore) SaveAll(folders []*models.Folder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.folders = make([]*models.Folder, len(folders))
	copy(s.folders, folders)
	return s.saveLocked()
}

// Clear removes every folder and persists the empty collection.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.folders = []*models.Folder{}
	return s.saveLocked()
}

// reloadIfStaleLocked reloads the document when its mtime is newer than the
// last load or write by this process. This suppresses the read-your-own-write
// race where a read right after a local write would look like an external
// change.
func (s *FileStore) reloadIfStaleLocked() {
	info, err := os.Stat(s.path)
	if err != nil {
		return
	}
	if info.ModTime().After(s.lastSync) {
		s.loadLocked()
	}
}

// loadLocked reads the document into memory. A missing document triggers a
// one-time legacy migration; read or parse failures degrade to an empty
// collection so multi-instance reads stay resilient to transient contention.
func (s *FileStore) loadLocked() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.folders = []*models.Folder{}
			s.migrateLegacyLocked()
			return
		}
		fmt.Fprintf(os.Stderr, "Warning: failed to read folder document: %v\n", err)
		s.folders = []*models.Folder{}
		return
	}

	var records []models.FolderRecord
	if err := json.Unmarshal(data, &records); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: folder document is corrupt, starting empty: %v\n", err)
		s.folders = []*models.Folder{}
		return
	}

	folders := make([]*models.Folder, 0, len(records))
	for _, r := range records {
		folders = append(folders, models.FromRecord(r))
	}
	s.folders = folders
	s.lastSync = time.Now()
}

// saveLocked rewrites the whole document atomically (temp file + rename).
// On failure the in-memory collection is left intact and the error is
// returned for the caller to surface; the write is not retried.
func (s *FileStore) saveLocked() error {
	records := make([]models.FolderRecord, 0, len(s.folders))
	for _, f := range s.folders {
		records = append(records, f.ToRecord())
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return apperr.IO("failed to marshal folder document", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return apperr.IO("failed to create document directory", err)
	}

	tmp, err := os.CreateTemp(dir, ".folders-*.json")
	if err != nil {
		return apperr.IO("failed to create temp document", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return apperr.IO("failed to write folder document", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return apperr.IO("failed to close temp document", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return apperr.IO("failed to replace folder document", err)
	}

	now := time.Now()
	s.lastLocalWrite = now
	s.lastSync = now
	return nil
}
