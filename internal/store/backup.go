package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pders01/folderclip/internal/models"
)

// BackupStore decorates a Store and mirrors the shared document to a
// backup path after every successful write. Reads delegate untouched.
// Mirror failures are logged, never propagated: the backup is a
// convenience, not part of the consistency model.
type BackupStore struct {
	inner      Store
	backupPath string
}

// NewBackupStore wraps inner so every write is mirrored to backupPath.
func NewBackupStore(inner Store, backupPath string) *BackupStore {
	return &BackupStore{inner: inner, backupPath: backupPath}
}

func (b *BackupStore) FindAll() []*models.Folder {
	return b.inner.FindAll()
}

func (b *BackupStore) FindByID(id string) (*models.Folder, error) {
	return b.inner.FindByID(id)
}

func (b *BackupStore) FindByName(name string) (*models.Folder, error) {
	return b.inner.FindByName(name)
}

func (b *BackupStore) FindByWorkspace(workspace string) []*models.Folder {
	return b.inner.FindByWorkspace(workspace)
}

func (b *BackupStore) Save(f *models.Folder) error {
	if err := b.inner.Save(f); err != nil {
		return err
	}
	b.mirror()
	return nil
}

func (b *BackupStore) Delete(id string) (bool, error) {
	removed, err := b.inner.Delete(id)
	if err != nil {
		return removed, err
	}
	if removed {
		b.mirror()
	}
	return removed, nil
}

func (b *BackupStore) SaveAll(folders []*models.Folder) error {
	if err := b.inner.SaveAll(folders); err != nil {
		return err
	}
	b.mirror()
	return nil
}

func (b *BackupStore) Clear() error {
	if err := b.inner.Clear(); err != nil {
		return err
	}
	b.mirror()
	return nil
}

func (b *BackupStore) Path() string {
	return b.inner.Path()
}

// mirror copies the shared document to the backup path.
func (b *BackupStore) mirror() {
	data, err := os.ReadFile(b.inner.Path())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to read document for backup: %v\n", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(b.backupPath), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to create backup directory: %v\n", err)
		return
	}
	if err := os.WriteFile(b.backupPath, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to write backup document: %v\n", err)
	}
}
