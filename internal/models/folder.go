package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/pders01/folderclip/internal/validate"
)

// Folder groups file references under a stable id and a user-chosen name.
// The id never changes; name and file list are mutable. The file list is
// ordered (insertion order) and holds no duplicates.
type Folder struct {
	ID              string
	Name            string
	Files           []string
	WorkspaceFolder string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewFolder creates a folder with a generated id and validated name.
// workspaceFolder may be empty; it only scopes filtering and display.
func NewFolder(name, workspaceFolder string) (*Folder, error) {
	trimmed, err := validate.FolderName(name)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return &Folder{
		ID:              uuid.NewString(),
		Name:            trimmed,
		Files:           []string{},
		WorkspaceFolder: workspaceFolder,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// Rename changes the folder name. The name is validated and trimmed;
// UpdatedAt is refreshed only when the rename succeeds.
func (f *Folder) Rename(newName string) error {
	trimmed, err := validate.FolderName(newName)
	if err != nil {
		return err
	}
	f.Name = trimmed
	f.touch()
	return nil
}

// ContainsFile reports whether the folder already references uri.
func (f *Folder) ContainsFile(uri string) bool {
	for _, existing := range f.Files {
		if existing == uri {
			return true
		}
	}
	return false
}

// AddFile appends uri and reports whether the folder changed.
// Adding an already-present uri is a no-op and does not touch UpdatedAt.
func (f *Folder) AddFile(uri string) bool {
	if f.ContainsFile(uri) {
		return false
	}
	f.Files = append(f.Files, uri)
	f.touch()
	return true
}

// RemoveFile drops uri and reports whether the folder changed.
func (f *Folder) RemoveFile(uri string) bool {
	for i, existing := range f.Files {
		if existing == uri {
			f.Files = append(f.Files[:i], f.Files[i+1:]...)
			f.touch()
			return true
		}
	}
	return false
}

// AddFiles appends each uri and returns the number of effective additions.
// Callers derive the skipped count by subtracting from len(uris).
func (f *Folder) AddFiles(uris []string) int {
	added := 0
	for _, uri := range uris {
		if f.AddFile(uri) {
			added++
		}
	}
	return added
}

// RemoveFiles drops each uri and returns the number of effective removals.
func (f *Folder) RemoveFiles(uris []string) int {
	removed := 0
	for _, uri := range uris {
		if f.RemoveFile(uri) {
			removed++
		}
	}
	return removed
}

// ClearFiles empties the file list unconditionally.
func (f *Folder) ClearFiles() {
	f.Files = []string{}
	f.touch()
}

func (f *Folder) touch() {
	f.UpdatedAt = time.Now()
}
