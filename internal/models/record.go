package models

import "time"

// FolderRecord is the persisted form of a Folder. The shared document is a
// JSON array of these records; every running instance must agree on this
// shape, so it changes only deliberately.
type FolderRecord struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Files           []string  `json:"files"`
	WorkspaceFolder string    `json:"workspaceFolder,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ToRecord converts the folder to its persisted form.
func (f *Folder) ToRecord() FolderRecord {
	files := make([]string, len(f.Files))
	copy(files, f.Files)
	return FolderRecord{
		ID:              f.ID,
		Name:            f.Name,
		Files:           files,
		WorkspaceFolder: f.WorkspaceFolder,
		CreatedAt:       f.CreatedAt,
		UpdatedAt:       f.UpdatedAt,
	}
}

// FromRecord reconstructs a folder from its persisted form.
func FromRecord(r FolderRecord) *Folder {
	files := r.Files
	if files == nil {
		files = []string{}
	} else {
		files = append([]string(nil), files...)
	}
	return &Folder{
		ID:              r.ID,
		Name:            r.Name,
		Files:           files,
		WorkspaceFolder: r.WorkspaceFolder,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}
