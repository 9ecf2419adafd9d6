package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pders01/folderclip/internal/models"
)

// legacyFoldersKey is the key the old key-value store kept the folder
// array under.
const legacyFoldersKey = "folders"

// legacyDocument is the shape of the old key-value store file: a flat map
// of keys to raw JSON values.
type legacyDocument map[string]json.RawMessage

// migrateLegacyLocked performs the one-time migration from the legacy
// key-value store into the shared document, then clears the migrated key.
// Migration is best-effort: any failure is logged and swallowed.
func (s *FileStore) migrateLegacyLocked() {
	if s.legacyPath == "" {
		return
	}
	data, err := os.ReadFile(s.legacyPath)
	if err != nil {
		return
	}

	var doc legacyDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: legacy store is unreadable, skipping migration: %v\n", err)
		return
	}
	raw, ok := doc[legacyFoldersKey]
	if !ok {
		return
	}

	var records []models.FolderRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: legacy folder data is corrupt, skipping migration: %v\n", err)
		return
	}

	folders := make([]*models.Folder, 0, len(records))
	for _, r := range records {
		folders = append(folders, models.FromRecord(r))
	}
	s.folders = folders

	if err := s.saveLocked(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to persist migrated folders: %v\n", err)
		return
	}

	// Clear the migrated key so the migration runs at most once.
	delete(doc, legacyFoldersKey)
	cleared, err := json.MarshalIndent(doc, "", "  ")
	if err == nil {
		err = os.WriteFile(s.legacyPath, cleared, 0644)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to clear legacy store: %v\n", err)
	}
}
