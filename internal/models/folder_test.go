package models

import (
	"testing"
	"time"
)

func mustFolder(t *testing.T, name string) *Folder {
	t.Helper()
	f, err := NewFolder(name, "/workspace")
	if err != nil {
		t.Fatalf("NewFolder failed: %v", err)
	}
	return f
}

func TestNewFolder(t *testing.T) {
	f := mustFolder(t, "  Docs  ")

	if f.ID == "" {
		t.Error("ID should not be empty")
	}
	if f.Name != "Docs" {
		t.Errorf("Name = %q, want trimmed %q", f.Name, "Docs")
	}
	if len(f.Files) != 0 {
		t.Errorf("Files should start empty, got %v", f.Files)
	}
	if f.CreatedAt.IsZero() || f.UpdatedAt.IsZero() {
		t.Error("timestamps should be set")
	}
}

func TestNewFolderInvalidName(t *testing.T) {
	if _, err := NewFolder("   ", ""); err == nil {
		t.Error("expected error for blank name")
	}
}

func TestAddFileIdempotent(t *testing.T) {
	f := mustFolder(t, "Docs")

	if !f.AddFile("/a.go") {
		t.Error("first AddFile should report a change")
	}
	before := f.UpdatedAt

	time.Sleep(2 * time.Millisecond)
	if f.AddFile("/a.go") {
		t.Error("second AddFile of same uri should be a no-op")
	}
	if len(f.Files) != 1 {
		t.Errorf("Files = %v, want exactly one entry", f.Files)
	}
	if !f.UpdatedAt.Equal(before) {
		t.Error("no-op AddFile should not touch UpdatedAt")
	}
}

func TestRemoveFile(t *testing.T) {
	f := mustFolder(t, "Docs")
	f.AddFile("/a.go")
	f.AddFile("/b.go")

	if !f.RemoveFile("/a.go") {
		t.Error("RemoveFile of present uri should report a change")
	}
	before := f.UpdatedAt

	time.Sleep(2 * time.Millisecond)
	if f.RemoveFile("/absent.go") {
		t.Error("RemoveFile of absent uri should be a no-op")
	}
	if !f.UpdatedAt.Equal(before) {
		t.Error("no-op RemoveFile should not touch UpdatedAt")
	}
	if len(f.Files) != 1 || f.Files[0] != "/b.go" {
		t.Errorf("Files = %v, want [/b.go]", f.Files)
	}
}

func TestAddFilesCountsEffectiveChanges(t *testing.T) {
	f := mustFolder(t, "Docs")
	f.AddFile("/a.go")

	added := f.AddFiles([]string{"/a.go", "/b.go", "/c.go", "/b.go"})
	if added != 2 {
		t.Errorf("AddFiles = %d, want 2 (duplicates skipped)", added)
	}

	removed := f.RemoveFiles([]string{"/a.go", "/missing.go"})
	if removed != 1 {
		t.Errorf("RemoveFiles = %d, want 1", removed)
	}
}

func TestNoDuplicatesAfterMixedSequence(t *testing.T) {
	f := mustFolder(t, "Docs")
	sequence := []string{"/a", "/b", "/a", "/c", "/b", "/a"}
	for _, uri := range sequence {
		f.AddFile(uri)
	}
	f.RemoveFile("/b")
	f.AddFile("/b")

	seen := map[string]bool{}
	for _, uri := range f.Files {
		if seen[uri] {
			t.Fatalf("duplicate entry %q in %v", uri, f.Files)
		}
		seen[uri] = true
	}
}

func TestRenameKeepsFilesAndBumpsUpdatedAt(t *testing.T) {
	f := mustFolder(t, "Docs")
	f.AddFiles([]string{"/a.go", "/b.go"})
	before := f.UpdatedAt

	time.Sleep(2 * time.Millisecond)
	if err := f.Rename("Docs2"); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}

	if f.Name != "Docs2" {
		t.Errorf("Name = %q, want %q", f.Name, "Docs2")
	}
	if len(f.Files) != 2 {
		t.Errorf("Files = %v, want both entries kept", f.Files)
	}
	if !f.UpdatedAt.After(before) {
		t.Error("UpdatedAt should be strictly greater after rename")
	}
}

func TestRenameInvalidLeavesFolderUntouched(t *testing.T) {
	f := mustFolder(t, "Docs")
	before := f.UpdatedAt

	if err := f.Rename("   "); err == nil {
		t.Fatal("expected error for blank rename")
	}
	if f.Name != "Docs" {
		t.Errorf("Name = %q, want unchanged", f.Name)
	}
	if !f.UpdatedAt.Equal(before) {
		t.Error("failed rename should not touch UpdatedAt")
	}
}

func TestClearFiles(t *testing.T) {
	f := mustFolder(t, "Docs")
	f.AddFiles([]string{"/a.go", "/b.go"})

	f.ClearFiles()
	if len(f.Files) != 0 {
		t.Errorf("Files = %v, want empty", f.Files)
	}
}

func TestRecordRoundTrip(t *testing.T) {
	f := mustFolder(t, "Docs")
	f.AddFiles([]string{"/a.go", "/b.go", "/c.go"})

	got := FromRecord(f.ToRecord())

	if got.ID != f.ID {
		t.Errorf("ID = %q, want %q", got.ID, f.ID)
	}
	if got.Name != f.Name {
		t.Errorf("Name = %q, want %q", got.Name, f.Name)
	}
	if len(got.Files) != 3 {
		t.Fatalf("Files = %v, want 3 entries", got.Files)
	}
	for i, uri := range f.Files {
		if got.Files[i] != uri {
			t.Errorf("Files[%d] = %q, want %q (order preserved)", i, got.Files[i], uri)
		}
	}
	if got.WorkspaceFolder != f.WorkspaceFolder {
		t.Errorf("WorkspaceFolder = %q, want %q", got.WorkspaceFolder, f.WorkspaceFolder)
	}
	if !got.CreatedAt.Equal(f.CreatedAt) || !got.UpdatedAt.Equal(f.UpdatedAt) {
		t.Error("timestamps should survive the round trip")
	}
}

func TestRecordNilFiles(t *testing.T) {
	f := FromRecord(FolderRecord{ID: "x", Name: "Docs"})
	if f.Files == nil {
		t.Error("Files should be non-nil after FromRecord")
	}
}
