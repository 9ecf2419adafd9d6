package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pders01/folderclip/internal/apperr"
	"github.com/pders01/folderclip/internal/clip"
	"github.com/pders01/folderclip/internal/config"
	"github.com/pders01/folderclip/internal/store"
)

// openStore builds the folder repository from configuration, wrapping it
// with the backup decorator when a backup path is configured.
func openStore() store.Store {
	fs := store.NewFileStore(config.GetStorePath(), config.GetLegacyPath())
	if backup := config.GetBackupPath(); backup != "" {
		return store.NewBackupStore(fs, backup)
	}
	return fs
}

// openEngine builds the clipboard engine with its persisted state loaded.
// The returned save func must be called after mutations so fragments
// survive into the next invocation.
func openEngine() (*clip.Engine, func() error) {
	statePath := config.GetClipStatePath()
	engine := clip.NewEngine(clip.NewSystemClipboard())
	engine.RestoreState(clip.LoadState(statePath))
	save := func() error {
		return clip.SaveState(statePath, engine.State())
	}
	return engine, save
}

// currentWorkspace returns the absolute path of the working directory,
// which stands in for the editor's workspace folder.
func currentWorkspace() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to resolve working directory: %w", err)
	}
	return filepath.Abs(wd)
}

// resolveFile turns a possibly relative argument into the normalized
// absolute form used as a file URI.
func resolveFile(arg string) (string, error) {
	if strings.TrimSpace(arg) == "" {
		return "", apperr.Invalid("file reference must not be empty")
	}
	if !filepath.IsAbs(arg) {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return "", fmt.Errorf("failed to resolve %s: %w", arg, err)
		}
		arg = abs
	}
	return arg, nil
}
