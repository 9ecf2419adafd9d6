package config

import (
	"time"

	"github.com/spf13/viper"
)

// GetStorePath returns the path of the shared folder document.
func GetStorePath() string {
	return viper.GetString("store.path")
}

// GetBackupPath returns the mirror path for document writes.
// Empty means backups are disabled.
func GetBackupPath() string {
	return viper.GetString("store.backup_path")
}

// GetLegacyPath returns the path of the legacy key-value store.
func GetLegacyPath() string {
	return viper.GetString("store.legacy_path")
}

// GetClipStatePath returns the path of the persisted clipboard engine
// state.
func GetClipStatePath() string {
	return viper.GetString("clip.state_path")
}

// GetSyncDebounce returns the delay used to collapse bursts of external
// document changes into one reload.
func GetSyncDebounce() time.Duration {
	return time.Duration(viper.GetInt("sync.debounce_ms")) * time.Millisecond
}

// GetSyncSuppress returns the window after a local write during which
// document change events are attributed to this process and ignored.
func GetSyncSuppress() time.Duration {
	return time.Duration(viper.GetInt("sync.suppress_ms")) * time.Millisecond
}

// GetReconcileDebounce returns the refresh delay after reconciliation.
func GetReconcileDebounce() time.Duration {
	return time.Duration(viper.GetInt("reconcile.debounce_ms")) * time.Millisecond
}

// GetRenameWindow returns how long a lone rename event waits for its
// matching create event before being treated as a delete.
func GetRenameWindow() time.Duration {
	return time.Duration(viper.GetInt("reconcile.rename_window_ms")) * time.Millisecond
}

// GetMaxFilesPerFolder returns the per-folder file cap.
func GetMaxFilesPerFolder() int {
	return viper.GetInt("folder.max_files")
}
