package cmd

import (
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pders01/folderclip/internal/config"
	"github.com/pders01/folderclip/internal/store"
	"github.com/pders01/folderclip/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [workspace]",
	Short: "Run the sync and reconciliation watchers until interrupted",
	Long: `Run both watchers against the shared folder document and the given
workspace directory (default: the working directory).

The document watcher reloads the folder collection when another running
instance writes the shared document. The reconciliation watcher removes
deleted files from every folder and rewrites renamed file references;
renaming a directory renames folders carrying its old base name.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	workspace, err := currentWorkspace()
	if err != nil {
		return err
	}
	if len(args) > 0 {
		workspace, err = resolveFile(args[0])
		if err != nil {
			return err
		}
	}

	fileStore := store.NewFileStore(config.GetStorePath(), config.GetLegacyPath())
	var st store.Store = fileStore
	if backup := config.GetBackupPath(); backup != "" {
		st = store.NewBackupStore(fileStore, backup)
	}

	docWatcher, err := watch.NewDocumentWatcher(
		fileStore,
		config.GetSyncSuppress(),
		config.GetSyncDebounce(),
		func() { log.Printf("folders reloaded from shared document") },
	)
	if err != nil {
		return fmt.Errorf("failed to watch folder document: %w", err)
	}
	defer docWatcher.Close()

	reconciler, err := watch.NewReconciler(
		st,
		workspace,
		config.GetReconcileDebounce(),
		config.GetRenameWindow(),
		func() { log.Printf("folder view refresh requested") },
		func(msg string) { log.Printf("%s", msg) },
	)
	if err != nil {
		return fmt.Errorf("failed to watch workspace: %w", err)
	}
	defer reconciler.Close()

	fmt.Printf("Watching %s (document: %s)\n", workspace, fileStore.Path())

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	fmt.Println("Shutting down watchers")
	return nil
}
