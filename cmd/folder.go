package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alpkeskin/gotoon"
	"github.com/spf13/cobra"

	"github.com/pders01/folderclip/internal/config"
	"github.com/pders01/folderclip/internal/models"
	"github.com/pders01/folderclip/internal/validate"
)

var (
	listWorkspaceOnly bool
	listJSON          bool
	listToon          bool
)

var folderCmd = &cobra.Command{
	Use:   "folder",
	Short: "Manage named folders of file references",
}

var folderCreateCmd = &cobra.Command{
	Use:   "create <name> [file...]",
	Short: "Create a folder, optionally seeding it with files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFolderCreate,
}

var folderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List folders",
	RunE:  runFolderList,
}

var folderRenameCmd = &cobra.Command{
	Use:   "rename <name> <new-name>",
	Short: "Rename a folder",
	Args:  cobra.ExactArgs(2),
	RunE:  runFolderRename,
}

var folderDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a folder",
	Args:  cobra.ExactArgs(1),
	RunE:  runFolderDelete,
}

var folderAddCmd = &cobra.Command{
	Use:   "add <name> <file...>",
	Short: "Add file references to a folder",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runFolderAdd,
}

var folderRemoveCmd = &cobra.Command{
	Use:   "remove <name> <file...>",
	Short: "Remove file references from a folder",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runFolderRemove,
}

var folderClearFilesCmd = &cobra.Command{
	Use:   "clear-files <name>",
	Short: "Remove every file reference from a folder",
	Args:  cobra.ExactArgs(1),
	RunE:  runFolderClearFiles,
}

func init() {
	rootCmd.AddCommand(folderCmd)
	folderCmd.AddCommand(folderCreateCmd)
	folderCmd.AddCommand(folderListCmd)
	folderCmd.AddCommand(folderRenameCmd)
	folderCmd.AddCommand(folderDeleteCmd)
	folderCmd.AddCommand(folderAddCmd)
	folderCmd.AddCommand(folderRemoveCmd)
	folderCmd.AddCommand(folderClearFilesCmd)

	folderListCmd.Flags().BoolVar(&listWorkspaceOnly, "workspace", false, "Only folders created in the current workspace")
	folderListCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	folderListCmd.Flags().BoolVar(&listToon, "toon", false, "Output in LLM-friendly toon format")
}

func runFolderCreate(cmd *cobra.Command, args []string) error {
	workspace, err := currentWorkspace()
	if err != nil {
		return err
	}

	folder, err := models.NewFolder(args[0], workspace)
	if err != nil {
		return err
	}

	uris, skipped := normalizeFileArgs(args[1:])
	if err := validate.FileCount(len(folder.Files), len(uris), config.GetMaxFilesPerFolder()); err != nil {
		return err
	}
	added := folder.AddFiles(uris)

	st := openStore()
	if err := st.Save(folder); err != nil {
		return err
	}

	fmt.Printf("Created folder %q", folder.Name)
	if added > 0 {
		fmt.Printf(" with %d file(s)", added)
	}
	fmt.Println()
	reportSkipped(skipped)
	return nil
}

func runFolderList(cmd *cobra.Command, args []string) error {
	st := openStore()

	var folders []*models.Folder
	if listWorkspaceOnly {
		workspace, err := currentWorkspace()
		if err != nil {
			return err
		}
		folders = st.FindByWorkspace(workspace)
	} else {
		folders = st.FindAll()
	}

	if listJSON || listToon {
		records := make([]models.FolderRecord, 0, len(folders))
		for _, f := range folders {
			records = append(records, f.ToRecord())
		}
		if listJSON {
			output, err := json.MarshalIndent(records, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Println(string(output))
			return nil
		}
		output, err := gotoon.Encode(records)
		if err != nil {
			return fmt.Errorf("failed to encode Toon: %w", err)
		}
		fmt.Println(output)
		return nil
	}

	if len(folders) == 0 {
		fmt.Println("No folders found")
		return nil
	}

	for _, f := range folders {
		fmt.Printf("  %s (%d file(s))\n", f.Name, len(f.Files))
		for _, file := range f.Files {
			fmt.Printf("    %s\n", file)
		}
	}
	return nil
}

func runFolderRename(cmd *cobra.Command, args []string) error {
	st := openStore()
	folder, err := st.FindByName(args[0])
	if err != nil {
		return err
	}
	if err := folder.Rename(args[1]); err != nil {
		return err
	}
	if err := st.Save(folder); err != nil {
		return err
	}
	fmt.Printf("Renamed folder %q to %q\n", args[0], folder.Name)
	return nil
}

func runFolderDelete(cmd *cobra.Command, args []string) error {
	st := openStore()
	folder, err := st.FindByName(args[0])
	if err != nil {
		return err
	}
	removed, err := st.Delete(folder.ID)
	if err != nil {
		return err
	}
	if removed {
		fmt.Printf("Deleted folder %q\n", folder.Name)
	}
	return nil
}

func runFolderAdd(cmd *cobra.Command, args []string) error {
	st := openStore()
	folder, err := st.FindByName(args[0])
	if err != nil {
		return err
	}

	uris, skipped := normalizeFileArgs(args[1:])
	if err := validate.FileCount(len(folder.Files), len(uris), config.GetMaxFilesPerFolder()); err != nil {
		return err
	}

	added := folder.AddFiles(uris)
	if added > 0 {
		if err := st.Save(folder); err != nil {
			return err
		}
	}

	duplicates := len(uris) - added
	fmt.Printf("Added %d file(s) to %q", added, folder.Name)
	if duplicates > 0 {
		fmt.Printf(" (%d already present)", duplicates)
	}
	fmt.Println()
	reportSkipped(skipped)
	return nil
}

func runFolderRemove(cmd *cobra.Command, args []string) error {
	st := openStore()
	folder, err := st.FindByName(args[0])
	if err != nil {
		return err
	}

	uris, skipped := normalizeFileArgs(args[1:])
	removed := folder.RemoveFiles(uris)
	if removed > 0 {
		if err := st.Save(folder); err != nil {
			return err
		}
	}

	fmt.Printf("Removed %d file(s) from %q\n", removed, folder.Name)
	reportSkipped(skipped)
	return nil
}

func runFolderClearFiles(cmd *cobra.Command, args []string) error {
	st := openStore()
	folder, err := st.FindByName(args[0])
	if err != nil {
		return err
	}
	folder.ClearFiles()
	if err := st.Save(folder); err != nil {
		return err
	}
	fmt.Printf("Cleared all files from %q\n", folder.Name)
	return nil
}

// normalizeFileArgs resolves and validates file arguments. Invalid entries
// are skipped, not fatal: batch operations isolate per-item failures.
func normalizeFileArgs(args []string) (uris []string, skipped int) {
	for _, arg := range args {
		resolved, err := resolveFile(arg)
		if err == nil {
			resolved, err = validate.FileURI(resolved)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", arg, err)
			skipped++
			continue
		}
		uris = append(uris, resolved)
	}
	return uris, skipped
}

func reportSkipped(skipped int) {
	if skipped > 0 {
		fmt.Printf("Skipped %d invalid file reference(s)\n", skipped)
	}
}
