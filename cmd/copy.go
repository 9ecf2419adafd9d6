package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pders01/folderclip/internal/clip"
	"github.com/pders01/folderclip/internal/models"
)

var (
	copyStartLine   int
	copyEndLine     int
	copyWithErrors  bool
	copyDiagnostics string
)

var copyCmd = &cobra.Command{
	Use:   "copy <file>",
	Short: "Capture a file (or line range) as a clipboard fragment",
	Long: `Capture a file as a clipboard fragment and rewrite the aggregate
clipboard payload. A fragment captured for the same file and format
replaces the earlier one; normal and error fragments for the same file
coexist.

With --errors, a numbered diagnostics listing is appended to the
fragment. Diagnostics are read from a JSON file (--diagnostics) holding
an array of {message, startLine, endLine, severity, sourceLine}; only
error and warning severities intersecting the selected line range are
listed.`,
	Args: cobra.ExactArgs(1),
	RunE: runCopy,
}

var copyFolderCmd = &cobra.Command{
	Use:   "copy-folder <name>",
	Short: "Capture every file of a folder as clipboard fragments",
	Args:  cobra.ExactArgs(1),
	RunE:  runCopyFolder,
}

func init() {
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(copyFolderCmd)

	copyCmd.Flags().IntVar(&copyStartLine, "start", 0, "First line of the selection (1-based)")
	copyCmd.Flags().IntVar(&copyEndLine, "end", 0, "Last line of the selection (1-based)")
	copyCmd.Flags().BoolVar(&copyWithErrors, "errors", false, "Append a diagnostics listing to the fragment")
	copyCmd.Flags().StringVar(&copyDiagnostics, "diagnostics", "", "JSON file with diagnostics for the document")
}

func runCopy(cmd *cobra.Command, args []string) error {
	path, err := resolveFile(args[0])
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	text := string(data)

	var selection *clip.LineRange
	display := path
	if copyStartLine > 0 {
		end := copyEndLine
		if end < copyStartLine {
			end = copyStartLine
		}
		text, err = sliceLines(text, copyStartLine, end)
		if err != nil {
			return err
		}
		display = fmt.Sprintf("%s:%d-%d", path, copyStartLine, end)
		selection = &clip.LineRange{Start: copyStartLine, End: end}
	}

	frag := models.Fragment{
		DisplayPath: display,
		BasePath:    path,
		Content:     fmt.Sprintf("%s:\n%s", display, text),
		Format:      models.FormatNormal,
	}

	engine, save := openEngine()
	if copyWithErrors {
		diags, err := loadDiagnostics(copyDiagnostics)
		if err != nil {
			return err
		}
		err = engine.CaptureWithDiagnostics(frag, diags, selection)
		if err != nil {
			return err
		}
	} else if err := engine.Capture(frag); err != nil {
		return err
	}

	if err := save(); err != nil {
		return err
	}
	fmt.Printf("Copied %s (%d fragment(s) on clipboard)\n", display, len(engine.Fragments()))
	return nil
}

func runCopyFolder(cmd *cobra.Command, args []string) error {
	st := openStore()
	folder, err := st.FindByName(args[0])
	if err != nil {
		return err
	}

	engine, save := openEngine()
	copied, failed, err := engine.CaptureFolder(folder, func(uri string) (string, error) {
		data, readErr := os.ReadFile(uri)
		return string(data), readErr
	})
	if err != nil {
		return err
	}
	if err := save(); err != nil {
		return err
	}

	fmt.Printf("Copied %d file(s) from %q", copied, folder.Name)
	if failed > 0 {
		fmt.Printf(" (%d failed)", failed)
	}
	fmt.Println()
	return nil
}

// sliceLines extracts the 1-based inclusive line range [start, end]. A
// trailing newline terminates the last line rather than opening an empty
// one, so it is dropped before splitting.
func sliceLines(text string, start, end int) (string, error) {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if start < 1 || start > len(lines) {
		return "", fmt.Errorf("line %d is out of range (document has %d lines)", start, len(lines))
	}
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[start-1:end], "\n"), nil
}

func loadDiagnostics(path string) ([]clip.Diagnostic, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read diagnostics file: %w", err)
	}
	var diags []clip.Diagnostic
	if err := json.Unmarshal(data, &diags); err != nil {
		return nil, fmt.Errorf("failed to parse diagnostics file: %w", err)
	}
	return diags, nil
}
