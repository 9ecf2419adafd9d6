package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/alpkeskin/gotoon"
	"github.com/spf13/cobra"

	"github.com/pders01/folderclip/internal/models"
)

var (
	clipShowJSON bool
	clipShowToon bool
)

var clipCmd = &cobra.Command{
	Use:   "clip",
	Short: "Inspect and manage the aggregated clipboard",
}

var clipShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current fragments and temp slot",
	RunE:  runClipShow,
}

var clipClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop all fragments and empty the clipboard",
	RunE:  runClipClear,
}

var clipStashCmd = &cobra.Command{
	Use:   "stash",
	Short: "Move the current fragments into the temp slot",
	Long: `Move the current fragments into the temp slot and clear the live
clipboard. Refuses when the clipboard no longer matches what folderclip
last wrote, since that means another application overwrote it.`,
	RunE: runClipStash,
}

var clipUnstashCmd = &cobra.Command{
	Use:   "unstash",
	Short: "Restore the stashed fragments to the live clipboard",
	Long: `Copy the temp slot back into the live collection and rewrite the
clipboard payload. The temp slot is left intact, so unstash can be
repeated.`,
	RunE: runClipUnstash,
}

func init() {
	rootCmd.AddCommand(clipCmd)
	clipCmd.AddCommand(clipShowCmd)
	clipCmd.AddCommand(clipClearCmd)
	clipCmd.AddCommand(clipStashCmd)
	clipCmd.AddCommand(clipUnstashCmd)

	clipShowCmd.Flags().BoolVar(&clipShowJSON, "json", false, "Output as JSON")
	clipShowCmd.Flags().BoolVar(&clipShowToon, "toon", false, "Output in LLM-friendly toon format")
}

type clipView struct {
	Fragments []models.Fragment `json:"fragments"`
	Temp      []models.Fragment `json:"temp"`
}

func runClipShow(cmd *cobra.Command, args []string) error {
	engine, _ := openEngine()

	fragments := engine.Fragments()

	if clipShowJSON || clipShowToon {
		view := clipView{Fragments: fragments, Temp: engine.TempFragments()}
		if clipShowJSON {
			output, err := json.MarshalIndent(view, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Println(string(output))
			return nil
		}
		output, err := gotoon.Encode(view)
		if err != nil {
			return fmt.Errorf("failed to encode Toon: %w", err)
		}
		fmt.Println(output)
		return nil
	}

	if len(fragments) == 0 {
		fmt.Println("No fragments on the clipboard")
	} else {
		fmt.Printf("%d fragment(s):\n", len(fragments))
		for _, frag := range fragments {
			fmt.Printf("  [%s] %s\n", frag.Format, frag.DisplayPath)
		}
	}

	if temp := engine.TempFragments(); len(temp) > 0 {
		fmt.Printf("%d fragment(s) in the temp slot\n", len(temp))
	}
	return nil
}

func runClipClear(cmd *cobra.Command, args []string) error {
	engine, save := openEngine()
	if err := engine.Clear(); err != nil {
		return err
	}
	if err := save(); err != nil {
		return err
	}
	fmt.Println("Clipboard cleared")
	return nil
}

func runClipStash(cmd *cobra.Command, args []string) error {
	engine, save := openEngine()
	if err := engine.Stash(); err != nil {
		return err
	}
	if err := save(); err != nil {
		return err
	}
	fmt.Printf("Stashed %d fragment(s)\n", len(engine.TempFragments()))
	return nil
}

func runClipUnstash(cmd *cobra.Command, args []string) error {
	engine, save := openEngine()
	if err := engine.Unstash(); err != nil {
		return err
	}
	if err := save(); err != nil {
		return err
	}
	fmt.Printf("Restored %d fragment(s) to the clipboard\n", len(engine.Fragments()))
	return nil
}
