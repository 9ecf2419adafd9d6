package cmd

import (
	"strings"
	"testing"

	"github.com/pders01/folderclip/internal/clip"
	"github.com/pders01/folderclip/internal/config"
	"github.com/pders01/folderclip/internal/models"
)

func seedClipState(t *testing.T, st clip.State) {
	t.Helper()
	if err := clip.SaveState(config.GetClipStatePath(), st); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}
}

func TestClipShowToonOutput(t *testing.T) {
	setupCmdTest(t)
	seedClipState(t, clip.State{
		Fragments: []models.Fragment{
			{DisplayPath: "/ws/a.go", BasePath: "/ws/a.go", Content: "a", Format: models.FormatNormal},
		},
	})

	clipShowToon = true
	defer func() { clipShowToon = false }()

	out := captureStdout(t, func() error { return runClipShow(nil, nil) })
	if !strings.Contains(out, "/ws/a.go") {
		t.Errorf("toon output = %q, want fragment path present", out)
	}
}

func TestClipShowHumanOutputListsTempSlot(t *testing.T) {
	setupCmdTest(t)
	seedClipState(t, clip.State{
		Fragments: []models.Fragment{
			{DisplayPath: "/ws/a.go", BasePath: "/ws/a.go", Content: "a", Format: models.FormatNormal},
		},
		Temp: []models.Fragment{
			{DisplayPath: "/ws/b.go", BasePath: "/ws/b.go", Content: "b", Format: models.FormatNormal},
		},
	})

	out := captureStdout(t, func() error { return runClipShow(nil, nil) })
	if !strings.Contains(out, "1 fragment(s):") || !strings.Contains(out, "1 fragment(s) in the temp slot") {
		t.Errorf("output = %q, want live and temp counts", out)
	}
}
