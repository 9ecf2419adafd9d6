package apperr

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestCodeOf(t *testing.T) {
	if got := CodeOf(Invalid("bad")); got != CodeInvalid {
		t.Errorf("CodeOf = %q, want %q", got, CodeInvalid)
	}
	if got := CodeOf(errors.New("plain")); got != "" {
		t.Errorf("CodeOf(plain) = %q, want empty", got)
	}
	if got := CodeOf(nil); got != "" {
		t.Errorf("CodeOf(nil) = %q, want empty", got)
	}
}

func TestCodeSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("saving folder: %w", NotFound("folder x"))
	if !IsCode(err, CodeNotFound) {
		t.Error("code should survive fmt.Errorf wrapping")
	}
}

func TestIOUnwraps(t *testing.T) {
	err := IO("failed to read document", fs.ErrNotExist)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("wrapped cause should be reachable via errors.Is")
	}
	if !IsCode(err, CodeIO) {
		t.Error("IsCode should match CodeIO")
	}
}
