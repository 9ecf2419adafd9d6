package models

// FragmentFormat discriminates clipboard fragment kinds. Fragments sharing
// a base path coexist across formats; within one format the later capture
// replaces the earlier.
type FragmentFormat string

const (
	FormatNormal FragmentFormat = "normal"
	FormatError  FragmentFormat = "error"
)

// Fragment is one captured unit of clipboard content.
type Fragment struct {
	// DisplayPath is the human-readable label, possibly suffixed with a
	// line range ("path:12-30").
	DisplayPath string `json:"displayPath"`
	// BasePath is the dedup key: the normalized path without any line
	// range suffix.
	BasePath string `json:"basePath"`
	// Content is the fully formatted text block.
	Content string         `json:"content"`
	Format  FragmentFormat `json:"format"`
}

// Key identifies the replacement slot of the fragment.
func (f Fragment) Key() string {
	return f.BasePath + "\x00" + string(f.Format)
}
