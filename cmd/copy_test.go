package cmd

import "testing"

func TestSliceLines(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		start   int
		end     int
		want    string
		wantErr bool
	}{
		{
			name:  "middle range",
			text:  "a\nb\nc\n",
			start: 2, end: 3,
			want: "b\nc",
		},
		{
			name:  "single line",
			text:  "a\nb\nc",
			start: 2, end: 2,
			want: "b",
		},
		{
			name:  "end clamped to last line",
			text:  "a\nb\nc\n",
			start: 2, end: 99,
			want: "b\nc",
		},
		{
			name:  "trailing newline is not an extra line",
			text:  "a\nb\nc\n",
			start: 4, end: 4,
			wantErr: true,
		},
		{
			name:  "start past end of document",
			text:  "a\nb",
			start: 3, end: 3,
			wantErr: true,
		},
		{
			name:  "start below one",
			text:  "a\nb",
			start: 0, end: 1,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sliceLines(tt.text, tt.start, tt.end)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("sliceLines(%q, %d, %d) = %q, want error", tt.text, tt.start, tt.end, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("sliceLines failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("sliceLines(%q, %d, %d) = %q, want %q", tt.text, tt.start, tt.end, got, tt.want)
			}
		})
	}
}
