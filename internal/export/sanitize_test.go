package export

import (
	"strings"
	"testing"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{"control chars dropped", " A\nB\rC\tD\x00 ", 100, "ABCD"},
		{"allowed kept", "Az09 -_.,()", 100, "Az09 -_.,()"},
		{"disallowed replaced", "bad<>|\"name", 100, "bad____name"},
		{"truncated", "abcdefghijklmnopqrstuvwxyz", 10, "abcdefghij"},
		{"unicode letters", "Café Über", 0, "Café Über"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeName(tt.in, tt.maxLen); got != tt.want {
				t.Errorf("SanitizeName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFilename(t *testing.T) {
	if got := Filename("My clips: part 1", ".edl"); got != "My_clips__part_1.edl" {
		t.Errorf("Filename() = %q", got)
	}
	if got := Filename("\x00", ".edl"); got != "ytclipper_export.edl" {
		t.Errorf("Filename(empty) = %q", got)
	}
	if strings.ContainsAny(Filename(`a/b\c"d`, ".edl"), `/\"`) {
		t.Error("Filename() kept path or quote characters")
	}
}
