package randid

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"zero", 0, 0},
		{"negative", -3, 0},
		{"eight", 8, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Generate(tt.n)
			if len(got) != tt.want {
				t.Fatalf("Generate(%d) length = %d, want %d", tt.n, len(got), tt.want)
			}
			for _, r := range got {
				if !strings.ContainsRune(alphabet, r) {
					t.Errorf("Generate(%d) = %q contains %q", tt.n, got, r)
				}
			}
		})
	}
}

func TestPrefixed(t *testing.T) {
	got := Prefixed("dlg", 6)
	if !strings.HasPrefix(got, "dlg-") || len(got) != len("dlg-")+6 {
		t.Errorf("Prefixed() = %q", got)
	}
}
