package titles

import (
	"strings"
	"testing"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"simple lowercase", "the dark knight", "The_Dark_Knight"},
		{"already cased", "Inception", "Inception"},
		{"shouting", "BLADE RUNNER", "Blade_Runner"},
		{"surrounding whitespace", "  Alien  ", "Alien"},
		{"whitespace runs", "2001:  a space\todyssey", "2001_A_Space_Odyssey"},
		{"path separators", "Face/Off", "Faceoff"},
		{"windows invalid characters", `What? <About* "Bob"|`, "What_About_Bob"},
		{"control characters", "Up\x00\x1f", "Up"},
		{"underscores collapse", "Snow__White___Returns", "Snow_White_Returns"},
		{"empty", "", Placeholder},
		{"only junk", "  ?? * // ", Placeholder},
		{"unknown response", "Unknown", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Derive(tt.raw); got != tt.want {
				t.Errorf("Derive(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDeriveIdempotent(t *testing.T) {
	inputs := []string{
		"the dark knight",
		"Inception",
		"2001: a space odyssey",
		"",
		"  ?? * // ",
		"Snow__White___Returns",
	}

	for _, raw := range inputs {
		once := Derive(raw)
		twice := Derive(once)
		if once != twice {
			t.Errorf("Derive not idempotent for %q: %q -> %q", raw, once, twice)
		}
	}
}

func TestDeriveNeverEmptyOrUnsafe(t *testing.T) {
	inputs := []string{"", " ", "///", "\\", "\x00", "a", "::"}

	for _, raw := range inputs {
		got := Derive(raw)
		if got == "" {
			t.Errorf("Derive(%q) returned empty string", raw)
		}
		if strings.ContainsAny(got, `/\`) {
			t.Errorf("Derive(%q) = %q contains a path separator", raw, got)
		}
	}
}
