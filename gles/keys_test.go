package gles

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestWithModifiers(t *testing.T) {
	tests := []struct {
		name                string
		shift, alt, control bool
		want                string
	}{
		{"q", false, false, false, "q"},
		{"c", false, false, true, "C-c"},
		{"Left", true, false, false, "S-Left"},
		{"x", false, true, false, "M-x"},
		{"Tab", true, true, true, "C-M-S-Tab"},
	}
	for _, tt := range tests {
		if got := withModifiers(tt.name, tt.shift, tt.alt, tt.control); got != tt.want {
			t.Errorf("withModifiers(%q, %v, %v, %v) = %q, want %q",
				tt.name, tt.shift, tt.alt, tt.control, got, tt.want)
		}
	}
}

func TestKeyNameNamedKeys(t *testing.T) {
	if got := keyName(glfw.KeyEscape, 0, 0); got != "Escape" {
		t.Errorf("Escape = %q", got)
	}
	if got := keyName(glfw.KeyF5, 0, glfw.ModControl); got != "C-F5" {
		t.Errorf("C-F5 = %q", got)
	}
	if got := keyName(glfw.KeyLeftShift, 0, glfw.ModShift); got != "" {
		t.Errorf("bare modifier = %q, want empty", got)
	}
}
