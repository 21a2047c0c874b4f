//go:build !mobile

package scenes

import "testing"

func TestRestartHint(t *testing.T) {
	tests := []struct {
		env      string
		wantText string
		wantLeft int
	}{
		{"1", "TAP TO RESTART", 198},
		{"", "CLICK TO RESTART", 192},
	}

	for _, tt := range tests {
		t.Setenv("HOPBALL_MOBILE_EMULATE", tt.env)
		hint := restartHint()
		if hint != tt.wantText {
			t.Errorf("HOPBALL_MOBILE_EMULATE=%q: restartHint() = %q, want %q", tt.env, hint, tt.wantText)
		}
		if got := hintTextLeft(hint); got != tt.wantLeft {
			t.Errorf("hintTextLeft(%q) = %d, want %d", hint, got, tt.wantLeft)
		}
	}
}
