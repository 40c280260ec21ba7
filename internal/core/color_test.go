package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in       string
		expected Color
		ok       bool
	}{
		{"red", ColorRed, true},
		{" Bright-Cyan ", ColorBrightCyan, true},
		{"#ff8700", ColorOrange, true},
		{"#0a0af0", ColorBlue, true},
		{"#f00", ColorBrightRed, true},
		{"default", ColorDefault, true},
		{"#zzzzzz", ColorDefault, false},
		{"chartreuse", ColorDefault, false},
		{"", ColorDefault, false},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseColor(tc.in)
			if ok != tc.ok || got != tc.expected {
				t.Errorf("ParseColor(%q) = (%v, %v), expected (%v, %v)", tc.in, got, ok, tc.expected, tc.ok)
			}
		})
	}
}

func TestNearestColorExact(t *testing.T) {
	for _, p := range palette {
		if got := NearestColor(p.rgb); got != p.color {
			t.Errorf("NearestColor(%v) = %v, expected %v", p.rgb, got, p.color)
		}
	}
}

func TestColorString(t *testing.T) {
	if ColorGray.String() != "gray" {
		t.Errorf("ColorGray.String() = %q", ColorGray.String())
	}
	if ColorDefault.String() != "default" {
		t.Errorf("ColorDefault.String() = %q", ColorDefault.String())
	}
}
