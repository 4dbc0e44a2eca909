package ui

import "testing"

func TestNormalizeAccentColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "empty", input: "", want: "", ok: false},
		{name: "none", input: "none", want: "", ok: false},
		{name: "off", input: "off", want: "", ok: false},
		{name: "default", input: "default", want: "", ok: false},
		{name: "ansi code", input: "39", want: "39", ok: true},
		{name: "ansi zero", input: "0", want: "0", ok: true},
		{name: "ansi with whitespace", input: "  244 ", want: "244", ok: true},
		{name: "ansi out of range", input: "256", want: "", ok: false},
		{name: "negative ansi", input: "-1", want: "", ok: false},
		{name: "hex 6", input: "#A78BFA", want: "#a78bfa", ok: true},
		{name: "hex 3 expands", input: "#abc", want: "#aabbcc", ok: true},
		{name: "hex wrong length", input: "#abcd", want: "", ok: false},
		{name: "bad hex digits", input: "#zzzzzz", want: "", ok: false},
		{name: "color name", input: "purple", want: "", ok: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, ok := normalizeAccentColor(tt.input)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestConfigureTheme(t *testing.T) {
	restoreStyles(t)

	ConfigureTheme("39")
	got, ok := AccentColor()
	if !ok || got != "39" {
		t.Fatalf("expected accent color '39', got %q (ok=%v)", got, ok)
	}

	// An unusable value falls back to the built-in accent.
	ConfigureTheme("none")
	if _, ok := AccentColor(); ok {
		t.Fatalf("expected accent color to be unset")
	}
}

func TestDisableStyles(t *testing.T) {
	restoreStyles(t)

	ConfigureTheme("#abc")
	DisableStyles()

	if _, ok := AccentColor(); ok {
		t.Fatalf("expected accent color to be cleared")
	}
	const sample = "Seed 12345"
	if Accent.Render(sample) != sample || Bold.Render(sample) != sample {
		t.Errorf("expected disabled styles to pass text through unchanged")
	}
}
