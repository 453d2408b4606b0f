package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
)

func TestGradient_PreservesText(t *testing.T) {
	tests := []string{"", "a", "tagbatch", "日本語", "━━━━━━", "éte"}

	for _, in := range tests {
		if got := ansi.Strip(Brand(in)); got != in {
			t.Errorf("Brand(%q) stripped = %q", in, got)
		}
		if got := ansi.Strip(BarGradient(in)); got != in {
			t.Errorf("BarGradient(%q) stripped = %q", in, got)
		}
	}
}

func TestGradient_NonHexColorFallsBack(t *testing.T) {
	got := gradient("abc", lipgloss.Color("240"), lipgloss.Color("#ffffff"), false)
	if ansi.Strip(got) != "abc" {
		t.Errorf("gradient with ANSI color stripped = %q, want abc", ansi.Strip(got))
	}
}

func TestBlend(t *testing.T) {
	start, _ := colorful.Hex("#000000")
	end, _ := colorful.Hex("#ffffff")

	colors := blend(start, end, 5)
	if len(colors) != 5 {
		t.Fatalf("blend returned %d colors, want 5", len(colors))
	}
	if colors[0] == colors[4] {
		t.Errorf("gradient endpoints should differ, both %s", colors[0])
	}
}

func TestThemeStylesCached(t *testing.T) {
	if T().S() != T().S() {
		t.Error("S() should return the same cached styles")
	}
}
