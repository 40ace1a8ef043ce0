package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/beelazy/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawTextColored(0, 0, "bee", core.ColorYellow)
	s.DrawTextColored(4, 0, "lazy", core.ColorYellow)
	s.DrawTextColored(0, 2, "end", core.ColorRed)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, expected 3", len(lines))
	}
	if !strings.Contains(lines[0], "bee") || !strings.Contains(lines[0], "lazy") {
		t.Errorf("first line lost its text: %q", lines[0])
	}
	if !strings.Contains(lines[2], "end") {
		t.Errorf("last line lost its text: %q", lines[2])
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"ab", 6, "  ab"},
		{"abc", 6, " abc"},
		{"toolong", 4, "toolong"},
		{"", 4, "  "},
	}
	for _, tt := range tests {
		if got := centerText(tt.text, tt.width); got != tt.want {
			t.Errorf("centerText(%q, %d) = %q, expected %q", tt.text, tt.width, got, tt.want)
		}
	}
}
