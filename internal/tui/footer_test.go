package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/mark3labs/selectr/internal/selectbox"
)

func TestFooterContent(t *testing.T) {
	f := NewFooter(DefaultKeyMap().ShortHelp())
	f.SetBindings(selectbox.DefaultKeyMap().ShortHelp())

	got := ansi.Strip(f.buildFooterContent(120))
	for _, want := range []string{"[enter]open/select", "[ctrl+x]clear", "[tab]next", "[q]cancel"} {
		if !strings.Contains(got, want) {
			t.Errorf("footer %q should contain %q", got, want)
		}
	}
	if w := ansi.StringWidth(got); w > 120 {
		t.Errorf("footer width %d exceeds 120", w)
	}
}

func TestFooterCondensed(t *testing.T) {
	f := NewFooter(DefaultKeyMap().ShortHelp())
	f.SetBindings(selectbox.DefaultKeyMap().ShortHelp())

	got := ansi.Strip(f.buildFooterContent(30))
	if strings.Contains(got, "[") {
		t.Errorf("narrow footer should use the condensed help view, got %q", got)
	}
	if w := ansi.StringWidth(got); w > 30 {
		t.Errorf("condensed footer width %d exceeds 30", w)
	}
}
