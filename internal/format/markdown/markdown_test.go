package markdown

import (
	"strings"
	"testing"
)

func TestTitleReturnsFirstHeading(t *testing.T) {
	src := []byte("Intro text\n\n# Knife Skills\n\n## Later\n")
	if got := Title(src); got != "Knife Skills" {
		t.Fatalf("expected heading title, got %q", got)
	}
	if got := Title([]byte("no headings here")); got != "" {
		t.Fatalf("expected empty title, got %q", got)
	}
}

func TestRenderReflowsParagraphsAndLists(t *testing.T) {
	src := "# Stock\n\nSimmer the bones\nfor hours.\n\n- carrots\n- celery\n\n1. strain\n2. chill\n"
	out := Render(src, Options{Width: 80})
	for _, want := range []string{"Stock", "Simmer the bones for hours.", "• carrots", "• celery", "1. strain", "2. chill"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderWrapsToWidth(t *testing.T) {
	src := "alpha beta gamma delta epsilon zeta eta theta"
	out := Render(src, Options{Width: 12})
	for _, line := range strings.Split(out, "\n") {
		if len(line) > 12 {
			t.Fatalf("line %q exceeds width", line)
		}
	}
}

func TestRenderEmptyInput(t *testing.T) {
	if out := Render("  \n", Options{}); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}
