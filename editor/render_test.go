package editor

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/deepak-shinde14/demo-editor/draft"
	"github.com/deepak-shinde14/demo-editor/trigger"
)

func TestRender_CursorCellWhenFocused(t *testing.T) {
	m := New(Config{
		Content: docOf("ab"),
		Style:   Style{Text: lipgloss.NewStyle(), Cursor: lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)},
	})

	got := m.renderContent()
	want := " a b"
	if got != want {
		t.Fatalf("unexpected cursor rendering:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_CursorAtBlockEnd(t *testing.T) {
	m := New(Config{
		Content: docOf("ab"),
		Style:   Style{Cursor: lipgloss.NewStyle().SetString("|")},
	})
	m = press(m, keyRight, keyRight)

	if got := m.renderContent(); !strings.HasPrefix(got, "ab") || !strings.Contains(got, "|") {
		t.Fatalf("cursor at end: got %q", got)
	}
}

func TestRenderDocument_LineNumberAlignment(t *testing.T) {
	lines := make([]string, 12)
	for i := range lines {
		lines[i] = "x"
	}
	got := strings.Split(RenderDocument(docOf(lines...), Style{}, true), "\n")
	if len(got) != 12 {
		t.Fatalf("lines: got %d, want 12", len(got))
	}
	if got[0] != " 1 x" || got[11] != "12 x" {
		t.Fatalf("gutter: got %q / %q", got[0], got[11])
	}
}

func TestRenderDocument_CustomStylesEmitANSI(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI)
	defer lipgloss.SetColorProfile(termenv.Ascii)

	cases := []struct {
		style draft.Style
		seq   string
	}{
		{style: trigger.StyleRed, seq: "\x1b[31m"},
		{style: trigger.StyleUnderline, seq: "\x1b[4m"},
		{style: trigger.StyleBold, seq: "\x1b[1m"},
	}
	for _, tc := range cases {
		doc := draft.NewDocument(draft.NewBlock("k", draft.BlockUnstyled, "x", draft.NewStyleSet(tc.style)))
		if got := RenderDocument(doc, DefaultStyle(), false); !strings.Contains(got, tc.seq) {
			t.Fatalf("%s: got %q, want sequence %q", tc.style, got, tc.seq)
		}
	}
}

func TestRenderDocument_PlainWithoutStyles(t *testing.T) {
	doc := draft.NewDocument(
		draft.NewBlock("a", draft.BlockHeaderOne, "Title", draft.StyleSet{}),
		draft.NewBlock("b", draft.BlockUnstyled, "body", draft.NewStyleSet(trigger.StyleRed)),
	)
	if got := RenderDocument(doc, DefaultStyle(), false); got != "Title\nbody" {
		t.Fatalf("got %q", got)
	}
}

func TestStyleFromEffect(t *testing.T) {
	s := StyleFromEffect(trigger.VisualEffect{Color: "Red", TextDecoration: "underline"})
	if got := s.GetForeground(); got != lipgloss.Color("1") {
		t.Fatalf("foreground: got %v", got)
	}
	if !s.GetUnderline() {
		t.Fatalf("expected underline")
	}

	hex := StyleFromEffect(trigger.VisualEffect{Color: "#ff0000"})
	if got := hex.GetForeground(); got != lipgloss.Color("#ff0000") {
		t.Fatalf("hex foreground: got %v", got)
	}
}
