package trigger

import (
	"testing"

	"github.com/deepak-shinde14/demo-editor/draft"
)

// typeInto feeds text one character at a time the way a host does: Evaluate
// first, default insertion otherwise.
func typeInto(s draft.EditorState, text string) draft.EditorState {
	for _, r := range text {
		ch := string(r)
		if next, ok := Evaluate(s, ch); ok {
			s = next
			continue
		}
		doc := draft.InsertText(s.Document(), s.Selection(), ch, s.CurrentInlineStyle())
		s = s.Push(doc, draft.ChangeInsertCharacters)
	}
	return s
}

func stateWithText(text string) draft.EditorState {
	s := draft.NewEditorStateWithContent(draft.NewDocument(draft.NewBlock("k", draft.BlockUnstyled, text, draft.StyleSet{})), draft.Options{})
	return s.SetSelection(draft.Collapsed("k", len([]rune(text))))
}

func TestDetect_ExactTriggers(t *testing.T) {
	cases := []struct {
		text string
		want StyleKind
	}{
		{text: "#", want: Heading},
		{text: "*", want: Bold},
		{text: "**", want: HighlightColor},
		{text: "***", want: Underline},
	}
	for _, tc := range cases {
		t.Run(tc.want.String(), func(t *testing.T) {
			m, ok := Detect(stateWithText(tc.text), " ")
			if !ok || m.Capitalize || m.Kind != tc.want {
				t.Fatalf("Detect(%q)=%+v,%v, want kind %v", tc.text, m, ok, tc.want)
			}
		})
	}
}

func TestDetect_NoMatch(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		input string
	}{
		{name: "suffix bold", text: "ab*", input: " "},
		{name: "suffix heading", text: "x#", input: " "},
		{name: "four stars", text: "****", input: " "},
		{name: "trigger then letter", text: "#", input: "a"},
		{name: "trigger then tab", text: "*", input: "\t"},
		{name: "uppercase on empty", text: "", input: "A"},
		{name: "digit on empty", text: "", input: "1"},
		{name: "sharp s on empty", text: "", input: "ß"},
		{name: "accented letter on empty", text: "", input: "é"},
		{name: "greek letter on empty", text: "", input: "ω"},
		{name: "kra on empty", text: "", input: "ĸ"},
		{name: "lowercase on non-empty", text: "x", input: "a"},
		{name: "space on empty", text: "", input: " "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := stateWithText(tc.text)
			if m, ok := Detect(s, tc.input); ok {
				t.Fatalf("unexpected match %+v", m)
			}
			next, handled := Evaluate(s, tc.input)
			if handled {
				t.Fatalf("Evaluate reported handled")
			}
			if next.Version() != s.Version() {
				t.Fatalf("unhandled input changed the state")
			}
		})
	}
}

func TestEvaluate_CapitalizesFirstLetter(t *testing.T) {
	s := draft.NewEditorState(draft.Options{})
	next, ok := Evaluate(s, "h")
	if !ok {
		t.Fatalf("expected handled")
	}
	if got := next.CurrentBlock().Text(); got != "H" {
		t.Fatalf("text=%q, want H", got)
	}
	if got := next.LastChangeType(); got != draft.ChangeInsertCharacters {
		t.Fatalf("change=%q, want %q", got, draft.ChangeInsertCharacters)
	}
	if got := next.Selection().Anchor.Offset; got != 1 {
		t.Fatalf("caret=%d, want 1", got)
	}
}

func TestEvaluate_CapitalizesDecomposedLetter(t *testing.T) {
	next, ok := Evaluate(draft.NewEditorState(draft.Options{}), "e\u0301")
	if !ok {
		t.Fatalf("expected handled")
	}
	if got := next.CurrentBlock().Text(); got != "E\u0301" {
		t.Fatalf("text=%q, want %q", got, "E\u0301")
	}
}

func TestEvaluate_CapitalizationKeepsActiveStyle(t *testing.T) {
	for _, st := range []draft.Style{StyleBold, StyleRed, StyleUnderline} {
		t.Run(string(st), func(t *testing.T) {
			s := draft.NewEditorState(draft.Options{}).SetInlineStyleOverride(draft.NewStyleSet(st))
			next, ok := Evaluate(s, "q")
			if !ok {
				t.Fatalf("expected handled")
			}
			b := next.CurrentBlock()
			if b.Text() != "Q" || !b.StyleAt(0).Equal(draft.NewStyleSet(st)) {
				t.Fatalf("text=%q style=%s, want Q with %s", b.Text(), b.StyleAt(0), st)
			}
		})
	}
}

func TestEvaluate_CapitalizationBeatsTriggers(t *testing.T) {
	s := typeInto(draft.NewEditorState(draft.Options{}), "abc")
	if got := s.CurrentBlock().Text(); got != "Abc" {
		t.Fatalf("text=%q, want Abc", got)
	}
}

func TestEvaluate_SuffixTriggerInsertsSpace(t *testing.T) {
	s := typeInto(draft.NewEditorState(draft.Options{}), "ab* ")
	b := s.CurrentBlock()
	if got := b.Text(); got != "Ab* " {
		t.Fatalf("text=%q, want %q", got, "Ab* ")
	}
	if !s.CurrentInlineStyle().IsEmpty() {
		t.Fatalf("no style expected, got %s", s.CurrentInlineStyle())
	}
}
