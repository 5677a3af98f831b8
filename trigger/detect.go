package trigger

import (
	"strings"

	"github.com/deepak-shinde14/demo-editor/draft"
	"github.com/deepak-shinde14/demo-editor/internal/grapheme"
)

// Match is the rule Detect recognized for a pending input.
type Match struct {
	// Capitalize is set when the input is a letter a-z typed into an empty
	// block. Kind is meaningless in that case.
	Capitalize bool
	Kind       StyleKind
}

// Detect reports which rule, if any, applies when input is about to be
// inserted into s. Only the full text of the block at the selection start is
// considered; a trigger that merely ends the text does not match.
func Detect(s draft.EditorState, input string) (Match, bool) {
	text := s.CurrentBlock().Text()

	if text == "" && grapheme.IsLowerASCII(input) {
		return Match{Capitalize: true}, true
	}
	if input != " " {
		return Match{}, false
	}
	for _, k := range Kinds() {
		if text == k.Trigger() {
			return Match{Kind: k}, true
		}
	}
	return Match{}, false
}

// Evaluate applies the rule Detect finds. It returns the new state and true
// when the input was consumed; otherwise s unchanged and false, and the host
// inserts input itself.
func Evaluate(s draft.EditorState, input string) (draft.EditorState, bool) {
	m, ok := Detect(s, input)
	if !ok {
		return s, false
	}
	if m.Capitalize {
		return capitalize(s, input), true
	}
	if m.Kind.IsBlock() {
		return ApplyBlock(s, m.Kind, m.Kind.TriggerLen()), true
	}
	return ApplyInline(s, m.Kind, m.Kind.TriggerLen()), true
}

func capitalize(s draft.EditorState, input string) draft.EditorState {
	doc := draft.ReplaceText(s.Document(), s.Selection(), strings.ToUpper(input), s.CurrentInlineStyle())
	return s.Push(doc, draft.ChangeInsertCharacters)
}
