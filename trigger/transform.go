package trigger

import (
	"fmt"

	"github.com/deepak-shinde14/demo-editor/draft"
)

// removeTrigger deletes the first n characters of the current block.
func removeTrigger(s draft.EditorState, n int) draft.EditorState {
	key := s.CurrentBlock().Key()
	doc := s.Document()
	sel := draft.NewSelection(doc, draft.Pos{Key: key, Offset: 0}, draft.Pos{Key: key, Offset: n})
	return s.Push(draft.RemoveRange(doc, sel), draft.ChangeRemoveRange)
}

// ApplyInline removes the n trigger characters and makes the inline style
// of kind the only exclusive style active at the caret. kind must not be a
// block kind.
func ApplyInline(s draft.EditorState, kind StyleKind, n int) draft.EditorState {
	if !kind.valid() || kind.IsBlock() {
		panic(fmt.Sprintf("trigger: ApplyInline with non-inline kind %v", kind))
	}
	st := kind.InlineStyle()
	next := removeTrigger(s, n)

	for _, active := range next.CurrentInlineStyle().Slice() {
		if Exclusive(active) {
			next = draft.ToggleInlineStyle(next, active)
		}
	}
	if !next.CurrentInlineStyle().Has(st) {
		next = draft.ToggleInlineStyle(next, st)
	}
	return next
}

// ApplyBlock removes the n trigger characters and toggles the current block
// to the block type of kind. kind must be a block kind.
func ApplyBlock(s draft.EditorState, kind StyleKind, n int) draft.EditorState {
	if !kind.valid() || !kind.IsBlock() {
		panic(fmt.Sprintf("trigger: ApplyBlock with non-block kind %v", kind))
	}
	return draft.ToggleBlockType(removeTrigger(s, n), kind.BlockType())
}
