package editor

import "github.com/deepak-shinde14/demo-editor/draft"

type ChangeEvent struct {
	Version    uint64
	Selection  draft.Selection
	ChangeType draft.ChangeType

	// Document is immutable; hosts may keep it without copying.
	Document draft.Document

	// Style is the inline style the next typed character would get.
	Style draft.StyleSet
}

func buildChangeEvent(s draft.EditorState) ChangeEvent {
	return ChangeEvent{
		Version:    s.Version(),
		Selection:  s.Selection(),
		ChangeType: s.LastChangeType(),
		Document:   s.Document(),
		Style:      s.CurrentInlineStyle(),
	}
}
