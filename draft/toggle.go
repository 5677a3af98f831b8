package draft

// ToggleInlineStyle flips st. On a collapsed selection it only changes the
// inline style override, so the next typed character picks it up; on a range
// it adds or removes st across the range depending on whether the current
// style already has it.
func ToggleInlineStyle(s EditorState, st Style) EditorState {
	cur := s.CurrentInlineStyle()
	if s.sel.IsCollapsed() {
		if cur.Has(st) {
			return s.SetInlineStyleOverride(cur.Remove(st))
		}
		return s.SetInlineStyleOverride(cur.Add(st))
	}

	var doc Document
	if cur.Has(st) {
		doc = RemoveInlineStyle(s.doc, s.sel, st)
	} else {
		doc = ApplyInlineStyle(s.doc, s.sel, st)
	}
	return s.Push(doc, ChangeInlineStyle)
}

// ToggleBlockType sets typ on the selected blocks, or resets them to
// BlockUnstyled when the block at the selection start already has typ.
func ToggleBlockType(s EditorState, typ BlockType) EditorState {
	target := typ
	if s.CurrentBlock().Type() == typ {
		target = BlockUnstyled
	}
	return s.Push(SetBlockType(s.doc, s.sel, target), ChangeBlockType)
}
