package draft

import "slices"

type historyState struct {
	undo []Document
	redo []Document
}

func (h historyState) pushUndo(d Document, limit int) historyState {
	if limit < 0 {
		return h
	}
	undo := append(slices.Clip(h.undo), d)
	if len(undo) > limit {
		undo = undo[len(undo)-limit:]
	}
	h.undo = undo
	return h
}

func (s EditorState) CanUndo() bool { return len(s.hist.undo) > 0 }

func (s EditorState) CanRedo() bool { return len(s.hist.redo) > 0 }

// Undo restores the previous document and the selection from before the
// undone edit.
func (s EditorState) Undo() (EditorState, bool) {
	if len(s.hist.undo) == 0 {
		return s, false
	}
	cur := s.doc

	i := len(s.hist.undo) - 1
	prev := s.hist.undo[i]
	s.hist.undo = slices.Clip(s.hist.undo[:i])
	s.hist.redo = append(slices.Clip(s.hist.redo), cur)

	s.doc = prev
	s.sel = cur.selBefore
	s.override = StyleSet{}
	s.hasOverride = false
	s.lastChange = ChangeUndo
	s.version++
	return s, true
}

// Redo reapplies the most recently undone document.
func (s EditorState) Redo() (EditorState, bool) {
	if len(s.hist.redo) == 0 {
		return s, false
	}
	cur := s.doc

	i := len(s.hist.redo) - 1
	next := s.hist.redo[i]
	s.hist.redo = slices.Clip(s.hist.redo[:i])
	s.hist = s.hist.pushUndo(cur, s.opt.HistoryLimit)

	s.doc = next
	s.sel = next.selAfter
	s.override = StyleSet{}
	s.hasOverride = false
	s.lastChange = ChangeRedo
	s.version++
	return s, true
}
