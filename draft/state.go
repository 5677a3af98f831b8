package draft

// ChangeType tags each pushed document for undo bucketing.
type ChangeType string

const (
	ChangeNone             ChangeType = ""
	ChangeInsertCharacters ChangeType = "insert-characters"
	ChangeRemoveRange      ChangeType = "remove-range"
	ChangeBackspace        ChangeType = "backspace-character"
	ChangeDeleteCharacter  ChangeType = "delete-character"
	ChangeSplitBlock       ChangeType = "split-block"
	ChangeBlockType        ChangeType = "change-block-type"
	ChangeInlineStyle      ChangeType = "change-inline-style"
	ChangeAdjustDepth      ChangeType = "adjust-depth"
	ChangeUndo             ChangeType = "undo"
	ChangeRedo             ChangeType = "redo"
)

const defaultHistoryLimit = 1000

type Options struct {
	HistoryLimit int // default: 1000; negative disables undo
}

// EditorState pairs a Document with a Selection. It is a value: every method
// that changes something returns a new EditorState.
type EditorState struct {
	doc        Document
	sel        Selection
	lastChange ChangeType
	version    uint64

	override    StyleSet
	hasOverride bool

	opt  Options
	hist historyState
}

// NewEditorState returns a state holding a single empty block.
func NewEditorState(opt Options) EditorState {
	return NewEditorStateWithContent(NewDocument(), opt)
}

// NewEditorStateWithContent returns a state with the caret at the start of
// the first block of doc.
func NewEditorStateWithContent(doc Document, opt Options) EditorState {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = defaultHistoryLimit
	}
	if doc.BlockCount() == 0 {
		doc = NewDocument()
	}
	sel := Collapsed(doc.FirstBlock().Key(), 0)
	return EditorState{
		doc: doc.withSelections(sel, sel),
		sel: sel,
		opt: opt,
	}
}

func (s EditorState) Document() Document { return s.doc }

func (s EditorState) Selection() Selection { return s.sel }

func (s EditorState) LastChangeType() ChangeType { return s.lastChange }

// Version increases with every derived state.
func (s EditorState) Version() uint64 { return s.version }

// InlineStyleOverride returns the style queued for the next insertion.
func (s EditorState) InlineStyleOverride() (StyleSet, bool) {
	return s.override, s.hasOverride
}

// SetInlineStyleOverride queues style for the next insertion at a collapsed
// selection.
func (s EditorState) SetInlineStyleOverride(style StyleSet) EditorState {
	s.override = style
	s.hasOverride = true
	s.version++
	return s
}

// SetSelection moves the selection and drops any inline style override.
func (s EditorState) SetSelection(sel Selection) EditorState {
	s.doc.mustIndex(sel.Anchor.Key)
	s.doc.mustIndex(sel.Focus.Key)
	if sel == s.sel && !s.hasOverride {
		return s
	}
	s.sel = sel
	s.override = StyleSet{}
	s.hasOverride = false
	s.version++
	return s
}

// CurrentBlock returns the block containing the selection start.
func (s EditorState) CurrentBlock() Block {
	return s.doc.blocks[s.doc.mustIndex(s.sel.Start().Key)]
}

// CurrentInlineStyle returns the style that typing would apply: the override
// if set, else the style of the character before a collapsed caret, else the
// first character of the block, else the last character of the nearest
// non-empty block above.
func (s EditorState) CurrentInlineStyle() StyleSet {
	if s.hasOverride {
		return s.override
	}
	start := s.sel.Start()
	i := s.doc.mustIndex(start.Key)
	b := s.doc.blocks[i]
	off := b.clampOffset(start.Offset)

	if s.sel.IsCollapsed() {
		if off > 0 {
			return b.StyleAt(off - 1)
		}
		if b.Len() > 0 {
			return b.StyleAt(0)
		}
		return s.doc.styleAbove(i)
	}
	if off < b.Len() {
		return b.StyleAt(off)
	}
	if off > 0 {
		return b.StyleAt(off - 1)
	}
	return s.doc.styleAbove(i)
}

func (d Document) styleAbove(i int) StyleSet {
	for j := i - 1; j >= 0; j-- {
		if n := d.blocks[j].Len(); n > 0 {
			return d.blocks[j].StyleAt(n - 1)
		}
	}
	return StyleSet{}
}

// Push makes doc current, moves the selection to doc.SelectionAfter, and
// records the previous document for undo. Consecutive insertions,
// backspaces or deletions with a contiguous selection share one undo entry.
func (s EditorState) Push(doc Document, ct ChangeType) EditorState {
	cur := s.doc
	if s.sel != cur.selAfter || s.mustBecomeBoundary(ct) {
		s.hist = s.hist.pushUndo(cur, s.opt.HistoryLimit)
		doc = doc.withSelectionBefore(s.sel)
	} else if isCoalescing(ct) {
		doc = doc.withSelectionBefore(cur.selBefore)
	}
	s.hist.redo = nil

	if !keepsOverride(ct) {
		s.override = StyleSet{}
		s.hasOverride = false
	}

	s.doc = doc
	s.sel = doc.selAfter
	s.lastChange = ct
	s.version++
	return s
}

func (s EditorState) mustBecomeBoundary(ct ChangeType) bool {
	return s.lastChange != ct || !isCoalescing(ct)
}

func isCoalescing(ct ChangeType) bool {
	switch ct {
	case ChangeInsertCharacters, ChangeBackspace, ChangeDeleteCharacter:
		return true
	default:
		return false
	}
}

func keepsOverride(ct ChangeType) bool {
	switch ct {
	case ChangeAdjustDepth, ChangeBlockType, ChangeSplitBlock:
		return true
	default:
		return false
	}
}
