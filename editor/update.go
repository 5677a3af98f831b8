package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/deepak-shinde14/demo-editor/draft"
	"github.com/deepak-shinde14/demo-editor/internal/grapheme"
	"github.com/deepak-shinde14/demo-editor/trigger"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Paste events insert literal text and never trigger shortcuts or
	// formatting.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.insertLiteral(string(msg.Runes))
		}
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.move(draft.MoveGrapheme, draft.DirLeft, false)
	case key.Matches(msg, km.Right):
		m.move(draft.MoveGrapheme, draft.DirRight, false)
	case key.Matches(msg, km.Up):
		m.move(draft.MoveLine, draft.DirUp, false)
	case key.Matches(msg, km.Down):
		m.move(draft.MoveLine, draft.DirDown, false)

	case key.Matches(msg, km.ShiftLeft):
		m.move(draft.MoveGrapheme, draft.DirLeft, true)
	case key.Matches(msg, km.ShiftRight):
		m.move(draft.MoveGrapheme, draft.DirRight, true)
	case key.Matches(msg, km.ShiftUp):
		m.move(draft.MoveLine, draft.DirUp, true)
	case key.Matches(msg, km.ShiftDown):
		m.move(draft.MoveLine, draft.DirDown, true)

	case key.Matches(msg, km.WordLeft):
		m.move(draft.MoveWord, draft.DirLeft, false)
	case key.Matches(msg, km.WordRight):
		m.move(draft.MoveWord, draft.DirRight, false)

	case key.Matches(msg, km.Home):
		m.move(draft.MoveLine, draft.DirHome, false)
	case key.Matches(msg, km.End):
		m.move(draft.MoveLine, draft.DirEnd, false)
	case key.Matches(msg, km.DocStart):
		m.move(draft.MoveDoc, draft.DirHome, false)
	case key.Matches(msg, km.DocEnd):
		m.move(draft.MoveDoc, draft.DirEnd, false)

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			m.deleteBackward()
		}
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			m.deleteForward()
		}
	case key.Matches(msg, km.Enter):
		if !m.cfg.ReadOnly {
			m.splitBlock()
		}

	case key.Matches(msg, km.Undo):
		if !m.cfg.ReadOnly {
			if s, ok := m.state.Undo(); ok {
				m.state = s
			}
		}
	case key.Matches(msg, km.Redo):
		if !m.cfg.ReadOnly {
			if s, ok := m.state.Redo(); ok {
				m.state = s
			}
		}

	case key.Matches(msg, km.Save):
		return m.save()

	default:
		if msg.Type == tea.KeySpace {
			if !m.cfg.ReadOnly {
				m.typeText(" ")
			}
			return m, nil
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			if !m.cfg.ReadOnly {
				m.typeText(string(msg.Runes))
			}
		}
	}

	return m, nil
}

func (m *Model) move(unit draft.MoveUnit, dir draft.MoveDir, extend bool) {
	m.state = draft.MoveCaret(m.state, draft.Move{Unit: unit, Dir: dir, Extend: extend})
}

// typeText commits text one grapheme at a time. Each grapheme is offered to
// the trigger rules before it falls back to plain insertion.
func (m *Model) typeText(text string) {
	for _, g := range grapheme.Split(text) {
		mt, ok := trigger.Detect(m.state, g)
		if !ok {
			m.insert(g)
			continue
		}
		m.state, _ = trigger.Evaluate(m.state, g)
		m.logTrigger(mt)
	}
}

func (m *Model) logTrigger(mt trigger.Match) {
	ev := m.log.Debug().Str("block", m.state.CurrentBlock().Key())
	if mt.Capitalize {
		ev.Msg("capitalized first letter")
		return
	}
	ev.Stringer("kind", mt.Kind).Msg("trigger applied")
}

func (m *Model) insert(text string) {
	s := m.state
	doc := draft.ReplaceText(s.Document(), s.Selection(), text, s.CurrentInlineStyle())
	m.state = s.Push(doc, draft.ChangeInsertCharacters)
}

// insertLiteral inserts pasted text without trigger processing; line breaks
// start new blocks.
func (m *Model) insertLiteral(text string) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			m.state = m.state.Push(draft.SplitBlock(m.state.Document(), m.state.Selection()), draft.ChangeSplitBlock)
		}
		if line != "" {
			m.insert(line)
		}
	}
}

func (m *Model) removeRange(sel draft.Selection, ct draft.ChangeType) {
	m.state = m.state.Push(draft.RemoveRange(m.state.Document(), sel), ct)
}

// deleteBackward removes the selection, the grapheme before the caret, the
// block style of an empty styled block, or the boundary with the previous
// block, in that order of preference.
func (m *Model) deleteBackward() {
	s := m.state
	sel := s.Selection()
	if !sel.IsCollapsed() {
		m.removeRange(sel, draft.ChangeRemoveRange)
		return
	}

	doc := s.Document()
	b := s.CurrentBlock()
	off := sel.Focus.Offset
	if off > 0 {
		prev := grapheme.Prev(b.Text(), off)
		m.removeRange(draft.NewSelection(doc, draft.Pos{Key: b.Key(), Offset: prev}, sel.Focus), draft.ChangeBackspace)
		return
	}

	if b.Type() != draft.BlockUnstyled && (b.Len() == 0 || doc.IndexOf(b.Key()) == 0) {
		m.state = s.Push(draft.SetBlockType(doc, sel, draft.BlockUnstyled), draft.ChangeBlockType)
		return
	}

	above, ok := doc.BlockBefore(b.Key())
	if !ok {
		return
	}
	m.removeRange(draft.NewSelection(doc, draft.Pos{Key: above.Key(), Offset: above.Len()}, sel.Focus), draft.ChangeBackspace)
}

// deleteForward removes the selection, the grapheme after the caret, or the
// boundary with the next block.
func (m *Model) deleteForward() {
	s := m.state
	sel := s.Selection()
	if !sel.IsCollapsed() {
		m.removeRange(sel, draft.ChangeRemoveRange)
		return
	}

	doc := s.Document()
	b := s.CurrentBlock()
	off := sel.Focus.Offset
	if off < b.Len() {
		next := grapheme.Next(b.Text(), off)
		m.removeRange(draft.NewSelection(doc, sel.Focus, draft.Pos{Key: b.Key(), Offset: next}), draft.ChangeDeleteCharacter)
		return
	}

	below, ok := doc.BlockAfter(b.Key())
	if !ok {
		return
	}
	m.removeRange(draft.NewSelection(doc, sel.Focus, draft.Pos{Key: below.Key(), Offset: 0}), draft.ChangeDeleteCharacter)
}

// splitBlock starts a new block at the caret. Splitting a styled block at its
// end yields an unstyled block, so a heading does not continue onto the next
// line.
func (m *Model) splitBlock() {
	s := m.state
	doc := s.Document()
	atEnd := s.Selection().End().Offset >= s.CurrentBlock().Len() &&
		s.Selection().End().Key == s.CurrentBlock().Key()
	typ := s.CurrentBlock().Type()

	next := draft.SplitBlock(doc, s.Selection())
	if atEnd && typ != draft.BlockUnstyled {
		next = draft.SetBlockType(next, next.SelectionAfter(), draft.BlockUnstyled)
	}
	m.state = s.Push(next, draft.ChangeSplitBlock)
}

func (m Model) save() (Model, tea.Cmd) {
	if m.cfg.Saver == nil {
		return m, nil
	}
	m.status = "saving…"
	m.log.Debug().Uint64("version", m.state.Version()).Msg("save requested")
	return m, saveCmd(m.cfg.Saver, m.state.Document(), m.state.Version())
}
