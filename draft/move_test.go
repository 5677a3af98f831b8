package draft

import "testing"

func moveDoc() Document {
	return NewDocument(
		NewBlock("a", BlockUnstyled, "one two", StyleSet{}),
		NewBlock("b", BlockUnstyled, "e\u0301x", StyleSet{}),
	)
}

func TestMoveCaret_GraphemeCrossesBlocks(t *testing.T) {
	s := NewEditorStateWithContent(moveDoc(), Options{}).SetSelection(Collapsed("a", 7))

	s = MoveCaret(s, Move{Unit: MoveGrapheme, Dir: DirRight})
	if got, want := s.Selection(), Collapsed("b", 0); got != want {
		t.Fatalf("selection=%v, want %v", got, want)
	}
	s = MoveCaret(s, Move{Unit: MoveGrapheme, Dir: DirRight})
	if got, want := s.Selection(), Collapsed("b", 2); got != want {
		t.Fatalf("selection=%v, want %v (skip combining mark)", got, want)
	}
	s = MoveCaret(s, Move{Unit: MoveGrapheme, Dir: DirLeft})
	s = MoveCaret(s, Move{Unit: MoveGrapheme, Dir: DirLeft})
	if got, want := s.Selection(), Collapsed("a", 7); got != want {
		t.Fatalf("selection=%v, want %v", got, want)
	}
}

func TestMoveCaret_Word(t *testing.T) {
	s := NewEditorStateWithContent(moveDoc(), Options{})
	s = MoveCaret(s, Move{Unit: MoveWord, Dir: DirRight})
	if got, want := s.Selection(), Collapsed("a", 3); got != want {
		t.Fatalf("selection=%v, want %v", got, want)
	}
	s = MoveCaret(s, Move{Unit: MoveWord, Dir: DirRight})
	if got, want := s.Selection(), Collapsed("a", 7); got != want {
		t.Fatalf("selection=%v, want %v", got, want)
	}
	s = MoveCaret(s, Move{Unit: MoveWord, Dir: DirLeft})
	if got, want := s.Selection(), Collapsed("a", 4); got != want {
		t.Fatalf("selection=%v, want %v", got, want)
	}
}

func TestMoveCaret_UpDownSnapsToCluster(t *testing.T) {
	s := NewEditorStateWithContent(moveDoc(), Options{}).SetSelection(Collapsed("a", 1))
	s = MoveCaret(s, Move{Unit: MoveLine, Dir: DirDown})
	if got, want := s.Selection(), Collapsed("b", 0); got != want {
		t.Fatalf("selection=%v, want %v", got, want)
	}
	s = MoveCaret(s, Move{Unit: MoveLine, Dir: DirDown})
	if got, want := s.Selection(), Collapsed("b", 3); got != want {
		t.Fatalf("selection=%v, want %v", got, want)
	}
}

func TestMoveCaret_ExtendKeepsAnchor(t *testing.T) {
	s := NewEditorStateWithContent(moveDoc(), Options{})
	s = MoveCaret(s, Move{Unit: MoveLine, Dir: DirEnd, Extend: true})
	sel := s.Selection()
	if sel.Anchor != (Pos{Key: "a", Offset: 0}) || sel.Focus != (Pos{Key: "a", Offset: 7}) || sel.Backward {
		t.Fatalf("selection=%+v", sel)
	}

	s = MoveCaret(s, Move{Unit: MoveGrapheme, Dir: DirLeft})
	if got, want := s.Selection(), Collapsed("a", 0); got != want {
		t.Fatalf("collapse left=%v, want %v", got, want)
	}
}

func TestMoveCaret_DocBounds(t *testing.T) {
	s := NewEditorStateWithContent(moveDoc(), Options{})
	s = MoveCaret(s, Move{Unit: MoveDoc, Dir: DirEnd})
	if got, want := s.Selection(), Collapsed("b", 3); got != want {
		t.Fatalf("selection=%v, want %v", got, want)
	}
	s = MoveCaret(s, Move{Unit: MoveDoc, Dir: DirHome})
	if got, want := s.Selection(), Collapsed("a", 0); got != want {
		t.Fatalf("selection=%v, want %v", got, want)
	}
}
