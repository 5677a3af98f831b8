package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/deepak-shinde14/demo-editor/draft"
)

// Model is a Bubble Tea component that renders and edits a draft.EditorState.
type Model struct {
	cfg   Config
	state draft.EditorState
	log   zerolog.Logger

	focused bool
	width   int

	viewport viewport.Model

	lastVersion uint64

	// savedDoc is the document last reported saved; used for the dirty marker.
	savedDoc draft.Document
	status   string
}

func New(cfg Config) Model {
	if keyMapIsZero(cfg.KeyMap) {
		cfg.KeyMap = DefaultKeyMap()
	}
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}

	state := draft.NewEditorStateWithContent(cfg.Content, draft.Options{HistoryLimit: cfg.HistoryLimit})
	m := Model{
		cfg:      cfg,
		state:    state,
		log:      log,
		focused:  true,
		viewport: viewport.New(0, 0),
		savedDoc: state.Document(),
	}
	m.lastVersion = m.state.Version()
	m.rebuildContent()
	return m
}

func keyMapIsZero(km KeyMap) bool {
	for _, b := range km.Bindings() {
		if len(b.Keys()) > 0 {
			return false
		}
	}
	return true
}

// State returns the current editor state.
func (m Model) State() draft.EditorState { return m.state }

// SetState replaces the editor state, for example after loading a document.
// The new document counts as saved.
func (m Model) SetState(s draft.EditorState) Model {
	m.state = s
	m.savedDoc = s.Document()
	m.notifyChange()
	m.rebuildContent()
	m.followCursor()
	return m
}

// Dirty reports whether the document differs from the last saved one.
func (m Model) Dirty() bool { return !m.state.Document().Equal(m.savedDoc) }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	if m.cfg.ShowStatus && height > 0 {
		height--
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case SavedMsg:
		return m.handleSaved(msg), nil
	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.updateKey(msg)
		if m.notifyChange() {
			m.rebuildContent()
			m.followCursor()
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	if !m.cfg.ShowStatus {
		return m.viewport.View()
	}
	return m.viewport.View() + "\n" + m.statusLine()
}

func (m Model) handleSaved(msg SavedMsg) Model {
	if msg.Err != nil {
		m.status = "save failed: " + msg.Err.Error()
		m.log.Error().Err(msg.Err).Uint64("version", msg.Version).Msg("save failed")
		return m
	}
	m.savedDoc = msg.doc
	m.status = "saved"
	m.log.Info().Uint64("version", msg.Version).Msg("document saved")
	return m
}

// notifyChange fires OnChange when the state moved since the last call.
func (m *Model) notifyChange() bool {
	ver := m.state.Version()
	if ver == m.lastVersion {
		return false
	}
	m.lastVersion = ver
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.state))
	}
	return true
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

// followCursor scrolls so the block holding the caret is visible.
func (m *Model) followCursor() {
	row := m.state.Document().IndexOf(m.state.Selection().Focus.Key)
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 || row < 0 {
		return
	}

	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}
