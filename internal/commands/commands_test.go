package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/deepak-shinde14/demo-editor/draft"
	"github.com/deepak-shinde14/demo-editor/internal/config"
	"github.com/deepak-shinde14/demo-editor/store"
)

const sampleRaw = `{
  "blocks": [
    {"key": "h1", "text": "Title", "type": "header-one", "depth": 0, "inlineStyleRanges": [], "entityRanges": [], "data": {}},
    {"key": "p1", "text": "red text", "type": "unstyled", "depth": 0,
     "inlineStyleRanges": [{"offset": 0, "length": 3, "style": "RED"}], "entityRanges": [], "data": {}}
  ],
  "entityMap": {}
}`

type harness struct {
	flags *Flags
	out   bytes.Buffer
	errs  bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	dir := t.TempDir()

	cfg, err := config.Load("", dir)
	require.NoError(t, err)

	st, err := store.Open(dir, store.DefaultOpenOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	return &harness{flags: &Flags{DataDir: dir, Config: cfg, Store: st}}
}

func (h *harness) run(t *testing.T, stdin string, args ...string) error {
	t.Helper()
	h.out.Reset()
	h.errs.Reset()

	app := &cli.Command{
		Name:      "demo-editor",
		Reader:    strings.NewReader(stdin),
		Writer:    &h.out,
		ErrWriter: &h.errs,
	}
	app = NewExportCmd(h.flags).Register(app)
	app = NewImportCmd(h.flags).Register(app)
	app = NewRenderCmd(h.flags).Register(app)
	app = NewKeysCmd(h.flags).Register(app)
	app = NewConfigCmd(h.flags).Register(app)

	return app.Run(context.Background(), append([]string{"demo-editor"}, args...))
}

func TestImportExport_RoundTrip(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run(t, sampleRaw, "import"))
	assert.Contains(t, h.out.String(), `imported 2 blocks into "editorContent"`)

	require.NoError(t, h.run(t, "", "export", "--compact"))
	doc, err := draft.Unmarshal(bytes.TrimSpace(h.out.Bytes()))
	require.NoError(t, err)

	want, err := draft.Unmarshal([]byte(sampleRaw))
	require.NoError(t, err)
	assert.True(t, doc.Equal(want), "exported document differs from imported one")
}

func TestImport_FromFileUnderKey(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleRaw), 0o644))

	require.NoError(t, h.run(t, "", "import", "--key", "notes", "-f", path))

	has, err := h.flags.Store.Has(context.Background(), "notes")
	require.NoError(t, err)
	assert.True(t, has)
}

func TestImport_RejectsInvalidDocument(t *testing.T) {
	h := newHarness(t)

	err := h.run(t, `{"blocks": [], "entityMap": {}}`, "import")
	require.Error(t, err)
	assert.ErrorIs(t, err, draft.ErrInvalidRaw)

	has, err := h.flags.Store.Has(context.Background(), store.DefaultKey)
	require.NoError(t, err)
	assert.False(t, has, "invalid documents must not be stored")
}

func TestExport_ToFile(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run(t, sampleRaw, "import"))

	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, h.run(t, "", "export", "-o", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"blocks\"")
}

func TestExport_MissingKey(t *testing.T) {
	h := newHarness(t)

	err := h.run(t, "", "export", "--key", "nope")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRender_Plain(t *testing.T) {
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.ANSI)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	h := newHarness(t)
	require.NoError(t, h.run(t, sampleRaw, "import"))

	require.NoError(t, h.run(t, "", "render", "--plain", "--line-numbers"))
	assert.Equal(t, "1 Title\n2 red text\n", h.out.String())
	assert.Equal(t, termenv.ANSI, lipgloss.ColorProfile(), "render restores the color profile")
}

func TestKeys_ListsDocuments(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run(t, "", "keys"))
	assert.Contains(t, h.errs.String(), "No documents stored")

	require.NoError(t, h.run(t, sampleRaw, "import", "--key", "b-doc"))
	require.NoError(t, h.run(t, sampleRaw, "import", "--key", "a-doc"))
	require.NoError(t, h.run(t, "", "keys"))

	lines := strings.Split(strings.TrimSpace(h.out.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "KEY"))
	assert.True(t, strings.HasPrefix(lines[1], "a-doc"))
	assert.True(t, strings.HasPrefix(lines[2], "b-doc"))
	assert.Contains(t, lines[1], " B")
}

func TestConfig_PrintsEffectiveConfig(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run(t, "", "config"))
	assert.Contains(t, h.out.String(), "storage_key: editorContent")
}

func TestStorageKey_OverrideWins(t *testing.T) {
	f := &Flags{Config: &config.Config{StorageKey: "configured"}}
	assert.Equal(t, "configured", f.storageKey(""))
	assert.Equal(t, "explicit", f.storageKey("explicit"))
}
