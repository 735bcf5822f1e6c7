package tui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/socialwidget/internal/generator"
	"github.com/alexisbeaulieu97/socialwidget/internal/widget"
)

const (
	rowAnimation       = 6
	rowWhatsAppContact = 10
	rowEmailEnabled    = 23
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	case "clear":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()

	var cmd tea.Cmd
	for _, k := range keys {
		var updated tea.Model
		updated, cmd = m.Update(keyMsg(k))
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func moveTo(t *testing.T, m Model, index int) Model {
	t.Helper()

	for m.cursor < index {
		m, _ = press(t, m, "down")
	}
	for m.cursor > index {
		m, _ = press(t, m, "up")
	}
	return m
}

func TestNewModelDerivesState(t *testing.T) {
	t.Parallel()

	m := NewModel(widget.Default(), Options{})
	require.Len(t, m.rows, 24)
	require.Equal(t, generator.Generate(widget.Default()), m.Bundle())
	require.True(t, m.Report().Valid())
	require.Equal(t, ViewForm, m.Mode())
	require.Equal(t, DefaultOutputPath, m.outputPath)
}

func TestNewModelDoesNotAliasCaller(t *testing.T) {
	t.Parallel()

	cfg := widget.Default()
	m := NewModel(cfg, Options{})
	m = moveTo(t, m, rowEmailEnabled)
	m, _ = press(t, m, "enter")

	require.True(t, m.Config().Platform(widget.Email).Enabled)
	require.False(t, cfg.Platform(widget.Email).Enabled)
}

func TestCursorStaysInBounds(t *testing.T) {
	t.Parallel()

	m := NewModel(widget.Default(), Options{})
	m, _ = press(t, m, "up", "up")
	require.Equal(t, 0, m.cursor)

	m, _ = press(t, m, "down", "down", "k")
	require.Equal(t, 1, m.cursor)

	m, _ = press(t, m, "end", "down")
	require.Equal(t, len(m.rows)-1, m.cursor)
}

func TestToggleRevealsPlatformFields(t *testing.T) {
	t.Parallel()

	m := NewModel(widget.Default(), Options{})
	m, _ = press(t, m, "end")
	require.Equal(t, rowEmailEnabled, m.cursor)

	m, _ = press(t, m, "space")
	require.True(t, m.Config().Platform(widget.Email).Enabled)
	require.Len(t, m.rows, 28)
	require.Equal(t, rowEmailEnabled, m.cursor, "cursor follows the toggled row")
	require.Contains(t, m.Bundle(), "scw-link-email")
	require.Equal(t, widget.FieldLinkType, m.rows[rowEmailEnabled+1].field)

	m, _ = press(t, m, "enter")
	require.False(t, m.Config().Platform(widget.Email).Enabled)
	require.Len(t, m.rows, 24)
	require.NotContains(t, m.Bundle(), "scw-link-email")
}

func TestEnumCycling(t *testing.T) {
	t.Parallel()

	m := NewModel(widget.Default(), Options{})
	m = moveTo(t, m, rowAnimation)

	m, _ = press(t, m, "right")
	require.Equal(t, widget.AnimationBounce, m.Config().ButtonAnimation)

	m, _ = press(t, m, "left", "left")
	require.Equal(t, widget.AnimationNone, m.Config().ButtonAnimation)
	require.NotContains(t, m.Bundle(), "@keyframes")

	m, _ = press(t, m, "left")
	require.Equal(t, widget.AnimationShake, m.Config().ButtonAnimation, "cycling wraps around")

	m, _ = press(t, m, "enter")
	require.Equal(t, widget.AnimationNone, m.Config().ButtonAnimation)
}

func TestEditContactShowsValidation(t *testing.T) {
	t.Parallel()

	m := NewModel(widget.Default(), Options{})
	m = moveTo(t, m, rowWhatsAppContact)

	m, cmd := press(t, m, "enter")
	require.True(t, m.editing)
	require.NotNil(t, cmd)
	require.Equal(t, "15551234567", m.input.Value())

	m, _ = press(t, m, "clear", "+1 555", "enter")
	require.False(t, m.editing)
	require.Equal(t, "+1 555", m.Config().Platform(widget.WhatsApp).ContactID)
	require.False(t, m.Report().Valid())
	require.Contains(t, m.Report().Errors()[widget.WhatsApp], "7-15 digits")
	require.Contains(t, m.View(), "✗ WhatsApp number must be 7-15 digits")

	// Generation keeps going for invalid input.
	require.Contains(t, m.Bundle(), `href="https://wa.me/+1 555?text=`)
}

func TestEditEscapeCancels(t *testing.T) {
	t.Parallel()

	m := NewModel(widget.Default(), Options{})
	m = moveTo(t, m, rowWhatsAppContact)
	m, _ = press(t, m, "enter", "clear", "999", "esc")

	require.False(t, m.editing)
	require.Equal(t, "15551234567", m.Config().Platform(widget.WhatsApp).ContactID)
	require.Equal(t, "Edit cancelled", m.Status())
}

func TestEditRejectsInvalidColor(t *testing.T) {
	t.Parallel()

	m := NewModel(widget.Default(), Options{})
	m = moveTo(t, m, 1)
	m, _ = press(t, m, "enter", "clear", "red", "enter")

	require.True(t, m.editing, "stays in edit mode until the value is fixed")
	require.True(t, m.statusIsError)
	require.Contains(t, m.Status(), "#RRGGBB")
	require.Equal(t, widget.Default().HeaderBgColor, m.Config().HeaderBgColor)

	m, _ = press(t, m, "clear", "#000000", "enter")
	require.False(t, m.editing)
	require.Equal(t, "#000000", m.Config().HeaderBgColor)
	require.Contains(t, m.Bundle(), "background-color: #000000;")
}

func TestEmailLinkTypeSwitchClearsContact(t *testing.T) {
	t.Parallel()

	m := NewModel(widget.Default(), Options{})
	m, _ = press(t, m, "end", "enter", "down", "right")

	email := m.Config().Platform(widget.Email)
	require.Equal(t, widget.LinkURL, email.EmailLinkType)
	require.Empty(t, email.ContactID)
	require.Equal(t, "Link URL is required", m.Report().Errors()[widget.Email])
	require.Equal(t, "Link URL", m.rows[m.cursor+1].label)
}

func TestTabSwitchesToCodeView(t *testing.T) {
	t.Parallel()

	m := NewModel(widget.Default(), Options{})
	m, _ = press(t, m, "tab")
	require.Equal(t, ViewCode, m.Mode())
	require.Contains(t, m.View(), generator.StartMarker)

	m, _ = press(t, m, "down")
	require.Equal(t, ViewCode, m.Mode())

	m, _ = press(t, m, "tab")
	require.Equal(t, ViewForm, m.Mode())
	require.Contains(t, m.View(), "Appearance")
	require.Contains(t, m.View(), "Preview")
}

func TestWriteBundle(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "widget.html")
	m := NewModel(widget.Default(), Options{OutputPath: path})

	m, cmd := press(t, m, "w")
	require.NotNil(t, cmd)

	msg := cmd()
	written, ok := msg.(BundleWrittenMsg)
	require.True(t, ok)
	require.NoError(t, written.Err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, m.Bundle(), string(data))

	updated, _ := m.Update(msg)
	m = updated.(Model)
	require.Equal(t, "Bundle written to "+path, m.Status())
}

func TestWriteBundleFailure(t *testing.T) {
	t.Parallel()

	m := NewModel(widget.Default(), Options{})
	updated, _ := m.Update(BundleWrittenMsg{Path: "x", Err: errors.New("read-only file system")})
	m = updated.(Model)
	require.True(t, m.statusIsError)
	require.Contains(t, m.Status(), "read-only file system")
}

func TestCopyBundle(t *testing.T) {
	t.Parallel()

	var copied string
	m := NewModel(widget.Default(), Options{})
	m.copyText = func(text string) error {
		copied = text
		return nil
	}

	m, cmd := press(t, m, "c")
	require.NotNil(t, cmd)
	msg := cmd()
	require.Equal(t, BundleCopiedMsg{}, msg)
	require.Equal(t, m.Bundle(), copied)

	updated, _ := m.Update(msg)
	require.Equal(t, "Bundle copied to clipboard", updated.(Model).Status())

	updated, _ = m.Update(BundleCopiedMsg{Err: errors.New("no clipboard utility")})
	require.Contains(t, updated.(Model).Status(), "Copy failed")
}

func TestQuit(t *testing.T) {
	t.Parallel()

	for _, k := range []string{"q", "ctrl+c"} {
		m := NewModel(widget.Default(), Options{})
		m, cmd := press(t, m, k)
		require.NotNil(t, cmd)
		require.Equal(t, tea.QuitMsg{}, cmd())
		require.True(t, m.Quitting())
		require.Empty(t, m.View())
	}
}

func TestQuitKeyIsTextWhileEditing(t *testing.T) {
	t.Parallel()

	m := NewModel(widget.Default(), Options{})
	m = moveTo(t, m, 0)
	m, _ = press(t, m, "enter", "clear", "q", "enter")
	require.False(t, m.Quitting())
	require.Equal(t, "q", m.Config().HeaderText)
}

func TestWindowResize(t *testing.T) {
	t.Parallel()

	m := NewModel(widget.Default(), Options{})
	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 140, Height: 50})
	require.Nil(t, cmd)
	m = updated.(Model)
	assert.Equal(t, 140, m.width)
	assert.Equal(t, 136, m.code.Width)
	assert.Equal(t, 44, m.code.Height)
}
