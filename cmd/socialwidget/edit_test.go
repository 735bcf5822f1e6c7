package main

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/socialwidget/internal/config"
	"github.com/alexisbeaulieu97/socialwidget/internal/tui"
	"github.com/alexisbeaulieu97/socialwidget/internal/widget"
)

func stubTerminal(t *testing.T, interactive bool, program func(tea.Model) (tea.Model, error)) {
	t.Helper()

	originalTerminal := isTerminal
	originalProgram := runProgram
	t.Cleanup(func() {
		isTerminal = originalTerminal
		runProgram = originalProgram
	})

	isTerminal = func() bool { return interactive }
	if program != nil {
		runProgram = program
	}
}

func TestEditRequiresTerminal(t *testing.T) {
	stubTerminal(t, false, func(tea.Model) (tea.Model, error) {
		t.Fatal("program must not start without a terminal")
		return nil, nil
	})

	_, err := executeCommand(newRootCmd(), "edit")
	require.Error(t, err)
	require.Contains(t, err.Error(), "must be a terminal")
	require.Contains(t, err.Error(), "socialwidget generate")
}

func TestEditSavesChangedConfiguration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widget.yaml")
	require.NoError(t, config.Write(path, widget.Default()))

	var started widget.Config
	stubTerminal(t, true, func(m tea.Model) (tea.Model, error) {
		model := m.(tui.Model)
		started = model.Config()
		edited := model.Config().SetEnabled(widget.Phone, true)
		return tui.NewModel(edited, tui.Options{}), nil
	})

	output, err := executeCommand(newRootCmd(), "edit", "-c", path)
	require.NoError(t, err)
	require.Equal(t, widget.Default(), started)
	require.Contains(t, output, "Saved configuration to "+path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.True(t, cfg.Platform(widget.Phone).Enabled)
}

func TestEditLeavesUnchangedConfiguration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widget.yaml")
	require.NoError(t, config.Write(path, widget.Default()))

	stubTerminal(t, true, func(m tea.Model) (tea.Model, error) {
		return m, nil
	})

	output, err := executeCommand(newRootCmd(), "edit", "-c", path)
	require.NoError(t, err)
	require.NotContains(t, output, "Saved configuration")
}

func TestEditWithoutConfigDoesNotSave(t *testing.T) {
	dir := t.TempDir()
	stubTerminal(t, true, func(m tea.Model) (tea.Model, error) {
		model := m.(tui.Model)
		return tui.NewModel(model.Config().SetEnabled(widget.Email, true), tui.Options{}), nil
	})

	output, err := executeCommand(newRootCmd(), "edit", "-o", filepath.Join(dir, "out.html"))
	require.NoError(t, err)
	require.NotContains(t, output, "Saved configuration")
}
