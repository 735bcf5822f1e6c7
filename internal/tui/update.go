package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case BundleWrittenMsg:
		if msg.Err != nil {
			m.log.Error(msg.Err, "write bundle")
			m.setStatus(fmt.Sprintf("Write failed: %v", msg.Err), true)
			return m, nil
		}
		m.log.WithFields(map[string]any{"path": msg.Path}).Info("bundle written")
		m.setStatus(fmt.Sprintf("Bundle written to %s", msg.Path), false)
		return m, nil

	case BundleCopiedMsg:
		if msg.Err != nil {
			m.log.Error(msg.Err, "copy bundle")
			m.setStatus(fmt.Sprintf("Copy failed: %v", msg.Err), true)
			return m, nil
		}
		m.setStatus("Bundle copied to clipboard", false)
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.handleEditKeys(msg)
		}
		if m.mode == ViewCode {
			return m.handleCodeKeys(msg)
		}
		return m.handleFormKeys(msg)
	}

	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmd, handled := m.handleGlobalKeys(msg); handled {
		return m, cmd
	}

	switch msg.String() {
	case "tab":
		m.mode = ViewCode
		return m, nil

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
		return m, nil

	case "home", "g":
		m.cursor = 0
		return m, nil

	case "end", "G":
		m.cursor = len(m.rows) - 1
		return m, nil

	case "left", "h":
		return m.cycle(-1), nil

	case "right", "l", " ":
		return m.cycle(1), nil

	case "enter":
		r := m.current()
		if r.kind == rowEnum || r.kind == rowToggle {
			return m.cycle(1), nil
		}
		return m.startEdit(r)
	}

	return m, nil
}

func (m Model) handleCodeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmd, handled := m.handleGlobalKeys(msg); handled {
		return m, cmd
	}

	switch msg.String() {
	case "tab", "esc":
		m.mode = ViewForm
		return m, nil
	}

	var cmd tea.Cmd
	m.code, cmd = m.code.Update(msg)
	return m, cmd
}

func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return tea.Quit, true
	case "w":
		m.setStatus("Writing bundle…", false)
		return writeBundleCmd(m.writeFile, m.outputPath, m.bundle), true
	case "c":
		return copyBundleCmd(m.copyText, m.bundle), true
	}
	return nil, false
}

func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEsc:
		m.stopEdit()
		m.setStatus("Edit cancelled", false)
		return m, nil

	case tea.KeyEnter:
		r := m.current()
		next, err := r.set(m.cfg, m.input.Value())
		if err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
		m.stopEdit()
		m.apply(next)
		m.setStatus(fmt.Sprintf("%s updated", r.label), false)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) startEdit(r row) (tea.Model, tea.Cmd) {
	m.editing = true
	m.input.Reset()
	m.input.EchoMode = textinput.EchoNormal
	m.input.Placeholder = placeholder(r)
	m.input.CharLimit = 0
	if r.global == globalHeaderText {
		m.input.CharLimit = maxHeaderText
	}
	m.input.SetValue(r.value(m.cfg))
	m.input.CursorEnd()
	m.setStatus("enter to save • esc to cancel", false)
	return m, m.input.Focus()
}

func (m *Model) stopEdit() {
	m.editing = false
	m.input.Blur()
}

func (m Model) cycle(delta int) Model {
	r := m.current()
	if r.kind != rowEnum && r.kind != rowToggle {
		return m
	}
	m.apply(r.cycle(m.cfg, delta))
	m.setStatus("", false)
	return m
}
