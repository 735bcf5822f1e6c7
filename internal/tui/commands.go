package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// BundleWrittenMsg reports the outcome of writing the bundle to disk.
type BundleWrittenMsg struct {
	Path string
	Err  error
}

// BundleCopiedMsg reports the outcome of copying the bundle to the clipboard.
type BundleCopiedMsg struct {
	Err error
}

// writeBundleCmd writes bundle to path asynchronously
func writeBundleCmd(write func(string, []byte) error, path, bundle string) tea.Cmd {
	return func() tea.Msg {
		return BundleWrittenMsg{Path: path, Err: write(path, []byte(bundle))}
	}
}

// copyBundleCmd places bundle on the system clipboard asynchronously
func copyBundleCmd(copyText func(string) error, bundle string) tea.Cmd {
	return func() tea.Msg {
		return BundleCopiedMsg{Err: copyText(bundle)}
	}
}
