// Package tui implements the interactive widget configurator: a form over the
// widget configuration with live validation, a color preview and a view of
// the generated bundle.
package tui

import (
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/socialwidget/internal/generator"
	"github.com/alexisbeaulieu97/socialwidget/internal/logger"
	"github.com/alexisbeaulieu97/socialwidget/internal/validation"
	"github.com/alexisbeaulieu97/socialwidget/internal/widget"
)

// DefaultOutputPath is where the bundle is written when no path is given.
const DefaultOutputPath = "social-widget.html"

// ViewMode selects what the main pane shows.
type ViewMode int

const (
	ViewForm ViewMode = iota
	ViewCode
)

// Options configures a configurator session.
type Options struct {
	OutputPath string
	Logger     *logger.Logger
}

// Model is the Bubbletea state of the configurator.
type Model struct {
	cfg    widget.Config
	rows   []row
	cursor int
	mode   ViewMode

	editing bool
	input   textinput.Model
	code    viewport.Model

	report validation.Report
	bundle string

	outputPath    string
	status        string
	statusIsError bool

	width    int
	height   int
	quitting bool

	log       *logger.Logger
	writeFile func(path string, data []byte) error
	copyText  func(text string) error
}

// NewModel constructs a configurator editing cfg.
func NewModel(cfg widget.Config, opts Options) Model {
	input := textinput.New()
	input.Prompt = "› "

	m := Model{
		cfg:        cfg.Clone(),
		mode:       ViewForm,
		input:      input,
		code:       viewport.New(80, 20),
		outputPath: opts.OutputPath,
		log:        opts.Logger,
		writeFile:  writeFile,
		copyText:   clipboard.WriteAll,
		width:      100,
		height:     32,
	}
	if m.outputPath == "" {
		m.outputPath = DefaultOutputPath
	}

	m.refresh()
	m.resize()
	return m
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Config returns the configuration being edited.
func (m Model) Config() widget.Config {
	return m.cfg
}

// Bundle returns the bundle generated from the current configuration.
func (m Model) Bundle() string {
	return m.bundle
}

// Report returns the validation report for the current configuration.
func (m Model) Report() validation.Report {
	return m.report
}

// Mode returns the active view.
func (m Model) Mode() ViewMode {
	return m.mode
}

// Status returns the last status line message.
func (m Model) Status() string {
	return m.status
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m Model) current() row {
	return m.rows[m.cursor]
}

// apply replaces the configuration and re-derives everything from it. The
// cursor follows the row it was on, which may have moved when fields
// appeared or disappeared.
func (m *Model) apply(cfg widget.Config) {
	var selected row
	if len(m.rows) > 0 {
		selected = m.current()
	}

	m.cfg = cfg
	m.refresh()

	for i, r := range m.rows {
		if r.sameAs(selected) {
			m.cursor = i
			break
		}
	}
}

func (m *Model) refresh() {
	m.rows = buildRows(m.cfg)
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	m.report = validation.ValidateConfig(m.cfg)
	m.bundle = generator.Generate(m.cfg)
	m.code.SetContent(m.bundle)
}

func (m *Model) resize() {
	m.code.Width = max(m.width-4, 20)
	m.code.Height = max(m.height-6, 5)
	m.input.Width = max(m.width/2-8, 10)
}

func (m *Model) setStatus(msg string, isError bool) {
	m.status = msg
	m.statusIsError = isError
}

func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}
