package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/socialwidget/internal/config"
	"github.com/alexisbeaulieu97/socialwidget/internal/logger"
	"github.com/alexisbeaulieu97/socialwidget/internal/tui"
	"github.com/alexisbeaulieu97/socialwidget/internal/widget"
)

type editOptions struct {
	ConfigPath  string
	OutputPath  string
	Verbose     bool
	Interactive bool
}

var (
	editCmdRunner = runEdit
	isTerminal    = func() bool {
		return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	}
	runProgram = func(m tea.Model) (tea.Model, error) {
		return tea.NewProgram(m, tea.WithAltScreen()).Run()
	}
)

func newEditCmd(root *rootFlags) *cobra.Command {
	opts := editOptions{}

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the interactive widget configurator",
		Long: `Edit opens a terminal form over the widget configuration with live validation,
a colour preview and the generated bundle. When --config is given, the edited
configuration is saved back to that file on exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = root.verbose
			opts.Interactive = isTerminal()

			if err := validateConfigPath(opts.ConfigPath); err != nil {
				return err
			}
			if err := validateOutputPath(opts.OutputPath); err != nil {
				return err
			}

			return editCmdRunner(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Widget configuration to edit (defaults are used when omitted)")
	cmd.Flags().StringVarP(&opts.OutputPath, "output", "o", tui.DefaultOutputPath, "Where the bundle is written from the configurator")

	return cmd
}

func runEdit(cmd *cobra.Command, opts editOptions) error {
	if !opts.Interactive {
		return newCommandError("start configurator", "stdin and stdout must be a terminal", fmt.Errorf("not a terminal"), "Use `socialwidget generate` for non-interactive output.")
	}

	log := newCommandLogger(cmd.ErrOrStderr(), opts.Verbose, "edit")

	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	final, err := runProgram(tui.NewModel(cfg, tui.Options{OutputPath: opts.OutputPath, Logger: log}))
	if err != nil {
		return newCommandError("run configurator", "terminal session ended unexpectedly", err, "Run the command again in an interactive terminal.")
	}

	return saveEdited(cmd, log, opts.ConfigPath, cfg, final)
}

// saveEdited writes the configurator's final configuration back to path when
// one was given and something changed.
func saveEdited(cmd *cobra.Command, log *logger.Logger, path string, original widget.Config, final tea.Model) error {
	model, ok := final.(tui.Model)
	if !ok || path == "" {
		return nil
	}

	edited := model.Config()
	if equalConfigs(original, edited) {
		log.Debug("configuration unchanged")
		return nil
	}

	if err := config.Write(path, edited); err != nil {
		return newCommandError("save configuration", path, err, "Check that the file is writable.")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Saved configuration to %s\n", path)
	return nil
}

func equalConfigs(a, b widget.Config) bool {
	left, errA := config.Marshal(a)
	right, errB := config.Marshal(b)
	return errA == nil && errB == nil && string(left) == string(right)
}
