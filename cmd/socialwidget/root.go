package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/socialwidget/internal/logger"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "socialwidget",
		Short:         "socialwidget builds an embeddable social contact widget",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newEditCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newCommandLogger returns the logger used by a command. Entries go to w,
// normally the command's stderr, and are colored only on a terminal.
func newCommandLogger(w io.Writer, verbose bool, component string) *logger.Logger {
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !term.IsTerminal(int(f.Fd()))
	}

	log, err := logger.New(logger.Options{Verbose: verbose, HumanReadable: true, NoColor: noColor, Writer: w})
	if err != nil {
		return logger.Nop()
	}
	return log.Component(component)
}
