package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/socialwidget/internal/config"
	"github.com/alexisbeaulieu97/socialwidget/internal/widget"
)

const defaultConfigPath = "widget.yaml"

type initOptions struct {
	Output string
	Force  bool
}

func newInitCmd() *cobra.Command {
	opts := initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default widget configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", defaultConfigPath, "Where to write the configuration")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite an existing file")

	return cmd
}

func runInit(cmd *cobra.Command, opts initOptions) error {
	if !opts.Force {
		if _, err := os.Stat(opts.Output); err == nil {
			return newCommandError("initialize configuration", fmt.Sprintf("%s already exists", opts.Output), os.ErrExist, "Pass --force to overwrite it or choose another path with -o.")
		} else if !errors.Is(err, os.ErrNotExist) {
			return newCommandError("initialize configuration", fmt.Sprintf("checking %s", opts.Output), err, "Check that you have permission to access the target directory.")
		}
	}

	if err := config.Write(opts.Output, widget.Default()); err != nil {
		return newCommandError("initialize configuration", fmt.Sprintf("writing %s", opts.Output), err, "Check that the target directory exists and is writable.")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote default configuration to %s\n", opts.Output)
	return nil
}
