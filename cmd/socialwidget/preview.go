package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/socialwidget/internal/preview"
	"github.com/alexisbeaulieu97/socialwidget/internal/widget"
)

type previewOptions struct {
	ConfigPath string
	Addr       string
	Verbose    bool
}

var previewCmdRunner = runPreview

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Serve a demo page embedding the widget",
		Long: `Preview starts a local web server with a demo host page that embeds the
generated bundle. When --config is given the file is re-read on every request,
so edits show up on reload.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = root.verbose

			if err := validateConfigPath(opts.ConfigPath); err != nil {
				return err
			}

			return previewCmdRunner(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Widget configuration to serve (defaults are used when omitted)")
	cmd.Flags().StringVar(&opts.Addr, "addr", preview.DefaultAddr, "Address to listen on")

	return cmd
}

func runPreview(cmd *cobra.Command, opts previewOptions) error {
	log := newCommandLogger(cmd.ErrOrStderr(), opts.Verbose, "preview")

	var src preview.Source
	if opts.ConfigPath != "" {
		// Reject a broken document before listening.
		if _, err := loadConfig(opts.ConfigPath); err != nil {
			return err
		}
		src = preview.FileSource(opts.ConfigPath)
	} else {
		src = preview.StaticSource(widget.Default())
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := preview.Serve(ctx, opts.Addr, preview.NewRouter(src, log), log, func(addr net.Addr) {
		fmt.Fprintf(cmd.OutOrStdout(), "Preview running at http://%s (Ctrl+C to stop)\n", addr)
	})
	if err != nil {
		return newCommandError("start preview", opts.Addr, err, "Choose another address with --addr.")
	}
	return nil
}
