package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/socialwidget/internal/platform"
	"github.com/alexisbeaulieu97/socialwidget/internal/validation"
	"github.com/alexisbeaulieu97/socialwidget/internal/widget"
)

type validateOptions struct {
	ConfigPath string
	JSON       bool
	Verbose    bool
}

var validateCmdRunner = runValidate

func newValidateCmd(root *rootFlags) *cobra.Command {
	opts := validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the contact details of every enabled platform",
		Long: `Validate checks the contact id of each enabled platform and prints one line
per platform. Returns a non-zero exit code if any enabled platform fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = root.verbose

			if err := validateConfigPath(opts.ConfigPath); err != nil {
				return err
			}

			return validateCmdRunner(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to widget configuration (defaults are used when omitted)")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output results in JSON format")

	return cmd
}

func runValidate(cmd *cobra.Command, opts validateOptions) error {
	log := newCommandLogger(cmd.ErrOrStderr(), opts.Verbose, "validate")

	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	report := validation.ValidateConfig(cfg)
	log.WithFields(map[string]any{
		"checked": len(report.Results),
		"failed":  len(report.Failed()),
	}).Debug("validation finished")

	if opts.JSON {
		if err := printJSONReport(cmd.OutOrStdout(), report); err != nil {
			return err
		}
	} else {
		printTableReport(cmd.OutOrStdout(), cfg, report)
	}

	if !report.Valid() {
		return errInvalidContacts
	}
	return nil
}

func printJSONReport(w io.Writer, report validation.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report.JSON())
}

func printTableReport(w io.Writer, cfg widget.Config, report validation.Report) {
	results := make(map[widget.PlatformID]validation.Result, len(report.Results))
	for _, res := range report.Results {
		results[res.Platform] = res
	}

	fmt.Fprintln(w, "Platform validation")
	fmt.Fprintln(w, strings.Repeat("=", 40))

	for _, id := range widget.Platforms {
		name := platform.Name(id)
		res, enabled := results[id]
		switch {
		case !enabled:
			fmt.Fprintf(w, "  - %-10s disabled\n", name)
		case res.Passed:
			fmt.Fprintf(w, "  ✓ %-10s %s\n", name, cfg.Platform(id).ContactID)
		default:
			fmt.Fprintf(w, "  ✗ %-10s %s\n", name, res.Message)
		}
	}

	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintf(w, "Enabled: %d  Valid: %d  Invalid: %d\n",
		len(report.Results), len(report.Results)-len(report.Failed()), len(report.Failed()))
}
