package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/socialwidget/internal/generator"
	"github.com/alexisbeaulieu97/socialwidget/internal/logger"
	"github.com/alexisbeaulieu97/socialwidget/internal/validation"
	"github.com/alexisbeaulieu97/socialwidget/pkg/diff"
)

type generateOptions struct {
	ConfigPath string
	OutputPath string
	Check      bool
	Verbose    bool
}

var generateCmdRunner = runGenerate

func newGenerateCmd(root *rootFlags) *cobra.Command {
	opts := generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render the widget bundle",
		Long: `Generate renders the embeddable HTML/CSS/JS bundle for a widget configuration.
Contact details that fail validation are reported as warnings; the bundle is
still produced.

With --check the bundle is compared against the file given by --output and the
command fails, printing a diff, when they differ.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = root.verbose

			if err := validateGenerateOptions(opts); err != nil {
				return err
			}

			return generateCmdRunner(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to widget configuration (defaults are used when omitted)")
	cmd.Flags().StringVarP(&opts.OutputPath, "output", "o", "", "Write the bundle to this file instead of stdout")
	cmd.Flags().BoolVar(&opts.Check, "check", false, "Fail if the output file is not up to date")

	return cmd
}

func validateGenerateOptions(opts generateOptions) error {
	if err := validateConfigPath(opts.ConfigPath); err != nil {
		return err
	}
	if opts.Check && opts.OutputPath == "" {
		return fmt.Errorf("--check requires --output")
	}
	return validateOutputPath(opts.OutputPath)
}

func runGenerate(cmd *cobra.Command, opts generateOptions) error {
	log := newCommandLogger(cmd.ErrOrStderr(), opts.Verbose, "generate")

	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	report := validation.ValidateConfig(cfg)
	logReport(log, report)

	bundle := generator.Generate(cfg)
	log.WithFields(map[string]any{
		"platforms": len(cfg.EnabledPlatforms()),
		"bytes":     len(bundle),
	}).Debug("bundle generated")

	switch {
	case opts.Check:
		return checkBundle(cmd, opts.OutputPath, bundle)
	case opts.OutputPath != "":
		if err := os.WriteFile(opts.OutputPath, []byte(bundle), 0o644); err != nil {
			return newCommandError("write bundle", opts.OutputPath, err, "Check that the target directory exists and is writable.")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Bundle written to %s\n", opts.OutputPath)
		return nil
	default:
		_, err := fmt.Fprint(cmd.OutOrStdout(), bundle)
		return err
	}
}

// checkBundle compares the bundle with the file at path. A missing file
// counts as empty.
func checkBundle(cmd *cobra.Command, path, bundle string) error {
	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return newCommandError("check bundle", path, err, "Check that the file is readable.")
	}

	unified, stats := diff.Compare(existing, []byte(bundle), path, "generated")
	if !stats.Changed() {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is up to date\n", path)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), unified)
	return newCommandError("check bundle", fmt.Sprintf("%s is out of date (%s)", path, stats), errBundleOutOfDate, "Run `socialwidget generate` without --check to refresh it.")
}

func logReport(log *logger.Logger, report validation.Report) {
	for _, res := range report.Failed() {
		log.WithPlatform(res.Platform).Warn(res.Message)
	}
}
