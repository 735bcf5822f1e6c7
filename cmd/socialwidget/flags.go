package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/socialwidget/internal/config"
	"github.com/alexisbeaulieu97/socialwidget/internal/widget"
)

// validateConfigPath accepts an empty path, meaning the default
// configuration, or an existing regular file.
func validateConfigPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("config file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", abs)
	}

	return nil
}

func validateOutputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}

	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return fmt.Errorf("output path %s is a directory", path)
	}

	return nil
}

// loadConfig reads the widget document at path, or returns the default
// configuration when no path was given.
func loadConfig(path string) (widget.Config, error) {
	if strings.TrimSpace(path) == "" {
		return widget.Default(), nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return widget.Config{}, newCommandError("load configuration", path, err, "Fix the reported key or run `socialwidget init` to start from the defaults.")
	}
	return cfg, nil
}
