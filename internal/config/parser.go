package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/socialwidget/internal/widget"
	swerrors "github.com/alexisbeaulieu97/socialwidget/pkg/errors"
)

const documentHeader = "# Social contact widget configuration.\n# Run `socialwidget generate -c <this file>` to render the embeddable snippet.\n"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads a widget document from disk.
func Load(path string) (widget.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return widget.Config{}, swerrors.NewParseError(path, 0, err)
	}
	return Parse(data, path)
}

// Parse decodes and validates a widget document. Keys missing from data keep
// their default value. Unknown keys are rejected. source names the document
// in error messages.
func Parse(data []byte, source string) (widget.Config, error) {
	doc := FromWidget(widget.Default())

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return widget.Config{}, swerrors.NewParseError(source, extractLine(err), err)
	}

	if err := ValidateDocument(&doc); err != nil {
		return widget.Config{}, err
	}

	return ToWidget(doc), nil
}

// Marshal encodes cfg as a commented YAML document.
func Marshal(cfg widget.Config) ([]byte, error) {
	doc := FromWidget(cfg)

	var buf bytes.Buffer
	buf.WriteString(documentHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("encode widget document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode widget document: %w", err)
	}

	return buf.Bytes(), nil
}

// Write stores cfg at path, replacing any existing file.
func Write(path string, cfg widget.Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write widget document %s: %w", path, err)
	}
	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
