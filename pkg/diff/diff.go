// Package diff renders line-oriented unified diffs between two versions of a
// generated bundle.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Stats counts changed lines.
type Stats struct {
	Added   int
	Removed int
}

// Changed reports whether any line differs.
func (s Stats) Changed() bool {
	return s.Added > 0 || s.Removed > 0
}

func (s Stats) String() string {
	return fmt.Sprintf("+%d -%d", s.Added, s.Removed)
}

// GenerateUnifiedDiff compares previous and current line by line and returns
// a unified diff, or "" when the two are identical. Output longer than
// 10,000 lines is truncated with a marker.
func GenerateUnifiedDiff(previous, current []byte, previousLabel, currentLabel string) string {
	out, _ := generate(previous, current, previousLabel, currentLabel)
	return out
}

// Compare returns the unified diff together with its line counts.
func Compare(previous, current []byte, previousLabel, currentLabel string) (string, Stats) {
	return generate(previous, current, previousLabel, currentLabel)
}

func generate(previous, current []byte, previousLabel, currentLabel string) (string, Stats) {
	var stats Stats
	if bytes.Equal(previous, current) {
		return "", stats
	}

	dmp := diffmatchpatch.New()
	prevChars, currChars, lineArray := dmp.DiffLinesToChars(string(previous), string(current))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(prevChars, currChars, false), lineArray)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", previousLabel)
	fmt.Fprintf(&buf, "+++ %s\n", currentLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", countLines(previous), countLines(current))

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}

		for _, line := range splitLines(d.Text) {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")

			switch d.Type {
			case diffmatchpatch.DiffDelete:
				stats.Removed++
			case diffmatchpatch.DiffInsert:
				stats.Added++
			}
		}
	}

	result := buf.String()
	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		truncated := strings.Join(lines[:maxDiffLines], "\n")
		return truncated + "\n" + truncateMessage + "\n", stats
	}

	return result, stats
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func countLines(content []byte) int {
	return len(splitLines(string(content)))
}
