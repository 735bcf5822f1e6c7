package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUnifiedDiff_IdenticalContent(t *testing.T) {
	t.Parallel()

	content := []byte("<!-- Start Social Contact Widget -->\n<div></div>\n")
	require.Empty(t, GenerateUnifiedDiff(content, content, "widget.html", "generated"))

	_, stats := Compare(content, content, "a", "b")
	require.False(t, stats.Changed())
}

func TestGenerateUnifiedDiff_SingleLineChange(t *testing.T) {
	t.Parallel()

	previous := []byte("  gap: 12px;\n  margin: 0;\n  padding: 12px;\n")
	current := []byte("  gap: 16px;\n  margin: 0;\n  padding: 12px;\n")

	result, stats := Compare(previous, current, "widget.html", "generated")

	require.True(t, strings.HasPrefix(result, "--- widget.html\n+++ generated\n@@ -1,3 +1,3 @@\n"))
	assert.Contains(t, result, "\n-  gap: 12px;\n")
	assert.Contains(t, result, "\n+  gap: 16px;\n")
	assert.Contains(t, result, "\n   margin: 0;\n")
	assert.Equal(t, Stats{Added: 1, Removed: 1}, stats)
	assert.Equal(t, "+1 -1", stats.String())
}

func TestGenerateUnifiedDiff_WholeLines(t *testing.T) {
	t.Parallel()

	previous := []byte("animation: scw-pulse 2s;\n")
	current := []byte("animation: scw-shake 3s;\n")

	result := GenerateUnifiedDiff(previous, current, "old", "new")
	assert.Contains(t, result, "-animation: scw-pulse 2s;\n")
	assert.Contains(t, result, "+animation: scw-shake 3s;\n")
}

func TestGenerateUnifiedDiff_AddedBlock(t *testing.T) {
	t.Parallel()

	previous := []byte("}\n")
	current := []byte("}\n@keyframes scw-pulse {\n  50% { transform: scale(1.08); }\n}\n")

	result, stats := Compare(previous, current, "old", "new")
	assert.Contains(t, result, "+@keyframes scw-pulse {\n")
	assert.Equal(t, 3, stats.Added)
	assert.Zero(t, stats.Removed)
}

func TestGenerateUnifiedDiff_EmptyContent(t *testing.T) {
	t.Parallel()

	result := GenerateUnifiedDiff(nil, []byte("new content\n"), "missing", "generated")
	require.Contains(t, result, "@@ -1,0 +1,1 @@")
	require.Contains(t, result, "+new content\n")
}

func TestGenerateUnifiedDiff_IsDeterministic(t *testing.T) {
	t.Parallel()

	a := []byte("one\ntwo\n")
	b := []byte("one\nthree\n")
	require.Equal(t, GenerateUnifiedDiff(a, b, "a", "b"), GenerateUnifiedDiff(a, b, "a", "b"))
}

func TestGenerateUnifiedDiff_Truncation(t *testing.T) {
	t.Parallel()

	var previous, current []string
	for i := 0; i < 11000; i++ {
		previous = append(previous, "previous line")
		if i%2 == 0 {
			current = append(current, "current line")
		} else {
			current = append(current, "previous line")
		}
	}

	result := GenerateUnifiedDiff([]byte(strings.Join(previous, "\n")), []byte(strings.Join(current, "\n")), "a", "b")
	require.Contains(t, result, "truncated")
	require.LessOrEqual(t, strings.Count(result, "\n"), maxDiffLines+1)
}
