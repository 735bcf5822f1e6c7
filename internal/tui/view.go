package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/socialwidget/internal/generator"
	"github.com/alexisbeaulieu97/socialwidget/internal/platform"
	"github.com/alexisbeaulieu97/socialwidget/internal/widget"
)

const previewWidth = 34

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	title := titleStyle.Render("Social Contact Widget")
	var body string
	if m.mode == ViewCode {
		body = codeFrameStyle.Render(m.code.View())
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderForm(), "  ", m.renderPreview())
	}

	sections := []string{title, body}
	if m.status != "" {
		if m.statusIsError {
			sections = append(sections, statusErrorStyle.Render(m.status))
		} else {
			sections = append(sections, statusStyle.Render(m.status))
		}
	}
	sections = append(sections, helpStyle.Render(m.help()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderForm() string {
	errs := m.report.Errors()

	var lines []string
	var section widget.PlatformID = "-"
	for i, r := range m.rows {
		if r.platform != section {
			section = r.platform
			lines = append(lines, m.sectionHeader(r.platform, errs))
		}
		lines = append(lines, m.renderRow(i, r))
	}
	return strings.Join(lines, "\n")
}

func (m Model) sectionHeader(id widget.PlatformID, errs map[widget.PlatformID]string) string {
	if id == "" {
		return sectionStyle.Render("Appearance")
	}

	header := sectionStyle.Render(platform.Name(id))
	if !m.cfg.Platform(id).Enabled {
		return header
	}
	if msg, failed := errs[id]; failed {
		return header + " " + invalidStyle.Render("✗ "+msg)
	}
	return header + " " + validStyle.Render("✓")
}

func (m Model) renderRow(index int, r row) string {
	selected := index == m.cursor

	cursor := "  "
	label := labelStyle.Render(r.label)
	if selected {
		cursor = "› "
		label = selectedLabelStyle.Render(r.label)
	}

	if selected && m.editing {
		return cursor + label + m.input.View()
	}
	return cursor + label + m.displayValue(r)
}

func (m Model) displayValue(r row) string {
	raw := r.value(m.cfg)

	switch r.kind {
	case rowEnum:
		return valueStyle.Render("‹ " + raw + " ›")
	case rowToggle:
		if raw == "on" {
			return validStyle.Render("[x] on")
		}
		return mutedStyle.Render("[ ] off")
	case rowColor:
		if raw == "" {
			brand := platform.ResolveColor(r.platform, m.cfg.Platform(r.platform))
			return swatch(brand) + " " + mutedStyle.Render("brand "+brand)
		}
		return swatch(raw) + " " + valueStyle.Render(raw)
	}

	if r.field == widget.FieldCustomIcon {
		if strings.TrimSpace(raw) == "" {
			return mutedStyle.Render("default")
		}
		return valueStyle.Render(fmt.Sprintf("custom SVG (%d chars)", len(raw)))
	}
	if raw == "" {
		return mutedStyle.Render("(empty)")
	}
	return valueStyle.Render(truncate(raw, 40))
}

// renderPreview draws a rough terminal rendition of the open widget in its
// configured colors.
func (m Model) renderPreview() string {
	inner := previewWidth - 4

	header := lipgloss.NewStyle().
		Width(inner).
		Padding(0, 1).
		Bold(true).
		Background(lipgloss.Color(m.cfg.HeaderBgColor)).
		Foreground(lipgloss.Color(m.cfg.HeaderTextColor)).
		Render(truncate(m.cfg.HeaderText, inner-2))

	var items []string
	for _, entry := range generator.Entries(m.cfg) {
		items = append(items, swatch(entry.Color)+" "+entry.Name+" "+mutedStyle.Render(entry.Caption))
	}
	if len(items) == 0 {
		items = append(items, mutedStyle.Render("no platforms enabled"))
	}

	menu := lipgloss.JoinVertical(lipgloss.Left, header, strings.Join(items, strings.Repeat("\n", m.itemGap())))

	button := lipgloss.NewStyle().
		Padding(0, 2).
		Bold(true).
		Background(lipgloss.Color(m.cfg.MainButtonColor)).
		Foreground(lipgloss.Color(m.cfg.MainIconColor)).
		Render("✉")

	align := lipgloss.Right
	if m.cfg.Position == widget.BottomLeft {
		align = lipgloss.Left
	}
	buttonRow := lipgloss.NewStyle().Width(inner).Align(align).Render(button)

	details := mutedStyle.Render(fmt.Sprintf("%s • %s • %s", m.cfg.ButtonAnimation, m.cfg.WidgetShape, m.cfg.MenuSpacing))

	return previewFrameStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Preview"),
		menu,
		"",
		buttonRow,
		details,
	))
}

func (m Model) itemGap() int {
	if m.cfg.MenuSpacing == widget.SpacingRelaxed {
		return 2
	}
	return 1
}

func (m Model) help() string {
	switch {
	case m.editing:
		return "enter save • esc cancel"
	case m.mode == ViewCode:
		return "↑/↓ scroll • tab form • w write " + m.outputPath + " • c copy • q quit"
	default:
		return "↑/↓ move • enter edit • ←/→ change • tab code • w write " + m.outputPath + " • c copy • q quit"
	}
}

func truncate(s string, limit int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if limit <= 0 || len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
