// Package generator renders the embeddable widget bundle: one HTML fragment,
// one stylesheet and one behavior script, framed by start/end comments.
//
// Rendering is a pure function of the widget.Config. It performs no I/O,
// never fails and produces byte-identical output for identical input, so it
// can be re-run after every edit, including edits that leave a contact id
// invalid.
package generator

import (
	"embed"
	"strings"
	"text/template"

	"github.com/alexisbeaulieu97/socialwidget/internal/platform"
	"github.com/alexisbeaulieu97/socialwidget/internal/widget"
)

const (
	StartMarker = "<!-- Start Social Contact Widget -->"
	EndMarker   = "<!-- End Social Contact Widget -->"

	// RootID is the DOM id of the widget container.
	RootID = "social-contact-widget"
)

//go:embed templates
var templateFS embed.FS

var templates = template.Must(template.New("bundle").ParseFS(templateFS, "templates/*.tmpl"))

// Entry is the resolved, render-ready view of one enabled platform.
type Entry struct {
	ID       widget.PlatformID
	Name     string
	Caption  string
	Link     string
	Icon     string
	Color    string
	External bool
}

// Entries resolves every enabled platform in canonical order.
func Entries(cfg widget.Config) []Entry {
	ids := cfg.EnabledPlatforms()
	entries := make([]Entry, 0, len(ids))
	for _, id := range ids {
		pc := cfg.Platform(id)
		entry := Entry{
			ID:    id,
			Name:  platform.Name(id),
			Link:  platform.Link(id, pc),
			Icon:  platform.ResolveIcon(id, pc),
			Color: platform.ResolveColor(id, pc),
		}
		if spec, ok := platform.Lookup(id); ok {
			entry.Caption = spec.Caption
		}
		entry.External = strings.HasPrefix(entry.Link, "https://") || strings.HasPrefix(entry.Link, "http://")
		entries = append(entries, entry)
	}
	return entries
}

// Generate renders the complete bundle for cfg.
func Generate(cfg widget.Config) string {
	var b strings.Builder
	b.WriteString(StartMarker)
	b.WriteString("\n")
	b.WriteString(RenderHTML(cfg))
	b.WriteString("<style>\n")
	b.WriteString(RenderCSS(cfg))
	b.WriteString("</style>\n")
	b.WriteString("<script>\n")
	b.WriteString(RenderScript())
	b.WriteString("</script>\n")
	b.WriteString(EndMarker)
	b.WriteString("\n")
	return b.String()
}

func execute(name string, data any) string {
	var b strings.Builder
	// Templates are parsed at init and only read fields that always exist,
	// so execution cannot fail for any Config value.
	if err := templates.ExecuteTemplate(&b, name, data); err != nil {
		panic(err)
	}
	return b.String()
}
