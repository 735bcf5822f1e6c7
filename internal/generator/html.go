package generator

import "github.com/alexisbeaulieu97/socialwidget/internal/widget"

const (
	chatGlyph    = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" aria-hidden="true"><path d="M20 2H4c-1.1 0-1.99.9-1.99 2L2 22l4-4h14c1.1 0 2-.9 2-2V4c0-1.1-.9-2-2-2zM6 9h12v2H6V9zm8 5H6v-2h8v2zm4-6H6V6h12v2z"/></svg>`
	closeGlyph   = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" aria-hidden="true"><path d="M19 6.41L17.59 5 12 10.59 6.41 5 5 6.41 10.59 12 5 17.59 6.41 19 12 13.41 17.59 19 19 17.59 13.41 12z"/></svg>`
	chevronGlyph = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" aria-hidden="true"><path d="M10 6L8.59 7.41 13.17 12l-4.58 4.59L10 18l6-6z"/></svg>`
)

type htmlData struct {
	RootID       string
	HeaderText   string
	Entries      []Entry
	ChatGlyph    string
	CloseGlyph   string
	ChevronGlyph string
}

// RenderHTML renders the widget markup. Position, shape, colors and animation
// are expressed in the stylesheet only, so they never change this fragment.
func RenderHTML(cfg widget.Config) string {
	return execute("widget.html.tmpl", htmlData{
		RootID:       RootID,
		HeaderText:   cfg.HeaderText,
		Entries:      Entries(cfg),
		ChatGlyph:    chatGlyph,
		CloseGlyph:   closeGlyph,
		ChevronGlyph: chevronGlyph,
	})
}
