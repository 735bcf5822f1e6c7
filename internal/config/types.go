// Package config reads and writes widget documents: YAML files describing a
// complete widget configuration.
package config

import "github.com/alexisbeaulieu97/socialwidget/internal/widget"

// Document is the YAML form of a widget configuration.
type Document struct {
	HeaderText      string `yaml:"header_text" validate:"max=100"`
	HeaderBgColor   string `yaml:"header_bg_color" validate:"hex_color"`
	HeaderTextColor string `yaml:"header_text_color" validate:"hex_color"`
	MainButtonColor string `yaml:"main_button_color" validate:"hex_color"`
	MainIconColor   string `yaml:"main_icon_color" validate:"hex_color"`

	Position        string `yaml:"position" validate:"oneof=bottom-right bottom-left"`
	ButtonAnimation string `yaml:"button_animation" validate:"oneof=none pulse bounce fade shake"`
	WidgetShape     string `yaml:"widget_shape" validate:"oneof=rounded square"`
	MenuSpacing     string `yaml:"menu_spacing" validate:"oneof=compact default relaxed"`

	Platforms Platforms `yaml:"platforms"`
}

// Platforms holds one entry per supported platform. Named fields rather than
// a map keep omitted platforms at whatever value the document started from.
type Platforms struct {
	WhatsApp  PlatformEntry `yaml:"whatsapp"`
	Messenger PlatformEntry `yaml:"messenger"`
	Telegram  PlatformEntry `yaml:"telegram"`
	Phone     PlatformEntry `yaml:"phone"`
	Email     PlatformEntry `yaml:"email"`
}

// PlatformEntry is the YAML form of widget.PlatformConfig. Contact ids are
// not checked here; they go through the advisory platform rules instead.
type PlatformEntry struct {
	Enabled           bool   `yaml:"enabled"`
	ContactID         string `yaml:"contact_id"`
	PredefinedMessage string `yaml:"predefined_message,omitempty"`
	EmailLinkType     string `yaml:"email_link_type,omitempty" validate:"omitempty,oneof=mailto url"`
	CustomIconSVG     string `yaml:"custom_icon_svg,omitempty"`
	Color             string `yaml:"color,omitempty" validate:"omitempty,hex_color"`
}

func (p *Platforms) entry(id widget.PlatformID) *PlatformEntry {
	switch id {
	case widget.WhatsApp:
		return &p.WhatsApp
	case widget.Messenger:
		return &p.Messenger
	case widget.Telegram:
		return &p.Telegram
	case widget.Phone:
		return &p.Phone
	case widget.Email:
		return &p.Email
	}
	return nil
}

// FromWidget converts a widget configuration to its document form.
func FromWidget(cfg widget.Config) Document {
	doc := Document{
		HeaderText:      cfg.HeaderText,
		HeaderBgColor:   cfg.HeaderBgColor,
		HeaderTextColor: cfg.HeaderTextColor,
		MainButtonColor: cfg.MainButtonColor,
		MainIconColor:   cfg.MainIconColor,
		Position:        string(cfg.Position),
		ButtonAnimation: string(cfg.ButtonAnimation),
		WidgetShape:     string(cfg.WidgetShape),
		MenuSpacing:     string(cfg.MenuSpacing),
	}
	for _, id := range widget.Platforms {
		pc := cfg.Platform(id)
		*doc.Platforms.entry(id) = PlatformEntry{
			Enabled:           pc.Enabled,
			ContactID:         pc.ContactID,
			PredefinedMessage: pc.PredefinedMessage,
			EmailLinkType:     string(pc.EmailLinkType),
			CustomIconSVG:     pc.CustomIconSVG,
			Color:             pc.Color,
		}
	}
	return doc
}

// ToWidget converts a document to a widget configuration. The document is
// expected to have passed ValidateDocument.
func ToWidget(doc Document) widget.Config {
	cfg := widget.Config{
		Platforms:       make(map[widget.PlatformID]widget.PlatformConfig, len(widget.Platforms)),
		HeaderText:      doc.HeaderText,
		HeaderBgColor:   doc.HeaderBgColor,
		HeaderTextColor: doc.HeaderTextColor,
		MainButtonColor: doc.MainButtonColor,
		MainIconColor:   doc.MainIconColor,
		Position:        widget.Position(doc.Position),
		ButtonAnimation: widget.Animation(doc.ButtonAnimation),
		WidgetShape:     widget.Shape(doc.WidgetShape),
		MenuSpacing:     widget.Spacing(doc.MenuSpacing),
	}
	for _, id := range widget.Platforms {
		entry := doc.Platforms.entry(id)
		pc := widget.PlatformConfig{
			Enabled:           entry.Enabled,
			ContactID:         entry.ContactID,
			PredefinedMessage: entry.PredefinedMessage,
			EmailLinkType:     widget.EmailLinkType(entry.EmailLinkType),
			CustomIconSVG:     entry.CustomIconSVG,
			Color:             entry.Color,
		}
		if id == widget.Email && pc.EmailLinkType == "" {
			pc.EmailLinkType = widget.LinkMailto
		}
		cfg.Platforms[id] = pc
	}
	return cfg
}
