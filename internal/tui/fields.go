package tui

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/socialwidget/internal/config"
	"github.com/alexisbeaulieu97/socialwidget/internal/platform"
	"github.com/alexisbeaulieu97/socialwidget/internal/widget"
)

type rowKind int

const (
	rowText rowKind = iota
	rowColor
	rowEnum
	rowToggle
)

type globalField string

const (
	globalHeaderText      globalField = "headerText"
	globalHeaderBgColor   globalField = "headerBgColor"
	globalHeaderTextColor globalField = "headerTextColor"
	globalButtonColor     globalField = "mainButtonColor"
	globalIconColor       globalField = "mainIconColor"
	globalPosition        globalField = "position"
	globalAnimation       globalField = "buttonAnimation"
	globalShape           globalField = "widgetShape"
	globalSpacing         globalField = "menuSpacing"
)

const maxHeaderText = 100

// row is one editable line of the form. Global rows leave platform empty.
type row struct {
	platform widget.PlatformID
	global   globalField
	field    widget.Field
	kind     rowKind
	label    string
}

var globalRows = []row{
	{global: globalHeaderText, kind: rowText, label: "Header text"},
	{global: globalHeaderBgColor, kind: rowColor, label: "Header background"},
	{global: globalHeaderTextColor, kind: rowColor, label: "Header text color"},
	{global: globalButtonColor, kind: rowColor, label: "Button color"},
	{global: globalIconColor, kind: rowColor, label: "Button icon color"},
	{global: globalPosition, kind: rowEnum, label: "Position"},
	{global: globalAnimation, kind: rowEnum, label: "Animation"},
	{global: globalShape, kind: rowEnum, label: "Shape"},
	{global: globalSpacing, kind: rowEnum, label: "Menu spacing"},
}

// buildRows derives the form from the configuration: global rows first, then
// the visible fields of each platform in canonical order.
func buildRows(cfg widget.Config) []row {
	rows := append([]row(nil), globalRows...)
	for _, id := range widget.Platforms {
		pc := cfg.Platform(id)
		for _, f := range platform.VisibleFields(id, pc) {
			rows = append(rows, row{
				platform: id,
				field:    f,
				kind:     kindOf(f),
				label:    fieldLabel(id, f, pc),
			})
		}
	}
	return rows
}

func kindOf(f widget.Field) rowKind {
	switch f {
	case widget.FieldEnabled:
		return rowToggle
	case widget.FieldLinkType:
		return rowEnum
	case widget.FieldColor:
		return rowColor
	default:
		return rowText
	}
}

func fieldLabel(id widget.PlatformID, f widget.Field, pc widget.PlatformConfig) string {
	switch f {
	case widget.FieldEnabled:
		return "Enabled"
	case widget.FieldLinkType:
		return "Link type"
	case widget.FieldMessage:
		return "Message"
	case widget.FieldCustomIcon:
		return "Custom icon"
	case widget.FieldColor:
		return "Color"
	}

	switch id {
	case widget.WhatsApp:
		return "Number"
	case widget.Messenger, widget.Telegram:
		return "Username"
	case widget.Phone:
		return "Phone number"
	case widget.Email:
		if pc.EmailLinkType == widget.LinkURL {
			return "Link URL"
		}
		return "Address"
	}
	return "Contact"
}

func placeholder(r row) string {
	switch r.field {
	case widget.FieldContactID:
		switch r.platform {
		case widget.WhatsApp:
			return "15551234567"
		case widget.Messenger:
			return "yourpage"
		case widget.Telegram:
			return "your_channel"
		case widget.Phone:
			return "+1 5551234567"
		case widget.Email:
			return "name@example.com or https://example.com/contact"
		}
	case widget.FieldMessage:
		return "Hello! I have a question."
	case widget.FieldCustomIcon:
		return "<svg ...>…</svg> (empty for the default icon)"
	case widget.FieldColor:
		return "#RRGGBB (empty for the brand color)"
	}
	if r.kind == rowColor {
		return "#RRGGBB"
	}
	return ""
}

// value returns the raw string the row edits.
func (r row) value(cfg widget.Config) string {
	if r.platform == "" {
		switch r.global {
		case globalHeaderText:
			return cfg.HeaderText
		case globalHeaderBgColor:
			return cfg.HeaderBgColor
		case globalHeaderTextColor:
			return cfg.HeaderTextColor
		case globalButtonColor:
			return cfg.MainButtonColor
		case globalIconColor:
			return cfg.MainIconColor
		case globalPosition:
			return string(cfg.Position)
		case globalAnimation:
			return string(cfg.ButtonAnimation)
		case globalShape:
			return string(cfg.WidgetShape)
		case globalSpacing:
			return string(cfg.MenuSpacing)
		}
		return ""
	}

	pc := cfg.Platform(r.platform)
	switch r.field {
	case widget.FieldEnabled:
		if pc.Enabled {
			return "on"
		}
		return "off"
	case widget.FieldContactID:
		return pc.ContactID
	case widget.FieldMessage:
		return pc.PredefinedMessage
	case widget.FieldLinkType:
		return string(pc.EmailLinkType)
	case widget.FieldCustomIcon:
		return pc.CustomIconSVG
	case widget.FieldColor:
		return pc.Color
	}
	return ""
}

// set stores a text value. Colors must be #RRGGBB; a platform color may also
// be empty to restore the brand color.
func (r row) set(cfg widget.Config, value string) (widget.Config, error) {
	if r.kind == rowColor {
		value = strings.TrimSpace(value)
		optional := r.platform != ""
		if !(optional && value == "") && !config.IsHexColor(value) {
			return cfg, fmt.Errorf("%q is not a #RRGGBB color", value)
		}
	}

	if r.platform != "" {
		switch r.field {
		case widget.FieldContactID:
			return cfg.SetContactID(r.platform, value), nil
		case widget.FieldMessage:
			return cfg.SetPredefinedMessage(r.platform, value), nil
		case widget.FieldCustomIcon:
			return cfg.SetCustomIcon(r.platform, value), nil
		case widget.FieldColor:
			return cfg.SetColor(r.platform, value), nil
		}
		return cfg, nil
	}

	out := cfg.Clone()
	switch r.global {
	case globalHeaderText:
		if len([]rune(value)) > maxHeaderText {
			return cfg, fmt.Errorf("header text must be at most %d characters", maxHeaderText)
		}
		out.HeaderText = value
	case globalHeaderBgColor:
		out.HeaderBgColor = value
	case globalHeaderTextColor:
		out.HeaderTextColor = value
	case globalButtonColor:
		out.MainButtonColor = value
	case globalIconColor:
		out.MainIconColor = value
	}
	return out, nil
}

// cycle steps an enum row by delta or flips a toggle row.
func (r row) cycle(cfg widget.Config, delta int) widget.Config {
	if r.platform != "" {
		switch r.field {
		case widget.FieldEnabled:
			return cfg.SetEnabled(r.platform, !cfg.Platform(r.platform).Enabled)
		case widget.FieldLinkType:
			current := cfg.Platform(widget.Email).EmailLinkType
			return cfg.SetEmailLinkType(stepEnum(widget.EmailLinkTypeValues(), current, delta))
		}
		return cfg
	}

	out := cfg.Clone()
	switch r.global {
	case globalPosition:
		out.Position = stepEnum(widget.PositionValues(), cfg.Position, delta)
	case globalAnimation:
		out.ButtonAnimation = stepEnum(widget.AnimationValues(), cfg.ButtonAnimation, delta)
	case globalShape:
		out.WidgetShape = stepEnum(widget.ShapeValues(), cfg.WidgetShape, delta)
	case globalSpacing:
		out.MenuSpacing = stepEnum(widget.SpacingValues(), cfg.MenuSpacing, delta)
	}
	return out
}

func stepEnum[T ~string](values []T, current T, delta int) T {
	if delta < 0 {
		return widget.Prev(values, current)
	}
	return widget.Next(values, current)
}

func (r row) sameAs(other row) bool {
	return r.platform == other.platform && r.global == other.global && r.field == other.field
}
