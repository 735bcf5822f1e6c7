// Package widget holds the configuration model of the social contact widget.
//
// A Config is a value: every edit returns a new Config and never mutates the
// receiver, so callers can keep older snapshots around safely.
package widget

// PlatformID identifies one supported contact channel.
type PlatformID string

const (
	WhatsApp  PlatformID = "whatsapp"
	Messenger PlatformID = "messenger"
	Telegram  PlatformID = "telegram"
	Phone     PlatformID = "phone"
	Email     PlatformID = "email"
)

// Platforms lists every platform in canonical display order.
var Platforms = []PlatformID{WhatsApp, Messenger, Telegram, Phone, Email}

// Position anchors the widget to a corner of the viewport.
type Position string

const (
	BottomRight Position = "bottom-right"
	BottomLeft  Position = "bottom-left"
)

// Animation selects the idle animation of the floating button.
type Animation string

const (
	AnimationNone   Animation = "none"
	AnimationPulse  Animation = "pulse"
	AnimationBounce Animation = "bounce"
	AnimationFade   Animation = "fade"
	AnimationShake  Animation = "shake"
)

// Shape selects the corner radius of the button and icon swatches.
type Shape string

const (
	ShapeRounded Shape = "rounded"
	ShapeSquare  Shape = "square"
)

// Spacing selects the vertical gap between menu items.
type Spacing string

const (
	SpacingCompact Spacing = "compact"
	SpacingDefault Spacing = "default"
	SpacingRelaxed Spacing = "relaxed"
)

// EmailLinkType decides how the email contact id is interpreted.
type EmailLinkType string

const (
	LinkMailto EmailLinkType = "mailto"
	LinkURL    EmailLinkType = "url"
)

// PlatformConfig is the per-platform part of a Config. One exists for every
// platform, enabled or not.
type PlatformConfig struct {
	Enabled           bool
	ContactID         string
	PredefinedMessage string
	EmailLinkType     EmailLinkType
	CustomIconSVG     string
	// Color overrides the platform brand color when non-empty.
	Color string
}

// Config is the complete widget configuration.
type Config struct {
	Platforms map[PlatformID]PlatformConfig

	HeaderText      string
	HeaderBgColor   string
	HeaderTextColor string
	MainButtonColor string
	MainIconColor   string

	Position        Position
	ButtonAnimation Animation
	WidgetShape     Shape
	MenuSpacing     Spacing
}
