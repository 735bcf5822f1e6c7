// Package platform is the closed table of supported contact channels. Each
// record bundles the fixed metadata of a platform with the rules that turn a
// PlatformConfig into an outbound link and an advisory validation message.
package platform

import (
	"strings"

	"github.com/alexisbeaulieu97/socialwidget/internal/widget"
	swerrors "github.com/alexisbeaulieu97/socialwidget/pkg/errors"
)

// UnknownLink is emitted for ids that have no table record.
const UnknownLink = "#"

// Spec describes one platform.
type Spec struct {
	ID           widget.PlatformID
	Name         string
	DefaultColor string
	Caption      string
	// SupportsMessage marks platforms whose links can carry a pre-filled message.
	SupportsMessage bool
	Icon            string

	// Link builds the outbound href. It never fails.
	Link func(pc widget.PlatformConfig) string
	// Check returns a user-facing message, or "" when the contact id is acceptable.
	Check func(pc widget.PlatformConfig) string
}

var table = map[widget.PlatformID]Spec{
	widget.WhatsApp: {
		ID:              widget.WhatsApp,
		Name:            "WhatsApp",
		DefaultColor:    "#25D366",
		Caption:         "Chat with us",
		SupportsMessage: true,
		Icon:            whatsappIcon,
		Link:            whatsappLink,
		Check:           checkWhatsApp,
	},
	widget.Messenger: {
		ID:           widget.Messenger,
		Name:         "Messenger",
		DefaultColor: "#0084FF",
		Caption:      "Send us a message",
		Icon:         messengerIcon,
		Link:         prefixLink("https://m.me/"),
		Check:        checkMessenger,
	},
	widget.Telegram: {
		ID:           widget.Telegram,
		Name:         "Telegram",
		DefaultColor: "#0088CC",
		Caption:      "Message us on Telegram",
		Icon:         telegramIcon,
		Link:         prefixLink("https://t.me/"),
		Check:        checkTelegram,
	},
	widget.Phone: {
		ID:           widget.Phone,
		Name:         "Phone",
		DefaultColor: "#34B7F1",
		Caption:      "Call us",
		Icon:         phoneIcon,
		Link:         phoneLink,
		Check:        checkPhone,
	},
	widget.Email: {
		ID:           widget.Email,
		Name:         "Email",
		DefaultColor: "#EA4335",
		Caption:      "Email us",
		Icon:         emailIcon,
		Link:         emailLink,
		Check:        checkEmail,
	},
}

// Lookup returns the record for id.
func Lookup(id widget.PlatformID) (Spec, bool) {
	spec, ok := table[id]
	return spec, ok
}

// All returns every record in canonical order.
func All() []Spec {
	specs := make([]Spec, 0, len(widget.Platforms))
	for _, id := range widget.Platforms {
		if spec, ok := table[id]; ok {
			specs = append(specs, spec)
		}
	}
	return specs
}

// Name returns the display name of id, falling back to the raw id.
func Name(id widget.PlatformID) string {
	if spec, ok := table[id]; ok {
		return spec.Name
	}
	return string(id)
}

// Link resolves the outbound href for a platform.
func Link(id widget.PlatformID, pc widget.PlatformConfig) string {
	spec, ok := table[id]
	if !ok {
		return UnknownLink
	}
	return spec.Link(pc)
}

// Validate checks the contact id of a platform. It returns nil or a
// *errors.ContactError and never panics, whatever the input.
func Validate(id widget.PlatformID, pc widget.PlatformConfig) error {
	spec, ok := table[id]
	if !ok {
		return nil
	}
	if msg := spec.Check(pc); msg != "" {
		return swerrors.NewContactError(string(id), msg)
	}
	return nil
}

// ResolveColor returns the color override, or the platform brand color when
// the override is empty or not a #RRGGBB color.
func ResolveColor(id widget.PlatformID, pc widget.PlatformConfig) string {
	if color := strings.TrimSpace(pc.Color); widget.IsHexColor(color) {
		return color
	}
	if spec, ok := table[id]; ok {
		return spec.DefaultColor
	}
	return ""
}

// ResolveIcon returns the custom icon markup, or the built-in icon.
func ResolveIcon(id widget.PlatformID, pc widget.PlatformConfig) string {
	if strings.TrimSpace(pc.CustomIconSVG) != "" {
		return pc.CustomIconSVG
	}
	if spec, ok := table[id]; ok {
		return spec.Icon
	}
	return ""
}

// VisibleFields lists the editable fields of a platform for its current shape.
func VisibleFields(id widget.PlatformID, pc widget.PlatformConfig) []widget.Field {
	fields := []widget.Field{widget.FieldEnabled}
	if !pc.Enabled {
		return fields
	}
	spec, ok := table[id]
	if ok && id == widget.Email {
		fields = append(fields, widget.FieldLinkType)
	}
	fields = append(fields, widget.FieldContactID)
	if ok && spec.SupportsMessage {
		fields = append(fields, widget.FieldMessage)
	}
	return append(fields, widget.FieldCustomIcon, widget.FieldColor)
}
