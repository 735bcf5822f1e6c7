package platform

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/alexisbeaulieu97/socialwidget/internal/widget"
)

func prefixLink(prefix string) func(widget.PlatformConfig) string {
	return func(pc widget.PlatformConfig) string {
		return prefix + pc.ContactID
	}
}

func whatsappLink(pc widget.PlatformConfig) string {
	link := "https://wa.me/" + pc.ContactID
	if pc.PredefinedMessage != "" {
		link += "?text=" + encodeURIComponent(pc.PredefinedMessage)
	}
	return link
}

func phoneLink(pc widget.PlatformConfig) string {
	return "tel:" + strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, pc.ContactID)
}

func emailLink(pc widget.PlatformConfig) string {
	if pc.EmailLinkType == widget.LinkURL {
		return pc.ContactID
	}
	return "mailto:" + pc.ContactID
}

// uriUnreserved restores the characters encodeURIComponent leaves alone but
// url.QueryEscape encodes.
var uriUnreserved = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeURIComponent percent-encodes s for use inside a query value. Spaces
// become %20 rather than '+', which wa.me does not decode.
func encodeURIComponent(s string) string {
	return uriUnreserved.Replace(url.QueryEscape(s))
}
