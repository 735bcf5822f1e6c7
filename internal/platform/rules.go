package platform

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/alexisbeaulieu97/socialwidget/internal/widget"
)

var (
	whatsappPattern   = regexp.MustCompile(`^[0-9]{7,15}$`)
	telegramPattern   = regexp.MustCompile(`^[A-Za-z0-9_]{5,32}$`)
	phoneCharsPattern = regexp.MustCompile(`^[0-9 ()+\-]+$`)
	phoneDigitsRun    = regexp.MustCompile(`[0-9]{7,}`)
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	schemePattern     = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*://`)
)

// containsSpace reports whether s holds any Unicode whitespace, including
// vertical tabs and no-break spaces that \s does not match.
func containsSpace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}

func checkWhatsApp(pc widget.PlatformConfig) string {
	v := strings.TrimSpace(pc.ContactID)
	switch {
	case v == "":
		return "WhatsApp number is required"
	case !whatsappPattern.MatchString(v):
		return "WhatsApp number must be 7-15 digits including the country code, without + or spaces"
	}
	return ""
}

func checkMessenger(pc widget.PlatformConfig) string {
	v := strings.TrimSpace(pc.ContactID)
	switch {
	case v == "":
		return "Messenger username is required"
	case containsSpace(v):
		return "Messenger username must not contain spaces"
	}
	return ""
}

func checkTelegram(pc widget.PlatformConfig) string {
	v := strings.TrimSpace(pc.ContactID)
	switch {
	case v == "":
		return "Telegram username is required"
	case !telegramPattern.MatchString(v):
		return "Telegram username must be 5-32 characters of letters, digits or underscores"
	}
	return ""
}

// checkPhone accepts any mix of digits, ASCII spaces, parentheses, '+' and '-'
// as long as it holds a run of seven digits.
func checkPhone(pc widget.PlatformConfig) string {
	v := strings.TrimSpace(pc.ContactID)
	switch {
	case v == "":
		return "Phone number is required"
	case !phoneCharsPattern.MatchString(v) || !phoneDigitsRun.MatchString(v):
		return "Phone number must contain at least 7 consecutive digits and only digits, spaces, parentheses, + or -"
	}
	return ""
}

func checkEmail(pc widget.PlatformConfig) string {
	v := strings.TrimSpace(pc.ContactID)
	if pc.EmailLinkType == widget.LinkURL {
		return checkEmailURL(v)
	}
	switch {
	case v == "":
		return "Email address is required"
	case containsSpace(v) || !emailPattern.MatchString(v):
		return "Enter a valid email address, e.g. name@example.com"
	}
	return ""
}

func checkEmailURL(v string) string {
	if v == "" {
		return "Link URL is required"
	}
	if strings.HasPrefix(v, "/") || strings.HasPrefix(v, "#") {
		return ""
	}

	candidate := v
	if !schemePattern.MatchString(candidate) {
		candidate = "https://" + candidate
	}
	parsed, err := url.Parse(candidate)
	if err != nil || !strings.Contains(parsed.Hostname(), ".") {
		return "Enter a valid URL, e.g. https://example.com/contact, or a path starting with / or #"
	}
	return ""
}
