package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/socialwidget/internal/widget"
	swerrors "github.com/alexisbeaulieu97/socialwidget/pkg/errors"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	fullYAML := `header_text: "Talk to us"
header_bg_color: "#000000"
header_text_color: "#FFFFFF"
main_button_color: "#0084FF"
main_icon_color: "#FFFFFF"
position: bottom-left
button_animation: bounce
widget_shape: square
menu_spacing: relaxed
platforms:
  whatsapp:
    enabled: false
    contact_id: "15551234567"
  messenger:
    enabled: true
    contact_id: acme
  telegram:
    enabled: false
    contact_id: acme_support
  phone:
    enabled: true
    contact_id: "5551234567"
  email:
    enabled: true
    contact_id: /contact
    email_link_type: url
    color: "#222222"
`

	partialYAML := `header_text: "Hi"
platforms:
  email:
    enabled: true
`

	unknownKey := `header_text: "Hi"
colour: "#FFFFFF"
`

	badType := `header_text: [1, 2]
`

	badColor := `header_bg_color: "red"
`

	badEnum := `position: top-left
`

	badPlatformColor := `platforms:
  telegram:
    color: "#12345"
`

	longHeader := "header_text: \"" + strings.Repeat("x", 101) + "\"\n"

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg widget.Config, err error)
	}{
		{
			name:     "full document is parsed",
			contents: fullYAML,
			assert: func(t *testing.T, cfg widget.Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "Talk to us", cfg.HeaderText)
				require.Equal(t, widget.BottomLeft, cfg.Position)
				require.Equal(t, widget.AnimationBounce, cfg.ButtonAnimation)
				require.Equal(t, widget.ShapeSquare, cfg.WidgetShape)
				require.Equal(t, widget.SpacingRelaxed, cfg.MenuSpacing)
				require.Equal(t, []widget.PlatformID{widget.Messenger, widget.Phone, widget.Email}, cfg.EnabledPlatforms())
				email := cfg.Platform(widget.Email)
				require.Equal(t, widget.LinkURL, email.EmailLinkType)
				require.Equal(t, "/contact", email.ContactID)
				require.Equal(t, "#222222", email.Color)
			},
		},
		{
			name:     "partial document keeps defaults",
			contents: partialYAML,
			assert: func(t *testing.T, cfg widget.Config, err error) {
				require.NoError(t, err)
				def := widget.Default()
				require.Equal(t, "Hi", cfg.HeaderText)
				require.Equal(t, def.HeaderBgColor, cfg.HeaderBgColor)
				require.Equal(t, def.ButtonAnimation, cfg.ButtonAnimation)
				require.Equal(t, def.Platform(widget.WhatsApp), cfg.Platform(widget.WhatsApp))
				email := cfg.Platform(widget.Email)
				require.True(t, email.Enabled)
				require.Equal(t, "hello@example.com", email.ContactID)
				require.Equal(t, widget.LinkMailto, email.EmailLinkType)
			},
		},
		{
			name:     "empty document is the default configuration",
			contents: "",
			assert: func(t *testing.T, cfg widget.Config, err error) {
				require.NoError(t, err)
				require.Equal(t, widget.Default(), cfg)
			},
		},
		{
			name:     "unknown keys return parse error with line",
			contents: unknownKey,
			assert: func(t *testing.T, _ widget.Config, err error) {
				var parseErr *swerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 2, parseErr.Line)
				require.Contains(t, parseErr.Message, "colour")
			},
		},
		{
			name:     "wrong type returns parse error",
			contents: badType,
			assert: func(t *testing.T, _ widget.Config, err error) {
				var parseErr *swerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name:     "invalid header color",
			contents: badColor,
			assert: func(t *testing.T, _ widget.Config, err error) {
				var validationErr *swerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "header_bg_color", validationErr.Field)
				require.Contains(t, validationErr.Message, "#RRGGBB")
			},
		},
		{
			name:     "invalid position",
			contents: badEnum,
			assert: func(t *testing.T, _ widget.Config, err error) {
				var validationErr *swerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "position", validationErr.Field)
				require.Contains(t, validationErr.Message, "bottom-right, bottom-left")
			},
		},
		{
			name:     "invalid platform color override",
			contents: badPlatformColor,
			assert: func(t *testing.T, _ widget.Config, err error) {
				var validationErr *swerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "platforms.telegram.color", validationErr.Field)
			},
		},
		{
			name:     "header text too long",
			contents: longHeader,
			assert: func(t *testing.T, _ widget.Config, err error) {
				var validationErr *swerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "header_text", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempConfig(t, tc.contents)
			cfg, err := Load(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.yaml")
	_, err := Load(path)

	var parseErr *swerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, path, parseErr.Path)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseDoesNotCheckContactIDs(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte("platforms:\n  whatsapp:\n    contact_id: \"+1 555\"\n"), "inline")
	require.NoError(t, err)
	require.Equal(t, "+1 555", cfg.Platform(widget.WhatsApp).ContactID)
}

func TestWriteThenLoad(t *testing.T) {
	t.Parallel()

	cfg := widget.Default().
		SetEnabled(widget.Phone, true).
		SetEmailLinkType(widget.LinkURL).
		SetContactID(widget.Email, "https://example.com/contact").
		SetCustomIcon(widget.Telegram, `<svg viewBox="0 0 1 1"></svg>`).
		SetColor(widget.Messenger, "#ABCDEF")
	cfg.HeaderText = "Need help? \"Ask\" us"
	cfg.ButtonAnimation = widget.AnimationShake

	path := filepath.Join(t.TempDir(), "widget.yaml")
	require.NoError(t, Write(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestMarshalStartsWithComment(t *testing.T) {
	t.Parallel()

	data, err := Marshal(widget.Default())
	require.NoError(t, err)
	require.Contains(t, string(data), "# Social contact widget configuration.")
	require.Contains(t, string(data), "header_text: Contact Us")
	require.Contains(t, string(data), "  whatsapp:\n    enabled: true\n")
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "widget.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
