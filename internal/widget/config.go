package widget

// Default returns the initial configuration shown to a new user.
func Default() Config {
	return Config{
		Platforms: map[PlatformID]PlatformConfig{
			WhatsApp: {
				Enabled:           true,
				ContactID:         "15551234567",
				PredefinedMessage: "Hello! I have a question about your services.",
			},
			Messenger: {Enabled: true, ContactID: "Meta"},
			Telegram:  {Enabled: true, ContactID: "mychannel"},
			Phone:     {Enabled: false, ContactID: "15551234567"},
			Email:     {Enabled: false, ContactID: "hello@example.com", EmailLinkType: LinkMailto},
		},
		HeaderText:      "Contact Us",
		HeaderBgColor:   "#128C7E",
		HeaderTextColor: "#FFFFFF",
		MainButtonColor: "#25D366",
		MainIconColor:   "#FFFFFF",
		Position:        BottomRight,
		ButtonAnimation: AnimationPulse,
		WidgetShape:     ShapeRounded,
		MenuSpacing:     SpacingDefault,
	}
}

// Clone returns a deep copy. The result always holds an entry for every
// known platform, even when the receiver was built by hand without one.
func (c Config) Clone() Config {
	out := c
	out.Platforms = make(map[PlatformID]PlatformConfig, len(Platforms))
	for _, id := range Platforms {
		out.Platforms[id] = c.Platforms[id]
	}
	return out
}

// Platform returns the configuration for id, or the zero value when absent.
func (c Config) Platform(id PlatformID) PlatformConfig {
	return c.Platforms[id]
}

// WithPlatform returns a copy of c with the configuration for id replaced.
func (c Config) WithPlatform(id PlatformID, pc PlatformConfig) Config {
	out := c.Clone()
	if _, known := ParsePlatformID(string(id)); known {
		out.Platforms[id] = pc
	}
	return out
}

// SetEnabled returns a copy of c with platform id switched on or off.
func (c Config) SetEnabled(id PlatformID, enabled bool) Config {
	pc := c.Platform(id)
	pc.Enabled = enabled
	return c.WithPlatform(id, pc)
}

// SetContactID returns a copy of c with the contact id of platform id replaced.
func (c Config) SetContactID(id PlatformID, contactID string) Config {
	pc := c.Platform(id)
	pc.ContactID = contactID
	return c.WithPlatform(id, pc)
}

// SetPredefinedMessage returns a copy of c with the pre-filled message of platform id replaced.
func (c Config) SetPredefinedMessage(id PlatformID, message string) Config {
	pc := c.Platform(id)
	pc.PredefinedMessage = message
	return c.WithPlatform(id, pc)
}

// SetCustomIcon returns a copy of c with the icon markup of platform id replaced.
func (c Config) SetCustomIcon(id PlatformID, svg string) Config {
	pc := c.Platform(id)
	pc.CustomIconSVG = svg
	return c.WithPlatform(id, pc)
}

// SetColor returns a copy of c with the color override of platform id replaced.
// An empty color restores the platform default.
func (c Config) SetColor(id PlatformID, color string) Config {
	pc := c.Platform(id)
	pc.Color = color
	return c.WithPlatform(id, pc)
}

// SetEmailLinkType switches how the email contact id is interpreted. A value
// valid for one link type is never valid for the other, so the contact id is
// cleared whenever the type changes.
func (c Config) SetEmailLinkType(t EmailLinkType) Config {
	pc := c.Platform(Email)
	if pc.EmailLinkType != t {
		pc.ContactID = ""
	}
	pc.EmailLinkType = t
	return c.WithPlatform(Email, pc)
}

// EnabledPlatforms returns the enabled platforms in canonical order.
func (c Config) EnabledPlatforms() []PlatformID {
	enabled := make([]PlatformID, 0, len(Platforms))
	for _, id := range Platforms {
		if c.Platforms[id].Enabled {
			enabled = append(enabled, id)
		}
	}
	return enabled
}
