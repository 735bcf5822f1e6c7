package widget

// Field names one editable attribute of a PlatformConfig.
type Field string

const (
	FieldEnabled    Field = "enabled"
	FieldContactID  Field = "contactId"
	FieldMessage    Field = "message"
	FieldLinkType   Field = "linkType"
	FieldCustomIcon Field = "customIcon"
	FieldColor      Field = "color"
)

// PositionValues returns every Position in display order.
func PositionValues() []Position { return []Position{BottomRight, BottomLeft} }

// AnimationValues returns every Animation in display order.
func AnimationValues() []Animation {
	return []Animation{AnimationNone, AnimationPulse, AnimationBounce, AnimationFade, AnimationShake}
}

// ShapeValues returns every Shape in display order.
func ShapeValues() []Shape { return []Shape{ShapeRounded, ShapeSquare} }

// SpacingValues returns every Spacing in display order.
func SpacingValues() []Spacing { return []Spacing{SpacingCompact, SpacingDefault, SpacingRelaxed} }

// EmailLinkTypeValues returns every EmailLinkType in display order.
func EmailLinkTypeValues() []EmailLinkType { return []EmailLinkType{LinkMailto, LinkURL} }

// ParsePlatformID reports whether s names a known platform.
func ParsePlatformID(s string) (PlatformID, bool) { return parse(s, Platforms) }

// ParsePosition reports whether s names a known position.
func ParsePosition(s string) (Position, bool) { return parse(s, PositionValues()) }

// ParseAnimation reports whether s names a known animation.
func ParseAnimation(s string) (Animation, bool) { return parse(s, AnimationValues()) }

// ParseShape reports whether s names a known shape.
func ParseShape(s string) (Shape, bool) { return parse(s, ShapeValues()) }

// ParseSpacing reports whether s names a known spacing.
func ParseSpacing(s string) (Spacing, bool) { return parse(s, SpacingValues()) }

// ParseEmailLinkType reports whether s names a known email link type.
func ParseEmailLinkType(s string) (EmailLinkType, bool) { return parse(s, EmailLinkTypeValues()) }

// Next returns the value following current in values, wrapping around. An
// unknown current value yields the first entry.
func Next[T ~string](values []T, current T) T {
	return step(values, current, 1)
}

// Prev returns the value preceding current in values, wrapping around.
func Prev[T ~string](values []T, current T) T {
	return step(values, current, -1)
}

func step[T ~string](values []T, current T, delta int) T {
	if len(values) == 0 {
		return current
	}
	for i, v := range values {
		if v == current {
			return values[(i+delta+len(values))%len(values)]
		}
	}
	return values[0]
}

func parse[T ~string](s string, values []T) (T, bool) {
	for _, v := range values {
		if string(v) == s {
			return v, true
		}
	}
	var zero T
	return zero, false
}
