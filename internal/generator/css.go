package generator

import "github.com/alexisbeaulieu97/socialwidget/internal/widget"

const (
	squareRadius  = "12px"
	roundedRadius = "50%"
)

var (
	anchorSides = map[widget.Position]string{
		widget.BottomRight: "right",
		widget.BottomLeft:  "left",
	}

	menuGaps = map[widget.Spacing]string{
		widget.SpacingCompact: "8px",
		widget.SpacingDefault: "12px",
		widget.SpacingRelaxed: "16px",
	}

	radii = map[widget.Shape]string{
		widget.ShapeRounded: roundedRadius,
		widget.ShapeSquare:  squareRadius,
	}

	animations = map[widget.Animation]keyframes{
		widget.AnimationPulse: {
			Name:   "scw-pulse",
			Timing: "2s ease-in-out infinite",
			Frames: "  0%, 100% { transform: scale(1); }\n  50% { transform: scale(1.08); }",
		},
		widget.AnimationBounce: {
			Name:   "scw-bounce",
			Timing: "2s ease infinite",
			Frames: "  0%, 20%, 50%, 80%, 100% { transform: translateY(0); }\n  40% { transform: translateY(-8px); }\n  60% { transform: translateY(-4px); }",
		},
		widget.AnimationFade: {
			Name:   "scw-fade",
			Timing: "2.5s ease-in-out infinite",
			Frames: "  0%, 100% { opacity: 1; }\n  50% { opacity: 0.6; }",
		},
		widget.AnimationShake: {
			Name:   "scw-shake",
			Timing: "3s ease-in-out infinite",
			Frames: "  0%, 60%, 100% { transform: translateX(0); }\n  10%, 30%, 50% { transform: translateX(-4px); }\n  20%, 40% { transform: translateX(4px); }",
		},
	}
)

type keyframes struct {
	Name   string
	Timing string
	Frames string
}

type cssData struct {
	RootID          string
	Side            string
	Gap             string
	ButtonRadius    string
	IconRadius      string
	HeaderBgColor   string
	HeaderTextColor string
	MainButtonColor string
	MainIconColor   string
	Animation       *keyframes
}

// RenderCSS renders the stylesheet. Unknown enum values fall back to the
// defaults of bottom-right, default spacing, rounded shape and no animation.
// Colors that are not #RRGGBB fall back to the default colors.
func RenderCSS(cfg widget.Config) string {
	def := widget.Default()
	data := cssData{
		RootID:          RootID,
		Side:            lookup(anchorSides, cfg.Position, widget.BottomRight),
		Gap:             lookup(menuGaps, cfg.MenuSpacing, widget.SpacingDefault),
		ButtonRadius:    lookup(radii, cfg.WidgetShape, widget.ShapeRounded),
		IconRadius:      lookup(radii, cfg.WidgetShape, widget.ShapeRounded),
		HeaderBgColor:   hexOr(cfg.HeaderBgColor, def.HeaderBgColor),
		HeaderTextColor: hexOr(cfg.HeaderTextColor, def.HeaderTextColor),
		MainButtonColor: hexOr(cfg.MainButtonColor, def.MainButtonColor),
		MainIconColor:   hexOr(cfg.MainIconColor, def.MainIconColor),
	}
	if anim, ok := animations[cfg.ButtonAnimation]; ok {
		data.Animation = &anim
	}
	return execute("widget.css.tmpl", data)
}

func hexOr(color, fallback string) string {
	if widget.IsHexColor(color) {
		return color
	}
	return fallback
}

func lookup[K comparable](table map[K]string, key, fallback K) string {
	if v, ok := table[key]; ok {
		return v
	}
	return table[fallback]
}
