package settings

import (
	"fmt"

	"github.com/glassbrowser/glassd/internal/domain"
)

// Appearance is the derived visual state the chrome renders from.
// Every field is computed by an independent, idempotent projection of the
// settings map; recomputing from the same settings yields the same result.
type Appearance struct {
	Theme            string  `json:"theme"` // resolved: "dark" or "light"
	BackgroundColor  string  `json:"backgroundColor"`
	AccentHue        int     `json:"accentHue"`
	BlurPx           int     `json:"blurPx"`
	TabRadiusPx      int     `json:"tabRadiusPx"`
	UIShape          string  `json:"uiShape"`
	Font             string  `json:"font"`
	FontSizePx       int     `json:"fontSizePx"`
	CompactMode      bool    `json:"compactMode"`
	AnimationSpeed   string  `json:"animationSpeed"`
	GlowEffects      bool    `json:"glowEffects"`
	HoverAnimations  bool    `json:"hoverAnimations"`
	BackgroundStyle  string  `json:"backgroundStyle"`
	HasCustomBg      bool    `json:"hasCustomBg"`
	BgOpacity        float64 `json:"bgOpacity"`
	AnimatedBg       bool    `json:"animatedBg"`
	TabMaxWidthPx    int     `json:"tabMaxWidthPx"`
	ShowBookmarksBar bool    `json:"showBookmarksBar"`
	URLBarStyle      string  `json:"urlBarStyle"`
	TabPreview       bool    `json:"tabPreview"`
	ConfirmClose     bool    `json:"confirmClose"`
}

// ResolveTheme maps the theme setting to a concrete theme. "auto" follows
// the host's dark-mode preference.
func ResolveTheme(s domain.Settings, prefersDark bool) string {
	theme := s.String("theme", "dark")
	if theme == "auto" {
		if prefersDark {
			return "dark"
		}
		return "light"
	}
	return theme
}

// BackgroundColor derives the chrome background from theme and
// transparency.
func BackgroundColor(s domain.Settings, prefersDark bool) string {
	alpha := s.Float("transparency", 0.85)
	if ResolveTheme(s, prefersDark) == "light" {
		return fmt.Sprintf("rgba(245, 245, 250, %g)", alpha)
	}
	return fmt.Sprintf("rgba(15, 15, 25, %g)", alpha)
}

// BackgroundStyle returns the start-page background style. "custom"
// only holds when a custom image is actually stored; otherwise it falls
// back to the plain gradient.
func BackgroundStyle(s domain.Settings) string {
	style := s.String("bgStyle", "gradient")
	if style == "custom" && s.String("customBgImage", "") == "" {
		return "gradient"
	}
	return style
}

// Derive computes the full appearance snapshot from settings.
func Derive(s domain.Settings, prefersDark bool) Appearance {
	return Appearance{
		Theme:            ResolveTheme(s, prefersDark),
		BackgroundColor:  BackgroundColor(s, prefersDark),
		AccentHue:        s.Int("accentHue", 220),
		BlurPx:           s.Int("blur", 10),
		TabRadiusPx:      s.Int("tabRadius", 8),
		UIShape:          s.String("uiShape", "rounded"),
		Font:             s.String("font", "system"),
		FontSizePx:       s.Int("fontSize", 16),
		CompactMode:      s.Bool("compactMode", false),
		AnimationSpeed:   s.String("animationSpeed", "normal"),
		GlowEffects:      s.Bool("glowEffects", true),
		HoverAnimations:  s.Bool("hoverAnimations", true),
		BackgroundStyle:  BackgroundStyle(s),
		HasCustomBg:      s.String("customBgImage", "") != "",
		BgOpacity:        s.Float("bgOpacity", 100),
		AnimatedBg:       s.Bool("animatedBg", true),
		TabMaxWidthPx:    s.Int("tabWidth", 200),
		ShowBookmarksBar: s.Bool("showBookmarksBar", true),
		URLBarStyle:      s.String("urlBarStyle", "rounded"),
		TabPreview:       s.Bool("tabPreview", false),
		ConfirmClose:     s.Bool("confirmClose", false),
	}
}
