package core

// ── Page geometry ─────────────────────────────────────────────────────────────

// PageGeometry describes the physical page in millimetres.
// ContentWidth must remain positive; DefaultGeometry is A4 with 15mm margins.
type PageGeometry struct {
	Width        float64
	Height       float64
	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	MarginLeft   float64
}

// DefaultGeometry returns A4 portrait with 15mm margins on every side.
func DefaultGeometry() PageGeometry {
	return PageGeometry{
		Width:        210,
		Height:       297,
		MarginTop:    15,
		MarginRight:  15,
		MarginBottom: 15,
		MarginLeft:   15,
	}
}

// ContentWidth is the horizontal space available between the left and right margins.
func (g PageGeometry) ContentWidth() float64 {
	return g.Width - g.MarginLeft - g.MarginRight
}

// merge overlays any non-zero fields of override onto g.
// A zero value in override means "keep the default".
func (g PageGeometry) merge(override *PageGeometry) PageGeometry {
	if override == nil {
		return g
	}
	out := g
	if override.Width > 0 {
		out.Width = override.Width
	}
	if override.Height > 0 {
		out.Height = override.Height
	}
	if override.MarginTop > 0 {
		out.MarginTop = override.MarginTop
	}
	if override.MarginRight > 0 {
		out.MarginRight = override.MarginRight
	}
	if override.MarginBottom > 0 {
		out.MarginBottom = override.MarginBottom
	}
	if override.MarginLeft > 0 {
		out.MarginLeft = override.MarginLeft
	}
	return out
}

// ── Themes ────────────────────────────────────────────────────────────────────

// RGB is a 0–255 colour triple.
type RGB struct {
	R, G, B int
}

// Theme is a named palette applied uniformly across one generated document.
// Themes are immutable; callers select one by name at Generator construction.
type Theme struct {
	Name       string
	Primary    RGB
	Secondary  RGB
	Accent     RGB
	Text       RGB
	Background RGB
	Border     RGB
	FontFamily string

	// Vertical spacing scale in mm, used between document elements.
	SpacingSmall  float64
	SpacingMedium float64
	SpacingLarge  float64
}

// DefaultThemeName is used whenever an unknown theme name is requested.
const DefaultThemeName = "classic_blue"

var builtinThemes = map[string]Theme{
	"classic_blue": {
		Name:          "classic_blue",
		Primary:       RGB{30, 64, 124},
		Secondary:     RGB{90, 108, 140},
		Accent:        RGB{198, 150, 34},
		Text:          RGB{33, 37, 41},
		Background:    RGB{238, 242, 248},
		Border:        RGB{180, 188, 200},
		FontFamily:    "Helvetica",
		SpacingSmall:  2,
		SpacingMedium: 5,
		SpacingLarge:  9,
	},
	"modern_green": {
		Name:          "modern_green",
		Primary:       RGB{22, 101, 52},
		Secondary:     RGB{75, 110, 88},
		Accent:        RGB{202, 138, 4},
		Text:          RGB{28, 33, 30},
		Background:    RGB{236, 246, 238},
		Border:        RGB{170, 190, 176},
		FontFamily:    "Helvetica",
		SpacingSmall:  2,
		SpacingMedium: 5,
		SpacingLarge:  9,
	},
	"executive": {
		Name:          "executive",
		Primary:       RGB{40, 40, 46},
		Secondary:     RGB{110, 110, 118},
		Accent:        RGB{140, 30, 44},
		Text:          RGB{25, 25, 28},
		Background:    RGB{242, 240, 236},
		Border:        RGB{190, 186, 178},
		FontFamily:    "Times",
		SpacingSmall:  2,
		SpacingMedium: 6,
		SpacingLarge:  10,
	},
}

// ThemeByName returns the built-in theme for name, falling back to
// classic_blue for any unrecognised name. It never fails.
func ThemeByName(name string) Theme {
	if t, ok := builtinThemes[name]; ok {
		return t
	}
	return builtinThemes[DefaultThemeName]
}

// ThemeNames returns the names of all built-in themes.
func ThemeNames() []string {
	return []string{"classic_blue", "modern_green", "executive"}
}
