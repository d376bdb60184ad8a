package domain

// Theme values as stored under the theme draft key.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Palette is the set of colors a rendering layer derives its styles from.
type Palette struct {
	Background    string `json:"background"`
	Surface       string `json:"surface"`
	Primary       string `json:"primary"`
	Text          string `json:"text"`
	TextSecondary string `json:"textSecondary"`
	Card          string `json:"card"`
	Border        string `json:"border"`
	Accent        string `json:"accent"`
}

var (
	// LightPalette is the default palette.
	LightPalette = Palette{
		Background:    "#F5F7FA",
		Surface:       "#FFFFFF",
		Primary:       "#4a72ac",
		Text:          "#000000",
		TextSecondary: "#555555",
		Card:          "#FFFFFF",
		Border:        "#E0E0E0",
		Accent:        "#4a72ac",
	}

	// DarkPalette is the navy/peach palette used in dark mode.
	DarkPalette = Palette{
		Background:    "#2D3250",
		Surface:       "#424769",
		Primary:       "#F6B17A",
		Text:          "#FFFFFF",
		TextSecondary: "#AAB2D5",
		Card:          "#424769",
		Border:        "#7077A1",
		Accent:        "#F6B17A",
	}
)

// Theme is the explicit configuration object passed to rendering layers.
type Theme struct {
	Dark   bool    `json:"isDarkMode"`
	Colors Palette `json:"colors"`
}

// NewTheme returns the theme for the given mode with its derived palette.
func NewTheme(dark bool) Theme {
	if dark {
		return Theme{Dark: true, Colors: DarkPalette}
	}
	return Theme{Dark: false, Colors: LightPalette}
}

// Name returns the value persisted for this theme.
func (t Theme) Name() string {
	if t.Dark {
		return ThemeDark
	}
	return ThemeLight
}
