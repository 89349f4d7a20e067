package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Color represents an RGB color.
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// Margins represents page margins in millimeters.
type Margins struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// Theme holds the document branding and layout settings shared by every
// generator. The zero value is not usable; start from DefaultTheme.
type Theme struct {
	Brand           string  `json:"brand"`
	PageSize        string  `json:"page_size"`   // A4, Letter, Legal
	Orientation     string  `json:"orientation"` // portrait, landscape
	FontFamily      string  `json:"font_family"`
	FontSize        float64 `json:"font_size"`
	HeadingFontSize float64 `json:"heading_font_size"`
	TitleFontSize   float64 `json:"title_font_size"`
	HeaderColor     Color   `json:"header_color"` // table header fill
	TotalRowColor   Color   `json:"total_row_color"`
	AlternateColor  Color   `json:"alternate_color"`
	GridColor       Color   `json:"grid_color"`
	MutedColor      Color   `json:"muted_color"`
	Margins         Margins `json:"margins"`
	DateFormat      string  `json:"date_format"`
	TimestampFormat string  `json:"timestamp_format"`
	MonthFormat     string  `json:"month_format"`
}

// DefaultTheme returns the built-in InvestorHub document theme.
func DefaultTheme() Theme {
	return Theme{
		Brand:           "InvestorHub",
		PageSize:        "Letter",
		Orientation:     "portrait",
		FontFamily:      "Helvetica",
		FontSize:        11,
		HeadingFontSize: 14,
		TitleFontSize:   20,
		HeaderColor:     Color{R: 30, G: 58, B: 95},
		TotalRowColor:   Color{R: 240, G: 244, B: 248},
		AlternateColor:  Color{R: 248, G: 249, B: 250},
		GridColor:       Color{R: 204, G: 204, B: 204},
		MutedColor:      Color{R: 68, G: 68, B: 68},
		Margins: Margins{
			Left:   19,
			Right:  19,
			Top:    19,
			Bottom: 19,
		},
		DateFormat:      "January 02, 2006",
		TimestampFormat: "January 02, 2006 at 03:04 PM",
		MonthFormat:     "January 2006",
	}
}

// LoadTheme overlays a JSON theme file on top of the defaults. Fields absent
// from the file keep their default values; unknown fields are rejected.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme()

	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("reading theme config: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&theme); err != nil {
		return Theme{}, fmt.Errorf("parsing theme config %s: %w", path, err)
	}
	return theme, nil
}
