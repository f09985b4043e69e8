package linechart

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

const (
	FontSize = 12.0

	DefaultLineWidth = 2.0
	DefaultGridCount = 10

	DefaultGridColor   = "#ededed"
	DefaultTextColor   = "#292929"
	DefaultStrokeColor = "white"
)

var DefaultInsets = Padding{
	Top:    65,
	Right:  25,
	Bottom: 50,
	Left:   40,
}

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

type Font struct {
	Size     float64
	Bold     bool
	Families []string
}

func BoldFont(size float64) Font {
	return Font{
		Size: size,
		Bold: true,
	}
}

// LineHeight approximates the height of one line of text.
func (f Font) LineHeight() float64 {
	return f.Size * 1.2
}

func (f Font) TextWidth(str string) float64 {
	return float64(utf8.RuneCountInString(str)) * f.Size * 0.6
}

type Labels struct {
	Visible bool
	Values  []string
	Font    Font
	Color   string
}

// Text gives the label at index i or an empty string when there is none.
func (l Labels) Text(i int) string {
	if i < 0 || i >= len(l.Values) {
		return ""
	}
	return l.Values[i]
}

type Grid struct {
	Count int
	Color string
}

type Axis struct {
	Insets Padding
}

type Coordinate struct {
	Labels Labels
	Grid   Grid
	Axis   Axis
}

func DefaultCoordinate() Coordinate {
	return Coordinate{
		Labels: Labels{
			Visible: true,
			Font:    BoldFont(FontSize),
			Color:   DefaultTextColor,
		},
		Grid: Grid{
			Count: DefaultGridCount,
			Color: DefaultGridColor,
		},
		Axis: Axis{
			Insets: DefaultInsets,
		},
	}
}

type DotLabels struct {
	Visible     bool
	Font        Font
	Color       string
	StrokeColor string
	StrokeWidth float64
	Precision   int32
}

type Config struct {
	X Coordinate
	Y Coordinate

	DotLabels   DotLabels
	LineWidth   float64
	Colors      Palette
	CycleColors bool
}

func DefaultConfig() Config {
	return Config{
		X: DefaultCoordinate(),
		Y: DefaultCoordinate(),
		DotLabels: DotLabels{
			Visible:     true,
			Font:        BoldFont(FontSize),
			Color:       DefaultTextColor,
			StrokeColor: DefaultStrokeColor,
			StrokeWidth: 2,
		},
		LineWidth: DefaultLineWidth,
		Colors:    append(Palette(nil), DefaultPalette...),
	}
}

// SerieColor gives the stroke color for the serie at index i.
func (c Config) SerieColor(i int) string {
	if c.CycleColors {
		return c.Colors.Cycle(i)
	}
	return c.Colors.Color(i)
}

// Validate reports the settings that the chart will silently correct.
func (c Config) Validate() error {
	var errs []error
	if err := CheckTicks(c.X.Grid.Count); err != nil {
		errs = append(errs, fmt.Errorf("x grid: %w", err))
	}
	if err := CheckTicks(c.Y.Grid.Count); err != nil {
		errs = append(errs, fmt.Errorf("y grid: %w", err))
	}
	if c.LineWidth < 0 {
		errs = append(errs, fmt.Errorf("%w: line width %g", ErrInvalidArgument, c.LineWidth))
	}
	if c.DotLabels.Precision < 0 {
		errs = append(errs, fmt.Errorf("%w: dot label precision %d", ErrInvalidArgument, c.DotLabels.Precision))
	}
	return errors.Join(errs...)
}
