package heatmap

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"gonum.org/v1/plot/palette"
)

// Channel selects the color component used for shading.
type Channel int

const (
	// Red shades cells from black to red.
	Red Channel = iota
	// Green shades cells from black to green.
	Green
	// Blue shades cells from black to blue.
	Blue
)

// String implements fmt.Stringer.
func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

// ParseChannel accepts red, green or blue in any case.
func ParseChannel(s string) (Channel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "r":
		return Red, nil
	case "green", "g":
		return Green, nil
	case "blue", "b":
		return Blue, nil
	}
	return 0, fmt.Errorf("heatmap: %q: %w", s, ErrUnknownChannel)
}

// Shade returns the color for intensity in [0,1]; values outside are clamped.
func (c Channel) Shade(intensity float64) color.RGBA {
	if intensity < 0 || math.IsNaN(intensity) {
		intensity = 0
	}
	if intensity > 1 {
		intensity = 1
	}
	v := uint8(intensity*255 + 0.5)
	switch c {
	case Green:
		return color.RGBA{G: v, A: 255}
	case Blue:
		return color.RGBA{B: v, A: 255}
	default:
		return color.RGBA{R: v, A: 255}
	}
}

// Palette is an evenly spaced ramp from black to full intensity.
type Palette struct {
	colors []color.Color
}

var _ palette.Palette = Palette{}

// NewPalette builds a ramp of the given number of levels (at least 2).
func NewPalette(c Channel, levels int) Palette {
	if levels < 2 {
		levels = 2
	}
	cols := make([]color.Color, levels)
	for i := range cols {
		cols[i] = c.Shade(float64(i) / float64(levels-1))
	}
	return Palette{colors: cols}
}

// Colors implements palette.Palette.
func (p Palette) Colors() []color.Color { return p.colors }
