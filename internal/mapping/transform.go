package mapping

import (
	"fmt"

	"github.com/jsvensson/wordhue/internal/color"
)

// Pastel is a Transform that pastelizes each word color.
func Pastel(c color.Color) color.Color {
	return c.Pastelized()
}

// BrightenBy returns a Transform that raises HSL lightness by pct.
func BrightenBy(pct float64) Transform {
	return func(c color.Color) color.Color {
		return color.Brighten(c, pct)
	}
}

// TransformByName resolves "none", "pastel" or "brighten". pct is only used by
// brighten. An empty name means none, which is returned as nil.
func TransformByName(name string, pct float64) (Transform, error) {
	switch name {
	case "", "none":
		return nil, nil
	case "pastel":
		return Pastel, nil
	case "brighten":
		return BrightenBy(pct), nil
	default:
		return nil, fmt.Errorf("unknown transform %q (valid: none, pastel, brighten)", name)
	}
}
