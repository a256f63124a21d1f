package color

import "math"

// Methods with a pointer receiver mutate the color in place; methods with a
// value receiver return an independent copy and leave the receiver untouched.

// HSB returns hue in degrees [0, 360) and saturation and brightness in [0, 1],
// using the hexagonal HSV model. SetHSB accepts the same units.
func (c Color) HSB() (h, s, b float64) {
	r, g, bl := float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0

	max := math.Max(math.Max(r, g), bl)
	min := math.Min(math.Min(r, g), bl)
	chroma := max - min

	switch {
	case chroma == 0:
		h = 0
	case max == r:
		h = math.Mod((g-bl)/chroma, 6)
	case max == g:
		h = (bl-r)/chroma + 2
	default:
		h = (r-g)/chroma + 4
	}
	h = NormalizeHue(h * 60)

	if max > 0 {
		s = chroma / max
	}
	return h, s, max
}

// NormalizeHue wraps a hue in degrees into [0, 360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// hsbToRGB converts HSB to unrounded channels on the 0-255 scale.
func hsbToRGB(h, s, v float64) (r, g, b float64) {
	h = NormalizeHue(h)
	chroma := v * s
	sector := h / 60
	x := chroma * (1 - math.Abs(math.Mod(sector, 2)-1))
	m := v - chroma

	var r1, g1, b1 float64
	switch int(sector) {
	case 0:
		r1, g1, b1 = chroma, x, 0
	case 1:
		r1, g1, b1 = x, chroma, 0
	case 2:
		r1, g1, b1 = 0, chroma, x
	case 3:
		r1, g1, b1 = 0, x, chroma
	case 4:
		r1, g1, b1 = x, 0, chroma
	default:
		r1, g1, b1 = chroma, 0, x
	}
	return (r1 + m) * 255, (g1 + m) * 255, (b1 + m) * 255
}

// SetHSB overwrites the channels from an HSB triple. Each channel is rounded to
// the nearest integer; if any lands outside [0, 255] an *InvalidChannelError is
// returned and the color is left untouched.
func (c *Color) SetHSB(h, s, b float64) error {
	r, g, bl := hsbToRGB(h, s, b)
	vals := [3]float64{math.Round(r), math.Round(g), math.Round(bl)}

	var out [3]uint8
	for i, v := range vals {
		ch, err := channel(channelNames[i], v)
		if err != nil {
			return err
		}
		out[i] = ch
	}
	c.R, c.G, c.B = out[0], out[1], out[2]
	return nil
}

// FromHSB builds a new Color by applying an HSB triple to black.
func FromHSB(h, s, b float64) (Color, error) {
	var c Color
	if err := c.SetHSB(h, s, b); err != nil {
		return Color{}, err
	}
	return c, nil
}

// Pastelize forces saturation to 0.5 and brightness to 1 while keeping the hue.
func (c *Color) Pastelize() *Color {
	h, _, _ := c.HSB()
	// Saturation 0.5 at full brightness always lands in [128, 255].
	_ = c.SetHSB(h, 0.5, 1)
	return c
}

// Pastelized returns a pastel copy of c.
func (c Color) Pastelized() Color {
	return *c.Pastelize()
}

// MoveTowards linearly interpolates each channel toward other by t, where 0
// keeps the color and 1 becomes other. t is clamped to [0, 1].
func (c *Color) MoveTowards(other Color, t float64) *Color {
	t = clamp01(t)
	lerp := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	c.R, c.G, c.B = lerp(c.R, other.R), lerp(c.G, other.G), lerp(c.B, other.B)
	return c
}

// Towards returns a copy of c interpolated toward other by t.
func (c Color) Towards(other Color, t float64) Color {
	return *c.MoveTowards(other, t)
}

// TowardsRGB is Towards for a raw channel triple.
func (c Color) TowardsRGB(rgb [3]int, t float64) (Color, error) {
	other, err := FromRGB(rgb)
	if err != nil {
		return Color{}, err
	}
	return c.Towards(other, t), nil
}

// SetSaturation replaces the saturation, keeping hue and brightness.
func (c *Color) SetSaturation(s float64) error {
	h, _, b := c.HSB()
	return c.SetHSB(h, s, b)
}

// SetBrightness replaces the brightness, keeping hue and saturation.
func (c *Color) SetBrightness(b float64) error {
	h, s, _ := c.HSB()
	return c.SetHSB(h, s, b)
}

// WithSaturation returns a copy of c with saturation s.
func (c Color) WithSaturation(s float64) (Color, error) {
	if err := c.SetSaturation(s); err != nil {
		return Color{}, err
	}
	return c, nil
}

// WithBrightness returns a copy of c with brightness b.
func (c Color) WithBrightness(b float64) (Color, error) {
	if err := c.SetBrightness(b); err != nil {
		return Color{}, err
	}
	return c, nil
}

// RotateHue returns a copy of c with its hue rotated by deg degrees.
func (c Color) RotateHue(deg float64) Color {
	h, s, b := c.HSB()
	// s and b come from a valid color, so the result is always in range.
	_ = c.SetHSB(h+deg, s, b)
	return c
}

// clamp01 clamps a value to the [0, 1] range. NaN clamps to 0.
func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
