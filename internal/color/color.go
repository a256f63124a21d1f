package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color represents an RGB color. The R, G, B uint8 fields are the source of truth;
// HSB and all output formats are derived from them on demand.
type Color struct {
	R, G, B uint8
}

// InvalidChannelError reports a channel value that falls outside [0, 255]
// or is not a number.
type InvalidChannelError struct {
	Channel string
	Value   float64
}

func (e *InvalidChannelError) Error() string {
	return fmt.Sprintf("invalid %s channel %v: must be an integer in [0, 255]", e.Channel, e.Value)
}

// MalformedHexError reports a hex code that is not exactly six hex digits.
type MalformedHexError struct {
	Input string
}

func (e *MalformedHexError) Error() string {
	return fmt.Sprintf("invalid hex color %q: must be 6 hex digits", e.Input)
}

// New builds a Color from three integer channels.
func New(r, g, b int) (Color, error) {
	return FromRGB([3]int{r, g, b})
}

// FromRGB builds a Color from an r, g, b triple.
func FromRGB(rgb [3]int) (Color, error) {
	var c Color
	if err := c.SetRGB(rgb); err != nil {
		return Color{}, err
	}
	return c, nil
}

// SetRGB overwrites all three channels. The color is left untouched when any
// channel is out of range.
func (c *Color) SetRGB(rgb [3]int) error {
	var out [3]uint8
	for i, v := range rgb {
		ch, err := channel(channelNames[i], float64(v))
		if err != nil {
			return err
		}
		out[i] = ch
	}
	c.R, c.G, c.B = out[0], out[1], out[2]
	return nil
}

var channelNames = [3]string{"red", "green", "blue"}

// channel converts an already-rounded value to a uint8 channel.
func channel(name string, v float64) (uint8, error) {
	if math.IsNaN(v) || v < 0 || v > 255 || v != math.Trunc(v) {
		return 0, &InvalidChannelError{Channel: name, Value: v}
	}
	return uint8(v), nil
}

// ParseHex parses a hex color string like "#eb6f92" into a Color.
// The leading # is optional.
func ParseHex(s string) (Color, error) {
	bare := strings.TrimPrefix(s, "#")
	if len(bare) != 6 {
		return Color{}, &MalformedHexError{Input: s}
	}
	v, err := strconv.ParseUint(bare, 16, 32)
	if err != nil {
		return Color{}, &MalformedHexError{Input: s}
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex returns the color as a lowercase hex string with leading #, e.g. "#eb6f92".
func (c Color) Hex() string {
	return "#" + c.HexBare()
}

// HexBare returns the color as a hex string without leading #, e.g. "eb6f92".
func (c Color) HexBare() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// RGB returns the color as an rgb() string, e.g. "rgb(235, 111, 146)".
func (c Color) RGB() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// RGBArray returns the channels in r, g, b order.
func (c Color) RGBArray() [3]int {
	return [3]int{int(c.R), int(c.G), int(c.B)}
}

// EqualsRGB reports exact channel equality with rgb.
func (c Color) EqualsRGB(rgb [3]int) bool {
	return c.RGBArray() == rgb
}

func (c Color) String() string {
	return c.Hex()
}
