package color

import (
	"errors"
	"math"
	"testing"
)

func TestHSB(t *testing.T) {
	tests := []struct {
		name    string
		color   Color
		h, s, b float64
	}{
		{"red", Color{255, 0, 0}, 0, 1, 1},
		{"green", Color{0, 255, 0}, 120, 1, 1},
		{"blue", Color{0, 0, 255}, 240, 1, 1},
		{"magenta", Color{255, 0, 255}, 300, 1, 1},
		{"black", Color{0, 0, 0}, 0, 0, 0},
		{"white", Color{255, 255, 255}, 0, 0, 1},
		{"gray", Color{128, 128, 128}, 0, 0, 128.0 / 255.0},
		{"negative branch wraps", Color{255, 0, 100}, 360 - 100.0/255.0*60, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, b := tt.color.HSB()
			if math.Abs(h-tt.h) > 1e-9 || math.Abs(s-tt.s) > 1e-9 || math.Abs(b-tt.b) > 1e-9 {
				t.Errorf("%v.HSB() = (%v, %v, %v), want (%v, %v, %v)", tt.color, h, s, b, tt.h, tt.s, tt.b)
			}
		})
	}
}

func TestFromHSB(t *testing.T) {
	tests := []struct {
		name    string
		h, s, b float64
		want    Color
	}{
		{"red", 0, 1, 1, Color{255, 0, 0}},
		{"green", 120, 1, 1, Color{0, 255, 0}},
		{"blue", 240, 1, 1, Color{0, 0, 255}},
		{"olive rounds", 60, 0.5, 0.5, Color{128, 128, 64}},
		{"hue 360 is red", 360, 1, 1, Color{255, 0, 0}},
		{"negative hue", -120, 1, 1, Color{0, 0, 255}},
		{"black", 200, 1, 0, Color{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromHSB(tt.h, tt.s, tt.b)
			if err != nil {
				t.Fatalf("FromHSB(%v, %v, %v) error: %v", tt.h, tt.s, tt.b, err)
			}
			if got != tt.want {
				t.Errorf("FromHSB(%v, %v, %v) = %v, want %v", tt.h, tt.s, tt.b, got, tt.want)
			}
		})
	}
}

func TestSetHSBInvalid(t *testing.T) {
	tests := []struct {
		name    string
		h, s, b float64
	}{
		{"brightness above one", 0, 0, 2},
		{"negative brightness", 0, 0, -0.5},
		{"saturation above one", 0, 2, 1},
		{"nan hue", math.NaN(), 1, 1},
		{"infinite hue", math.Inf(1), 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Color{10, 20, 30}
			err := c.SetHSB(tt.h, tt.s, tt.b)
			var chErr *InvalidChannelError
			if !errors.As(err, &chErr) {
				t.Fatalf("SetHSB(%v, %v, %v) error = %v, want *InvalidChannelError", tt.h, tt.s, tt.b, err)
			}
			if c != (Color{10, 20, 30}) {
				t.Errorf("color mutated on error: %v", c)
			}
		})
	}
}

func TestHSBRoundTrip(t *testing.T) {
	colors := []Color{
		{255, 0, 100},
		{98, 97, 122},
		{12, 200, 77},
		{1, 2, 3},
		{250, 250, 249},
	}
	for _, c := range colors {
		h, s, b := c.HSB()
		got, err := FromHSB(h, s, b)
		if err != nil {
			t.Fatalf("FromHSB(%v.HSB()) error: %v", c, err)
		}
		if got != c {
			t.Errorf("FromHSB(%v.HSB()) = %v, want %v", c, got, c)
		}
	}
}

func TestPastelize(t *testing.T) {
	tests := []struct {
		color Color
		want  Color
	}{
		{Color{255, 0, 0}, Color{255, 128, 128}},
		{Color{98, 97, 122}, Color{133, 128, 255}},
		{Color{0, 0, 0}, Color{255, 128, 128}},
	}

	for _, tt := range tests {
		c := tt.color
		got := c.Pastelize()
		if got != &c {
			t.Errorf("Pastelize() returned a different pointer")
		}
		if c != tt.want {
			t.Errorf("%v.Pastelize() = %v, want %v", tt.color, c, tt.want)
		}
	}
}

func TestPastelizedDoesNotMutate(t *testing.T) {
	c := Color{98, 97, 122}
	p := c.Pastelized()
	if c != (Color{98, 97, 122}) {
		t.Errorf("Pastelized mutated receiver: %v", c)
	}
	if p != (Color{133, 128, 255}) {
		t.Errorf("Pastelized() = %v, want %v", p, Color{133, 128, 255})
	}
}

func TestMoveTowards(t *testing.T) {
	tests := []struct {
		name string
		from Color
		to   Color
		t    float64
		want Color
	}{
		{"stay", Color{10, 20, 30}, Color{200, 200, 200}, 0, Color{10, 20, 30}},
		{"become", Color{10, 20, 30}, Color{200, 200, 200}, 1, Color{200, 200, 200}},
		{"half rounds up", Color{0, 0, 0}, Color{255, 255, 255}, 0.5, Color{128, 128, 128}},
		{"point four", Color{10, 20, 30}, Color{20, 40, 60}, 0.4, Color{14, 28, 42}},
		{"downward", Color{200, 100, 50}, Color{0, 0, 0}, 0.5, Color{100, 50, 25}},
		{"clamped above", Color{10, 20, 30}, Color{20, 40, 60}, 3, Color{20, 40, 60}},
		{"clamped below", Color{10, 20, 30}, Color{20, 40, 60}, -1, Color{10, 20, 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.from
			c.MoveTowards(tt.to, tt.t)
			if c != tt.want {
				t.Errorf("MoveTowards(%v, %v) = %v, want %v", tt.to, tt.t, c, tt.want)
			}
			if got := tt.from.Towards(tt.to, tt.t); got != tt.want {
				t.Errorf("Towards(%v, %v) = %v, want %v", tt.to, tt.t, got, tt.want)
			}
		})
	}
}

func TestTowardsRGB(t *testing.T) {
	c := Color{0, 0, 0}
	got, err := c.TowardsRGB([3]int{255, 255, 255}, 0.5)
	if err != nil {
		t.Fatalf("TowardsRGB error: %v", err)
	}
	if got != (Color{128, 128, 128}) {
		t.Errorf("TowardsRGB = %v, want %v", got, Color{128, 128, 128})
	}

	if _, err := c.TowardsRGB([3]int{0, 256, 0}, 0.5); err == nil {
		t.Error("TowardsRGB with green=256: expected error")
	}
}

func TestWithSaturationAndBrightness(t *testing.T) {
	red := Color{255, 0, 0}

	got, err := red.WithSaturation(0)
	if err != nil {
		t.Fatalf("WithSaturation error: %v", err)
	}
	if got != (Color{255, 255, 255}) {
		t.Errorf("WithSaturation(0) = %v, want white", got)
	}

	got, err = red.WithBrightness(0.5)
	if err != nil {
		t.Fatalf("WithBrightness error: %v", err)
	}
	if got != (Color{128, 0, 0}) {
		t.Errorf("WithBrightness(0.5) = %v, want %v", got, Color{128, 0, 0})
	}

	if red != (Color{255, 0, 0}) {
		t.Errorf("receiver mutated: %v", red)
	}

	c := red
	if err := c.SetBrightness(1.5); err == nil {
		t.Error("SetBrightness(1.5): expected error")
	}
	if err := c.SetSaturation(0.5); err != nil {
		t.Fatalf("SetSaturation error: %v", err)
	}
	if c != (Color{255, 128, 128}) {
		t.Errorf("SetSaturation(0.5) = %v, want %v", c, Color{255, 128, 128})
	}
}

func TestRotateHueWraparound(t *testing.T) {
	colors := []Color{{12, 200, 77}, {255, 0, 100}, {98, 97, 122}}
	for _, c := range colors {
		for _, turns := range []float64{-2, -1, 1, 3} {
			if got := c.RotateHue(360 * turns); got != c {
				t.Errorf("%v.RotateHue(%v) = %v, want %v", c, 360*turns, got, c)
			}
		}
	}

	h, _, _ := Color{255, 0, 100}.HSB()
	for _, turns := range []float64{1, 2, 5, -3} {
		if got := NormalizeHue(h + 360*turns); math.Abs(got-h) > 1e-9 {
			t.Errorf("NormalizeHue(%v) = %v, want %v", h+360*turns, got, h)
		}
	}
}

func TestNormalizeHue(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{397, 37},
		{-23, 337},
		{-720, 0},
	}
	for _, tt := range tests {
		if got := NormalizeHue(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeHue(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
