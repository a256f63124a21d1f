// Package palette derives related colors from a root color. Every function
// returns fresh colors with the root first and never modifies its input.
package palette

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jsvensson/wordhue/internal/color"
)

// Triad permutes the root's channels cyclically: (r,g,b), (b,r,g), (g,b,r).
func Triad(c color.Color) []color.Color {
	return []color.Color{
		c,
		{R: c.B, G: c.R, B: c.G},
		{R: c.G, G: c.B, B: c.R},
	}
}

// Shifted returns c followed by count colors whose hue is rotated by shift,
// 2*shift, ... degrees. Saturation and brightness stay at the root's values.
func Shifted(c color.Color, count int, shift float64) []color.Color {
	if count < 0 {
		count = 0
	}
	out := make([]color.Color, 0, count+1)
	out = append(out, c)
	for i := 1; i <= count; i++ {
		out = append(out, c.RotateHue(shift*float64(i)))
	}
	return out
}

// Tetrad is Shifted(c, 3, 61).
func Tetrad(c color.Color) []color.Color {
	return Shifted(c, 3, 61)
}

// Analogous is Shifted(c, 3, 20).
func Analogous(c color.Color) []color.Color {
	return Shifted(c, 3, 20)
}

// Tree expands every color with Shifted and flattens the results, keeping
// input order and then per-color expansion order.
func Tree(colors []color.Color, count int, shift float64) []color.Color {
	out := make([]color.Color, 0, len(colors)*(count+1))
	for _, c := range colors {
		out = append(out, Shifted(c, count, shift)...)
	}
	return out
}

// Default expansion used by TriadTree and TetradTree.
const (
	DefaultTreeCount = 3
	DefaultTreeShift = 10
)

// TriadTree expands each triad member with Tree.
func TriadTree(c color.Color, count int, shift float64) []color.Color {
	return Tree(Triad(c), count, shift)
}

// TetradTree expands each tetrad member with Tree.
func TetradTree(c color.Color, count int, shift float64) []color.Color {
	return Tree(Tetrad(c), count, shift)
}

// Scheme derives a palette from a root color.
type Scheme func(color.Color) []color.Color

var schemes = map[string]Scheme{
	"triad":     Triad,
	"tetrad":    Tetrad,
	"analogous": Analogous,
	"triad-tree": func(c color.Color) []color.Color {
		return TriadTree(c, DefaultTreeCount, DefaultTreeShift)
	},
	"tetrad-tree": func(c color.Color) []color.Color {
		return TetradTree(c, DefaultTreeCount, DefaultTreeShift)
	},
}

// ErrUnknownScheme is returned by ByName for names it does not know.
var ErrUnknownScheme = errors.New("unknown palette")

// ByName looks up a scheme by name.
func ByName(name string) (Scheme, error) {
	s, ok := schemes[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (valid: %v)", ErrUnknownScheme, name, Names())
	}
	return s, nil
}

// Names lists the scheme names accepted by ByName.
func Names() []string {
	names := make([]string, 0, len(schemes))
	for name := range schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Hexes renders each color's hex code.
func Hexes(colors []color.Color) []string {
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = c.Hex()
	}
	return out
}
