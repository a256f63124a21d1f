package palette

import (
	"errors"
	"slices"
	"testing"

	"github.com/jsvensson/wordhue/internal/color"
)

func contains(colors []color.Color, rgb [3]int) bool {
	return slices.ContainsFunc(colors, func(c color.Color) bool {
		return c.EqualsRGB(rgb)
	})
}

func TestTriad(t *testing.T) {
	root := color.Color{R: 255, B: 255}
	triad := Triad(root)

	if len(triad) != 3 {
		t.Fatalf("len(Triad) = %d, want 3", len(triad))
	}
	for _, rgb := range [][3]int{{255, 0, 255}, {255, 255, 0}, {0, 255, 255}} {
		if !contains(triad, rgb) {
			t.Errorf("Triad(%v) = %v, missing %v", root, triad, rgb)
		}
	}
	if triad[0] != root {
		t.Errorf("Triad[0] = %v, want root %v", triad[0], root)
	}
}

func TestTriadPermutationOrder(t *testing.T) {
	got := Hexes(Triad(color.Color{R: 1, G: 2, B: 3}))
	want := []string{"#010203", "#030102", "#020301"}
	if !slices.Equal(got, want) {
		t.Errorf("Triad = %v, want %v", got, want)
	}
}

func TestTetrad(t *testing.T) {
	// Root plus three 61 degree hue steps. Sample tetrads that list other
	// values for this root cannot come from that rotation, so do not
	// "correct" these expectations toward them.
	got := Hexes(Tetrad(color.Color{R: 255, B: 100}))
	want := []string{"#ff0064", "#ff9f00", "#5bff00", "#00ffa8"}
	if !slices.Equal(got, want) {
		t.Errorf("Tetrad = %v, want %v", got, want)
	}
}

func TestAnalogous(t *testing.T) {
	got := Hexes(Analogous(color.Color{R: 255, B: 100}))
	want := []string{"#ff0064", "#ff000f", "#ff4600", "#ff9b00"}
	if !slices.Equal(got, want) {
		t.Errorf("Analogous = %v, want %v", got, want)
	}
}

func TestShifted(t *testing.T) {
	root := color.Color{R: 255, B: 100}

	t.Run("full turn repeats", func(t *testing.T) {
		got := Hexes(Shifted(root, 5, 120))
		want := []string{"#ff0064", "#64ff00", "#0064ff", "#ff0064", "#64ff00", "#0064ff"}
		if !slices.Equal(got, want) {
			t.Errorf("Shifted(120) = %v, want %v", got, want)
		}
	})

	t.Run("zero count is root only", func(t *testing.T) {
		got := Shifted(root, 0, 30)
		if len(got) != 1 || got[0] != root {
			t.Errorf("Shifted(0) = %v, want [%v]", got, root)
		}
	})

	t.Run("negative count is root only", func(t *testing.T) {
		if got := Shifted(root, -2, 30); len(got) != 1 {
			t.Errorf("Shifted(-2) len = %d, want 1", len(got))
		}
	})

	t.Run("gray has no hue to rotate", func(t *testing.T) {
		gray := color.Color{R: 128, G: 128, B: 128}
		for _, c := range Shifted(gray, 3, 61) {
			if c != gray {
				t.Errorf("Shifted(gray) member = %v, want %v", c, gray)
			}
		}
	})
}

func TestTree(t *testing.T) {
	root := color.Color{R: 255, B: 100}

	got := Hexes(TriadTree(root, DefaultTreeCount, DefaultTreeShift))
	want := []string{
		"#ff0064", "#ff0039", "#ff000f", "#ff1c00",
		"#64ff00", "#3aff00", "#0fff00", "#00ff1c",
		"#0064ff", "#003aff", "#000fff", "#1b00ff",
	}
	if !slices.Equal(got, want) {
		t.Errorf("TriadTree = %v, want %v", got, want)
	}

	tetra := TetradTree(root, 2, 10)
	if len(tetra) != 12 {
		t.Fatalf("len(TetradTree(2)) = %d, want 12", len(tetra))
	}
	if tetra[3].Hex() != "#ff9f00" || tetra[5].Hex() != "#fff400" {
		t.Errorf("TetradTree second group = %v", Hexes(tetra[3:6]))
	}

	if got := Tree(nil, 3, 10); len(got) != 0 {
		t.Errorf("Tree(nil) = %v, want empty", got)
	}
}

func TestPaletteDoesNotMutateInput(t *testing.T) {
	root := color.Color{R: 12, G: 200, B: 77}
	input := []color.Color{root}
	_ = Tree(input, 3, 10)
	_ = Tetrad(root)
	_ = Triad(root)
	if input[0] != root {
		t.Errorf("input mutated: %v", input[0])
	}
}

func TestByName(t *testing.T) {
	root := color.Color{R: 255, B: 100}
	tests := []struct {
		name string
		size int
	}{
		{"triad", 3},
		{"tetrad", 4},
		{"analogous", 4},
		{"triad-tree", 12},
		{"tetrad-tree", 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scheme, err := ByName(tt.name)
			if err != nil {
				t.Fatalf("ByName(%q) error: %v", tt.name, err)
			}
			got := scheme(root)
			if len(got) != tt.size {
				t.Errorf("len(%s) = %d, want %d", tt.name, len(got), tt.size)
			}
			if got[0] != root {
				t.Errorf("%s[0] = %v, want root", tt.name, got[0])
			}
		})
	}

	if _, err := ByName("hexad"); !errors.Is(err, ErrUnknownScheme) {
		t.Errorf(`ByName("hexad") error = %v, want ErrUnknownScheme`, err)
	}
	if got := len(Names()); got != len(tests) {
		t.Errorf("len(Names()) = %d, want %d", got, len(tests))
	}
}
