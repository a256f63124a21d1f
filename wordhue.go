// Package wordhue derives colors and palettes from text.
package wordhue

import (
	"fmt"

	"github.com/jsvensson/wordhue/internal/color"
	"github.com/jsvensson/wordhue/internal/config"
	"github.com/jsvensson/wordhue/internal/mapping"
	"github.com/jsvensson/wordhue/internal/palette"
	"github.com/jsvensson/wordhue/internal/words"
)

// Result is the response shape for one evaluated text.
type Result struct {
	Color     string `json:"color"`
	Pastel    string `json:"pastel"`
	Evaluated string `json:"evaluated"`
}

// PaletteResult is a derived palette for one evaluated text.
type PaletteResult struct {
	Evaluated string   `json:"evaluated"`
	Scheme    string   `json:"scheme"`
	Colors    []string `json:"colors"`
}

// Generator maps text to colors using a fixed tokenizer and aggregation options.
// It holds no mutable state and is safe for concurrent use.
type Generator struct {
	Tokenizer *words.Tokenizer
	Options   mapping.Options
}

// New builds a Generator from a resolved config.
func New(cfg *config.Config) (*Generator, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, fmt.Errorf("building options: %w", err)
	}
	return &Generator{
		Tokenizer: words.NewTokenizer(cfg.Words.Blacklist),
		Options:   opts,
	}, nil
}

// Load reads an HCL config file and returns a Generator for it.
func Load(path string) (*Generator, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return New(cfg)
}

// Color aggregates the words of text with the configured options.
func (g *Generator) Color(text string, sort bool) (color.Color, error) {
	opts := g.Options
	opts.Sort = sort
	return mapping.FromText(text, g.Tokenizer, opts)
}

// Evaluate returns the color of text and its pastel variant.
func (g *Generator) Evaluate(text string, sort bool) (Result, error) {
	c, err := g.Color(text, sort)
	if err != nil {
		return Result{}, err
	}
	return newResult(text, c), nil
}

// Debug evaluates text with default aggregation: lerp 0.5, no transform,
// spread sampling. Only the blacklist is applied.
func (g *Generator) Debug(text string) (Result, error) {
	c, err := mapping.FromText(text, g.Tokenizer, mapping.Options{})
	if err != nil {
		return Result{}, err
	}
	return newResult(text, c), nil
}

// Palette derives the named scheme from the color of text.
func (g *Generator) Palette(text, scheme string, sort bool) (PaletteResult, error) {
	derive, err := palette.ByName(scheme)
	if err != nil {
		return PaletteResult{}, err
	}
	c, err := g.Color(text, sort)
	if err != nil {
		return PaletteResult{}, err
	}
	return PaletteResult{
		Evaluated: text,
		Scheme:    scheme,
		Colors:    palette.Hexes(derive(c)),
	}, nil
}

func newResult(text string, c color.Color) Result {
	return Result{
		Color:     c.Hex(),
		Pastel:    c.Pastelized().Hex(),
		Evaluated: text,
	}
}
