// Package engine renders Go templates against the colors of a sentence, so a
// word-derived palette can be exported into any text format.
package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/jsvensson/wordhue"
	"github.com/jsvensson/wordhue/internal/color"
	"github.com/jsvensson/wordhue/internal/mapping"
	"github.com/jsvensson/wordhue/internal/palette"
)

// Engine loads and executes Go templates against resolved sentence Data.
type Engine struct {
	TemplatesDir string
	OutputDir    string
	Apps         []string // if non-empty, only render these template basenames
}

// WordColor is the raw color of one word, before aggregation.
type WordColor struct {
	Word  string
	Color color.Color
}

// Data is the value templates execute against.
type Data struct {
	Text     string
	Color    color.Color
	Pastel   color.Color
	Words    []WordColor
	Palettes map[string][]color.Color
}

// NewData evaluates text with gen and derives every named palette from the
// resulting color.
func NewData(gen *wordhue.Generator, text string, sort bool) (*Data, error) {
	c, err := gen.Color(text, sort)
	if err != nil {
		return nil, err
	}

	data := &Data{
		Text:     text,
		Color:    c,
		Pastel:   c.Pastelized(),
		Palettes: make(map[string][]color.Color),
	}
	for _, w := range gen.Tokenizer.Words(text, sort) {
		data.Words = append(data.Words, WordColor{Word: w, Color: mapping.FromStringWith(w, gen.Options.Sampler)})
	}
	for _, name := range palette.Names() {
		derive, _ := palette.ByName(name)
		data.Palettes[name] = derive(c)
	}
	return data, nil
}

// Run loads all .tmpl files from the templates directory, executes them
// with data, and writes output files named after the template minus .tmpl.
func (e *Engine) Run(data *Data) error {
	pattern := filepath.Join(e.TemplatesDir, "*.tmpl")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("globbing templates: %w", err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("no .tmpl files found in %s", e.TemplatesDir)
	}

	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	funcs := funcMap(data)
	for _, tmplPath := range matches {
		baseName := strings.TrimSuffix(filepath.Base(tmplPath), ".tmpl")

		if !e.shouldRender(baseName) {
			continue
		}

		if err := e.renderTemplate(tmplPath, baseName, data, funcs); err != nil {
			return err
		}
	}

	return nil
}

func (e *Engine) shouldRender(name string) bool {
	// If no apps are specified, render all.
	if len(e.Apps) == 0 {
		return true
	}

	return slices.Contains(e.Apps, name)
}

func (e *Engine) renderTemplate(tmplPath, outputName string, data *Data, funcs template.FuncMap) error {
	tmpl, err := template.New(filepath.Base(tmplPath)).Funcs(funcs).ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", tmplPath, err)
	}

	outPath := filepath.Join(e.OutputDir, outputName)
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", outPath, err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("executing template %s: %w", tmplPath, err)
	}

	return nil
}

// funcMap builds template helpers. Color arguments come last so helpers chain
// in pipelines: {{ .Color | brighten 0.1 | hex }}.
func funcMap(data *Data) template.FuncMap {
	return template.FuncMap{
		"hex": func(c color.Color) string {
			return c.Hex()
		},
		"hexBare": func(c color.Color) string {
			return c.HexBare()
		},
		"rgb": func(c color.Color) string {
			return c.RGB()
		},
		"pastel": func(c color.Color) color.Color {
			return c.Pastelized()
		},
		"brighten": func(pct float64, c color.Color) color.Color {
			return color.Brighten(c, pct)
		},
		"darken": func(pct float64, c color.Color) color.Color {
			return color.Brighten(c, -pct)
		},
		"rotate": func(deg float64, c color.Color) color.Color {
			return c.RotateHue(deg)
		},
		"palette": func(name string) ([]color.Color, error) {
			colors, ok := data.Palettes[name]
			if !ok {
				return nil, fmt.Errorf("unknown palette %q (valid: %v)", name, palette.Names())
			}
			return colors, nil
		},
	}
}
