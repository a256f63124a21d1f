package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/wordhue/internal/color"
	"github.com/jsvensson/wordhue/internal/icon"
	"github.com/jsvensson/wordhue/internal/mapping"
)

// Config is the fully-resolved service configuration.
type Config struct {
	Server Server
	Words  Words
	Color  ColorSettings
	Icon   IconSettings
}

// Server holds HTTP listener settings.
type Server struct {
	Port           int
	StaticDir      string
	AllowedOrigins []string
}

// Words holds tokenizer settings.
type Words struct {
	Blacklist []string
}

// ColorSettings holds word aggregation defaults.
type ColorSettings struct {
	Lerp      float64
	Transform string
	Brighten  float64
	Sampling  string
}

// IconSettings holds bit icon defaults.
type IconSettings struct {
	BitSize    int
	On         color.Color
	Off        color.Color
	Background color.Color
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: Server{
			Port:           8080,
			StaticDir:      "static",
			AllowedOrigins: []string{"*"},
		},
		Words: Words{
			Blacklist: []string{"a", "an", "and", "of", "the"},
		},
		Color: ColorSettings{
			Lerp:      0.4,
			Transform: "pastel",
			Brighten:  0.1,
			Sampling:  "spread",
		},
		Icon: IconSettings{
			BitSize:    8,
			On:         color.Color{},
			Off:        color.Color{R: 255, G: 255, B: 255},
			Background: color.Color{R: 128, G: 128, B: 128},
		},
	}
}

// fileConfig mirrors the HCL layout. Pointer fields stay nil when the
// attribute or block is absent so defaults survive.
type fileConfig struct {
	Server *serverBlock `hcl:"server,block"`
	Words  *wordsBlock  `hcl:"words,block"`
	Color  *colorBlock  `hcl:"color,block"`
	Icon   *iconBlock   `hcl:"icon,block"`
}

type serverBlock struct {
	Port           *int      `hcl:"port,optional"`
	StaticDir      *string   `hcl:"static_dir,optional"`
	AllowedOrigins *[]string `hcl:"allowed_origins,optional"`
}

type wordsBlock struct {
	Blacklist *[]string `hcl:"blacklist,optional"`
}

type colorBlock struct {
	Lerp      *float64 `hcl:"lerp,optional"`
	Transform *string  `hcl:"transform,optional"`
	Brighten  *float64 `hcl:"brighten,optional"`
	Sampling  *string  `hcl:"sampling,optional"`
}

type iconBlock struct {
	BitSize    *int    `hcl:"bit_size,optional"`
	On         *string `hcl:"on,optional"`
	Off        *string `hcl:"off,optional"`
	Background *string `hcl:"background,optional"`
}

// Load reads and parses an HCL config file.
func Load(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(src, path)
}

// Parse decodes HCL source on top of Default and validates the result.
func Parse(src []byte, filename string) (*Config, error) {
	raw, diags := decode(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decoding config: %s", diags.Error())
	}

	cfg := Default()
	if err := raw.apply(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Check reports every problem in src as HCL diagnostics without building a
// Config. Range and enumeration errors have no source position and are
// reported against the whole file.
func Check(src []byte, filename string) hcl.Diagnostics {
	raw, diags := decode(src, filename)
	if diags.HasErrors() {
		return diags
	}

	cfg := Default()
	err := raw.apply(cfg)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid configuration",
			Detail:   err.Error(),
		})
	}
	return diags
}

func decode(src []byte, filename string) (*fileConfig, hcl.Diagnostics) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, diags
	}

	var raw fileConfig
	diags = append(diags, gohcl.DecodeBody(file.Body, buildEvalContext(), &raw)...)
	return &raw, diags
}

func (f *fileConfig) apply(cfg *Config) error {
	if s := f.Server; s != nil {
		setIf(&cfg.Server.Port, s.Port)
		setIf(&cfg.Server.StaticDir, s.StaticDir)
		setIf(&cfg.Server.AllowedOrigins, s.AllowedOrigins)
	}
	if w := f.Words; w != nil {
		setIf(&cfg.Words.Blacklist, w.Blacklist)
	}
	if c := f.Color; c != nil {
		setIf(&cfg.Color.Lerp, c.Lerp)
		setIf(&cfg.Color.Transform, c.Transform)
		setIf(&cfg.Color.Brighten, c.Brighten)
		setIf(&cfg.Color.Sampling, c.Sampling)
	}
	if i := f.Icon; i != nil {
		setIf(&cfg.Icon.BitSize, i.BitSize)
		for name, pair := range map[string]struct {
			src *string
			dst *color.Color
		}{
			"on":         {i.On, &cfg.Icon.On},
			"off":        {i.Off, &cfg.Icon.Off},
			"background": {i.Background, &cfg.Icon.Background},
		} {
			if pair.src == nil {
				continue
			}
			c, err := color.ParseHex(*pair.src)
			if err != nil {
				return fmt.Errorf("icon.%s: %w", name, err)
			}
			*pair.dst = c
		}
	}
	return nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range 1-65535", c.Server.Port)
	}
	if c.Color.Lerp <= 0 || c.Color.Lerp > 1 {
		return fmt.Errorf("color.lerp %v out of range (0, 1]", c.Color.Lerp)
	}
	if _, err := mapping.TransformByName(c.Color.Transform, c.Color.Brighten); err != nil {
		return fmt.Errorf("color.transform: %w", err)
	}
	if _, err := mapping.SamplerByName(c.Color.Sampling); err != nil {
		return fmt.Errorf("color.sampling: %w", err)
	}
	if c.Icon.BitSize < 1 || c.Icon.BitSize > icon.MaxSize {
		return fmt.Errorf("icon.bit_size %d out of range 1-%d", c.Icon.BitSize, icon.MaxSize)
	}
	return nil
}

// Options returns the aggregation options described by the color block.
func (c *Config) Options() (mapping.Options, error) {
	transform, err := mapping.TransformByName(c.Color.Transform, c.Color.Brighten)
	if err != nil {
		return mapping.Options{}, err
	}
	sampler, err := mapping.SamplerByName(c.Color.Sampling)
	if err != nil {
		return mapping.Options{}, err
	}
	return mapping.Options{
		LerpT:     c.Color.Lerp,
		Transform: transform,
		Sampler:   sampler,
	}, nil
}

// IconOptions returns icon rendering options for the icon block. The caller
// may still override On with the word color.
func (c *Config) IconOptions() icon.Options {
	on, off, bg := c.Icon.On, c.Icon.Off, c.Icon.Background
	return icon.Options{
		BitSize:    c.Icon.BitSize,
		On:         &on,
		Off:        &off,
		Background: &bg,
	}
}
