package config

import (
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/jsvensson/wordhue/internal/color"
	"github.com/jsvensson/wordhue/internal/mapping"
	"github.com/jsvensson/wordhue/internal/palette"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

func buildEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"env":        makeEnvFunc(),
			"word_color": makeWordColorFunc(),
			"brighten":   makeBrightenFunc(),
			"pastel":     makePastelFunc(),
			"palette":    makePaletteFunc(),
			"lower":      stdlib.LowerFunc,
			"upper":      stdlib.UpperFunc,
			"split":      stdlib.SplitFunc,
			"join":       stdlib.JoinFunc,
			"concat":     stdlib.ConcatFunc,
			"distinct":   stdlib.DistinctFunc,
			"sort":       stdlib.SortFunc,
		},
	}
}

// makeEnvFunc creates an HCL function that reads an environment variable.
// Usage: env("PORT", "8080")
func makeEnvFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Returns the named environment variable, or the fallback when unset",
		Params: []function.Parameter{
			{Name: "name", Type: cty.String},
			{Name: "fallback", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			if v, ok := os.LookupEnv(args[0].AsString()); ok {
				return cty.StringVal(v), nil
			}
			return args[1], nil
		},
	})
}

// makeWordColorFunc creates an HCL function that maps text to its hex color.
// Usage: word_color("wordhue")
func makeWordColorFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Returns the hex color derived from the given text",
		Params: []function.Parameter{
			{Name: "text", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			return cty.StringVal(mapping.FromString(args[0].AsString()).Hex()), nil
		},
	})
}

// makeBrightenFunc creates an HCL function that brightens a color.
// Usage: brighten("#hex", 0.1) or brighten(word_color("sky"), 0.2)
func makeBrightenFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Brightens a color by the given percentage (-1.0 to 1.0)",
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
			{Name: "percentage", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := color.ParseHex(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			pct, _ := args[1].AsBigFloat().Float64()
			return cty.StringVal(color.Brighten(c, pct).Hex()), nil
		},
	})
}

// makePastelFunc creates an HCL function returning the pastel variant of a color.
// Usage: pastel("#626179")
func makePastelFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Returns the pastel variant of a color",
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := color.ParseHex(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			return cty.StringVal(c.Pastelized().Hex()), nil
		},
	})
}

// makePaletteFunc creates an HCL function deriving a named palette from a color.
// Usage: palette("triad", word_color("sky"))[1]
func makePaletteFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Returns the hex codes of a palette derived from a color",
		Params: []function.Parameter{
			{Name: "scheme", Type: cty.String},
			{Name: "color", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.List(cty.String)),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			derive, err := palette.ByName(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			c, err := color.ParseHex(args[1].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			return stringList(palette.Hexes(derive(c))), nil
		},
	})
}
