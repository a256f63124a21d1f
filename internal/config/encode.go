package config

import (
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// Encode renders cfg as canonical HCL that Parse reads back unchanged.
func Encode(cfg *Config) []byte {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	server := root.AppendNewBlock("server", nil).Body()
	server.SetAttributeValue("port", cty.NumberIntVal(int64(cfg.Server.Port)))
	server.SetAttributeValue("static_dir", cty.StringVal(cfg.Server.StaticDir))
	server.SetAttributeValue("allowed_origins", stringList(cfg.Server.AllowedOrigins))
	root.AppendNewline()

	words := root.AppendNewBlock("words", nil).Body()
	words.SetAttributeValue("blacklist", stringList(cfg.Words.Blacklist))
	root.AppendNewline()

	col := root.AppendNewBlock("color", nil).Body()
	col.SetAttributeValue("lerp", cty.NumberFloatVal(cfg.Color.Lerp))
	col.SetAttributeValue("transform", cty.StringVal(cfg.Color.Transform))
	col.SetAttributeValue("brighten", cty.NumberFloatVal(cfg.Color.Brighten))
	col.SetAttributeValue("sampling", cty.StringVal(cfg.Color.Sampling))
	root.AppendNewline()

	icon := root.AppendNewBlock("icon", nil).Body()
	icon.SetAttributeValue("bit_size", cty.NumberIntVal(int64(cfg.Icon.BitSize)))
	icon.SetAttributeValue("on", cty.StringVal(cfg.Icon.On.Hex()))
	icon.SetAttributeValue("off", cty.StringVal(cfg.Icon.Off.Hex()))
	icon.SetAttributeValue("background", cty.StringVal(cfg.Icon.Background.Hex()))

	return Format(f.Bytes())
}

func stringList(items []string) cty.Value {
	if len(items) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, len(items))
	for i, s := range items {
		vals[i] = cty.StringVal(s)
	}
	return cty.ListVal(vals)
}
