package lsp

import (
	"math"

	"github.com/jsvensson/wordhue/internal/color"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// colorToLSP converts an internal color.Color (uint8 RGB) to a protocol.Color (float32 0.0-1.0).
func colorToLSP(c color.Color) protocol.Color {
	return protocol.Color{
		Red:   float32(c.R) / 255.0,
		Green: float32(c.G) / 255.0,
		Blue:  float32(c.B) / 255.0,
		Alpha: 1.0,
	}
}

// lspToColor converts a protocol.Color back, rounding each channel.
func lspToColor(c protocol.Color) color.Color {
	ch := func(v float32) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(1, float64(v))) * 255))
	}
	return color.Color{R: ch(c.Red), G: ch(c.Green), B: ch(c.Blue)}
}

// documentColors converts the analysis result's word locations into LSP ColorInformation items.
func documentColors(result *AnalysisResult) []protocol.ColorInformation {
	if result == nil {
		return []protocol.ColorInformation{}
	}

	infos := make([]protocol.ColorInformation, 0, len(result.Words))
	for _, wl := range result.Words {
		infos = append(infos, protocol.ColorInformation{
			Range: wl.Range,
			Color: colorToLSP(wl.Color),
		})
	}
	return infos
}

// colorPresentation offers the hex code and rgb() form of the picked color.
// Word colors are derived, so no TextEdit is attached: picking a presentation
// never rewrites the word itself.
func colorPresentation(params *protocol.ColorPresentationParams) []protocol.ColorPresentation {
	c := lspToColor(params.Color)
	return []protocol.ColorPresentation{
		{Label: c.Hex()},
		{Label: c.RGB()},
	}
}

// textDocumentDocumentColor handles textDocument/documentColor requests.
func (s *Server) textDocumentDocumentColor(_ *glsp.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	return documentColors(s.docs.Result(string(params.TextDocument.URI))), nil
}

// textDocumentColorPresentation handles textDocument/colorPresentation requests.
func (s *Server) textDocumentColorPresentation(_ *glsp.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	if _, ok := s.docs.Get(string(params.TextDocument.URI)); !ok {
		return []protocol.ColorPresentation{}, nil
	}
	return colorPresentation(params), nil
}
