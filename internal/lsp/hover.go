package lsp

import (
	"fmt"
	"strings"

	"github.com/jsvensson/wordhue/internal/palette"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// posInRange returns true if pos is within the range [r.Start, r.End).
// The end position is exclusive.
func posInRange(pos protocol.Position, r protocol.Range) bool {
	if pos.Line < r.Start.Line || pos.Line > r.End.Line {
		return false
	}
	if pos.Line == r.Start.Line && pos.Character < r.Start.Character {
		return false
	}
	if pos.Line == r.End.Line && pos.Character >= r.End.Character {
		return false
	}
	return true
}

// hover describes the word under pos: its hex and rgb() forms, its pastel
// variant and its triad. Returns nil if no word is found at the position.
func hover(result *AnalysisResult, pos protocol.Position) *protocol.Hover {
	if result == nil {
		return nil
	}

	for _, wl := range result.Words {
		if !posInRange(pos, wl.Range) {
			continue
		}

		triad := palette.Hexes(palette.Triad(wl.Color))
		md := fmt.Sprintf("**%s**\n\n`%s` · `%s`\n\npastel `%s`\n\ntriad `%s`",
			wl.Text,
			wl.Color.Hex(),
			wl.Color.RGB(),
			wl.Color.Pastelized().Hex(),
			strings.Join(triad, "` `"),
		)

		rng := wl.Range
		return &protocol.Hover{
			Contents: protocol.MarkupContent{
				Kind:  protocol.MarkupKindMarkdown,
				Value: md,
			},
			Range: &rng,
		}
	}

	return nil
}

// textDocumentHover handles textDocument/hover requests.
func (s *Server) textDocumentHover(_ *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	return hover(s.docs.Result(string(params.TextDocument.URI)), params.Position), nil
}
