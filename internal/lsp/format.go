package lsp

import (
	"strings"

	"github.com/jsvensson/wordhue/internal/config"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// formatEdits returns a single whole-document edit, or nil when content is
// already formatted.
func formatEdits(content string) []protocol.TextEdit {
	formatted := string(config.Format([]byte(content)))
	if formatted == content {
		return nil
	}

	lines := strings.Split(content, "\n")
	return []protocol.TextEdit{{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: uint32(len(lines)), Character: 0},
		},
		NewText: formatted,
	}}
}

// textDocumentFormatting handles textDocument/formatting for config documents.
// Plain-text documents are left alone.
func (s *Server) textDocumentFormatting(_ *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	uri := string(params.TextDocument.URI)
	if !strings.HasSuffix(uri, ".hcl") {
		return nil, nil
	}
	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}
	return formatEdits(content), nil
}
