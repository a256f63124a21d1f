package lsp

import (
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/hashicorp/hcl/v2"
	"github.com/jsvensson/wordhue/internal/color"
	"github.com/jsvensson/wordhue/internal/config"
	"github.com/jsvensson/wordhue/internal/mapping"
	"github.com/jsvensson/wordhue/internal/words"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const diagSource = "wordhue"

var (
	DiagError   = protocol.DiagnosticSeverityError
	DiagWarning = protocol.DiagnosticSeverityWarning
)

// AnalysisResult holds everything produced by analyzing one document.
type AnalysisResult struct {
	Diagnostics []protocol.Diagnostic
	Words       []WordLocation
}

// WordLocation records a colored word at a specific source position.
type WordLocation struct {
	Range protocol.Range
	Text  string // as written in the document
	Word  string // lowercased, as fed to the color mapping
	Color color.Color
}

// Analyzer colors the words of plain-text documents and checks wordhue
// config documents.
type Analyzer struct {
	Tokenizer *words.Tokenizer
	Sampler   mapping.Sampler
}

// Analyze dispatches on the document URI: files ending in .hcl are checked as
// wordhue config, everything else is scanned for words.
func (a *Analyzer) Analyze(uri, content string) *AnalysisResult {
	if strings.HasSuffix(uri, ".hcl") {
		return analyzeConfig(uri, content)
	}
	return a.scanWords(content)
}

// scanWords reports each whitespace-separated word that is not blacklisted.
// Character offsets are UTF-16 code units, matching the LSP default encoding.
func (a *Analyzer) scanWords(content string) *AnalysisResult {
	result := &AnalysisResult{}

	for lineNo, line := range strings.Split(content, "\n") {
		var (
			start, col uint32
			word       strings.Builder
		)
		flush := func() {
			if word.Len() == 0 {
				return
			}
			text := word.String()
			w := strings.ToLower(text)
			word.Reset()
			if a.Tokenizer.Blacklisted(w) {
				return
			}
			result.Words = append(result.Words, WordLocation{
				Range: protocol.Range{
					Start: protocol.Position{Line: uint32(lineNo), Character: start},
					End:   protocol.Position{Line: uint32(lineNo), Character: col},
				},
				Text:  text,
				Word:  w,
				Color: mapping.FromStringWith(w, a.Sampler),
			})
		}

		for _, r := range line {
			if unicode.IsSpace(r) {
				flush()
			} else {
				if word.Len() == 0 {
					start = col
				}
				word.WriteRune(r)
			}
			col += uint32(utf16Len(r))
		}
		flush()
	}

	return result
}

func utf16Len(r rune) int {
	if n := len(utf16.Encode([]rune{r})); n > 0 {
		return n
	}
	return 1
}

func analyzeConfig(filename, content string) *AnalysisResult {
	result := &AnalysisResult{}
	for _, d := range config.Check([]byte(content), filename) {
		result.Diagnostics = append(result.Diagnostics, hclDiagToLSP(d))
	}
	return result
}

// hclPosToLSP converts an HCL position to an LSP position.
// HCL positions are 1-based; LSP positions are 0-based.
func hclPosToLSP(pos hcl.Pos) protocol.Position {
	return protocol.Position{
		Line:      uint32(pos.Line - 1),
		Character: uint32(pos.Column - 1),
	}
}

// hclRangeToLSP converts an HCL range to an LSP range.
func hclRangeToLSP(r hcl.Range) protocol.Range {
	return protocol.Range{
		Start: hclPosToLSP(r.Start),
		End:   hclPosToLSP(r.End),
	}
}

// hclDiagToLSP converts an HCL diagnostic. A diagnostic without a subject
// lands at the start of the document.
func hclDiagToLSP(d *hcl.Diagnostic) protocol.Diagnostic {
	sev := DiagError
	if d.Severity == hcl.DiagWarning {
		sev = DiagWarning
	}

	source := diagSource
	diag := protocol.Diagnostic{
		Severity: &sev,
		Message:  d.Summary,
		Source:   &source,
	}

	if d.Detail != "" {
		diag.Message = d.Summary + ": " + d.Detail
	}

	if d.Subject != nil {
		diag.Range = hclRangeToLSP(*d.Subject)
	}

	return diag
}
