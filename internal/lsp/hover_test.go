package lsp

import (
	"strings"
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestHover_Word(t *testing.T) {
	result := newTestAnalyzer().Analyze("file:///notes.txt", "the Dogs bark")

	h := hover(result, protocol.Position{Line: 0, Character: 6})
	if h == nil {
		t.Fatal("expected non-nil hover result")
	}

	mc, ok := h.Contents.(protocol.MarkupContent)
	if !ok {
		t.Fatalf("expected MarkupContent, got %T", h.Contents)
	}
	if mc.Kind != protocol.MarkupKindMarkdown {
		t.Errorf("expected markdown kind, got %q", mc.Kind)
	}

	for _, want := range []string{"**Dogs**", "#646f67", "rgb(100, 111, 103)", "pastel `#80ffa2`", "#67646f", "#6f6764"} {
		if !strings.Contains(mc.Value, want) {
			t.Errorf("hover content missing %q, got:\n%s", want, mc.Value)
		}
	}

	if h.Range == nil || h.Range.Start.Character != 4 || h.Range.End.Character != 8 {
		t.Errorf("hover range = %v, want characters 4-8", h.Range)
	}
}

func TestHover_NoWord(t *testing.T) {
	result := newTestAnalyzer().Analyze("file:///notes.txt", "the Dogs bark")

	// Blacklisted word, the gap between words, and past the end of the line.
	for _, ch := range []uint32{1, 8, 40} {
		if h := hover(result, protocol.Position{Line: 0, Character: ch}); h != nil {
			t.Errorf("hover at %d = %v, want nil", ch, h)
		}
	}
	if h := hover(nil, protocol.Position{}); h != nil {
		t.Error("hover on nil result should be nil")
	}
}

func TestPosInRange(t *testing.T) {
	r := protocol.Range{
		Start: protocol.Position{Line: 1, Character: 4},
		End:   protocol.Position{Line: 1, Character: 8},
	}
	tests := []struct {
		pos  protocol.Position
		want bool
	}{
		{protocol.Position{Line: 1, Character: 4}, true},
		{protocol.Position{Line: 1, Character: 7}, true},
		{protocol.Position{Line: 1, Character: 8}, false},
		{protocol.Position{Line: 1, Character: 3}, false},
		{protocol.Position{Line: 0, Character: 5}, false},
		{protocol.Position{Line: 2, Character: 5}, false},
	}
	for _, tt := range tests {
		if got := posInRange(tt.pos, r); got != tt.want {
			t.Errorf("posInRange(%+v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}
