package lsp

import (
	"testing"
)

func TestFormatEdits(t *testing.T) {
	if edits := formatEdits("server {\n  port = 8080\n}\n"); edits != nil {
		t.Errorf("formatEdits on formatted input = %v, want nil", edits)
	}

	input := "server {\n  port   =   8080\n}\n"
	edits := formatEdits(input)
	if len(edits) != 1 {
		t.Fatalf("expected 1 edit, got %d", len(edits))
	}
	if edits[0].NewText != "server {\n  port = 8080\n}\n" {
		t.Errorf("NewText = %q", edits[0].NewText)
	}
	if edits[0].Range.End.Line != 4 {
		t.Errorf("edit end line = %d, want 4", edits[0].Range.End.Line)
	}
}
