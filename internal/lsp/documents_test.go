package lsp

import (
	"testing"
)

// TestDocumentStore_Update verifies that the document store properly updates content
func TestDocumentStore_Update(t *testing.T) {
	store := NewDocumentStore()

	first := &AnalysisResult{}
	store.Open("test://notes.txt", "initial content", first)

	content, ok := store.Get("test://notes.txt")
	if !ok {
		t.Fatal("Document not found after opening")
	}
	if content != "initial content" {
		t.Errorf("Expected 'initial content', got '%s'", content)
	}
	if store.Result("test://notes.txt") != first {
		t.Error("Result after open is not the stored analysis")
	}

	second := &AnalysisResult{}
	store.Update("test://notes.txt", "updated content", second)

	content, ok = store.Get("test://notes.txt")
	if !ok {
		t.Fatal("Document not found after update")
	}
	if content != "updated content" {
		t.Errorf("Expected 'updated content', got '%s'", content)
	}
	if store.Result("test://notes.txt") != second {
		t.Error("Result after update is not the new analysis")
	}
}

func TestDocumentStore_Close(t *testing.T) {
	store := NewDocumentStore()
	store.Open("test://notes.txt", "hello", &AnalysisResult{})
	store.Close("test://notes.txt")

	if _, ok := store.Get("test://notes.txt"); ok {
		t.Error("Document still present after close")
	}
	if store.Result("test://notes.txt") != nil {
		t.Error("Result still present after close")
	}
}

// TestDocumentStore_ConcurrentAccess verifies thread safety
func TestDocumentStore_ConcurrentAccess(t *testing.T) {
	store := NewDocumentStore()
	store.Open("test://notes.txt", "initial", nil)

	done := make(chan bool, 10)
	for i := 0; i < 10; i++ {
		go func(n int) {
			store.Update("test://notes.txt", string(rune('0'+n)), &AnalysisResult{})
			_ = store.Result("test://notes.txt")
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}

	content, ok := store.Get("test://notes.txt")
	if !ok {
		t.Error("Document not found after concurrent updates")
	}
	if content == "" {
		t.Error("Document content is empty after concurrent updates")
	}
}
