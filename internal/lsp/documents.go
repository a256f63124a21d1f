package lsp

import "sync"

type document struct {
	content string
	result  *AnalysisResult
}

// DocumentStore holds open document contents and their latest analysis,
// keyed by URI.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]document
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]document)}
}

// Open and Update both replace the stored content and analysis.
func (s *DocumentStore) Open(uri, content string, result *AnalysisResult) {
	s.set(uri, content, result)
}

func (s *DocumentStore) Update(uri, content string, result *AnalysisResult) {
	s.set(uri, content, result)
}

func (s *DocumentStore) set(uri, content string, result *AnalysisResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = document{content: content, result: result}
}

func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

func (s *DocumentStore) Get(uri string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[uri]
	return doc.content, ok
}

// Result returns the analysis stored with uri, or nil if it is not open.
func (s *DocumentStore) Result(uri string) *AnalysisResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs[uri].result
}
