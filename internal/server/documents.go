package server

import (
	"sync"

	"go.lsp.dev/uri"
)

// Document is one open text document, replaced wholesale on every change
// (full sync).
type Document struct {
	URI     uri.URI
	Content string
	Version int32
}

// DocumentStore tracks open documents. Reads dominate, so it sits behind an
// RWMutex rather than channels.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[uri.URI]*Document
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[uri.URI]*Document)}
}

// Open registers a document or replaces an existing one with the same URI.
func (s *DocumentStore) Open(docURI uri.URI, content string, version int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[docURI] = &Document{URI: docURI, Content: content, Version: version}
}

// Update replaces the full content of an open document. Updates for unknown
// URIs open the document instead of failing.
func (s *DocumentStore) Update(docURI uri.URI, content string, version int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if doc, ok := s.docs[docURI]; ok {
		doc.Content = content
		doc.Version = version
		return
	}
	s.docs[docURI] = &Document{URI: docURI, Content: content, Version: version}
}

// Close removes a document from the store.
func (s *DocumentStore) Close(docURI uri.URI) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, docURI)
}

// Get returns the current content of a document.
func (s *DocumentStore) Get(docURI uri.URI) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[docURI]
	if !ok {
		return "", false
	}
	return doc.Content, true
}

// Len reports how many documents are open.
func (s *DocumentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
