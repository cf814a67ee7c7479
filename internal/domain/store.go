package domain

import (
	"sort"
	"strings"
)

// Store is the immutable, session-scoped mapping of lookup key to Document.
// It is never mutated after NewStore returns, so it can be shared freely.
type Store struct {
	docs map[string]Document
	byID map[string]string // ID -> key
	keys []string
}

// NewStore creates a store from a key->document mapping
func NewStore(docs map[string]Document) *Store {
	s := &Store{
		docs: make(map[string]Document, len(docs)),
		byID: make(map[string]string, len(docs)),
		keys: make([]string, 0, len(docs)),
	}
	for key, doc := range docs {
		doc.Key = key
		s.docs[key] = doc
		s.byID[doc.ID] = key
		s.keys = append(s.keys, key)
	}
	sort.Strings(s.keys)
	return s
}

// Len returns the number of documents
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.docs)
}

// Get returns the document stored under a lookup key
func (s *Store) Get(key string) (Document, bool) {
	if s == nil {
		return Document{}, false
	}
	doc, ok := s.docs[key]
	return doc, ok
}

// Keys returns all lookup keys in lexical order
func (s *Store) Keys() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.keys...)
}

// Documents returns all documents ordered by lookup key
func (s *Store) Documents() []Document {
	if s == nil {
		return nil
	}
	docs := make([]Document, 0, len(s.keys))
	for _, k := range s.keys {
		docs = append(docs, s.docs[k])
	}
	return docs
}

// FindByID returns the document with exactly this ID
func (s *Store) FindByID(id string) (Document, bool) {
	if s == nil {
		return Document{}, false
	}
	key, ok := s.byID[id]
	if !ok {
		return Document{}, false
	}
	return s.docs[key], true
}

// Resolve finds a document for a requested identifier that may or may not
// carry a leading separator. Both the normalized and the raw form are tried
// against document IDs.
func (s *Store) Resolve(requested string) (Document, bool) {
	if doc, ok := s.FindByID(NormalizeID(requested)); ok {
		return doc, true
	}
	return s.FindByID(requested)
}

// LookupCommand finds a document for terminal text, trying it as a lookup key
// as-is, with the prefix added and with the prefix removed.
func (s *Store) LookupCommand(text string) (Document, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Document{}, false
	}
	candidates := []string{text, KeyPrefix + text, strings.TrimPrefix(text, KeyPrefix)}
	for _, c := range candidates {
		if doc, ok := s.Get(c); ok {
			return doc, true
		}
	}
	return Document{}, false
}
