package logic

import (
	"sync"

	"github.com/samber/lo"

	"tagbar/internal/domain"
)

// MemoryDocumentStore is an in-memory implementation of DocumentStore.
// Documents keep insertion order.
type MemoryDocumentStore struct {
	mu     sync.RWMutex
	docs   map[int]domain.Document
	order  []int
	nextID int
}

// NewMemoryDocumentStore creates a store holding docs
func NewMemoryDocumentStore(docs ...domain.Document) *MemoryDocumentStore {
	s := &MemoryDocumentStore{
		docs: make(map[int]domain.Document),
	}
	for _, d := range docs {
		s.AddDocument(d)
	}
	return s
}

func (s *MemoryDocumentStore) GetDocument(id int) (domain.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.docs[id]
	return d, ok
}

// GetAllDocuments returns a copy of every document in insertion order
func (s *MemoryDocumentStore) GetAllDocuments() []domain.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Map(s.order, func(id int, _ int) domain.Document {
		return s.docs[id]
	})
}

// AddDocument stores doc, assigning a fresh ID when doc.ID is zero or taken
func (s *MemoryDocumentStore) AddDocument(doc domain.Document) domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.docs[doc.ID]; doc.ID <= 0 || taken {
		doc.ID = s.nextID + 1
	}
	s.nextID = max(s.nextID, doc.ID)
	s.docs[doc.ID] = doc
	s.order = append(s.order, doc.ID)
	return doc
}

func (s *MemoryDocumentStore) RemoveDocument(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return
	}
	delete(s.docs, id)
	s.order = lo.Filter(s.order, func(v int, _ int) bool { return v != id })
}

func (s *MemoryDocumentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
