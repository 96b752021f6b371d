package logic

import "tagbar/internal/domain"

// DocumentStore provides access to the searchable documents
type DocumentStore interface {
	GetDocument(id int) (domain.Document, bool)
	GetAllDocuments() []domain.Document
	AddDocument(doc domain.Document) domain.Document
	RemoveDocument(id int)
	Len() int
}

// Searcher answers queries against a document store
type Searcher interface {
	Search(q domain.Query) []domain.Document
}
