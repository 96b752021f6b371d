package logic

import (
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"

	"tagbar/internal/domain"
)

// Engine matches documents against queries. Every tag must occur in the
// title or body (case-insensitive); the free text is then fuzzy matched
// against titles and results are ranked by score.
type Engine struct {
	store DocumentStore
}

// NewEngine creates a search engine over store
func NewEngine(store DocumentStore) *Engine {
	return &Engine{store: store}
}

// Search returns the matching documents. An empty query returns everything
// in store order.
func (e *Engine) Search(q domain.Query) []domain.Document {
	docs := e.store.GetAllDocuments()

	tags := lo.FilterMap(q.Tags, func(t domain.Tag, _ int) (string, bool) {
		s := strings.ToLower(strings.TrimSpace(string(t)))
		return s, s != ""
	})
	if len(tags) > 0 {
		docs = lo.Filter(docs, func(d domain.Document, _ int) bool {
			return matchesTags(d, tags)
		})
	}

	text := strings.TrimSpace(q.Text)
	if text == "" {
		return docs
	}

	matches := fuzzy.FindFrom(text, titles(docs))
	return lo.Map(matches, func(m fuzzy.Match, _ int) domain.Document {
		return docs[m.Index]
	})
}

func matchesTags(d domain.Document, tags []string) bool {
	haystack := strings.ToLower(d.Title + " " + d.Body)
	for _, t := range tags {
		if !strings.Contains(haystack, t) {
			return false
		}
	}
	return true
}

// titles adapts a document slice to fuzzy.Source
type titles []domain.Document

func (t titles) String(i int) string { return t[i].Title }
func (t titles) Len() int            { return len(t) }
