package logic

import (
	"log/slog"

	"tagbar/internal/eventbus"
)

// SearchService answers SearchRequested events with SearchCompleted events
type SearchService struct {
	bus         eventbus.EventBus
	searcher    Searcher
	logger      *slog.Logger
	unsubscribe func()
}

// NewSearchService creates a search service; it subscribes to events automatically
func NewSearchService(bus eventbus.EventBus, searcher Searcher, logger *slog.Logger) *SearchService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &SearchService{
		bus:      bus,
		searcher: searcher,
		logger:   logger,
	}

	s.unsubscribe = bus.Subscribe(eventbus.EventSearchRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchRequestedEvent); ok {
			s.handle(event)
		}
	})

	return s
}

func (s *SearchService) handle(event eventbus.SearchRequestedEvent) {
	results := s.searcher.Search(event.Query)
	s.logger.Debug("search completed", "seq", event.Seq, "tags", len(event.Query.Tags), "text", event.Query.Text, "results", len(results))
	s.bus.Publish(eventbus.SearchCompletedEvent{
		Seq:     event.Seq,
		Query:   event.Query,
		Results: results,
	})
}

// Stop unsubscribes the service from the bus
func (s *SearchService) Stop() {
	s.unsubscribe()
}
