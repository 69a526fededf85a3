package vars

import (
	"event-map/model"
	"sync/atomic"
)

// catalogPtr holds the catalog currently served. Readers never block a refresh.
var catalogPtr atomic.Pointer[[]model.Event]

// GetCatalog returns the current catalog. The slice must be treated as read-only.
func GetCatalog() []model.Event {
	ptr := catalogPtr.Load()
	if ptr == nil {
		return nil
	}
	return *ptr
}

// SetCatalog atomically replaces the catalog with a copy of events.
// Pass nil or an empty slice to clear it.
func SetCatalog(events []model.Event) {
	if len(events) == 0 {
		catalogPtr.Store(nil)
		return
	}

	eventsCopy := make([]model.Event, len(events))
	copy(eventsCopy, events)
	catalogPtr.Store(&eventsCopy)
}

// FindEvent looks up an event by id in the current catalog.
func FindEvent(id int) (model.Event, bool) {
	for _, event := range GetCatalog() {
		if event.Id == id {
			return event, true
		}
	}
	return model.Event{}, false
}
