package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/riskibarqy/fishing-league/internal/domain/competition"
)

type EventRepository struct {
	mu    sync.RWMutex
	items map[string]competition.Event
}

func NewEventRepository(events ...competition.Event) *EventRepository {
	items := make(map[string]competition.Event, len(events))
	for _, e := range events {
		items[e.ID] = e.Clone()
	}
	return &EventRepository{items: items}
}

func (r *EventRepository) GetByID(_ context.Context, eventID string) (competition.Event, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[eventID]
	if !ok {
		return competition.Event{}, false, nil
	}
	return item.Clone(), true, nil
}

func (r *EventRepository) FindBySlot(_ context.Context, name string, date time.Time, location string) (competition.Event, bool, error) {
	slot := competition.Event{Name: name, Date: date, Location: location}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.SameSlot(slot) {
			return item.Clone(), true, nil
		}
	}
	return competition.Event{}, false, nil
}

func (r *EventRepository) List(_ context.Context) ([]competition.Event, error) {
	return r.collect(func(competition.Event) bool { return true }), nil
}

func (r *EventRepository) ListByFolder(_ context.Context, folderID string) ([]competition.Event, error) {
	return r.collect(func(e competition.Event) bool { return e.FolderID == folderID }), nil
}

func (r *EventRepository) ListUnfiled(_ context.Context, eventType competition.Type) ([]competition.Event, error) {
	return r.collect(func(e competition.Event) bool { return e.Type == eventType && e.FolderID == "" }), nil
}

func (r *EventRepository) Upsert(_ context.Context, event competition.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[event.ID] = event.Clone()
	return nil
}

func (r *EventRepository) Delete(_ context.Context, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, eventID)
	return nil
}

func (r *EventRepository) DetachFolder(_ context.Context, folderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for eventID, item := range r.items {
		if item.FolderID == folderID {
			item.FolderID = ""
			r.items[eventID] = item
		}
	}
	return nil
}

func (r *EventRepository) collect(keep func(competition.Event) bool) []competition.Event {
	r.mu.RLock()
	out := make([]competition.Event, 0, len(r.items))
	for _, item := range r.items {
		if keep(item) {
			out = append(out, item.Clone())
		}
	}
	r.mu.RUnlock()

	sortEvents(out)
	return out
}

// sortEvents orders newest first, matching the SQL store.
func sortEvents(events []competition.Event) {
	slices.SortFunc(events, func(a, b competition.Event) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
