package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/riskibarqy/fishing-league/internal/domain/weighing"
)

type AccessLinkRepository struct {
	mu    sync.RWMutex
	items map[string]weighing.AccessLink
}

func NewAccessLinkRepository() *AccessLinkRepository {
	return &AccessLinkRepository{items: make(map[string]weighing.AccessLink)}
}

func (r *AccessLinkRepository) GetByID(_ context.Context, linkID string) (weighing.AccessLink, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[linkID]
	if !ok {
		return weighing.AccessLink{}, false, nil
	}
	item.Sectors = slices.Clone(item.Sectors)
	return item, true, nil
}

func (r *AccessLinkRepository) Create(_ context.Context, link weighing.AccessLink) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	link.Sectors = slices.Clone(link.Sectors)
	r.items[link.ID] = link
	return nil
}

func (r *AccessLinkRepository) DeleteByEvent(_ context.Context, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for linkID, item := range r.items {
		if item.EventID == eventID {
			delete(r.items, linkID)
		}
	}
	return nil
}
