package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/riskibarqy/fishing-league/internal/domain/competition"
	"github.com/riskibarqy/fishing-league/internal/domain/criterium"
)

type FolderRepository struct {
	mu    sync.RWMutex
	items map[string]criterium.Folder
}

func NewFolderRepository(folders ...criterium.Folder) *FolderRepository {
	items := make(map[string]criterium.Folder, len(folders))
	for _, f := range folders {
		items[f.ID] = f
	}
	return &FolderRepository{items: items}
}

func (r *FolderRepository) GetByID(_ context.Context, folderID string) (criterium.Folder, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[folderID]
	return item, ok, nil
}

func (r *FolderRepository) ListByType(_ context.Context, folderType competition.Type) ([]criterium.Folder, error) {
	r.mu.RLock()
	out := make([]criterium.Folder, 0, len(r.items))
	for _, item := range r.items {
		if folderType == "" || item.Type == folderType {
			out = append(out, item)
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b criterium.Folder) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (r *FolderRepository) Create(_ context.Context, folder criterium.Folder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[folder.ID] = folder
	return nil
}

func (r *FolderRepository) Update(_ context.Context, folder criterium.Folder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[folder.ID]; ok {
		r.items[folder.ID] = folder
	}
	return nil
}

func (r *FolderRepository) Delete(_ context.Context, folderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, folderID)
	return nil
}
