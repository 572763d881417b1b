package cache

import (
	"context"
	"time"

	"github.com/riskibarqy/fishing-league/internal/domain/competition"
	"github.com/riskibarqy/fishing-league/internal/domain/criterium"
	basecache "github.com/riskibarqy/fishing-league/internal/platform/cache"
)

const (
	eventListKey      = "event:list"
	eventByIDPrefix   = "event:id:"
	eventFolderPrefix = "event:folder:"
	eventUnfiledKey   = "event:unfiled:"
	folderByIDPrefix  = "folder:id:"
)

type cachedEvent struct {
	value  competition.Event
	exists bool
}

// EventRepository serves reads from a TTL cache and drops affected keys on every write.
type EventRepository struct {
	next  competition.Repository
	byID  *basecache.Store[cachedEvent]
	lists *basecache.Store[[]competition.Event]
}

func NewEventRepository(next competition.Repository, ttl time.Duration) *EventRepository {
	return &EventRepository{
		next:  next,
		byID:  basecache.NewStore[cachedEvent](ttl),
		lists: basecache.NewStore[[]competition.Event](ttl),
	}
}

func (r *EventRepository) GetByID(ctx context.Context, eventID string) (competition.Event, bool, error) {
	cached, err := r.byID.GetOrLoad(ctx, eventByIDPrefix+eventID, func(ctx context.Context) (cachedEvent, error) {
		item, exists, err := r.next.GetByID(ctx, eventID)
		if err != nil {
			return cachedEvent{}, err
		}
		return cachedEvent{value: item.Clone(), exists: exists}, nil
	})
	if err != nil {
		return competition.Event{}, false, err
	}
	return cached.value.Clone(), cached.exists, nil
}

// FindBySlot is only used on the save path and always reads through.
func (r *EventRepository) FindBySlot(ctx context.Context, name string, date time.Time, location string) (competition.Event, bool, error) {
	return r.next.FindBySlot(ctx, name, date, location)
}

func (r *EventRepository) List(ctx context.Context) ([]competition.Event, error) {
	items, err := r.lists.GetOrLoad(ctx, eventListKey, func(ctx context.Context) ([]competition.Event, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return cloneEvents(items), nil
	})
	if err != nil {
		return nil, err
	}
	return cloneEvents(items), nil
}

func (r *EventRepository) ListByFolder(ctx context.Context, folderID string) ([]competition.Event, error) {
	items, err := r.lists.GetOrLoad(ctx, eventFolderPrefix+folderID, func(ctx context.Context) ([]competition.Event, error) {
		items, err := r.next.ListByFolder(ctx, folderID)
		if err != nil {
			return nil, err
		}
		return cloneEvents(items), nil
	})
	if err != nil {
		return nil, err
	}
	return cloneEvents(items), nil
}

func (r *EventRepository) ListUnfiled(ctx context.Context, eventType competition.Type) ([]competition.Event, error) {
	items, err := r.lists.GetOrLoad(ctx, eventUnfiledKey+string(eventType), func(ctx context.Context) ([]competition.Event, error) {
		items, err := r.next.ListUnfiled(ctx, eventType)
		if err != nil {
			return nil, err
		}
		return cloneEvents(items), nil
	})
	if err != nil {
		return nil, err
	}
	return cloneEvents(items), nil
}

func (r *EventRepository) Upsert(ctx context.Context, event competition.Event) error {
	if err := r.next.Upsert(ctx, event); err != nil {
		return err
	}
	r.byID.Delete(ctx, eventByIDPrefix+event.ID)
	r.lists.DeletePrefix(ctx, "event:")
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, eventID string) error {
	if err := r.next.Delete(ctx, eventID); err != nil {
		return err
	}
	r.byID.Delete(ctx, eventByIDPrefix+eventID)
	r.lists.DeletePrefix(ctx, "event:")
	return nil
}

func (r *EventRepository) DetachFolder(ctx context.Context, folderID string) error {
	if err := r.next.DetachFolder(ctx, folderID); err != nil {
		return err
	}
	r.byID.DeletePrefix(ctx, eventByIDPrefix)
	r.lists.DeletePrefix(ctx, "event:")
	return nil
}

func cloneEvents(items []competition.Event) []competition.Event {
	if items == nil {
		return nil
	}
	out := make([]competition.Event, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}

type cachedFolder struct {
	value  criterium.Folder
	exists bool
}

// FolderRepository caches folder lookups by id; listings read through.
type FolderRepository struct {
	next criterium.Repository
	byID *basecache.Store[cachedFolder]
}

func NewFolderRepository(next criterium.Repository, ttl time.Duration) *FolderRepository {
	return &FolderRepository{
		next: next,
		byID: basecache.NewStore[cachedFolder](ttl),
	}
}

func (r *FolderRepository) GetByID(ctx context.Context, folderID string) (criterium.Folder, bool, error) {
	cached, err := r.byID.GetOrLoad(ctx, folderByIDPrefix+folderID, func(ctx context.Context) (cachedFolder, error) {
		item, exists, err := r.next.GetByID(ctx, folderID)
		if err != nil {
			return cachedFolder{}, err
		}
		return cachedFolder{value: item, exists: exists}, nil
	})
	if err != nil {
		return criterium.Folder{}, false, err
	}
	return cached.value, cached.exists, nil
}

func (r *FolderRepository) ListByType(ctx context.Context, folderType competition.Type) ([]criterium.Folder, error) {
	return r.next.ListByType(ctx, folderType)
}

func (r *FolderRepository) Create(ctx context.Context, folder criterium.Folder) error {
	if err := r.next.Create(ctx, folder); err != nil {
		return err
	}
	r.byID.Delete(ctx, folderByIDPrefix+folder.ID)
	return nil
}

func (r *FolderRepository) Update(ctx context.Context, folder criterium.Folder) error {
	if err := r.next.Update(ctx, folder); err != nil {
		return err
	}
	r.byID.Delete(ctx, folderByIDPrefix+folder.ID)
	return nil
}

func (r *FolderRepository) Delete(ctx context.Context, folderID string) error {
	if err := r.next.Delete(ctx, folderID); err != nil {
		return err
	}
	r.byID.Delete(ctx, folderByIDPrefix+folderID)
	return nil
}
