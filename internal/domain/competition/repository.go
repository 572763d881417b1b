package competition

import (
	"context"
	"time"
)

type Repository interface {
	GetByID(ctx context.Context, eventID string) (Event, bool, error)
	FindBySlot(ctx context.Context, name string, date time.Time, location string) (Event, bool, error)
	List(ctx context.Context) ([]Event, error)
	ListByFolder(ctx context.Context, folderID string) ([]Event, error)
	// ListUnfiled returns events of eventType that belong to no folder.
	ListUnfiled(ctx context.Context, eventType Type) ([]Event, error)
	Upsert(ctx context.Context, event Event) error
	Delete(ctx context.Context, eventID string) error
	DetachFolder(ctx context.Context, folderID string) error
}
