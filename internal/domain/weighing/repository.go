package weighing

import "context"

type Repository interface {
	GetByID(ctx context.Context, linkID string) (AccessLink, bool, error)
	Create(ctx context.Context, link AccessLink) error
	DeleteByEvent(ctx context.Context, eventID string) error
}
