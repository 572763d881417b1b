package criterium

import (
	"context"

	"github.com/riskibarqy/fishing-league/internal/domain/competition"
)

type Repository interface {
	GetByID(ctx context.Context, folderID string) (Folder, bool, error)
	ListByType(ctx context.Context, folderType competition.Type) ([]Folder, error)
	Create(ctx context.Context, folder Folder) error
	Update(ctx context.Context, folder Folder) error
	Delete(ctx context.Context, folderID string) error
}
