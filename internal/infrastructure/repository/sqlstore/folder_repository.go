package sqlstore

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fishing-league/internal/domain/competition"
	"github.com/riskibarqy/fishing-league/internal/domain/criterium"
	qb "github.com/riskibarqy/fishing-league/internal/platform/querybuilder"
)

type folderTableModel struct {
	ID         string    `db:"id"`
	Name       string    `db:"name"`
	FolderType string    `db:"folder_type"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (m folderTableModel) toDomain() criterium.Folder {
	return criterium.Folder{
		ID:        m.ID,
		Name:      m.Name,
		Type:      competition.Type(m.FolderType),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

var folderColumns, _ = qb.Columns(folderTableModel{})

type FolderRepository struct {
	db     *sqlx.DB
	format qb.Format
}

func NewFolderRepository(db *sqlx.DB) *FolderRepository {
	return &FolderRepository{db: db, format: placeholderFormat(db)}
}

func (r *FolderRepository) GetByID(ctx context.Context, folderID string) (criterium.Folder, bool, error) {
	query, args, err := qb.Select(folderColumns...).From(foldersTable).
		Where(qb.Eq("id", folderID)).
		PlaceholderFormat(r.format).
		ToSQL()
	if err != nil {
		return criterium.Folder{}, false, crerr.Wrap(err, "build get folder query")
	}

	var row folderTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return criterium.Folder{}, false, nil
		}
		return criterium.Folder{}, false, crerr.Wrapf(err, "get folder %s", folderID)
	}
	return row.toDomain(), true, nil
}

func (r *FolderRepository) ListByType(ctx context.Context, folderType competition.Type) ([]criterium.Folder, error) {
	builder := qb.Select(folderColumns...).From(foldersTable).
		OrderBy("name", "id").
		PlaceholderFormat(r.format)
	if folderType != "" {
		builder = builder.Where(qb.Eq("folder_type", string(folderType)))
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build list folders query")
	}

	var rows []folderTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select folders")
	}

	out := make([]criterium.Folder, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *FolderRepository) Create(ctx context.Context, folder criterium.Folder) error {
	model := folderTableModel{
		ID:         folder.ID,
		Name:       folder.Name,
		FolderType: string(folder.Type),
		CreatedAt:  folder.CreatedAt.UTC(),
		UpdatedAt:  folder.UpdatedAt.UTC(),
	}
	query, args, err := qb.InsertModel(foldersTable, model, r.format, "")
	if err != nil {
		return crerr.Wrap(err, "build insert folder query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrapf(err, "insert folder %s", folder.ID)
	}
	return nil
}

func (r *FolderRepository) Update(ctx context.Context, folder criterium.Folder) error {
	query, args, err := qb.Update(foldersTable).
		Set("name", folder.Name).
		Set("updated_at", folder.UpdatedAt.UTC()).
		Where(qb.Eq("id", folder.ID)).
		PlaceholderFormat(r.format).
		ToSQL()
	if err != nil {
		return crerr.Wrap(err, "build update folder query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrapf(err, "update folder %s", folder.ID)
	}
	return nil
}

func (r *FolderRepository) Delete(ctx context.Context, folderID string) error {
	query, args, err := qb.DeleteFrom(foldersTable).
		Where(qb.Eq("id", folderID)).
		PlaceholderFormat(r.format).
		ToSQL()
	if err != nil {
		return crerr.Wrap(err, "build delete folder query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrapf(err, "delete folder %s", folderID)
	}
	return nil
}
