package sqlstore

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fishing-league/internal/domain/weighing"
	qb "github.com/riskibarqy/fishing-league/internal/platform/querybuilder"
)

type accessLinkTableModel struct {
	ID        string    `db:"id"`
	EventID   string    `db:"event_id"`
	Sectors   string    `db:"sectors"`
	Email     string    `db:"email"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

var accessLinkColumns, _ = qb.Columns(accessLinkTableModel{})

type AccessLinkRepository struct {
	db     *sqlx.DB
	format qb.Format
}

func NewAccessLinkRepository(db *sqlx.DB) *AccessLinkRepository {
	return &AccessLinkRepository{db: db, format: placeholderFormat(db)}
}

func (r *AccessLinkRepository) GetByID(ctx context.Context, linkID string) (weighing.AccessLink, bool, error) {
	query, args, err := qb.Select(accessLinkColumns...).From(weighingLinksTable).
		Where(qb.Eq("id", linkID)).
		PlaceholderFormat(r.format).
		ToSQL()
	if err != nil {
		return weighing.AccessLink{}, false, crerr.Wrap(err, "build get weighing link query")
	}

	var row accessLinkTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return weighing.AccessLink{}, false, nil
		}
		return weighing.AccessLink{}, false, crerr.Wrapf(err, "get weighing link %s", linkID)
	}

	var sectors []string
	if err := decodeJSON(row.Sectors, &sectors); err != nil {
		return weighing.AccessLink{}, false, crerr.Wrapf(err, "sectors of weighing link %s", linkID)
	}
	return weighing.AccessLink{
		ID:        row.ID,
		EventID:   row.EventID,
		Sectors:   sectors,
		Email:     row.Email,
		ExpiresAt: row.ExpiresAt,
		CreatedAt: row.CreatedAt,
	}, true, nil
}

func (r *AccessLinkRepository) Create(ctx context.Context, link weighing.AccessLink) error {
	sectors, err := encodeJSON(link.Sectors)
	if err != nil {
		return err
	}

	model := accessLinkTableModel{
		ID:        link.ID,
		EventID:   link.EventID,
		Sectors:   sectors,
		Email:     link.Email,
		ExpiresAt: link.ExpiresAt.UTC(),
		CreatedAt: link.CreatedAt.UTC(),
	}
	query, args, err := qb.InsertModel(weighingLinksTable, model, r.format, "")
	if err != nil {
		return crerr.Wrap(err, "build insert weighing link query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrapf(err, "insert weighing link %s", link.ID)
	}
	return nil
}

func (r *AccessLinkRepository) DeleteByEvent(ctx context.Context, eventID string) error {
	query, args, err := qb.DeleteFrom(weighingLinksTable).
		Where(qb.Eq("event_id", eventID)).
		PlaceholderFormat(r.format).
		ToSQL()
	if err != nil {
		return crerr.Wrap(err, "build delete weighing links query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrapf(err, "delete weighing links of event %s", eventID)
	}
	return nil
}
