package sqlstore

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fishing-league/internal/domain/competition"
	qb "github.com/riskibarqy/fishing-league/internal/platform/querybuilder"
)

var eventColumns, _ = qb.Columns(eventTableModel{})

type EventRepository struct {
	db     *sqlx.DB
	format qb.Format
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db, format: placeholderFormat(db)}
}

func (r *EventRepository) GetByID(ctx context.Context, eventID string) (competition.Event, bool, error) {
	query, args, err := qb.Select(eventColumns...).From(eventsTable).
		Where(qb.Eq("id", eventID)).
		PlaceholderFormat(r.format).
		ToSQL()
	if err != nil {
		return competition.Event{}, false, crerr.Wrap(err, "build get event query")
	}
	return r.getOne(ctx, query, args)
}

func (r *EventRepository) FindBySlot(ctx context.Context, name string, date time.Time, location string) (competition.Event, bool, error) {
	query, args, err := qb.Select(eventColumns...).From(eventsTable).
		Where(
			qb.Eq("name", name),
			qb.Eq("event_date", eventDate(date)),
			qb.Eq("location", location),
		).
		Limit(1).
		PlaceholderFormat(r.format).
		ToSQL()
	if err != nil {
		return competition.Event{}, false, crerr.Wrap(err, "build find event by slot query")
	}
	return r.getOne(ctx, query, args)
}

func (r *EventRepository) List(ctx context.Context) ([]competition.Event, error) {
	query, args, err := qb.Select(eventColumns...).From(eventsTable).
		OrderBy("event_date DESC", "name", "id").
		PlaceholderFormat(r.format).
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build list events query")
	}
	return r.selectMany(ctx, query, args)
}

func (r *EventRepository) ListByFolder(ctx context.Context, folderID string) ([]competition.Event, error) {
	query, args, err := qb.Select(eventColumns...).From(eventsTable).
		Where(qb.Eq("folder_id", folderID)).
		OrderBy("event_date DESC", "name", "id").
		PlaceholderFormat(r.format).
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build list folder events query")
	}
	return r.selectMany(ctx, query, args)
}

func (r *EventRepository) ListUnfiled(ctx context.Context, eventType competition.Type) ([]competition.Event, error) {
	query, args, err := qb.Select(eventColumns...).From(eventsTable).
		Where(qb.Eq("event_type", string(eventType)), qb.IsNull("folder_id")).
		OrderBy("event_date DESC", "name", "id").
		PlaceholderFormat(r.format).
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build list unfiled events query")
	}
	return r.selectMany(ctx, query, args)
}

func (r *EventRepository) Upsert(ctx context.Context, event competition.Event) error {
	model, err := toEventModel(event)
	if err != nil {
		return crerr.Wrapf(err, "encode event %s", event.ID)
	}

	query, args, err := qb.InsertModel(eventsTable, model, r.format, qb.UpsertSuffix("id", eventColumns, "created_at"))
	if err != nil {
		return crerr.Wrap(err, "build upsert event query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrapf(err, "upsert event %s", event.ID)
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, eventID string) error {
	query, args, err := qb.DeleteFrom(eventsTable).
		Where(qb.Eq("id", eventID)).
		PlaceholderFormat(r.format).
		ToSQL()
	if err != nil {
		return crerr.Wrap(err, "build delete event query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrapf(err, "delete event %s", eventID)
	}
	return nil
}

func (r *EventRepository) DetachFolder(ctx context.Context, folderID string) error {
	query, args, err := qb.Update(eventsTable).
		Set("folder_id", nil).
		Set("updated_at", time.Now().UTC()).
		Where(qb.Eq("folder_id", folderID)).
		PlaceholderFormat(r.format).
		ToSQL()
	if err != nil {
		return crerr.Wrap(err, "build detach folder query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrapf(err, "detach events from folder %s", folderID)
	}
	return nil
}

func (r *EventRepository) getOne(ctx context.Context, query string, args []any) (competition.Event, bool, error) {
	var row eventTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return competition.Event{}, false, nil
		}
		return competition.Event{}, false, crerr.Wrap(err, "get event")
	}

	event, err := row.toDomain()
	if err != nil {
		return competition.Event{}, false, err
	}
	return event, true, nil
}

func (r *EventRepository) selectMany(ctx context.Context, query string, args []any) ([]competition.Event, error) {
	var rows []eventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select events")
	}

	out := make([]competition.Event, 0, len(rows))
	for _, row := range rows {
		event, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, event)
	}
	return out, nil
}
