package sqlstore

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	qb "github.com/riskibarqy/fishing-league/internal/platform/querybuilder"
)

const (
	eventsTable        = "events"
	foldersTable       = "folders"
	weighingLinksTable = "weighing_links"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func placeholderFormat(db *sqlx.DB) qb.Format {
	return qb.FormatFor(db.DriverName())
}

func encodeJSON(value any) (string, error) {
	encoded, err := sonic.Marshal(value)
	if err != nil {
		return "", crerr.Wrap(err, "encode json column")
	}
	return string(encoded), nil
}

func decodeJSON(raw string, target any) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if err := sonic.UnmarshalString(raw, target); err != nil {
		return crerr.Wrap(err, "decode json column")
	}
	return nil
}

func nullString(value string) sql.NullString {
	value = strings.TrimSpace(value)
	return sql.NullString{String: value, Valid: value != ""}
}
