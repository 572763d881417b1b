package app

import (
	"net/url"
	"path"
	"strings"

	"github.com/riskibarqy/fishing-league/internal/config"
)

// normalizeDBURL fills in driver options the stores rely on without
// overriding values set explicitly in the URL.
func normalizeDBURL(driver, raw, applicationName string) string {
	switch driver {
	case config.StorageSQLite:
		return withQueryDefault(raw, "_foreign_keys", "on")
	case config.StoragePostgres:
		if applicationName == "" {
			return raw
		}
		parsed, err := url.Parse(raw)
		if err != nil || parsed == nil || parsed.Scheme == "" {
			return raw
		}
		return withQueryDefault(raw, "application_name", applicationName)
	default:
		return raw
	}
}

func withQueryDefault(raw, key, value string) string {
	base, rawQuery, _ := strings.Cut(raw, "?")
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return raw
	}
	if query.Get(key) != "" {
		return raw
	}
	query.Set(key, value)
	return base + "?" + query.Encode()
}

func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if rest, ok := strings.CutPrefix(trimmed, "file:"); ok {
		file, _, _ := strings.Cut(rest, "?")
		return strings.TrimSuffix(path.Base(file), path.Ext(file))
	}

	parsed, err := url.Parse(trimmed)
	if err == nil && parsed != nil && parsed.Scheme != "" {
		name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
		if name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		if !strings.HasPrefix(token, "dbname=") {
			continue
		}
		name := strings.TrimSpace(strings.TrimPrefix(token, "dbname="))
		name = strings.Trim(name, `"'`)
		if name != "" {
			return name
		}
	}

	return ""
}
