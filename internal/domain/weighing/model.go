package weighing

import (
	"errors"
	"strings"
	"time"
)

var ErrAccessExpired = errors.New("weighing access link expired")

// AccessLink grants one e-mail address weigh-in access to some sectors of an event.
type AccessLink struct {
	ID        string
	EventID   string
	Sectors   []string
	Email     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (l AccessLink) Expired(now time.Time) bool {
	return l.ExpiresAt.Before(now)
}

func (l AccessLink) AllowsEmail(email string) bool {
	return strings.EqualFold(strings.TrimSpace(l.Email), strings.TrimSpace(email))
}

func (l AccessLink) CoversSector(label string) bool {
	for _, s := range l.Sectors {
		if s == label {
			return true
		}
	}
	return false
}
