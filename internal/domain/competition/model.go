package competition

import (
	"errors"
	"slices"
	"time"
)

var (
	ErrInvalidSectorSizes    = errors.New("invalid sector sizes")
	ErrDuplicateDrawPosition = errors.New("duplicate draw position")
	ErrMissingDrawPosition   = errors.New("missing draw position")
	ErrDuplicateName         = errors.New("duplicate participant name")
	ErrDuplicateID           = errors.New("duplicate participant id")
	ErrDrawOutOfRange        = errors.New("draw position outside sectors")
	ErrNoWeights             = errors.New("no weights recorded")
	ErrUnconfirmedWeighing   = errors.New("unconfirmed weighing")
	ErrUnknownType           = errors.New("unknown competition type")
)

type Type string

const (
	TypeOpen                Type = "open"
	TypeMembers             Type = "members"
	TypeIndividualCriterium Type = "individual-criterium"
	TypePairCriterium       Type = "pair-criterium"
)

var AllTypes = map[Type]struct{}{
	TypeOpen:                {},
	TypeMembers:             {},
	TypeIndividualCriterium: {},
	TypePairCriterium:       {},
}

// IsCriterium reports whether events of this type belong to a criterium folder.
func (t Type) IsCriterium() bool {
	return t == TypeIndividualCriterium || t == TypePairCriterium
}

type Format string

const (
	FormatSingle Format = "single"
	FormatPair   Format = "pair"
	FormatTrio   Format = "trio"
	FormatOther  Format = "other"
)

// Participant is one angler (or pair) registered for a single event.
type Participant struct {
	ID                int
	Name              string
	Club              string
	Class             string
	DrawPosition      *int
	Weights           []*int
	WeighingConfirmed bool
	TotalWeight       int
	Points            int
}

// HasDrawPosition reports whether a usable draw position is assigned.
func (p Participant) HasDrawPosition() bool {
	return p.DrawPosition != nil && *p.DrawPosition > 0
}

// Position returns the draw position or 0 when none is assigned.
func (p Participant) Position() int {
	if p.DrawPosition == nil {
		return 0
	}
	return *p.DrawPosition
}

// Event is a finalized result set for one competition day.
type Event struct {
	ID           string
	Name         string
	Date         time.Time
	Location     string
	Type         Type
	Format       Format
	FolderID     string
	SectorSizes  SectorSizes
	Participants []Participant
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SameSlot reports whether two events collide on name, date and location.
func (e Event) SameSlot(other Event) bool {
	return e.Name == other.Name &&
		e.Location == other.Location &&
		sameDay(e.Date, other.Date)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Clone deep-copies the event so callers can mutate it freely.
func (e Event) Clone() Event {
	copied := e
	copied.SectorSizes = slices.Clone(e.SectorSizes)
	copied.Participants = make([]Participant, len(e.Participants))
	for i, p := range e.Participants {
		copied.Participants[i] = p.Clone()
	}
	return copied
}

func (p Participant) Clone() Participant {
	copied := p
	if p.DrawPosition != nil {
		pos := *p.DrawPosition
		copied.DrawPosition = &pos
	}
	copied.Weights = make([]*int, len(p.Weights))
	for i, w := range p.Weights {
		if w != nil {
			v := *w
			copied.Weights[i] = &v
		}
	}
	return copied
}
