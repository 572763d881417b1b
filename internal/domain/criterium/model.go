package criterium

import (
	"errors"
	"time"

	"github.com/riskibarqy/fishing-league/internal/domain/competition"
)

var (
	ErrInvalidParams     = errors.New("invalid standings parameters")
	ErrInvalidFolderType = errors.New("invalid criterium folder type")
)

// Folder groups the events of one criterium season.
type Folder struct {
	ID        string
	Name      string
	Type      competition.Type
	CreatedAt time.Time
	UpdatedAt time.Time
}

func ValidFolderType(t competition.Type) bool {
	return t.IsCriterium()
}

// EventResult is the input slice the aggregator needs from one saved event.
type EventResult struct {
	Label        string
	Participants []EntrantResult
}

type EntrantResult struct {
	Name        string
	Class       string
	Points      int
	TotalWeight int
}

// Params tune the cumulative scoring.
type Params struct {
	PenaltyPoints int
	ExcludeCount  int
}

// Slot is one participant's outcome for one event of the folder.
type Slot struct {
	Points   int  `json:"points"`
	Weight   int  `json:"weight"`
	Present  bool `json:"present"`
	Excluded bool `json:"excluded"`
}

type Row struct {
	Rank        int    `json:"rank"`
	Name        string `json:"name"`
	Class       string `json:"klasse"`
	PerEvent    []Slot `json:"perEvent"`
	TotalPoints int    `json:"totalPoints"`
	TotalWeight int    `json:"totalWeight"`
}

type Standings struct {
	EventLabels  []string `json:"eventLabels"`
	Participants []Row    `json:"participants"`
}

// FromEvent projects a saved event onto the aggregator input.
func FromEvent(event competition.Event) EventResult {
	out := EventResult{
		Label:        event.Name,
		Participants: make([]EntrantResult, 0, len(event.Participants)),
	}
	for _, p := range event.Participants {
		out.Participants = append(out.Participants, EntrantResult{
			Name:        p.Name,
			Class:       p.Class,
			Points:      p.Points,
			TotalWeight: p.TotalWeight,
		})
	}
	return out
}
