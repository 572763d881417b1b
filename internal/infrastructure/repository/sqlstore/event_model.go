package sqlstore

import (
	"database/sql"
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/fishing-league/internal/domain/competition"
)

type eventTableModel struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	EventDate    string         `db:"event_date"`
	Location     string         `db:"location"`
	EventType    string         `db:"event_type"`
	Format       string         `db:"format"`
	FolderID     sql.NullString `db:"folder_id"`
	SectorSizes  string         `db:"sector_sizes"`
	Participants string         `db:"participants"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

// participantRecord is the JSON shape of one row in events.participants.
type participantRecord struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	Club              string `json:"club,omitempty"`
	Class             string `json:"class,omitempty"`
	DrawPosition      *int   `json:"drawPosition"`
	Weights           []*int `json:"weights"`
	WeighingConfirmed bool   `json:"weighingConfirmed"`
	TotalWeight       int    `json:"totalWeight"`
	Points            int    `json:"points"`
}

func eventDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

func toEventModel(event competition.Event) (eventTableModel, error) {
	sizes, err := encodeJSON([]int(event.SectorSizes))
	if err != nil {
		return eventTableModel{}, err
	}

	records := make([]participantRecord, 0, len(event.Participants))
	for _, p := range event.Participants {
		records = append(records, participantRecord{
			ID:                p.ID,
			Name:              p.Name,
			Club:              p.Club,
			Class:             p.Class,
			DrawPosition:      p.DrawPosition,
			Weights:           p.Weights,
			WeighingConfirmed: p.WeighingConfirmed,
			TotalWeight:       p.TotalWeight,
			Points:            p.Points,
		})
	}
	participants, err := encodeJSON(records)
	if err != nil {
		return eventTableModel{}, err
	}

	return eventTableModel{
		ID:           event.ID,
		Name:         event.Name,
		EventDate:    eventDate(event.Date),
		Location:     event.Location,
		EventType:    string(event.Type),
		Format:       string(event.Format),
		FolderID:     nullString(event.FolderID),
		SectorSizes:  sizes,
		Participants: participants,
		CreatedAt:    event.CreatedAt.UTC(),
		UpdatedAt:    event.UpdatedAt.UTC(),
	}, nil
}

func (m eventTableModel) toDomain() (competition.Event, error) {
	date, err := time.Parse(time.DateOnly, m.EventDate)
	if err != nil {
		return competition.Event{}, crerr.Wrapf(err, "parse date of event %s", m.ID)
	}

	var sizes []int
	if err := decodeJSON(m.SectorSizes, &sizes); err != nil {
		return competition.Event{}, crerr.Wrapf(err, "sector sizes of event %s", m.ID)
	}
	var records []participantRecord
	if err := decodeJSON(m.Participants, &records); err != nil {
		return competition.Event{}, crerr.Wrapf(err, "participants of event %s", m.ID)
	}

	participants := make([]competition.Participant, 0, len(records))
	for _, r := range records {
		participants = append(participants, competition.Participant{
			ID:                r.ID,
			Name:              r.Name,
			Club:              r.Club,
			Class:             r.Class,
			DrawPosition:      r.DrawPosition,
			Weights:           r.Weights,
			WeighingConfirmed: r.WeighingConfirmed,
			TotalWeight:       r.TotalWeight,
			Points:            r.Points,
		})
	}

	return competition.Event{
		ID:           m.ID,
		Name:         m.Name,
		Date:         date,
		Location:     m.Location,
		Type:         competition.Type(m.EventType),
		Format:       competition.Format(m.Format),
		FolderID:     m.FolderID.String,
		SectorSizes:  competition.SectorSizes(sizes),
		Participants: participants,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}, nil
}
