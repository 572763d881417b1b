package httpapi

import (
	"fmt"
	"time"

	"github.com/riskibarqy/fishing-league/internal/domain/competition"
	"github.com/riskibarqy/fishing-league/internal/domain/criterium"
	"github.com/riskibarqy/fishing-league/internal/domain/weighing"
	"github.com/riskibarqy/fishing-league/internal/usecase"
)

type participantRequest struct {
	ID                int    `json:"id"`
	Name              string `json:"name" validate:"max=200"`
	Club              string `json:"club" validate:"max=200"`
	Class             string `json:"klasse" validate:"max=50"`
	DrawPosition      *int   `json:"drawPosition" validate:"omitempty,gte=1"`
	Weights           []*int `json:"weights" validate:"dive,omitempty,gte=0"`
	WeighingConfirmed bool   `json:"weighingConfirmed"`
}

type eventDraftRequest struct {
	Name         string               `json:"name" validate:"max=200"`
	Date         string               `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Location     string               `json:"location" validate:"max=200"`
	Type         string               `json:"type" validate:"required,oneof=open members individual-criterium pair-criterium"`
	Format       string               `json:"format" validate:"omitempty,oneof=single pair trio other"`
	FolderID     string               `json:"folderId"`
	SectorSizes  []int                `json:"sectorSizes" validate:"required,min=1,dive,gte=1"`
	Participants []participantRequest `json:"participants" validate:"dive"`
}

type saveEventRequest struct {
	eventDraftRequest
	Overwrite bool `json:"overwrite"`
}

type assignFolderRequest struct {
	FolderID string `json:"folderId"`
}

type createFolderRequest struct {
	Name string `json:"name" validate:"required,max=200"`
	Type string `json:"type" validate:"required,oneof=individual-criterium pair-criterium"`
}

type renameFolderRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type standingsBatchRequest struct {
	FolderIDs     []string `json:"folderIds" validate:"required,min=1,max=100,dive,required"`
	PenaltyPoints *int     `json:"penaltyPoints" validate:"omitempty,gte=0"`
	ExcludeCount  *int     `json:"excludeCount" validate:"omitempty,gte=0"`
}

type createWeighingLinkRequest struct {
	Sectors    []string `json:"sectors" validate:"required,min=1,dive,required"`
	Email      string   `json:"email" validate:"required,email"`
	TTLMinutes int      `json:"ttlMinutes" validate:"omitempty,gte=1"`
}

func (r eventDraftRequest) toDraft() (usecase.Draft, error) {
	var date time.Time
	if r.Date != "" {
		parsed, err := time.Parse(time.DateOnly, r.Date)
		if err != nil {
			return usecase.Draft{}, fmt.Errorf("%w: invalid date %q", usecase.ErrInvalidInput, r.Date)
		}
		date = parsed
	}

	taken := make(map[int]struct{}, len(r.Participants))
	for _, p := range r.Participants {
		if p.ID != 0 {
			taken[p.ID] = struct{}{}
		}
	}

	// Omitted ids take the lowest free number so they never collide with explicit ones.
	nextID := 1
	participants := make([]competition.Participant, 0, len(r.Participants))
	for _, p := range r.Participants {
		id := p.ID
		if id == 0 {
			for {
				if _, ok := taken[nextID]; !ok {
					break
				}
				nextID++
			}
			id = nextID
			taken[id] = struct{}{}
		}
		participants = append(participants, competition.Participant{
			ID:                id,
			Name:              p.Name,
			Club:              p.Club,
			Class:             p.Class,
			DrawPosition:      p.DrawPosition,
			Weights:           p.Weights,
			WeighingConfirmed: p.WeighingConfirmed,
		})
	}

	return usecase.Draft{
		Name:         r.Name,
		Date:         date,
		Location:     r.Location,
		Type:         competition.Type(r.Type),
		Format:       competition.Format(r.Format),
		FolderID:     r.FolderID,
		SectorSizes:  competition.SectorSizes(r.SectorSizes),
		Participants: participants,
	}, nil
}

type participantDTO struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	Club              string `json:"club,omitempty"`
	Class             string `json:"klasse,omitempty"`
	DrawPosition      *int   `json:"drawPosition,omitempty"`
	Sector            string `json:"sector,omitempty"`
	Weights           []*int `json:"weights"`
	WeighingConfirmed bool   `json:"weighingConfirmed"`
	TotalWeight       int    `json:"totalWeight"`
	Points            int    `json:"points"`
}

type eventDTO struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Date         string           `json:"date"`
	Location     string           `json:"location,omitempty"`
	Type         string           `json:"type"`
	Format       string           `json:"format"`
	FolderID     string           `json:"folderId,omitempty"`
	SectorSizes  []int            `json:"sectorSizes"`
	Participants []participantDTO `json:"participants"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

type eventSummaryDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Date         string `json:"date"`
	Location     string `json:"location,omitempty"`
	Type         string `json:"type"`
	FolderID     string `json:"folderId,omitempty"`
	Participants int    `json:"participants"`
}

type placingDTO struct {
	Place       int            `json:"place"`
	Sector      string         `json:"sector,omitempty"`
	Participant participantDTO `json:"participant"`
}

type resultDTO struct {
	Participants []participantDTO `json:"participants"`
	Placings     []placingDTO     `json:"placings"`
}

type eventResultsDTO struct {
	Event   eventDTO  `json:"event"`
	Results resultDTO `json:"results"`
}

type folderDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type standingsParamsDTO struct {
	PenaltyPoints int `json:"penaltyPoints"`
	ExcludeCount  int `json:"excludeCount"`
}

type folderStandingsDTO struct {
	Folder    folderDTO           `json:"folder"`
	Params    standingsParamsDTO  `json:"params"`
	Standings criterium.Standings `json:"standings"`
}

type standingsBatchItemDTO struct {
	FolderID string              `json:"folderId"`
	Result   *folderStandingsDTO `json:"result,omitempty"`
	Error    *googleErrorItem    `json:"error,omitempty"`
}

type weighingLinkDTO struct {
	ID        string    `json:"id"`
	EventID   string    `json:"eventId"`
	Sectors   []string  `json:"sectors"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

type weighingViewDTO struct {
	Link         weighingLinkDTO  `json:"link"`
	Event        eventSummaryDTO  `json:"event"`
	Participants []participantDTO `json:"participants"`
}

func participantToDTO(p competition.Participant, sizes competition.SectorSizes) participantDTO {
	sector, _ := competition.ResolveSector(p.Position(), sizes)
	weights := p.Weights
	if weights == nil {
		weights = []*int{}
	}
	return participantDTO{
		ID:                p.ID,
		Name:              p.Name,
		Club:              p.Club,
		Class:             p.Class,
		DrawPosition:      p.DrawPosition,
		Sector:            sector,
		Weights:           weights,
		WeighingConfirmed: p.WeighingConfirmed,
		TotalWeight:       p.TotalWeight,
		Points:            p.Points,
	}
}

func participantsToDTO(items []competition.Participant, sizes competition.SectorSizes) []participantDTO {
	out := make([]participantDTO, 0, len(items))
	for _, p := range items {
		out = append(out, participantToDTO(p, sizes))
	}
	return out
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}

func eventToDTO(e competition.Event) eventDTO {
	return eventDTO{
		ID:           e.ID,
		Name:         e.Name,
		Date:         formatDate(e.Date),
		Location:     e.Location,
		Type:         string(e.Type),
		Format:       string(e.Format),
		FolderID:     e.FolderID,
		SectorSizes:  []int(e.SectorSizes),
		Participants: participantsToDTO(e.Participants, e.SectorSizes),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func eventToSummaryDTO(e competition.Event) eventSummaryDTO {
	return eventSummaryDTO{
		ID:           e.ID,
		Name:         e.Name,
		Date:         formatDate(e.Date),
		Location:     e.Location,
		Type:         string(e.Type),
		FolderID:     e.FolderID,
		Participants: len(e.Participants),
	}
}

func eventsToSummaryDTO(events []competition.Event) []eventSummaryDTO {
	out := make([]eventSummaryDTO, 0, len(events))
	for _, e := range events {
		out = append(out, eventToSummaryDTO(e))
	}
	return out
}

func resultToDTO(result competition.Result, sizes competition.SectorSizes) resultDTO {
	placings := make([]placingDTO, 0, len(result.Placings))
	for _, pl := range result.Placings {
		placings = append(placings, placingDTO{
			Place:       pl.Place,
			Sector:      pl.Sector,
			Participant: participantToDTO(pl.Participant, sizes),
		})
	}
	return resultDTO{
		Participants: participantsToDTO(result.Participants, sizes),
		Placings:     placings,
	}
}

func folderToDTO(f criterium.Folder) folderDTO {
	return folderDTO{
		ID:        f.ID,
		Name:      f.Name,
		Type:      string(f.Type),
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func folderStandingsToDTO(fs usecase.FolderStandings) folderStandingsDTO {
	standings := fs.Standings
	if standings.EventLabels == nil {
		standings.EventLabels = []string{}
	}
	if standings.Participants == nil {
		standings.Participants = []criterium.Row{}
	}
	return folderStandingsDTO{
		Folder: folderToDTO(fs.Folder),
		Params: standingsParamsDTO{
			PenaltyPoints: fs.Params.PenaltyPoints,
			ExcludeCount:  fs.Params.ExcludeCount,
		},
		Standings: standings,
	}
}

func weighingLinkToDTO(l weighing.AccessLink) weighingLinkDTO {
	return weighingLinkDTO{
		ID:        l.ID,
		EventID:   l.EventID,
		Sectors:   l.Sectors,
		Email:     l.Email,
		ExpiresAt: l.ExpiresAt,
		CreatedAt: l.CreatedAt,
	}
}
