package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fishing-league/internal/domain/competition"
	"github.com/riskibarqy/fishing-league/internal/domain/criterium"
	"github.com/riskibarqy/fishing-league/internal/domain/weighing"
	"github.com/riskibarqy/fishing-league/internal/platform/id"
	"github.com/riskibarqy/fishing-league/internal/platform/logging"
)

// Draft is an event as entered on the results form, before it is saved.
type Draft struct {
	Name         string
	Date         time.Time
	Location     string
	Type         competition.Type
	Format       competition.Format
	FolderID     string
	SectorSizes  competition.SectorSizes
	Participants []competition.Participant
}

type SaveEventInput struct {
	Draft
	// Overwrite replaces an existing event with the same name, date and location.
	Overwrite bool
}

type EventService struct {
	eventRepo  competition.Repository
	folderRepo criterium.Repository
	linkRepo   weighing.Repository
	idGen      id.Generator
	now        func() time.Time
	logger     *logging.Logger
}

func NewEventService(
	eventRepo competition.Repository,
	folderRepo criterium.Repository,
	linkRepo weighing.Repository,
	idGen id.Generator,
	logger *logging.Logger,
) *EventService {
	if logger == nil {
		logger = logging.Default()
	}
	return &EventService{
		eventRepo:  eventRepo,
		folderRepo: folderRepo,
		linkRepo:   linkRepo,
		idGen:      idGen,
		now:        time.Now,
		logger:     logger,
	}
}

// Preview scores an unsaved draft. Unconfirmed weigh-ins are allowed here.
func (s *EventService) Preview(ctx context.Context, draft Draft) (competition.Result, error) {
	_, span := startUsecaseSpan(ctx, "usecase.EventService.Preview")
	defer span.End()

	if err := draft.SectorSizes.Validate(); err != nil {
		return competition.Result{}, invalid(err)
	}
	if err := competition.ValidateParticipantIDs(draft.Participants); err != nil {
		return competition.Result{}, invalid(err)
	}
	if err := competition.ValidateDrawPositions(draft.Participants); err != nil {
		return competition.Result{}, invalid(err)
	}

	return competition.Compute(draft.Participants, draft.SectorSizes), nil
}

func (s *EventService) ValidateDrawPositions(participants []competition.Participant) error {
	return invalid(competition.ValidateDrawPositions(participants))
}

func (s *EventService) Save(ctx context.Context, input SaveEventInput) (competition.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.Save")
	defer span.End()

	event, err := s.prepare(ctx, input.Draft)
	if err != nil {
		recordSpanError(span, err)
		return competition.Event{}, err
	}

	existing, exists, err := s.eventRepo.FindBySlot(ctx, event.Name, event.Date, event.Location)
	if err != nil {
		return competition.Event{}, fmt.Errorf("find event by slot: %w", err)
	}

	now := s.now().UTC()
	if exists {
		if !input.Overwrite {
			return competition.Event{}, fmt.Errorf("%w: event %q on %s at %q already exists",
				ErrConflict, event.Name, event.Date.Format(time.DateOnly), event.Location)
		}
		event.ID = existing.ID
		event.CreatedAt = existing.CreatedAt
	} else {
		eventID, err := s.idGen.NewID()
		if err != nil {
			return competition.Event{}, fmt.Errorf("generate event id: %w", err)
		}
		event.ID = eventID
		event.CreatedAt = now
	}
	event.UpdatedAt = now

	if err := s.eventRepo.Upsert(ctx, event); err != nil {
		recordSpanError(span, err)
		return competition.Event{}, fmt.Errorf("upsert event: %w", err)
	}

	s.logger.InfoContext(ctx, "event saved",
		"event_id", event.ID,
		"type", string(event.Type),
		"participants", len(event.Participants),
		"overwrite", exists,
	)
	return event, nil
}

// prepare validates a draft and returns the scored event without identity fields.
func (s *EventService) prepare(ctx context.Context, draft Draft) (competition.Event, error) {
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return competition.Event{}, fmt.Errorf("%w: event name is required", ErrInvalidInput)
	}
	if draft.Date.IsZero() {
		return competition.Event{}, fmt.Errorf("%w: event date is required", ErrInvalidInput)
	}
	if _, ok := competition.AllTypes[draft.Type]; !ok {
		return competition.Event{}, invalid(fmt.Errorf("%w: %q", competition.ErrUnknownType, draft.Type))
	}
	format := draft.Format
	if format == "" {
		format = competition.FormatSingle
	}
	if err := draft.SectorSizes.Validate(); err != nil {
		return competition.Event{}, invalid(err)
	}

	participants := make([]competition.Participant, 0, len(draft.Participants))
	for _, p := range draft.Participants {
		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" {
			continue
		}
		p.Club = strings.TrimSpace(p.Club)
		p.Class = strings.TrimSpace(p.Class)
		participants = append(participants, p)
	}

	if err := competition.ValidateNames(participants); err != nil {
		return competition.Event{}, invalid(err)
	}
	if err := competition.ValidateParticipantIDs(participants); err != nil {
		return competition.Event{}, invalid(err)
	}
	capacity := draft.SectorSizes.Capacity()
	for _, p := range participants {
		if !p.HasDrawPosition() {
			return competition.Event{}, invalid(fmt.Errorf("%w: %s", competition.ErrMissingDrawPosition, p.Name))
		}
		if *p.DrawPosition > capacity {
			return competition.Event{}, invalid(fmt.Errorf("%w: %s at %d, last position is %d",
				competition.ErrDrawOutOfRange, p.Name, *p.DrawPosition, capacity))
		}
	}
	if err := competition.ValidateDrawPositions(participants); err != nil {
		return competition.Event{}, invalid(err)
	}
	if err := competition.CheckConfirmed(participants); err != nil {
		return competition.Event{}, invalid(err)
	}

	folderID := strings.TrimSpace(draft.FolderID)
	if folderID != "" {
		if err := s.checkFolder(ctx, folderID, draft.Type); err != nil {
			return competition.Event{}, err
		}
	}

	return competition.Event{
		Name:         name,
		Date:         draft.Date,
		Location:     strings.TrimSpace(draft.Location),
		Type:         draft.Type,
		Format:       format,
		FolderID:     folderID,
		SectorSizes:  draft.SectorSizes,
		Participants: competition.Score(participants, draft.SectorSizes),
	}, nil
}

func (s *EventService) checkFolder(ctx context.Context, folderID string, eventType competition.Type) error {
	if !eventType.IsCriterium() {
		return invalid(fmt.Errorf("%w: %s events cannot be filed in a folder", criterium.ErrInvalidFolderType, eventType))
	}

	folder, exists, err := s.folderRepo.GetByID(ctx, folderID)
	if err != nil {
		return fmt.Errorf("get folder: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: folder=%s", ErrNotFound, folderID)
	}
	if folder.Type != eventType {
		return invalid(fmt.Errorf("%w: folder %s holds %s events, got %s",
			criterium.ErrInvalidFolderType, folderID, folder.Type, eventType))
	}
	return nil
}

func (s *EventService) Get(ctx context.Context, eventID string) (competition.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.Get")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return competition.Event{}, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}

	event, exists, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return competition.Event{}, fmt.Errorf("get event: %w", err)
	}
	if !exists {
		return competition.Event{}, fmt.Errorf("%w: event=%s", ErrNotFound, eventID)
	}
	return event, nil
}

// Results recomputes the classification of a saved event.
func (s *EventService) Results(ctx context.Context, eventID string) (competition.Event, competition.Result, error) {
	event, err := s.Get(ctx, eventID)
	if err != nil {
		return competition.Event{}, competition.Result{}, err
	}
	return event, competition.Compute(event.Participants, event.SectorSizes), nil
}

// List returns saved events, optionally filtered by type. Criterium types
// only list events that are not filed in a folder yet.
func (s *EventService) List(ctx context.Context, eventType competition.Type) ([]competition.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.List")
	defer span.End()

	if eventType != "" {
		if _, ok := competition.AllTypes[eventType]; !ok {
			return nil, invalid(fmt.Errorf("%w: %q", competition.ErrUnknownType, eventType))
		}
	}

	if eventType.IsCriterium() {
		events, err := s.eventRepo.ListUnfiled(ctx, eventType)
		if err != nil {
			return nil, fmt.Errorf("list unfiled events: %w", err)
		}
		return events, nil
	}

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if eventType == "" {
		return events, nil
	}

	out := make([]competition.Event, 0, len(events))
	for _, event := range events {
		if event.Type == eventType {
			out = append(out, event)
		}
	}
	return out, nil
}

func (s *EventService) Delete(ctx context.Context, eventID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.Delete")
	defer span.End()

	event, err := s.Get(ctx, eventID)
	if err != nil {
		return err
	}

	if s.linkRepo != nil {
		if err := s.linkRepo.DeleteByEvent(ctx, event.ID); err != nil {
			return fmt.Errorf("delete weighing links: %w", err)
		}
	}
	if err := s.eventRepo.Delete(ctx, event.ID); err != nil {
		recordSpanError(span, err)
		return fmt.Errorf("delete event: %w", err)
	}

	s.logger.InfoContext(ctx, "event deleted", "event_id", event.ID)
	return nil
}

// AssignToFolder moves a criterium event into folderID. An empty folderID
// takes the event out of its folder.
func (s *EventService) AssignToFolder(ctx context.Context, eventID, folderID string) (competition.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.AssignToFolder")
	defer span.End()

	event, err := s.Get(ctx, eventID)
	if err != nil {
		return competition.Event{}, err
	}

	folderID = strings.TrimSpace(folderID)
	if folderID != "" {
		if err := s.checkFolder(ctx, folderID, event.Type); err != nil {
			return competition.Event{}, err
		}
	}
	if event.FolderID == folderID {
		return event, nil
	}

	event.FolderID = folderID
	event.UpdatedAt = s.now().UTC()
	if err := s.eventRepo.Upsert(ctx, event); err != nil {
		return competition.Event{}, fmt.Errorf("upsert event: %w", err)
	}
	return event, nil
}
