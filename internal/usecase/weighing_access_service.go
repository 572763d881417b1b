package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/riskibarqy/fishing-league/internal/domain/competition"
	"github.com/riskibarqy/fishing-league/internal/domain/weighing"
	"github.com/riskibarqy/fishing-league/internal/platform/id"
	"github.com/riskibarqy/fishing-league/internal/platform/logging"
)

const defaultWeighingLinkTTL = 24 * time.Hour

type CreateLinkInput struct {
	EventID string
	Sectors []string
	Email   string
	// TTL falls back to the service default when zero.
	TTL time.Duration
}

// WeighingView is what a weigher sees through an access link.
type WeighingView struct {
	Link         weighing.AccessLink
	Event        competition.Event
	Participants []competition.Participant
}

type WeighingAccessService struct {
	linkRepo   weighing.Repository
	eventRepo  competition.Repository
	idGen      id.Generator
	defaultTTL time.Duration
	now        func() time.Time
	logger     *logging.Logger
}

func NewWeighingAccessService(
	linkRepo weighing.Repository,
	eventRepo competition.Repository,
	idGen id.Generator,
	defaultTTL time.Duration,
	logger *logging.Logger,
) *WeighingAccessService {
	if logger == nil {
		logger = logging.Default()
	}
	if defaultTTL <= 0 {
		defaultTTL = defaultWeighingLinkTTL
	}
	return &WeighingAccessService{
		linkRepo:   linkRepo,
		eventRepo:  eventRepo,
		idGen:      idGen,
		defaultTTL: defaultTTL,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *WeighingAccessService) CreateLink(ctx context.Context, input CreateLinkInput) (weighing.AccessLink, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WeighingAccessService.CreateLink")
	defer span.End()

	eventID := strings.TrimSpace(input.EventID)
	email := strings.TrimSpace(input.Email)
	if eventID == "" {
		return weighing.AccessLink{}, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}
	if email == "" {
		return weighing.AccessLink{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(input.Sectors) == 0 {
		return weighing.AccessLink{}, fmt.Errorf("%w: at least one sector is required", ErrInvalidInput)
	}
	if input.TTL < 0 {
		return weighing.AccessLink{}, fmt.Errorf("%w: ttl must be positive", ErrInvalidInput)
	}

	event, exists, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return weighing.AccessLink{}, fmt.Errorf("get event: %w", err)
	}
	if !exists {
		return weighing.AccessLink{}, fmt.Errorf("%w: event=%s", ErrNotFound, eventID)
	}

	sectors := make([]string, 0, len(input.Sectors))
	for _, raw := range input.Sectors {
		label := strings.ToUpper(strings.TrimSpace(raw))
		if !event.SectorSizes.Contains(label) {
			return weighing.AccessLink{}, fmt.Errorf("%w: sector %q is not part of event %s", ErrInvalidInput, raw, eventID)
		}
		if !slices.Contains(sectors, label) {
			sectors = append(sectors, label)
		}
	}
	slices.Sort(sectors)

	ttl := input.TTL
	if ttl == 0 {
		ttl = s.defaultTTL
	}

	linkID, err := s.idGen.NewID()
	if err != nil {
		return weighing.AccessLink{}, fmt.Errorf("generate link id: %w", err)
	}

	now := s.now().UTC()
	link := weighing.AccessLink{
		ID:        linkID,
		EventID:   event.ID,
		Sectors:   sectors,
		Email:     email,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
	if err := s.linkRepo.Create(ctx, link); err != nil {
		recordSpanError(span, err)
		return weighing.AccessLink{}, fmt.Errorf("create weighing link: %w", err)
	}

	s.logger.InfoContext(ctx, "weighing link created",
		"link_id", link.ID,
		"event_id", link.EventID,
		"sectors", strings.Join(link.Sectors, ","),
		"expires_at", link.ExpiresAt,
	)
	return link, nil
}

// ResolveLink checks the link for email and returns the participants of the covered sectors.
func (s *WeighingAccessService) ResolveLink(ctx context.Context, linkID, email string) (WeighingView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WeighingAccessService.ResolveLink")
	defer span.End()

	linkID = strings.TrimSpace(linkID)
	if linkID == "" {
		return WeighingView{}, fmt.Errorf("%w: link id is required", ErrInvalidInput)
	}

	link, exists, err := s.linkRepo.GetByID(ctx, linkID)
	if err != nil {
		return WeighingView{}, fmt.Errorf("get weighing link: %w", err)
	}
	if !exists {
		return WeighingView{}, fmt.Errorf("%w: link=%s", ErrNotFound, linkID)
	}
	if link.Expired(s.now()) {
		return WeighingView{}, fmt.Errorf("%w: link=%s expired at %s", weighing.ErrAccessExpired, linkID, link.ExpiresAt.Format(time.RFC3339))
	}
	if !link.AllowsEmail(email) {
		s.logger.WarnContext(ctx, "weighing link email mismatch", "link_id", linkID)
		return WeighingView{}, fmt.Errorf("%w: email does not match link", ErrUnauthorized)
	}

	event, exists, err := s.eventRepo.GetByID(ctx, link.EventID)
	if err != nil {
		return WeighingView{}, fmt.Errorf("get event: %w", err)
	}
	if !exists {
		return WeighingView{}, fmt.Errorf("%w: event=%s", ErrNotFound, link.EventID)
	}

	participants := make([]competition.Participant, 0, len(event.Participants))
	for _, p := range event.Participants {
		sector, ok := competition.ResolveSector(p.Position(), event.SectorSizes)
		if ok && link.CoversSector(sector) {
			participants = append(participants, p)
		}
	}

	return WeighingView{Link: link, Event: event, Participants: participants}, nil
}
