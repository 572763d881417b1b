package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/fishing-league/internal/domain/competition"
	"github.com/riskibarqy/fishing-league/internal/domain/criterium"
	"github.com/riskibarqy/fishing-league/internal/platform/logging"
)

const (
	defaultStandingsWorkers = 4
	maxStandingsWorkers     = 32
	maxBatchFolders         = 100
)

type StandingsConfig struct {
	Workers  int
	Defaults criterium.Params
}

// StandingsOptions overrides the configured parameters; nil fields keep the default.
type StandingsOptions struct {
	PenaltyPoints *int
	ExcludeCount  *int
}

type FolderStandings struct {
	Folder    criterium.Folder
	Params    criterium.Params
	Standings criterium.Standings
}

// BatchItem carries either standings or the error that stopped one folder.
type BatchItem struct {
	FolderID string
	Result   FolderStandings
	Err      error
}

type StandingsService struct {
	folderRepo criterium.Repository
	eventRepo  competition.Repository
	cfg        StandingsConfig
	logger     *logging.Logger
}

func NewStandingsService(
	folderRepo criterium.Repository,
	eventRepo competition.Repository,
	cfg StandingsConfig,
	logger *logging.Logger,
) *StandingsService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultStandingsWorkers
	}
	if cfg.Workers > maxStandingsWorkers {
		cfg.Workers = maxStandingsWorkers
	}
	return &StandingsService{
		folderRepo: folderRepo,
		eventRepo:  eventRepo,
		cfg:        cfg,
		logger:     logger,
	}
}

func (s *StandingsService) Params(opts StandingsOptions) criterium.Params {
	params := s.cfg.Defaults
	if opts.PenaltyPoints != nil {
		params.PenaltyPoints = *opts.PenaltyPoints
	}
	if opts.ExcludeCount != nil {
		params.ExcludeCount = *opts.ExcludeCount
	}
	return params
}

func (s *StandingsService) Compute(ctx context.Context, folderID string, opts StandingsOptions) (FolderStandings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Compute")
	defer span.End()

	params := s.Params(opts)
	if err := params.Validate(); err != nil {
		return FolderStandings{}, invalid(err)
	}

	folderID = strings.TrimSpace(folderID)
	if folderID == "" {
		return FolderStandings{}, fmt.Errorf("%w: folder id is required", ErrInvalidInput)
	}
	folder, exists, err := s.folderRepo.GetByID(ctx, folderID)
	if err != nil {
		return FolderStandings{}, fmt.Errorf("get folder: %w", err)
	}
	if !exists {
		return FolderStandings{}, fmt.Errorf("%w: folder=%s", ErrNotFound, folderID)
	}

	events, err := s.eventRepo.ListByFolder(ctx, folder.ID)
	if err != nil {
		recordSpanError(span, err)
		return FolderStandings{}, fmt.Errorf("list folder events: %w", err)
	}
	criterium.SortBySequence(events)

	inputs := make([]criterium.EventResult, 0, len(events))
	for _, event := range events {
		inputs = append(inputs, criterium.FromEvent(event))
	}

	standings, err := criterium.Aggregate(inputs, params)
	if err != nil {
		return FolderStandings{}, invalid(err)
	}

	s.logger.DebugContext(ctx, "standings computed",
		"folder_id", folder.ID,
		"events", len(events),
		"participants", len(standings.Participants),
	)
	return FolderStandings{Folder: folder, Params: params, Standings: standings}, nil
}

// ComputeMany computes several folders concurrently. Items keep the input order
// and a failing folder does not abort the others.
func (s *StandingsService) ComputeMany(ctx context.Context, folderIDs []string, opts StandingsOptions) ([]BatchItem, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.ComputeMany")
	defer span.End()

	if len(folderIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one folder id is required", ErrInvalidInput)
	}
	if len(folderIDs) > maxBatchFolders {
		return nil, fmt.Errorf("%w: at most %d folders per batch, got %d", ErrInvalidInput, maxBatchFolders, len(folderIDs))
	}
	if err := s.Params(opts).Validate(); err != nil {
		return nil, invalid(err)
	}

	workerCount := min(s.cfg.Workers, len(folderIDs))
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	items := make([]BatchItem, len(folderIDs))
	var workers sync.WaitGroup
	for i, folderID := range folderIDs {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			result, err := s.Compute(ctx, folderID, opts)
			items[i] = BatchItem{FolderID: folderID, Result: result, Err: err}
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	workers.Wait()

	failed := 0
	for _, item := range items {
		if item.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		s.logger.WarnContext(ctx, "batch standings finished with failures",
			"folders", len(folderIDs),
			"failed", failed,
		)
	}
	return items, nil
}
