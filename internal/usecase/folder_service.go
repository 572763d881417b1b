package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fishing-league/internal/domain/competition"
	"github.com/riskibarqy/fishing-league/internal/domain/criterium"
	"github.com/riskibarqy/fishing-league/internal/platform/id"
	"github.com/riskibarqy/fishing-league/internal/platform/logging"
)

type FolderService struct {
	folderRepo criterium.Repository
	eventRepo  competition.Repository
	idGen      id.Generator
	now        func() time.Time
	logger     *logging.Logger
}

func NewFolderService(
	folderRepo criterium.Repository,
	eventRepo competition.Repository,
	idGen id.Generator,
	logger *logging.Logger,
) *FolderService {
	if logger == nil {
		logger = logging.Default()
	}
	return &FolderService{
		folderRepo: folderRepo,
		eventRepo:  eventRepo,
		idGen:      idGen,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *FolderService) Create(ctx context.Context, name string, folderType competition.Type) (criterium.Folder, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FolderService.Create")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return criterium.Folder{}, fmt.Errorf("%w: folder name is required", ErrInvalidInput)
	}
	if !criterium.ValidFolderType(folderType) {
		return criterium.Folder{}, invalid(fmt.Errorf("%w: %q", criterium.ErrInvalidFolderType, folderType))
	}

	folderID, err := s.idGen.NewID()
	if err != nil {
		return criterium.Folder{}, fmt.Errorf("generate folder id: %w", err)
	}

	now := s.now().UTC()
	folder := criterium.Folder{
		ID:        folderID,
		Name:      name,
		Type:      folderType,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.folderRepo.Create(ctx, folder); err != nil {
		recordSpanError(span, err)
		return criterium.Folder{}, fmt.Errorf("create folder: %w", err)
	}

	s.logger.InfoContext(ctx, "folder created", "folder_id", folder.ID, "type", string(folder.Type))
	return folder, nil
}

func (s *FolderService) Get(ctx context.Context, folderID string) (criterium.Folder, error) {
	folderID = strings.TrimSpace(folderID)
	if folderID == "" {
		return criterium.Folder{}, fmt.Errorf("%w: folder id is required", ErrInvalidInput)
	}

	folder, exists, err := s.folderRepo.GetByID(ctx, folderID)
	if err != nil {
		return criterium.Folder{}, fmt.Errorf("get folder: %w", err)
	}
	if !exists {
		return criterium.Folder{}, fmt.Errorf("%w: folder=%s", ErrNotFound, folderID)
	}
	return folder, nil
}

// List returns folders of one criterium type, or all folders when folderType is empty.
func (s *FolderService) List(ctx context.Context, folderType competition.Type) ([]criterium.Folder, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FolderService.List")
	defer span.End()

	if folderType != "" && !criterium.ValidFolderType(folderType) {
		return nil, invalid(fmt.Errorf("%w: %q", criterium.ErrInvalidFolderType, folderType))
	}

	folders, err := s.folderRepo.ListByType(ctx, folderType)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	return folders, nil
}

func (s *FolderService) Rename(ctx context.Context, folderID, name string) (criterium.Folder, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FolderService.Rename")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return criterium.Folder{}, fmt.Errorf("%w: folder name is required", ErrInvalidInput)
	}

	folder, err := s.Get(ctx, folderID)
	if err != nil {
		return criterium.Folder{}, err
	}
	if folder.Name == name {
		return folder, nil
	}

	folder.Name = name
	folder.UpdatedAt = s.now().UTC()
	if err := s.folderRepo.Update(ctx, folder); err != nil {
		return criterium.Folder{}, fmt.Errorf("update folder: %w", err)
	}
	return folder, nil
}

// Delete removes the folder. Its events stay saved and become unfiled.
func (s *FolderService) Delete(ctx context.Context, folderID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FolderService.Delete")
	defer span.End()

	folder, err := s.Get(ctx, folderID)
	if err != nil {
		return err
	}

	if err := s.eventRepo.DetachFolder(ctx, folder.ID); err != nil {
		recordSpanError(span, err)
		return fmt.Errorf("detach folder events: %w", err)
	}
	if err := s.folderRepo.Delete(ctx, folder.ID); err != nil {
		recordSpanError(span, err)
		return fmt.Errorf("delete folder: %w", err)
	}

	s.logger.InfoContext(ctx, "folder deleted", "folder_id", folder.ID)
	return nil
}

// ListEvents returns the folder's events in W<n> order.
func (s *FolderService) ListEvents(ctx context.Context, folderID string) ([]competition.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FolderService.ListEvents")
	defer span.End()

	folder, err := s.Get(ctx, folderID)
	if err != nil {
		return nil, err
	}

	events, err := s.eventRepo.ListByFolder(ctx, folder.ID)
	if err != nil {
		return nil, fmt.Errorf("list folder events: %w", err)
	}
	criterium.SortBySequence(events)
	return events, nil
}

func (s *FolderService) NextEventName(ctx context.Context, folderID string) (string, error) {
	events, err := s.ListEvents(ctx, folderID)
	if err != nil {
		return "", err
	}
	return criterium.NextSequenceName(events), nil
}
