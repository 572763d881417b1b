package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/fishing-league/internal/domain/competition"
	"github.com/riskibarqy/fishing-league/internal/domain/criterium"
	"github.com/riskibarqy/fishing-league/internal/infrastructure/repository/memory"
	competitionmock "github.com/riskibarqy/fishing-league/internal/mocks/domain/competition"
	"github.com/riskibarqy/fishing-league/internal/platform/logging"
)

var eventDay = time.Date(2024, 4, 13, 0, 0, 0, 0, time.UTC)

func newEventServiceForTest(folders ...criterium.Folder) (*EventService, *memory.EventRepository) {
	eventRepo := memory.NewEventRepository()
	service := NewEventService(
		eventRepo,
		memory.NewFolderRepository(folders...),
		memory.NewAccessLinkRepository(),
		&sequenceIDGenerator{prefix: "evt"},
		logging.NewNop(),
	)
	service.now = func() time.Time { return eventDay.Add(18 * time.Hour) }
	return service, eventRepo
}

func openDraft() Draft {
	return Draft{
		Name:        "Voorjaarswedstrijd",
		Date:        eventDay,
		Location:    "Kanaal",
		Type:        competition.TypeOpen,
		SectorSizes: competition.SectorSizes{2, 2},
		Participants: []competition.Participant{
			entrant(1, "Jan", 1, 800),
			entrant(2, "Piet", 2, 1200),
			entrant(3, "Kees", 3, 300),
			entrant(4, "Henk", 4, 0),
		},
	}
}

func TestEventService_SaveScoresAndDefaultsFormat(t *testing.T) {
	t.Parallel()

	service, repo := newEventServiceForTest()
	ctx := context.Background()

	saved, err := service.Save(ctx, SaveEventInput{Draft: openDraft()})
	if err != nil {
		t.Fatalf("save event: %v", err)
	}
	if saved.ID != "evt-1" {
		t.Fatalf("unexpected event id: %s", saved.ID)
	}
	if saved.Format != competition.FormatSingle {
		t.Fatalf("expected default format single, got %s", saved.Format)
	}

	want := map[string]int{"Jan": 2, "Piet": 1, "Kees": 1, "Henk": 2}
	for _, p := range saved.Participants {
		if p.Points != want[p.Name] {
			t.Fatalf("unexpected points for %s: got=%d want=%d", p.Name, p.Points, want[p.Name])
		}
	}

	stored, ok, _ := repo.GetByID(ctx, saved.ID)
	if !ok || len(stored.Participants) != 4 {
		t.Fatalf("event was not persisted: ok=%t", ok)
	}
}

func TestEventService_SaveDropsBlankNames(t *testing.T) {
	t.Parallel()

	service, _ := newEventServiceForTest()
	draft := openDraft()
	draft.Participants = append(draft.Participants, competition.Participant{ID: 5, Name: "   "})

	saved, err := service.Save(context.Background(), SaveEventInput{Draft: draft})
	if err != nil {
		t.Fatalf("save event: %v", err)
	}
	if len(saved.Participants) != 4 {
		t.Fatalf("expected blank participant to be dropped, got %d participants", len(saved.Participants))
	}
}

func TestEventService_SaveConflictAndOverwrite(t *testing.T) {
	t.Parallel()

	service, repo := newEventServiceForTest()
	ctx := context.Background()

	first, err := service.Save(ctx, SaveEventInput{Draft: openDraft()})
	if err != nil {
		t.Fatalf("first save: %v", err)
	}

	again := openDraft()
	again.Date = eventDay.Add(7 * time.Hour)
	if _, err := service.Save(ctx, SaveEventInput{Draft: again}); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	again.Participants[3].Weights = []*int{ptr(5000)}
	second, err := service.Save(ctx, SaveEventInput{Draft: again, Overwrite: true})
	if err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if second.ID != first.ID || !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("overwrite must keep identity: first=%s second=%s", first.ID, second.ID)
	}

	all, _ := repo.List(ctx)
	if len(all) != 1 {
		t.Fatalf("expected one stored event, got %d", len(all))
	}
}

func TestEventService_SaveRejectsInvalidDrafts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Draft)
		target error
	}{
		{
			name:   "missing name",
			mutate: func(d *Draft) { d.Name = " " },
			target: ErrInvalidInput,
		},
		{
			name:   "unknown type",
			mutate: func(d *Draft) { d.Type = "friendly" },
			target: competition.ErrUnknownType,
		},
		{
			name:   "bad sector sizes",
			mutate: func(d *Draft) { d.SectorSizes = competition.SectorSizes{2, 0} },
			target: competition.ErrInvalidSectorSizes,
		},
		{
			name:   "duplicate draw",
			mutate: func(d *Draft) { d.Participants[1].DrawPosition = ptr(1) },
			target: competition.ErrDuplicateDrawPosition,
		},
		{
			name:   "missing draw",
			mutate: func(d *Draft) { d.Participants[2].DrawPosition = nil },
			target: competition.ErrMissingDrawPosition,
		},
		{
			name:   "unconfirmed weighing",
			mutate: func(d *Draft) { d.Participants[0].WeighingConfirmed = false },
			target: competition.ErrUnconfirmedWeighing,
		},
		{
			name:   "duplicate name",
			mutate: func(d *Draft) { d.Participants[1].Name = " jan " },
			target: competition.ErrDuplicateName,
		},
		{
			name:   "duplicate participant id",
			mutate: func(d *Draft) { d.Participants[1].ID = d.Participants[0].ID },
			target: competition.ErrDuplicateID,
		},
		{
			name: "draw position past last sector",
			mutate: func(d *Draft) {
				d.Participants = append(d.Participants, entrant(5, "Out", 99, 10))
			},
			target: competition.ErrDrawOutOfRange,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			service, _ := newEventServiceForTest()
			draft := openDraft()
			tc.mutate(&draft)

			_, err := service.Save(context.Background(), SaveEventInput{Draft: draft})
			if !errors.Is(err, tc.target) {
				t.Fatalf("expected %v, got %v", tc.target, err)
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected invalid input classification, got %v", err)
			}
		})
	}
}

func TestEventService_SaveChecksFolder(t *testing.T) {
	t.Parallel()

	pairs := criterium.Folder{ID: "f-pairs", Name: "Koppels", Type: competition.TypePairCriterium}
	service, _ := newEventServiceForTest(pairs)
	ctx := context.Background()

	draft := openDraft()
	draft.FolderID = pairs.ID
	if _, err := service.Save(ctx, SaveEventInput{Draft: draft}); !errors.Is(err, criterium.ErrInvalidFolderType) {
		t.Fatalf("open event in folder should fail, got %v", err)
	}

	draft.Type = competition.TypeIndividualCriterium
	if _, err := service.Save(ctx, SaveEventInput{Draft: draft}); !errors.Is(err, criterium.ErrInvalidFolderType) {
		t.Fatalf("type mismatch should fail, got %v", err)
	}

	draft.FolderID = "missing"
	if _, err := service.Save(ctx, SaveEventInput{Draft: draft}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown folder should be not found, got %v", err)
	}

	draft.Type = competition.TypePairCriterium
	draft.FolderID = pairs.ID
	saved, err := service.Save(ctx, SaveEventInput{Draft: draft})
	if err != nil {
		t.Fatalf("save into matching folder: %v", err)
	}
	if saved.FolderID != pairs.ID {
		t.Fatalf("unexpected folder id: %s", saved.FolderID)
	}
}

func TestEventService_PreviewAllowsUnconfirmed(t *testing.T) {
	t.Parallel()

	service, _ := newEventServiceForTest()
	draft := openDraft()
	for i := range draft.Participants {
		draft.Participants[i].WeighingConfirmed = false
	}

	result, err := service.Preview(context.Background(), draft)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if len(result.Placings) != 4 {
		t.Fatalf("unexpected placings: %d", len(result.Placings))
	}
	if result.Placings[0].Participant.Name != "Piet" {
		t.Fatalf("expected heaviest sector winner first, got %s", result.Placings[0].Participant.Name)
	}
}

func TestEventService_SaveRejectsSharedIDBeforeScoring(t *testing.T) {
	t.Parallel()

	service, repo := newEventServiceForTest()
	draft := openDraft()
	draft.Participants = []competition.Participant{
		entrant(7, "Jan", 1, 800),
		entrant(7, "Piet", 2, 1200),
	}

	_, err := service.Save(context.Background(), SaveEventInput{Draft: draft})
	if !errors.Is(err, competition.ErrDuplicateID) || !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid duplicate id, got %v", err)
	}
	events, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected nothing stored, got %d events", len(events))
	}
}

func TestEventService_PreviewRejectsDuplicateIDs(t *testing.T) {
	t.Parallel()

	service, _ := newEventServiceForTest()
	draft := openDraft()
	draft.Participants[3].ID = 1

	_, err := service.Preview(context.Background(), draft)
	if !errors.Is(err, competition.ErrDuplicateID) || !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid duplicate id, got %v", err)
	}
}

func TestEventService_PreviewKeepsOutOfRangeUnranked(t *testing.T) {
	t.Parallel()

	service, _ := newEventServiceForTest()
	draft := openDraft()
	draft.Participants = append(draft.Participants, entrant(5, "Out", 99, 10))

	result, err := service.Preview(context.Background(), draft)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	for _, p := range result.Participants {
		if p.Name == "Out" && p.Points != 0 {
			t.Fatalf("expected Out to stay unranked, got %d points", p.Points)
		}
	}
}

func TestEventService_ListHidesFiledCriteriumEvents(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	eventRepo := memory.NewEventRepository(
		competition.Event{ID: "e1", Name: "W1", Type: competition.TypeIndividualCriterium, FolderID: "f1", Date: eventDay},
		competition.Event{ID: "e2", Name: "Los", Type: competition.TypeIndividualCriterium, Date: eventDay},
		competition.Event{ID: "e3", Name: "Open", Type: competition.TypeOpen, Date: eventDay},
	)
	service := NewEventService(eventRepo, memory.NewFolderRepository(), nil, &sequenceIDGenerator{prefix: "evt"}, logging.NewNop())

	got, err := service.List(ctx, competition.TypeIndividualCriterium)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(got) != 1 || got[0].ID != "e2" {
		t.Fatalf("expected only unfiled criterium event, got %+v", got)
	}

	all, err := service.List(ctx, "")
	if err != nil || len(all) != 3 {
		t.Fatalf("unfiltered list: len=%d err=%v", len(all), err)
	}

	if _, err := service.List(ctx, "friendly"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for unknown type, got %v", err)
	}
}

func TestEventService_ListCriteriumUsesUnfiledQueryUsingMockery(t *testing.T) {
	t.Parallel()

	repo := competitionmock.NewRepository(t)
	repo.On("ListUnfiled", mock.Anything, competition.TypePairCriterium).
		Return([]competition.Event{{ID: "e9", Type: competition.TypePairCriterium}}, nil).
		Once()
	service := NewEventService(repo, memory.NewFolderRepository(), nil, &sequenceIDGenerator{prefix: "evt"}, logging.NewNop())

	got, err := service.List(context.Background(), competition.TypePairCriterium)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(got) != 1 || got[0].ID != "e9" {
		t.Fatalf("unexpected events: %+v", got)
	}
}

func TestEventService_GetNotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	eventRepo := competitionmock.NewRepository(t)
	eventRepo.On("GetByID", mock.Anything, "missing").Return(competition.Event{}, false, nil).Once()

	service := NewEventService(eventRepo, nil, nil, &sequenceIDGenerator{prefix: "evt"}, logging.NewNop())
	if _, err := service.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestEventService_SaveRepositoryFailureUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backendErr := errors.New("connection reset")
	eventRepo := competitionmock.NewRepository(t)
	eventRepo.On("FindBySlot", mock.Anything, "Voorjaarswedstrijd", eventDay, "Kanaal").
		Return(competition.Event{}, false, nil).
		Once()
	eventRepo.On("Upsert", mock.Anything, mock.AnythingOfType("competition.Event")).Return(backendErr).Once()

	service := NewEventService(eventRepo, nil, nil, &sequenceIDGenerator{prefix: "evt"}, logging.NewNop())
	if _, err := service.Save(ctx, SaveEventInput{Draft: openDraft()}); !errors.Is(err, backendErr) {
		t.Fatalf("expected wrapped backend error, got %v", err)
	}
}

func TestEventService_AssignToFolderAndDelete(t *testing.T) {
	t.Parallel()

	folder := criterium.Folder{ID: "f1", Name: "Winter", Type: competition.TypeIndividualCriterium}
	service, repo := newEventServiceForTest(folder)
	ctx := context.Background()

	draft := openDraft()
	draft.Type = competition.TypeIndividualCriterium
	saved, err := service.Save(ctx, SaveEventInput{Draft: draft})
	if err != nil {
		t.Fatalf("save event: %v", err)
	}

	moved, err := service.AssignToFolder(ctx, saved.ID, folder.ID)
	if err != nil {
		t.Fatalf("assign to folder: %v", err)
	}
	if moved.FolderID != folder.ID {
		t.Fatalf("unexpected folder: %s", moved.FolderID)
	}
	inFolder, _ := repo.ListByFolder(ctx, folder.ID)
	if len(inFolder) != 1 {
		t.Fatalf("expected event in folder, got %d", len(inFolder))
	}

	detached, err := service.AssignToFolder(ctx, saved.ID, "")
	if err != nil || detached.FolderID != "" {
		t.Fatalf("detach: folder=%q err=%v", detached.FolderID, err)
	}

	if err := service.Delete(ctx, saved.ID); err != nil {
		t.Fatalf("delete event: %v", err)
	}
	if _, err := service.Get(ctx, saved.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected deleted event to be gone, got %v", err)
	}
}
