package memory

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/fishing-league/internal/domain/competition"
)

func TestEventRepository_ReturnsCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pos := 1
	weight := 400
	repo := NewEventRepository(competition.Event{
		ID:          "evt-1",
		Name:        "Voorjaar",
		SectorSizes: competition.SectorSizes{2},
		Participants: []competition.Participant{
			{ID: 1, Name: "A", DrawPosition: &pos, Weights: []*int{&weight}},
		},
	})

	got, ok, err := repo.GetByID(ctx, "evt-1")
	if err != nil || !ok {
		t.Fatalf("get event: ok=%t err=%v", ok, err)
	}
	*got.Participants[0].Weights[0] = 1
	got.SectorSizes[0] = 9

	again, _, _ := repo.GetByID(ctx, "evt-1")
	if *again.Participants[0].Weights[0] != 400 || again.SectorSizes[0] != 2 {
		t.Fatalf("stored event was mutated through a returned copy")
	}
}

func TestEventRepository_FindBySlotAndDetach(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	day := time.Date(2024, 4, 13, 7, 0, 0, 0, time.UTC)
	repo := NewEventRepository(
		competition.Event{ID: "e1", Name: "W1", Location: "Kanaal", Date: day, FolderID: "f1"},
		competition.Event{ID: "e2", Name: "W2", Location: "Kanaal", Date: day.AddDate(0, 0, 7), FolderID: "f1"},
		competition.Event{ID: "e3", Name: "Open", Location: "Plas", Date: day},
	)

	found, ok, err := repo.FindBySlot(ctx, "W1", day.Add(5*time.Hour), "Kanaal")
	if err != nil || !ok || found.ID != "e1" {
		t.Fatalf("unexpected slot lookup: id=%s ok=%t err=%v", found.ID, ok, err)
	}
	if _, ok, _ := repo.FindBySlot(ctx, "W1", day, "Plas"); ok {
		t.Fatalf("different location must not match")
	}

	inFolder, _ := repo.ListByFolder(ctx, "f1")
	if len(inFolder) != 2 || inFolder[0].ID != "e2" {
		t.Fatalf("unexpected folder listing: %+v", inFolder)
	}

	if err := repo.DetachFolder(ctx, "f1"); err != nil {
		t.Fatalf("detach folder: %v", err)
	}
	inFolder, _ = repo.ListByFolder(ctx, "f1")
	if len(inFolder) != 0 {
		t.Fatalf("expected no events left in folder, got %d", len(inFolder))
	}
	all, _ := repo.List(ctx)
	if len(all) != 3 {
		t.Fatalf("detaching must keep events, got %d", len(all))
	}
}

func TestEventRepository_ListUnfiled(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewEventRepository(
		competition.Event{ID: "e1", Name: "W1", Type: competition.TypeIndividualCriterium, FolderID: "f1"},
		competition.Event{ID: "e2", Name: "Los", Type: competition.TypeIndividualCriterium},
		competition.Event{ID: "e3", Name: "Koppel", Type: competition.TypePairCriterium},
	)

	got, err := repo.ListUnfiled(ctx, competition.TypeIndividualCriterium)
	if err != nil {
		t.Fatalf("list unfiled: %v", err)
	}
	if len(got) != 1 || got[0].ID != "e2" {
		t.Fatalf("unexpected unfiled listing: %+v", got)
	}
}
