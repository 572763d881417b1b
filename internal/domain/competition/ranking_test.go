package competition

import (
	"errors"
	"testing"
)

func pos(v int) *int {
	return &v
}

func TestRankWithinSector_TieBrokenByDrawPosition(t *testing.T) {
	sizes := SectorSizes{2, 2}
	entries := []RankEntry{
		{ParticipantID: 1, DrawPosition: pos(1), TotalWeight: 100},
		{ParticipantID: 2, DrawPosition: pos(2), TotalWeight: 50},
		{ParticipantID: 4, DrawPosition: pos(4), TotalWeight: 80},
		{ParticipantID: 3, DrawPosition: pos(3), TotalWeight: 80},
	}

	got := RankWithinSector(entries, sizes)
	want := map[int]int{1: 1, 2: 2, 3: 1, 4: 2}
	for id, rank := range want {
		if got[id] != rank {
			t.Fatalf("participant %d: got rank %d want %d (all=%v)", id, got[id], rank, got)
		}
	}
}

func TestRankWithinSector_SkipsUnplaced(t *testing.T) {
	sizes := SectorSizes{3}
	entries := []RankEntry{
		{ParticipantID: 1, DrawPosition: nil, TotalWeight: 900},
		{ParticipantID: 2, DrawPosition: pos(7), TotalWeight: 800},
		{ParticipantID: 3, DrawPosition: pos(2), TotalWeight: 0},
	}

	got := RankWithinSector(entries, sizes)
	if _, ok := got[1]; ok {
		t.Fatalf("participant without draw position must not be ranked")
	}
	if _, ok := got[2]; ok {
		t.Fatalf("participant outside every sector must not be ranked")
	}
	if got[3] != 1 {
		t.Fatalf("single participant in sector with zero weight should rank 1, got %d", got[3])
	}
}

func TestRankWithinSector_RanksAreContiguous(t *testing.T) {
	sizes := SectorSizes{4, 3}
	entries := []RankEntry{
		{ParticipantID: 1, DrawPosition: pos(1), TotalWeight: 10},
		{ParticipantID: 2, DrawPosition: pos(2), TotalWeight: 40},
		{ParticipantID: 3, DrawPosition: pos(3), TotalWeight: 30},
		{ParticipantID: 4, DrawPosition: pos(4), TotalWeight: 20},
		{ParticipantID: 5, DrawPosition: pos(5), TotalWeight: 0},
		{ParticipantID: 6, DrawPosition: pos(6), TotalWeight: 5},
		{ParticipantID: 7, DrawPosition: pos(7), TotalWeight: 15},
	}

	got := RankWithinSector(entries, sizes)
	seen := map[int]map[int]bool{0: {}, 1: {}}
	for _, entry := range entries {
		sector := SectorIndex(*entry.DrawPosition, sizes)
		rank := got[entry.ParticipantID]
		if seen[sector][rank] {
			t.Fatalf("duplicate rank %d in sector %d", rank, sector)
		}
		seen[sector][rank] = true
	}
	for sector, count := range map[int]int{0: 4, 1: 3} {
		for rank := 1; rank <= count; rank++ {
			if !seen[sector][rank] {
				t.Fatalf("missing rank %d in sector %d", rank, sector)
			}
		}
	}
}

func TestRankWithinSector_Deterministic(t *testing.T) {
	sizes := SectorSizes{5}
	entries := []RankEntry{
		{ParticipantID: 10, DrawPosition: pos(5), TotalWeight: 300},
		{ParticipantID: 11, DrawPosition: pos(2), TotalWeight: 300},
		{ParticipantID: 12, DrawPosition: pos(4), TotalWeight: 300},
	}

	first := RankWithinSector(entries, sizes)
	for i := 0; i < 20; i++ {
		again := RankWithinSector(entries, sizes)
		for id, rank := range first {
			if again[id] != rank {
				t.Fatalf("ranking not reproducible for participant %d", id)
			}
		}
	}
	if first[11] != 1 || first[12] != 2 || first[10] != 3 {
		t.Fatalf("unexpected tie-break order: %v", first)
	}
}

func TestScore_FillsPointsAndTotals(t *testing.T) {
	sizes := SectorSizes{2, 2}
	in := []Participant{
		{ID: 1, Name: "P1", DrawPosition: pos(1), Weights: []*int{grams(60), grams(40)}},
		{ID: 2, Name: "P2", DrawPosition: pos(2), Weights: []*int{grams(50)}},
		{ID: 3, Name: "P3", DrawPosition: pos(3), Weights: []*int{grams(80), nil}},
		{ID: 4, Name: "P4", DrawPosition: pos(4), Weights: []*int{grams(80)}},
		{ID: 5, Name: "P5"},
	}

	got := Score(in, sizes)
	wantPoints := []int{1, 2, 1, 2, 0}
	wantWeights := []int{100, 50, 80, 80, 0}
	for i, p := range got {
		if p.Points != wantPoints[i] || p.TotalWeight != wantWeights[i] {
			t.Fatalf("participant %s: got points=%d weight=%d", p.Name, p.Points, p.TotalWeight)
		}
	}
	if in[0].Points != 0 {
		t.Fatalf("Score must not mutate its input")
	}
}

func TestValidateDrawPositions(t *testing.T) {
	ok := []Participant{{ID: 1, Name: "a", DrawPosition: pos(1)}, {ID: 2, Name: "b"}, {ID: 3, Name: "c", DrawPosition: pos(2)}}
	if err := ValidateDrawPositions(ok); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	dup := append(ok, Participant{ID: 4, Name: "d", DrawPosition: pos(2)})
	if err := ValidateDrawPositions(dup); !errors.Is(err, ErrDuplicateDrawPosition) {
		t.Fatalf("expected ErrDuplicateDrawPosition, got %v", err)
	}
}

func TestValidateNames(t *testing.T) {
	participants := []Participant{{ID: 1, Name: "Piet de Vries"}, {ID: 2, Name: ""}, {ID: 3, Name: "  "}}
	if err := ValidateNames(participants); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	participants = append(participants, Participant{ID: 4, Name: " piet DE vries "})
	if err := ValidateNames(participants); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestValidateParticipantIDs(t *testing.T) {
	participants := []Participant{{ID: 1, Name: "Jan"}, {ID: 2, Name: "Piet"}}
	if err := ValidateParticipantIDs(participants); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	participants = append(participants, Participant{ID: 2, Name: "Kees"})
	if err := ValidateParticipantIDs(participants); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
}
