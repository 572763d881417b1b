package criterium

import (
	"errors"
	"reflect"
	"testing"
)

func TestAggregate_AbsenceExcludedFirst(t *testing.T) {
	events := []EventResult{
		{Label: "W1", Participants: []EntrantResult{{Name: "X", Class: "A", Points: 1, TotalWeight: 500}}},
		{Label: "W2", Participants: []EntrantResult{}},
	}

	got, err := Aggregate(events, Params{PenaltyPoints: 20, ExcludeCount: 1})
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if len(got.Participants) != 1 {
		t.Fatalf("unexpected participant count: %d", len(got.Participants))
	}

	row := got.Participants[0]
	if row.TotalPoints != 1 || row.TotalWeight != 500 {
		t.Fatalf("unexpected totals: points=%d weight=%d", row.TotalPoints, row.TotalWeight)
	}
	if row.PerEvent[0].Excluded || !row.PerEvent[1].Excluded {
		t.Fatalf("expected only the absence to be excluded: %+v", row.PerEvent)
	}
	if row.PerEvent[1].Points != 20 || row.PerEvent[1].Present {
		t.Fatalf("absent slot should carry the penalty: %+v", row.PerEvent[1])
	}
}

func TestAggregate_NoExclusion(t *testing.T) {
	events := []EventResult{
		{Label: "W1", Participants: []EntrantResult{{Name: "A", Points: 3, TotalWeight: 10}, {Name: "B", Points: 1, TotalWeight: 90}}},
		{Label: "W2", Participants: []EntrantResult{{Name: "A", Points: 1, TotalWeight: 200}}},
	}

	got, err := Aggregate(events, Params{PenaltyPoints: 20})
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	for _, row := range got.Participants {
		for i, slot := range row.PerEvent {
			if slot.Excluded {
				t.Fatalf("row %s slot %d excluded with excludeCount=0", row.Name, i)
			}
		}
	}

	if got.Participants[0].Name != "A" || got.Participants[0].TotalPoints != 4 || got.Participants[0].Rank != 1 {
		t.Fatalf("unexpected leader: %+v", got.Participants[0])
	}
	if got.Participants[1].Name != "B" || got.Participants[1].TotalPoints != 21 || got.Participants[1].Rank != 2 {
		t.Fatalf("unexpected runner-up: %+v", got.Participants[1])
	}
}

func TestAggregate_ExcludesWorstPresentResult(t *testing.T) {
	events := []EventResult{
		{Label: "W1", Participants: []EntrantResult{{Name: "A", Points: 2, TotalWeight: 300}}},
		{Label: "W2", Participants: []EntrantResult{{Name: "A", Points: 5, TotalWeight: 900}}},
		{Label: "W3", Participants: []EntrantResult{{Name: "A", Points: 5, TotalWeight: 100}}},
	}

	got, err := Aggregate(events, Params{PenaltyPoints: 20, ExcludeCount: 1})
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	row := got.Participants[0]
	if !row.PerEvent[2].Excluded || row.PerEvent[1].Excluded || row.PerEvent[0].Excluded {
		t.Fatalf("expected the lighter of the two worst results to be excluded: %+v", row.PerEvent)
	}
	if row.TotalPoints != 7 || row.TotalWeight != 1200 {
		t.Fatalf("unexpected totals: points=%d weight=%d", row.TotalPoints, row.TotalWeight)
	}
}

func TestAggregate_ExcludeCountBeyondEvents(t *testing.T) {
	events := []EventResult{
		{Label: "W1", Participants: []EntrantResult{{Name: "A", Points: 1, TotalWeight: 100}}},
		{Label: "W2", Participants: []EntrantResult{{Name: "A", Points: 2, TotalWeight: 50}}},
	}

	got, err := Aggregate(events, Params{PenaltyPoints: 20, ExcludeCount: 5})
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	row := got.Participants[0]
	if !row.PerEvent[0].Excluded || !row.PerEvent[1].Excluded {
		t.Fatalf("expected every slot excluded: %+v", row.PerEvent)
	}
	if row.TotalPoints != 0 || row.TotalWeight != 0 {
		t.Fatalf("expected zero totals, got points=%d weight=%d", row.TotalPoints, row.TotalWeight)
	}
}

func TestAggregate_ZeroEvents(t *testing.T) {
	got, err := Aggregate(nil, Params{PenaltyPoints: 20, ExcludeCount: 1})
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if got.Participants == nil || len(got.Participants) != 0 || len(got.EventLabels) != 0 {
		t.Fatalf("expected empty standings, got %+v", got)
	}
}

func TestAggregate_ClassFromFirstAppearance(t *testing.T) {
	events := []EventResult{
		{Label: "W1", Participants: []EntrantResult{{Name: "A", Class: "", Points: 1}, {Name: "  ", Points: 2}}},
		{Label: "W2", Participants: []EntrantResult{{Name: "A", Class: "Senior", Points: 1}}},
	}

	got, err := Aggregate(events, Params{PenaltyPoints: 20})
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if len(got.Participants) != 1 {
		t.Fatalf("blank names must be skipped, got %d rows", len(got.Participants))
	}
	if got.Participants[0].Class != "-" {
		t.Fatalf("unexpected class: %q", got.Participants[0].Class)
	}
}

func TestAggregate_TieKeepsFirstAppearance(t *testing.T) {
	events := []EventResult{
		{Label: "W1", Participants: []EntrantResult{
			{Name: "Second", Points: 1, TotalWeight: 100},
			{Name: "First", Points: 1, TotalWeight: 100},
		}},
	}

	got, err := Aggregate(events, Params{PenaltyPoints: 20})
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if got.Participants[0].Name != "Second" || got.Participants[1].Name != "First" {
		t.Fatalf("unexpected tie order: %s, %s", got.Participants[0].Name, got.Participants[1].Name)
	}
	if got.Participants[1].Rank != 2 {
		t.Fatalf("ranks must be positional, got %d", got.Participants[1].Rank)
	}
}

func TestAggregate_ExcludingNeverRaisesTotal(t *testing.T) {
	events := []EventResult{
		{Label: "W1", Participants: []EntrantResult{{Name: "A", Points: 4, TotalWeight: 10}, {Name: "B", Points: 1, TotalWeight: 30}}},
		{Label: "W2", Participants: []EntrantResult{{Name: "B", Points: 3, TotalWeight: 5}}},
		{Label: "W3", Participants: []EntrantResult{{Name: "A", Points: 2, TotalWeight: 70}, {Name: "B", Points: 6, TotalWeight: 1}}},
	}

	prev := map[string]int{}
	for exclude := 0; exclude <= 3; exclude++ {
		got, err := Aggregate(events, Params{PenaltyPoints: 20, ExcludeCount: exclude})
		if err != nil {
			t.Fatalf("aggregate: %v", err)
		}
		for _, row := range got.Participants {
			if before, ok := prev[row.Name]; ok && row.TotalPoints > before {
				t.Fatalf("%s total rose from %d to %d at excludeCount=%d", row.Name, before, row.TotalPoints, exclude)
			}
			prev[row.Name] = row.TotalPoints
		}
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	events := []EventResult{
		{Label: "W1", Participants: []EntrantResult{{Name: "A", Points: 1, TotalWeight: 10}, {Name: "B", Points: 2, TotalWeight: 10}}},
		{Label: "W2", Participants: []EntrantResult{{Name: "B", Points: 1, TotalWeight: 10}, {Name: "C", Points: 2, TotalWeight: 10}}},
	}
	params := Params{PenaltyPoints: 15, ExcludeCount: 1}

	first, err := Aggregate(events, params)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	second, err := Aggregate(events, params)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("aggregate is not repeatable:\n%+v\n%+v", first, second)
	}
}

func TestAggregate_InvalidParams(t *testing.T) {
	for _, params := range []Params{{PenaltyPoints: -1}, {ExcludeCount: -2}} {
		if _, err := Aggregate(nil, params); !errors.Is(err, ErrInvalidParams) {
			t.Fatalf("expected ErrInvalidParams for %+v, got %v", params, err)
		}
	}
}
