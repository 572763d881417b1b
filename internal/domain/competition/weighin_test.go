package competition

import (
	"errors"
	"testing"
)

func grams(v int) *int {
	return &v
}

func TestTotalWeight(t *testing.T) {
	if got := TotalWeight([]*int{nil, grams(5), nil, grams(3)}); got != 8 {
		t.Fatalf("unexpected total: got=%d want=8", got)
	}
	if got := TotalWeight(nil); got != 0 {
		t.Fatalf("unexpected total for no weights: %d", got)
	}
	if got := TotalWeight([]*int{grams(3), grams(5)}); got != TotalWeight([]*int{grams(5), grams(3)}) {
		t.Fatalf("total weight depends on order")
	}
}

func TestParticipant_ConfirmWeighing(t *testing.T) {
	p := Participant{ID: 1, Name: "Jan"}
	if err := p.ConfirmWeighing(); !errors.Is(err, ErrNoWeights) {
		t.Fatalf("expected ErrNoWeights, got %v", err)
	}

	p.AddWeight()
	if err := p.ConfirmWeighing(); !errors.Is(err, ErrNoWeights) {
		t.Fatalf("expected ErrNoWeights with only an empty slot, got %v", err)
	}

	if err := p.SetWeight(0, grams(1250)); err != nil {
		t.Fatalf("set weight: %v", err)
	}
	if err := p.ConfirmWeighing(); err != nil {
		t.Fatalf("confirm weighing: %v", err)
	}
	if !p.WeighingConfirmed || p.TotalWeight != 1250 {
		t.Fatalf("unexpected participant after confirm: %+v", p)
	}

	p.UnconfirmWeighing()
	if p.WeighingConfirmed {
		t.Fatalf("expected unconfirmed participant")
	}
}

func TestParticipant_WeightEditing(t *testing.T) {
	p := Participant{ID: 2}
	p.AddWeight()
	p.AddWeight()
	if err := p.SetWeight(0, grams(400)); err != nil {
		t.Fatalf("set weight: %v", err)
	}
	if err := p.SetWeight(1, grams(100)); err != nil {
		t.Fatalf("set weight: %v", err)
	}
	if err := p.SetWeight(1, grams(-1)); err == nil {
		t.Fatalf("expected negative weight to be rejected")
	}
	if err := p.SetWeight(5, grams(1)); err == nil {
		t.Fatalf("expected out of range index to be rejected")
	}
	if err := p.RemoveWeight(0); err != nil {
		t.Fatalf("remove weight: %v", err)
	}
	if len(p.Weights) != 1 || p.TotalWeight != 100 {
		t.Fatalf("unexpected weights after removal: %+v", p)
	}
}

func TestParticipant_RemoveWeightLeavesCopiesIntact(t *testing.T) {
	p := Participant{ID: 3, Weights: []*int{grams(100), grams(200), grams(300)}}
	snapshot := p

	if err := p.RemoveWeight(0); err != nil {
		t.Fatalf("remove weight: %v", err)
	}
	if len(p.Weights) != 2 || *p.Weights[0] != 200 {
		t.Fatalf("unexpected weights after removal: %v", p.Weights)
	}
	if *snapshot.Weights[0] != 100 || *snapshot.Weights[1] != 200 || *snapshot.Weights[2] != 300 {
		t.Fatalf("copy changed after removal: %d %d %d",
			*snapshot.Weights[0], *snapshot.Weights[1], *snapshot.Weights[2])
	}
}

func TestCheckConfirmed(t *testing.T) {
	participants := []Participant{
		{ID: 1, Name: "No catch"},
		{ID: 2, Name: "Confirmed", Weights: []*int{grams(10)}, WeighingConfirmed: true},
	}
	if err := CheckConfirmed(participants); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	participants = append(participants, Participant{ID: 3, Name: "Pending", Weights: []*int{grams(5)}})
	if err := CheckConfirmed(participants); !errors.Is(err, ErrUnconfirmedWeighing) {
		t.Fatalf("expected ErrUnconfirmedWeighing, got %v", err)
	}
}
