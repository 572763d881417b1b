package competition

import (
	"fmt"
	"slices"
)

// TotalWeight sums recorded weights in grams; missing entries count as zero.
func TotalWeight(weights []*int) int {
	total := 0
	for _, w := range weights {
		if w == nil || *w < 0 {
			continue
		}
		total += *w
	}
	return total
}

func (p Participant) HasWeights() bool {
	for _, w := range p.Weights {
		if w != nil {
			return true
		}
	}
	return false
}

// AddWeight appends an empty weight slot.
func (p *Participant) AddWeight() {
	p.Weights = append(p.Weights, nil)
	p.TotalWeight = TotalWeight(p.Weights)
}

func (p *Participant) SetWeight(index int, grams *int) error {
	if index < 0 || index >= len(p.Weights) {
		return fmt.Errorf("weight index %d out of range for participant %d", index, p.ID)
	}
	if grams != nil && *grams < 0 {
		return fmt.Errorf("weight must be >= 0, got %d", *grams)
	}
	p.Weights[index] = grams
	p.TotalWeight = TotalWeight(p.Weights)
	return nil
}

func (p *Participant) RemoveWeight(index int) error {
	if index < 0 || index >= len(p.Weights) {
		return fmt.Errorf("weight index %d out of range for participant %d", index, p.ID)
	}
	p.Weights = slices.Delete(slices.Clone(p.Weights), index, index+1)
	p.TotalWeight = TotalWeight(p.Weights)
	return nil
}

// ConfirmWeighing locks the weigh-in. At least one weight must be entered.
func (p *Participant) ConfirmWeighing() error {
	if !p.HasWeights() {
		return fmt.Errorf("%w: participant %d", ErrNoWeights, p.ID)
	}
	p.WeighingConfirmed = true
	return nil
}

func (p *Participant) UnconfirmWeighing() {
	p.WeighingConfirmed = false
}

// CheckConfirmed fails on the first participant that has weights but no confirmation.
func CheckConfirmed(participants []Participant) error {
	for _, p := range participants {
		if p.HasWeights() && !p.WeighingConfirmed {
			return fmt.Errorf("%w: %s", ErrUnconfirmedWeighing, p.Name)
		}
	}
	return nil
}
