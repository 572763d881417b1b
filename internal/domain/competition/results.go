package competition

import (
	"cmp"
	"math"
	"slices"
)

// Placing is one row of the full event classification.
type Placing struct {
	Place       int
	Sector      string
	Participant Participant
}

// ComposeResults orders scored participants for presentation. Points are not
// touched: ranked participants come first by points, then heavier catch, then
// lower draw position; participants without a sector rank follow.
func ComposeResults(participants []Participant, sizes SectorSizes) []Placing {
	sorted := slices.Clone(participants)
	slices.SortFunc(sorted, compareResults)

	out := make([]Placing, 0, len(sorted))
	for i, p := range sorted {
		sector, _ := ResolveSector(p.Position(), sizes)
		out = append(out, Placing{
			Place:       i + 1,
			Sector:      sector,
			Participant: p,
		})
	}
	return out
}

func compareResults(a, b Participant) int {
	aRanked, bRanked := a.Points > 0, b.Points > 0
	if aRanked != bRanked {
		if aRanked {
			return -1
		}
		return 1
	}
	if c := cmp.Compare(a.Points, b.Points); c != 0 {
		return c
	}
	if c := cmp.Compare(b.TotalWeight, a.TotalWeight); c != 0 {
		return c
	}
	if c := cmp.Compare(drawOrder(a), drawOrder(b)); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

func drawOrder(p Participant) int {
	if !p.HasDrawPosition() {
		return math.MaxInt
	}
	return *p.DrawPosition
}

// Result is the scored, ordered view of an event.
type Result struct {
	Participants []Participant
	Placings     []Placing
}

// Compute scores participants and composes the classification in one step.
func Compute(participants []Participant, sizes SectorSizes) Result {
	scored := Score(participants, sizes)
	return Result{
		Participants: scored,
		Placings:     ComposeResults(scored, sizes),
	}
}
