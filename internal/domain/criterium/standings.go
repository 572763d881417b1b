package criterium

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

const missingClass = "-"

func (p Params) Validate() error {
	if p.PenaltyPoints < 0 {
		return fmt.Errorf("%w: penalty points must be >= 0, got %d", ErrInvalidParams, p.PenaltyPoints)
	}
	if p.ExcludeCount < 0 {
		return fmt.Errorf("%w: exclude count must be >= 0, got %d", ErrInvalidParams, p.ExcludeCount)
	}
	return nil
}

// Aggregate merges the results of a folder's events into one table. Names are
// matched by exact string equality across events. Absences score the penalty;
// each participant drops its ExcludeCount worst slots, absences first.
func Aggregate(events []EventResult, params Params) (Standings, error) {
	if err := params.Validate(); err != nil {
		return Standings{}, err
	}

	labels := make([]string, 0, len(events))
	for _, event := range events {
		labels = append(labels, event.Label)
	}
	out := Standings{EventLabels: labels, Participants: []Row{}}
	if len(events) == 0 {
		return out, nil
	}

	index := make(map[string]int)
	rows := make([]Row, 0)
	for _, event := range events {
		for _, entrant := range event.Participants {
			if strings.TrimSpace(entrant.Name) == "" {
				continue
			}
			if _, ok := index[entrant.Name]; ok {
				continue
			}
			index[entrant.Name] = len(rows)
			rows = append(rows, newRow(entrant, len(events), params.PenaltyPoints))
		}
	}

	for eventIdx, event := range events {
		for _, entrant := range event.Participants {
			rowIdx, ok := index[entrant.Name]
			if !ok {
				continue
			}
			rows[rowIdx].PerEvent[eventIdx] = Slot{
				Points:  entrant.Points,
				Weight:  entrant.TotalWeight,
				Present: true,
			}
		}
	}

	order := make([]int, len(rows))
	for i := range rows {
		markExcluded(rows[i].PerEvent, params.ExcludeCount)
		rows[i].TotalPoints, rows[i].TotalWeight = totals(rows[i].PerEvent, params.PenaltyPoints)
		order[i] = i
	}

	slices.SortFunc(order, func(a, b int) int {
		if c := cmp.Compare(rows[a].TotalPoints, rows[b].TotalPoints); c != 0 {
			return c
		}
		if c := cmp.Compare(rows[b].TotalWeight, rows[a].TotalWeight); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	out.Participants = make([]Row, 0, len(rows))
	for rank, idx := range order {
		row := rows[idx]
		row.Rank = rank + 1
		out.Participants = append(out.Participants, row)
	}
	return out, nil
}

func newRow(entrant EntrantResult, eventCount, penalty int) Row {
	class := strings.TrimSpace(entrant.Class)
	if class == "" {
		class = missingClass
	}
	slots := make([]Slot, eventCount)
	for i := range slots {
		slots[i] = Slot{Points: penalty}
	}
	return Row{
		Name:     entrant.Name,
		Class:    class,
		PerEvent: slots,
	}
}

// markExcluded flags up to n slots. Absences go first in event order, then
// present results from the worst placing, lighter catch first on equal points.
func markExcluded(slots []Slot, n int) {
	if n <= 0 {
		return
	}

	var absent, present []int
	for i, slot := range slots {
		if slot.Present {
			present = append(present, i)
		} else {
			absent = append(absent, i)
		}
	}

	for _, i := range absent {
		if n == 0 {
			return
		}
		slots[i].Excluded = true
		n--
	}

	slices.SortFunc(present, func(a, b int) int {
		if c := cmp.Compare(slots[b].Points, slots[a].Points); c != 0 {
			return c
		}
		if c := cmp.Compare(slots[a].Weight, slots[b].Weight); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	for _, i := range present {
		if n == 0 {
			return
		}
		slots[i].Excluded = true
		n--
	}
}

func totals(slots []Slot, penalty int) (int, int) {
	points, weight := 0, 0
	for _, slot := range slots {
		if slot.Excluded {
			continue
		}
		if slot.Present {
			points += slot.Points
		} else {
			points += penalty
		}
		weight += slot.Weight
	}
	return points, weight
}
