package competition

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// RankEntry is the minimal view of a participant the sector ranking needs.
type RankEntry struct {
	ParticipantID int
	DrawPosition  *int
	TotalWeight   int
}

// RankWithinSector ranks participants inside their own sector by weight,
// heavier first, equal weights falling back to the lower draw position.
// Participants without a resolvable sector are absent from the result.
// Equal draw positions are not expected here; when they occur the lower
// participant ID goes first.
func RankWithinSector(entries []RankEntry, sizes SectorSizes) map[int]int {
	bySector := make(map[int][]RankEntry)
	for _, entry := range entries {
		if entry.DrawPosition == nil {
			continue
		}
		idx := SectorIndex(*entry.DrawPosition, sizes)
		if idx < 0 {
			continue
		}
		bySector[idx] = append(bySector[idx], entry)
	}

	ranks := make(map[int]int, len(entries))
	for _, group := range bySector {
		slices.SortFunc(group, compareSectorEntries)
		for i, entry := range group {
			ranks[entry.ParticipantID] = i + 1
		}
	}

	return ranks
}

func compareSectorEntries(a, b RankEntry) int {
	if c := cmp.Compare(b.TotalWeight, a.TotalWeight); c != 0 {
		return c
	}
	if c := cmp.Compare(*a.DrawPosition, *b.DrawPosition); c != 0 {
		return c
	}
	return cmp.Compare(a.ParticipantID, b.ParticipantID)
}

// Score returns a copy of participants with total weight and points filled in.
// Unranked participants get zero points.
func Score(participants []Participant, sizes SectorSizes) []Participant {
	out := make([]Participant, len(participants))
	entries := make([]RankEntry, 0, len(participants))
	for i, p := range participants {
		p.Weights = slices.Clone(p.Weights)
		p.TotalWeight = TotalWeight(p.Weights)
		out[i] = p
		entries = append(entries, RankEntry{
			ParticipantID: p.ID,
			DrawPosition:  p.DrawPosition,
			TotalWeight:   p.TotalWeight,
		})
	}

	ranks := RankWithinSector(entries, sizes)
	for i := range out {
		out[i].Points = ranks[out[i].ID]
	}
	return out
}

// ValidateDrawPositions rejects positions shared by two participants.
func ValidateDrawPositions(participants []Participant) error {
	holder := make(map[int]string, len(participants))
	for _, p := range participants {
		if !p.HasDrawPosition() {
			continue
		}
		pos := *p.DrawPosition
		if existing, ok := holder[pos]; ok {
			return fmt.Errorf("%w: position %d already held by %s", ErrDuplicateDrawPosition, pos, existing)
		}
		holder[pos] = p.Name
	}
	return nil
}

// ValidateParticipantIDs rejects ids shared by two participants. Ranks are
// keyed by id.
func ValidateParticipantIDs(participants []Participant) error {
	seen := make(map[int]string, len(participants))
	for _, p := range participants {
		if existing, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: id %d held by %q and %q", ErrDuplicateID, p.ID, existing, p.Name)
		}
		seen[p.ID] = p.Name
	}
	return nil
}

// ValidateNames rejects names that collide after trimming and lowercasing.
func ValidateNames(participants []Participant) error {
	seen := make(map[string]string, len(participants))
	for _, p := range participants {
		key := strings.ToLower(strings.TrimSpace(p.Name))
		if key == "" {
			continue
		}
		if existing, ok := seen[key]; ok {
			return fmt.Errorf("%w: %q already assigned to %q", ErrDuplicateName, p.Name, existing)
		}
		seen[key] = p.Name
	}
	return nil
}
