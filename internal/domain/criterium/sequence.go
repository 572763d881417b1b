package criterium

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/riskibarqy/fishing-league/internal/domain/competition"
)

const sequencePrefix = "W"

// SequenceNumber extracts n from an event name of the form "W<n>".
func SequenceNumber(name string) (int, bool) {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) <= len(sequencePrefix) || !strings.EqualFold(trimmed[:len(sequencePrefix)], sequencePrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(trimmed[len(sequencePrefix):]))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func SequenceName(n int) string {
	return fmt.Sprintf("%s%d", sequencePrefix, n)
}

// NextSequenceName names the event that would follow the folder's current ones.
func NextSequenceName(events []competition.Event) string {
	return SequenceName(len(events) + 1)
}

// SortBySequence orders folder events by their "W<n>" number. Events whose
// name carries no number go last, by date then name.
func SortBySequence(events []competition.Event) {
	slices.SortFunc(events, func(a, b competition.Event) int {
		an, aok := SequenceNumber(a.Name)
		bn, bok := SequenceNumber(b.Name)
		if aok != bok {
			if aok {
				return -1
			}
			return 1
		}
		if aok {
			if c := cmp.Compare(an, bn); c != 0 {
				return c
			}
		}
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
