package usecase

import (
	"fmt"
	"sync"

	"github.com/riskibarqy/fishing-league/internal/domain/competition"
)

// sequenceIDGenerator hands out prefix-1, prefix-2, ...
type sequenceIDGenerator struct {
	mu     sync.Mutex
	prefix string
	next   int
}

func (g *sequenceIDGenerator) NewID() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("%s-%d", g.prefix, g.next), nil
}

func ptr(v int) *int {
	return &v
}

// entrant builds a confirmed participant with a single weigh-in.
func entrant(id int, name string, draw, grams int) competition.Participant {
	return competition.Participant{
		ID:                id,
		Name:              name,
		DrawPosition:      ptr(draw),
		Weights:           []*int{ptr(grams)},
		WeighingConfirmed: true,
	}
}
