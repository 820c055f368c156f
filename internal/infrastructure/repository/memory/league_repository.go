package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/league-matches/internal/domain/league"
)

// LeagueRepository keeps a fixed manifest in memory, preserving its order.
type LeagueRepository struct {
	mu     sync.RWMutex
	byName map[string]league.League
	orders []string
}

func NewLeagueRepository(leagues []league.League) *LeagueRepository {
	byName := make(map[string]league.League, len(leagues))
	orders := make([]string, 0, len(leagues))

	for _, l := range leagues {
		if _, exists := byName[l.Name]; !exists {
			orders = append(orders, l.Name)
		}
		byName[l.Name] = l
	}

	return &LeagueRepository{
		byName: byName,
		orders: orders,
	}
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0, len(r.orders))
	for _, name := range r.orders {
		out = append(out, r.byName[name])
	}

	return out, nil
}

func (r *LeagueRepository) GetByName(_ context.Context, name string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.byName[name]
	if !ok {
		return league.League{}, false, nil
	}

	return l, true, nil
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range r.orders {
		if l := r.byName[name]; l.ID == leagueID {
			return l, true, nil
		}
	}

	return league.League{}, false, nil
}
