package memory

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-matches/internal/domain/league"
	"github.com/riskibarqy/league-matches/internal/domain/match"
)

// MatchRepository serves match collections keyed by match file name.
type MatchRepository struct {
	mu     sync.RWMutex
	byFile map[string][]match.Match
}

func NewMatchRepository(byFile map[string][]match.Match) *MatchRepository {
	copied := make(map[string][]match.Match, len(byFile))
	for file, items := range byFile {
		copied[file] = append([]match.Match(nil), items...)
	}

	return &MatchRepository{byFile: copied}
}

func (r *MatchRepository) ListByLeague(_ context.Context, l league.League) ([]match.Match, error) {
	file, err := l.MatchFile()
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	items, ok := r.byFile[file]
	if !ok {
		return nil, errors.Wrapf(match.ErrMatchFileMissing, "league=%q file=%q", l.Name, file)
	}

	out := make([]match.Match, 0, len(items))
	out = append(out, items...)
	return out, nil
}
