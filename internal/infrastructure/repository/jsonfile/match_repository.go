package jsonfile

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	sonic "github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-matches/internal/domain/league"
	"github.com/riskibarqy/league-matches/internal/domain/match"
)

// MatchRepository reads per-league match files from the matches directory.
type MatchRepository struct {
	cfg Config
}

func NewMatchRepository(cfg Config) *MatchRepository {
	return &MatchRepository{cfg: cfg}
}

func (r *MatchRepository) ListByLeague(ctx context.Context, l league.League) ([]match.Match, error) {
	file, err := l.MatchFile()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(r.cfg.MatchesDir, file)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "read match file league=%q path=%q", l.Name, path), match.ErrMatchFileMissing)
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errors.Wrapf(match.ErrMatchFileMalformed, "league=%q path=%q is not a JSON array", l.Name, path)
	}

	var items []match.Match
	if err := sonic.Unmarshal(trimmed, &items); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "decode match file league=%q path=%q", l.Name, path), match.ErrMatchFileMalformed)
	}
	if items == nil {
		items = []match.Match{}
	}

	return items, nil
}
