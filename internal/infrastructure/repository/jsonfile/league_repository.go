package jsonfile

import (
	"bytes"
	"context"
	"os"

	sonic "github.com/bytedance/sonic"
	"github.com/bytedance/sonic/ast"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/league-matches/internal/domain/league"
)

// LeagueRepository reads the league manifest from disk on every call.
type LeagueRepository struct {
	cfg       Config
	validator *validator.Validate
}

func NewLeagueRepository(cfg Config) *LeagueRepository {
	return &LeagueRepository{
		cfg:       cfg,
		validator: validator.New(),
	}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	return r.load(ctx)
}

func (r *LeagueRepository) GetByName(ctx context.Context, name string) (league.League, bool, error) {
	leagues, err := r.load(ctx)
	if err != nil {
		return league.League{}, false, err
	}

	for _, l := range leagues {
		if l.Name == name {
			return l, true, nil
		}
	}
	return league.League{}, false, nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	leagues, err := r.load(ctx)
	if err != nil {
		return league.League{}, false, err
	}

	for _, l := range leagues {
		if l.ID == leagueID {
			return l, true, nil
		}
	}
	return league.League{}, false, nil
}

func (r *LeagueRepository) load(ctx context.Context) ([]league.League, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := r.cfg.ManifestPath
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "read league manifest %q", path), league.ErrManifestMissing)
	}

	return r.decode(path, raw)
}

func (r *LeagueRepository) decode(path string, raw []byte) ([]league.League, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, errors.Wrapf(league.ErrManifestMalformed, "manifest %q is not a JSON object", path)
	}

	entries := make(map[string]manifestEntryModel)
	if err := sonic.Unmarshal(trimmed, &entries); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "decode league manifest %q", path), league.ErrManifestMalformed)
	}

	names, err := orderedKeys(trimmed)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "walk league manifest %q", path), league.ErrManifestMalformed)
	}

	field := r.cfg.fileField()
	out := make([]league.League, 0, len(names))
	for _, name := range names {
		entry, ok := entries[name]
		if !ok {
			return nil, errors.Wrapf(league.ErrManifestMalformed, "manifest %q: league=%q missing after decode", path, name)
		}
		entry = entry.normalized()
		if err := r.validator.Struct(entry); err != nil {
			return nil, errors.Wrapf(league.ErrManifestMalformed, "manifest %q: league=%q: %v", path, name, err)
		}
		out = append(out, entry.toDomain(name, field))
	}

	return out, nil
}

// orderedKeys lists top-level object keys in document order. A key repeated
// in the document keeps its first position.
func orderedKeys(doc []byte) ([]string, error) {
	root, err := sonic.Get(doc)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, 32)
	seen := make(map[string]struct{})
	var walkErr error
	err = root.ForEach(func(path ast.Sequence, _ *ast.Node) bool {
		if path.Key == nil {
			walkErr = errors.New("top-level value is not an object")
			return false
		}
		if _, ok := seen[*path.Key]; ok {
			return true
		}
		seen[*path.Key] = struct{}{}
		names = append(names, *path.Key)
		return true
	})
	if err != nil {
		return nil, err
	}
	if walkErr != nil {
		return nil, walkErr
	}

	return names, nil
}
