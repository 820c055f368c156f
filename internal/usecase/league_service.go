package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-matches/internal/domain/league"
	"go.opentelemetry.io/otel/attribute"
)

// LeagueService resolves leagues from the manifest.
type LeagueService struct {
	leagueRepo league.Repository
	mode       league.LookupMode
	observer   LookupObserver
}

func NewLeagueService(leagueRepo league.Repository, mode league.LookupMode, observer LookupObserver) *LeagueService {
	if mode == "" {
		mode = league.LookupByName
	}
	return &LeagueService{
		leagueRepo: leagueRepo,
		mode:       mode,
		observer:   observerOrNoop(observer),
	}
}

// LookupMode is the mode used by ResolveLeague.
func (s *LeagueService) LookupMode() league.LookupMode {
	return s.mode
}

func (s *LeagueService) ListLeagues(ctx context.Context) (out []league.Summary, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListLeagues")
	started := time.Now()
	defer func() {
		observe(s.observer, OperationListLeagues, started, err)
		endUsecaseSpan(span, err)
	}()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list leagues")
	}

	out = make([]league.Summary, 0, len(leagues))
	for _, l := range leagues {
		out = append(out, l.Summary())
	}

	return out, nil
}

func (s *LeagueService) ResolveLeague(ctx context.Context, key string) (league.League, error) {
	return s.Resolve(ctx, s.mode, key)
}

func (s *LeagueService) ResolveByName(ctx context.Context, name string) (league.League, error) {
	return s.Resolve(ctx, league.LookupByName, name)
}

func (s *LeagueService) ResolveByID(ctx context.Context, leagueID string) (league.League, error) {
	return s.Resolve(ctx, league.LookupByID, leagueID)
}

func (s *LeagueService) Resolve(ctx context.Context, mode league.LookupMode, key string) (out league.League, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Resolve",
		attribute.String("league.lookup_mode", string(mode)),
		attribute.String("league.key", key),
	)
	started := time.Now()
	defer func() {
		observe(s.observer, OperationResolveLeague, started, err)
		endUsecaseSpan(span, err)
	}()

	return s.resolve(ctx, mode, key)
}

// resolve returns a league whose match file reference is usable.
func (s *LeagueService) resolve(ctx context.Context, mode league.LookupMode, key string) (league.League, error) {
	if strings.TrimSpace(key) == "" {
		return league.League{}, errors.Wrap(ErrInvalidInput, "league key is required")
	}

	var (
		l      league.League
		exists bool
		err    error
	)
	switch mode {
	case league.LookupByName:
		l, exists, err = s.leagueRepo.GetByName(ctx, key)
	case league.LookupByID:
		l, exists, err = s.leagueRepo.GetByID(ctx, key)
	default:
		return league.League{}, errors.Wrapf(ErrInvalidInput, "unsupported lookup mode %q", mode)
	}
	if err != nil {
		return league.League{}, errors.Wrap(err, "get league")
	}
	if !exists {
		return league.League{}, errors.Wrapf(league.ErrLeagueNotFound, "%s=%q", mode, key)
	}
	if _, err := l.MatchFile(); err != nil {
		return league.League{}, err
	}

	return l, nil
}
