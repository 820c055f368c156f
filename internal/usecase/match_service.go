package usecase

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-matches/internal/domain/league"
	"github.com/riskibarqy/league-matches/internal/domain/match"
	"go.opentelemetry.io/otel/attribute"
)

// MatchService returns recent matches of a resolved league.
type MatchService struct {
	leagueService *LeagueService
	matchRepo     match.Repository
	observer      LookupObserver
}

func NewMatchService(leagueService *LeagueService, matchRepo match.Repository, observer LookupObserver) *MatchService {
	return &MatchService{
		leagueService: leagueService,
		matchRepo:     matchRepo,
		observer:      observerOrNoop(observer),
	}
}

// GetLastMatches resolves key with the configured lookup mode and returns
// up to n matches, most recent first.
func (s *MatchService) GetLastMatches(ctx context.Context, key string, n int) ([]match.Match, error) {
	return s.GetLastMatchesBy(ctx, s.leagueService.LookupMode(), key, n)
}

func (s *MatchService) GetLastMatchesBy(ctx context.Context, mode league.LookupMode, key string, n int) (out []match.Match, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetLastMatches",
		attribute.String("league.lookup_mode", string(mode)),
		attribute.String("league.key", key),
		attribute.Int("match.limit", n),
	)
	started := time.Now()
	defer func() {
		observe(s.observer, OperationGetLastMatches, started, err)
		endUsecaseSpan(span, err)
	}()

	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "limit must be >= 0, got %d", n)
	}

	l, err := s.leagueService.resolve(ctx, mode, key)
	if err != nil {
		return nil, err
	}

	items, err := s.matchRepo.ListByLeague(ctx, l)
	if err != nil {
		return nil, err
	}

	return match.LastN(items, n), nil
}
