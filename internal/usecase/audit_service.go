package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/league-matches/internal/domain/league"
	"github.com/riskibarqy/league-matches/internal/domain/match"
	"github.com/riskibarqy/league-matches/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const defaultAuditWorkers = 4

// LeagueStatus reports whether one league's match file can be served.
type LeagueStatus struct {
	Name       string
	ID         string
	Kind       string
	Matches    int
	Message    string
	DurationMs int64
}

func (s LeagueStatus) Healthy() bool {
	return s.Kind == KindOK
}

// AuditReport lists league statuses in manifest order.
type AuditReport struct {
	Leagues      []LeagueStatus
	HealthyCount int
	FailedCount  int
}

// AuditService loads every manifest league's match file and reports its state.
type AuditService struct {
	leagueRepo league.Repository
	matchRepo  match.Repository
	workers    int
	observer   LookupObserver
	logger     *logging.Logger
}

func NewAuditService(
	leagueRepo league.Repository,
	matchRepo match.Repository,
	workers int,
	observer LookupObserver,
	logger *logging.Logger,
) *AuditService {
	if workers < 1 {
		workers = defaultAuditWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &AuditService{
		leagueRepo: leagueRepo,
		matchRepo:  matchRepo,
		workers:    workers,
		observer:   observerOrNoop(observer),
		logger:     logger,
	}
}

// Check fails only when the manifest itself cannot be loaded; per-league
// failures are reported in the result.
func (s *AuditService) Check(ctx context.Context) (report AuditReport, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuditService.Check", attribute.Int("audit.workers", s.workers))
	started := time.Now()
	defer func() {
		observe(s.observer, OperationAuditLeagues, started, err)
		endUsecaseSpan(span, err)
	}()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return AuditReport{}, errors.Wrap(err, "list leagues")
	}
	if len(leagues) == 0 {
		return AuditReport{Leagues: []LeagueStatus{}}, nil
	}

	workers := s.workers
	if workers > len(leagues) {
		workers = len(leagues)
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return AuditReport{}, errors.Wrap(err, "create audit worker pool")
	}
	defer pool.Release()

	statuses := make([]LeagueStatus, len(leagues))
	var wg sync.WaitGroup
	for i, l := range leagues {
		i, l := i, l
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			statuses[i] = s.checkLeague(ctx, l)
		}); err != nil {
			wg.Done()
			wg.Wait()
			return AuditReport{}, errors.Wrap(err, "submit audit task")
		}
	}
	wg.Wait()

	report = AuditReport{Leagues: statuses}
	for _, st := range statuses {
		if st.Healthy() {
			report.HealthyCount++
			continue
		}
		report.FailedCount++
		s.logger.WarnContext(ctx, "league audit failed",
			"league", st.Name,
			"league_id", st.ID,
			"kind", st.Kind,
			"error", st.Message,
		)
	}

	return report, nil
}

func (s *AuditService) checkLeague(ctx context.Context, l league.League) LeagueStatus {
	started := time.Now()
	status := LeagueStatus{Name: l.Name, ID: l.ID}

	items, err := s.matchRepo.ListByLeague(ctx, l)
	status.DurationMs = time.Since(started).Milliseconds()
	status.Kind = ErrorKind(err)
	if err != nil {
		status.Message = err.Error()
		return status
	}

	status.Matches = len(items)
	return status
}
