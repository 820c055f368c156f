package usecase

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-matches/internal/domain/league"
	leaguemock "github.com/riskibarqy/league-matches/internal/mocks/domain/league"
	"github.com/stretchr/testify/mock"
)

func TestLeagueService_ListLeagues_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	service := NewLeagueService(leagueRepo, league.LookupByName, nil)

	leagueRepo.
		On("List", mock.MatchedBy(func(v context.Context) bool { return v == ctx })).
		Return([]league.League{
			{Name: "Premier League", ID: "eng.1", File: "England_Premier_League.json"},
			{Name: "LaLiga", ID: "esp.1", File: "Spain_Laliga.json"},
		}, nil).
		Once()

	got, err := service.ListLeagues(ctx)
	if err != nil {
		t.Fatalf("list leagues: %v", err)
	}
	want := []league.Summary{{Name: "Premier League", ID: "eng.1"}, {Name: "LaLiga", ID: "esp.1"}}
	if len(got) != len(want) {
		t.Fatalf("unexpected league count: got=%d want=%d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: got=%+v want=%+v", i, got[i], want[i])
		}
	}
}

func TestLeagueService_ListLeagues_PropagatesManifestErrorUsingMockery(t *testing.T) {
	t.Parallel()

	leagueRepo := leaguemock.NewRepository(t)
	service := NewLeagueService(leagueRepo, league.LookupByName, nil)

	leagueRepo.
		On("List", mock.Anything).
		Return(nil, errors.Wrap(league.ErrManifestMissing, "read manifest")).
		Once()

	got, err := service.ListLeagues(context.Background())
	if !errors.Is(err, league.ErrManifestMissing) {
		t.Fatalf("expected ErrManifestMissing, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected no summaries on error, got %v", got)
	}
}

func TestLeagueService_ResolveLeague_UsesConfiguredModeUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	service := NewLeagueService(leagueRepo, league.LookupByID, nil)

	leagueRepo.
		On("GetByID", mock.Anything, "eng.1").
		Return(league.League{Name: "Premier League", ID: "eng.1", File: "epl.json"}, true, nil).
		Once()

	got, err := service.ResolveLeague(ctx, "eng.1")
	if err != nil {
		t.Fatalf("resolve league: %v", err)
	}
	if got.Name != "Premier League" || got.File != "epl.json" {
		t.Fatalf("unexpected league: %+v", got)
	}
	leagueRepo.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
}

func TestLeagueService_ResolveLeague_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	leagueRepo := leaguemock.NewRepository(t)
	service := NewLeagueService(leagueRepo, league.LookupByName, nil)

	leagueRepo.
		On("GetByName", mock.Anything, "Bundesliga").
		Return(league.League{}, false, nil).
		Once()

	_, err := service.ResolveLeague(context.Background(), "Bundesliga")
	if !errors.Is(err, league.ErrLeagueNotFound) {
		t.Fatalf("expected ErrLeagueNotFound, got %v", err)
	}
	if ErrorKind(err) != KindLeagueNotFound {
		t.Fatalf("unexpected kind: %s", ErrorKind(err))
	}
	if msg := err.Error(); !containsAll(msg, "Bundesliga") {
		t.Fatalf("error should name the key: %s", msg)
	}
}

func TestLeagueService_ResolveByName_DescriptorIncompleteUsingMockery(t *testing.T) {
	t.Parallel()

	leagueRepo := leaguemock.NewRepository(t)
	service := NewLeagueService(leagueRepo, league.LookupByID, nil)

	leagueRepo.
		On("GetByName", mock.Anything, "LaLiga").
		Return(league.League{Name: "LaLiga", ID: "esp.1"}, true, nil).
		Once()

	_, err := service.ResolveByName(context.Background(), "LaLiga")
	if !errors.Is(err, league.ErrDescriptorIncomplete) {
		t.Fatalf("expected ErrDescriptorIncomplete, got %v", err)
	}
}

func TestLeagueService_Resolve_RejectsBlankKeyAndUnknownMode(t *testing.T) {
	t.Parallel()

	leagueRepo := leaguemock.NewRepository(t)
	service := NewLeagueService(leagueRepo, league.LookupByName, nil)

	if _, err := service.ResolveLeague(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank key, got %v", err)
	}
	if _, err := service.Resolve(context.Background(), league.LookupMode("slug"), "eng.1"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown mode, got %v", err)
	}
}
