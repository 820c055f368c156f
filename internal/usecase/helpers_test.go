package usecase

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/league-matches/internal/domain/league"
	"github.com/riskibarqy/league-matches/internal/domain/match"
	"github.com/riskibarqy/league-matches/internal/infrastructure/repository/memory"
)

type observedLookup struct {
	operation string
	kind      string
}

type recordingObserver struct {
	mu    sync.Mutex
	calls []observedLookup
}

func (o *recordingObserver) ObserveLookup(operation, kind string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls = append(o.calls, observedLookup{operation: operation, kind: kind})
}

func (o *recordingObserver) snapshot() []observedLookup {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]observedLookup(nil), o.calls...)
}

func matchesOf(ids ...string) []match.Match {
	out := make([]match.Match, 0, len(ids))
	for _, id := range ids {
		out = append(out, match.New([]byte(fmt.Sprintf(`{"gameId":%q}`, id))))
	}
	return out
}

func gameIDs(items []match.Match) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, err := item.Summary()
		if err != nil {
			out = append(out, "!"+err.Error())
			continue
		}
		out = append(out, s.GameID)
	}
	return out
}

// eplFixture mirrors the manifest {"England_Premier_League": {"id": "eng.1", "file": "epl.json"}}
// with epl.json = [A, B, C, D, E].
func eplFixture() (*memory.LeagueRepository, *memory.MatchRepository) {
	leagues := memory.NewLeagueRepository([]league.League{
		{Name: "England_Premier_League", ID: "eng.1", File: "epl.json"},
		{Name: "LaLiga", ID: "esp.1", File: "laliga.json"},
		{Name: "Serie A", ID: "ita.1"},
	})
	matches := memory.NewMatchRepository(map[string][]match.Match{
		"epl.json": matchesOf("A", "B", "C", "D", "E"),
	})
	return leagues, matches
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
