package jsonfile

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-matches/internal/domain/league"
)

const eplManifest = `{"England_Premier_League": {"id": "eng.1", "file": "epl.json"}}`

func TestLeagueRepository_List_PreservesManifestOrder(t *testing.T) {
	t.Parallel()

	// More keys than a small Go map would keep in insertion order by chance.
	names := []string{"Zeta", "Alpha", "Mu", "Beta", "Omega", "Kappa", "Delta", "Gamma", "Eta", "Iota", "Lambda", "Epsilon"}
	parts := make([]string, 0, len(names))
	for i, name := range names {
		parts = append(parts, fmt.Sprintf(`%q: {"id": "l.%d", "file": "%s.json"}`, name, i, strings.ToLower(name)))
	}
	dir := newFixtureDir(t, "{"+strings.Join(parts, ",\n")+"}")

	repo := NewLeagueRepository(dir.cfg)
	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != len(names) {
		t.Fatalf("unexpected league count: got=%d want=%d", len(got), len(names))
	}
	for i, name := range names {
		if got[i].Name != name {
			t.Fatalf("position %d: got=%s want=%s", i, got[i].Name, name)
		}
		if got[i].ID != fmt.Sprintf("l.%d", i) {
			t.Fatalf("position %d: unexpected id %s", i, got[i].ID)
		}
	}
}

func TestLeagueRepository_List_FileFieldSelection(t *testing.T) {
	t.Parallel()

	manifest := `{"Premier League": {"id": "eng.1", "json": "England_Premier_League.json", "file": "epl.json"}}`

	dir := newFixtureDir(t, manifest)
	got, err := NewLeagueRepository(dir.cfg).List(context.Background())
	if err != nil {
		t.Fatalf("list with file field: %v", err)
	}
	if got[0].File != "epl.json" {
		t.Fatalf("file field: got=%q", got[0].File)
	}

	dir.cfg.FileField = league.FileFieldJSON
	got, err = NewLeagueRepository(dir.cfg).List(context.Background())
	if err != nil {
		t.Fatalf("list with json field: %v", err)
	}
	if got[0].File != "England_Premier_League.json" {
		t.Fatalf("json field: got=%q", got[0].File)
	}
}

func TestLeagueRepository_List_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		manifest string
		want     error
	}{
		{name: "missing file", manifest: "", want: league.ErrManifestMissing},
		{name: "invalid json", manifest: `{"a": {"id": "x"`, want: league.ErrManifestMalformed},
		{name: "array top level", manifest: `[{"id": "eng.1"}]`, want: league.ErrManifestMalformed},
		{name: "scalar top level", manifest: `"leagues"`, want: league.ErrManifestMalformed},
		{name: "entry not an object", manifest: `{"Premier League": "eng.1"}`, want: league.ErrManifestMalformed},
		{name: "id wrong type", manifest: `{"Premier League": {"id": 1, "file": "epl.json"}}`, want: league.ErrManifestMalformed},
		{name: "empty id", manifest: `{"Premier League": {"id": " ", "file": "epl.json"}}`, want: league.ErrManifestMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := newFixtureDir(t, tt.manifest)
			_, err := NewLeagueRepository(dir.cfg).List(context.Background())
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLeagueRepository_List_EmptyObject(t *testing.T) {
	t.Parallel()

	dir := newFixtureDir(t, `{}`)
	got, err := NewLeagueRepository(dir.cfg).List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no leagues, got %d", len(got))
	}
}

func TestLeagueRepository_GetByNameAndID(t *testing.T) {
	t.Parallel()

	dir := newFixtureDir(t, `{
		"England_Premier_League": {"id": "eng.1", "file": "epl.json"},
		"LaLiga": {"id": "esp.1"}
	}`)
	repo := NewLeagueRepository(dir.cfg)
	ctx := context.Background()

	l, ok, err := repo.GetByName(ctx, "England_Premier_League")
	if err != nil || !ok {
		t.Fatalf("get by name: ok=%v err=%v", ok, err)
	}
	if l.ID != "eng.1" || l.File != "epl.json" {
		t.Fatalf("unexpected league: %+v", l)
	}

	l, ok, err = repo.GetByID(ctx, "esp.1")
	if err != nil || !ok {
		t.Fatalf("get by id: ok=%v err=%v", ok, err)
	}
	if l.Name != "LaLiga" || l.File != "" {
		t.Fatalf("unexpected league: %+v", l)
	}

	if _, ok, err := repo.GetByName(ctx, "eng.1"); err != nil || ok {
		t.Fatalf("name lookup must not match ids: ok=%v err=%v", ok, err)
	}
	if _, ok, err := repo.GetByID(ctx, "LaLiga"); err != nil || ok {
		t.Fatalf("id lookup must not match names: ok=%v err=%v", ok, err)
	}
}

func TestLeagueRepository_ReReadsManifestEveryCall(t *testing.T) {
	t.Parallel()

	dir := newFixtureDir(t, eplManifest)
	repo := NewLeagueRepository(dir.cfg)

	if _, ok, _ := repo.GetByName(context.Background(), "LaLiga"); ok {
		t.Fatalf("LaLiga should not exist yet")
	}

	updated := `{"England_Premier_League": {"id": "eng.1", "file": "epl.json"}, "LaLiga": {"id": "esp.1", "file": "laliga.json"}}`
	writeFile(t, dir.cfg.ManifestPath, updated)

	if _, ok, err := repo.GetByName(context.Background(), "LaLiga"); err != nil || !ok {
		t.Fatalf("expected LaLiga after manifest update: ok=%v err=%v", ok, err)
	}
}

func TestLeagueRepository_CanceledContext(t *testing.T) {
	t.Parallel()

	dir := newFixtureDir(t, eplManifest)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewLeagueRepository(dir.cfg).List(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
