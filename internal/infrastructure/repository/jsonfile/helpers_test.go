package jsonfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/riskibarqy/league-matches/internal/domain/league"
)

type fixtureDir struct {
	root string
	cfg  Config
}

func newFixtureDir(t *testing.T, manifest string) fixtureDir {
	t.Helper()

	root := t.TempDir()
	matchesDir := filepath.Join(root, "leagues")
	if err := os.MkdirAll(matchesDir, 0o755); err != nil {
		t.Fatalf("mkdir matches dir: %v", err)
	}

	manifestPath := filepath.Join(root, "manifest.json")
	if manifest != "" {
		if err := os.WriteFile(manifestPath, []byte(manifest), 0o644); err != nil {
			t.Fatalf("write manifest: %v", err)
		}
	}

	return fixtureDir{
		root: root,
		cfg: Config{
			ManifestPath: manifestPath,
			MatchesDir:   matchesDir,
			FileField:    league.FileFieldFile,
		},
	}
}

func (d fixtureDir) writeMatches(t *testing.T, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(d.cfg.MatchesDir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write match file %s: %v", name, err)
	}
}
