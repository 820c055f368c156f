package jsonfile

import (
	"strings"

	"github.com/riskibarqy/league-matches/internal/domain/league"
)

// Config locates the manifest and the directory holding per-league match files.
type Config struct {
	ManifestPath string
	MatchesDir   string
	FileField    league.FileField
}

func (c Config) fileField() league.FileField {
	if strings.TrimSpace(string(c.FileField)) == "" {
		return league.FileFieldFile
	}
	return c.FileField
}
