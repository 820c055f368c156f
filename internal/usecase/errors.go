package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-matches/internal/domain/league"
	"github.com/riskibarqy/league-matches/internal/domain/match"
)

var ErrInvalidInput = errors.New("invalid input")

// Error kinds reported by ErrorKind.
const (
	KindOK                   = "ok"
	KindInvalidInput         = "invalid_input"
	KindManifestMissing      = "manifest_missing"
	KindManifestMalformed    = "manifest_malformed"
	KindLeagueNotFound       = "league_not_found"
	KindDescriptorIncomplete = "descriptor_incomplete"
	KindMatchFileMissing     = "match_file_missing"
	KindMatchFileMalformed   = "match_file_malformed"
	KindCanceled             = "canceled"
	KindInternal             = "internal"
)

// ErrorKind classifies err into one stable snake_case kind.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return KindOK
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, league.ErrManifestMissing):
		return KindManifestMissing
	case errors.Is(err, league.ErrManifestMalformed):
		return KindManifestMalformed
	case errors.Is(err, league.ErrLeagueNotFound):
		return KindLeagueNotFound
	case errors.Is(err, league.ErrDescriptorIncomplete):
		return KindDescriptorIncomplete
	case errors.Is(err, match.ErrMatchFileMissing):
		return KindMatchFileMissing
	case errors.Is(err, match.ErrMatchFileMalformed):
		return KindMatchFileMalformed
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	default:
		return KindInternal
	}
}
