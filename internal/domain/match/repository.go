package match

import (
	"context"

	"github.com/riskibarqy/league-matches/internal/domain/league"
)

// Repository reads a league's match collection in stored (chronological) order.
type Repository interface {
	ListByLeague(ctx context.Context, l league.League) ([]Match, error)
}
