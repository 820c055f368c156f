package league

import "context"

// Repository describes manifest reads needed by use cases. Implementations
// re-read storage on every call; List preserves manifest order.
type Repository interface {
	List(ctx context.Context) ([]League, error)
	GetByName(ctx context.Context, name string) (League, bool, error)
	GetByID(ctx context.Context, leagueID string) (League, bool, error)
}
