package analyses

import "context"

// Repo defines persistence operations for analyses. Lookups are scoped to
// the owning user; a record owned by someone else is ErrNotFound.
type Repo interface {
	Create(ctx context.Context, analysis Analysis) error
	GetByID(ctx context.Context, userID, analysisID string) (Analysis, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Analysis, error)
	Delete(ctx context.Context, userID, analysisID string) error
}

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// clampPage applies the default and maximum page size.
func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
