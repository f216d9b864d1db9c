package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brokerops/commission_console/internal/apperrors"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultQueryTimeout bounds a single store round trip when no explicit
// timeout was configured.
const DefaultQueryTimeout = 5 * time.Second

// BaseRepository provides common functionality for all repositories. Every
// store call runs under a per-call deadline; a store that does not answer in
// time surfaces as ErrStoreUnavailable instead of hanging the request.
type BaseRepository struct {
	Pool         *pgxpool.Pool
	QueryTimeout time.Duration
}

// withQueryTimeout derives a bounded context for one store round trip.
func (r *BaseRepository) withQueryTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := r.QueryTimeout
	if timeout <= 0 {
		timeout = DefaultQueryTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// mapStoreErr translates driver-level failures into the application taxonomy.
// Deadline expiry means the store did not answer in time.
func mapStoreErr(err error, operation string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s timed out", apperrors.ErrStoreUnavailable, operation)
	}
	return fmt.Errorf("%s: %w", operation, err)
}
