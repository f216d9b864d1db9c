package services

import (
	"context"

	"github.com/brokerops/commission_console/internal/core/domain"
)

// TenantSvc resolves a caller identity into its tenant scope. Every service
// entry point calls this exactly once and threads the resolved organization
// ID explicitly into repository calls.
type TenantSvc interface {
	// ResolveContext maps an identity subject to its organization scope.
	// An empty userID yields ErrNotAuthenticated; a user without a profile
	// yields ErrProfileNotFound. No partial work happens after a failure.
	ResolveContext(ctx context.Context, userID string) (*domain.TenantContext, error)
}
