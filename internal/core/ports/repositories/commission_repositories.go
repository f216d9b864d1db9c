package repositories

import (
	"context"
	"time"

	"github.com/brokerops/commission_console/internal/core/domain"
)

// CommissionFilters narrows list and summary queries. Nil fields are not
// applied. The organization scope is always a separate, mandatory argument.
type CommissionFilters struct {
	AgentID   *string
	Status    *domain.CommissionStatus
	StartDate *time.Time
	EndDate   *time.Time
}

// CommissionReader defines read operations for commission ledger data.
type CommissionReader interface {
	// FindCommissionByID retrieves a single record scoped to the organization.
	// A record belonging to another organization is reported as not found.
	FindCommissionByID(ctx context.Context, organizationID, commissionID string) (*domain.CommissionRecord, error)

	// ListCommissions retrieves matching records for the organization, newest first.
	ListCommissions(ctx context.Context, organizationID string, filters CommissionFilters) ([]domain.CommissionRecord, error)

	// ListCommissionSummaries retrieves only (status, finalCommission) tuples for
	// the matching records; the aggregator partitions them in memory.
	ListCommissionSummaries(ctx context.Context, organizationID string, filters CommissionFilters) ([]domain.CommissionSummary, error)
}

// CommissionWriter defines write operations for commission ledger data.
// Every write is a single-row statement; atomicity comes from the store.
type CommissionWriter interface {
	// SaveCommission inserts a new record.
	SaveCommission(ctx context.Context, record domain.CommissionRecord) error

	// UpdateCommission writes the full record back, guarded by its version.
	// A stale version yields ErrConflict; a missing or cross-organization row
	// yields ErrNotFound. On success the returned record carries the new version.
	UpdateCommission(ctx context.Context, record domain.CommissionRecord) (*domain.CommissionRecord, error)

	// DeleteCommission permanently removes the record.
	DeleteCommission(ctx context.Context, organizationID, commissionID string) error
}

// CommissionRepositoryFacade combines all commission repository interfaces.
type CommissionRepositoryFacade interface {
	CommissionReader
	CommissionWriter
}
