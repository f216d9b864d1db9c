package services

import (
	"context"

	"github.com/brokerops/commission_console/internal/core/domain"
	"github.com/brokerops/commission_console/internal/dto"
)

// CommissionReaderSvc defines read operations for the commission ledger.
// Every operation resolves the caller's tenant scope from userID first; a
// caller without a profile gets ErrProfileNotFound before any data access.
type CommissionReaderSvc interface {
	// GetCommission retrieves a single ledger entry visible to the caller.
	GetCommission(ctx context.Context, commissionID string, userID string) (*domain.CommissionRecord, error)

	// ListCommissions retrieves the caller's organization entries, newest first.
	ListCommissions(ctx context.Context, params dto.ListCommissionsParams, userID string) ([]domain.CommissionRecord, error)
}

// CommissionWriterSvc defines the lifecycle operations of the ledger.
type CommissionWriterSvc interface {
	// CreateCommission validates input, derives the commission amounts and
	// persists a new entry in PENDING status.
	CreateCommission(ctx context.Context, req dto.CreateCommissionRequest, userID string) (*domain.CommissionRecord, error)

	// UpdateCommission merges the partial input into the stored entry,
	// recalculating derived amounts when any monetary input changed.
	UpdateCommission(ctx context.Context, commissionID string, req dto.UpdateCommissionRequest, userID string) (*domain.CommissionRecord, error)

	// ApproveCommission moves a pending entry to APPROVED, stamping the
	// approval date and the approving profile.
	ApproveCommission(ctx context.Context, commissionID string, userID string) (*domain.CommissionRecord, error)

	// RejectCommission moves an entry to REJECTED with an optional dispute reason.
	RejectCommission(ctx context.Context, commissionID string, req dto.RejectCommissionRequest, userID string) (*domain.CommissionRecord, error)

	// MarkCommissionPaid records payment details and moves the entry to PAID.
	MarkCommissionPaid(ctx context.Context, commissionID string, req dto.MarkPaidRequest, userID string) (*domain.CommissionRecord, error)

	// DeleteCommission permanently removes an entry. Irreversible.
	DeleteCommission(ctx context.Context, commissionID string, userID string) error
}

// CommissionSvcFacade combines all commission service interfaces.
type CommissionSvcFacade interface {
	CommissionReaderSvc
	CommissionWriterSvc
}
