package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brokerops/commission_console/internal/apperrors"
	"github.com/brokerops/commission_console/internal/core/domain"
	portsrepo "github.com/brokerops/commission_console/internal/core/ports/repositories"
	portssvc "github.com/brokerops/commission_console/internal/core/ports/services"
	"github.com/brokerops/commission_console/internal/dto"
	"github.com/brokerops/commission_console/internal/middleware"
	calc "github.com/brokerops/commission_console/internal/utils/commission"
)

var (
	ErrAgentRequired            = errors.New("agent is required")
	ErrSaleAmountNotPositive    = errors.New("sale amount must be greater than zero")
	ErrRateOutOfRange           = errors.New("commission rate must be between 0 and 100")
	ErrSplitOutOfRange          = errors.New("split percentage must be between 0 and 100")
	ErrTransactionDateRequired  = errors.New("transaction date is required")
	ErrAgentNotFound            = errors.New("agent not found in organization")
	ErrPaidImmutable            = errors.New("paid entries can no longer be edited")
	ErrPaymentAmountNotPositive = errors.New("payment amount must be greater than zero")
)

// commissionService owns the ledger entry lifecycle: creation, edits with
// derived-amount recalculation, and the guarded status transitions.
type commissionService struct {
	commissionRepo portsrepo.CommissionRepositoryFacade
	agentRepo      portsrepo.AgentRepositoryFacade
	tenantSvc      portssvc.TenantSvc
}

// NewCommissionService creates a new CommissionService.
func NewCommissionService(commissionRepo portsrepo.CommissionRepositoryFacade, agentRepo portsrepo.AgentRepositoryFacade, tenantSvc portssvc.TenantSvc) portssvc.CommissionSvcFacade {
	return &commissionService{
		commissionRepo: commissionRepo,
		agentRepo:      agentRepo,
		tenantSvc:      tenantSvc,
	}
}

var _ portssvc.CommissionSvcFacade = (*commissionService)(nil)

var oneHundred = decimal.NewFromInt(100)

func validatePercentage(value decimal.Decimal, rangeErr error) error {
	if value.IsNegative() || value.GreaterThan(oneHundred) {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, rangeErr)
	}
	return nil
}

// CreateCommission validates the input, derives the commission amounts and
// persists a new PENDING entry scoped to the caller's organization.
func (s *commissionService) CreateCommission(ctx context.Context, req dto.CreateCommissionRequest, userID string) (*domain.CommissionRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tenant, err := s.tenantSvc.ResolveContext(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.AgentID == "" {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, ErrAgentRequired)
	}
	if !req.SaleAmount.IsPositive() {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, ErrSaleAmountNotPositive)
	}
	if err := validatePercentage(req.CommissionRate, ErrRateOutOfRange); err != nil {
		return nil, err
	}
	if req.TransactionDate.IsZero() {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, ErrTransactionDateRequired)
	}

	// Default split: the agent keeps the full commission.
	splitPercentage := oneHundred
	if req.SplitPercentage != nil {
		splitPercentage = *req.SplitPercentage
		if err := validatePercentage(splitPercentage, ErrSplitOutOfRange); err != nil {
			return nil, err
		}
	}

	// The agent reference must resolve within the caller's organization.
	if _, err := s.agentRepo.FindAgentByID(ctx, tenant.OrganizationID, req.AgentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Commission references unknown agent", slog.String("agent_id", req.AgentID), slog.String("organization_id", tenant.OrganizationID))
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, ErrAgentNotFound)
		}
		logger.Error("Failed to verify agent for commission creation", slog.String("error", err.Error()), slog.String("agent_id", req.AgentID))
		return nil, fmt.Errorf("failed to verify agent: %w", err)
	}

	breakdown := calc.Calculate(req.SaleAmount, req.CommissionRate, splitPercentage)

	now := time.Now().UTC()
	record := domain.CommissionRecord{
		CommissionID:        uuid.NewString(),
		OrganizationID:      tenant.OrganizationID,
		AgentID:             req.AgentID,
		TransactionType:     domain.TransactionType(req.TransactionType),
		PropertyID:          req.PropertyID,
		LeadID:              req.LeadID,
		DealDescription:     req.DealDescription,
		SaleAmount:          req.SaleAmount,
		CommissionRate:      req.CommissionRate,
		CommissionAmount:    breakdown.CommissionAmount,
		SplitPercentage:     splitPercentage,
		FinalCommission:     breakdown.FinalCommission,
		TransactionDate:     req.TransactionDate,
		ExpectedPaymentDate: req.ExpectedPaymentDate,
		Notes:               req.Notes,
		Status:              domain.CommissionPending,
		PaymentStatus:       domain.PaymentUnpaid,
		Version:             1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     tenant.ProfileID,
			LastUpdatedAt: now,
			LastUpdatedBy: tenant.ProfileID,
		},
	}

	if err := s.commissionRepo.SaveCommission(ctx, record); err != nil {
		logger.Error("Failed to save commission", slog.String("error", err.Error()), slog.String("organization_id", tenant.OrganizationID))
		return nil, fmt.Errorf("failed to save commission: %w", err)
	}

	logger.Info("Commission created", slog.String("commission_id", record.CommissionID), slog.String("organization_id", tenant.OrganizationID))
	return &record, nil
}

// GetCommission retrieves a single entry, enriched with the agent name for
// display. Cross-organization IDs surface as not found.
func (s *commissionService) GetCommission(ctx context.Context, commissionID string, userID string) (*domain.CommissionRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tenant, err := s.tenantSvc.ResolveContext(ctx, userID)
	if err != nil {
		return nil, err
	}

	record, err := s.commissionRepo.FindCommissionByID(ctx, tenant.OrganizationID, commissionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find commission", slog.String("error", err.Error()), slog.String("commission_id", commissionID))
		}
		return nil, err
	}

	s.enrichAgentNames(ctx, tenant.OrganizationID, record)
	return record, nil
}

// ListCommissions retrieves the organization's entries matching the filters,
// newest first.
func (s *commissionService) ListCommissions(ctx context.Context, params dto.ListCommissionsParams, userID string) ([]domain.CommissionRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tenant, err := s.tenantSvc.ResolveContext(ctx, userID)
	if err != nil {
		return nil, err
	}

	filters := portsrepo.CommissionFilters{
		AgentID:   params.AgentID,
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
	}
	if params.Status != nil {
		status := domain.CommissionStatus(*params.Status)
		filters.Status = &status
	}

	records, err := s.commissionRepo.ListCommissions(ctx, tenant.OrganizationID, filters)
	if err != nil {
		logger.Error("Failed to list commissions", slog.String("error", err.Error()), slog.String("organization_id", tenant.OrganizationID))
		return nil, fmt.Errorf("failed to retrieve commissions: %w", err)
	}

	// Batch the display enrichment for the whole page.
	if len(records) > 0 {
		agentIDs := make([]string, 0, len(records))
		seen := make(map[string]struct{}, len(records))
		for _, r := range records {
			if _, ok := seen[r.AgentID]; !ok {
				seen[r.AgentID] = struct{}{}
				agentIDs = append(agentIDs, r.AgentID)
			}
		}
		names, err := s.agentRepo.FindAgentNamesByIDs(ctx, tenant.OrganizationID, agentIDs)
		if err != nil {
			logger.Warn("Failed to enrich agent names for list", slog.String("error", err.Error()))
		} else {
			for i := range records {
				records[i].AgentName = names[records[i].AgentID]
			}
		}
	}

	logger.Debug("Commissions listed", slog.Int("count", len(records)))
	return records, nil
}

// UpdateCommission merges the partial input into the stored entry. Any change
// to a monetary input refreshes the derived amounts; the write is guarded by
// the entry's version so a concurrent edit fails instead of being lost.
func (s *commissionService) UpdateCommission(ctx context.Context, commissionID string, req dto.UpdateCommissionRequest, userID string) (*domain.CommissionRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tenant, err := s.tenantSvc.ResolveContext(ctx, userID)
	if err != nil {
		return nil, err
	}

	record, err := s.commissionRepo.FindCommissionByID(ctx, tenant.OrganizationID, commissionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Commission not found for update", slog.String("commission_id", commissionID))
		} else {
			logger.Error("Failed to find commission for update", slog.String("error", err.Error()), slog.String("commission_id", commissionID))
		}
		return nil, err
	}

	if record.Status == domain.CommissionPaid {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrConflict, ErrPaidImmutable)
	}

	if req.TransactionType != nil {
		record.TransactionType = domain.TransactionType(*req.TransactionType)
	}
	if req.DealDescription != nil {
		record.DealDescription = *req.DealDescription
	}
	if req.TransactionDate != nil {
		record.TransactionDate = *req.TransactionDate
	}
	if req.ExpectedPaymentDate != nil {
		record.ExpectedPaymentDate = req.ExpectedPaymentDate
	}
	if req.Notes != nil {
		record.Notes = *req.Notes
	}

	monetaryChanged := req.SaleAmount != nil || req.CommissionRate != nil || req.SplitPercentage != nil
	if req.SaleAmount != nil {
		if req.SaleAmount.IsNegative() {
			return nil, fmt.Errorf("%w: sale amount must not be negative", apperrors.ErrValidation)
		}
		record.SaleAmount = *req.SaleAmount
	}
	if req.CommissionRate != nil {
		if err := validatePercentage(*req.CommissionRate, ErrRateOutOfRange); err != nil {
			return nil, err
		}
		record.CommissionRate = *req.CommissionRate
	}
	if req.SplitPercentage != nil {
		if err := validatePercentage(*req.SplitPercentage, ErrSplitOutOfRange); err != nil {
			return nil, err
		}
		record.SplitPercentage = *req.SplitPercentage
	}

	if monetaryChanged {
		breakdown := calc.Calculate(record.SaleAmount, record.CommissionRate, record.SplitPercentage)
		record.CommissionAmount = breakdown.CommissionAmount
		record.FinalCommission = breakdown.FinalCommission
	}

	record.LastUpdatedAt = time.Now().UTC()
	record.LastUpdatedBy = tenant.ProfileID

	updated, err := s.commissionRepo.UpdateCommission(ctx, *record)
	if err != nil {
		logger.Error("Failed to update commission", slog.String("error", err.Error()), slog.String("commission_id", commissionID))
		return nil, err
	}

	logger.Info("Commission updated", slog.String("commission_id", commissionID))
	return updated, nil
}

// ApproveCommission moves a pending entry to APPROVED and stamps who approved
// it and when.
func (s *commissionService) ApproveCommission(ctx context.Context, commissionID string, userID string) (*domain.CommissionRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tenant, err := s.tenantSvc.ResolveContext(ctx, userID)
	if err != nil {
		return nil, err
	}

	record, err := s.commissionRepo.FindCommissionByID(ctx, tenant.OrganizationID, commissionID)
	if err != nil {
		return nil, err
	}

	if !record.CanTransitionTo(domain.CommissionApproved) {
		logger.Warn("Disallowed approve transition", slog.String("commission_id", commissionID), slog.String("status", string(record.Status)))
		return nil, fmt.Errorf("%w: cannot approve a %s commission", apperrors.ErrConflict, record.Status)
	}

	now := time.Now().UTC()
	record.Status = domain.CommissionApproved
	record.ApprovalDate = &now
	record.ApprovedBy = &tenant.ProfileID
	record.LastUpdatedAt = now
	record.LastUpdatedBy = tenant.ProfileID

	updated, err := s.commissionRepo.UpdateCommission(ctx, *record)
	if err != nil {
		logger.Error("Failed to approve commission", slog.String("error", err.Error()), slog.String("commission_id", commissionID))
		return nil, err
	}

	logger.Info("Commission approved", slog.String("commission_id", commissionID), slog.String("approved_by", tenant.ProfileID))
	return updated, nil
}

// RejectCommission moves an entry to REJECTED with an optional dispute reason.
func (s *commissionService) RejectCommission(ctx context.Context, commissionID string, req dto.RejectCommissionRequest, userID string) (*domain.CommissionRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tenant, err := s.tenantSvc.ResolveContext(ctx, userID)
	if err != nil {
		return nil, err
	}

	record, err := s.commissionRepo.FindCommissionByID(ctx, tenant.OrganizationID, commissionID)
	if err != nil {
		return nil, err
	}

	if !record.CanTransitionTo(domain.CommissionRejected) {
		logger.Warn("Disallowed reject transition", slog.String("commission_id", commissionID), slog.String("status", string(record.Status)))
		return nil, fmt.Errorf("%w: cannot reject a %s commission", apperrors.ErrConflict, record.Status)
	}

	now := time.Now().UTC()
	record.Status = domain.CommissionRejected
	record.DisputeReason = req.DisputeReason
	record.LastUpdatedAt = now
	record.LastUpdatedBy = tenant.ProfileID

	updated, err := s.commissionRepo.UpdateCommission(ctx, *record)
	if err != nil {
		logger.Error("Failed to reject commission", slog.String("error", err.Error()), slog.String("commission_id", commissionID))
		return nil, err
	}

	logger.Info("Commission rejected", slog.String("commission_id", commissionID))
	return updated, nil
}

// MarkCommissionPaid records payment details and moves the entry to PAID.
// PaymentDate defaults to the call time when omitted. Both the lifecycle
// status and the payment status move together.
func (s *commissionService) MarkCommissionPaid(ctx context.Context, commissionID string, req dto.MarkPaidRequest, userID string) (*domain.CommissionRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tenant, err := s.tenantSvc.ResolveContext(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !req.PaymentAmount.IsPositive() {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, ErrPaymentAmountNotPositive)
	}
	if req.PaymentMethod == "" {
		return nil, fmt.Errorf("%w: payment method is required", apperrors.ErrValidation)
	}

	record, err := s.commissionRepo.FindCommissionByID(ctx, tenant.OrganizationID, commissionID)
	if err != nil {
		return nil, err
	}

	if !record.CanTransitionTo(domain.CommissionPaid) {
		logger.Warn("Disallowed paid transition", slog.String("commission_id", commissionID), slog.String("status", string(record.Status)))
		return nil, fmt.Errorf("%w: cannot mark a %s commission as paid", apperrors.ErrConflict, record.Status)
	}

	now := time.Now().UTC()
	paymentDate := now
	if req.PaymentDate != nil {
		paymentDate = *req.PaymentDate
	}

	record.Status = domain.CommissionPaid
	record.PaymentStatus = domain.PaymentPaid
	record.PaymentAmount = &req.PaymentAmount
	record.PaymentMethod = &req.PaymentMethod
	record.PaymentReference = req.PaymentReference
	record.PaymentDate = &paymentDate
	record.LastUpdatedAt = now
	record.LastUpdatedBy = tenant.ProfileID

	updated, err := s.commissionRepo.UpdateCommission(ctx, *record)
	if err != nil {
		logger.Error("Failed to mark commission paid", slog.String("error", err.Error()), slog.String("commission_id", commissionID))
		return nil, err
	}

	logger.Info("Commission marked paid", slog.String("commission_id", commissionID), slog.String("payment_method", req.PaymentMethod))
	return updated, nil
}

// DeleteCommission permanently removes an entry. Allowed at any status.
func (s *commissionService) DeleteCommission(ctx context.Context, commissionID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	tenant, err := s.tenantSvc.ResolveContext(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.commissionRepo.DeleteCommission(ctx, tenant.OrganizationID, commissionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Commission not found for delete", slog.String("commission_id", commissionID))
		} else {
			logger.Error("Failed to delete commission", slog.String("error", err.Error()), slog.String("commission_id", commissionID))
		}
		return err
	}

	logger.Info("Commission deleted", slog.String("commission_id", commissionID))
	return nil
}

// enrichAgentNames fills the display-only agent name. Failures are logged and
// ignored; display enrichment never gates a ledger operation.
func (s *commissionService) enrichAgentNames(ctx context.Context, organizationID string, record *domain.CommissionRecord) {
	names, err := s.agentRepo.FindAgentNamesByIDs(ctx, organizationID, []string{record.AgentID})
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to enrich agent name", slog.String("agent_id", record.AgentID), slog.String("error", err.Error()))
		return
	}
	if name, ok := names[record.AgentID]; ok {
		record.AgentName = name
	}
}
