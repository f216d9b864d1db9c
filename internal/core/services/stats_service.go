package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/brokerops/commission_console/internal/core/domain"
	portsrepo "github.com/brokerops/commission_console/internal/core/ports/repositories"
	portssvc "github.com/brokerops/commission_console/internal/core/ports/services"
	"github.com/brokerops/commission_console/internal/dto"
	"github.com/brokerops/commission_console/internal/middleware"
)

// statsService summarizes ledger entries into counts and monetary totals.
// It fetches only (status, finalCommission) tuples and partitions them here,
// so the totals are cheap to cross-check against the same filtered set.
// This is a full-scan aggregate; very large tenants will feel it.
type statsService struct {
	commissionRepo portsrepo.CommissionReader
	tenantSvc      portssvc.TenantSvc
}

// NewStatsService creates a new StatsService.
func NewStatsService(commissionRepo portsrepo.CommissionReader, tenantSvc portssvc.TenantSvc) portssvc.StatsSvc {
	return &statsService{
		commissionRepo: commissionRepo,
		tenantSvc:      tenantSvc,
	}
}

var _ portssvc.StatsSvc = (*statsService)(nil)

// ComputeStats partitions the filtered entries by lifecycle status and sums
// the agent's final commission per partition. TotalAmount covers every
// fetched entry regardless of status: it is the commission value in flight.
func (s *statsService) ComputeStats(ctx context.Context, params dto.StatsParams, userID string) (*domain.CommissionStats, error) {
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

	summaries, err := s.commissionRepo.ListCommissionSummaries(ctx, tenant.OrganizationID, filters)
	if err != nil {
		logger.Error("Failed to fetch commission summaries", slog.String("error", err.Error()), slog.String("organization_id", tenant.OrganizationID))
		return nil, fmt.Errorf("failed to compute commission stats: %w", err)
	}

	stats := domain.CommissionStats{
		TotalAmount:    decimal.Zero,
		PendingAmount:  decimal.Zero,
		ApprovedAmount: decimal.Zero,
		PaidAmount:     decimal.Zero,
	}

	for _, summary := range summaries {
		stats.TotalCommissions++
		stats.TotalAmount = stats.TotalAmount.Add(summary.FinalCommission)

		switch summary.Status {
		case domain.CommissionPending:
			stats.PendingCommissions++
			stats.PendingAmount = stats.PendingAmount.Add(summary.FinalCommission)
		case domain.CommissionApproved:
			stats.ApprovedCommissions++
			stats.ApprovedAmount = stats.ApprovedAmount.Add(summary.FinalCommission)
		case domain.CommissionRejected:
			stats.RejectedCommissions++
		case domain.CommissionPaid:
			stats.PaidCommissions++
			stats.PaidAmount = stats.PaidAmount.Add(summary.FinalCommission)
		}
	}

	logger.Debug("Commission stats computed", slog.Int64("total", stats.TotalCommissions), slog.String("organization_id", tenant.OrganizationID))
	return &stats, nil
}
