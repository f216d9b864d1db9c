package services

import (
	"context"

	"github.com/brokerops/commission_console/internal/core/domain"
	"github.com/brokerops/commission_console/internal/dto"
)

// StatsSvc defines the reporting operation over the commission ledger.
type StatsSvc interface {
	// ComputeStats summarizes the caller's organization entries matching the
	// filters into counts and monetary totals. Full scan, no pagination.
	ComputeStats(ctx context.Context, params dto.StatsParams, userID string) (*domain.CommissionStats, error)
}
