package dto

import (
	"time"

	"github.com/brokerops/commission_console/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StatsParams narrows the aggregate query; all fields are optional.
type StatsParams struct {
	AgentID   *string    `form:"agentID"`
	StartDate *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"endDate" time_format:"2006-01-02"`
}

// CommissionStatsResponse summarizes the filtered ledger entries.
type CommissionStatsResponse struct {
	TotalCommissions    int64           `json:"totalCommissions"`
	PendingCommissions  int64           `json:"pendingCommissions"`
	ApprovedCommissions int64           `json:"approvedCommissions"`
	RejectedCommissions int64           `json:"rejectedCommissions"`
	PaidCommissions     int64           `json:"paidCommissions"`
	TotalAmount         decimal.Decimal `json:"totalAmount"`
	PendingAmount       decimal.Decimal `json:"pendingAmount"`
	ApprovedAmount      decimal.Decimal `json:"approvedAmount"`
	PaidAmount          decimal.Decimal `json:"paidAmount"`
}

// ToCommissionStatsResponse converts domain stats to the DTO.
func ToCommissionStatsResponse(s *domain.CommissionStats) CommissionStatsResponse {
	return CommissionStatsResponse{
		TotalCommissions:    s.TotalCommissions,
		PendingCommissions:  s.PendingCommissions,
		ApprovedCommissions: s.ApprovedCommissions,
		RejectedCommissions: s.RejectedCommissions,
		PaidCommissions:     s.PaidCommissions,
		TotalAmount:         s.TotalAmount,
		PendingAmount:       s.PendingAmount,
		ApprovedAmount:      s.ApprovedAmount,
		PaidAmount:          s.PaidAmount,
	}
}
