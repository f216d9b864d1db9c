package domain

import (
	"github.com/shopspring/decimal"
)

// CommissionSummary is the projection the aggregator works on: lifecycle
// status plus the agent's final commission, nothing else.
type CommissionSummary struct {
	Status          CommissionStatus
	FinalCommission decimal.Decimal
}

// CommissionStats summarizes a filtered set of ledger entries. TotalAmount
// sums FinalCommission across every fetched record regardless of status: it
// represents total commission value in flight, not only money already paid.
type CommissionStats struct {
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
