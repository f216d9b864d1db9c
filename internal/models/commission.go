package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Commission is the DB-shaped representation of a commission ledger entry.
// Nullable columns use pointer types; repositories map to/from domain.
type Commission struct {
	CommissionID    string  `db:"commission_id"`
	OrganizationID  string  `db:"organization_id"`
	AgentID         string  `db:"agent_id"`
	TransactionType string  `db:"transaction_type"`
	PropertyID      *string `db:"property_id"`
	LeadID          *string `db:"lead_id"`
	DealDescription string  `db:"deal_description"`

	SaleAmount       decimal.Decimal `db:"sale_amount"`
	CommissionRate   decimal.Decimal `db:"commission_rate"`
	CommissionAmount decimal.Decimal `db:"commission_amount"`
	SplitPercentage  decimal.Decimal `db:"split_percentage"`
	FinalCommission  decimal.Decimal `db:"final_commission"`

	TransactionDate     time.Time  `db:"transaction_date"`
	ExpectedPaymentDate *time.Time `db:"expected_payment_date"`
	Notes               string     `db:"notes"`

	Status        string `db:"status"`
	PaymentStatus string `db:"payment_status"`

	ApprovalDate  *time.Time `db:"approval_date"`
	ApprovedBy    *string    `db:"approved_by"`
	DisputeReason *string    `db:"dispute_reason"`

	PaymentAmount    *decimal.Decimal `db:"payment_amount"`
	PaymentMethod    *string          `db:"payment_method"`
	PaymentReference *string          `db:"payment_reference"`
	PaymentDate      *time.Time       `db:"payment_date"`

	Version int64 `db:"version"`

	AuditFields
}
