package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommissionStatus is the lifecycle state of a commission ledger entry.
type CommissionStatus string

const (
	CommissionPending  CommissionStatus = "PENDING"
	CommissionApproved CommissionStatus = "APPROVED"
	CommissionRejected CommissionStatus = "REJECTED"
	CommissionPaid     CommissionStatus = "PAID"
)

// PaymentStatus tracks whether money has actually moved, independently of the
// lifecycle status.
type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "UNPAID"
	PaymentPaid   PaymentStatus = "PAID"
)

// TransactionType is the kind of deal that earned the commission.
type TransactionType string

const (
	TransactionSale    TransactionType = "SALE"
	TransactionLease   TransactionType = "LEASE"
	TransactionRenewal TransactionType = "RENEWAL"
)

// CommissionRecord is a single entry in the agent commission ledger.
// CommissionAmount and FinalCommission are derived from the three monetary
// inputs and are recalculated whenever any of them changes.
type CommissionRecord struct {
	CommissionID    string          `json:"commissionID"`   // Primary Key (UUID)
	OrganizationID  string          `json:"organizationID"` // Tenant scope; set at creation, never changes
	AgentID         string          `json:"agentID"`
	TransactionType TransactionType `json:"transactionType"`
	PropertyID      *string         `json:"propertyID,omitempty"` // Optional reference, display only
	LeadID          *string         `json:"leadID,omitempty"`     // Optional reference, display only
	DealDescription string          `json:"dealDescription"`

	SaleAmount       decimal.Decimal `json:"saleAmount"`
	CommissionRate   decimal.Decimal `json:"commissionRate"`   // Percentage, 0-100
	CommissionAmount decimal.Decimal `json:"commissionAmount"` // = saleAmount * rate / 100
	SplitPercentage  decimal.Decimal `json:"splitPercentage"`  // Percentage, 0-100, default 100
	FinalCommission  decimal.Decimal `json:"finalCommission"`  // = commissionAmount * split / 100

	TransactionDate     time.Time  `json:"transactionDate"`
	ExpectedPaymentDate *time.Time `json:"expectedPaymentDate,omitempty"`
	Notes               string     `json:"notes"`

	Status        CommissionStatus `json:"status"`
	PaymentStatus PaymentStatus    `json:"paymentStatus"`

	ApprovalDate  *time.Time `json:"approvalDate,omitempty"`  // Set only on approval
	ApprovedBy    *string    `json:"approvedBy,omitempty"`    // ProfileID of the approver
	DisputeReason *string    `json:"disputeReason,omitempty"` // Meaningful only when rejected

	PaymentAmount    *decimal.Decimal `json:"paymentAmount,omitempty"`
	PaymentMethod    *string          `json:"paymentMethod,omitempty"`
	PaymentReference *string          `json:"paymentReference,omitempty"`
	PaymentDate      *time.Time       `json:"paymentDate,omitempty"`

	// Version is an optimistic concurrency token; concurrent updates against a
	// stale version fail instead of silently overwriting each other.
	Version int64 `json:"version"`

	// Display enrichment from read-only joins; never required for invariants.
	AgentName string `json:"agentName,omitempty"`

	AuditFields
}

// CanTransitionTo reports whether the lifecycle allows moving from the
// record's current status to the target status. Rejected and paid are
// terminal; a pending record may be paid directly without prior approval.
func (c *CommissionRecord) CanTransitionTo(target CommissionStatus) bool {
	allowed, ok := commissionTransitions[c.Status]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == target {
			return true
		}
	}
	return false
}

var commissionTransitions = map[CommissionStatus][]CommissionStatus{
	CommissionPending:  {CommissionApproved, CommissionRejected, CommissionPaid},
	CommissionApproved: {CommissionPaid, CommissionRejected},
	CommissionRejected: {},
	CommissionPaid:     {},
}
