package dto

import (
	"time"

	"github.com/brokerops/commission_console/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Commission DTOs ---

// CreateCommissionRequest defines data for creating a new ledger entry.
// SplitPercentage defaults to 100 when omitted (agent keeps the full commission).
type CreateCommissionRequest struct {
	AgentID             string           `json:"agentID" binding:"required"`
	TransactionType     string           `json:"transactionType" binding:"required,oneof=SALE LEASE RENEWAL"`
	PropertyID          *string          `json:"propertyID"`
	LeadID              *string          `json:"leadID"`
	DealDescription     string           `json:"dealDescription"`
	SaleAmount          decimal.Decimal  `json:"saleAmount" binding:"required"`
	CommissionRate      decimal.Decimal  `json:"commissionRate" binding:"required,gte=0,lte=100"`
	SplitPercentage     *decimal.Decimal `json:"splitPercentage" binding:"omitempty,gte=0,lte=100"`
	TransactionDate     time.Time        `json:"transactionDate" binding:"required"`
	ExpectedPaymentDate *time.Time       `json:"expectedPaymentDate"`
	Notes               string           `json:"notes"`
}

// UpdateCommissionRequest defines the editable fields of a ledger entry.
// Nil fields are left untouched; presence of any monetary input triggers a
// recalculation of the derived amounts.
type UpdateCommissionRequest struct {
	TransactionType     *string          `json:"transactionType" binding:"omitempty,oneof=SALE LEASE RENEWAL"`
	DealDescription     *string          `json:"dealDescription"`
	SaleAmount          *decimal.Decimal `json:"saleAmount" binding:"omitempty,gte=0"`
	CommissionRate      *decimal.Decimal `json:"commissionRate" binding:"omitempty,gte=0,lte=100"`
	SplitPercentage     *decimal.Decimal `json:"splitPercentage" binding:"omitempty,gte=0,lte=100"`
	TransactionDate     *time.Time       `json:"transactionDate"`
	ExpectedPaymentDate *time.Time       `json:"expectedPaymentDate"`
	Notes               *string          `json:"notes"`
}

// RejectCommissionRequest carries the optional dispute reason for a rejection.
type RejectCommissionRequest struct {
	DisputeReason *string `json:"disputeReason"`
}

// MarkPaidRequest carries the payment details recorded when a commission is
// marked paid. PaymentDate defaults to the call time when omitted.
type MarkPaidRequest struct {
	PaymentAmount    decimal.Decimal `json:"paymentAmount" binding:"required"`
	PaymentMethod    string          `json:"paymentMethod" binding:"required"`
	PaymentReference *string         `json:"paymentReference"`
	PaymentDate      *time.Time      `json:"paymentDate"`
}

// ListCommissionsParams narrows the list query; all fields are optional.
type ListCommissionsParams struct {
	AgentID   *string    `form:"agentID"`
	Status    *string    `form:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED PAID"`
	StartDate *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"endDate" time_format:"2006-01-02"`
}

// CommissionResponse defines the data returned for a ledger entry.
type CommissionResponse struct {
	CommissionID        string           `json:"commissionID"`
	OrganizationID      string           `json:"organizationID"`
	AgentID             string           `json:"agentID"`
	AgentName           string           `json:"agentName,omitempty"`
	TransactionType     string           `json:"transactionType"`
	PropertyID          *string          `json:"propertyID,omitempty"`
	LeadID              *string          `json:"leadID,omitempty"`
	DealDescription     string           `json:"dealDescription"`
	SaleAmount          decimal.Decimal  `json:"saleAmount"`
	CommissionRate      decimal.Decimal  `json:"commissionRate"`
	CommissionAmount    decimal.Decimal  `json:"commissionAmount"`
	SplitPercentage     decimal.Decimal  `json:"splitPercentage"`
	FinalCommission     decimal.Decimal  `json:"finalCommission"`
	TransactionDate     time.Time        `json:"transactionDate"`
	ExpectedPaymentDate *time.Time       `json:"expectedPaymentDate,omitempty"`
	Notes               string           `json:"notes"`
	Status              string           `json:"status"`
	PaymentStatus       string           `json:"paymentStatus"`
	ApprovalDate        *time.Time       `json:"approvalDate,omitempty"`
	ApprovedBy          *string          `json:"approvedBy,omitempty"`
	DisputeReason       *string          `json:"disputeReason,omitempty"`
	PaymentAmount       *decimal.Decimal `json:"paymentAmount,omitempty"`
	PaymentMethod       *string          `json:"paymentMethod,omitempty"`
	PaymentReference    *string          `json:"paymentReference,omitempty"`
	PaymentDate         *time.Time       `json:"paymentDate,omitempty"`
	Version             int64            `json:"version"`
	CreatedAt           time.Time        `json:"createdAt"`
	CreatedBy           string           `json:"createdBy"`
}

// ToCommissionResponse converts a domain.CommissionRecord to its DTO.
func ToCommissionResponse(c *domain.CommissionRecord) CommissionResponse {
	return CommissionResponse{
		CommissionID:        c.CommissionID,
		OrganizationID:      c.OrganizationID,
		AgentID:             c.AgentID,
		AgentName:           c.AgentName,
		TransactionType:     string(c.TransactionType),
		PropertyID:          c.PropertyID,
		LeadID:              c.LeadID,
		DealDescription:     c.DealDescription,
		SaleAmount:          c.SaleAmount,
		CommissionRate:      c.CommissionRate,
		CommissionAmount:    c.CommissionAmount,
		SplitPercentage:     c.SplitPercentage,
		FinalCommission:     c.FinalCommission,
		TransactionDate:     c.TransactionDate,
		ExpectedPaymentDate: c.ExpectedPaymentDate,
		Notes:               c.Notes,
		Status:              string(c.Status),
		PaymentStatus:       string(c.PaymentStatus),
		ApprovalDate:        c.ApprovalDate,
		ApprovedBy:          c.ApprovedBy,
		DisputeReason:       c.DisputeReason,
		PaymentAmount:       c.PaymentAmount,
		PaymentMethod:       c.PaymentMethod,
		PaymentReference:    c.PaymentReference,
		PaymentDate:         c.PaymentDate,
		Version:             c.Version,
		CreatedAt:           c.CreatedAt,
		CreatedBy:           c.CreatedBy,
	}
}

// ListCommissionsResponse wraps a list of ledger entries.
type ListCommissionsResponse struct {
	Commissions []CommissionResponse `json:"commissions"`
}

// ToListCommissionsResponse converts a slice of domain records to the DTO.
func ToListCommissionsResponse(records []domain.CommissionRecord) ListCommissionsResponse {
	list := make([]CommissionResponse, len(records))
	for i := range records {
		list[i] = ToCommissionResponse(&records[i])
	}
	return ListCommissionsResponse{Commissions: list}
}
