package domain_test

import (
	"testing"

	"github.com/brokerops/commission_console/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestCommissionRecord_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from domain.CommissionStatus
		to   domain.CommissionStatus
		want bool
	}{
		{name: "pending can be approved", from: domain.CommissionPending, to: domain.CommissionApproved, want: true},
		{name: "pending can be rejected", from: domain.CommissionPending, to: domain.CommissionRejected, want: true},
		{name: "pending can be paid directly", from: domain.CommissionPending, to: domain.CommissionPaid, want: true},
		{name: "approved can be paid", from: domain.CommissionApproved, to: domain.CommissionPaid, want: true},
		{name: "approved can be rejected", from: domain.CommissionApproved, to: domain.CommissionRejected, want: true},
		{name: "approved cannot go back to pending", from: domain.CommissionApproved, to: domain.CommissionPending, want: false},
		{name: "rejected is terminal", from: domain.CommissionRejected, to: domain.CommissionApproved, want: false},
		{name: "rejected cannot be paid", from: domain.CommissionRejected, to: domain.CommissionPaid, want: false},
		{name: "paid is terminal", from: domain.CommissionPaid, to: domain.CommissionApproved, want: false},
		{name: "paid cannot be re-paid", from: domain.CommissionPaid, to: domain.CommissionPaid, want: false},
		{name: "unknown status allows nothing", from: domain.CommissionStatus("BOGUS"), to: domain.CommissionApproved, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := domain.CommissionRecord{Status: tt.from}
			assert.Equal(t, tt.want, record.CanTransitionTo(tt.to))
		})
	}
}
