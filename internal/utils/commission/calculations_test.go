package commission_test

import (
	"testing"

	"github.com/brokerops/commission_console/internal/utils/commission"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculate(t *testing.T) {
	testCases := []struct {
		name             string
		saleAmount       string
		commissionRate   string
		splitPercentage  string
		wantCommission   string
		wantFinal        string
	}{
		{
			name:            "full split keeps entire commission",
			saleAmount:      "200000",
			commissionRate:  "3",
			splitPercentage: "100",
			wantCommission:  "6000",
			wantFinal:       "6000",
		},
		{
			name:            "half split halves the final commission",
			saleAmount:      "200000",
			commissionRate:  "3",
			splitPercentage: "50",
			wantCommission:  "6000",
			wantFinal:       "3000",
		},
		{
			name:            "fractional rate rounds to minor units",
			saleAmount:      "333333",
			commissionRate:  "2.5",
			splitPercentage: "100",
			wantCommission:  "8333.33",
			wantFinal:       "8333.33",
		},
		{
			name:            "fractional split rounds the final amount",
			saleAmount:      "100000",
			commissionRate:  "3",
			splitPercentage: "33.33",
			wantCommission:  "3000",
			wantFinal:       "999.9",
		},
		{
			name:            "zero sale amount yields zero everywhere",
			saleAmount:      "0",
			commissionRate:  "3",
			splitPercentage: "100",
			wantCommission:  "0",
			wantFinal:       "0",
		},
		{
			name:            "zero rate yields zero commission",
			saleAmount:      "500000",
			commissionRate:  "0",
			splitPercentage: "100",
			wantCommission:  "0",
			wantFinal:       "0",
		},
		{
			name:            "zero split yields zero final commission",
			saleAmount:      "500000",
			commissionRate:  "3",
			splitPercentage: "0",
			wantCommission:  "15000",
			wantFinal:       "0",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := commission.Calculate(d(tc.saleAmount), d(tc.commissionRate), d(tc.splitPercentage))
			assert.True(t, got.CommissionAmount.Equal(d(tc.wantCommission)),
				"commission amount: got %s, want %s", got.CommissionAmount, tc.wantCommission)
			assert.True(t, got.FinalCommission.Equal(d(tc.wantFinal)),
				"final commission: got %s, want %s", got.FinalCommission, tc.wantFinal)
		})
	}
}

// Recalculating from already-rounded outputs must be a fixed point, otherwise
// every no-op update would drift the persisted amounts.
func TestCalculateIsIdempotent(t *testing.T) {
	first := commission.Calculate(d("333333.33"), d("2.75"), d("66.67"))
	second := commission.Calculate(d("333333.33"), d("2.75"), d("66.67"))

	assert.True(t, first.CommissionAmount.Equal(second.CommissionAmount))
	assert.True(t, first.FinalCommission.Equal(second.FinalCommission))

	// Derivation invariant within rounding tolerance.
	raw := d("333333.33").Mul(d("2.75")).Div(decimal.NewFromInt(100))
	assert.True(t, first.CommissionAmount.Sub(raw).Abs().LessThanOrEqual(d("0.005")))
}
