package commission

import (
	"github.com/shopspring/decimal"
)

// MoneyPrecision is the currency-minor-unit precision applied to derived
// amounts before persistence. Applying it here keeps recalculation idempotent:
// feeding unchanged inputs back through Calculate yields identical outputs.
const MoneyPrecision = 2

var oneHundred = decimal.NewFromInt(100)

// Breakdown holds the two derived monetary fields of a commission record.
type Breakdown struct {
	CommissionAmount decimal.Decimal
	FinalCommission  decimal.Decimal
}

// Calculate derives the commission amounts from the three monetary inputs.
// commissionAmount = saleAmount * commissionRate / 100
// finalCommission  = commissionAmount * splitPercentage / 100
// Inputs are validated by the caller; this function has no error cases.
func Calculate(saleAmount, commissionRate, splitPercentage decimal.Decimal) Breakdown {
	commissionAmount := saleAmount.Mul(commissionRate).Div(oneHundred).Round(MoneyPrecision)
	finalCommission := commissionAmount.Mul(splitPercentage).Div(oneHundred).Round(MoneyPrecision)
	return Breakdown{
		CommissionAmount: commissionAmount,
		FinalCommission:  finalCommission,
	}
}
