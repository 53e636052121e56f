package calculation

import (
	"github.com/shopspring/decimal"
)

// FutureValue compounds an initial lump sum plus a level monthly contribution
// stream at a fixed annual return:
//
//	FV = I*(1+i)^n + C*((1+i)^n - 1)/i, i = annualReturn/12, n = years*12.
//
// The two components are independent; either may be zero. A zero return rate
// degrades the contribution term to C*n.
func FutureValue(initial, monthlyContribution, annualReturn decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 {
		return initial
	}

	n := decimal.NewFromInt(int64(years) * 12)
	if annualReturn.IsZero() {
		return initial.Add(monthlyContribution.Mul(n))
	}

	monthlyReturn := annualReturn.Div(twelve)
	compound := one.Add(monthlyReturn).Pow(n)

	fvInitial := initial.Mul(compound)
	fvContributions := monthlyContribution.Mul(compound.Sub(one)).Div(monthlyReturn)

	return fvInitial.Add(fvContributions)
}

// PresentValue discounts a future nominal amount back to today's purchasing
// power: PV = FV / (1+rate)^years. It is applied once per year index, never
// compounded twice.
func PresentValue(amount decimal.Decimal, years int, rate decimal.Decimal) decimal.Decimal {
	if years <= 0 || rate.IsZero() {
		return amount
	}
	return amount.Div(one.Add(rate).Pow(decimal.NewFromInt(int64(years))))
}

// TaxSavings is the interest-deduction benefit: interest paid times the
// marginal tax rate.
func TaxSavings(interestPaid, taxRate decimal.Decimal) decimal.Decimal {
	return interestPaid.Mul(taxRate)
}
