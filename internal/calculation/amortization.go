package calculation

import (
	"github.com/knowyourmortgage/mortgage-analyzer/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)
)

// CalculateMonthlyPayment returns the level monthly payment for a fixed-rate
// loan: P = L*r*(1+r)^n / ((1+r)^n - 1) with r the monthly rate and n the
// number of payments. A non-positive loan amount yields a zero payment, and a
// zero rate degrades to straight-line repayment.
func CalculateMonthlyPayment(loanAmount, annualRate decimal.Decimal, years int) decimal.Decimal {
	if loanAmount.LessThanOrEqual(decimal.Zero) || years <= 0 {
		return decimal.Zero
	}

	n := decimal.NewFromInt(int64(years) * 12)
	if annualRate.IsZero() {
		return loanAmount.Div(n)
	}

	monthlyRate := annualRate.Div(twelve)
	compound := one.Add(monthlyRate).Pow(n)
	return loanAmount.Mul(monthlyRate).Mul(compound).Div(compound.Sub(one))
}

// GenerateAmortizationSchedule produces the month-by-month schedule for a
// loan: exactly years*12 rows, or none when there is nothing to amortize.
// The stored balance is clamped at zero at payoff.
func GenerateAmortizationSchedule(loanAmount, annualRate decimal.Decimal, years int) []domain.AmortizationRow {
	if loanAmount.LessThanOrEqual(decimal.Zero) || years <= 0 {
		return nil
	}

	payment := CalculateMonthlyPayment(loanAmount, annualRate, years)
	monthlyRate := annualRate.Div(twelve)
	months := years * 12

	schedule := make([]domain.AmortizationRow, 0, months)
	balance := loanAmount

	for month := 1; month <= months; month++ {
		interest := balance.Mul(monthlyRate)
		principal := payment.Sub(interest)
		balance = balance.Sub(principal)

		stored := balance
		if stored.LessThan(decimal.Zero) {
			stored = decimal.Zero
		}
		schedule = append(schedule, domain.AmortizationRow{
			Month:     month,
			Payment:   payment,
			Principal: principal,
			Interest:  interest,
			Balance:   stored,
		})
	}

	return schedule
}

// MaxLoanForPayment inverts the amortization formula: the largest principal a
// given monthly payment can carry at the given rate and term,
// L = P * (1 - (1+r)^-n) / r. Used by the rent buying-power estimate.
func MaxLoanForPayment(payment, annualRate decimal.Decimal, years int) decimal.Decimal {
	if payment.LessThanOrEqual(decimal.Zero) || years <= 0 {
		return decimal.Zero
	}

	n := decimal.NewFromInt(int64(years) * 12)
	if annualRate.IsZero() {
		return payment.Mul(n)
	}

	monthlyRate := annualRate.Div(twelve)
	compound := one.Add(monthlyRate).Pow(n)
	return payment.Mul(one.Sub(one.Div(compound))).Div(monthlyRate)
}
