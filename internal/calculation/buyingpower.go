package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// piShareOfPayment is the portion of an all-in monthly housing budget that
// goes to principal and interest; the rest covers taxes, insurance, and
// maintenance.
var piShareOfPayment = decimal.NewFromFloat(0.75)

// BuyingPowerEstimate translates a monthly rent budget into the home price
// the same money could finance at a given rate, term, and down payment
// percentage.
type BuyingPowerEstimate struct {
	MonthlyBudget    decimal.Decimal `json:"monthly_budget"`
	PrincipalBudget  decimal.Decimal `json:"principal_budget"`
	InterestRate     decimal.Decimal `json:"interest_rate"`
	TermYears        int             `json:"term_years"`
	DownPaymentPct   decimal.Decimal `json:"down_payment_pct"`
	MaxLoanAmount    decimal.Decimal `json:"max_loan_amount"`
	AffordablePrice  decimal.Decimal `json:"affordable_price"`
	DownPaymentNeeded decimal.Decimal `json:"down_payment_needed"`
}

// EstimateBuyingPower answers "what home could this rent buy": the monthly
// budget is discounted to its principal-and-interest share, inverted through
// the amortization formula, and grossed up by the down payment percentage.
func EstimateBuyingPower(monthlyBudget, annualRate decimal.Decimal, termYears int, downPaymentPct decimal.Decimal) (*BuyingPowerEstimate, error) {
	if monthlyBudget.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("monthly budget must be positive")
	}
	if termYears <= 0 {
		return nil, fmt.Errorf("term years must be positive")
	}
	if downPaymentPct.LessThan(decimal.Zero) || downPaymentPct.GreaterThanOrEqual(one) {
		return nil, fmt.Errorf("down payment percentage must be at least 0 and below 1")
	}

	principalBudget := monthlyBudget.Mul(piShareOfPayment)
	maxLoan := MaxLoanForPayment(principalBudget, annualRate, termYears)
	price := maxLoan.Div(one.Sub(downPaymentPct))

	return &BuyingPowerEstimate{
		MonthlyBudget:     monthlyBudget,
		PrincipalBudget:   principalBudget,
		InterestRate:      annualRate,
		TermYears:         termYears,
		DownPaymentPct:    downPaymentPct,
		MaxLoanAmount:     maxLoan,
		AffordablePrice:   price,
		DownPaymentNeeded: price.Mul(downPaymentPct),
	}, nil
}

// EstimateBuyingPowerRange reports the estimate at both common terms, 15 and
// 30 years, for the same budget and rate.
func EstimateBuyingPowerRange(monthlyBudget, annualRate, downPaymentPct decimal.Decimal) (fifteen, thirty *BuyingPowerEstimate, err error) {
	fifteen, err = EstimateBuyingPower(monthlyBudget, annualRate, 15, downPaymentPct)
	if err != nil {
		return nil, nil, err
	}
	thirty, err = EstimateBuyingPower(monthlyBudget, annualRate, 30, downPaymentPct)
	if err != nil {
		return nil, nil, err
	}
	return fifteen, thirty, nil
}
