package main

import (
	"flag"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/knowyourmortgage/mortgage-analyzer/internal/calculation"
	"github.com/knowyourmortgage/mortgage-analyzer/internal/domain"
)

// Prints an amortization schedule at yearly granularity, with the month the
// balance first clears the PMI removal threshold for a given home price.
func main() {
	loan := flag.Float64("loan", 400000, "loan amount")
	rate := flag.Float64("rate", 0.061, "annual interest rate as a fraction")
	years := flag.Int("years", 30, "loan term in years")
	price := flag.Float64("price", 0, "home price, for the PMI removal month (0 to skip)")
	flag.Parse()

	loanAmount := decimal.NewFromFloat(*loan)
	annualRate := decimal.NewFromFloat(*rate)

	payment := calculation.CalculateMonthlyPayment(loanAmount, annualRate, *years)
	schedule := calculation.GenerateAmortizationSchedule(loanAmount, annualRate, *years)
	fmt.Printf("Loan %s at %s%% over %d years: payment %s/mo\n\n",
		loanAmount.StringFixed(0), annualRate.Mul(decimal.NewFromInt(100)).StringFixed(2), *years, payment.StringFixed(2))

	fmt.Println("Year,Interest,Principal,Balance")
	yearInterest := decimal.Zero
	yearPrincipal := decimal.Zero
	for _, row := range schedule {
		yearInterest = yearInterest.Add(row.Interest)
		yearPrincipal = yearPrincipal.Add(row.Principal)
		if row.Month%12 == 0 {
			fmt.Printf("%d,%s,%s,%s\n", row.Month/12,
				yearInterest.StringFixed(0), yearPrincipal.StringFixed(0), row.Balance.StringFixed(0))
			yearInterest = decimal.Zero
			yearPrincipal = decimal.Zero
		}
	}

	if *price > 0 {
		threshold := decimal.NewFromFloat(*price).Mul(domain.DefaultCostAssumptions().PMIRemovalLTV)
		for _, row := range schedule {
			if row.Balance.LessThanOrEqual(threshold) {
				fmt.Printf("\nPMI removal: balance reaches %s in month %d (year %d)\n",
					threshold.StringFixed(0), row.Month, (row.Month+11)/12)
				return
			}
		}
		fmt.Println("\nPMI removal: balance never reaches the removal threshold")
	}
}
