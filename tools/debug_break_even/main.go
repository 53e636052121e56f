package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	calc "github.com/knowyourmortgage/mortgage-analyzer/internal/calculation"
	"github.com/knowyourmortgage/mortgage-analyzer/internal/config"
)

// Dumps the year-by-year rent-vs-buy ledger as CSV so a suspicious break-even
// year can be traced back to its cost components.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_break_even <config-file>")
		return
	}
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	if cfg.Rent == nil {
		fmt.Println("no rent scenario in config")
		return
	}

	engine := calc.NewRealisticAnalysisEngine()
	if cfg.HorizonYears > 0 {
		engine.HorizonYears = cfg.HorizonYears
	}
	analysis, err := engine.RunRentVsBuy(&cfg.Scenarios[0], cfg.Rent)
	if err != nil {
		panic(err)
	}

	fmt.Println("Year,OwnerCostMo,RentCostMo,PMIMo,SavingsMo,SaverIsBuyer,BuyNetWorth,RentNetWorth,BuyAdvantage")
	for i, cost := range analysis.YearlyCosts {
		cmp := analysis.BreakEven.YearlyComparison[i]
		fmt.Printf("%d,%s,%s,%s,%s,%t,%s,%s,%s\n",
			cost.Year,
			cost.OwnerMonthlyCost.StringFixed(0),
			cost.RenterMonthlyCost.StringFixed(0),
			cost.PMIMonthly.StringFixed(0),
			cost.MonthlySavings.StringFixed(0),
			cost.SaverIsBuyer,
			cmp.BuyNetWorth.StringFixed(0),
			cmp.RentNetWorth.StringFixed(0),
			cmp.BuyAdvantage.StringFixed(0))
	}

	// Cumulative advantage shows whether a reported crossing is a blip or a
	// durable lead
	cum := decimal.Zero
	for _, cmp := range analysis.BreakEven.YearlyComparison {
		cum = cum.Add(cmp.BuyAdvantage)
		fmt.Printf("Cumulative Year %d: advantage=%s cumulative=%s\n",
			cmp.Year, cmp.BuyAdvantage.StringFixed(0), cum.StringFixed(0))
	}

	fmt.Printf("\nBreakEvenYear=%d HasBreakEven=%t TotalAdvantage=%s\n",
		analysis.BreakEven.BreakEvenYear,
		analysis.BreakEven.HasBreakEven(),
		analysis.BreakEven.TotalAdvantage.StringFixed(0))
}
