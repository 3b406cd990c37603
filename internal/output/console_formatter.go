package output

import (
	"bytes"
	"fmt"

	"github.com/homeplan/affordability-engine/internal/domain"
	"github.com/homeplan/affordability-engine/pkg/money"
)

// ConsoleFormatter renders the plan summary as a year-by-year text table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(summary *domain.PlanSummary) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "HOME PURCHASE AFFORDABILITY PROJECTION")
	fmt.Fprintln(&buf, "======================================")
	fmt.Fprintf(&buf, "Selected purchase year: %d\n", summary.SelectedPurchaseYear)
	if summary.EarliestAffordableYear != nil {
		fmt.Fprintf(&buf, "Earliest affordable year: %d\n", *summary.EarliestAffordableYear)
	} else {
		fmt.Fprintln(&buf, "Earliest affordable year: none within the simulated horizon")
	}
	fmt.Fprintf(&buf, "Projected price in purchase year: %s\n", money.Format(summary.PurchaseYearPrice))
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "%-6s %14s %14s %14s %14s %12s %10s\n",
		"Year", "HousePrice", "Savings", "ReqLoan", "Capacity", "FamilyCash", "Affordable")
	for i := range summary.Projection {
		r := &summary.Projection[i]
		marker := ""
		if r.Year == summary.SelectedPurchaseYear {
			marker = "  <- target"
		}
		fmt.Fprintf(&buf, "%-6d %14s %14s %14s %14s %12s %10t%s\n",
			r.Year,
			money.Format(r.HousePrice),
			money.Format(r.CumulativeSavings),
			money.Format(r.RequiredLoan),
			money.Format(r.LoanCapacity),
			money.Format(r.FamilyCashFlow),
			r.IsAffordable,
			marker)
	}

	return buf.Bytes(), nil
}
