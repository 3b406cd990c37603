package output

import (
	"bytes"
	"fmt"

	"github.com/homeplan/affordability-engine/internal/domain"
	"github.com/homeplan/affordability-engine/pkg/money"
)

// FormatComparison renders the two-year comparison as console text.
func FormatComparison(res *domain.ComparisonResult) []byte {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "PURCHASE YEAR COMPARISON")
	fmt.Fprintln(&buf, "========================")
	fmt.Fprintf(&buf, "Earliest affordable year: %d\n", res.EarliestYear)
	fmt.Fprintf(&buf, "Selected target year:     %d (%s)\n", res.TargetYear, res.Timing)
	fmt.Fprintln(&buf)
	write := func(label string, r *domain.ProjectionRow) {
		fmt.Fprintf(&buf, "%s: price=%s savings=%s requiredLoan=%s capacity=%s\n",
			label, money.Format(r.HousePrice), money.Format(r.CumulativeSavings),
			money.Format(r.RequiredLoan), money.Format(r.LoanCapacity))
	}
	write("Earliest", &res.EarliestRow)
	write("Target  ", &res.TargetRow)
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Savings difference (target - earliest): %s\n", money.Format(res.SavingsDifference))
	fmt.Fprintf(&buf, "Loan difference (target - earliest):    %s\n", money.Format(res.LoanDifference))
	return buf.Bytes()
}
