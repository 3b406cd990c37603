package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/homeplan/affordability-engine/internal/domain"
)

// CSVFormatter writes one row per projected year.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(summary *domain.PlanSummary) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"YearIndex", "Year", "HousePrice", "CumulativeSavings", "RequiredLoan", "LoanCapacity", "FamilyCashFlow", "IsAffordable"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i := range summary.Projection {
		r := &summary.Projection[i]
		row := []string{
			strconv.Itoa(r.YearIndex),
			strconv.Itoa(r.Year),
			r.HousePrice.StringFixed(2),
			r.CumulativeSavings.StringFixed(2),
			r.RequiredLoan.StringFixed(2),
			r.LoanCapacity.StringFixed(2),
			r.FamilyCashFlow.StringFixed(2),
			strconv.FormatBool(r.IsAffordable),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
