package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Totals is one cell of the invoicing pivot.
type Totals struct {
	Charged decimal.Decimal `json:"charged"`
	Settled decimal.Decimal `json:"settled"`
}

// MonthlyTotals covers the full 12-month domain; index 0 is January.
type MonthlyTotals [12]Totals

// Month returns the cell for m.
func (t *MonthlyTotals) Month(m time.Month) Totals {
	return t[int(m)-1]
}

// Summary is the month-by-month and type-by-type pivot of a resolved
// ledger, as rendered by the payment matrix screens and the Excel report.
type Summary struct {
	Months       MonthlyTotals     `json:"months"`
	ByType       map[string]Totals `json:"by_type"`
	TotalCharged decimal.Decimal   `json:"total_charged"`
	TotalSettled decimal.Decimal   `json:"total_settled"`
}

// discountLabel buckets virtual entries whose rule carries no description.
const discountLabel = "Discount"

// Summarize pivots entries by calendar month and by lesson type. Virtual
// entries contribute their (negative) charge under the rule description, so
// per-month charges always sum back to the entry-level charges of that
// month.
func Summarize(entries []Entry) Summary {
	s := Summary{
		ByType:       make(map[string]Totals),
		TotalCharged: decimal.Zero,
		TotalSettled: decimal.Zero,
	}
	for i := range s.Months {
		s.Months[i] = Totals{Charged: decimal.Zero, Settled: decimal.Zero}
	}

	for _, e := range entries {
		m := int(e.Date.Month()) - 1
		s.Months[m].Charged = s.Months[m].Charged.Add(e.Charge)
		s.Months[m].Settled = s.Months[m].Settled.Add(e.Settled)

		label := e.LessonType
		if e.Virtual {
			label = e.Description
			if label == "" {
				label = discountLabel
			}
		}
		cell := s.ByType[label]
		cell.Charged = cell.Charged.Add(e.Charge)
		cell.Settled = cell.Settled.Add(e.Settled)
		s.ByType[label] = cell

		s.TotalCharged = s.TotalCharged.Add(e.Charge)
		s.TotalSettled = s.TotalSettled.Add(e.Settled)
	}
	return s
}
