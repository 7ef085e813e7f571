package ledger

import "github.com/shopspring/decimal"

// Settlement is one lesson's share of an allocation: Applied combines cash
// and discount credit and is what the teacher-facing "paid" status sees.
type Settlement struct {
	LessonID   uint            `json:"lesson_id"`
	Applied    decimal.Decimal `json:"applied"`
	NewSettled decimal.Decimal `json:"new_settled"`
}

// CashDetail is the real-currency portion applied to one lesson. Only cash
// produces detail rows; the student-facing balance report sums these.
type CashDetail struct {
	LessonID   uint            `json:"lesson_id"`
	CashAmount decimal.Decimal `json:"cash_amount"`
}

// AllocationResult is the outcome of spreading one tendered amount across
// a student's outstanding ledger.
type AllocationResult struct {
	Settlements      []Settlement    `json:"settlements"`
	CashDetails      []CashDetail    `json:"cash_details"`
	CashSpent        decimal.Decimal `json:"cash_spent"`
	DiscountConsumed decimal.Decimal `json:"discount_consumed"`
	Leftover         decimal.Decimal `json:"leftover"` // tendered cash no debt absorbed
}

// Allocate spreads cash across debts in the order given.
//
// Two budgets run side by side: cashBudget is real currency and only
// decreases; totalBudget is purchasing power and additionally grows by the
// magnitude of every virtual credit encountered. A real debt is paid from
// totalBudget, and the payment is split so that the discount portion covers
// exactly the excess of totalBudget over cashBudget — discounts extend what
// the money can settle without ever showing up as cash received.
//
// debts must already be filtered to open candidates (see DebtCandidates)
// and ordered chronologically as produced by Resolve. Negative cash is a
// caller bug and fails fast; an empty debts list leaves the full amount in
// Leftover.
func Allocate(cash decimal.Decimal, debts []Entry) (*AllocationResult, error) {
	if cash.IsNegative() {
		return nil, invalidf("cash", "amount %s is negative", cash)
	}

	cashBudget := cash.Round(2)
	totalBudget := cashBudget
	res := &AllocationResult{
		CashSpent:        decimal.Zero,
		DiscountConsumed: decimal.Zero,
	}

	for _, d := range debts {
		if !aboveEpsilon(cashBudget) && !aboveEpsilon(totalBudget) {
			break
		}
		if d.Virtual {
			credit := d.Charge.Neg()
			totalBudget = totalBudget.Add(credit).Round(2)
			res.DiscountConsumed = res.DiscountConsumed.Add(credit).Round(2)
			continue
		}

		need := d.Residual()
		if !aboveEpsilon(need) {
			continue
		}
		toApply := decimal.Min(totalBudget, need).Round(2)
		discountPortion := decimal.Min(decimal.Max(totalBudget.Sub(cashBudget), decimal.Zero), toApply).Round(2)
		cashPortion := toApply.Sub(discountPortion)
		if cashPortion.GreaterThan(cashBudget) {
			cashPortion = cashBudget
			toApply = cashPortion.Add(discountPortion).Round(2)
		}

		res.Settlements = append(res.Settlements, Settlement{
			LessonID:   d.LessonID,
			Applied:    toApply,
			NewSettled: d.Settled.Add(toApply).Round(2),
		})
		if cashPortion.GreaterThan(decimal.Zero) {
			res.CashDetails = append(res.CashDetails, CashDetail{
				LessonID:   d.LessonID,
				CashAmount: cashPortion,
			})
		}
		cashBudget = cashBudget.Sub(cashPortion).Round(2)
		totalBudget = totalBudget.Sub(toApply).Round(2)
	}

	res.CashSpent = cash.Round(2).Sub(cashBudget)
	res.Leftover = cashBudget
	return res, nil
}

// DebtCandidates filters a resolved ledger down to what Allocate may
// consume: real entries still carrying a residual, and virtual credits not
// yet redeemed. A credit counts as redeemed once every lesson it references
// has no residual left — if both paired lessons were settled by other
// means, offering the credit again would discount money never owed.
// Order is preserved.
func DebtCandidates(entries []Entry) []Entry {
	residual := make(map[uint]decimal.Decimal, len(entries))
	for _, e := range entries {
		if !e.Virtual {
			residual[e.LessonID] = e.Residual()
		}
	}

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Virtual {
			if aboveEpsilon(residual[e.Paired[0]]) || aboveEpsilon(residual[e.Paired[1]]) {
				out = append(out, e)
			}
			continue
		}
		if aboveEpsilon(e.Residual()) {
			out = append(out, e)
		}
	}
	return out
}
