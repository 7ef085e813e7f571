// Package ledger is the computation core of the back office: it resolves a
// student's raw lessons plus the configured discount rules into an ordered
// ledger of real charges and virtual discount credits, and allocates cash
// payments across that ledger. Everything in this package is pure: state
// lives in the caller, and two calls with the same inputs produce the same
// output.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceList maps a lesson type label to its per-lesson charge for one
// academic year.
type PriceList map[string]decimal.Decimal

// Lesson is the resolver's view of a stored lesson row.
type Lesson struct {
	ID        uint
	StudentID uint
	TeacherID uint
	SchoolID  uint
	Date      time.Time
	Type      string
	Settled   decimal.Decimal
}

// Rule is one discount-pair rule. TypeA and TypeB occurring in the same ISO
// week for the same student trigger a credit of Amount.
type Rule struct {
	TypeA       string
	TypeB       string
	Amount      decimal.Decimal
	Description string
}

// Entry is one chargeable or creditable event in the resolved ledger.
// Real entries wrap a lesson; virtual entries are synthesized discount
// credits, recomputed on every resolution and never persisted.
type Entry struct {
	ID          string          `json:"id"`
	LessonID    uint            `json:"lesson_id,omitempty"` // zero for virtual entries
	StudentID   uint            `json:"student_id"`
	TeacherID   *uint           `json:"teacher_id"` // nil for virtual entries
	SchoolID    uint            `json:"school_id"`
	Date        time.Time       `json:"date"` // lesson date; for virtual, the earlier paired date
	LessonType  string          `json:"lesson_type,omitempty"`
	Description string          `json:"description,omitempty"`
	Charge      decimal.Decimal `json:"charge"` // negative for virtual entries
	Settled     decimal.Decimal `json:"settled"`
	Virtual     bool            `json:"virtual"`

	// MissingPrice marks a real entry whose lesson type had no price-list
	// row: the charge is left at zero rather than guessed.
	MissingPrice bool `json:"missing_price,omitempty"`

	// Paired holds the two lesson ids a virtual entry was derived from.
	Paired [2]uint `json:"paired,omitempty"`
}

// Residual is the amount still owed on the entry.
func (e Entry) Residual() decimal.Decimal {
	return e.Charge.Sub(e.Settled)
}

// epsilon tolerates sub-cent residue in monetary comparisons.
var epsilon = decimal.New(1, -2) // 0.01

func aboveEpsilon(d decimal.Decimal) bool {
	return d.GreaterThan(epsilon)
}
