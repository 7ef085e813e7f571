package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a cash amount tendered by a student, allocated across
// outstanding lessons at recording time.
type Payment struct {
	ID        string          `json:"id" gorm:"primaryKey;type:uuid"`
	StudentID uint            `json:"student_id" gorm:"not null;index"`
	SchoolID  uint            `json:"school_id" gorm:"not null;index"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	Method    string          `json:"method" gorm:"type:varchar(30)"` // cash | transfer | card
	Note      string          `json:"note"`
	PaidAt    time.Time       `json:"paid_at" gorm:"not null;index"`
	CreatedAt time.Time       `json:"created_at" gorm:"autoCreateTime"`

	Details []PaymentDetail `json:"details,omitempty" gorm:"foreignKey:PaymentID"`
}

// PaymentDetail records the real-cash portion of a payment applied to one
// lesson. Discount credit never produces a detail row: the student-facing
// cash report must only show currency actually received.
type PaymentDetail struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	PaymentID  string          `json:"payment_id" gorm:"not null;index;type:uuid"`
	LessonID   uint            `json:"lesson_id" gorm:"not null;index"`
	CashAmount decimal.Decimal `json:"cash_amount" gorm:"type:decimal(10,2);not null"`
	CreatedAt  time.Time       `json:"created_at" gorm:"autoCreateTime"`
}
