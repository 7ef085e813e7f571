package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rate is one row of the price list: the per-lesson charge for a lesson
// type within an academic year (e.g. "Piano" -> 25.00 for "2025/2026").
type Rate struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	SchoolID     uint            `json:"school_id" gorm:"not null;index:idx_rate,unique"`
	AcademicYear string          `json:"academic_year" gorm:"not null;index:idx_rate,unique"` // "2025/2026"
	LessonType   string          `json:"lesson_type" gorm:"not null;index:idx_rate,unique"`
	UnitPrice    decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2);not null"`
}

// Lesson is one lesson occurrence. AmountSettled is the cumulative amount
// already paid toward this lesson's charge; it is the only field the
// payment path mutates.
type Lesson struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	StudentID     uint            `json:"student_id" gorm:"not null;index"`
	TeacherID     uint            `json:"teacher_id" gorm:"not null;index"`
	SchoolID      uint            `json:"school_id" gorm:"not null;index"`
	LessonDate    time.Time       `json:"lesson_date" gorm:"not null;index;type:date"`
	LessonType    string          `json:"lesson_type" gorm:"not null"`
	AmountSettled decimal.Decimal `json:"amount_settled" gorm:"type:decimal(10,2);default:0"`
	CreatedAt     time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time       `json:"updated_at" gorm:"autoUpdateTime"`

	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	Teacher *Teacher `json:"teacher,omitempty" gorm:"foreignKey:TeacherID"`
}

// DiscountRule pairs two lesson types: when both occur in the same ISO week
// for the same student, Amount is credited back. Rules are applied in
// ascending Priority order; the first rule to claim a lesson wins.
type DiscountRule struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	SchoolID     uint            `json:"school_id" gorm:"not null;index"`
	AcademicYear string          `json:"academic_year" gorm:"not null;index"`
	LessonTypeA  string          `json:"lesson_type_a" gorm:"not null"`
	LessonTypeB  string          `json:"lesson_type_b" gorm:"not null"`
	Amount       decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	Description  string          `json:"description"`
	Priority     int             `json:"priority" gorm:"default:0;index"`
	Active       bool            `json:"active" gorm:"default:true"`
}
