package db

import (
	"context"
	"time"

	"github.com/melodia-school/melodia-back/internal/ledger"
	"github.com/melodia-school/melodia-back/internal/models"
)

func CreateLesson(ctx context.Context, l *models.Lesson) error {
	return DB.WithContext(ctx).Create(l).Error
}

func CreateLessons(ctx context.Context, lessons []models.Lesson) error {
	return DB.WithContext(ctx).Create(&lessons).Error
}

func GetLesson(ctx context.Context, id uint) (*models.Lesson, error) {
	var l models.Lesson
	if err := DB.WithContext(ctx).First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func UpdateLesson(ctx context.Context, l *models.Lesson) error {
	return DB.WithContext(ctx).Save(l).Error
}

func DeleteLesson(ctx context.Context, id uint) error {
	return DB.WithContext(ctx).Delete(&models.Lesson{}, id).Error
}

func ListLessonsForStudent(ctx context.Context, studentID uint, from, to time.Time) ([]models.Lesson, error) {
	var out []models.Lesson
	tx := DB.WithContext(ctx).Where("student_id = ?", studentID)
	if !from.IsZero() {
		tx = tx.Where("lesson_date >= ?", from)
	}
	if !to.IsZero() {
		tx = tx.Where("lesson_date <= ?", to)
	}
	err := tx.Order("lesson_date, id").Find(&out).Error
	return out, err
}

func ListLessonsForTeacher(ctx context.Context, teacherID uint, from, to time.Time) ([]models.Lesson, error) {
	var out []models.Lesson
	tx := DB.WithContext(ctx).Where("teacher_id = ?", teacherID)
	if !from.IsZero() {
		tx = tx.Where("lesson_date >= ?", from)
	}
	if !to.IsZero() {
		tx = tx.Where("lesson_date <= ?", to)
	}
	err := tx.Order("lesson_date, id").Find(&out).Error
	return out, err
}

// LedgerInputs fetches everything the resolver needs for one student and
// academic year, converted to the core's storage-free types.
func LedgerInputs(ctx context.Context, studentID uint, year string, from, to time.Time) ([]ledger.Lesson, []ledger.Rule, ledger.PriceList, error) {
	student, err := GetStudent(ctx, studentID)
	if err != nil {
		return nil, nil, nil, err
	}

	rows, err := ListLessonsForStudent(ctx, studentID, from, to)
	if err != nil {
		return nil, nil, nil, err
	}
	lessons := make([]ledger.Lesson, 0, len(rows))
	for _, l := range rows {
		lessons = append(lessons, ledger.Lesson{
			ID:        l.ID,
			StudentID: l.StudentID,
			TeacherID: l.TeacherID,
			SchoolID:  l.SchoolID,
			Date:      l.LessonDate,
			Type:      l.LessonType,
			Settled:   l.AmountSettled,
		})
	}

	ruleRows, err := ListDiscountRules(ctx, student.SchoolID, year)
	if err != nil {
		return nil, nil, nil, err
	}
	rules := make([]ledger.Rule, 0, len(ruleRows))
	for _, r := range ruleRows {
		rules = append(rules, ledger.Rule{
			TypeA:       r.LessonTypeA,
			TypeB:       r.LessonTypeB,
			Amount:      r.Amount,
			Description: r.Description,
		})
	}

	rateRows, err := ListRates(ctx, student.SchoolID, year)
	if err != nil {
		return nil, nil, nil, err
	}
	prices := make(ledger.PriceList, len(rateRows))
	for _, r := range rateRows {
		prices[r.LessonType] = r.UnitPrice
	}

	return lessons, rules, prices, nil
}
