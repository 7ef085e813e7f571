package db

import (
	"context"

	"github.com/melodia-school/melodia-back/internal/models"
)

// --- Schools ---

func CreateSchool(ctx context.Context, s *models.School) error {
	return DB.WithContext(ctx).Create(s).Error
}

func ListSchools(ctx context.Context) ([]models.School, error) {
	var out []models.School
	err := DB.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

// --- Students ---

func CreateStudent(ctx context.Context, s *models.Student) error {
	return DB.WithContext(ctx).Create(s).Error
}

func GetStudent(ctx context.Context, id uint) (*models.Student, error) {
	var s models.Student
	if err := DB.WithContext(ctx).Preload("School").First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func ListStudents(ctx context.Context, schoolID uint) ([]models.Student, error) {
	var out []models.Student
	tx := DB.WithContext(ctx).Order("last_name, first_name")
	if schoolID != 0 {
		tx = tx.Where("school_id = ?", schoolID)
	}
	err := tx.Find(&out).Error
	return out, err
}

func UpdateStudent(ctx context.Context, s *models.Student) error {
	return DB.WithContext(ctx).Save(s).Error
}

func DeleteStudent(ctx context.Context, id uint) error {
	return DB.WithContext(ctx).Delete(&models.Student{}, id).Error
}

// --- Teachers ---

func CreateTeacher(ctx context.Context, t *models.Teacher) error {
	return DB.WithContext(ctx).Create(t).Error
}

func GetTeacher(ctx context.Context, id uint) (*models.Teacher, error) {
	var t models.Teacher
	if err := DB.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func ListTeachers(ctx context.Context, schoolID uint) ([]models.Teacher, error) {
	var out []models.Teacher
	tx := DB.WithContext(ctx).Order("last_name, first_name")
	if schoolID != 0 {
		tx = tx.Where("school_id = ?", schoolID)
	}
	err := tx.Find(&out).Error
	return out, err
}

func UpdateTeacher(ctx context.Context, t *models.Teacher) error {
	return DB.WithContext(ctx).Save(t).Error
}

func DeleteTeacher(ctx context.Context, id uint) error {
	return DB.WithContext(ctx).Delete(&models.Teacher{}, id).Error
}

// --- Rates (price list) ---

func CreateRate(ctx context.Context, r *models.Rate) error {
	return DB.WithContext(ctx).Create(r).Error
}

func ListRates(ctx context.Context, schoolID uint, year string) ([]models.Rate, error) {
	var out []models.Rate
	err := DB.WithContext(ctx).
		Where("school_id = ? AND academic_year = ?", schoolID, year).
		Order("lesson_type").
		Find(&out).Error
	return out, err
}

func UpdateRate(ctx context.Context, r *models.Rate) error {
	return DB.WithContext(ctx).Save(r).Error
}

func DeleteRate(ctx context.Context, id uint) error {
	return DB.WithContext(ctx).Delete(&models.Rate{}, id).Error
}

// --- Discount rules ---

func CreateDiscountRule(ctx context.Context, r *models.DiscountRule) error {
	return DB.WithContext(ctx).Create(r).Error
}

// ListDiscountRules returns the active rules for a school and academic
// year in priority order. The order matters: the resolver applies them
// first-come-first-claim.
func ListDiscountRules(ctx context.Context, schoolID uint, year string) ([]models.DiscountRule, error) {
	var out []models.DiscountRule
	err := DB.WithContext(ctx).
		Where("school_id = ? AND academic_year = ? AND active", schoolID, year).
		Order("priority, id").
		Find(&out).Error
	return out, err
}

func UpdateDiscountRule(ctx context.Context, r *models.DiscountRule) error {
	return DB.WithContext(ctx).Save(r).Error
}

func DeleteDiscountRule(ctx context.Context, id uint) error {
	return DB.WithContext(ctx).Delete(&models.DiscountRule{}, id).Error
}
