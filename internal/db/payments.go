package db

import (
	"context"

	"gorm.io/gorm"

	"github.com/melodia-school/melodia-back/internal/ledger"
	"github.com/melodia-school/melodia-back/internal/models"
)

// ApplyPayment persists a payment together with the allocation it
// produced: the payment row, every lesson's new amount_settled and the
// cash detail rows all commit in one transaction, so a write failure never
// leaves an allocation half applied.
func ApplyPayment(ctx context.Context, p *models.Payment, res *ledger.AllocationResult) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		for _, s := range res.Settlements {
			err := tx.Model(&models.Lesson{}).
				Where("id = ?", s.LessonID).
				Update("amount_settled", s.NewSettled).Error
			if err != nil {
				return err
			}
		}
		for _, d := range res.CashDetails {
			detail := models.PaymentDetail{
				PaymentID:  p.ID,
				LessonID:   d.LessonID,
				CashAmount: d.CashAmount,
			}
			if err := tx.Create(&detail).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func ListPayments(ctx context.Context, studentID uint) ([]models.Payment, error) {
	var out []models.Payment
	err := DB.WithContext(ctx).
		Preload("Details").
		Where("student_id = ?", studentID).
		Order("paid_at, id").
		Find(&out).Error
	return out, err
}

func GetPayment(ctx context.Context, id string) (*models.Payment, error) {
	var p models.Payment
	if err := DB.WithContext(ctx).Preload("Details").Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
