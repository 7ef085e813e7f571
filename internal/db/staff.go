package db

import (
	"context"

	"github.com/melodia-school/melodia-back/internal/models"
)

func GetStaffByEmail(ctx context.Context, email string) (*models.Staff, error) {
	var s models.Staff
	if err := DB.WithContext(ctx).Where("email = ?", email).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func CreateStaff(ctx context.Context, s *models.Staff) error {
	return DB.WithContext(ctx).Create(s).Error
}
