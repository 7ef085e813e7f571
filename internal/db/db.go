package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/melodia-school/melodia-back/internal/models"
)

var DB *gorm.DB

// Init opens the connection and migrates the schema.
func Init(dsn string) error {
	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return err
	}

	return DB.AutoMigrate(
		&models.School{},
		&models.Student{},
		&models.Teacher{},
		&models.Staff{},
		&models.Rate{},
		&models.Lesson{},
		&models.DiscountRule{},
		&models.Payment{},
		&models.PaymentDetail{},
	)
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
