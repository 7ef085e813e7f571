package models

import "time"

// School is one physical location of the academy.
type School struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex"`
	City      string    `json:"city"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

type Student struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	SchoolID   uint       `json:"school_id" gorm:"not null;index"`
	FirstName  string     `json:"first_name" gorm:"not null"`
	LastName   string     `json:"last_name" gorm:"not null"`
	Email      string     `json:"email" gorm:"index"`
	Phone      string     `json:"phone"`
	EnrolledAt time.Time  `json:"enrolled_at"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	School *School `json:"school,omitempty" gorm:"foreignKey:SchoolID"`
}

type Teacher struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	SchoolID    uint       `json:"school_id" gorm:"not null;index"`
	FirstName   string     `json:"first_name" gorm:"not null"`
	LastName    string     `json:"last_name" gorm:"not null"`
	Email       string     `json:"email" gorm:"index"`
	Instruments string     `json:"instruments"` // comma-separated, e.g. "Piano,Organ"
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	School *School `json:"school,omitempty" gorm:"foreignKey:SchoolID"`
}

// Staff is a back-office user allowed to log in.
type Staff struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	FullName     string    `json:"full_name"`
	Role         string    `json:"role" gorm:"default:'operator'"` // operator | admin
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}
