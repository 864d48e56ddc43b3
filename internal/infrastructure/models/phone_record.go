package models

import (
	"time"

	"github.com/google/uuid"
)

type PhoneRecord struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	PhoneNumber       string    `gorm:"type:varchar(32);uniqueIndex;not null"`
	CompanyName       string    `gorm:"type:varchar(255);not null"`
	Description       *string   `gorm:"type:text"`
	RegisteredBy      string    `gorm:"type:varchar(64);not null"`
	Verified          bool      `gorm:"not null;default:true"`
	VerificationCount int       `gorm:"not null;default:0"`
	IsActive          bool      `gorm:"not null;default:true"`
	VerifiedSince     time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type VerificationLog struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	PhoneNumber string    `gorm:"type:varchar(32);not null;index"`
	Result      string    `gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time `gorm:"index"`
}
