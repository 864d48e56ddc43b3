package models

import (
	"time"

	"github.com/google/uuid"
)

type FraudReport struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	ReportType      string    `gorm:"type:varchar(20);not null"`
	PhoneNumber     *string   `gorm:"type:varchar(32);index"`
	EmailAddress    *string   `gorm:"type:varchar(255)"`
	Description     string    `gorm:"type:text;not null"`
	Screenshot      *string   `gorm:"type:text"`
	Status          string    `gorm:"type:varchar(20);not null"`
	RiskLevel       string    `gorm:"type:varchar(10);not null;index"`
	Recommendation  string    `gorm:"type:text;not null"`
	ConfidenceScore int       `gorm:"not null"`
	PointsAwarded   int       `gorm:"not null"`
	// Reasons is the analyzer's ordered reason list stored as a JSON array.
	Reasons   string `gorm:"type:text;not null"`
	CreatedAt time.Time
}
