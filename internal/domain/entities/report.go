package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ReportType represents the communication channel a fraud report is about
type ReportType string

const (
	ReportTypeCall   ReportType = "call"
	ReportTypeEmail  ReportType = "email"
	ReportTypeAIChat ReportType = "ai_chat"
)

// Valid reports whether the report type is one of the known types.
func (t ReportType) Valid() bool {
	return t == ReportTypeCall || t == ReportTypeEmail || t == ReportTypeAIChat
}

// RiskLevel classifies a report's estimated danger
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "LOW"
	RiskLevelMedium RiskLevel = "MEDIUM"
	RiskLevelHigh   RiskLevel = "HIGH"
)

// ReportStatus represents the processing state of a report
type ReportStatus string

const (
	ReportStatusAnalyzed ReportStatus = "analyzed"
)

// ReportAnalysis is the deterministic analyzer output attached to a report.
// It is a pure function of the report description and is never recomputed.
type ReportAnalysis struct {
	RiskLevel       RiskLevel `json:"risk_level"`
	Recommendation  string    `json:"recommendation"`
	ConfidenceScore int       `json:"confidence_score"`
	PointsAwarded   int       `json:"points_awarded"`
	Reasons         []string  `json:"reasons"`
}

// FraudReport represents a submitted fraud report. Reports are append-only
// and immutable once created.
type FraudReport struct {
	ID           uuid.UUID      `json:"id"`
	UserID       uuid.UUID      `json:"user_id"`
	Type         ReportType     `json:"report_type"`
	PhoneNumber  null.String    `json:"phone_number,omitempty"`
	EmailAddress null.String    `json:"email_address,omitempty"`
	Description  string         `json:"description"`
	Screenshot   null.String    `json:"-"`
	Status       ReportStatus   `json:"status"`
	Analysis     ReportAnalysis `json:"ai_analysis"`
	CreatedAt    time.Time      `json:"created_at"`
}

// SubmitReportInput represents input for submitting a fraud report
type SubmitReportInput struct {
	Type         ReportType `json:"report_type" binding:"required"`
	PhoneNumber  string     `json:"phone_number,omitempty"`
	EmailAddress string     `json:"email_address,omitempty"`
	Description  string     `json:"description" binding:"required"`
	Screenshot   string     `json:"screenshot,omitempty"`
}

// SubmitReportResponse is returned from a successful report submission
type SubmitReportResponse struct {
	Report   *FraudReport    `json:"report"`
	Analysis *ReportAnalysis `json:"ai_analysis"`
}
