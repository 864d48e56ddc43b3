package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// SystemRegistrant marks registry records seeded by the platform itself
// rather than by a business or admin user.
const SystemRegistrant = "system"

// PhoneRecord represents a verified business phone number in the registry
type PhoneRecord struct {
	ID                uuid.UUID   `json:"id"`
	PhoneNumber       string      `json:"phone_number"`
	CompanyName       string      `json:"company_name"`
	Description       null.String `json:"description,omitempty"`
	RegisteredBy      string      `json:"registered_by"`
	Verified          bool        `json:"verified"`
	VerificationCount int         `json:"verification_count"`
	IsActive          bool        `json:"is_active"`
	VerifiedSince     time.Time   `json:"verified_since"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// RegisterPhoneInput represents input for registering a phone number
type RegisterPhoneInput struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	CompanyName string `json:"company_name" binding:"required"`
	Description string `json:"description,omitempty"`
}

// VerifyPhoneInput represents input for a verification check
type VerifyPhoneInput struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
}

// VerifyPhoneResult represents the outcome of a verification check.
// An unknown number is a normal outcome, not an error.
type VerifyPhoneResult struct {
	IsVerified        bool        `json:"is_verified"`
	CompanyName       string      `json:"company_name,omitempty"`
	Description       null.String `json:"description,omitempty"`
	VerifiedSince     null.Time   `json:"verified_since,omitempty"`
	VerificationCount int         `json:"verification_count"`
	IsActive          bool        `json:"is_active"`
	Message           string      `json:"message"`
}

// VerificationResult classifies a verification attempt for the audit log
type VerificationResult string

const (
	VerificationResultVerified    VerificationResult = "verified"
	VerificationResultNotVerified VerificationResult = "not_verified"
)

// VerificationLog is an audit record of a single verification attempt
type VerificationLog struct {
	ID          uuid.UUID          `json:"id"`
	PhoneNumber string             `json:"phone_number"`
	Result      VerificationResult `json:"result"`
	CreatedAt   time.Time          `json:"created_at"`
}
