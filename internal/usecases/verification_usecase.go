package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"check-vero.backend/internal/domain/entities"
	domainerrors "check-vero.backend/internal/domain/errors"
	"check-vero.backend/internal/domain/repositories"
	"check-vero.backend/pkg/logger"
	"check-vero.backend/pkg/metrics"
)

// VerificationUsecase handles the phone verification registry business logic
type VerificationUsecase struct {
	phoneRepo repositories.PhoneRecordRepository
	logRepo   repositories.VerificationLogRepository
}

// NewVerificationUsecase creates a new verification usecase
func NewVerificationUsecase(
	phoneRepo repositories.PhoneRecordRepository,
	logRepo repositories.VerificationLogRepository,
) *VerificationUsecase {
	return &VerificationUsecase{
		phoneRepo: phoneRepo,
		logRepo:   logRepo,
	}
}

// VerifyPhone checks a phone number against the registry. A hit increments
// the record's verification count by exactly one; a miss is a normal outcome
// and mutates nothing. Every attempt is written to the audit log.
func (u *VerificationUsecase) VerifyPhone(ctx context.Context, phoneNumber string) (*entities.VerifyPhoneResult, error) {
	phoneNumber = strings.TrimSpace(phoneNumber)
	if phoneNumber == "" {
		return nil, domainerrors.BadRequest("phone number is required")
	}

	record, err := u.phoneRepo.IncrementVerificationCount(ctx, phoneNumber)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			u.logAttempt(ctx, phoneNumber, entities.VerificationResultNotVerified)
			metrics.VerificationChecks.WithLabelValues(string(entities.VerificationResultNotVerified)).Inc()
			return &entities.VerifyPhoneResult{
				IsVerified: false,
				Message:    "❌ This number is not registered. Proceed with caution.",
			}, nil
		}
		return nil, err
	}

	u.logAttempt(ctx, phoneNumber, entities.VerificationResultVerified)
	metrics.VerificationChecks.WithLabelValues(string(entities.VerificationResultVerified)).Inc()

	return &entities.VerifyPhoneResult{
		IsVerified:        true,
		CompanyName:       record.CompanyName,
		Description:       record.Description,
		VerifiedSince:     null.TimeFrom(record.VerifiedSince),
		VerificationCount: record.VerificationCount,
		IsActive:          record.IsActive,
		Message:           fmt.Sprintf("✅ This number is verified and belongs to %s", record.CompanyName),
	}, nil
}

// RegisterPhone adds a phone number to the verification registry
func (u *VerificationUsecase) RegisterPhone(ctx context.Context, input *entities.RegisterPhoneInput, registeredBy string) (*entities.PhoneRecord, error) {
	if strings.TrimSpace(input.PhoneNumber) == "" {
		return nil, domainerrors.BadRequest("phone number is required")
	}
	if strings.TrimSpace(input.CompanyName) == "" {
		return nil, domainerrors.BadRequest("company name is required")
	}

	record := &entities.PhoneRecord{
		PhoneNumber:  strings.TrimSpace(input.PhoneNumber),
		CompanyName:  input.CompanyName,
		Description:  null.NewString(input.Description, input.Description != ""),
		RegisteredBy: registeredBy,
		Verified:     true,
		IsActive:     true,
	}

	if err := u.phoneRepo.Create(ctx, record); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("phone number already registered")
		}
		return nil, err
	}

	metrics.PhoneNumbersRegistered.Inc()
	return record, nil
}

// Deactivate marks a registry record inactive. Verification checks still
// see the record, flagged as inactive.
func (u *VerificationUsecase) Deactivate(ctx context.Context, phoneNumber string) error {
	if strings.TrimSpace(phoneNumber) == "" {
		return domainerrors.BadRequest("phone number is required")
	}
	if err := u.phoneRepo.Deactivate(ctx, strings.TrimSpace(phoneNumber)); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("phone number not found")
		}
		return err
	}
	return nil
}

// MyNumbers lists registry records for the caller. Businesses see their own
// records; admins see the whole registry.
func (u *VerificationUsecase) MyNumbers(ctx context.Context, registeredBy string, role entities.UserRole) ([]*entities.PhoneRecord, error) {
	if role == entities.UserRoleAdmin {
		return u.phoneRepo.List(ctx)
	}
	return u.phoneRepo.ListByRegistrant(ctx, registeredBy)
}

// logAttempt records the verification attempt. The audit log is best-effort:
// a failed write never fails the verification itself.
func (u *VerificationUsecase) logAttempt(ctx context.Context, phoneNumber string, result entities.VerificationResult) {
	err := u.logRepo.Create(ctx, &entities.VerificationLog{
		PhoneNumber: phoneNumber,
		Result:      result,
	})
	if err != nil {
		logger.Warn(ctx, "failed to write verification log",
			zap.String("phone_number", phoneNumber),
			zap.Error(err),
		)
	}
}
