package usecases

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"check-vero.backend/internal/domain/entities"
	domainerrors "check-vero.backend/internal/domain/errors"
	"check-vero.backend/internal/domain/repositories"
	"check-vero.backend/pkg/metrics"
	"check-vero.backend/pkg/utils"
)

// ReportUsecase handles fraud report submission and listing
type ReportUsecase struct {
	reportRepo repositories.ReportRepository
	userRepo   repositories.UserRepository
	analyzer   *ReportAnalyzer
	uow        repositories.UnitOfWork
}

// NewReportUsecase creates a new report usecase
func NewReportUsecase(
	reportRepo repositories.ReportRepository,
	userRepo repositories.UserRepository,
	analyzer *ReportAnalyzer,
	uow repositories.UnitOfWork,
) *ReportUsecase {
	return &ReportUsecase{
		reportRepo: reportRepo,
		userRepo:   userRepo,
		analyzer:   analyzer,
		uow:        uow,
	}
}

// Submit validates and analyzes a fraud report, then appends it and credits
// the submitter's points in one transaction, so dashboard reads never see a
// report without its point credit.
func (u *ReportUsecase) Submit(ctx context.Context, userID uuid.UUID, input *entities.SubmitReportInput) (*entities.SubmitReportResponse, error) {
	if !input.Type.Valid() {
		return nil, domainerrors.BadRequest("unknown report type")
	}
	if input.Type == entities.ReportTypeCall && strings.TrimSpace(input.PhoneNumber) == "" {
		return nil, domainerrors.BadRequest("phone number is required for call reports")
	}
	if input.Type == entities.ReportTypeEmail && strings.TrimSpace(input.EmailAddress) == "" {
		return nil, domainerrors.BadRequest("email address is required for email reports")
	}

	analysis, err := u.analyzer.Analyze(input.Description)
	if err != nil {
		return nil, domainerrors.BadRequest("description must not be empty")
	}

	report := &entities.FraudReport{
		UserID:       userID,
		Type:         input.Type,
		PhoneNumber:  null.NewString(input.PhoneNumber, input.PhoneNumber != ""),
		EmailAddress: null.NewString(input.EmailAddress, input.EmailAddress != ""),
		Description:  input.Description,
		Screenshot:   null.NewString(input.Screenshot, input.Screenshot != ""),
		Status:       entities.ReportStatusAnalyzed,
		Analysis:     *analysis,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.reportRepo.Create(txCtx, report); err != nil {
			return err
		}
		return u.userRepo.AddPoints(txCtx, userID, analysis.PointsAwarded)
	})
	if err != nil {
		return nil, err
	}

	metrics.ReportsSubmitted.WithLabelValues(string(analysis.RiskLevel)).Inc()

	return &entities.SubmitReportResponse{
		Report:   report,
		Analysis: analysis,
	}, nil
}

// ListByUser lists the given user's reports, newest first
func (u *ReportUsecase) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.FraudReport, error) {
	return u.reportRepo.ListByUser(ctx, userID)
}

// ListAll lists all reports with pagination, newest first
func (u *ReportUsecase) ListAll(ctx context.Context, page, limit int) ([]*entities.FraudReport, utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(page, limit)
	reports, total, err := u.reportRepo.List(ctx, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return reports, utils.CalculateMeta(total, params.Page, params.Limit), nil
}
