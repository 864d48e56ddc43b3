package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"check-vero.backend/internal/domain/entities"
	domainerrors "check-vero.backend/internal/domain/errors"
	"check-vero.backend/internal/interfaces/http/middleware"
	"check-vero.backend/internal/interfaces/http/response"
	"check-vero.backend/internal/usecases"
)

// ReportHandler handles fraud report endpoints
type ReportHandler struct {
	reportUsecase *usecases.ReportUsecase
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportUsecase *usecases.ReportUsecase) *ReportHandler {
	return &ReportHandler{
		reportUsecase: reportUsecase,
	}
}

// Submit handles fraud report submission
// POST /api/v1/reports/submit
func (h *ReportHandler) Submit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input entities.SubmitReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.reportUsecase.Submit(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// MyReports lists the caller's reports, newest first
// GET /api/v1/reports/my-reports
func (h *ReportHandler) MyReports(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	reports, err := h.reportUsecase.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reports": reports})
}

// ListAll lists all reports with pagination (admin only)
// GET /api/v1/reports/all?page=1&limit=20
func (h *ReportHandler) ListAll(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	reports, meta, err := h.reportUsecase.ListAll(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"reports":    reports,
		"pagination": meta,
	})
}
