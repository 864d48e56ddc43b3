package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"check-vero.backend/internal/domain/entities"
	domainerrors "check-vero.backend/internal/domain/errors"
	"check-vero.backend/internal/interfaces/http/middleware"
	"check-vero.backend/internal/interfaces/http/response"
	"check-vero.backend/internal/usecases"
)

// VerificationHandler handles the public verification check and the
// registry management endpoints for businesses and admins.
type VerificationHandler struct {
	verificationUsecase *usecases.VerificationUsecase
}

// NewVerificationHandler creates a new verification handler
func NewVerificationHandler(verificationUsecase *usecases.VerificationUsecase) *VerificationHandler {
	return &VerificationHandler{
		verificationUsecase: verificationUsecase,
	}
}

// VerifyPhone checks a phone number against the registry. Public: callers
// do not need an account to check a number.
// POST /api/v1/verify-phone
func (h *VerificationHandler) VerifyPhone(c *gin.Context) {
	var input entities.VerifyPhoneInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("phone_number is required"))
		return
	}

	result, err := h.verificationUsecase.VerifyPhone(c.Request.Context(), input.PhoneNumber)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// RegisterPhone registers a phone number in the verification registry
// POST /api/v1/phone-numbers/register
func (h *VerificationHandler) RegisterPhone(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input entities.RegisterPhoneInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	record, err := h.verificationUsecase.RegisterPhone(c.Request.Context(), &input, userID.String())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Phone number registered successfully",
		"record":  record,
	})
}

// MyNumbers lists the registry records registered by the caller; admins see
// every record in the registry
// GET /api/v1/phone-numbers/my-numbers
func (h *VerificationHandler) MyNumbers(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}
	role, _ := middleware.GetUserRole(c)

	records, err := h.verificationUsecase.MyNumbers(c.Request.Context(), userID.String(), entities.UserRole(role))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"phone_numbers": records})
}

// Deactivate marks a registry record inactive (admin only)
// POST /api/v1/phone-numbers/deactivate
func (h *VerificationHandler) Deactivate(c *gin.Context) {
	var input entities.VerifyPhoneInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("phone_number is required"))
		return
	}

	if err := h.verificationUsecase.Deactivate(c.Request.Context(), input.PhoneNumber); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Phone number deactivated",
	})
}
