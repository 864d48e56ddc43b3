package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "check-vero.backend/internal/domain/errors"
	"check-vero.backend/internal/interfaces/http/middleware"
	"check-vero.backend/internal/interfaces/http/response"
	"check-vero.backend/internal/usecases"
)

// UserHandler handles user profile endpoints
type UserHandler struct {
	authUsecase *usecases.AuthUsecase
}

// NewUserHandler creates a new user handler
func NewUserHandler(authUsecase *usecases.AuthUsecase) *UserHandler {
	return &UserHandler{
		authUsecase: authUsecase,
	}
}

// Profile returns the authenticated user's profile
// GET /api/v1/users/profile
func (h *UserHandler) Profile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	user, err := h.authUsecase.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("User not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}
