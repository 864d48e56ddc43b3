package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "check-vero.backend/internal/domain/errors"
	"check-vero.backend/internal/interfaces/http/middleware"
	"check-vero.backend/internal/interfaces/http/response"
	"check-vero.backend/internal/usecases"
)

// DashboardHandler serves role-specific dashboard statistics
type DashboardHandler struct {
	dashboardUsecase *usecases.DashboardUsecase
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardUsecase *usecases.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
	}
}

// Stats returns statistics shaped by the caller's role
// GET /api/v1/stats/dashboard
func (h *DashboardHandler) Stats(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	ctx := c.Request.Context()
	switch role {
	case "citizen":
		stats, err := h.dashboardUsecase.CitizenStats(ctx, userID)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, http.StatusOK, stats)
	case "business":
		stats, err := h.dashboardUsecase.BusinessStats(ctx, userID)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, http.StatusOK, stats)
	case "admin":
		stats, err := h.dashboardUsecase.AdminStats(ctx)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, http.StatusOK, stats)
	default:
		response.Error(c, domainerrors.Forbidden("Unknown role"))
	}
}
