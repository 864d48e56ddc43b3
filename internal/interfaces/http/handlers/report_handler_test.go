package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"check-vero.backend/internal/domain/entities"
	"check-vero.backend/internal/interfaces/http/handlers"
	"check-vero.backend/internal/usecases"
)

func newReportRouter(reportRepo *stubReportRepo, userRepo *stubUserRepo, userID uuid.UUID, role string) *gin.Engine {
	uc := usecases.NewReportUsecase(reportRepo, userRepo, usecases.NewReportAnalyzer(), stubUnitOfWork{})
	h := handlers.NewReportHandler(uc)

	r := gin.New()
	auth := injectUser(userID, "tester", role)
	r.POST("/api/v1/reports/submit", auth, h.Submit)
	r.GET("/api/v1/reports/my-reports", auth, h.MyReports)
	r.GET("/api/v1/reports/all", auth, h.ListAll)
	return r
}

func seedUser(t *testing.T, userRepo *stubUserRepo, username string) *entities.User {
	t.Helper()
	user := &entities.User{
		Username: username,
		Email:    username + "@example.com",
		Role:     entities.UserRoleCitizen,
		IsActive: true,
	}
	require.NoError(t, userRepo.Create(context.Background(), user))
	return user
}

func TestReportHandler_Submit(t *testing.T) {
	reportRepo := newStubReportRepo()
	userRepo := newStubUserRepo()
	user := seedUser(t, userRepo, "alice")
	r := newReportRouter(reportRepo, userRepo, user.ID, "citizen")

	w := postJSON(r, "/api/v1/reports/submit", gin.H{
		"report_type": "call",
		"phone_number": "+19998887777",
		"description": "This is URGENT, you are a WINNER of our lottery",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Report   map[string]interface{} `json:"report"`
		Analysis struct {
			RiskLevel       string   `json:"risk_level"`
			ConfidenceScore int      `json:"confidence_score"`
			PointsAwarded   int      `json:"points_awarded"`
			Reasons         []string `json:"reasons"`
		} `json:"ai_analysis"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "HIGH", body.Analysis.RiskLevel)
	assert.Equal(t, 85, body.Analysis.ConfidenceScore)
	assert.Equal(t, 30, body.Analysis.PointsAwarded)
	assert.Equal(t, "analyzed", body.Report["status"])

	// the submitter's points were credited
	got, err := userRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, got.Points)
}

func TestReportHandler_Submit_Validation(t *testing.T) {
	userRepo := newStubUserRepo()
	user := seedUser(t, userRepo, "alice")
	r := newReportRouter(newStubReportRepo(), userRepo, user.ID, "citizen")

	// missing description fails binding
	w := postJSON(r, "/api/v1/reports/submit", gin.H{
		"report_type": "ai_chat",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// call report without a phone number
	w = postJSON(r, "/api/v1/reports/submit", gin.H{
		"report_type": "call",
		"description": "suspicious call",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "phone number")
}

func TestReportHandler_MyReports(t *testing.T) {
	reportRepo := newStubReportRepo()
	userRepo := newStubUserRepo()
	user := seedUser(t, userRepo, "alice")
	r := newReportRouter(reportRepo, userRepo, user.ID, "citizen")

	w := postJSON(r, "/api/v1/reports/submit", gin.H{
		"report_type": "email",
		"email_address": "scam@example.com",
		"description": "Your account has been suspended",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/my-reports", nil)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), "MEDIUM")
	assert.Contains(t, w2.Body.String(), "scam@example.com")
}

func TestReportHandler_ListAll_Pagination(t *testing.T) {
	reportRepo := newStubReportRepo()
	userRepo := newStubUserRepo()
	user := seedUser(t, userRepo, "admin")
	r := newReportRouter(reportRepo, userRepo, user.ID, "admin")

	for i := 0; i < 5; i++ {
		w := postJSON(r, "/api/v1/reports/submit", gin.H{
			"report_type": "ai_chat",
			"description": "A chatbot asked odd questions",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/all?page=1&limit=2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Reports    []map[string]interface{} `json:"reports"`
		Pagination struct {
			Page       int   `json:"page"`
			TotalCount int64 `json:"totalCount"`
			TotalPages int   `json:"totalPages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Reports, 2)
	assert.EqualValues(t, 5, body.Pagination.TotalCount)
	assert.Equal(t, 3, body.Pagination.TotalPages)
}
