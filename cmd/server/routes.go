package main

import (
	"github.com/gin-gonic/gin"
	"check-vero.backend/internal/interfaces/http/handlers"
	"check-vero.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler         *handlers.AuthHandler
	userHandler         *handlers.UserHandler
	verificationHandler *handlers.VerificationHandler
	reportHandler       *handlers.ReportHandler
	dashboardHandler    *handlers.DashboardHandler
	authMiddleware      gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.GET("/me", d.authMiddleware, d.authHandler.GetMe)
		}

		// Public verification endpoint (no account required)
		v1.POST("/verify-phone", d.verificationHandler.VerifyPhone)

		// User routes (protected)
		users := v1.Group("/users")
		users.Use(d.authMiddleware)
		{
			users.GET("/profile", d.userHandler.Profile)
		}

		// Phone number registry routes (protected)
		phoneNumbers := v1.Group("/phone-numbers")
		phoneNumbers.Use(d.authMiddleware)
		{
			phoneNumbers.POST("/register", middleware.RequireBusinessOrAdmin(), d.verificationHandler.RegisterPhone)
			phoneNumbers.GET("/my-numbers", middleware.RequireBusinessOrAdmin(), d.verificationHandler.MyNumbers)
			phoneNumbers.POST("/deactivate", middleware.RequireAdmin(), d.verificationHandler.Deactivate)
		}

		// Fraud report routes (protected)
		reports := v1.Group("/reports")
		reports.Use(d.authMiddleware)
		{
			reports.POST("/submit", d.reportHandler.Submit)
			reports.GET("/my-reports", d.reportHandler.MyReports)
			reports.GET("/all", middleware.RequireAdmin(), d.reportHandler.ListAll)
		}

		// Dashboard routes (protected, role-shaped payloads)
		stats := v1.Group("/stats")
		stats.Use(d.authMiddleware)
		{
			stats.GET("/dashboard", d.dashboardHandler.Stats)
		}
	}
}
