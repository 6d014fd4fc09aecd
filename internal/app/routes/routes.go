package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mertcan/placeport/internal/app/controllers"
	"github.com/mertcan/placeport/internal/app/models"
	"github.com/mertcan/placeport/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	companyController *controllers.CompanyController,
	jobController *controllers.JobController,
	notificationController *controllers.NotificationController,
	reportController *controllers.ReportController,
	authMiddleware *middleware.AuthMiddleware,
	health gin.HandlerFunc,
) {
	router.GET("/health", health)

	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	staffOnly := authMiddleware.RequireRole(string(models.RoleAdmin), string(models.RoleRecruiter))
	adminOnly := authMiddleware.RequireRole(string(models.RoleAdmin))
	studentOnly := authMiddleware.RequireRole(string(models.RoleStudent))

	authenticated.GET("/users/me", authController.Me)

	// Profile routes: students manage their own; staff browse all.
	profiles := authenticated.Group("/profiles")
	{
		profiles.GET("/me", studentOnly, profileController.GetMyProfile)
		profiles.PUT("/me", studentOnly, profileController.UpdateMyProfile)
		profiles.POST("/me/resume", studentOnly, profileController.UploadResume)
		profiles.POST("/me/photo", studentOnly, profileController.UploadPhoto)

		profiles.GET("", staffOnly, profileController.ListProfiles)
		profiles.GET("/:userId", staffOnly, profileController.GetProfile)
		profiles.PUT("/:userId/placement-status", staffOnly, profileController.UpdatePlacementStatus)
	}

	companies := authenticated.Group("/companies")
	{
		companies.GET("", companyController.ListCompanies)
		companies.GET("/:id", companyController.GetCompany)

		companies.POST("", adminOnly, companyController.CreateCompany)
		companies.PUT("/:id", adminOnly, companyController.UpdateCompany)
		companies.DELETE("/:id", adminOnly, companyController.DeactivateCompany)
	}

	jobs := authenticated.Group("/jobs")
	{
		jobs.GET("", jobController.ListJobs)
		jobs.GET("/:id", jobController.GetJob)

		jobs.POST("", staffOnly, jobController.CreateJob)
		jobs.PUT("/:id", staffOnly, jobController.UpdateJob)
		jobs.DELETE("/:id", staffOnly, jobController.DeactivateJob)

		jobs.POST("/:id/apply", studentOnly, jobController.Apply)
	}

	applications := authenticated.Group("/applications")
	{
		applications.GET("/me", studentOnly, jobController.ListMyApplications)

		applications.GET("", staffOnly, jobController.ListApplications)
		applications.GET("/:id", staffOnly, jobController.GetApplication)
		applications.PATCH("/:id/status", staffOnly, jobController.UpdateApplicationStatus)
	}

	notifications := authenticated.Group("/notifications")
	{
		notifications.GET("", notificationController.ListNotifications)
		notifications.PATCH("/:id/read", notificationController.MarkRead)
	}

	reports := authenticated.Group("/reports")
	reports.Use(adminOnly)
	{
		reports.GET("/placement", reportController.PlacementReport)
		reports.GET("/placement/csv", reportController.PlacementReportCSV)
	}
}
