package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mertcan/placeport/internal/app/models/dto"
	"github.com/mertcan/placeport/internal/app/services"
	"github.com/mertcan/placeport/internal/middleware"
)

// ReportController handles aggregate placement reporting
type ReportController struct {
	reportService *services.ReportService
	logger        zerolog.Logger
}

// NewReportController creates a new ReportController
func NewReportController(reportService *services.ReportService, logger zerolog.Logger) *ReportController {
	return &ReportController{
		reportService: reportService,
		logger:        logger,
	}
}

// PlacementReport returns the aggregate placement view
func (c *ReportController) PlacementReport(ctx *gin.Context) {
	report, err := c.reportService.PlacementReport(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(report))
}

// PlacementReportCSV streams the placement report as CSV
func (c *ReportController) PlacementReportCSV(ctx *gin.Context) {
	ctx.Header("Content-Type", "text/csv")
	ctx.Header("Content-Disposition", `attachment; filename="placement_report.csv"`)

	if err := c.reportService.WritePlacementCSV(ctx.Request.Context(), ctx.Writer); err != nil {
		c.logger.Error().Err(err).Msg("Failed to write placement CSV")
		ctx.Status(http.StatusInternalServerError)
	}
}
