package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskhub_backend/internal/middleware"
	"taskhub_backend/internal/models"
	"taskhub_backend/internal/services"
)

type ReportHandler struct {
	*BaseHandler
	reportService services.ReportService
}

func NewReportHandler(base *BaseHandler, reportService services.ReportService) *ReportHandler {
	return &ReportHandler{
		BaseHandler:   base,
		reportService: reportService,
	}
}

// RegisterRoutes mounts the aggregate reports, admin only.
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup, authn gin.HandlerFunc) {
	reports := rg.Group("/reports")
	reports.Use(authn, middleware.RequireRoles(models.UserRoleAdmin))
	{
		reports.GET("/tasks", h.TaskReport)
		reports.GET("/users", h.UserReport)
	}
}

// TaskReport godoc
// @Summary      Task counts by status (admin)
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.TaskReport
// @Failure      403  {object}  apperrors.ErrorResponse
// @Router       /reports/tasks [get]
func (h *ReportHandler) TaskReport(c *gin.Context) {
	db := h.GetDB(c)

	report, err := h.reportService.TaskReport(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// UserReport godoc
// @Summary      User counts by role plus recent signups (admin)
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UserReport
// @Failure      403  {object}  apperrors.ErrorResponse
// @Router       /reports/users [get]
func (h *ReportHandler) UserReport(c *gin.Context) {
	db := h.GetDB(c)

	report, err := h.reportService.UserReport(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
